// Package config loads the bridge configuration from YAML with environment
// overrides and validates the engine settings JSON against an embedded
// schema.
//
// Example:
//
//	module_name: loader
//	library: wasm
//	wasm:
//	  path: engine.wasm
//	  memory_limit_pages: 4096
//	engine_settings:
//	  PIPELINE:
//	    CONFIGPATH: /etc/opt/senzing
//	    RESOURCEPATH: /opt/senzing/g2/resources
//	    SUPPORTPATH: /opt/senzing/data
//	  SQL:
//	    CONNECTION: sqlite3://na:na@/var/opt/senzing/G2C.db
//	strict_errors: true
//	metrics_addr: ":9090"
package config
