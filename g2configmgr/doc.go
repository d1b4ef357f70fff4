// Package g2configmgr is the client for the engine's configuration
// repository: stored configurations and the default configuration ID.
package g2configmgr
