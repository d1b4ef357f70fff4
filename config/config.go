package config

import (
	"bytes"
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/g2-bridge/errors"
)

// Environment variables that override the file.
const (
	EnvEngineSettings = "SENZING_ENGINE_CONFIGURATION_JSON"
	EnvLibrary        = "G2BRIDGE_LIBRARY"
	EnvWASM           = "G2BRIDGE_WASM"
)

// LibraryKind selects the engine backend.
type LibraryKind string

const (
	LibraryNative LibraryKind = "native"
	LibraryWASM   LibraryKind = "wasm"
)

// DefaultFetchBufferSize is the row buffer used by export iterators.
const DefaultFetchBufferSize = 65535

// ErrInvalid matches every validation failure with errors.Is.
var ErrInvalid = &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidInput}

// Config is the bridge configuration.
type Config struct {
	ModuleName      string         `yaml:"module_name"`
	EngineSettings  EngineSettings `yaml:"engine_settings"`
	Verbose         bool           `yaml:"verbose"`
	ConfigID        int64          `yaml:"config_id"`
	Library         LibraryKind    `yaml:"library"`
	WASM            WASM           `yaml:"wasm"`
	StrictErrors    bool           `yaml:"strict_errors"`
	FetchBufferSize int            `yaml:"fetch_buffer_size"`
	MetricsAddr     string         `yaml:"metrics_addr"`
}

// WASM configures the wazero backend.
type WASM struct {
	Path             string `yaml:"path"`
	MemoryLimitPages uint32 `yaml:"memory_limit_pages"`
}

// EngineSettings is the engine configuration JSON. In YAML it may be
// written either as a JSON string or as a mapping.
type EngineSettings string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *EngineSettings) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*s = EngineSettings(n.Value)
		return nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "engine_settings")
	}
	*s = EngineSettings(data)
	return nil
}

// Default returns a configuration with defaults applied.
func Default() *Config {
	return &Config{
		ModuleName:      "g2bridge",
		Library:         LibraryWASM,
		FetchBufferSize: DefaultFetchBufferSize,
	}
}

// Override adjusts a loaded configuration before validation.
type Override func(*Config)

// Load reads path, applies environment overrides and then overrides in
// order, and validates the result. An empty path loads defaults.
func Load(path string, overrides ...Override) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "read "+path)
		}
		if err := Parse(data, cfg); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	for _, o := range overrides {
		o(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, rejecting unknown fields.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse config")
	}
	return nil
}

// ApplyEnv overrides fields from the environment through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvEngineSettings); ok && v != "" {
		c.EngineSettings = EngineSettings(v)
	}
	if v, ok := lookup(EnvLibrary); ok && v != "" {
		c.Library = LibraryKind(v)
	}
	if v, ok := lookup(EnvWASM); ok && v != "" {
		c.WASM.Path = v
		if c.Library == "" {
			c.Library = LibraryWASM
		}
	}
}

// Validate checks field values and the engine settings.
func (c *Config) Validate() error {
	switch c.Library {
	case LibraryNative:
	case LibraryWASM:
		if c.WASM.Path == "" {
			return invalid([]string{"wasm", "path"}, "required for the wasm library")
		}
	default:
		return invalid([]string{"library"}, "unknown library %q", c.Library)
	}
	if c.FetchBufferSize < 0 {
		return invalid([]string{"fetch_buffer_size"}, "negative size %d", c.FetchBufferSize)
	}
	if c.FetchBufferSize == 0 {
		c.FetchBufferSize = DefaultFetchBufferSize
	}
	if c.EngineSettings != "" {
		if err := ValidateEngineSettings(string(c.EngineSettings)); err != nil {
			return err
		}
	}
	return nil
}

func invalid(path []string, format string, args ...any) error {
	return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
		Path(path...).
		Detail(format, args...).
		Build()
}
