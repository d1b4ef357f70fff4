package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSettings = `{"PIPELINE":{"CONFIGPATH":"/etc/opt/senzing","RESOURCEPATH":"/opt/senzing/g2/resources","SUPPORTPATH":"/opt/senzing/data"},"SQL":{"CONNECTION":"sqlite3://na:na@/tmp/G2C.db"}}`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "g2bridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func noEnv(string) (string, bool) { return "", false }

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestParse_MappingSettings(t *testing.T) {
	cfg := Default()
	err := Parse([]byte(`
module_name: loader
library: wasm
wasm:
  path: engine.wasm
  memory_limit_pages: 512
engine_settings:
  PIPELINE:
    CONFIGPATH: /etc/opt/senzing
    RESOURCEPATH: /opt/senzing/g2/resources
    SUPPORTPATH: /opt/senzing/data
  SQL:
    CONNECTION: sqlite3://na:na@/tmp/G2C.db
config_id: 4019066234
strict_errors: true
metrics_addr: ":9090"
`), cfg)
	require.NoError(t, err)

	assert.Equal(t, "loader", cfg.ModuleName)
	assert.Equal(t, LibraryWASM, cfg.Library)
	assert.Equal(t, "engine.wasm", cfg.WASM.Path)
	assert.Equal(t, uint32(512), cfg.WASM.MemoryLimitPages)
	assert.Equal(t, int64(4019066234), cfg.ConfigID)
	assert.True(t, cfg.StrictErrors)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, DefaultFetchBufferSize, cfg.FetchBufferSize)
	assert.JSONEq(t, validSettings, string(cfg.EngineSettings))
	require.NoError(t, cfg.Validate())
}

func TestParse_StringSettings(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse([]byte("engine_settings: '"+validSettings+"'\n"), cfg))
	assert.Equal(t, EngineSettings(validSettings), cfg.EngineSettings)
}

func TestParse_UnknownField(t *testing.T) {
	err := Parse([]byte("modul_name: typo\n"), Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "modul_name")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.Library = ""
	cfg.ApplyEnv(env(map[string]string{
		EnvEngineSettings: validSettings,
		EnvWASM:           "/opt/engine.wasm",
	}))
	assert.Equal(t, EngineSettings(validSettings), cfg.EngineSettings)
	assert.Equal(t, "/opt/engine.wasm", cfg.WASM.Path)
	assert.Equal(t, LibraryWASM, cfg.Library)

	cfg.ApplyEnv(env(map[string]string{EnvLibrary: "native"}))
	assert.Equal(t, LibraryNative, cfg.Library)

	before := *cfg
	cfg.ApplyEnv(noEnv)
	assert.Equal(t, before, *cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"native", Config{Library: LibraryNative}, true},
		{"wasm", Config{Library: LibraryWASM, WASM: WASM{Path: "e.wasm"}}, true},
		{"wasm without path", Config{Library: LibraryWASM}, false},
		{"unknown library", Config{Library: "dll"}, false},
		{"negative fetch size", Config{Library: LibraryNative, FetchBufferSize: -1}, false},
		{"bad settings", Config{Library: LibraryNative, EngineSettings: `{"SQL":{}}`}, false},
		{"good settings", Config{Library: LibraryNative, EngineSettings: validSettings}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, DefaultFetchBufferSize, tt.cfg.FetchBufferSize)
				return
			}
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestValidateEngineSettings(t *testing.T) {
	require.NoError(t, ValidateEngineSettings(validSettings))

	err := ValidateEngineSettings(`{"PIPELINE":{"CONFIGPATH":"a","RESOURCEPATH":"b","SUPPORTPATH":"c"}}`)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "SQL")

	err = ValidateEngineSettings(`{"PIPELINE":{"CONFIGPATH":"a","RESOURCEPATH":"b","SUPPORTPATH":"c"},"SQL":{"CONNECTION":"x","BACKEND":"NOSQL"}}`)
	assert.ErrorIs(t, err, ErrInvalid)

	err = ValidateEngineSettings(`{not json`)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "library: native\nverbose: true\n")
	t.Setenv(EnvLibrary, "")
	t.Setenv(EnvWASM, "")
	t.Setenv(EnvEngineSettings, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, LibraryNative, cfg.Library)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "g2bridge", cfg.ModuleName)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, "fetch_buffer_size: 512\n")
	t.Setenv(EnvLibrary, "")
	t.Setenv(EnvWASM, "/opt/env.wasm")
	t.Setenv(EnvEngineSettings, "")

	cfg, err := Load(path, func(c *Config) {
		c.WASM.Path = "/opt/flag.wasm"
	})
	require.NoError(t, err)
	assert.Equal(t, "/opt/flag.wasm", cfg.WASM.Path, "overrides run after the environment")
	assert.Equal(t, 512, cfg.FetchBufferSize)

	_, err = Load(path, func(c *Config) {
		c.Library = "shared"
	})
	assert.ErrorIs(t, err, ErrInvalid, "overrides are validated")
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv(EnvLibrary, "")
	t.Setenv(EnvWASM, "/opt/engine.wasm")
	t.Setenv(EnvEngineSettings, validSettings)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, LibraryWASM, cfg.Library)
	assert.Equal(t, "/opt/engine.wasm", cfg.WASM.Path)
}
