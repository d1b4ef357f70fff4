package g2config

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/client"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/handle"
	"github.com/wippyai/g2-bridge/response"
)

// Config is the client for the engine's in-memory configuration component.
// Configurations are edited through handles returned by Create and Load,
// which must be released with Close.
type Config struct {
	base client.Base
}

// New creates a config client over fw.
func New(fw *forward.Forwarder, opts ...client.Option) *Config {
	return &Config{base: client.NewBase(fw, abi.ComponentConfig, opts...)}
}

// GetLastException returns the component's last exception message.
func (c *Config) GetLastException(ctx context.Context) (string, error) {
	return c.base.GetLastException(ctx)
}

// GetLastExceptionCode returns the component's last exception code.
func (c *Config) GetLastExceptionCode(ctx context.Context) (int, error) {
	return c.base.GetLastExceptionCode(ctx)
}

// ClearLastException resets the component's last exception.
func (c *Config) ClearLastException(ctx context.Context) error {
	return c.base.ClearLastException(ctx)
}

// SetLogLevel changes the level of the configuration client's logger.
func (c *Config) SetLogLevel(ctx context.Context, level string) error {
	return c.base.SetLogLevel(ctx, level)
}

// Create opens a new configuration built from the engine's template.
func (c *Config) Create(ctx context.Context) (_ handle.Token, err error) {
	defer c.base.Trace("Create")(&err)
	return c.base.Open(ctx, handle.KindConfig, abi.G2ConfigCreate)
}

// Load opens a configuration from its JSON document.
func (c *Config) Load(ctx context.Context, jsonConfig string) (_ handle.Token, err error) {
	defer c.base.Trace("Load")(&err)
	return c.base.Open(ctx, handle.KindConfig, abi.G2ConfigLoad, jsonConfig)
}

// Save returns the JSON document of an open configuration.
func (c *Config) Save(ctx context.Context, configHandle handle.Token) (_ string, err error) {
	defer c.base.Trace("Save", zap.Stringer("configHandle", configHandle))(&err)
	res, err := c.base.Struct(ctx, abi.G2ConfigSave, configHandle)
	return res.Response, err
}

// ListDataSources returns the data sources of an open configuration.
func (c *Config) ListDataSources(ctx context.Context, configHandle handle.Token) (_ string, err error) {
	defer c.base.Trace("ListDataSources", zap.Stringer("configHandle", configHandle))(&err)
	res, err := c.base.Struct(ctx, abi.G2ConfigListDataSources, configHandle)
	return res.Response, err
}

// AddDataSource adds the data source described by inputJSON, for example
// {"DSRC_CODE":"CUSTOMERS"}, and returns the engine's description of it.
func (c *Config) AddDataSource(ctx context.Context, configHandle handle.Token, inputJSON string) (_ string, err error) {
	defer c.base.Trace("AddDataSource", zap.Stringer("configHandle", configHandle), zap.String("inputJson", inputJSON))(&err)
	res, err := c.base.Struct(ctx, abi.G2ConfigAddDataSource, configHandle, inputJSON)
	return res.Response, err
}

// DeleteDataSource removes the data source described by inputJSON.
func (c *Config) DeleteDataSource(ctx context.Context, configHandle handle.Token, inputJSON string) (err error) {
	defer c.base.Trace("DeleteDataSource", zap.Stringer("configHandle", configHandle), zap.String("inputJson", inputJSON))(&err)
	return c.base.Status(ctx, abi.G2ConfigDeleteDataSource, configHandle, inputJSON)
}

// Close releases an open configuration.
func (c *Config) Close(ctx context.Context, configHandle handle.Token) (err error) {
	defer c.base.Trace("Close", zap.Stringer("configHandle", configHandle))(&err)
	return c.base.Close(ctx, abi.G2ConfigClose, configHandle)
}

// DataSources returns the data sources of configHandle decoded.
func (c *Config) DataSources(ctx context.Context, configHandle handle.Token) ([]response.DataSource, error) {
	doc, err := c.ListDataSources(ctx, configHandle)
	if err != nil {
		return nil, err
	}
	list, err := response.DecodeDataSources(doc)
	if err != nil {
		return nil, err
	}
	return list.DataSources, nil
}
