package g2config

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
)

// Destroy shuts the config component down.
func (c *Config) Destroy(ctx context.Context) (err error) {
	defer c.base.Trace("Destroy")(&err)
	return c.base.Status(ctx, abi.G2ConfigDestroy)
}

// Init initializes the config component.
func (c *Config) Init(ctx context.Context, moduleName string, iniParams string, verboseLogging int) (err error) {
	defer c.base.Trace("Init", zap.String("moduleName", moduleName), zap.Int("verboseLogging", verboseLogging))(&err)
	return c.base.Status(ctx, abi.G2ConfigInit, moduleName, iniParams, int32(verboseLogging))
}
