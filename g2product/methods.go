package g2product

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
)

// Destroy shuts the product component down.
func (p *Product) Destroy(ctx context.Context) (err error) {
	defer p.base.Trace("Destroy")(&err)
	return p.base.Status(ctx, abi.G2ProductDestroy)
}

// Init initializes the product component.
func (p *Product) Init(ctx context.Context, moduleName string, iniParams string, verboseLogging int) (err error) {
	defer p.base.Trace("Init", zap.String("moduleName", moduleName), zap.Int("verboseLogging", verboseLogging))(&err)
	return p.base.Status(ctx, abi.G2ProductInit, moduleName, iniParams, int32(verboseLogging))
}
