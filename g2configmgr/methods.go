package g2configmgr

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
)

// Destroy shuts the config manager down.
func (m *Manager) Destroy(ctx context.Context) (err error) {
	defer m.base.Trace("Destroy")(&err)
	return m.base.Status(ctx, abi.G2ConfigMgrDestroy)
}

// Init initializes the config manager.
func (m *Manager) Init(ctx context.Context, moduleName string, iniParams string, verboseLogging int) (err error) {
	defer m.base.Trace("Init", zap.String("moduleName", moduleName), zap.Int("verboseLogging", verboseLogging))(&err)
	return m.base.Status(ctx, abi.G2ConfigMgrInit, moduleName, iniParams, int32(verboseLogging))
}

// ReplaceDefaultConfigID moves the default configuration from oldConfigID to newConfigID. It fails if the default changed concurrently.
func (m *Manager) ReplaceDefaultConfigID(ctx context.Context, oldConfigID int64, newConfigID int64) (err error) {
	defer m.base.Trace("ReplaceDefaultConfigID", zap.Int64("oldConfigID", oldConfigID), zap.Int64("newConfigID", newConfigID))(&err)
	return m.base.Status(ctx, abi.G2ConfigMgrReplaceDefaultConfigID, oldConfigID, newConfigID)
}

// SetDefaultConfigID makes configID the default configuration.
func (m *Manager) SetDefaultConfigID(ctx context.Context, configID int64) (err error) {
	defer m.base.Trace("SetDefaultConfigID", zap.Int64("configID", configID))(&err)
	return m.base.Status(ctx, abi.G2ConfigMgrSetDefaultConfigID, configID)
}
