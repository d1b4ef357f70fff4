package g2configmgr

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/client"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/response"
)

// Manager is the client for the engine's configuration repository.
type Manager struct {
	base client.Base
}

// New creates a config manager client over fw.
func New(fw *forward.Forwarder, opts ...client.Option) *Manager {
	return &Manager{base: client.NewBase(fw, abi.ComponentConfigMgr, opts...)}
}

// GetLastException returns the component's last exception message.
func (m *Manager) GetLastException(ctx context.Context) (string, error) {
	return m.base.GetLastException(ctx)
}

// GetLastExceptionCode returns the component's last exception code.
func (m *Manager) GetLastExceptionCode(ctx context.Context) (int, error) {
	return m.base.GetLastExceptionCode(ctx)
}

// ClearLastException resets the component's last exception.
func (m *Manager) ClearLastException(ctx context.Context) error {
	return m.base.ClearLastException(ctx)
}

// SetLogLevel changes the level of the configuration manager client's logger.
func (m *Manager) SetLogLevel(ctx context.Context, level string) error {
	return m.base.SetLogLevel(ctx, level)
}

// AddConfig stores a configuration document and returns its new ID.
func (m *Manager) AddConfig(ctx context.Context, configStr, configComments string) (_ int64, err error) {
	defer m.base.Trace("AddConfig", zap.String("configComments", configComments))(&err)
	res, err := m.base.Struct(ctx, abi.G2ConfigMgrAddConfig, configStr, configComments)
	return res.Value, err
}

// GetConfig returns the stored configuration configID.
func (m *Manager) GetConfig(ctx context.Context, configID int64) (_ string, err error) {
	defer m.base.Trace("GetConfig", zap.Int64("configID", configID))(&err)
	res, err := m.base.Struct(ctx, abi.G2ConfigMgrGetConfig, configID)
	return res.Response, err
}

// GetConfigList returns the IDs and comments of every stored configuration.
func (m *Manager) GetConfigList(ctx context.Context) (_ string, err error) {
	defer m.base.Trace("GetConfigList")(&err)
	res, err := m.base.Struct(ctx, abi.G2ConfigMgrGetConfigList)
	return res.Response, err
}

// GetDefaultConfigID returns the ID of the default configuration, or 0 when
// none is set.
func (m *Manager) GetDefaultConfigID(ctx context.Context) (_ int64, err error) {
	defer m.base.Trace("GetDefaultConfigID")(&err)
	res, err := m.base.Struct(ctx, abi.G2ConfigMgrGetDefaultConfigID)
	return res.Value, err
}

// ConfigList returns the stored configurations decoded.
func (m *Manager) ConfigList(ctx context.Context) ([]response.ConfigEntry, error) {
	doc, err := m.GetConfigList(ctx)
	if err != nil {
		return nil, err
	}
	list, err := response.DecodeConfigList(doc)
	if err != nil {
		return nil, err
	}
	return list.Configs, nil
}
