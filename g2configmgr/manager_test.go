package g2configmgr_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/enginetest"
	"github.com/wippyai/g2-bridge/errors"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/g2configmgr"
)

func TestAddAndSetDefault(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2ConfigMgrAddConfig, func(call *abi.Call) int64 {
			assert.Equal(t, []any{`{"G2_CONFIG":{}}`, "initial"}, call.Args)
			call.Value = 4019066234
			return 0
		}).
		On(abi.G2ConfigMgrSetDefaultConfigID, enginetest.Return(0)).
		On(abi.G2ConfigMgrGetDefaultConfigID, enginetest.RespondValue(0, 4019066234)).
		On(abi.G2ConfigMgrReplaceDefaultConfigID, enginetest.Return(-1)).
		Exception(abi.ComponentConfigMgr, 7221, "7221E|default configuration changed")
	mgr := g2configmgr.New(forward.New(fake))
	ctx := context.Background()

	id, err := mgr.AddConfig(ctx, `{"G2_CONFIG":{}}`, "initial")
	require.NoError(t, err)
	assert.Equal(t, int64(4019066234), id)

	require.NoError(t, mgr.SetDefaultConfigID(ctx, id))

	def, err := mgr.GetDefaultConfigID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, def)

	err = mgr.ReplaceDefaultConfigID(ctx, 1, id)
	require.ErrorIs(t, err, errors.ErrConfiguration)
	assert.ErrorIs(t, err, errors.ErrRetryable)
}

func TestGetConfig(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2ConfigMgrGetConfig, enginetest.Respond(`{"G2_CONFIG":{"CFG_DSRC":[]}}`)).
		On(abi.G2ConfigMgrGetConfigList, enginetest.Respond(`{"CONFIGS":[{"CONFIG_ID":1}]}`))
	mgr := g2configmgr.New(forward.New(fake))
	ctx := context.Background()

	cfg, err := mgr.GetConfig(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, cfg, "CFG_DSRC")

	list, err := mgr.GetConfigList(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"CONFIGS":[{"CONFIG_ID":1}]}`, list)

	configs, err := mgr.ConfigList(ctx)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, int64(1), configs[0].ID)
}
