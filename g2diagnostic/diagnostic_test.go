package g2diagnostic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/enginetest"
	"github.com/wippyai/g2-bridge/errors"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/g2diagnostic"
)

func TestSystemValues(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2DiagnosticGetAvailableMemory, enginetest.Return(8<<30)).
		On(abi.G2DiagnosticGetTotalSystemMemory, enginetest.Return(16<<30)).
		On(abi.G2DiagnosticGetLogicalCores, enginetest.Return(8)).
		On(abi.G2DiagnosticGetPhysicalCores, enginetest.Return(4))
	diag := g2diagnostic.New(forward.New(fake))
	ctx := context.Background()

	avail, err := diag.GetAvailableMemory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8<<30), avail)

	total, err := diag.GetTotalSystemMemory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(16<<30), total)

	logical, err := diag.GetLogicalCores(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, logical)

	physical, err := diag.GetPhysicalCores(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, physical)
}

func TestCoreCountRange(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2DiagnosticGetLogicalCores, enginetest.Return(1<<40)).
		On(abi.G2DiagnosticGetPhysicalCores, enginetest.Return(-1))
	diag := g2diagnostic.New(forward.New(fake))
	ctx := context.Background()

	_, err := diag.GetLogicalCores(ctx)
	var be *errors.Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, errors.KindOverflow, be.Kind)

	_, err = diag.GetPhysicalCores(ctx)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, errors.KindInvalidData, be.Kind)
}

func TestStringResults(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2DiagnosticCheckDBPerf, func(call *abi.Call) int64 {
			assert.Equal(t, []any{int32(3)}, call.Args)
			call.Buffers[0].Fill([]byte(`{"numRecordsInserted":100}`))
			return 0
		}).
		On(abi.G2DiagnosticGetEntitySizeBreakdown, func(call *abi.Call) int64 {
			assert.Equal(t, []any{uint64(2), int32(1)}, call.Args)
			call.Buffers[0].Fill([]byte(`[]`))
			return 0
		}).
		On(abi.G2DiagnosticGetDBInfo, enginetest.Fail(-1, ""))
	diag := g2diagnostic.New(forward.New(fake))
	ctx := context.Background()

	perf, err := diag.CheckDBPerf(ctx, 3)
	require.NoError(t, err)
	assert.JSONEq(t, `{"numRecordsInserted":100}`, perf)

	sizes, err := diag.GetEntitySizeBreakdown(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, `[]`, sizes)

	info, err := diag.GetDBInfo(ctx)
	require.NoError(t, err)
	assert.Empty(t, info)
}

func TestEntityListBySize(t *testing.T) {
	fake := enginetest.New().
		Cursor(abi.G2DiagnosticGetEntityListBySize, abi.G2DiagnosticFetchNextEntityBySize,
			abi.G2DiagnosticCloseEntityListBySize, 0, `[{"ENTITY_ID":1}]`, `[{"ENTITY_ID":7}]`)
	diag := g2diagnostic.New(forward.New(fake))
	ctx := context.Background()

	list, err := diag.GetEntityListBySize(ctx, 3)
	require.NoError(t, err)

	var got []string
	for batch, err := range list.All(ctx) {
		require.NoError(t, err)
		got = append(got, batch)
	}
	assert.Equal(t, []string{`[{"ENTITY_ID":1}]`, `[{"ENTITY_ID":7}]`}, got)
	require.NoError(t, list.Close(ctx))

	opens := fake.CallsTo(abi.G2DiagnosticGetEntityListBySize)
	require.Len(t, opens, 1)
	assert.Equal(t, []any{uint64(3)}, opens[0].Args)
}

func TestEntityListBySize_FailedOpenSurfacesOnFetch(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2DiagnosticGetEntityListBySize, enginetest.Return(-2)).
		On(abi.G2DiagnosticFetchNextEntityBySize, enginetest.Return(-1)).
		Exception(abi.ComponentDiagnostic, 48, "0048E|not initialized")
	diag := g2diagnostic.New(forward.New(fake))
	ctx := context.Background()

	list, err := diag.GetEntityListBySize(ctx, 1)
	require.NoError(t, err)
	assert.True(t, list.Handle().IsZero())

	_, err = list.Next(ctx)
	require.ErrorIs(t, err, errors.ErrNotInitialized)
}
