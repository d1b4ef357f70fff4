package wasmabi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/g2-bridge/buffer"
	"github.com/wippyai/g2-bridge/client"
	"github.com/wippyai/g2-bridge/errors"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/g2engine"
	"github.com/wippyai/g2-bridge/g2product"
	"github.com/wippyai/g2-bridge/handle"
	"github.com/wippyai/g2-bridge/wasmabi"
)

func newForwarder(t *testing.T, opts ...forward.Option) *forward.Forwarder {
	t.Helper()
	ctx := context.Background()
	lib, err := wasmabi.LoadFile(ctx, "testdata/engine.wasm", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = lib.Close(ctx) })
	return forward.New(lib, opts...)
}

func TestClients_OverWasm(t *testing.T) {
	tracker := buffer.NewTrackingAllocator(nil)
	fw := newForwarder(t, forward.WithResizer(buffer.NewResizer(tracker)))
	eng := g2engine.New(fw)
	ctx := context.Background()

	stats, err := eng.Stats(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"workload":{"loadedRecords":2}}`, stats)

	entity, err := eng.GetEntityByEntityID(ctx, 1)
	require.NoError(t, err)
	assert.JSONEq(t, `{"RESOLVED_ENTITY":{"ENTITY_ID":1}}`, entity)

	missing, err := eng.GetEntityByEntityID(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, missing)

	id, info, err := eng.AddRecordWithInfoWithReturnedRecordID(ctx, "TEST", `{"NAME_FULL":"Robert Smith"}`, "", 0)
	require.NoError(t, err)
	assert.Equal(t, "R1", id)
	assert.Contains(t, info, "AFFECTED_ENTITIES")

	cfgID, err := eng.GetActiveConfigID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4019066234), cfgID)

	assert.Zero(t, tracker.Live(), "response buffers must be released")
}

func TestClients_StrictErrorsOverWasm(t *testing.T) {
	eng := g2engine.New(newForwarder(t), client.WithStrictErrors())
	ctx := context.Background()

	_, err := eng.GetEntityByEntityID(ctx, 0)
	require.ErrorIs(t, err, errors.ErrNotFound)

	var ee *errors.EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 37, ee.Code)
	assert.Equal(t, "Unknown resolved entity value '0'", ee.Message)

	code, err := eng.GetLastExceptionCode(ctx)
	require.NoError(t, err)
	assert.Zero(t, code, "the exception is cleared once reported")

	err = eng.AddRecord(ctx, "CUSTOMERS", "1", "{}", "")
	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestExport_OverWasm(t *testing.T) {
	table := handle.NewTable()
	eng := g2engine.New(newForwarder(t), client.WithHandleTable(table))
	ctx := context.Background()

	export, err := eng.ExportJSONEntityReport(ctx, g2engine.ExportDefaultFlags)
	require.NoError(t, err)
	assert.Equal(t, handle.FromUint32(42), export.Handle())
	assert.Equal(t, 1, table.Len())

	var rows []string
	for row, err := range export.All(ctx) {
		require.NoError(t, err)
		rows = append(rows, row)
	}
	assert.Equal(t, []string{`{"ENTITY_ID":1}`, `{"ENTITY_ID":2}`}, rows)

	require.NoError(t, export.Close(ctx))
	assert.Zero(t, table.Len())

	err = eng.CloseExport(ctx, export.Handle())
	var ee *errors.EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, int64(-1), ee.ReturnCode)
}

func TestProductVersion_OverWasm(t *testing.T) {
	product := g2product.New(newForwarder(t))

	version, err := product.Version(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"PRODUCT_NAME":"Senzing API","VERSION":"3.10.1"}`, version)
}

func TestRedoCount_OverWasm(t *testing.T) {
	eng := g2engine.New(newForwarder(t))

	n, err := eng.CountRedoRecords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
