package g2engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/client"
	"github.com/wippyai/g2-bridge/enginetest"
	"github.com/wippyai/g2-bridge/errors"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/g2engine"
)

func newEngine(fake *enginetest.Fake, opts ...client.Option) *g2engine.Engine {
	return g2engine.New(forward.New(fake), opts...)
}

func TestInitAndDestroy(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2Init, func(call *abi.Call) int64 {
			assert.Equal(t, []any{"test", `{"PIPELINE":{}}`, int32(1)}, call.Args)
			return 0
		}).
		On(abi.G2Destroy, enginetest.Return(0))
	eng := newEngine(fake)
	ctx := context.Background()

	require.NoError(t, eng.Init(ctx, "test", `{"PIPELINE":{}}`, 1))
	require.NoError(t, eng.Destroy(ctx))
}

func TestAddRecord_Failure(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2AddRecord, enginetest.Return(-2)).
		Exception(abi.ComponentEngine, 48, "0048E|G2 is not initialized")
	eng := newEngine(fake)

	err := eng.AddRecord(context.Background(), "TEST", "1", `{"NAME_FULL":"Robert Smith"}`, "")
	require.ErrorIs(t, err, errors.ErrNotInitialized)
	assert.Contains(t, err.Error(), "G2_addRecord")
}

func TestStringResults(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2GetEntityByEntityIDV2, func(call *abi.Call) int64 {
			assert.Equal(t, []any{int64(1), g2engine.EntityDefaultFlags}, call.Args)
			call.Buffers[0].Fill([]byte(`{"RESOLVED_ENTITY":{"ENTITY_ID":1}}`))
			return 0
		}).
		On(abi.G2FindPathByEntityID, func(call *abi.Call) int64 {
			assert.Equal(t, []any{int64(1), int64(2), int32(3)}, call.Args)
			call.Buffers[0].Fill([]byte(`{"ENTITY_PATHS":[]}`))
			return 0
		}).
		On(abi.G2GetEntityByEntityID, enginetest.Fail(-2, "partial"))
	eng := newEngine(fake)
	ctx := context.Background()

	doc, err := eng.GetEntityByEntityIDV2(ctx, 1, g2engine.EntityDefaultFlags)
	require.NoError(t, err)
	assert.JSONEq(t, `{"RESOLVED_ENTITY":{"ENTITY_ID":1}}`, doc)

	doc, err = eng.FindPathByEntityID(ctx, 1, 2, 3)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ENTITY_PATHS":[]}`, doc)

	doc, err = eng.GetEntityByEntityID(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestStrictErrors(t *testing.T) {
	fake := enginetest.New()
	fake.On(abi.G2GetEntityByEntityID,
		fake.Raise(abi.ComponentEngine, 37, "0037E|Unknown resolved entity value '99'", enginetest.Fail(-2, "")))
	eng := newEngine(fake, client.WithStrictErrors())

	_, err := eng.GetEntityByEntityID(context.Background(), 99)
	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestTypedResults(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2GetEntityByEntityIDV2, func(call *abi.Call) int64 {
			if call.Args[0] == int64(1) {
				call.Buffers[0].Fill([]byte(`{"RESOLVED_ENTITY":{"ENTITY_ID":1,"ENTITY_NAME":"Robert Smith"}}`))
			}
			return 0
		}).
		On(abi.G2WhyEntitiesV2, enginetest.Respond(`{"WHY_RESULTS":[{"ENTITY_ID":1,"ENTITY_ID_2":4,"MATCH_INFO":{"WHY_KEY":"+NAME","MATCH_LEVEL_CODE":"POSSIBLY_RELATED"}}]}`))
	eng := newEngine(fake)
	ctx := context.Background()

	entity, err := eng.Entity(ctx, 1, g2engine.EntityDefaultFlags)
	require.NoError(t, err)
	assert.Equal(t, "Robert Smith", entity.Entity.Name)

	_, err = eng.Entity(ctx, 2, g2engine.EntityDefaultFlags)
	var be *errors.Error
	require.ErrorAs(t, err, &be, "no document to decode")
	assert.Equal(t, errors.KindInvalidData, be.Kind)

	why, err := eng.Why(ctx, 1, 4, g2engine.WhyEntityDefaultFlags)
	require.NoError(t, err)
	require.Len(t, why.Results, 1)
	assert.Equal(t, "+NAME", why.Results[0].MatchInfo.WhyKey)
}

func TestStructResults(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2AddRecordWithInfoWithReturnedRecordID, func(call *abi.Call) int64 {
			enginetest.WriteFixed(call.Fixed, "7F3A")
			call.Buffers[0].Fill([]byte(`{"AFFECTED_ENTITIES":[{"ENTITY_ID":5}]}`))
			return 0
		}).
		On(abi.G2ExportConfigAndConfigID, func(call *abi.Call) int64 {
			call.Buffers[0].Fill([]byte(`{"G2_CONFIG":{}}`))
			call.Value = 1001
			return 0
		}).
		On(abi.G2GetActiveConfigID, enginetest.RespondValue(0, 1001)).
		On(abi.G2ProcessRedoRecordWithInfo, enginetest.RespondInfo(0, `{"REDO":1}`, `{"AFFECTED_ENTITIES":[]}`)).
		On(abi.G2GetRedoRecord, enginetest.Respond(""))
	eng := newEngine(fake)
	ctx := context.Background()

	id, info, err := eng.AddRecordWithInfoWithReturnedRecordID(ctx, "TEST", `{}`, "", 0)
	require.NoError(t, err)
	assert.Equal(t, "7F3A", id)
	assert.Contains(t, info, "AFFECTED_ENTITIES")

	cfg, cfgID, err := eng.ExportConfigAndConfigID(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"G2_CONFIG":{}}`, cfg)
	assert.Equal(t, int64(1001), cfgID)

	active, err := eng.GetActiveConfigID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), active)

	redo, info, err := eng.ProcessRedoRecordWithInfo(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, `{"REDO":1}`, redo)
	assert.Equal(t, `{"AFFECTED_ENTITIES":[]}`, info)

	redo, err = eng.GetRedoRecord(ctx)
	require.NoError(t, err)
	assert.Empty(t, redo)
}

func TestStructResult_FailureReported(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2GetActiveConfigID, enginetest.RespondValue(-1, 0)).
		Exception(abi.ComponentEngine, 48, "0048E|not initialized")
	eng := newEngine(fake)

	_, err := eng.GetActiveConfigID(context.Background())
	var ee *errors.EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, int64(-1), ee.ReturnCode)
}

func TestValues(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2CountRedoRecords, enginetest.Return(3)).
		On(abi.G2GetRepositoryLastModifiedTime, enginetest.RespondValue(-1, 1718000000000))
	eng := newEngine(fake)
	ctx := context.Background()

	n, err := eng.CountRedoRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	ts, err := eng.GetRepositoryLastModifiedTime(ctx)
	require.NoError(t, err, "the engine code is not reported")
	assert.Equal(t, int64(1718000000000), ts)
}

func TestExportJSONEntityReport(t *testing.T) {
	rows := []string{`{"RESOLVED_ENTITY":{"ENTITY_ID":1}}`, `{"RESOLVED_ENTITY":{"ENTITY_ID":2}}`}
	fake := enginetest.New().
		Cursor(abi.G2ExportJSONEntityReport, abi.G2FetchNext, abi.G2CloseExport, 0, rows...)
	eng := newEngine(fake)
	ctx := context.Background()

	export, err := eng.ExportJSONEntityReport(ctx, g2engine.ExportDefaultFlags)
	require.NoError(t, err)

	var got []string
	for doc, err := range export.All(ctx) {
		require.NoError(t, err)
		got = append(got, doc)
	}
	require.NoError(t, export.Close(ctx))
	assert.Equal(t, rows, got)

	opens := fake.CallsTo(abi.G2ExportJSONEntityReport)
	require.Len(t, opens, 1)
	assert.Equal(t, []any{g2engine.ExportDefaultFlags}, opens[0].Args)
	assert.Equal(t, 1, fake.Count(abi.G2CloseExport))
	for _, c := range fake.CallsTo(abi.G2FetchNext) {
		assert.Equal(t, export.Handle(), c.Handle())
	}
}

func TestExportCSVEntityReport_RawHandle(t *testing.T) {
	fake := enginetest.New().
		Cursor(abi.G2ExportCSVEntityReport, abi.G2FetchNext, abi.G2CloseExport, 0, "RESOLVED_ENTITY_ID,DATA_SOURCE", "1,TEST")
	eng := newEngine(fake)
	ctx := context.Background()

	export, err := eng.ExportCSVEntityReport(ctx, "*", g2engine.ExportIncludeAllEntities)
	require.NoError(t, err)

	header, err := eng.FetchNext(ctx, export.Handle())
	require.NoError(t, err)
	assert.Equal(t, "RESOLVED_ENTITY_ID,DATA_SOURCE", header)

	row, err := eng.FetchNext(ctx, export.Handle())
	require.NoError(t, err)
	assert.Equal(t, "1,TEST", row)

	end, err := eng.FetchNext(ctx, export.Handle())
	require.NoError(t, err)
	assert.Empty(t, end)

	require.NoError(t, eng.CloseExport(ctx, export.Handle()))
}

func TestExport_OpenFailure(t *testing.T) {
	fake := enginetest.New().
		Cursor(abi.G2ExportJSONEntityReport, abi.G2FetchNext, abi.G2CloseExport, -1).
		Exception(abi.ComponentEngine, 48, "0048E|not initialized")
	eng := newEngine(fake)

	export, err := eng.ExportJSONEntityReport(context.Background(), 0)
	assert.Nil(t, export)
	require.ErrorIs(t, err, errors.ErrNotInitialized)
}

func TestFixedResults(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2AddRecordWithReturnedRecordID, enginetest.RespondFixed(0, "ABCD")).
		On(abi.G2ProcessWithResponse, enginetest.RespondFixed(0, `{"MESSAGE":"ok"}`))
	eng := newEngine(fake)
	ctx := context.Background()

	id, err := eng.AddRecordWithReturnedRecordID(ctx, "TEST", `{}`, "")
	require.NoError(t, err)
	assert.Equal(t, "ABCD", id)

	resp, err := eng.ProcessWithResponse(ctx, `{"DATA_SOURCE":"TEST"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"MESSAGE":"ok"}`, resp)
}

func TestFlags(t *testing.T) {
	assert.Equal(t, int64(1), g2engine.ExportIncludeMultiRecordEntities)
	assert.Equal(t, g2engine.ExportIncludeMultiRecordEntities, g2engine.ExportIncludeResolved)
	assert.Equal(t, int64(1<<5|1), g2engine.ExportIncludeAllEntities)
	assert.Equal(t, int64(0x1e), g2engine.ExportIncludeAllRelationships)
	assert.Equal(t, int64(0x3c0), g2engine.EntityIncludeAllRelations)
	assert.Equal(t, int64(1<<27), g2engine.SearchIncludeStats)
	assert.NotZero(t, g2engine.EntityDefaultFlags&g2engine.EntityIncludeEntityName)
	assert.Zero(t, g2engine.EntityDefaultFlags&g2engine.EntityIncludeAllFeatures)
}
