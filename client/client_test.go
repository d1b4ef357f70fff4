package client_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/client"
	"github.com/wippyai/g2-bridge/enginetest"
	"github.com/wippyai/g2-bridge/errors"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/handle"
)

func newBase(fake *enginetest.Fake, opts ...client.Option) *client.Base {
	b := client.NewBase(forward.New(fake), abi.ComponentEngine, opts...)
	return &b
}

func TestCheck_BuildsEngineErrorAndClears(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2AddRecord, enginetest.Return(-2)).
		Exception(abi.ComponentEngine, 30121, "30121E|JSON Parsing Failure")
	b := newBase(fake)
	ctx := context.Background()

	err := b.Status(ctx, abi.G2AddRecord, "TEST", "1", "{", "")
	require.Error(t, err)

	var ee *errors.EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "G2_addRecord", ee.Symbol)
	assert.Equal(t, int64(-2), ee.ReturnCode)
	assert.Equal(t, 30121, ee.Code)
	assert.Equal(t, "JSON Parsing Failure", ee.Message)
	assert.ErrorIs(t, err, errors.ErrMalformedJSON)
	assert.ErrorIs(t, err, errors.ErrBadInput)

	assert.Equal(t, []abi.Symbol{
		abi.G2AddRecord,
		abi.G2GetLastException,
		abi.G2GetLastExceptionCode,
		abi.G2ClearLastException,
	}, fake.Symbols())

	code, err := b.GetLastExceptionCode(ctx)
	require.NoError(t, err)
	assert.Zero(t, code)
}

func TestStatus_SuccessDoesNotProbe(t *testing.T) {
	fake := enginetest.New().On(abi.G2PrimeEngine, enginetest.Return(0))
	b := newBase(fake)

	require.NoError(t, b.Status(context.Background(), abi.G2PrimeEngine))
	assert.Equal(t, []abi.Symbol{abi.G2PrimeEngine}, fake.Symbols())
}

func TestString_SwallowedUnlessStrict(t *testing.T) {
	script := func() *enginetest.Fake {
		fake := enginetest.New()
		return fake.On(abi.G2GetEntityByEntityID,
			fake.Raise(abi.ComponentEngine, 37, "0037E|Unknown resolved entity value '-4'", enginetest.Fail(-2, "partial")))
	}
	ctx := context.Background()

	t.Run("default", func(t *testing.T) {
		fake := script()
		out, err := newBase(fake).String(ctx, abi.G2GetEntityByEntityID, int64(-4))
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Equal(t, []abi.Symbol{abi.G2GetEntityByEntityID}, fake.Symbols())
	})

	t.Run("strict", func(t *testing.T) {
		fake := script()
		out, err := newBase(fake, client.WithStrictErrors()).String(ctx, abi.G2GetEntityByEntityID, int64(-4))
		assert.Empty(t, out)
		require.ErrorIs(t, err, errors.ErrNotFound)

		var ee *errors.EngineError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, 37, ee.Code)
		assert.Equal(t, int64(37), ee.ReturnCode)
	})

	t.Run("strict with clean exception", func(t *testing.T) {
		fake := enginetest.New().On(abi.G2Stats, enginetest.Respond(""))
		out, err := newBase(fake, client.WithStrictErrors()).String(ctx, abi.G2Stats)
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Equal(t, 1, fake.Count(abi.G2GetLastExceptionCode))
	})

	t.Run("strict ignores an earlier exception", func(t *testing.T) {
		fake := enginetest.New().
			On(abi.G2Stats, enginetest.Respond("")).
			Exception(abi.ComponentEngine, 7213, "7213E|left by an unchecked call")
		out, err := newBase(fake, client.WithStrictErrors()).String(ctx, abi.G2Stats)
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Equal(t, []abi.Symbol{
			abi.G2ClearLastException,
			abi.G2Stats,
			abi.G2GetLastExceptionCode,
		}, fake.Symbols())
	})
}

func TestStruct_ReturnsResultWithError(t *testing.T) {
	fake := enginetest.New().
		On(abi.G2GetRedoRecord, enginetest.Fail(-1, "half a record")).
		Exception(abi.ComponentEngine, 1007, "1007E|connection lost")
	b := newBase(fake)

	res, err := b.Struct(context.Background(), abi.G2GetRedoRecord)
	require.ErrorIs(t, err, errors.ErrRetryable)
	assert.Equal(t, "half a record", res.Response)
	assert.Equal(t, int64(-1), res.ReturnCode)
}

func TestIterator(t *testing.T) {
	fake := enginetest.New().
		Cursor(abi.G2ExportJSONEntityReport, abi.G2FetchNext, abi.G2CloseExport, 0, "a", "b")
	table := handle.NewTable()
	b := newBase(fake, client.WithHandleTable(table), client.WithFetchBufferSize(8))
	ctx := context.Background()

	h, err := b.Open(ctx, handle.KindExport, abi.G2ExportJSONEntityReport, int64(0))
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	it := b.Iterator(h, abi.G2FetchNext, abi.G2CloseExport)
	assert.Equal(t, h, it.Handle())

	var rows []string
	for row, err := range it.All(ctx) {
		require.NoError(t, err)
		rows = append(rows, row)
	}
	assert.Equal(t, []string{"a", "b"}, rows)

	_, err = it.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, it.Close(ctx))
	require.NoError(t, it.Close(ctx))
	assert.Equal(t, 1, fake.Count(abi.G2CloseExport))
	assert.Zero(t, table.Len())

	_, err = it.Next(ctx)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindClosed, e.Kind)
}

func TestFetch_NegativeCodeIsError(t *testing.T) {
	fake := enginetest.New().
		Cursor(abi.G2ExportJSONEntityReport, abi.G2FetchNext, abi.G2CloseExport, 0, "a").
		Exception(abi.ComponentEngine, 2, "0002E|Invalid handle")
	b := newBase(fake)

	_, err := b.Fetch(context.Background(), abi.G2FetchNext, handle.Token(0xdead))
	var ee *errors.EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, int64(-1), ee.ReturnCode)
	assert.Equal(t, 2, ee.Code)
}

func TestOpen_FailureIsNotTracked(t *testing.T) {
	fake := enginetest.New().
		Cursor(abi.G2ExportJSONEntityReport, abi.G2FetchNext, abi.G2CloseExport, -3).
		Exception(abi.ComponentEngine, 7, "0007E|bad flags")
	table := handle.NewTable()
	b := newBase(fake, client.WithHandleTable(table))

	_, err := b.Open(context.Background(), handle.KindExport, abi.G2ExportJSONEntityReport, int64(-1))
	require.Error(t, err)
	assert.Zero(t, table.Len())
}

func TestOptions(t *testing.T) {
	b := newBase(enginetest.New(), client.WithFetchBufferSize(1), client.WithLogger(nil))
	assert.Equal(t, forward.DefaultFixedSize, b.Options().FetchSize)
	assert.NotNil(t, b.Logger())
	assert.Equal(t, abi.ComponentEngine, b.Component())
}

func TestSetLogLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	fake := enginetest.New().On(abi.G2PrimeEngine, enginetest.Return(0))
	b := newBase(fake, client.WithLogger(zap.New(core)))
	ctx := context.Background()

	trace := func() {
		var err error
		b.Trace("PrimeEngine")(&err)
	}

	trace()
	assert.Equal(t, 2, logs.Len(), "enter and exit at debug")
	assert.Equal(t, zapcore.DebugLevel, b.LogLevel())

	require.NoError(t, b.SetLogLevel(ctx, "warn"))
	assert.Equal(t, zapcore.WarnLevel, b.LogLevel())
	trace()
	assert.Equal(t, 2, logs.Len(), "debug entries are dropped")

	b.Logger().Warn("still logged")
	assert.Equal(t, 3, logs.Len())
	assert.Equal(t, "G2", logs.All()[2].ContextMap()["component"])

	err := b.SetLogLevel(ctx, "chatty")
	var be *errors.Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, errors.KindInvalidInput, be.Kind)
	assert.Equal(t, zapcore.WarnLevel, b.LogLevel())
}
