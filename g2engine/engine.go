package g2engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/client"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/handle"
	"github.com/wippyai/g2-bridge/response"
)

// Engine is the client for the core engine component.
type Engine struct {
	base client.Base
}

// New creates an engine client over fw.
func New(fw *forward.Forwarder, opts ...client.Option) *Engine {
	return &Engine{base: client.NewBase(fw, abi.ComponentEngine, opts...)}
}

// GetLastException returns the engine's last exception message.
func (e *Engine) GetLastException(ctx context.Context) (string, error) {
	return e.base.GetLastException(ctx)
}

// GetLastExceptionCode returns the engine's last exception code.
func (e *Engine) GetLastExceptionCode(ctx context.Context) (int, error) {
	return e.base.GetLastExceptionCode(ctx)
}

// ClearLastException resets the engine's last exception.
func (e *Engine) ClearLastException(ctx context.Context) error {
	return e.base.ClearLastException(ctx)
}

// SetLogLevel changes the level of the engine client's logger.
func (e *Engine) SetLogLevel(ctx context.Context, level string) error {
	return e.base.SetLogLevel(ctx, level)
}

// AddRecordWithReturnedRecordID adds a record without an ID and returns the
// ID the engine assigned.
func (e *Engine) AddRecordWithReturnedRecordID(ctx context.Context, dataSourceCode, jsonData, loadID string) (_ string, err error) {
	defer e.base.Trace("AddRecordWithReturnedRecordID", zap.String("dataSourceCode", dataSourceCode), zap.String("loadID", loadID))(&err)
	return e.base.Fixed(ctx, abi.G2AddRecordWithReturnedRecordID, dataSourceCode, jsonData, loadID)
}

// AddRecordWithInfoWithReturnedRecordID adds a record without an ID and
// returns the assigned ID and the affected entities.
func (e *Engine) AddRecordWithInfoWithReturnedRecordID(ctx context.Context, dataSourceCode, jsonData, loadID string, flags int64) (recordID, info string, err error) {
	defer e.base.Trace("AddRecordWithInfoWithReturnedRecordID", zap.String("dataSourceCode", dataSourceCode), zap.Int64("flags", flags))(&err)
	res, err := e.base.Struct(ctx, abi.G2AddRecordWithInfoWithReturnedRecordID, dataSourceCode, jsonData, loadID, flags)
	return res.Fixed, res.Response, err
}

// ExportConfigAndConfigID returns the running configuration and its ID.
func (e *Engine) ExportConfigAndConfigID(ctx context.Context) (config string, configID int64, err error) {
	defer e.base.Trace("ExportConfigAndConfigID")(&err)
	res, err := e.base.Struct(ctx, abi.G2ExportConfigAndConfigID)
	return res.Response, res.Value, err
}

// GetActiveConfigID returns the ID of the configuration the engine runs.
func (e *Engine) GetActiveConfigID(ctx context.Context) (_ int64, err error) {
	defer e.base.Trace("GetActiveConfigID")(&err)
	res, err := e.base.Struct(ctx, abi.G2GetActiveConfigID)
	return res.Value, err
}

// GetRedoRecord returns the next queued redo record, or "" when none is
// queued.
func (e *Engine) GetRedoRecord(ctx context.Context) (_ string, err error) {
	defer e.base.Trace("GetRedoRecord")(&err)
	res, err := e.base.Struct(ctx, abi.G2GetRedoRecord)
	return res.Response, err
}

// ProcessRedoRecord processes the next redo record and returns it.
func (e *Engine) ProcessRedoRecord(ctx context.Context) (_ string, err error) {
	defer e.base.Trace("ProcessRedoRecord")(&err)
	res, err := e.base.Struct(ctx, abi.G2ProcessRedoRecord)
	return res.Response, err
}

// ProcessRedoRecordWithInfo processes the next redo record and returns it
// along with the affected entities.
func (e *Engine) ProcessRedoRecordWithInfo(ctx context.Context, flags int64) (record, info string, err error) {
	defer e.base.Trace("ProcessRedoRecordWithInfo", zap.Int64("flags", flags))(&err)
	res, err := e.base.Struct(ctx, abi.G2ProcessRedoRecordWithInfo, flags)
	return res.Response, res.Info, err
}

// ProcessWithResponse is Process returning the engine response in a fixed
// buffer.
func (e *Engine) ProcessWithResponse(ctx context.Context, record string) (_ string, err error) {
	defer e.base.Trace("ProcessWithResponse")(&err)
	return e.base.Fixed(ctx, abi.G2ProcessWithResponse, record)
}

// CountRedoRecords returns the number of queued redo records.
func (e *Engine) CountRedoRecords(ctx context.Context) (_ int64, err error) {
	defer e.base.Trace("CountRedoRecords")(&err)
	return e.base.Forwarder().Value(ctx, abi.G2CountRedoRecords)
}

// GetRepositoryLastModifiedTime returns the repository's last modification
// time in engine ticks. The engine's return code is not reported.
func (e *Engine) GetRepositoryLastModifiedTime(ctx context.Context) (_ int64, err error) {
	defer e.base.Trace("GetRepositoryLastModifiedTime")(&err)
	return e.base.Forwarder().ValueOut(ctx, abi.G2GetRepositoryLastModifiedTime)
}

// ExportJSONEntityReport starts a JSON export. Each item is one entity
// document. The caller must close the returned iterator.
func (e *Engine) ExportJSONEntityReport(ctx context.Context, flags int64) (_ *client.Iterator, err error) {
	defer e.base.Trace("ExportJSONEntityReport", zap.Int64("flags", flags))(&err)
	h, err := e.base.Open(ctx, handle.KindExport, abi.G2ExportJSONEntityReport, flags)
	if err != nil {
		return nil, err
	}
	return e.base.Iterator(h, abi.G2FetchNext, abi.G2CloseExport), nil
}

// ExportCSVEntityReport starts a CSV export of csvColumnList. The first item
// is the header line. The caller must close the returned iterator.
func (e *Engine) ExportCSVEntityReport(ctx context.Context, csvColumnList string, flags int64) (_ *client.Iterator, err error) {
	defer e.base.Trace("ExportCSVEntityReport", zap.String("csvColumnList", csvColumnList), zap.Int64("flags", flags))(&err)
	h, err := e.base.Open(ctx, handle.KindExport, abi.G2ExportCSVEntityReport, csvColumnList, flags)
	if err != nil {
		return nil, err
	}
	return e.base.Iterator(h, abi.G2FetchNext, abi.G2CloseExport), nil
}

// FetchNext reads the next item of an export handle. An empty result means
// the export is exhausted.
func (e *Engine) FetchNext(ctx context.Context, responseHandle handle.Token) (_ string, err error) {
	defer e.base.Trace("FetchNext", zap.Stringer("responseHandle", responseHandle))(&err)
	return e.base.Fetch(ctx, abi.G2FetchNext, responseHandle)
}

// CloseExport releases an export handle.
func (e *Engine) CloseExport(ctx context.Context, responseHandle handle.Token) (err error) {
	defer e.base.Trace("CloseExport", zap.Stringer("responseHandle", responseHandle))(&err)
	return e.base.Close(ctx, abi.G2CloseExport, responseHandle)
}

// Entity returns entity entityID decoded. An entity the engine does not
// know is reported as an error even without strict errors, since there is
// no document to decode.
func (e *Engine) Entity(ctx context.Context, entityID, flags int64) (*response.EntityResponse, error) {
	doc, err := e.GetEntityByEntityIDV2(ctx, entityID, flags)
	if err != nil {
		return nil, err
	}
	return response.DecodeEntity(doc)
}

// Why explains how entities entityID1 and entityID2 relate.
func (e *Engine) Why(ctx context.Context, entityID1, entityID2, flags int64) (*response.WhyResponse, error) {
	doc, err := e.WhyEntitiesV2(ctx, entityID1, entityID2, flags)
	if err != nil {
		return nil, err
	}
	return response.DecodeWhy(doc)
}
