package g2diagnostic

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/client"
	"github.com/wippyai/g2-bridge/errors"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/handle"
)

// Diagnostic is the client for the engine's diagnostic component.
type Diagnostic struct {
	base client.Base
}

// New creates a diagnostic client over fw.
func New(fw *forward.Forwarder, opts ...client.Option) *Diagnostic {
	return &Diagnostic{base: client.NewBase(fw, abi.ComponentDiagnostic, opts...)}
}

// GetLastException returns the component's last exception message.
func (d *Diagnostic) GetLastException(ctx context.Context) (string, error) {
	return d.base.GetLastException(ctx)
}

// GetLastExceptionCode returns the component's last exception code.
func (d *Diagnostic) GetLastExceptionCode(ctx context.Context) (int, error) {
	return d.base.GetLastExceptionCode(ctx)
}

// ClearLastException resets the component's last exception.
func (d *Diagnostic) ClearLastException(ctx context.Context) error {
	return d.base.ClearLastException(ctx)
}

// SetLogLevel changes the level of the diagnostic client's logger.
func (d *Diagnostic) SetLogLevel(ctx context.Context, level string) error {
	return d.base.SetLogLevel(ctx, level)
}

// GetAvailableMemory returns the host's available memory in bytes.
func (d *Diagnostic) GetAvailableMemory(ctx context.Context) (_ int64, err error) {
	defer d.base.Trace("GetAvailableMemory")(&err)
	return d.base.Forwarder().Value(ctx, abi.G2DiagnosticGetAvailableMemory)
}

// GetTotalSystemMemory returns the host's total memory in bytes.
func (d *Diagnostic) GetTotalSystemMemory(ctx context.Context) (_ int64, err error) {
	defer d.base.Trace("GetTotalSystemMemory")(&err)
	return d.base.Forwarder().Value(ctx, abi.G2DiagnosticGetTotalSystemMemory)
}

// GetLogicalCores returns the number of logical cores.
func (d *Diagnostic) GetLogicalCores(ctx context.Context) (_ int, err error) {
	defer d.base.Trace("GetLogicalCores")(&err)
	return d.cores(ctx, abi.G2DiagnosticGetLogicalCores)
}

// GetPhysicalCores returns the number of physical cores.
func (d *Diagnostic) GetPhysicalCores(ctx context.Context) (_ int, err error) {
	defer d.base.Trace("GetPhysicalCores")(&err)
	return d.cores(ctx, abi.G2DiagnosticGetPhysicalCores)
}

// cores reads a core count, which the engine returns as a C int.
func (d *Diagnostic) cores(ctx context.Context, sym abi.Symbol) (int, error) {
	n, err := d.base.Forwarder().Value(ctx, sym)
	if err != nil {
		return 0, err
	}
	switch {
	case n < 0:
		return 0, errors.InvalidData(errors.PhaseLift, []string{string(sym)}, fmt.Sprintf("negative core count %d", n))
	case n > math.MaxInt32:
		return 0, errors.Overflow(errors.PhaseLift, []string{string(sym)}, n, "int")
	}
	return int(n), nil
}

// GetEntityListBySize starts a listing of entities with entitySize records.
// The engine's return code is not checked; a failed open shows up as an error
// on the first fetch. The caller must close the returned iterator.
func (d *Diagnostic) GetEntityListBySize(ctx context.Context, entitySize uint64) (_ *client.Iterator, err error) {
	defer d.base.Trace("GetEntityListBySize", zap.Uint64("entitySize", entitySize))(&err)
	h, err := d.base.OpenUnchecked(ctx, handle.KindEntityList, abi.G2DiagnosticGetEntityListBySize, entitySize)
	if err != nil {
		return nil, err
	}
	return d.base.Iterator(h, abi.G2DiagnosticFetchNextEntityBySize, abi.G2DiagnosticCloseEntityListBySize), nil
}

// FetchNextEntityBySize reads the next batch of an entity listing. An empty
// result means the listing is exhausted.
func (d *Diagnostic) FetchNextEntityBySize(ctx context.Context, entityListBySizeHandle handle.Token) (_ string, err error) {
	defer d.base.Trace("FetchNextEntityBySize", zap.Stringer("entityListBySizeHandle", entityListBySizeHandle))(&err)
	return d.base.Fetch(ctx, abi.G2DiagnosticFetchNextEntityBySize, entityListBySizeHandle)
}

// CloseEntityListBySize releases an entity listing.
func (d *Diagnostic) CloseEntityListBySize(ctx context.Context, entityListBySizeHandle handle.Token) (err error) {
	defer d.base.Trace("CloseEntityListBySize", zap.Stringer("entityListBySizeHandle", entityListBySizeHandle))(&err)
	return d.base.Close(ctx, abi.G2DiagnosticCloseEntityListBySize, entityListBySizeHandle)
}
