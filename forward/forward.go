package forward

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/buffer"
	"github.com/wippyai/g2-bridge/errors"
)

const (
	// DefaultFixedSize is the caller-owned buffer size for fetch and
	// fixed-buffer calls.
	DefaultFixedSize = 65535
	// RecordIDSize is the buffer size for engine-assigned record IDs.
	RecordIDSize = 250
)

// CallInfo describes one completed forwarding call.
type CallInfo struct {
	Err        error
	Symbol     abi.Symbol
	Template   abi.Template
	Duration   time.Duration
	ReturnCode int64
	Grows      int
}

// Hook observes completed calls.
type Hook interface {
	AfterCall(CallInfo)
}

// HookFunc adapts a function to Hook.
type HookFunc func(CallInfo)

// AfterCall calls f(info).
func (f HookFunc) AfterCall(info CallInfo) {
	f(info)
}

// Forwarder runs engine calls through their templates.
type Forwarder struct {
	lib       abi.Library
	resizer   buffer.Resizer
	logger    *zap.Logger
	hooks     []Hook
	fixedSize int
}

// Option configures a Forwarder.
type Option func(*Forwarder)

// WithResizer sets the resize capability handed to the engine.
func WithResizer(r buffer.Resizer) Option {
	return func(f *Forwarder) {
		f.resizer = r
	}
}

// WithLogger sets the call logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Forwarder) {
		f.logger = l
	}
}

// WithHook adds a call observer.
func WithHook(h Hook) Option {
	return func(f *Forwarder) {
		f.hooks = append(f.hooks, h)
	}
}

// WithFixedSize sets the buffer size Dispatch uses for fetch and
// fixed-buffer calls.
func WithFixedSize(n int) Option {
	return func(f *Forwarder) {
		if n > 0 {
			f.fixedSize = n
		}
	}
}

// New creates a Forwarder over lib.
func New(lib abi.Library, opts ...Option) *Forwarder {
	f := &Forwarder{
		lib:       lib,
		resizer:   buffer.Default,
		logger:    Logger(),
		fixedSize: DefaultFixedSize,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Library returns the underlying engine library.
func (f *Forwarder) Library() abi.Library {
	return f.lib
}

// Logger returns the forwarder's logger.
func (f *Forwarder) Logger() *zap.Logger {
	return f.logger
}

// spec looks sym up and checks it is forwarded through want.
func (f *Forwarder) spec(sym abi.Symbol, want abi.Template) (abi.Spec, error) {
	if f.lib == nil {
		return abi.Spec{}, errors.NotInitialized(errors.PhaseInvoke, "engine library")
	}
	s, ok := abi.Lookup(sym)
	if !ok {
		return abi.Spec{}, errors.NotFound(errors.PhaseLower, "entry point", string(sym))
	}
	if s.Template != want {
		return abi.Spec{}, errors.New(errors.PhaseLower, errors.KindUnsupported).
			Path(string(sym)).
			Detail("entry point uses the %s template, not %s", s.Template, want).
			Build()
	}
	return s, nil
}

func (f *Forwarder) invoke(ctx context.Context, spec abi.Spec, call *abi.Call) (int64, error) {
	start := time.Now()

	var rc int64
	err := spec.Check(call)
	if err == nil {
		rc, err = f.lib.Invoke(ctx, call)
	}

	info := CallInfo{
		Symbol:     spec.Symbol,
		Template:   spec.Template,
		ReturnCode: rc,
		Duration:   time.Since(start),
		Err:        err,
	}
	for _, b := range call.Buffers {
		info.Grows += b.Grows()
	}

	if ce := f.logger.Check(zap.DebugLevel, "engine call"); ce != nil {
		ce.Write(
			zap.String("symbol", string(spec.Symbol)),
			zap.Stringer("template", spec.Template),
			zap.Int64("return_code", rc),
			zap.Int("grows", info.Grows),
			zap.Duration("duration", info.Duration),
			zap.Error(err),
		)
	}
	for _, h := range f.hooks {
		h.AfterCall(info)
	}
	return rc, err
}

func (f *Forwarder) buffers(n int) []*buffer.Buffer {
	if n == 0 {
		return nil
	}
	bufs := make([]*buffer.Buffer, n)
	for i := range bufs {
		bufs[i] = buffer.New(f.resizer)
	}
	return bufs
}

func release(bufs []*buffer.Buffer) {
	for _, b := range bufs {
		b.Release()
	}
}
