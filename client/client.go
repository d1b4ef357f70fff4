package client

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/errors"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/handle"
)

// Options holds settings shared by every component client.
type Options struct {
	Logger    *zap.Logger
	Handles   *handle.Table
	FetchSize int
	Strict    bool
}

// Option configures a component client.
type Option func(*Options)

// WithLogger sets the client's logger. Method entry and exit are logged at
// debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStrictErrors makes string-result methods check the engine's last
// exception code when they come back empty, and report a non-zero code as an
// error instead of an empty result.
func WithStrictErrors() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithFetchBufferSize sets the caller-owned buffer size used by iterators.
func WithFetchBufferSize(n int) Option {
	return func(o *Options) {
		if n > 1 {
			o.FetchSize = n
		}
	}
}

// WithHandleTable registers every handle the client opens in t until it is
// closed, so callers without pointer types can refer to it by ID.
func WithHandleTable(t *handle.Table) Option {
	return func(o *Options) {
		o.Handles = t
	}
}

// Base carries what every component client needs: the forwarder, the
// component's exception entry points and the shared options.
type Base struct {
	fw        *forward.Forwarder
	opts      Options
	component abi.Component
	level     zap.AtomicLevel
}

// NewBase creates the shared part of a client for comp.
func NewBase(fw *forward.Forwarder, comp abi.Component, opts ...Option) Base {
	o := Options{
		Logger:    fw.Logger(),
		FetchSize: forward.DefaultFixedSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	o.Logger = o.Logger.
		With(zap.String("component", string(comp))).
		WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return &levelCore{Core: c, level: level}
		}))
	return Base{fw: fw, opts: o, component: comp, level: level}
}

// Forwarder returns the underlying forwarder.
func (b *Base) Forwarder() *forward.Forwarder {
	return b.fw
}

// Logger returns the client's logger.
func (b *Base) Logger() *zap.Logger {
	return b.opts.Logger
}

// Options returns the client's settings.
func (b *Base) Options() Options {
	return b.opts
}

// Component returns the engine component the client talks to.
func (b *Base) Component() abi.Component {
	return b.component
}

func (b *Base) symbol(method string) abi.Symbol {
	return abi.Symbol(string(b.component) + "_" + method)
}

// Trace logs method entry and returns a func that logs its exit.
//
//	defer b.Trace("AddRecord", zap.String("recordID", id))(&err)
func (b *Base) Trace(method string, fields ...zap.Field) func(*error) {
	if ce := b.opts.Logger.Check(zap.DebugLevel, "enter"); ce != nil {
		ce.Write(append(fields, zap.String("method", method))...)
	}
	start := time.Now()
	return func(errp *error) {
		ce := b.opts.Logger.Check(zap.DebugLevel, "exit")
		if ce == nil {
			return
		}
		var err error
		if errp != nil {
			err = *errp
		}
		ce.Write(zap.String("method", method), zap.Duration("duration", time.Since(start)), zap.Error(err))
	}
}

// GetLastException returns the component's last exception message.
func (b *Base) GetLastException(ctx context.Context) (string, error) {
	tr, err := b.fw.Fixed(ctx, b.symbol("getLastException"), 0)
	if err != nil {
		return "", err
	}
	return tr.Text, nil
}

// GetLastExceptionCode returns the component's last exception code.
func (b *Base) GetLastExceptionCode(ctx context.Context) (int, error) {
	code, err := b.fw.Value(ctx, b.symbol("getLastExceptionCode"))
	return int(code), err
}

// ClearLastException resets the component's last exception.
func (b *Base) ClearLastException(ctx context.Context) error {
	return b.fw.Void(ctx, b.symbol("clearLastException"))
}

// Check turns a non-zero return code of sym into an *errors.EngineError built
// from the component's last exception, which is cleared afterwards.
func (b *Base) Check(ctx context.Context, sym abi.Symbol, rc int64) error {
	if rc == 0 {
		return nil
	}
	return b.engineError(ctx, sym, rc)
}

func (b *Base) engineError(ctx context.Context, sym abi.Symbol, rc int64) error {
	msg, err := b.GetLastException(ctx)
	if err != nil {
		msg = err.Error()
	}
	code, err := b.GetLastExceptionCode(ctx)
	if err != nil {
		code = 0
	}
	if err := b.ClearLastException(ctx); err != nil {
		b.opts.Logger.Warn("clear last exception", zap.Error(err))
	}
	return errors.NewEngineError(string(sym), rc, code, msg)
}

// Swallowed post-processes the result of a string-result call. Outside
// strict mode it returns out unchanged. In strict mode an empty out is
// checked against the last exception code, which must have been cleared
// before the call.
func (b *Base) Swallowed(ctx context.Context, sym abi.Symbol, out string) (string, error) {
	if !b.opts.Strict || out != "" {
		return out, nil
	}
	code, err := b.GetLastExceptionCode(ctx)
	if err != nil {
		return "", err
	}
	if code == 0 {
		return "", nil
	}
	return "", b.engineError(ctx, sym, int64(code))
}

// String runs a string-result call and applies Swallowed. In strict mode
// the last exception is cleared first so a code left by an earlier call is
// not reported against this one.
func (b *Base) String(ctx context.Context, sym abi.Symbol, args ...any) (string, error) {
	if b.opts.Strict {
		if err := b.ClearLastException(ctx); err != nil {
			return "", err
		}
	}
	out, err := b.fw.String(ctx, sym, args...)
	if err != nil {
		return "", err
	}
	return b.Swallowed(ctx, sym, out)
}

// Status runs a status call and checks its code.
func (b *Base) Status(ctx context.Context, sym abi.Symbol, args ...any) error {
	rc, err := b.fw.Status(ctx, sym, args...)
	if err != nil {
		return err
	}
	return b.Check(ctx, sym, rc)
}

// Struct runs a struct-result call and checks its code. The result is
// returned even when the code is non-zero.
func (b *Base) Struct(ctx context.Context, sym abi.Symbol, args ...any) (forward.Result, error) {
	res, err := b.fw.Struct(ctx, sym, args...)
	if err != nil {
		return res, err
	}
	return res, b.Check(ctx, sym, res.ReturnCode)
}

// Fixed runs a fixed-buffer call and checks its code.
func (b *Base) Fixed(ctx context.Context, sym abi.Symbol, args ...any) (string, error) {
	tr, err := b.fw.Fixed(ctx, sym, 0, args...)
	if err != nil {
		return "", err
	}
	return tr.Text, b.Check(ctx, sym, tr.ReturnCode)
}

// Open runs a handle-creating call, checks its code and registers the handle
// when a table is configured.
func (b *Base) Open(ctx context.Context, kind handle.Kind, sym abi.Symbol, args ...any) (handle.Token, error) {
	op, err := b.fw.Open(ctx, sym, args...)
	if err != nil {
		return 0, err
	}
	if err := b.Check(ctx, sym, op.ReturnCode); err != nil {
		return op.Handle, err
	}
	b.track(kind, op.Handle)
	return op.Handle, nil
}

// OpenUnchecked runs a handle-creating call whose code is discarded.
func (b *Base) OpenUnchecked(ctx context.Context, kind handle.Kind, sym abi.Symbol, args ...any) (handle.Token, error) {
	h, err := b.fw.OpenUnchecked(ctx, sym, args...)
	if err != nil {
		return 0, err
	}
	b.track(kind, h)
	return h, nil
}

// Close releases h and checks the code.
func (b *Base) Close(ctx context.Context, sym abi.Symbol, h handle.Token) error {
	rc, err := b.fw.Close(ctx, sym, h)
	if err != nil {
		return err
	}
	if b.opts.Handles != nil {
		b.opts.Handles.RemoveToken(h)
	}
	return b.Check(ctx, sym, rc)
}

// Fetch reads the next item of h into a fresh buffer of the configured size.
// A negative code is an error; an empty text means the handle is exhausted.
func (b *Base) Fetch(ctx context.Context, sym abi.Symbol, h handle.Token) (string, error) {
	tr, err := b.fw.Fetch(ctx, sym, h, make([]byte, b.opts.FetchSize))
	if err != nil {
		return "", err
	}
	if tr.ReturnCode < 0 {
		return "", b.engineError(ctx, sym, tr.ReturnCode)
	}
	return tr.Text, nil
}

func (b *Base) track(kind handle.Kind, h handle.Token) {
	if b.opts.Handles == nil || h.IsZero() {
		return
	}
	b.opts.Handles.Insert(kind, h, b.component)
}
