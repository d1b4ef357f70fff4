package forward

import (
	"context"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/buffer"
	"github.com/wippyai/g2-bridge/handle"
)

// Result is the outcome of a struct-result call. ReturnCode is the engine's
// code; the other fields hold whatever the engine produced, even on failure.
type Result struct {
	Response   string
	Info       string
	Fixed      string
	Value      int64
	ReturnCode int64
}

// OK reports whether the engine returned zero.
func (r Result) OK() bool {
	return r.ReturnCode == 0
}

// Opened is the outcome of a handle-creating call.
type Opened struct {
	Handle     handle.Token
	ReturnCode int64
}

// TextResult is the outcome of a call that fills a caller-owned buffer.
type TextResult struct {
	Text       string
	ReturnCode int64
}

// Status forwards a call whose only result is the engine code.
func (f *Forwarder) Status(ctx context.Context, sym abi.Symbol, args ...any) (int64, error) {
	spec, err := f.spec(sym, abi.TemplateStatus)
	if err != nil {
		return 0, err
	}
	return f.invoke(ctx, spec, &abi.Call{Symbol: sym, Args: args})
}

// String forwards a single-buffer call. A non-zero engine code yields "" and
// is not reported; err is set only when the call itself could not be made.
func (f *Forwarder) String(ctx context.Context, sym abi.Symbol, args ...any) (string, error) {
	spec, err := f.spec(sym, abi.TemplateString)
	if err != nil {
		return "", err
	}
	bufs := f.buffers(spec.Buffers())
	defer release(bufs)

	rc, err := f.invoke(ctx, spec, &abi.Call{Symbol: sym, Args: args, Buffers: bufs})
	if err != nil || rc != 0 {
		return "", err
	}
	return bufs[0].String(), nil
}

// Struct forwards a call with several outputs and keeps the engine code.
func (f *Forwarder) Struct(ctx context.Context, sym abi.Symbol, args ...any) (Result, error) {
	spec, err := f.spec(sym, abi.TemplateStruct)
	if err != nil {
		return Result{}, err
	}
	call := &abi.Call{Symbol: sym, Args: args, Buffers: f.buffers(spec.Buffers())}
	defer release(call.Buffers)
	if spec.Has(abi.OutFixed) {
		call.Fixed = make([]byte, f.fixedSizeFor(sym))
	}

	rc, err := f.invoke(ctx, spec, call)
	if err != nil {
		return Result{}, err
	}

	res := Result{ReturnCode: rc, Value: call.Value}
	if len(call.Buffers) > 0 {
		res.Response = call.Buffers[0].String()
	}
	if len(call.Buffers) > 1 {
		res.Info = call.Buffers[1].String()
	}
	if call.Fixed != nil {
		res.Fixed = buffer.CString(call.Fixed)
	}
	return res, nil
}

// Open forwards a handle-creating call and keeps the engine code.
func (f *Forwarder) Open(ctx context.Context, sym abi.Symbol, args ...any) (Opened, error) {
	spec, err := f.spec(sym, abi.TemplateOpen)
	if err != nil {
		return Opened{}, err
	}
	call := &abi.Call{Symbol: sym, Args: args}
	rc, err := f.invoke(ctx, spec, call)
	if err != nil {
		return Opened{}, err
	}
	return Opened{Handle: call.Handle, ReturnCode: rc}, nil
}

// OpenUnchecked forwards a handle-creating call and discards the engine code.
func (f *Forwarder) OpenUnchecked(ctx context.Context, sym abi.Symbol, args ...any) (handle.Token, error) {
	spec, err := f.spec(sym, abi.TemplateOpenUnchecked)
	if err != nil {
		return 0, err
	}
	call := &abi.Call{Symbol: sym, Args: args}
	if _, err := f.invoke(ctx, spec, call); err != nil {
		return 0, err
	}
	return call.Handle, nil
}

// Fetch reads the next item of h into buf. buf is cleared first and must stay
// owned by the caller; the handle is passed through unchecked.
func (f *Forwarder) Fetch(ctx context.Context, sym abi.Symbol, h handle.Token, buf []byte) (TextResult, error) {
	spec, err := f.spec(sym, abi.TemplateFetch)
	if err != nil {
		return TextResult{}, err
	}
	clear(buf)
	call := &abi.Call{Symbol: sym, Args: []any{h}, Fixed: buf}
	rc, err := f.invoke(ctx, spec, call)
	if err != nil {
		return TextResult{}, err
	}
	return TextResult{Text: buffer.CString(buf), ReturnCode: rc}, nil
}

// Close releases h. Closing twice is left to the engine.
func (f *Forwarder) Close(ctx context.Context, sym abi.Symbol, h handle.Token) (int64, error) {
	spec, err := f.spec(sym, abi.TemplateClose)
	if err != nil {
		return 0, err
	}
	return f.invoke(ctx, spec, &abi.Call{Symbol: sym, Args: []any{h}})
}

// Fixed forwards a call that fills a caller-owned buffer of size bytes. A
// size of zero picks the default for sym.
func (f *Forwarder) Fixed(ctx context.Context, sym abi.Symbol, size int, args ...any) (TextResult, error) {
	spec, err := f.spec(sym, abi.TemplateFixed)
	if err != nil {
		return TextResult{}, err
	}
	if size <= 0 {
		size = f.fixedSizeFor(sym)
	}
	call := &abi.Call{Symbol: sym, Args: args, Fixed: make([]byte, size)}
	rc, err := f.invoke(ctx, spec, call)
	if err != nil {
		return TextResult{}, err
	}
	return TextResult{Text: buffer.CString(call.Fixed), ReturnCode: rc}, nil
}

// Value forwards a call whose return value is the result.
func (f *Forwarder) Value(ctx context.Context, sym abi.Symbol, args ...any) (int64, error) {
	spec, err := f.spec(sym, abi.TemplateValue)
	if err != nil {
		return 0, err
	}
	return f.invoke(ctx, spec, &abi.Call{Symbol: sym, Args: args})
}

// ValueOut forwards a call that writes a 64-bit out-parameter. The engine
// code is discarded.
func (f *Forwarder) ValueOut(ctx context.Context, sym abi.Symbol, args ...any) (int64, error) {
	spec, err := f.spec(sym, abi.TemplateValueOut)
	if err != nil {
		return 0, err
	}
	call := &abi.Call{Symbol: sym, Args: args}
	if _, err := f.invoke(ctx, spec, call); err != nil {
		return 0, err
	}
	return call.Value, nil
}

// Void forwards a call with no result.
func (f *Forwarder) Void(ctx context.Context, sym abi.Symbol, args ...any) error {
	spec, err := f.spec(sym, abi.TemplateVoid)
	if err != nil {
		return err
	}
	_, err = f.invoke(ctx, spec, &abi.Call{Symbol: sym, Args: args})
	return err
}

// Text forwards a call that returns a string owned by the engine.
func (f *Forwarder) Text(ctx context.Context, sym abi.Symbol, args ...any) (string, error) {
	spec, err := f.spec(sym, abi.TemplateText)
	if err != nil {
		return "", err
	}
	call := &abi.Call{Symbol: sym, Args: args}
	if _, err := f.invoke(ctx, spec, call); err != nil {
		return "", err
	}
	return call.Text, nil
}

func (f *Forwarder) fixedSizeFor(sym abi.Symbol) int {
	switch sym {
	case abi.G2AddRecordWithReturnedRecordID, abi.G2AddRecordWithInfoWithReturnedRecordID:
		return RecordIDSize
	}
	return f.fixedSize
}
