// Package enginetest provides a scripted in-process engine for tests.
//
// A Fake implements abi.Library. Each entry point can be given a Handler;
// calls without one return 0 and leave their outputs untouched. Every call is
// recorded, so tests can check the exact order and arguments the forwarding
// layer produced.
package enginetest

import (
	"context"
	"slices"
	"sync"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/errors"
	"github.com/wippyai/g2-bridge/handle"
)

// Handler scripts one entry point. It may fill the call's outputs and returns
// the engine's return value.
type Handler func(call *abi.Call) int64

// Record is one observed call.
type Record struct {
	Symbol     abi.Symbol
	Args       []any
	ReturnCode int64
}

// Handle returns the handle argument of a fetch or close call.
func (r Record) Handle() handle.Token {
	for _, a := range r.Args {
		if t, ok := a.(handle.Token); ok {
			return t
		}
	}
	return 0
}

// Fake is a scripted engine.
type Fake struct {
	handlers   map[abi.Symbol]Handler
	exceptions map[abi.Component]*exception
	handles    *handle.Table
	calls      []Record
	mu         sync.Mutex
	closed     bool
}

// New creates a Fake with no scripted entry points.
func New() *Fake {
	return &Fake{
		handlers:   make(map[abi.Symbol]Handler),
		exceptions: make(map[abi.Component]*exception),
		handles:    handle.NewTable(),
	}
}

// On scripts sym.
func (f *Fake) On(sym abi.Symbol, h Handler) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[sym] = h
	return f
}

// Handles returns the table of handles the Fake has issued and not yet seen
// closed.
func (f *Fake) Handles() *handle.Table {
	return f.handles
}

// Invoke implements abi.Library.
func (f *Fake) Invoke(ctx context.Context, call *abi.Call) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return 0, errors.Closed("fake engine")
	}
	h := f.handlers[call.Symbol]
	f.mu.Unlock()

	var rc int64
	if h != nil {
		rc = h(call)
	}

	f.mu.Lock()
	f.calls = append(f.calls, Record{
		Symbol:     call.Symbol,
		Args:       slices.Clone(call.Args),
		ReturnCode: rc,
	})
	f.mu.Unlock()
	return rc, nil
}

// Close implements abi.Library.
func (f *Fake) Close(context.Context) error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return f.handles.Close()
}

// Calls returns every recorded call in order.
func (f *Fake) Calls() []Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// Symbols returns the symbols of every recorded call in order.
func (f *Fake) Symbols() []abi.Symbol {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]abi.Symbol, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Symbol
	}
	return out
}

// CallsTo returns the recorded calls to sym.
func (f *Fake) CallsTo(sym abi.Symbol) []Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Record
	for _, c := range f.calls {
		if c.Symbol == sym {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times sym was called.
func (f *Fake) Count(sym abi.Symbol) int {
	return len(f.CallsTo(sym))
}

// Reset forgets recorded calls.
func (f *Fake) Reset() {
	f.mu.Lock()
	f.calls = nil
	f.mu.Unlock()
}
