package enginetest

import (
	"sync"
	"unsafe"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/handle"
)

// Respond fills the first response buffer with s and returns 0.
func Respond(s string) Handler {
	return Fail(0, s)
}

// Fail fills the first response buffer with partial and returns code.
func Fail(code int64, partial string) Handler {
	return func(call *abi.Call) int64 {
		if len(call.Buffers) > 0 {
			call.Buffers[0].Fill([]byte(partial))
		}
		return code
	}
}

// RespondInfo fills both response buffers and returns code.
func RespondInfo(code int64, response, info string) Handler {
	return func(call *abi.Call) int64 {
		call.Buffers[0].Fill([]byte(response))
		call.Buffers[1].Fill([]byte(info))
		return code
	}
}

// RespondFixed writes s into the caller-owned buffer, truncating to leave
// room for the terminator, and returns code.
func RespondFixed(code int64, s string) Handler {
	return func(call *abi.Call) int64 {
		WriteFixed(call.Fixed, s)
		return code
	}
}

// RespondValue sets the 64-bit out-parameter and returns code.
func RespondValue(code, v int64) Handler {
	return func(call *abi.Call) int64 {
		call.Value = v
		return code
	}
}

// RespondText sets the static text result.
func RespondText(s string) Handler {
	return func(call *abi.Call) int64 {
		call.Text = s
		return 0
	}
}

// Return returns v and writes nothing.
func Return(v int64) Handler {
	return func(*abi.Call) int64 {
		return v
	}
}

// Grow makes the engine grow the first response buffer through each of sizes
// before filling it with s, the way the engine does when its output outgrows
// the buffer more than once.
func Grow(s string, sizes ...int) Handler {
	return func(call *abi.Call) int64 {
		b := call.Buffers[0]
		for _, n := range sizes {
			if b.Grow(n) == nil {
				return -1
			}
		}
		b.Fill([]byte(s))
		return 0
	}
}

// WriteFixed copies s into buf followed by a NUL byte, truncating s if needed.
func WriteFixed(buf []byte, s string) {
	if len(buf) == 0 {
		return
	}
	n := copy(buf[:len(buf)-1], s)
	buf[n] = 0
}

// Cursor is engine-side iteration state behind an issued handle.
type Cursor struct {
	rows   []string
	next   int
	mu     sync.Mutex
	closed bool
}

// Rows returns the rows not yet fetched.
func (c *Cursor) Rows() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows[c.next:]
}

// Drop marks the cursor closed.
func (c *Cursor) Drop() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *Cursor) fetch() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return "", false
	}
	if c.next >= len(c.rows) {
		return "", true
	}
	row := c.rows[c.next]
	c.next++
	return row, true
}

// Cursor scripts a handle lifecycle. open issues a fresh handle over rows and
// returns openCode; fetch writes the next row, or nothing once the rows are
// exhausted, and returns 0; close returns 0 for a live handle. Fetch and close
// on an unknown or closed handle return -1.
func (f *Fake) Cursor(open, fetch, closeSym abi.Symbol, openCode int64, rows ...string) *Fake {
	f.On(open, func(call *abi.Call) int64 {
		c := &Cursor{rows: rows}
		tok := handle.FromPointer(unsafe.Pointer(c))
		f.handles.Insert(handle.KindExport, tok, c)
		call.Handle = tok
		return openCode
	})
	f.On(fetch, func(call *abi.Call) int64 {
		_, e, ok := f.handles.Find(argHandle(call))
		if !ok {
			return -1
		}
		row, ok := e.Value.(*Cursor).fetch()
		if !ok {
			return -1
		}
		WriteFixed(call.Fixed, row)
		return 0
	})
	f.On(closeSym, func(call *abi.Call) int64 {
		if _, ok := f.handles.RemoveToken(argHandle(call)); !ok {
			return -1
		}
		return 0
	})
	return f
}

// Handle registers a new live handle with no rows and returns it, for
// entry points that create handles without iteration.
func (f *Fake) Handle(kind handle.Kind, value any) handle.Token {
	c := &Cursor{}
	tok := handle.FromPointer(unsafe.Pointer(c))
	if value == nil {
		value = c
	}
	f.handles.Insert(kind, tok, value)
	return tok
}

func argHandle(call *abi.Call) handle.Token {
	for _, a := range call.Args {
		if t, ok := a.(handle.Token); ok {
			return t
		}
	}
	return 0
}

// Exception scripts the last-exception entry points of comp and sets its
// current exception. The exception is cleared by the component's clear entry
// point.
func (f *Fake) Exception(comp abi.Component, code int64, message string) *Fake {
	f.exceptionOf(comp).set(code, message)
	return f
}

// Raise wraps h so that each call first sets comp's exception, the way the
// engine records a failure during the call that caused it.
func (f *Fake) Raise(comp abi.Component, code int64, message string, h Handler) Handler {
	ex := f.exceptionOf(comp)
	return func(call *abi.Call) int64 {
		ex.set(code, message)
		return h(call)
	}
}

type exception struct {
	mu   sync.Mutex
	code int64
	msg  string
}

func (e *exception) set(code int64, msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.code, e.msg = code, msg
}

func (e *exception) get() (int64, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.code, e.msg
}

// exceptionOf returns comp's exception state, scripting its entry points on
// first use.
func (f *Fake) exceptionOf(comp abi.Component) *exception {
	f.mu.Lock()
	ex, ok := f.exceptions[comp]
	if !ok {
		ex = &exception{}
		f.exceptions[comp] = ex
	}
	f.mu.Unlock()
	if ok {
		return ex
	}

	f.On(symbolOf(comp, "getLastException"), func(call *abi.Call) int64 {
		_, msg := ex.get()
		WriteFixed(call.Fixed, msg)
		return int64(len(msg))
	})
	f.On(symbolOf(comp, "getLastExceptionCode"), func(*abi.Call) int64 {
		code, _ := ex.get()
		return code
	})
	f.On(symbolOf(comp, "clearLastException"), func(*abi.Call) int64 {
		ex.set(0, "")
		return 0
	})
	return ex
}

func symbolOf(comp abi.Component, method string) abi.Symbol {
	return abi.Symbol(string(comp) + "_" + method)
}
