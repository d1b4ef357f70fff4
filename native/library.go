//go:build senzing && cgo

package native

/*
#cgo LDFLAGS: -lG2
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import (
	"context"
	"runtime"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/errors"
)

// Available reports whether this build links the engine library.
const Available = true

var (
	openMu sync.Mutex
	opened bool

	// current is the frame of the call in progress. Only the engine
	// thread reads or writes it.
	current *frame
)

type request struct {
	call *abi.Call
	spec abi.Spec
	done chan result
}

type result struct {
	rc  int64
	err error
}

// Library is the engine shared library. It implements abi.Library.
//
// All calls run on one goroutine locked to its OS thread: the engine keeps
// its last exception per thread.
type Library struct {
	logger *zap.Logger
	reqs   chan request
	quit   chan struct{}
	done   chan struct{}
	once   sync.Once
}

var _ abi.Library = (*Library)(nil)

// Open starts the engine thread. Only one Library may be open at a time.
func Open(_ context.Context, cfg *Config) (*Library, error) {
	openMu.Lock()
	defer openMu.Unlock()
	if opened {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
			Detail("native engine already open").
			Build()
	}
	opened = true

	l := &Library{
		logger: cfg.logger(),
		reqs:   make(chan request),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go l.run()
	l.logger.Debug("native engine opened", zap.Int("entry_points", len(entryIDs)))
	return l, nil
}

func (l *Library) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(l.done)

	for {
		select {
		case req := <-l.reqs:
			rc, err := l.call(req.spec, req.call)
			req.done <- result{rc: rc, err: err}
		case <-l.quit:
			return
		}
	}
}

// Invoke implements abi.Library. A call that has reached the engine runs to
// completion even if ctx is canceled.
func (l *Library) Invoke(ctx context.Context, call *abi.Call) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	spec, ok := abi.Lookup(call.Symbol)
	if !ok {
		return 0, errors.NotFound(errors.PhaseInvoke, "entry point", string(call.Symbol))
	}
	if err := spec.Check(call); err != nil {
		return 0, err
	}

	req := request{call: call, spec: spec, done: make(chan result, 1)}
	select {
	case l.reqs <- req:
	case <-l.quit:
		return 0, errors.Closed("native engine")
	case <-ctx.Done():
		return 0, ctx.Err()
	}
	res := <-req.done
	return res.rc, res.err
}

func (l *Library) call(spec abi.Spec, call *abi.Call) (int64, error) {
	id, ok := entryIDs[spec.Symbol]
	if !ok {
		return 0, errors.NotFound(errors.PhaseInvoke, "native entry point", string(spec.Symbol))
	}

	f := newFrame(spec, call)
	defer f.release()
	if err := f.lower(); err != nil {
		return 0, err
	}

	current = f
	rc := int64(C.g2b_invoke(C.int(id), f.args))
	current = nil

	if f.err != nil {
		return 0, f.err
	}
	return f.lift(rc), nil
}

// Close stops the engine thread. It does not destroy the engine; call the
// component's destroy entry point first. Closing twice is a no-op.
func (l *Library) Close(context.Context) error {
	l.once.Do(func() {
		close(l.quit)
		<-l.done
		openMu.Lock()
		opened = false
		openMu.Unlock()
	})
	return nil
}

// cAlloc returns n zeroed bytes of C memory, never a null pointer for n > 0.
func cAlloc(n int) unsafe.Pointer {
	if n < 1 {
		n = 1
	}
	return C.calloc(1, C.size_t(n))
}

func cFree(p unsafe.Pointer) {
	C.free(p)
}

func cRealloc(p unsafe.Pointer, n uint64) unsafe.Pointer {
	return C.realloc(p, C.size_t(n))
}
