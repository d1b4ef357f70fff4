//go:build senzing && cgo

package native

/*
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/errors"
	"github.com/wippyai/g2-bridge/handle"
)

// frame is the C-side state of one call.
type frame struct {
	err     error
	call    *abi.Call
	spec    abi.Spec
	args    *C.g2b_args
	strings []*C.char
}

func newFrame(spec abi.Spec, call *abi.Call) *frame {
	return &frame{
		spec: spec,
		call: call,
		args: (*C.g2b_args)(cAlloc(int(unsafe.Sizeof(C.g2b_args{})))),
	}
}

func (f *frame) path(parts ...string) []string {
	return append([]string{string(f.spec.Symbol)}, parts...)
}

func (f *frame) lower() error {
	a := f.args
	var nStr, nI64, nI32, nSize int
	for i, p := range f.spec.Params {
		arg := f.call.Args[i]
		switch p {
		case abi.ParamString:
			cs := C.CString(arg.(string))
			f.strings = append(f.strings, cs)
			a.str[nStr] = cs
			nStr++
		case abi.ParamInt64:
			a.i64[nI64] = C.longlong(arg.(int64))
			nI64++
		case abi.ParamInt32:
			a.i32[nI32] = C.int(arg.(int32))
			nI32++
		case abi.ParamSize:
			v := arg.(uint64)
			if unsafe.Sizeof(C.size_t(0)) < 8 && v > math.MaxUint32 {
				return errors.Overflow(errors.PhaseLower, f.path(fmt.Sprint(i)), v, "size_t")
			}
			a.sz[nSize] = C.size_t(v)
			nSize++
		case abi.ParamHandle:
			a.h = C.uintptr_t(arg.(handle.Token))
		}
	}

	if f.spec.Has(abi.OutFixed) {
		n := len(f.call.Fixed)
		p := cAlloc(n)
		copy(unsafe.Slice((*byte)(p), n), f.call.Fixed)
		a.fixed = (*C.char)(p)
		a.fixed_len = C.size_t(n)
	}

	for i, b := range f.call.Buffers {
		n := max(b.Len(), 1)
		p := cAlloc(n)
		copy(unsafe.Slice((*byte)(p), n), b.Bytes())
		a.buf[i] = (*C.char)(p)
		a.buf_size[i] = C.size_t(n)
	}
	return nil
}

// resize serves g2b_resize. The Go buffer grows first; a failed Go
// allocation frees the old region and hands the engine a null pointer.
func (f *frame) resize(old unsafe.Pointer, size uint64) unsafe.Pointer {
	idx := -1
	for i := range f.call.Buffers {
		if unsafe.Pointer(f.args.buf[i]) == old {
			idx = i
			break
		}
	}
	if idx < 0 {
		f.err = errors.InvalidData(errors.PhaseInvoke, f.path("resize"), "engine resized an unknown region")
		return nil
	}

	if size > math.MaxInt || f.call.Buffers[idx].Grow(int(size)) == nil {
		cFree(old)
		f.args.buf[idx] = nil
		f.args.buf_size[idx] = 0
		return nil
	}
	p := cRealloc(old, max(size, 1))
	if p == nil {
		cFree(old)
	}
	f.args.buf[idx] = (*C.char)(p)
	return p
}

func (f *frame) lift(rc int64) int64 {
	a := f.args
	if f.spec.Returns == abi.ReturnText && a.text != nil {
		f.call.Text = C.GoString(a.text)
	}

	if f.spec.Has(abi.OutFixed) && len(f.call.Fixed) > 0 {
		copy(f.call.Fixed, unsafe.Slice((*byte)(unsafe.Pointer(a.fixed)), len(f.call.Fixed)))
	}

	for i, b := range f.call.Buffers {
		ptr, size := a.buf[i], int(a.buf_size[i])
		if ptr == nil || size == 0 || b.Bytes() == nil {
			continue
		}
		if b.Len() < size && b.Grow(size) == nil {
			continue
		}
		copy(b.Bytes(), unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size))
	}

	if f.spec.Has(abi.OutHandle) {
		f.call.Handle = handle.FromPointer(a.handle_out)
	}
	if f.spec.Has(abi.OutValue) {
		f.call.Value = int64(a.value_out)
	}
	if f.spec.Returns == abi.ReturnInt32 {
		return int64(int32(rc))
	}
	return rc
}

// release frees every C region the call allocated. Static text returned by
// the engine is not ours to free.
func (f *frame) release() {
	for _, cs := range f.strings {
		cFree(unsafe.Pointer(cs))
	}
	a := f.args
	if a.fixed != nil {
		cFree(unsafe.Pointer(a.fixed))
	}
	for i := range f.call.Buffers {
		if a.buf[i] != nil {
			cFree(unsafe.Pointer(a.buf[i]))
		}
	}
	cFree(unsafe.Pointer(a))
}
