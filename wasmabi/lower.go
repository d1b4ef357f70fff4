package wasmabi

import (
	"context"
	"fmt"
	"math"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/buffer"
	"github.com/wippyai/g2-bridge/errors"
	"github.com/wippyai/g2-bridge/handle"
)

// signature returns the core wasm function type an entry point lowers to.
// Parameters follow the C prototype on wasm32: inputs, the fixed buffer and
// its length, a (pointer slot, size slot) pair per response buffer, then the
// handle and value out-pointers. The resize callback is the env.resize_buffer
// import rather than a parameter.
func signature(s abi.Spec) (params, results []api.ValueType) {
	for _, p := range s.Params {
		if p == abi.ParamInt64 {
			params = append(params, api.ValueTypeI64)
		} else {
			params = append(params, api.ValueTypeI32)
		}
	}
	if s.Has(abi.OutFixed) {
		params = append(params, api.ValueTypeI32, api.ValueTypeI32)
	}
	for range s.Buffers() {
		params = append(params, api.ValueTypeI32, api.ValueTypeI32)
	}
	if s.Has(abi.OutHandle) {
		params = append(params, api.ValueTypeI32)
	}
	if s.Has(abi.OutValue) {
		params = append(params, api.ValueTypeI32)
	}

	switch s.Returns {
	case abi.ReturnInt32, abi.ReturnText:
		results = []api.ValueType{api.ValueTypeI32}
	case abi.ReturnInt64:
		results = []api.ValueType{api.ValueTypeI64}
	}
	return params, results
}

func sameTypes(a, b []api.ValueType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func typeList(vts []api.ValueType) string {
	s := "("
	for i, vt := range vts {
		if i > 0 {
			s += ", "
		}
		s += api.ValueTypeName(vt)
	}
	return s + ")"
}

// guestBuffer is a response buffer mirrored into guest memory.
type guestBuffer struct {
	buf  *buffer.Buffer
	slot uint32
	ptr  uint32
}

// frame is the guest-side state of one call.
type frame struct {
	err       error
	lib       *Library
	call      *abi.Call
	spec      abi.Spec
	stack     []uint64
	bufs      []*guestBuffer
	regions   []uint32
	fixedPtr  uint32
	handlePtr uint32
	valuePtr  uint32
}

func (f *frame) path(parts ...string) []string {
	return append([]string{string(f.spec.Symbol)}, parts...)
}

func (f *frame) alloc(ctx context.Context, size, align uint32) (uint32, error) {
	ptr, err := f.lib.alloc.alloc(ctx, size, align)
	if err != nil {
		return 0, err
	}
	f.regions = append(f.regions, ptr)
	return ptr, nil
}

// release frees every region the call allocated, including response
// regions the engine grew.
func (f *frame) release(ctx context.Context) {
	for _, ptr := range f.regions {
		f.lib.alloc.free(ctx, ptr)
	}
	f.regions = nil
}

func (f *frame) lower(ctx context.Context) error {
	mem := f.lib.mem
	for i, p := range f.spec.Params {
		arg := f.call.Args[i]
		name := fmt.Sprint(i)
		if i < len(f.spec.Names) {
			name = f.spec.Names[i]
		}
		switch p {
		case abi.ParamString:
			s := arg.(string)
			ptr, err := f.alloc(ctx, uint32(len(s)+1), 1)
			if err != nil {
				return err
			}
			data := make([]byte, len(s)+1)
			copy(data, s)
			if err := mem.write(f.path(name), ptr, data); err != nil {
				return err
			}
			f.stack = append(f.stack, api.EncodeU32(ptr))
		case abi.ParamInt64:
			f.stack = append(f.stack, api.EncodeI64(arg.(int64)))
		case abi.ParamInt32:
			f.stack = append(f.stack, api.EncodeI32(arg.(int32)))
		case abi.ParamSize:
			v := arg.(uint64)
			if v > math.MaxUint32 {
				return errors.Overflow(errors.PhaseLower, f.path(name), v, "size_t")
			}
			f.stack = append(f.stack, api.EncodeU32(uint32(v)))
		case abi.ParamHandle:
			v, err := arg.(handle.Token).Uint32()
			if err != nil {
				return errors.Overflow(errors.PhaseLower, f.path(name), arg.(handle.Token).Uint64(), "u32")
			}
			f.stack = append(f.stack, api.EncodeU32(v))
		}
	}

	if f.spec.Has(abi.OutFixed) {
		n := uint32(len(f.call.Fixed))
		ptr, err := f.alloc(ctx, n, 1)
		if err != nil {
			return err
		}
		if err := mem.write(f.path("fixed"), ptr, f.call.Fixed); err != nil {
			return err
		}
		f.fixedPtr = ptr
		f.stack = append(f.stack, api.EncodeU32(ptr), api.EncodeU32(n))
	}

	for i, b := range f.call.Buffers {
		path := f.path("buffer", fmt.Sprint(i))
		n := uint32(b.Len())
		ptr, err := f.alloc(ctx, n, 1)
		if err != nil {
			return err
		}
		if err := mem.write(path, ptr, b.Bytes()); err != nil {
			return err
		}
		slot, err := f.alloc(ctx, 8, 4)
		if err != nil {
			return err
		}
		if err := mem.writeU32(path, slot, ptr); err != nil {
			return err
		}
		if err := mem.writeU32(path, slot+4, n); err != nil {
			return err
		}
		f.bufs = append(f.bufs, &guestBuffer{buf: b, slot: slot, ptr: ptr})
		f.stack = append(f.stack, api.EncodeU32(slot), api.EncodeU32(slot+4))
	}

	if f.spec.Has(abi.OutHandle) {
		ptr, err := f.alloc(ctx, 4, 4)
		if err != nil {
			return err
		}
		if err := mem.writeU32(f.path("handle"), ptr, 0); err != nil {
			return err
		}
		f.handlePtr = ptr
		f.stack = append(f.stack, api.EncodeU32(ptr))
	}

	if f.spec.Has(abi.OutValue) {
		ptr, err := f.alloc(ctx, 8, 8)
		if err != nil {
			return err
		}
		if err := mem.write(f.path("value"), ptr, make([]byte, 8)); err != nil {
			return err
		}
		f.valuePtr = ptr
		f.stack = append(f.stack, api.EncodeU32(ptr))
	}
	return nil
}

// resize serves env.resize_buffer for the buffer whose region starts at
// old. The Go buffer grows first so its resizer sees every growth; a failed
// Go allocation is reported to the engine as a null region.
func (f *frame) resize(ctx context.Context, old, size uint32) uint32 {
	var gb *guestBuffer
	for _, b := range f.bufs {
		if b.ptr == old {
			gb = b
			break
		}
	}

	if gb != nil && gb.buf.Grow(int(size)) == nil {
		f.lib.alloc.free(ctx, old)
		gb.ptr = 0
		return 0
	}

	f.lib.alloc.free(ctx, old)
	if size == 0 {
		if gb != nil {
			gb.ptr = 0
		}
		return 0
	}
	ptr, err := f.alloc(ctx, size, 1)
	if err != nil {
		f.err = err
		return 0
	}
	if gb != nil {
		gb.ptr = ptr
	}
	return ptr
}

func (f *frame) lift(results []uint64) (int64, error) {
	mem := f.lib.mem
	var rc int64
	switch f.spec.Returns {
	case abi.ReturnInt32:
		rc = int64(api.DecodeI32(results[0]))
	case abi.ReturnInt64:
		rc = int64(results[0])
	case abi.ReturnText:
		if ptr := api.DecodeU32(results[0]); ptr != 0 {
			text, err := mem.cstring(f.path("text"), ptr)
			if err != nil {
				return 0, err
			}
			f.call.Text = text
		}
	}

	if f.spec.Has(abi.OutFixed) && len(f.call.Fixed) > 0 {
		data, err := mem.read(errors.PhaseLift, f.path("fixed"), f.fixedPtr, uint32(len(f.call.Fixed)))
		if err != nil {
			return 0, err
		}
		copy(f.call.Fixed, data)
	}

	for i, gb := range f.bufs {
		path := f.path("buffer", fmt.Sprint(i))
		ptr, err := mem.readU32(path, gb.slot)
		if err != nil {
			return 0, err
		}
		size, err := mem.readU32(path, gb.slot+4)
		if err != nil {
			return 0, err
		}
		if ptr == 0 || size == 0 || gb.buf.Bytes() == nil {
			continue
		}
		data, err := mem.read(errors.PhaseLift, path, ptr, size)
		if err != nil {
			return 0, err
		}
		if gb.buf.Len() < len(data) && gb.buf.Grow(len(data)) == nil {
			continue
		}
		copy(gb.buf.Bytes(), data)
	}

	if f.spec.Has(abi.OutHandle) {
		v, err := mem.readU32(f.path("handle"), f.handlePtr)
		if err != nil {
			return 0, err
		}
		f.call.Handle = handle.FromUint32(v)
	}

	if f.spec.Has(abi.OutValue) {
		v, err := mem.readU64(f.path("value"), f.valuePtr)
		if err != nil {
			return 0, err
		}
		f.call.Value = int64(v)
	}
	return rc, nil
}
