package wasmabi

import (
	"bytes"
	"context"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/g2-bridge/errors"
)

// cstringChunk is how much guest memory a C string scan reads at a time.
const cstringChunk = 256

// guestMemory adapts wazero api.Memory to the reads and writes the
// lowering needs, reporting bounds failures as structured errors.
type guestMemory struct {
	mem api.Memory
}

func (m guestMemory) read(phase errors.Phase, path []string, offset, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(phase, path, offset, length)
	}
	return data, nil
}

func (m guestMemory) write(path []string, offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return errors.OutOfBounds(errors.PhaseLower, path, offset, uint32(len(data)))
	}
	return nil
}

func (m guestMemory) readU32(path []string, offset uint32) (uint32, error) {
	v, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseLift, path, offset, 4)
	}
	return v, nil
}

func (m guestMemory) writeU32(path []string, offset, value uint32) error {
	if !m.mem.WriteUint32Le(offset, value) {
		return errors.OutOfBounds(errors.PhaseLower, path, offset, 4)
	}
	return nil
}

func (m guestMemory) readU64(path []string, offset uint32) (uint64, error) {
	v, ok := m.mem.ReadUint64Le(offset)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseLift, path, offset, 8)
	}
	return v, nil
}

// cstring reads a NUL-terminated string starting at offset. A string that
// runs to the end of memory without a terminator is invalid.
func (m guestMemory) cstring(path []string, offset uint32) (string, error) {
	size := m.mem.Size()
	if offset >= size {
		return "", errors.OutOfBounds(errors.PhaseLift, path, offset, 1)
	}
	var out []byte
	for pos := offset; pos < size; {
		n := min(uint32(cstringChunk), size-pos)
		chunk, ok := m.mem.Read(pos, n)
		if !ok {
			return "", errors.OutOfBounds(errors.PhaseLift, path, pos, n)
		}
		if i := bytes.IndexByte(chunk, 0); i >= 0 {
			return string(append(out, chunk[:i]...)), nil
		}
		out = append(out, chunk...)
		pos += n
	}
	return "", errors.InvalidData(errors.PhaseLift, path, "unterminated string")
}

// guestAllocator allocates guest memory through the module's cabi_realloc
// export and remembers region sizes so they can be handed back.
type guestAllocator struct {
	fn    api.Function
	sizes map[uint32]uint32
}

func newGuestAllocator(fn api.Function) *guestAllocator {
	return &guestAllocator{fn: fn, sizes: make(map[uint32]uint32)}
}

// alloc returns a region of size bytes. Zero-size requests get one byte so
// every region has a distinct address.
func (a *guestAllocator) alloc(ctx context.Context, size, align uint32) (uint32, error) {
	if size == 0 {
		size = 1
	}
	results, err := a.fn.Call(ctx, 0, 0, uint64(align), uint64(size))
	if err != nil {
		return 0, errors.New(errors.PhaseLower, errors.KindAllocation).
			Detail("cabi_realloc(%d, %d)", size, align).
			Cause(err).
			Build()
	}
	if len(results) == 0 {
		return 0, errors.New(errors.PhaseLower, errors.KindAllocation).
			Detail("cabi_realloc(%d, %d) returned no result", size, align).
			Build()
	}
	ptr := uint32(results[0])
	if ptr == 0 {
		return 0, errors.AllocationFailed(errors.PhaseLower, size, align)
	}
	a.sizes[ptr] = size
	return ptr, nil
}

// free releases a region obtained from alloc. Unknown pointers are ignored.
func (a *guestAllocator) free(ctx context.Context, ptr uint32) {
	size, ok := a.sizes[ptr]
	if !ok {
		return
	}
	delete(a.sizes, ptr)
	_, _ = a.fn.Call(ctx, uint64(ptr), uint64(size), 1, 0)
}

// live returns the number of regions not yet freed.
func (a *guestAllocator) live() int {
	return len(a.sizes)
}
