package buffer

import "bytes"

// SeedSize is the size of the region a Buffer starts with.
const SeedSize = 1

// Allocator hands out and takes back byte regions.
type Allocator interface {
	Alloc(size int) []byte
	Free(buf []byte)
}

// GoAllocator allocates from the Go heap. Free is a no-op.
type GoAllocator struct{}

// Alloc returns a zeroed region of size bytes.
func (GoAllocator) Alloc(size int) []byte {
	if size < 0 {
		return nil
	}
	return make([]byte, size)
}

// Free does nothing; the garbage collector reclaims the region.
func (GoAllocator) Free([]byte) {}

// Resizer grows a response buffer on behalf of the engine.
//
// Resize releases old when it is non-nil and returns a new region of exactly
// size bytes. A size of zero only releases. A nil result means allocation
// failed; callers pass it onward without checking.
type Resizer interface {
	Resize(old []byte, size int) []byte
}

// ResizeFunc adapts a function to Resizer.
type ResizeFunc func(old []byte, size int) []byte

// Resize calls f(old, size).
func (f ResizeFunc) Resize(old []byte, size int) []byte {
	return f(old, size)
}

// NewResizer returns the free-then-allocate resize callback backed by a.
func NewResizer(a Allocator) Resizer {
	return ResizeFunc(func(old []byte, size int) []byte {
		if old != nil {
			a.Free(old)
		}
		if size <= 0 {
			return nil
		}
		return a.Alloc(size)
	})
}

// Default resizes on the Go heap.
var Default = NewResizer(GoAllocator{})

// Buffer is an owned response region plus its size.
//
// The region and its size live in one slice, so they can only change
// together. Contents are not preserved across Grow; the engine rewrites the
// whole response after growing.
type Buffer struct {
	resizer Resizer
	data    []byte
	grows   int
}

// New seeds a Buffer with a SeedSize region obtained from r.
// A nil r uses Default.
func New(r Resizer) *Buffer {
	if r == nil {
		r = Default
	}
	return &Buffer{
		resizer: r,
		data:    r.Resize(nil, SeedSize),
	}
}

// Grow replaces the region with one of size bytes and returns it.
func (b *Buffer) Grow(size int) []byte {
	b.data = b.resizer.Resize(b.data, size)
	b.grows++
	return b.data
}

// Fill stores p followed by a NUL terminator, growing first when the
// current region is too small.
func (b *Buffer) Fill(p []byte) {
	if len(p)+1 > len(b.data) {
		if b.Grow(len(p)+1) == nil {
			return
		}
	}
	n := copy(b.data, p)
	b.data[n] = 0
}

// Bytes returns the current region.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the size of the current region.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Grows reports how many times the region was replaced.
func (b *Buffer) Grows() int {
	return b.grows
}

// String returns the contents up to the first NUL byte.
func (b *Buffer) String() string {
	return CString(b.data)
}

// Release hands the region back to the resizer. The Buffer is empty after.
func (b *Buffer) Release() {
	if b.data != nil {
		b.resizer.Resize(b.data, 0)
		b.data = nil
	}
}

// CString returns p up to its first NUL byte.
func CString(p []byte) string {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return string(p[:i])
	}
	return string(p)
}
