package buffer

import (
	"sync"
	"unsafe"
)

// Op is an allocator operation recorded by TrackingAllocator.
type Op uint8

const (
	OpAlloc Op = iota
	OpFree
)

func (o Op) String() string {
	if o == OpFree {
		return "free"
	}
	return "alloc"
}

// Event is one recorded allocator operation. ID identifies the region.
type Event struct {
	Op   Op
	ID   int
	Size int
}

// TrackingAllocator wraps an Allocator and records every operation.
// It is safe for concurrent use.
type TrackingAllocator struct {
	next   Allocator
	live   map[*byte]int
	events []Event
	nextID int
	fail   bool
	mu     sync.Mutex
}

// NewTrackingAllocator records operations forwarded to next.
// A nil next uses GoAllocator.
func NewTrackingAllocator(next Allocator) *TrackingAllocator {
	if next == nil {
		next = GoAllocator{}
	}
	return &TrackingAllocator{
		next: next,
		live: make(map[*byte]int),
	}
}

// Alloc allocates size bytes, or returns nil when failing is set.
func (t *TrackingAllocator) Alloc(size int) []byte {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.fail || size <= 0 {
		return nil
	}
	buf := t.next.Alloc(size)
	if buf == nil {
		return nil
	}
	t.nextID++
	t.live[unsafe.SliceData(buf)] = t.nextID
	t.events = append(t.events, Event{Op: OpAlloc, ID: t.nextID, Size: len(buf)})
	return buf
}

// Free releases buf. Regions this allocator did not hand out are ignored.
func (t *TrackingAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	key := unsafe.SliceData(buf)
	id, ok := t.live[key]
	if !ok {
		return
	}
	delete(t.live, key)
	t.events = append(t.events, Event{Op: OpFree, ID: id, Size: len(buf)})
	t.next.Free(buf)
}

// SetFailing makes subsequent Alloc calls return nil.
func (t *TrackingAllocator) SetFailing(fail bool) {
	t.mu.Lock()
	t.fail = fail
	t.mu.Unlock()
}

// Events returns a copy of the recorded operations in order.
func (t *TrackingAllocator) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Allocs returns the number of successful allocations.
func (t *TrackingAllocator) Allocs() int {
	return t.count(OpAlloc)
}

// Frees returns the number of releases.
func (t *TrackingAllocator) Frees() int {
	return t.count(OpFree)
}

// Live returns the number of regions allocated and not yet freed.
func (t *TrackingAllocator) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

func (t *TrackingAllocator) count(op Op) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, e := range t.events {
		if e.Op == op {
			n++
		}
	}
	return n
}
