package buffer

import (
	"bytes"
	"testing"
)

func TestResizer_NilPreviousReleasesNothing(t *testing.T) {
	tracker := NewTrackingAllocator(nil)
	r := NewResizer(tracker)

	for _, size := range []int{1, 7, 4096, 1 << 20} {
		region := r.Resize(nil, size)
		if len(region) != size {
			t.Errorf("Resize(nil, %d) returned %d bytes", size, len(region))
		}
	}

	if tracker.Frees() != 0 {
		t.Errorf("expected no frees, got %d", tracker.Frees())
	}
	if tracker.Allocs() != 4 {
		t.Errorf("expected 4 allocs, got %d", tracker.Allocs())
	}
}

func TestResizer_ReleasesPreviousFirst(t *testing.T) {
	tracker := NewTrackingAllocator(nil)
	r := NewResizer(tracker)

	first := r.Resize(nil, 16)
	second := r.Resize(first, 64)
	if len(second) != 64 {
		t.Fatalf("expected 64 bytes, got %d", len(second))
	}

	events := tracker.Events()
	want := []Event{
		{Op: OpAlloc, ID: 1, Size: 16},
		{Op: OpFree, ID: 1, Size: 16},
		{Op: OpAlloc, ID: 2, Size: 64},
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(events), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: expected %+v, got %+v", i, want[i], events[i])
		}
	}
	if tracker.Live() != 1 {
		t.Errorf("expected 1 live region, got %d", tracker.Live())
	}
}

func TestResizer_ZeroSizeOnlyReleases(t *testing.T) {
	tracker := NewTrackingAllocator(nil)
	r := NewResizer(tracker)

	region := r.Resize(nil, 8)
	if got := r.Resize(region, 0); got != nil {
		t.Errorf("expected nil region, got %d bytes", len(got))
	}
	if tracker.Live() != 0 {
		t.Errorf("expected no live regions, got %d", tracker.Live())
	}
}

func TestResizer_AllocationFailurePropagates(t *testing.T) {
	tracker := NewTrackingAllocator(nil)
	r := NewResizer(tracker)

	region := r.Resize(nil, 8)
	tracker.SetFailing(true)

	if got := r.Resize(region, 32); got != nil {
		t.Errorf("expected nil on failed allocation, got %d bytes", len(got))
	}
	if tracker.Frees() != 1 {
		t.Errorf("previous region should still be released, frees=%d", tracker.Frees())
	}
}

func TestBuffer_SeedAndGrow(t *testing.T) {
	tracker := NewTrackingAllocator(nil)
	buf := New(NewResizer(tracker))

	if buf.Len() != SeedSize {
		t.Fatalf("expected seed of %d bytes, got %d", SeedSize, buf.Len())
	}

	// Repeated growth inside one call.
	for _, size := range []int{10, 100, 1000} {
		region := buf.Grow(size)
		if len(region) != size || buf.Len() != size {
			t.Fatalf("Grow(%d): region=%d len=%d", size, len(region), buf.Len())
		}
		if tracker.Live() != 1 {
			t.Fatalf("Grow(%d): %d live regions", size, tracker.Live())
		}
	}
	if buf.Grows() != 3 {
		t.Errorf("expected 3 grows, got %d", buf.Grows())
	}

	buf.Release()
	if tracker.Live() != 0 {
		t.Errorf("expected no live regions after Release, got %d", tracker.Live())
	}
	if buf.Bytes() != nil {
		t.Error("expected nil region after Release")
	}
}

func TestBuffer_GrowKeepsRegionAndSizeTogether(t *testing.T) {
	tracker := NewTrackingAllocator(nil)
	buf := New(NewResizer(tracker))

	tracker.SetFailing(true)
	region := buf.Grow(128)
	if region != nil {
		t.Fatal("expected nil region from failing allocator")
	}
	if buf.Len() != 0 || buf.Bytes() != nil {
		t.Errorf("stale state after failed grow: len=%d", buf.Len())
	}
}

func TestBuffer_Fill(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		grows   int
	}{
		{name: "empty payload fits seed", payload: "", grows: 0},
		{name: "grows once", payload: `{"ENTITY_ID":1}`, grows: 1},
		{name: "large payload", payload: string(bytes.Repeat([]byte("x"), 70000)), grows: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := New(nil)
			buf.Fill([]byte(tt.payload))
			if buf.String() != tt.payload {
				t.Errorf("expected %d bytes back, got %d", len(tt.payload), len(buf.String()))
			}
			if buf.Grows() != tt.grows {
				t.Errorf("expected %d grows, got %d", tt.grows, buf.Grows())
			}
		})
	}
}

func TestCString(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0}, ""},
		{[]byte("abc\x00def"), "abc"},
		{[]byte("no terminator"), "no terminator"},
	}
	for _, tt := range tests {
		if got := CString(tt.in); got != tt.want {
			t.Errorf("CString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
