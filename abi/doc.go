// Package abi describes the engine's C entry points and the call record
// every backend consumes.
//
// Each entry point has a Spec: its input parameters, the out-parameters it
// writes and the Template its forwarding function follows. The table is
// generated from the engine headers and is the single source for which calls
// swallow their return code and which propagate it.
//
// A Library performs calls:
//
//	spec := abi.MustLookup(abi.G2Stats)
//	call := &abi.Call{Symbol: spec.Symbol, Buffers: []*buffer.Buffer{buffer.New(nil)}}
//	rc, err := lib.Invoke(ctx, call)
//
// Go argument types follow Param: string, int64, int32, uint64 for size_t,
// and handle.Token for engine handles.
package abi
