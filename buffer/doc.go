// Package buffer provides the growable response buffer handed to engine
// calls and the resize capability the engine uses to grow it.
//
// The engine never learns the final response size up front. It receives a
// small seed region and calls the resizer whenever the output does not fit:
//
//	buf := buffer.New(buffer.Default)
//	defer buf.Release()
//	// engine side
//	region := buf.Grow(len(payload) + 1)
//	copy(region, payload)
//	// caller side
//	s := buf.String()
//
// The resizer always releases the previous region before allocating the
// next one, so only one region is live per buffer.
package buffer
