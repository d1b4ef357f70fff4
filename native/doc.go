// Package native binds the engine's shared library through cgo.
//
// The binding is compiled only with the senzing build tag and cgo enabled:
//
//	CGO_CFLAGS=-I/opt/senzing/g2/sdk/c CGO_LDFLAGS="-L/opt/senzing/g2/lib -lG2" \
//	    go build -tags senzing ./...
//
// Without the tag Open reports that the native library is unsupported, so
// the rest of the module builds and tests on machines without the engine.
//
// Every entry point is reached through one generated C switch (dispatch.c)
// that unpacks a g2b_args record into the prototype's argument list. The
// engine grows response buffers through g2b_resize, which calls back into Go
// so the caller's buffer.Resizer sees each growth before the C region is
// reallocated.
package native
