//go:build senzing && cgo

package native

// This file holds only //export functions: cgo forbids C definitions in
// the preamble of a file that exports to C.

/*
#include <stddef.h>
*/
import "C"

import "unsafe"

//export goResize
func goResize(ptr unsafe.Pointer, size C.size_t) unsafe.Pointer {
	f := current
	if f == nil {
		return nil
	}
	return f.resize(ptr, uint64(size))
}
