// Package wasmabi runs an engine compiled to a core WebAssembly module on
// wazero and exposes it as an abi.Library.
//
// # Guest ABI
//
// The module exports its linear memory as "memory", an allocator as
// "cabi_realloc(old, oldSize, align, newSize) -> ptr", and one function per
// entry point named after the C symbol. Entry point parameters follow the C
// prototype on wasm32:
//
//	const char*      i32 pointer to a NUL-terminated copy
//	long long        i64
//	int, size_t      i32
//	handle           i32
//	fixed buffer     i32 pointer, i32 length
//	response buffer  i32 address of the pointer, i32 address of the size
//	handle out       i32 address of an i32
//	value out        i32 address of an i64
//
// Inputs come first, then the fixed buffer, the response buffers, and the
// out-pointers. Status returns are i32, 64-bit returns i64, static strings
// an i32 pointer.
//
// The engine grows a response buffer by calling the imported host function
// env.resize_buffer(ptr, size) -> ptr. The host grows the caller's Go
// buffer through its buffer.Resizer, releases the old guest region and
// returns a new one of exactly size bytes, or 0 when allocation failed.
// After the call the final region is copied back into the Go buffer.
//
// Every guest region allocated for a call is released when the call
// returns. Calls are serialised on a mutex.
//
// Handles issued by the guest are 32-bit. A handle.Token wider than 32 bits
// cannot belong to the guest and is rejected with an overflow error before
// the call.
package wasmabi
