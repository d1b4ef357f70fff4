// Package handle converts native engine handles to and from machine-word
// tokens and keeps an optional registry of open handles.
//
// # Tokens
//
// The engine hands out opaque pointers for export cursors, entity-list
// cursors and in-memory configurations. They cross the Go boundary as Token
// values, a uintptr-sized integer:
//
//	tok := handle.FromPointer(nativePtr)
//	ptr := tok.Pointer() // identical to nativePtr
//
// A wasm32 engine only understands 32-bit handles; Uint32 refuses tokens
// that do not fit instead of truncating them.
//
// # Registry
//
// Table maps small IDs to typed tokens for callers that cannot hold native
// pointers, and notifies observers when handles open and close:
//
//	table := handle.NewTable()
//	id := table.Insert(handle.KindExport, tok, nil)
//	entry, ok := table.GetTyped(id, handle.KindExport)
//	table.Remove(id)
//
// Handles are not reclaimed automatically. An engine handle that is never
// closed leaks engine memory, whether or not it is registered here.
package handle
