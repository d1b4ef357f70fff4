// Package errors provides structured error types for the g2-bridge library.
//
// Boundary failures are categorized by Phase (where the error occurred) and
// Kind (error category). The Error type includes rich context: argument path,
// Go and expected type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLower, errors.KindTypeMismatch).
//		Path("G2_getEntityByEntityID", "0").
//		GoType("string").
//		WantType("int64").
//		Detail("entity id must be numeric").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseLower, path, "string", "int64")
//	err := errors.Overflow(errors.PhaseHandle, path, token, "u32")
//
// Non-zero engine return codes are reported as *EngineError, classified from
// the engine's exception code:
//
//	if errors.Is(err, errors.ErrRetryable) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
