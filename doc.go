// Package g2bridge adapts the entity resolution engine's C-style entry points
// to Go.
//
// The engine reports results through caller-owned response buffers that it
// grows with a resize callback, through a return code, and through opaque
// handles for streamed results. This module forwards every entry point
// under one of a small set of call templates and exposes typed clients on
// top.
//
// # Architecture Overview
//
//	g2bridge/
//	├── abi/           Entry point table: parameters, outputs, template per symbol
//	├── buffer/        Growable response buffers and the resize capability
//	├── handle/        Handle tokens and a typed handle registry
//	├── errors/        Boundary errors and engine error classification
//	├── forward/       Call templates (string, struct, open, fetch, close, ...)
//	├── client/        Shared client plumbing: exceptions, strict mode, iterators
//	├── g2engine/      Engine client and flags
//	├── g2config/      Configuration document client
//	├── g2configmgr/   Configuration registry client
//	├── g2diagnostic/  Diagnostic client
//	├── g2product/     Product and license client
//	├── response/      Typed decoders for engine JSON replies
//	├── wasmabi/       Engine compiled to wasm, run by wazero
//	├── native/        Engine shared library through cgo (tag senzing)
//	├── enginetest/    Scripted in-process engine for tests
//	├── metrics/       Prometheus collector for calls and handles
//	├── config/        YAML configuration and engine settings validation
//	└── cmd/g2bridge/  Command-line and interactive front end
//
// # Quick Start
//
//	lib, err := wasmabi.LoadFile(ctx, "engine.wasm", nil)
//	if err != nil {
//		return err
//	}
//	defer lib.Close(ctx)
//
//	eng := g2engine.New(forward.New(lib))
//	if err := eng.Init(ctx, "loader", settings, 0); err != nil {
//		return err
//	}
//	defer eng.Destroy(ctx)
//
//	entity, err := eng.GetEntityByEntityID(ctx, 1)
//
// String results follow the engine's convention: a failed call reads as an
// empty string. Struct results, handle opens and status calls return an
// *errors.EngineError carrying the code and the engine's last exception.
package g2bridge
