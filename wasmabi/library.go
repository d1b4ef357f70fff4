package wasmabi

import (
	"context"
	"os"
	"slices"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/errors"
)

const (
	// HostModule is the import module providing the resize callback.
	HostModule = "env"
	// ResizeImport is the name of the resize callback import:
	// resize_buffer(ptr i32, size i32) -> i32.
	ResizeImport = "resize_buffer"

	memoryExport  = "memory"
	reallocExport = "cabi_realloc"
	initExport    = "_initialize"
	wasiModule    = "wasi_snapshot_preview1"
)

// Config holds configuration for loading an engine module.
type Config struct {
	Logger *zap.Logger

	// Name is the instance name inside the runtime. Empty means "g2".
	Name string

	// Required lists the components whose every entry point the module must
	// export. Entry points of other components are bound when present.
	Required []abi.Component

	// MemoryLimitPages sets the maximum guest memory in pages (64KB each).
	// 0 means the wazero default.
	MemoryLimitPages uint32
}

// Library is an engine compiled to a core wasm module and run by wazero.
// It implements abi.Library. Calls are serialised: the module has a single
// instance and one linear memory.
type Library struct {
	runtime wazero.Runtime
	module  api.Module
	logger  *zap.Logger
	alloc   *guestAllocator
	funcs   map[abi.Symbol]api.Function
	active  *frame
	mem     guestMemory
	mu      sync.Mutex
	closed  bool
}

// LoadFile reads and loads the module at path.
func LoadFile(ctx context.Context, path string, cfg *Config) (*Library, error) {
	wasmBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read "+path, err)
	}
	return Load(ctx, wasmBytes, cfg)
}

// Load compiles and instantiates an engine module. The module must export
// its linear memory as "memory" and an allocator as "cabi_realloc". It may
// import env.resize_buffer and WASI preview1.
func Load(ctx context.Context, wasmBytes []byte, cfg *Config) (*Library, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	name := cfg.Name
	if name == "" {
		name = "g2"
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	l := &Library{
		runtime: rt,
		logger:  logger,
		funcs:   make(map[abi.Symbol]api.Function),
	}
	if err := l.instantiate(ctx, wasmBytes, name, cfg.Required); err != nil {
		_ = rt.Close(ctx)
		return nil, err
	}

	logger.Debug("engine module loaded",
		zap.String("name", name),
		zap.Int("entry_points", len(l.funcs)),
		zap.Uint32("memory_bytes", l.mem.mem.Size()))
	return l, nil
}

func (l *Library) instantiate(ctx context.Context, wasmBytes []byte, name string, required []abi.Component) error {
	compiled, err := l.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return errors.Load("compile engine module", err)
	}

	if importsModule(compiled, wasiModule) {
		if _, err := wasi_snapshot_preview1.Instantiate(ctx, l.runtime); err != nil {
			return errors.Registration(wasiModule, "*", err)
		}
	}

	_, err = l.runtime.NewHostModuleBuilder(HostModule).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(l.resizeBuffer),
			[]api.ValueType{api.ValueTypeI32, api.ValueTypeI32},
			[]api.ValueType{api.ValueTypeI32}).
		Export(ResizeImport).
		Instantiate(ctx)
	if err != nil {
		return errors.Registration(HostModule, ResizeImport, err)
	}

	mod, err := l.runtime.InstantiateModule(ctx, compiled,
		wazero.NewModuleConfig().WithName(name).WithStartFunctions())
	if err != nil {
		return errors.Instantiation(err)
	}
	l.module = mod

	if init := mod.ExportedFunction(initExport); init != nil {
		if _, err := init.Call(ctx); err != nil {
			return errors.Instantiation(err)
		}
	}

	var missing []string
	mem := mod.ExportedMemory(memoryExport)
	if mem == nil {
		missing = append(missing, memoryExport)
	}
	realloc := mod.ExportedFunction(reallocExport)
	if realloc == nil {
		missing = append(missing, reallocExport)
	}

	for _, spec := range abi.Specs() {
		fn := mod.ExportedFunction(string(spec.Symbol))
		if fn == nil {
			if slices.Contains(required, spec.Symbol.Component()) {
				missing = append(missing, string(spec.Symbol))
			}
			continue
		}
		params, results := signature(spec)
		def := fn.Definition()
		if !sameTypes(def.ParamTypes(), params) || !sameTypes(def.ResultTypes(), results) {
			return errors.New(errors.PhaseLoad, errors.KindTypeMismatch).
				Path(string(spec.Symbol)).
				GoType(typeList(def.ParamTypes())+" -> "+typeList(def.ResultTypes())).
				WantType(typeList(params)+" -> "+typeList(results)).
				Detail("export signature does not match the entry point").
				Build()
		}
		l.funcs[spec.Symbol] = fn
	}

	if len(missing) > 0 {
		return errors.NewMissingExportsError(missing)
	}
	l.mem = guestMemory{mem: mem}
	l.alloc = newGuestAllocator(realloc)
	return nil
}

func importsModule(compiled wazero.CompiledModule, module string) bool {
	for _, def := range compiled.ImportedFunctions() {
		if mod, _, ok := def.Import(); ok && mod == module {
			return true
		}
	}
	return false
}

// resizeBuffer is the env.resize_buffer host function.
func (l *Library) resizeBuffer(ctx context.Context, _ api.Module, stack []uint64) {
	old, size := api.DecodeU32(stack[0]), api.DecodeU32(stack[1])
	f := l.active
	if f == nil {
		l.logger.Warn("resize outside an engine call", zap.Uint32("ptr", old), zap.Uint32("size", size))
		stack[0] = 0
		return
	}
	ptr := f.resize(ctx, old, size)
	l.logger.Debug("resize buffer",
		zap.String("symbol", string(f.spec.Symbol)),
		zap.Uint32("old", old),
		zap.Uint32("size", size),
		zap.Uint32("ptr", ptr))
	stack[0] = api.EncodeU32(ptr)
}

// Invoke implements abi.Library.
func (l *Library) Invoke(ctx context.Context, call *abi.Call) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	spec, ok := abi.Lookup(call.Symbol)
	if !ok {
		return 0, errors.NotFound(errors.PhaseInvoke, "entry point", string(call.Symbol))
	}
	if err := spec.Check(call); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return 0, errors.Closed("wasm engine")
	}
	fn := l.funcs[call.Symbol]
	if fn == nil {
		return 0, errors.NotFound(errors.PhaseInvoke, "export", string(call.Symbol))
	}

	f := &frame{lib: l, spec: spec, call: call}
	defer f.release(ctx)
	if err := f.lower(ctx); err != nil {
		return 0, err
	}

	l.active = f
	results, err := fn.Call(ctx, f.stack...)
	l.active = nil
	if err != nil {
		return 0, errors.Trap(string(call.Symbol), err)
	}
	if f.err != nil {
		return 0, f.err
	}
	return f.lift(results)
}

// Has reports whether the module exports sym.
func (l *Library) Has(sym abi.Symbol) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.funcs[sym]
	return ok
}

// Symbols returns the entry points the module exports, in table order.
func (l *Library) Symbols() []abi.Symbol {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []abi.Symbol
	for _, spec := range abi.Specs() {
		if _, ok := l.funcs[spec.Symbol]; ok {
			out = append(out, spec.Symbol)
		}
	}
	return out
}

// Close implements abi.Library. Closing twice is a no-op.
func (l *Library) Close(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	return l.runtime.Close(ctx)
}
