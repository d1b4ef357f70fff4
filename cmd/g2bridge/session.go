package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/client"
	"github.com/wippyai/g2-bridge/config"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/g2engine"
	"github.com/wippyai/g2-bridge/handle"
	"github.com/wippyai/g2-bridge/metrics"
	"github.com/wippyai/g2-bridge/native"
	"github.com/wippyai/g2-bridge/wasmabi"
)

// session is an opened engine library with its forwarder and engine client.
type session struct {
	lib         abi.Library
	forwarder   *forward.Forwarder
	engine      *g2engine.Engine
	handles     *handle.Table
	logger      *zap.Logger
	name        string
	initialized bool
}

func openLibrary(ctx context.Context, cfg *config.Config, logger *zap.Logger) (abi.Library, string, error) {
	if cfg.Library == config.LibraryNative {
		lib, err := native.Open(ctx, &native.Config{Logger: logger})
		if err != nil {
			return nil, "", err
		}
		return lib, "native", nil
	}
	lib, err := wasmabi.LoadFile(ctx, cfg.WASM.Path, &wasmabi.Config{
		Logger:           logger,
		Name:             cfg.ModuleName,
		MemoryLimitPages: cfg.WASM.MemoryLimitPages,
	})
	if err != nil {
		return nil, "", err
	}
	return lib, cfg.WASM.Path, nil
}

func openSession(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*session, error) {
	lib, name, err := openLibrary(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	s := newSession(lib, name, cfg, logger)
	if cfg.EngineSettings != "" {
		if err := s.init(ctx, cfg); err != nil {
			_ = lib.Close(ctx)
			return nil, err
		}
	}
	return s, nil
}

// newSession wires the forwarder, handle table and engine client over lib.
func newSession(lib abi.Library, name string, cfg *config.Config, logger *zap.Logger) *session {
	collector := metrics.Default()
	handles := handle.NewTable()
	handles.Subscribe(collector)

	fw := forward.New(lib,
		forward.WithLogger(logger),
		forward.WithHook(collector),
		forward.WithFixedSize(cfg.FetchBufferSize))

	opts := []client.Option{
		client.WithLogger(logger),
		client.WithHandleTable(handles),
		client.WithFetchBufferSize(cfg.FetchBufferSize),
	}
	if cfg.StrictErrors {
		opts = append(opts, client.WithStrictErrors())
	}

	return &session{
		lib:       lib,
		forwarder: fw,
		engine:    g2engine.New(fw, opts...),
		handles:   handles,
		logger:    logger,
		name:      name,
	}
}

func (s *session) init(ctx context.Context, cfg *config.Config) error {
	verbose := 0
	if cfg.Verbose {
		verbose = 1
	}
	settings := string(cfg.EngineSettings)

	var err error
	if cfg.ConfigID != 0 {
		err = s.engine.InitWithConfigID(ctx, cfg.ModuleName, settings, cfg.ConfigID, verbose)
	} else {
		err = s.engine.Init(ctx, cfg.ModuleName, settings, verbose)
	}
	if err != nil {
		return err
	}
	s.initialized = true
	s.logger.Debug("engine initialized", zap.String("module", cfg.ModuleName), zap.Int64("config_id", cfg.ConfigID))
	return nil
}

// Close destroys the engine if this session initialized it, releases any
// handles still open and unloads the library.
func (s *session) Close(ctx context.Context) {
	s.handles.Each(func(_ handle.ID, e handle.Entry) bool {
		s.logger.Warn("handle left open", zap.Stringer("handle", e.Token), zap.Stringer("kind", e.Kind))
		return true
	})
	_ = s.handles.Close()

	if s.initialized {
		if err := s.engine.Destroy(ctx); err != nil {
			s.logger.Warn("engine destroy failed", zap.Error(err))
		}
	}
	if err := s.lib.Close(ctx); err != nil {
		s.logger.Warn("library close failed", zap.Error(err))
	}
}

// serveMetrics exposes the default registry on addr until stop is called.
func serveMetrics(addr string, logger *zap.Logger) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("metrics server started", zap.String("addr", addr), zap.String("path", "/metrics"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server failed", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
