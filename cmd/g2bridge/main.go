package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/config"
	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/g2engine"
)

// argList collects a repeatable -arg flag.
type argList []string

func (a *argList) String() string {
	return strings.Join(*a, ",")
}

func (a *argList) Set(v string) error {
	*a = append(*a, v)
	return nil
}

type options struct {
	configPath  string
	wasmFile    string
	useNative   bool
	list        bool
	call        string
	args        argList
	export      bool
	interactive bool
	metricsAddr string
	verbose     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to YAML configuration")
	flag.StringVar(&opts.wasmFile, "wasm", "", "Path to the engine wasm module")
	flag.BoolVar(&opts.useNative, "native", false, "Use the native engine library")
	flag.BoolVar(&opts.list, "list", false, "List entry points and exit")
	flag.StringVar(&opts.call, "call", "", "Entry point to call (e.g. G2_stats)")
	flag.Var(&opts.args, "arg", "Positional argument for -call (repeatable)")
	flag.BoolVar(&opts.export, "export", false, "Stream the JSON entity export")
	flag.BoolVar(&opts.interactive, "i", false, "Interactive mode with TUI")
	flag.StringVar(&opts.metricsAddr, "metrics", "", "HTTP address for Prometheus metrics")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	flag.Parse()

	if !opts.list && !opts.interactive && !opts.export && opts.call == "" {
		fmt.Fprintln(os.Stderr, "Usage: g2bridge -list")
		fmt.Fprintln(os.Stderr, "       g2bridge [-config f.yaml] [-wasm engine.wasm | -native] -call SYMBOL [-arg v]...")
		fmt.Fprintln(os.Stderr, "       g2bridge [-config f.yaml] [-wasm engine.wasm | -native] -export")
		fmt.Fprintln(os.Stderr, "       g2bridge [-config f.yaml] [-wasm engine.wasm | -native] -i  (interactive mode)")
		os.Exit(1)
	}

	if opts.list {
		listEntryPoints(os.Stdout)
		return
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// loadConfig reads the configuration file and applies command-line
// overrides on top of it.
func loadConfig(opts options) (*config.Config, error) {
	return config.Load(opts.configPath, func(cfg *config.Config) {
		switch {
		case opts.useNative:
			cfg.Library = config.LibraryNative
		case opts.wasmFile != "":
			cfg.Library = config.LibraryWASM
			cfg.WASM.Path = opts.wasmFile
		}
		if opts.metricsAddr != "" {
			cfg.MetricsAddr = opts.metricsAddr
		}
		if opts.verbose {
			cfg.Verbose = true
		}
	})
}

func run(ctx context.Context, opts options, logger *zap.Logger) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		stop := serveMetrics(cfg.MetricsAddr, logger)
		defer stop()
	}

	sess, err := openSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer sess.Close(context.Background())

	switch {
	case opts.interactive:
		return runInteractive(sess)
	case opts.export:
		return exportEntities(ctx, sess, os.Stdout)
	default:
		return callEntryPoint(ctx, sess.forwarder, opts.call, opts.args, os.Stdout)
	}
}

func listEntryPoints(w io.Writer) {
	for _, s := range abi.Specs() {
		fmt.Fprintf(w, "  %s\n", s.Signature())
	}
}

func callEntryPoint(ctx context.Context, fw *forward.Forwarder, name string, raw []string, w io.Writer) error {
	spec, ok := abi.Lookup(abi.Symbol(name))
	if !ok {
		return fmt.Errorf("unknown entry point %q (see -list)", name)
	}
	args, err := forward.ParseArgs(spec, raw)
	if err != nil {
		return err
	}
	out, err := fw.Dispatch(ctx, spec.Symbol, args...)
	if err != nil {
		return fmt.Errorf("call %s: %w", spec.Symbol, err)
	}
	fmt.Fprint(w, formatOutcome(out))
	return nil
}

func exportEntities(ctx context.Context, sess *session, w io.Writer) (err error) {
	export, err := sess.engine.ExportJSONEntityReport(ctx, g2engine.ExportDefaultFlags)
	if err != nil {
		return err
	}
	// Closed on a fresh context so an interrupted export still releases
	// its handle.
	defer func() {
		err = errors.Join(err, export.Close(context.Background()))
	}()

	n := 0
	for row, err := range export.All(ctx) {
		if err != nil {
			return err
		}
		fmt.Fprintln(w, strings.TrimRight(row, "\n"))
		n++
	}
	sess.logger.Info("export complete", zap.Int("rows", n))
	return nil
}
