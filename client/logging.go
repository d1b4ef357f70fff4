package client

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/g2-bridge/errors"
)

// levelCore drops entries below an adjustable level before they reach the
// wrapped core. It never enables levels the wrapped core rejects.
type levelCore struct {
	zapcore.Core
	level zap.AtomicLevel
}

func (c *levelCore) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l) && c.Core.Enabled(l)
}

func (c *levelCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.level.Enabled(e.Level) {
		return ce
	}
	return c.Core.Check(e, ce)
}

func (c *levelCore) With(fields []zap.Field) zapcore.Core {
	return &levelCore{Core: c.Core.With(fields), level: c.level}
}

// SetLogLevel changes the level of the client's logger. level is a zap level
// name such as "debug", "info" or "error". The client never logs below the
// level of the logger it was created with.
func (b *Base) SetLogLevel(ctx context.Context, level string) error {
	_ = ctx
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("log_level").
			Detail("unknown level %q", level).
			Cause(err).
			Build()
	}
	b.level.SetLevel(l)
	return nil
}

// LogLevel returns the client's current log level.
func (b *Base) LogLevel() zapcore.Level {
	return b.level.Level()
}
