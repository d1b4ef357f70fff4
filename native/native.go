package native

import (
	"go.uber.org/zap"
)

// Config holds configuration for opening the native engine.
type Config struct {
	Logger *zap.Logger
}

func (c *Config) logger() *zap.Logger {
	if c == nil || c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
