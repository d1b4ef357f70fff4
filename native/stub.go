//go:build !senzing || !cgo

package native

import (
	"context"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/errors"
)

// Available reports whether this build links the engine library.
const Available = false

// Library is the native engine. This build has no engine linked in.
type Library struct{}

var _ abi.Library = (*Library)(nil)

// Open reports that the native engine is not part of this build.
func Open(_ context.Context, cfg *Config) (*Library, error) {
	cfg.logger().Debug("native engine requested in a build without it")
	return nil, errUnavailable()
}

// Invoke implements abi.Library.
func (*Library) Invoke(context.Context, *abi.Call) (int64, error) {
	return 0, errUnavailable()
}

// Close implements abi.Library.
func (*Library) Close(context.Context) error {
	return nil
}

func errUnavailable() error {
	return errors.Unsupported(errors.PhaseLoad, "native engine (build with -tags senzing and cgo)")
}
