//go:build !tinygo && !cgo

package hal

import (
	"context"
	"fmt"
)

// WindowConfig controls the desktop window presenter.
type WindowConfig struct {
	Host  HostConfig
	Scale int
	TPS   int
}

func RunWindow(_ context.Context, _ AppFunc, _ WindowConfig) error {
	return fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}
