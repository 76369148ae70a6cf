//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host  HostConfig
	Hz    int
	Ticks uint64

	// Touches are queued on the pointer before the first step.
	Touches []TouchEvent

	// OnExit runs after the loop stops, for example to write a snapshot.
	OnExit func(h HAL) error
}

// RunHeadless runs the application without presenting anywhere. It stops
// after cfg.Ticks steps (0 means until ctx is done).
func RunHeadless(ctx context.Context, newApp AppFunc, cfg HeadlessConfig) (err error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h, err := newHostHAL(cfg.Host)
	if err != nil {
		return err
	}
	step, err := newApp(h)
	if err != nil {
		return fmt.Errorf("start app: %w", err)
	}
	if cfg.OnExit != nil {
		defer func() {
			if exitErr := cfg.OnExit(h); exitErr != nil {
				err = errors.Join(err, exitErr)
			}
		}()
	}
	for _, ev := range cfg.Touches {
		h.ptr.press(ev.X, ev.Y)
		h.ptr.release()
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
