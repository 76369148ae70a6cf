package hal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

func quietHost(w, h int) HostConfig {
	return HostConfig{Width: w, Height: h, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestRunHeadlessTicks(t *testing.T) {
	var steps int
	var got []TouchEvent
	var exited bool

	newApp := func(h HAL) (func() error, error) {
		ptr := h.Input().Pointer()
		return func() error {
			steps++
			for {
				select {
				case ev := <-ptr.Events():
					got = append(got, ev)
				default:
					return nil
				}
			}
		}, nil
	}
	cfg := HeadlessConfig{
		Host:    quietHost(8, 8),
		Hz:      1000,
		Ticks:   3,
		Touches: []TouchEvent{{1, 1}, {2, 3}},
		OnExit: func(h HAL) error {
			exited = true
			return nil
		},
	}
	if err := RunHeadless(context.Background(), newApp, cfg); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d", steps)
	}
	if len(got) != 2 || got[1] != (TouchEvent{2, 3}) {
		t.Fatalf("touches = %+v", got)
	}
	if !exited {
		t.Fatal("OnExit not called")
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	exitErr := errors.New("exit")
	newApp := func(HAL) (func() error, error) {
		return func() error { return boom }, nil
	}
	cfg := HeadlessConfig{
		Host:   quietHost(4, 4),
		Hz:     1000,
		OnExit: func(HAL) error { return exitErr },
	}
	err := RunHeadless(context.Background(), newApp, cfg)
	if !errors.Is(err, boom) || !errors.Is(err, exitErr) {
		t.Fatalf("err = %v", err)
	}
}

func TestRunHeadlessAppError(t *testing.T) {
	boom := errors.New("boom")
	newApp := func(HAL) (func() error, error) { return nil, boom }
	if err := RunHeadless(context.Background(), newApp, HeadlessConfig{Host: quietHost(4, 4)}); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	newApp := func(HAL) (func() error, error) { return nil, nil }
	err := RunHeadless(ctx, newApp, HeadlessConfig{Host: quietHost(4, 4), Hz: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
