//go:build !tinygo

// Command fgsnap renders a scene without a window and writes the final
// frame to a PNG or BMP file.
//
//	fgsnap -scene showcase -touch 10,10 -touch 10,10 -out text.png
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fastgfx/app"
	"fastgfx/gfx"
	"fastgfx/hal"
	"fastgfx/internal/snapshot"
)

type touchList []hal.TouchEvent

func (l *touchList) String() string {
	parts := make([]string, len(*l))
	for i, ev := range *l {
		parts[i] = fmt.Sprintf("%d,%d", ev.X, ev.Y)
	}
	return strings.Join(parts, " ")
}

func (l *touchList) Set(s string) error {
	ev, err := parseTouch(s)
	if err != nil {
		return err
	}
	*l = append(*l, ev)
	return nil
}

// parseTouch reads a physical panel point written as "x,y".
func parseTouch(s string) (hal.TouchEvent, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return hal.TouchEvent{}, fmt.Errorf("touch %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return hal.TouchEvent{}, fmt.Errorf("touch %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return hal.TouchEvent{}, fmt.Errorf("touch %q: %w", s, err)
	}
	return hal.TouchEvent{X: x, Y: y}, nil
}

func main() {
	var (
		outPath  string
		scene    string
		rotation int
		width    int
		height   int
		steps    uint64
		scale    int
		seed     uint64
		logLevel string
		touches  touchList
	)
	flag.StringVar(&outPath, "out", "", "Output image path (.png or .bmp).")
	flag.StringVar(&scene, "scene", string(app.SceneApp), "Scene: app, demo, showcase or term.")
	flag.IntVar(&rotation, "rotation", 0, "Screen rotation in degrees.")
	flag.IntVar(&width, "width", hal.DefaultWidth, "Panel width in pixels.")
	flag.IntVar(&height, "height", hal.DefaultHeight, "Panel height in pixels.")
	flag.Uint64Var(&steps, "steps", 1, "Frames to run before the snapshot.")
	flag.IntVar(&scale, "scale", 1, "Integer zoom applied to the image.")
	flag.Uint64Var(&seed, "seed", 1, "Seed for the showcase targets.")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level.")
	flag.Var(&touches, "touch", "Queue a touch at physical x,y (repeatable).")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}
	if steps == 0 {
		fmt.Fprintln(os.Stderr, "error: -steps must be at least 1")
		os.Exit(2)
	}

	if err := render(outPath, scene, rotation, width, height, steps, scale, seed, logLevel, touches); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func render(outPath, scene string, rotation, width, height int, steps uint64, scale int, seed uint64, logLevel string, touches []hal.TouchEvent) error {
	logger, err := hal.NewLogger(os.Stderr, logLevel)
	if err != nil {
		return err
	}
	gfx.SetLogger(logger)

	cfg := app.DefaultConfig()
	if cfg.Scene, err = app.ParseScene(scene); err != nil {
		return err
	}
	rot, ok := gfx.FromDegrees(rotation)
	if !ok {
		return fmt.Errorf("invalid rotation %d", rotation)
	}
	cfg.Rotation = rot
	cfg.Seed = seed
	// All queued touches drain in the first frame; a clock that jumps a
	// second per reading keeps the showcase debounce from dropping them.
	cfg.Clock = steppingClock(time.Second)

	return hal.RunHeadless(context.Background(), app.Factory(cfg), hal.HeadlessConfig{
		Host:    hal.HostConfig{Width: width, Height: height, Logger: logger},
		Hz:      1000,
		Ticks:   steps,
		Touches: touches,
		OnExit: func(h hal.HAL) error {
			fb := h.Display().Framebuffer()
			return snapshot.WriteFile(outPath, gfx.WrapBuffer(fb.Pixels(), fb.Width(), fb.Height()), scale)
		},
	})
}

func steppingClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}
