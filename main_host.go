//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"fastgfx/app"
	"fastgfx/gfx"
	"fastgfx/hal"
	"fastgfx/internal/buildinfo"
	"fastgfx/internal/snapshot"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		headless = flag.Bool("headless", false, "Run without a window.")
		terminal = flag.Bool("terminal", false, "Render into the terminal with half-block cells.")
		hz       = flag.Int("hz", 0, "Tick rate (0 = runner default).")
		ticks    = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
		width    = flag.Int("width", hal.DefaultWidth, "Panel width in pixels.")
		height   = flag.Int("height", hal.DefaultHeight, "Panel height in pixels.")
		scale    = flag.Int("scale", 1, "Window zoom factor.")
		rotation = flag.Int("rotation", 0, "Screen rotation in degrees: 0, 90, 180 or 270.")
		scene    = flag.String("scene", string(app.SceneApp), "Scene: app, demo, showcase or term.")
		bg       = flag.String("bg", "black", "Background color (name, #rrggbb or 0xRGB565).")
		touch    = flag.String("touch-color", "white", "Touch dot color.")
		seed     = flag.Uint64("seed", 1, "Seed for the showcase targets.")
		snapPath = flag.String("snapshot", "", "Write the final frame to this .png or .bmp file (headless only).")
		logLevel = flag.String("log-level", "info", "Log level: debug, info, warn or error.")
		version  = flag.Bool("version", false, "Print the version and exit.")
	)
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.String())
		return nil
	}

	logger, err := hal.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		return err
	}
	gfx.SetLogger(logger)

	cfg := app.DefaultConfig()
	if cfg.Scene, err = app.ParseScene(*scene); err != nil {
		return err
	}
	rot, ok := gfx.FromDegrees(*rotation)
	if !ok {
		return fmt.Errorf("invalid rotation %d: want 0, 90, 180 or 270", *rotation)
	}
	cfg.Rotation = rot
	if cfg.Background, err = gfx.ParseColor(*bg); err != nil {
		return fmt.Errorf("-bg: %w", err)
	}
	if cfg.TouchColor, err = gfx.ParseColor(*touch); err != nil {
		return fmt.Errorf("-touch-color: %w", err)
	}
	cfg.Seed = *seed

	host := hal.HostConfig{Width: *width, Height: *height, Logger: logger}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *headless:
		hcfg := hal.HeadlessConfig{Host: host, Hz: *hz, Ticks: *ticks}
		if *snapPath != "" {
			path := *snapPath
			hcfg.OnExit = func(h hal.HAL) error {
				fb := h.Display().Framebuffer()
				return snapshot.WriteFile(path, gfx.WrapBuffer(fb.Pixels(), fb.Width(), fb.Height()), 1)
			}
		}
		return hal.RunHeadless(ctx, app.Factory(cfg), hcfg)
	case *terminal:
		return hal.RunTerminal(ctx, app.Factory(cfg), hal.TerminalConfig{Host: host, Hz: *hz})
	default:
		return hal.RunWindow(ctx, app.Factory(cfg), hal.WindowConfig{Host: host, Scale: *scale, TPS: *hz})
	}
}
