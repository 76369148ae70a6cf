//go:build !tinygo

package hal

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Default panel size, matching the 800x480 RGB panel the library targets.
const (
	DefaultWidth  = 800
	DefaultHeight = 480
)

// HostConfig describes the simulated panel.
type HostConfig struct {
	Width  int
	Height int

	// Logger receives device log lines. Nil logs to stderr at info level.
	Logger *slog.Logger
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	ptr    *hostPointer
}

// New returns a host HAL with the default panel size.
func New() (HAL, error) {
	return NewHost(HostConfig{})
}

// NewHost returns a host HAL for cfg.
func NewHost(cfg HostConfig) (HAL, error) {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) (*hostHAL, error) {
	if cfg.Width == 0 && cfg.Height == 0 {
		cfg.Width, cfg.Height = DefaultWidth, DefaultHeight
	}
	fb, err := newHostFramebuffer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("host framebuffer %dx%d: %w", cfg.Width, cfg.Height, err)
	}
	l := cfg.Logger
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return &hostHAL{
		logger: &hostLogger{l: l},
		fb:     fb,
		ptr:    newHostPointer(),
	}, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{ptr: h.ptr} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	ptr *hostPointer
}

func (in hostInput) Pointer() Pointer { return in.ptr }

// hostLogger forwards device log lines to slog at info level.
type hostLogger struct {
	l *slog.Logger
}

func (l *hostLogger) WriteLineString(s string) {
	l.l.Info(strings.TrimRight(s, "\r\n"), "src", "device")
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}
