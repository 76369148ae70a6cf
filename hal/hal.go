package hal

import "errors"

// ErrNotImplemented is returned by presenters that are unavailable in the
// current build (for example the window presenter without cgo).
var ErrNotImplemented = errors.New("not implemented")

// ErrNoFramebuffer is returned when a runner cannot obtain a framebuffer of
// the requested size.
var ErrNoFramebuffer = errors.New("no framebuffer")

// Logger writes newline-delimited device log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat describes the framebuffer pixel encoding.
type PixelFormat uint8

const (
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer exposes a physical panel as row-major RGB565 pixels.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat

	// Pixels returns the backing store, Width*Height elements long. Writes
	// become visible on the next Present.
	Pixels() []uint16

	// ClearRGB fills the framebuffer with a single RGB color.
	ClearRGB(r, g, b uint8)

	// Present flushes the framebuffer to the panel.
	Present() error
}

// TouchEvent is a touch or click in physical panel coordinates.
type TouchEvent struct {
	X, Y int
}

// Pointer delivers touch events.
type Pointer interface {
	Events() <-chan TouchEvent
}

type Display interface {
	Framebuffer() Framebuffer
}

type Input interface {
	Pointer() Pointer
}

// HAL is the set of devices an application draws and reads from.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

// AppFunc builds an application on h and returns its per-frame step.
type AppFunc func(h HAL) (step func() error, err error)
