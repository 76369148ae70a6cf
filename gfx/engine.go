// Package gfx is a software rasterizer for fixed-size RGB565 panels.
//
// An Engine draws pixels, rectangles, lines, circles and 8x8 bitmap text into
// a caller-owned Buffer, in logical coordinates that follow the current
// Rotation. On top of that it keeps a small text console: a cursor, colors,
// a scale factor and a confined text area that wraps and wipe-scrolls.
//
// Drawing never fails. Coordinates outside the screen are clipped, bad
// parameters are ignored and characters without a glyph are skipped.
//
// An Engine is not safe for concurrent use; hosts that draw from several
// goroutines must serialize access themselves.
package gfx

// Rect is an axis-aligned rectangle in logical coordinates.
type Rect struct {
	X, Y, W, H int
}

const (
	defaultNumberBuffer = 32
	minNumberBuffer     = 8
	defaultWordBuffer   = 49
	defaultLineSpacing  = 2
)

type options struct {
	numberBuf int
	wordBuf   int
}

// Option configures an Engine.
type Option func(*options)

// WithNumberBuffer sets how many bytes of a formatted number are printed.
// Longer renderings are cut to their leading bytes. Values below 8 are
// raised to 8.
func WithNumberBuffer(n int) Option {
	return func(o *options) {
		if n < minNumberBuffer {
			n = minNumberBuffer
		}
		o.numberBuf = n
	}
}

// WithWordBuffer sets how many characters of one word PrintWrapped keeps.
// Extra characters are dropped. Values below 1 are raised to 1.
func WithWordBuffer(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.wordBuf = n
	}
}

type console struct {
	x, y    int
	fg, bg  Color
	scale   int
	wrap    bool
	spacing int
	area    Rect
}

// Engine renders into one Buffer. Construct it with New.
type Engine struct {
	buf    *Buffer
	rot    Rotation
	width  int
	height int

	con console

	numCap  int
	numText [maxNumberText]byte
	word    []byte
}

// New returns an engine drawing into buf at Rotation0 with the default text
// state: cursor at the origin, white on black, scale 1, wrap on, line
// spacing 2 and the text area covering the whole screen.
//
// A nil buf yields an engine with a zero-sized screen on which every call
// is a no-op.
func New(buf *Buffer, opts ...Option) *Engine {
	o := options{numberBuf: defaultNumberBuffer, wordBuf: defaultWordBuffer}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		buf:    buf,
		numCap: o.numberBuf,
		word:   make([]byte, 0, o.wordBuf),
	}
	if buf != nil {
		e.width, e.height = buf.Width, buf.Height
	}
	e.con = console{
		fg:      White,
		bg:      Black,
		scale:   1,
		wrap:    true,
		spacing: defaultLineSpacing,
		area:    Rect{W: e.width, H: e.height},
	}

	Logger().Debug("gfx: engine ready", "width", e.width, "height", e.height,
		"numberBuffer", o.numberBuf, "wordBuffer", o.wordBuf)
	return e
}

// Buffer returns the buffer the engine draws into.
func (e *Engine) Buffer() *Buffer { return e.buf }

// Rotation returns the current orientation.
func (e *Engine) Rotation() Rotation { return e.rot }

// Width returns the logical screen width under the current rotation.
func (e *Engine) Width() int { return e.width }

// Height returns the logical screen height under the current rotation.
func (e *Engine) Height() int { return e.height }

// SetRotation switches orientation and resets the text area to the new full
// logical screen. The buffer contents and the cursor are left alone.
// Unsupported values are ignored.
func (e *Engine) SetRotation(r Rotation) {
	if !r.Valid() {
		return
	}
	e.rot = r
	if e.buf != nil {
		e.width, e.height = r.LogicalSize(e.buf.Width, e.buf.Height)
	}
	e.con.area = Rect{W: e.width, H: e.height}

	Logger().Debug("gfx: rotation changed", "rotation", r.Degrees(),
		"width", e.width, "height", e.height)
}

// ToLogical converts a physical panel coordinate, such as a touch point, to
// the logical frame of the current rotation.
func (e *Engine) ToLogical(px, py int) (x, y int) {
	if e.buf == nil {
		return px, py
	}
	return e.rot.Inverse(px, py, e.buf.Width, e.buf.Height)
}
