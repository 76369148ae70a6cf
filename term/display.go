// Package term runs a tinyterm VT100 terminal on top of a gfx.Engine.
//
// Display adapts an Engine to the tinyterm and tinygo drivers display
// interfaces, so tinyfont, tinyterm and other drivers-based code can draw
// through the engine's rotation and clipping. Terminal configures tinyterm
// with the built-in 8x8 font.
package term

import (
	"errors"
	"image/color"

	"fastgfx/gfx"

	"tinygo.org/x/drivers"
)

// ErrRotation is returned by SetRotation for orientations the engine does
// not support (the mirrored variants).
var ErrRotation = errors.New("term: unsupported rotation")

// Display draws into an Engine in its logical coordinates. Like a panel with
// vertical scrolling, y addresses a memory row and SetScroll picks the row
// shown at the top of the screen.
type Display struct {
	e       *gfx.Engine
	present func() error
	top     int
}

// NewDisplay returns a display over e. present, if non-nil, runs on
// Display() to flush the framebuffer to the panel.
func NewDisplay(e *gfx.Engine, present func() error) *Display {
	return &Display{e: e, present: present}
}

// Engine returns the engine the display draws into.
func (d *Display) Engine() *gfx.Engine { return d.e }

func (d *Display) Size() (x, y int16) {
	return int16(d.e.Width()), int16(d.e.Height())
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	h := d.e.Height()
	if y < 0 || int(y) >= h {
		return
	}
	d.e.Pixel(int(x), d.screenY(int(y), h), gfx.FromRGBA(c))
}

func (d *Display) Display() error {
	if d.present == nil {
		return nil
	}
	return d.present()
}

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	fill := gfx.FromRGBA(c)
	h := d.e.Height()
	y0, y1 := max(int(y), 0), min(int(y)+int(height), h)
	if y0 >= y1 {
		return nil
	}
	sy := d.screenY(y0, h)
	n := y1 - y0
	if first := min(n, h-sy); first > 0 {
		d.e.FillRect(int(x), sy, int(width), first, fill)
		n -= first
	}
	if n > 0 {
		d.e.FillRect(int(x), 0, int(width), n, fill)
	}
	return nil
}

// SetScroll shows memory row line at the top of the screen. The engine only
// holds the visible image, so the rows already on screen are rotated into
// their new places.
func (d *Display) SetScroll(line int16) {
	h := d.e.Height()
	if h == 0 {
		return
	}
	k := mod(int(line)-d.top, h)
	if k != 0 {
		d.reverseRows(0, k)
		d.reverseRows(k, h)
		d.reverseRows(0, h)
	}
	d.top = mod(int(line), h)
}

// Scroll returns the memory row shown at the top of the screen.
func (d *Display) Scroll() int { return d.top }

func (d *Display) screenY(y, h int) int {
	if d.top == 0 {
		return y
	}
	return mod(y-d.top, h)
}

// reverseRows reverses the order of screen rows [a, b).
func (d *Display) reverseRows(a, b int) {
	w := d.e.Width()
	for b--; a < b; a, b = a+1, b-1 {
		for x := 0; x < w; x++ {
			p, q := d.e.At(x, a), d.e.At(x, b)
			d.e.Pixel(x, a, q)
			d.e.Pixel(x, b, p)
		}
	}
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

func (d *Display) Rotation() drivers.Rotation {
	switch d.e.Rotation() {
	case gfx.Rotation90:
		return drivers.Rotation90
	case gfx.Rotation180:
		return drivers.Rotation180
	case gfx.Rotation270:
		return drivers.Rotation270
	}
	return drivers.Rotation0
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	r, ok := fromDriver(rotation)
	if !ok {
		return ErrRotation
	}
	d.e.SetRotation(r)
	d.top = 0
	return nil
}

func fromDriver(r drivers.Rotation) (gfx.Rotation, bool) {
	switch r {
	case drivers.Rotation0:
		return gfx.Rotation0, true
	case drivers.Rotation90:
		return gfx.Rotation90, true
	case drivers.Rotation180:
		return gfx.Rotation180, true
	case drivers.Rotation270:
		return gfx.Rotation270, true
	}
	return 0, false
}
