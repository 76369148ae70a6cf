package gfx

import (
	"testing"

	"fastgfx/gfx/font8x8"
)

var allRotations = []Rotation{Rotation0, Rotation90, Rotation180, Rotation270}

func newTestEngine(t *testing.T, w, h int, opts ...Option) *Engine {
	t.Helper()
	buf := NewBuffer(w, h)
	if buf == nil {
		t.Fatalf("NewBuffer(%d, %d) = nil", w, h)
	}
	return New(buf, opts...)
}

// at reads the pixel at logical (x, y) through the current rotation.
func at(e *Engine, x, y int) Color {
	px, py := e.rot.Transform(x, y, e.buf.Width, e.buf.Height)
	return e.buf.At(px, py)
}

func snapshot(e *Engine) []uint16 {
	return append([]uint16(nil), e.buf.Pix...)
}

func sameBuffer(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// cellMatches reports whether the scale-1 cell at logical (x, y) shows code
// drawn in fg: set bits are fg and clear bits are not.
func cellMatches(e *Engine, x, y, code int, fg Color) bool {
	g := font8x8.Lookup(code)
	if g == nil {
		return false
	}
	for row := 0; row < GlyphSize; row++ {
		for col := 0; col < GlyphSize; col++ {
			got := at(e, x+col, y+row) == fg
			if got != g.Bit(row, col) {
				return false
			}
		}
	}
	return true
}

// rowHasColor reports whether any pixel in logical rows [y0, y1) is c.
func rowHasColor(e *Engine, y0, y1 int, c Color) bool {
	for y := y0; y < y1; y++ {
		for x := 0; x < e.Width(); x++ {
			if at(e, x, y) == c {
				return true
			}
		}
	}
	return false
}
