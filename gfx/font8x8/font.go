// Package font8x8 holds the fixed 8x8 bitmap font used by the rasterizer.
//
// The table covers ASCII 0-127. Control codes and DEL have empty glyphs.
package font8x8

import (
	"math/bits"

	"tinygo.org/x/tinyfont"
)

const (
	// Size is the glyph cell edge in pixels.
	Size = 8
	// Count is the number of glyphs in the table.
	Count = 128
	// DEL is the delete control code; it has no visible shape.
	DEL = 0x7F
)

// Glyph is one 8x8 character bitmap, one byte per row.
type Glyph [Size]uint8

// Bit reports whether the pixel at (row, col) is set.
func (g *Glyph) Bit(row, col int) bool {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return false
	}
	return g[row]&(1<<uint(col)) != 0
}

// Empty reports whether no pixel of the glyph is set.
func (g *Glyph) Empty() bool {
	for _, b := range g {
		if b != 0 {
			return false
		}
	}
	return true
}

// Lookup returns the glyph for code, or nil if code is outside 0-127.
func Lookup(code int) *Glyph {
	if code < 0 || code >= Count {
		return nil
	}
	return &glyphs[code]
}

// Font is the table as a tinyfont.Font, for tinyfont and tinyterm. Runes
// outside ASCII get tinyfont's empty glyph: blank, one cell wide.
//
// tinyfont rewrites the empty glyph on every miss, so concurrent use is not
// safe.
var Font = newFont()

func newFont() *tinyfont.Font {
	f := &tinyfont.Font{
		BBox:     [4]int8{Size, Size, 0, -(Size - 1)},
		Glyphs:   make([]tinyfont.Glyph, Count),
		YAdvance: Size,
	}
	for code := range f.Glyphs {
		g := &glyphs[code]
		bm := make([]byte, Size)
		for row, b := range g {
			// tinyfont reads the leftmost pixel from the high bit.
			bm[row] = bits.Reverse8(b)
		}
		f.Glyphs[code] = tinyfont.Glyph{
			Rune:     rune(code),
			Width:    Size,
			Height:   Size,
			XAdvance: Size,
			YOffset:  -(Size - 1),
			Bitmaps:  bm,
		}
	}
	f.EmptyGlyph = tinyfont.Glyph{Rune: '?', XAdvance: Size}
	return f
}
