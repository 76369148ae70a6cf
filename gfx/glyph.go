package gfx

import "fastgfx/gfx/font8x8"

// GlyphSize is the edge of one unscaled character cell.
const GlyphSize = font8x8.Size

// DrawChar draws the glyph for code with its top-left corner at (x, y).
// Set bits paint fg; clear bits paint bg unless bg == fg, in which case the
// background is left untouched. Each bit becomes a scale×scale block.
//
// Codes outside 0-126 and scales below 1 draw nothing.
func (e *Engine) DrawChar(x, y, code int, fg, bg Color, scale int) {
	if code == font8x8.DEL || scale < 1 {
		return
	}
	g := font8x8.Lookup(code)
	if g == nil {
		return
	}
	opaque := bg != fg

	if scale == 1 {
		for row := 0; row < GlyphSize; row++ {
			bits := g[row]
			for col := 0; col < GlyphSize; col++ {
				if bits&(1<<uint(col)) != 0 {
					e.Pixel(x+col, y+row, fg)
				} else if opaque {
					e.Pixel(x+col, y+row, bg)
				}
			}
		}
		return
	}

	for row := 0; row < GlyphSize; row++ {
		bits := g[row]
		for col := 0; col < GlyphSize; col++ {
			if bits&(1<<uint(col)) != 0 {
				e.FillRect(x+col*scale, y+row*scale, scale, scale, fg)
			} else if opaque {
				e.FillRect(x+col*scale, y+row*scale, scale, scale, bg)
			}
		}
	}
}

// Text draws s starting at (x, y) without touching the console cursor.
// '\n' starts a new row scale×8 pixels lower at x; '\r' is ignored.
func (e *Engine) Text(x, y int, s string, fg, bg Color, scale int) {
	cx, cy := x, y
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '\n':
			cy += scale * GlyphSize
			cx = x
		case '\r':
		default:
			e.DrawChar(cx, cy, int(ch), fg, bg, scale)
			cx += scale * GlyphSize
		}
	}
}

// TextSmall draws s at scale 1 on black.
func (e *Engine) TextSmall(x, y int, s string, fg Color) { e.Text(x, y, s, fg, Black, 1) }

// TextMedium draws s at scale 2 on black.
func (e *Engine) TextMedium(x, y int, s string, fg Color) { e.Text(x, y, s, fg, Black, 2) }

// TextLarge draws s at scale 3 on black.
func (e *Engine) TextLarge(x, y int, s string, fg Color) { e.Text(x, y, s, fg, Black, 3) }
