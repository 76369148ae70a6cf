package gfx

const (
	minTextSize    = 1
	maxTextSize    = 10
	maxLineSpacing = 20
)

// SetCursor moves the text cursor.
func (e *Engine) SetCursor(x, y int) {
	e.con.x, e.con.y = x, y
}

// Cursor returns the text cursor position.
func (e *Engine) Cursor() (x, y int) { return e.con.x, e.con.y }

// CursorX returns the horizontal cursor position.
func (e *Engine) CursorX() int { return e.con.x }

// CursorY returns the vertical cursor position.
func (e *Engine) CursorY() int { return e.con.y }

// SetTextColor sets the console colors. Pass the same color twice for
// transparent text.
func (e *Engine) SetTextColor(fg, bg Color) {
	e.con.fg, e.con.bg = fg, bg
}

// SetTextFG sets the foreground color over a Black background.
func (e *Engine) SetTextFG(fg Color) { e.SetTextColor(fg, Black) }

// TextColor returns the console foreground and background colors.
func (e *Engine) TextColor() (fg, bg Color) { return e.con.fg, e.con.bg }

// SetTextSize sets the glyph scale. Values outside 1-10 are ignored.
func (e *Engine) SetTextSize(n int) {
	if n < minTextSize || n > maxTextSize {
		return
	}
	e.con.scale = n
}

// TextSize returns the glyph scale.
func (e *Engine) TextSize() int { return e.con.scale }

// SetTextWrap enables or disables wrapping at the text area's right edge.
func (e *Engine) SetTextWrap(wrap bool) { e.con.wrap = wrap }

// TextWrap reports whether wrapping is enabled.
func (e *Engine) TextWrap() bool { return e.con.wrap }

// SetLineSpacing sets the extra pixels between text lines. Values outside
// 0-20 are ignored.
func (e *Engine) SetLineSpacing(n int) {
	if n < 0 || n > maxLineSpacing {
		return
	}
	e.con.spacing = n
}

// LineSpacing returns the extra pixels between text lines.
func (e *Engine) LineSpacing() int { return e.con.spacing }

// SetTextArea confines console output to the w×h rectangle at (x, y).
// The cursor is not moved.
func (e *Engine) SetTextArea(x, y, w, h int) {
	e.con.area = Rect{X: x, Y: y, W: w, H: h}
}

// TextArea returns the confined text area.
func (e *Engine) TextArea() Rect { return e.con.area }

// ClearTextArea fills the text area with the background color and moves the
// cursor to its top-left corner.
func (e *Engine) ClearTextArea() {
	a := e.con.area
	e.FillRect(a.X, a.Y, a.W, a.H, e.con.bg)
	e.con.x, e.con.y = a.X, a.Y
}

// NewLine moves the cursor to the start of the next line. When that line
// would not fit, the whole text area is wiped and the cursor returns to its
// top-left corner; earlier lines are not kept.
func (e *Engine) NewLine() {
	a := e.con.area
	e.con.x = a.X
	e.con.y += e.lineHeight()
	if e.con.y+e.con.scale*GlyphSize > a.Y+a.H {
		e.ClearTextArea()
	}
}

// lineHeight is the vertical pitch of one console line.
func (e *Engine) lineHeight() int {
	return e.con.scale*GlyphSize + e.con.spacing
}

// advance moves the cursor past one glyph, wrapping when the next glyph
// would cross the text area's right edge.
func (e *Engine) advance() {
	cell := e.con.scale * GlyphSize
	e.con.x += cell
	if e.con.wrap && e.con.x+cell > e.con.area.X+e.con.area.W {
		e.NewLine()
	}
}

// putByte streams one byte through the console.
func (e *Engine) putByte(b byte) {
	switch {
	case b == '\n':
		e.NewLine()
	case b == '\r':
		e.con.x = e.con.area.X
	case b < 0x80:
		e.DrawChar(e.con.x, e.con.y, int(b), e.con.fg, e.con.bg, e.con.scale)
		e.advance()
	}
}
