package gfx

// PrintWrapped draws text in color starting at (x, y), breaking lines at word
// boundaries so that lines stay within maxWidth pixels where possible.
//
// Words are separated by space, tab and newline. A space advances one glyph,
// a tab four, a newline forces a break. A word that does not fit moves to the
// next line unless the line is still empty; a lone word wider than maxWidth
// is drawn whole and overflows. Lines are scale×8 plus the console line
// spacing apart, and unset glyph bits use the console background color.
//
// PrintWrapped neither reads nor moves the console cursor. Words longer than
// the engine's word buffer are cut to its capacity.
func (e *Engine) PrintWrapped(x, y, maxWidth int, text string, c Color, scale int) {
	if scale < 1 {
		return
	}
	cell := scale * GlyphSize
	pitch := cell + e.con.spacing
	limit := cap(e.word)

	cx, cy := x, y
	word := e.word[:0]
	for i := 0; i < len(text); i++ {
		ch := text[i]
		sep := ch == ' ' || ch == '\t' || ch == '\n'
		if !sep {
			if len(word) < limit {
				word = append(word, ch)
			}
			if i+1 < len(text) {
				continue
			}
		}

		if len(word) > 0 {
			w := len(word) * cell
			if cx+w > x+maxWidth && cx > x {
				cx = x
				cy += pitch
			}
			for j, b := range word {
				e.DrawChar(cx+j*cell, cy, int(b), c, e.con.bg, scale)
			}
			cx += w
			word = word[:0]
		}

		switch ch {
		case ' ':
			cx += cell
		case '\t':
			cx += 4 * cell
		case '\n':
			cx = x
			cy += pitch
		}
	}
}
