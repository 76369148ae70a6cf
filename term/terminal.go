package term

import (
	"fmt"

	"fastgfx/gfx"
	"fastgfx/gfx/font8x8"

	"tinygo.org/x/tinyterm"
)

// Line metrics for the 8x8 font: glyph rows start at the top of each text
// row, with two pixels of leading below.
const (
	FontHeight = font8x8.Size + 2
	fontOffset = font8x8.Size - 1
)

// Terminal is a tinyterm terminal drawn with the 8x8 font. New output lines
// scroll up from the bottom of the screen through the display's vertical
// scroll.
type Terminal struct {
	d *Display
	t *tinyterm.Terminal

	cols, rows int
}

// New clears the display and returns a terminal writing from its top-left
// corner.
func New(d *Display) *Terminal {
	t := &Terminal{d: d}
	t.Reset()
	return t
}

// Reset clears the screen and starts a fresh terminal with default
// attributes. It also picks up the display's current size.
func (t *Terminal) Reset() {
	t.d.e.Clear(gfx.Black)
	t.d.top = 0
	t.t = tinyterm.NewTerminal(t.d)
	t.t.Configure(&tinyterm.Config{
		Font:       font8x8.Font,
		FontHeight: FontHeight,
		FontOffset: fontOffset,
	})
	t.cols = t.d.e.Width() / font8x8.Size
	t.rows = t.d.e.Height() / FontHeight
	gfx.Logger().Debug("term: reset", "cols", t.cols, "rows", t.rows)
}

// Cols returns the number of character columns.
func (t *Terminal) Cols() int { return t.cols }

// Rows returns the number of text rows.
func (t *Terminal) Rows() int { return t.rows }

func (t *Terminal) Write(p []byte) (int, error) {
	return t.t.Write(p)
}

func (t *Terminal) WriteString(s string) (int, error) {
	return t.t.Write([]byte(s))
}

func (t *Terminal) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(t.t, format, args...)
}

// Display flushes the display.
func (t *Terminal) Display() error { return t.d.Display() }
