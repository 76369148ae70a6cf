package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"fastgfx/gfx"
)

// panicScreen logs v with the stack, paints it black on white and halts the
// app. The screen stays up; later steps do nothing.
func (a *App) panicScreen(v any) error {
	a.halted = true
	stack := strings.Split(strings.TrimSpace(string(debug.Stack())), "\n")

	a.logf("fastgfx panic: %v", v)
	for _, line := range stack {
		a.logf("%s", line)
	}

	e := a.e
	e.SetTextArea(0, 0, e.Width(), e.Height())
	e.Clear(gfx.White)
	e.SetTextColor(gfx.Black, gfx.White)
	e.SetTextSize(1)
	e.SetLineSpacing(2)
	e.SetTextWrap(true)
	e.SetCursor(0, 0)

	// One row per line, stopping at the bottom: wrapping or a newline past
	// the last row would wipe-scroll the header away.
	maxCols := max(e.Width()/gfx.GlyphSize-1, 1)
	lines := append([]string{"fastgfx panic:", fmt.Sprintf("panic: %v", v), "stack:"}, stack...)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) > maxCols {
			line = line[:maxCols]
		}
		if e.CursorY()+2*gfx.GlyphSize+e.LineSpacing() > e.Height() {
			e.Print(gfx.Str(line))
			break
		}
		e.Println(gfx.Str(line))
	}
	return a.present()
}
