package gfx

import (
	"fmt"
	"math"
	"testing"
)

func TestConsoleDefaults(t *testing.T) {
	e := newTestEngine(t, 80, 48)
	if x, y := e.Cursor(); x != 0 || y != 0 {
		t.Fatalf("cursor = (%d,%d)", x, y)
	}
	if fg, bg := e.TextColor(); fg != White || bg != Black {
		t.Fatalf("colors = %v/%v", fg, bg)
	}
	if e.TextSize() != 1 || !e.TextWrap() || e.LineSpacing() != 2 {
		t.Fatalf("size=%d wrap=%v spacing=%d", e.TextSize(), e.TextWrap(), e.LineSpacing())
	}
	if a := e.TextArea(); a != (Rect{W: 80, H: 48}) {
		t.Fatalf("area = %+v", a)
	}
}

func TestSettersRejectOutOfRange(t *testing.T) {
	e := newTestEngine(t, 80, 48)
	e.SetTextSize(3)
	e.SetTextSize(0)
	e.SetTextSize(11)
	if e.TextSize() != 3 {
		t.Fatalf("size = %d, want 3", e.TextSize())
	}
	e.SetLineSpacing(20)
	e.SetLineSpacing(-1)
	e.SetLineSpacing(21)
	if e.LineSpacing() != 20 {
		t.Fatalf("spacing = %d, want 20", e.LineSpacing())
	}
	e.SetLineSpacing(0)
	if e.LineSpacing() != 0 {
		t.Fatalf("spacing = %d, want 0", e.LineSpacing())
	}
}

func TestPrintAdvancesCursor(t *testing.T) {
	e := newTestEngine(t, 80, 48)
	e.SetCursor(4, 5)
	e.Print(Str("AB"))
	if x, y := e.Cursor(); x != 20 || y != 5 {
		t.Fatalf("cursor = (%d,%d), want (20,5)", x, y)
	}
	if !cellMatches(e, 4, 5, 'A', White) || !cellMatches(e, 12, 5, 'B', White) {
		t.Fatal("glyphs not drawn at the cursor")
	}

	e.SetTextSize(2)
	e.Print(Char('C'))
	if e.CursorX() != 36 {
		t.Fatalf("cursor x = %d, want 36", e.CursorX())
	}
}

func TestCarriageReturn(t *testing.T) {
	e := newTestEngine(t, 80, 48)
	e.SetTextArea(10, 4, 60, 40)
	e.SetCursor(10, 4)
	e.Print(Str("ABC\rD"))
	if x, y := e.Cursor(); x != 18 || y != 4 {
		t.Fatalf("cursor = (%d,%d), want (18,4)", x, y)
	}
	if !cellMatches(e, 10, 4, 'D', White) {
		t.Fatal("'\\r' did not return to the area's left edge")
	}
}

func TestWrapBeforeCrossingEdge(t *testing.T) {
	e := newTestEngine(t, 80, 48)
	e.SetTextArea(0, 0, 24, 48)
	e.Print(Str("ABCD"))
	if !cellMatches(e, 16, 0, 'C', White) {
		t.Fatal("third glyph not on the first line")
	}
	if !cellMatches(e, 0, 10, 'D', White) {
		t.Fatal("fourth glyph did not wrap")
	}
	if x, y := e.Cursor(); x != 8 || y != 10 {
		t.Fatalf("cursor = (%d,%d), want (8,10)", x, y)
	}
}

func TestNoWrap(t *testing.T) {
	e := newTestEngine(t, 80, 48)
	e.SetTextArea(0, 0, 24, 48)
	e.SetTextWrap(false)
	e.Print(Str("ABCD"))
	if x, y := e.Cursor(); x != 32 || y != 0 {
		t.Fatalf("cursor = (%d,%d), want (32,0)", x, y)
	}
}

func TestNewLine(t *testing.T) {
	e := newTestEngine(t, 80, 48)
	e.SetTextArea(5, 0, 70, 48)
	e.SetCursor(30, 0)
	e.SetLineSpacing(4)
	e.NewLine()
	if x, y := e.Cursor(); x != 5 || y != 12 {
		t.Fatalf("cursor = (%d,%d), want (5,12)", x, y)
	}
	e.Println()
	if e.CursorY() != 24 {
		t.Fatalf("Println() cursor y = %d, want 24", e.CursorY())
	}
}

func TestNewLineWipeScroll(t *testing.T) {
	e := newTestEngine(t, 48, 40)
	e.Clear(Red)
	e.SetTextArea(4, 4, 32, 20)
	e.SetTextColor(White, Black)
	e.SetCursor(4, 4)

	e.Println(Str("AAA"))
	if x, y := e.Cursor(); x != 4 || y != 14 {
		t.Fatalf("after first line cursor = (%d,%d)", x, y)
	}
	e.Println(Str("BBB"))
	if x, y := e.Cursor(); x != 4 || y != 4 {
		t.Fatalf("after wipe cursor = (%d,%d), want (4,4)", x, y)
	}
	e.Print(Char('C'))

	for y := 0; y < 40; y++ {
		for x := 0; x < 48; x++ {
			inArea := x >= 4 && x < 36 && y >= 4 && y < 24
			inCell := x >= 4 && x < 12 && y >= 4 && y < 12
			c := at(e, x, y)
			switch {
			case !inArea:
				if c != Red {
					t.Fatalf("(%d,%d) outside the area = %v", x, y, c)
				}
			case !inCell:
				if c != Black {
					t.Fatalf("stale pixel at (%d,%d) = %v", x, y, c)
				}
			}
		}
	}
	if !cellMatches(e, 4, 4, 'C', White) {
		t.Fatal("next glyph not at the area's top-left")
	}
}

func TestClearTextArea(t *testing.T) {
	e := newTestEngine(t, 48, 40)
	e.Clear(Red)
	e.SetTextColor(White, Blue)
	e.SetTextArea(2, 3, 10, 5)
	e.SetCursor(30, 30)
	e.ClearTextArea()
	if x, y := e.Cursor(); x != 2 || y != 3 {
		t.Fatalf("cursor = (%d,%d)", x, y)
	}
	if at(e, 2, 3) != Blue || at(e, 11, 7) != Blue || at(e, 12, 7) != Red || at(e, 11, 8) != Red {
		t.Fatal("area fill wrong")
	}
}

func TestPrintDropsNonASCII(t *testing.T) {
	e := newTestEngine(t, 48, 40)
	before := snapshot(e)
	e.Print(Str("\xc3\xa9"), Char(0xff))
	if x, y := e.Cursor(); x != 0 || y != 0 {
		t.Fatalf("cursor = (%d,%d)", x, y)
	}
	if !sameBuffer(before, e.buf.Pix) {
		t.Fatal("buffer modified")
	}
}

func TestPrintBool(t *testing.T) {
	e := newTestEngine(t, 160, 40)
	e.Print(Bool(true))
	if e.CursorX() != 4*8 {
		t.Fatalf("cursor x = %d after true", e.CursorX())
	}
	for i, ch := range "true" {
		if !cellMatches(e, i*8, 0, int(ch), White) {
			t.Fatalf("glyph %d is not %q", i, ch)
		}
	}
	e.Print(Bool(false))
	if e.CursorX() != 9*8 {
		t.Fatalf("cursor x = %d after false", e.CursorX())
	}
}

func TestPrintFloat(t *testing.T) {
	e := newTestEngine(t, 160, 40)
	e.Print(Float(25.6, 1))
	for i, ch := range "25.6" {
		if !cellMatches(e, i*8, 0, int(ch), White) {
			t.Fatalf("glyph %d is not %q", i, ch)
		}
	}
	if e.CursorX() != 32 {
		t.Fatalf("cursor x = %d", e.CursorX())
	}
}

func TestNumberBufferTruncation(t *testing.T) {
	e := newTestEngine(t, 320, 40, WithNumberBuffer(8))
	e.Print(Int(int64(1234567890123)))
	if e.CursorX() != 8*8 {
		t.Fatalf("cursor x = %d, want 64", e.CursorX())
	}
	if !cellMatches(e, 7*8, 0, '8', White) {
		t.Fatal("truncation did not keep the leading digits")
	}

	e = newTestEngine(t, 320, 40, WithNumberBuffer(8))
	e.Print(Str("a string is not cut"))
	if e.CursorX() != 19*8 {
		t.Fatalf("string cursor x = %d", e.CursorX())
	}
}

func TestNumberTruncationNoAllocs(t *testing.T) {
	e := newTestEngine(t, 320, 40, WithNumberBuffer(8))
	vals := []Value{
		Float(1e300, 17),
		Float(-math.MaxFloat64, 17),
		Int(int64(math.MinInt64)),
		Uint(uint64(math.MaxUint64)),
	}
	for _, v := range vals {
		allocs := testing.AllocsPerRun(20, func() {
			e.SetCursor(0, 0)
			e.Print(v)
		})
		if allocs != 0 {
			t.Fatalf("%v: allocs per run = %v", v, allocs)
		}
		if e.CursorX() != 8*8 {
			t.Fatalf("%v: cursor x = %d, want 64", v, e.CursorX())
		}
	}
	if !cellMatches(e, 0, 0, '1', White) || !cellMatches(e, 7*8, 0, '4', White) {
		t.Fatal("truncation did not keep the leading digits")
	}
}

func TestSetTextFG(t *testing.T) {
	e := newTestEngine(t, 80, 16)
	e.SetTextColor(Red, Red)
	e.SetTextFG(Green)
	if fg, bg := e.TextColor(); fg != Green || bg != Black {
		t.Fatalf("colors = %v/%v", fg, bg)
	}
	e.Clear(Blue)
	e.Print(Char('A'))
	if !cellMatches(e, 0, 0, 'A', Green) || at(e, 0, 0) != Black {
		t.Fatal("glyph not drawn opaque green on black")
	}
}

func TestWriter(t *testing.T) {
	e := newTestEngine(t, 160, 40)
	n, err := fmt.Fprintf(e, "%d|%s", 42, "ok")
	if err != nil || n != 5 {
		t.Fatalf("Fprintf = %d, %v", n, err)
	}
	if e.CursorX() != 40 {
		t.Fatalf("cursor x = %d", e.CursorX())
	}
	if !cellMatches(e, 16, 0, '|', White) {
		t.Fatal("written text not drawn")
	}
}

func TestPrintStringWrappers(t *testing.T) {
	e := newTestEngine(t, 80, 48)
	e.PrintString("AB")
	if x, y := e.Cursor(); x != 16 || y != 0 {
		t.Fatalf("cursor = (%d,%d) after PrintString", x, y)
	}
	e.PrintlnString("C")
	if x, y := e.Cursor(); x != 0 || y != 8+e.LineSpacing() {
		t.Fatalf("cursor = (%d,%d) after PrintlnString", x, y)
	}
	if !cellMatches(e, 16, 0, 'C', White) {
		t.Fatal("C not drawn")
	}
}
