package font8x8

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type recorder struct {
	w, h int16
	set  map[[2]int16]bool
}

func newRecorder(w, h int16) *recorder {
	return &recorder{w: w, h: h, set: map[[2]int16]bool{}}
}

func (r *recorder) Size() (x, y int16)                { return r.w, r.h }
func (r *recorder) SetPixel(x, y int16, _ color.RGBA) { r.set[[2]int16{x, y}] = true }
func (r *recorder) Display() error                    { return nil }

func TestLookupRange(t *testing.T) {
	if Lookup(-1) != nil || Lookup(Count) != nil {
		t.Fatal("out-of-range code has a glyph")
	}
	if g := Lookup(DEL); g == nil || !g.Empty() {
		t.Fatal("DEL glyph should exist and be empty")
	}
	for code := '!'; code <= '~'; code++ {
		if Lookup(int(code)).Empty() {
			t.Fatalf("printable %q has an empty glyph", code)
		}
	}
	if !Lookup(' ').Empty() {
		t.Fatal("space is not blank")
	}
}

func TestBitOrder(t *testing.T) {
	// Top row of '!' is 0x18: columns 3 and 4.
	g := Lookup('!')
	for col := 0; col < Size; col++ {
		want := col == 3 || col == 4
		if g.Bit(0, col) != want {
			t.Fatalf("col %d = %v", col, g.Bit(0, col))
		}
	}
	if g.Bit(-1, 0) || g.Bit(0, Size) {
		t.Fatal("out-of-range bit reported set")
	}
}

func TestFonterDraw(t *testing.T) {
	d := newRecorder(64, 16)
	tinyfont.WriteLine(d, Font, 0, 7, "!", color.RGBA{A: 255})
	g := Lookup('!')
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if d.set[[2]int16{int16(col), int16(row)}] != g.Bit(row, col) {
				t.Fatalf("(%d,%d) mismatch", col, row)
			}
		}
	}
}

func TestFonterMetrics(t *testing.T) {
	_, w := tinyfont.LineWidth(Font, "abcd")
	if w != 4*Size {
		t.Fatalf("LineWidth = %d", w)
	}
	if Font.GetYAdvance() != Size {
		t.Fatalf("YAdvance = %d", Font.GetYAdvance())
	}
	if got := Font.GetGlyph('A').Info().Rune; got != 'A' {
		t.Fatalf("glyph rune = %q", got)
	}
	miss := Font.GetGlyph('é').Info()
	if miss.Width != 0 || miss.XAdvance != Size {
		t.Fatalf("non-ASCII glyph = %+v", miss)
	}
}

func TestFonterNonASCIIBlank(t *testing.T) {
	d := newRecorder(64, 16)
	tinyfont.WriteLine(d, Font, 0, 7, "é!", color.RGBA{A: 255})
	for p := range d.set {
		if p[0] < Size {
			t.Fatalf("non-ASCII rune drew at %v", p)
		}
	}
	if !d.set[[2]int16{Size + 3, 0}] {
		t.Fatal("'!' not drawn in the second cell")
	}
}
