package term

import (
	"errors"
	"image/color"
	"testing"

	"fastgfx/gfx"
	"fastgfx/gfx/font8x8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"
)

func newTestDisplay(t *testing.T, w, h int) (*Display, *gfx.Engine) {
	t.Helper()
	buf := gfx.NewBuffer(w, h)
	if buf == nil {
		t.Fatalf("NewBuffer(%d, %d) = nil", w, h)
	}
	e := gfx.New(buf)
	return NewDisplay(e, nil), e
}

var (
	_ drivers.Displayer  = (*Display)(nil)
	_ tinyterm.Displayer = (*Display)(nil)
)

func TestDisplaySizeFollowsRotation(t *testing.T) {
	d, _ := newTestDisplay(t, 20, 10)
	if w, h := d.Size(); w != 20 || h != 10 {
		t.Fatalf("size = %dx%d", w, h)
	}
	if err := d.SetRotation(drivers.Rotation90); err != nil {
		t.Fatalf("SetRotation: %v", err)
	}
	if w, h := d.Size(); w != 10 || h != 20 {
		t.Fatalf("rotated size = %dx%d", w, h)
	}
	if d.Rotation() != drivers.Rotation90 {
		t.Fatalf("Rotation = %d", d.Rotation())
	}
}

func TestDisplaySetRotationMirrored(t *testing.T) {
	d, e := newTestDisplay(t, 20, 10)
	if err := d.SetRotation(drivers.Rotation0Mirror); !errors.Is(err, ErrRotation) {
		t.Fatalf("err = %v", err)
	}
	if e.Rotation() != gfx.Rotation0 {
		t.Fatal("rotation changed")
	}
}

func TestDisplayDrawsThroughEngine(t *testing.T) {
	d, e := newTestDisplay(t, 20, 10)
	d.SetRotation(drivers.Rotation270)
	d.SetPixel(1, 2, color.RGBA{R: 255, A: 255})
	if got := e.At(1, 2); got != gfx.Red {
		t.Fatalf("At(1,2) = %v", got)
	}
	d.FillRectangle(3, 4, 2, 2, color.RGBA{B: 255, A: 255})
	for y := 4; y < 6; y++ {
		for x := 3; x < 5; x++ {
			if e.At(x, y) != gfx.Blue {
				t.Fatalf("(%d,%d) not filled", x, y)
			}
		}
	}
}

func TestDisplayPresent(t *testing.T) {
	buf := gfx.NewBuffer(4, 4)
	n := 0
	d := NewDisplay(gfx.New(buf), func() error { n++; return nil })
	if err := d.Display(); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("present called %d times", n)
	}
}

func TestSetScrollRotatesRows(t *testing.T) {
	for _, r := range []drivers.Rotation{drivers.Rotation0, drivers.Rotation90, drivers.Rotation180} {
		d, e := newTestDisplay(t, 12, 16)
		d.SetRotation(r)
		w, h := e.Width(), e.Height()
		for y := 0; y < h; y++ {
			e.FillRect(0, y, w, 1, gfx.Color(y+1))
		}

		d.SetScroll(3)
		if d.Scroll() != 3 {
			t.Fatalf("rotation %d: Scroll = %d", r, d.Scroll())
		}
		for y := 0; y < h; y++ {
			want := gfx.Color((y+3)%h + 1)
			for x := 0; x < w; x++ {
				if got := e.At(x, y); got != want {
					t.Fatalf("rotation %d: (%d,%d) = %v, want %v", r, x, y, got, want)
				}
			}
		}

		d.SetScroll(0)
		for y := 0; y < h; y++ {
			if got := e.At(w-1, y); got != gfx.Color(y+1) {
				t.Fatalf("rotation %d: row %d not restored: %v", r, y, got)
			}
		}
	}
}

func TestScrolledDrawing(t *testing.T) {
	d, e := newTestDisplay(t, 8, 10)
	d.SetScroll(4)
	d.SetPixel(1, 0, color.RGBA{R: 255, A: 255})
	if e.At(1, 6) != gfx.Red {
		t.Fatal("memory row 0 not drawn at screen row 6")
	}
	d.SetPixel(1, 10, color.RGBA{R: 255, A: 255})
	d.SetPixel(1, -1, color.RGBA{R: 255, A: 255})

	// Memory rows 2-6 wrap from the bottom of the screen to the top.
	d.FillRectangle(0, 2, 8, 5, color.RGBA{B: 255, A: 255})
	for y := 0; y < 10; y++ {
		want := y >= 8 || y <= 2
		if (e.At(0, y) == gfx.Blue) != want {
			t.Fatalf("screen row %d filled = %v", y, !want)
		}
	}
	if e.At(1, 6) != gfx.Red {
		t.Fatal("fill spilled over")
	}
	d.FillRectangle(0, 12, 8, 4, color.RGBA{B: 255, A: 255})
	d.FillRectangle(0, -5, 8, 4, color.RGBA{B: 255, A: 255})
	if e.At(0, 5) == gfx.Blue {
		t.Fatal("off-memory fill drew")
	}
}

func TestSetRotationResetsScroll(t *testing.T) {
	d, _ := newTestDisplay(t, 8, 10)
	d.SetScroll(4)
	d.SetRotation(drivers.Rotation90)
	if d.Scroll() != 0 {
		t.Fatalf("Scroll = %d after rotation", d.Scroll())
	}
}

func TestTinyfontWriteLine(t *testing.T) {
	d, e := newTestDisplay(t, 32, 16)
	tinyfont.WriteLine(d, font8x8.Font, 8, 7, "A", gfx.White.RGBA())
	g := font8x8.Lookup('A')
	for row := 0; row < font8x8.Size; row++ {
		for col := 0; col < font8x8.Size; col++ {
			if (e.At(8+col, row) == gfx.White) != g.Bit(row, col) {
				t.Fatalf("(%d,%d) mismatch", col, row)
			}
		}
	}
}
