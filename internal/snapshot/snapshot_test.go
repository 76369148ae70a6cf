package snapshot

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fastgfx/gfx"

	"golang.org/x/image/bmp"
)

func testBuffer() *gfx.Buffer {
	buf := gfx.NewBuffer(4, 3)
	buf.Pix[0] = uint16(gfx.Red)
	buf.Pix[1*4+2] = uint16(gfx.Orange)
	buf.Pix[2*4+3] = uint16(gfx.White)
	return buf
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestImageAtAndSet(t *testing.T) {
	buf := testBuffer()
	img := NewImage(buf)
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if !sameColor(img.At(0, 0), color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("At(0,0) = %v", img.At(0, 0))
	}
	img.Set(1, 1, color.RGBA{0, 0, 255, 255})
	if gfx.Color(buf.Pix[1*4+1]) != gfx.Blue {
		t.Fatalf("Set wrote %v", gfx.Color(buf.Pix[5]))
	}
	img.Set(9, 9, color.White)
	img.Set(-1, 0, color.White)
}

func TestModelQuantizes(t *testing.T) {
	got := Model.Convert(color.RGBA{R: 0x13, G: 0x37, B: 0xFF, A: 0xFF})
	want := gfx.RGB(0x13, 0x37, 0xFF).RGBA()
	if !sameColor(got, want) {
		t.Fatalf("Convert = %v, want %v", got, want)
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	buf := testBuffer()
	var out bytes.Buffer
	if err := Encode(&out, buf, Options{Format: PNG}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if !sameColor(img.At(x, y), buf.At(x, y).RGBA()) {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, img.At(x, y), buf.At(x, y))
			}
		}
	}
}

func TestEncodeBMPScaled(t *testing.T) {
	buf := testBuffer()
	var out bytes.Buffer
	if err := Encode(&out, buf, Options{Format: BMP, Scale: 3}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := bmp.Decode(&out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 9 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	for _, p := range [][2]int{{0, 0}, {2, 2}, {6, 3}, {8, 5}, {11, 8}} {
		src := buf.At(p[0]/3, p[1]/3).RGBA()
		if !sameColor(img.At(p[0], p[1]), src) {
			t.Fatalf("(%d,%d) = %v, want %v", p[0], p[1], img.At(p[0], p[1]), src)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, testBuffer(), Options{Format: "gif"}); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v", err)
	}
	if err := Encode(&bytes.Buffer{}, nil, Options{}); err == nil {
		t.Fatal("nil buffer accepted")
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{"a.png": PNG, "b.PNG": PNG, "dir/c.bmp": BMP} {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Fatalf("FormatFromPath(%q) = %q, %v", path, got, err)
		}
	}
	if _, err := FormatFromPath("x.jpg"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := WriteFile(path, testBuffer(), 2); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 8 || cfg.Height != 6 {
		t.Fatalf("size = %dx%d", cfg.Width, cfg.Height)
	}
	if err := WriteFile(filepath.Join(t.TempDir(), "shot.tga"), testBuffer(), 1); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v", err)
	}
}
