package gfx

// Buffer is a physical RGB565 pixel array, row-major, Pix[y*Width+x].
//
// The engine keeps a reference and writes individual elements; it never
// reallocates or frees Pix.
type Buffer struct {
	Pix    []uint16
	Width  int
	Height int
}

// NewBuffer allocates a zeroed (black) w×h buffer.
func NewBuffer(w, h int) *Buffer {
	if w <= 0 || h <= 0 {
		return nil
	}
	return &Buffer{Pix: make([]uint16, w*h), Width: w, Height: h}
}

// WrapBuffer wraps caller-owned pixels. It returns nil if pix is too small.
func WrapBuffer(pix []uint16, w, h int) *Buffer {
	if w <= 0 || h <= 0 || len(pix) < w*h {
		return nil
	}
	return &Buffer{Pix: pix[:w*h], Width: w, Height: h}
}

// At returns the physical pixel at (x, y), or Black when out of range.
func (b *Buffer) At(x, y int) Color {
	if b == nil || x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return Black
	}
	return Color(b.Pix[y*b.Width+x])
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) {
	if b == nil {
		return
	}
	p := uint16(c)
	for i := range b.Pix {
		b.Pix[i] = p
	}
}
