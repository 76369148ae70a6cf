package snapshot

import (
	"image"
	"image/color"

	"fastgfx/gfx"
)

// Model quantizes any color to the nearest RGB565 value and returns it as
// an opaque color.RGBA.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return gfx.FromRGBA(color.RGBAModel.Convert(c).(color.RGBA)).RGBA()
})

// Image is a gfx.Buffer viewed as a draw.Image. It shares the buffer's
// pixels; Set writes through to the panel memory.
type Image struct {
	buf *gfx.Buffer
}

// NewImage wraps buf.
func NewImage(buf *gfx.Buffer) *Image { return &Image{buf: buf} }

func (i *Image) Bounds() image.Rectangle {
	if i.buf == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, i.buf.Width, i.buf.Height)
}

func (i *Image) ColorModel() color.Model { return Model }

func (i *Image) At(x, y int) color.Color {
	return i.buf.At(x, y).RGBA()
}

func (i *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(i.Bounds())) {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	i.buf.Pix[y*i.buf.Width+x] = uint16(gfx.FromRGBA(rgba))
}
