// Package snapshot exports framebuffer contents as PNG or BMP images.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fastgfx/gfx"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// ErrUnknownFormat is returned for output formats other than PNG and BMP.
var ErrUnknownFormat = errors.New("unknown image format")

// Format names an output encoding.
type Format string

const (
	PNG Format = "png"
	BMP Format = "bmp"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Options controls encoding.
type Options struct {
	Format Format
	// Scale enlarges each pixel to Scale×Scale (nearest neighbour). Values
	// below 2 keep the native size.
	Scale int
}

// Encode writes buf to w.
func Encode(w io.Writer, buf *gfx.Buffer, opts Options) error {
	if buf == nil {
		return errors.New("snapshot: nil buffer")
	}
	var img image.Image = NewImage(buf)
	if opts.Scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*opts.Scale, b.Dy()*opts.Scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}

	switch opts.Format {
	case PNG, "":
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%q: %w", opts.Format, ErrUnknownFormat)
	}
}

// WriteFile encodes buf into path, choosing the format from its extension.
func WriteFile(path string, buf *gfx.Buffer, scale int) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close snapshot: %w", cerr)
		}
	}()
	if err := Encode(f, buf, Options{Format: format, Scale: scale}); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	gfx.Logger().Debug("snapshot: written", "path", path, "format", string(format), "scale", scale)
	return nil
}
