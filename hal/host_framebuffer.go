//go:build !tinygo

package hal

import (
	"sync"

	"fastgfx/gfx"
)

type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	pix      []uint16
	presents uint64
}

func newHostFramebuffer(width, height int) (*hostFramebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrNoFramebuffer
	}
	return &hostFramebuffer{
		width:  width,
		height: height,
		pix:    make([]uint16, width*height),
	}, nil
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) Pixels() []uint16    { return f.pix }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presents++
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := uint16(gfx.RGB(r, g, b))
	for i := range f.pix {
		f.pix[i] = pixel
	}
}

// presentCount reports how many frames have been presented.
func (f *hostFramebuffer) presentCount() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}

func (f *hostFramebuffer) snapshotRGB565(dst []uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.pix)
}

func (f *hostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	expandRGB565(dst, f.pix)
}
