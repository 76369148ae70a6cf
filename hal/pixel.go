package hal

import "fastgfx/gfx"

// expandRGB565 converts packed pixels into opaque RGBA bytes. dst must hold at
// least 4*len(src) bytes.
func expandRGB565(dst []byte, src []uint16) {
	for i, p := range src {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		r, g, b := gfx.Color(p).RGB()
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}
