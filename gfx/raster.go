package gfx

// Pixel sets one logical pixel. Out-of-range coordinates are ignored.
func (e *Engine) Pixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= e.width || y >= e.height || e.buf == nil {
		return
	}
	px, py := e.rot.Transform(x, y, e.buf.Width, e.buf.Height)
	if px < 0 || py < 0 || px >= e.buf.Width || py >= e.buf.Height {
		return
	}
	e.buf.Pix[py*e.buf.Width+px] = uint16(c)
}

// At reads back one logical pixel, or Black when out of range.
func (e *Engine) At(x, y int) Color {
	if x < 0 || y < 0 || x >= e.width || y >= e.height || e.buf == nil {
		return Black
	}
	px, py := e.rot.Transform(x, y, e.buf.Width, e.buf.Height)
	return e.buf.At(px, py)
}

// Clear fills the whole logical screen with c.
func (e *Engine) Clear(c Color) {
	e.FillRect(0, 0, e.width, e.height, c)
}

// FillRect fills the w×h rectangle at (x, y), clipped to the screen.
func (e *Engine) FillRect(x, y, w, h int, c Color) {
	if x >= e.width || y >= e.height || w <= 0 || h <= 0 {
		return
	}
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	// x and y are in range here, so these cannot overflow.
	if w > e.width-x {
		w = e.width - x
	}
	if h > e.height-y {
		h = e.height - y
	}
	if w <= 0 || h <= 0 {
		return
	}

	if e.rot != Rotation0 {
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				e.Pixel(x+col, y+row, c)
			}
		}
		return
	}

	// Identity rotation: logical rows are physical rows, write spans directly.
	p := uint16(c)
	stride := e.buf.Width
	for row := y; row < y+h; row++ {
		span := e.buf.Pix[row*stride+x : row*stride+x+w]
		for i := range span {
			span[i] = p
		}
	}
}

// Line draws a one-pixel line including both end points.
func (e *Engine) Line(x0, y0, x1, y1 int, c Color) {
	if y0 == y1 {
		x0, x1 = clampSpan(x0, e.width), clampSpan(x1, e.width)
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		e.FillRect(x0, y0, x1-x0+1, 1, c)
		return
	}
	if x0 == x1 {
		y0, y1 = clampSpan(y0, e.height), clampSpan(y1, e.height)
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		e.FillRect(x0, y0, 1, y1-y0+1, c)
		return
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		e.Pixel(x, y, c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Rect outlines the w×h rectangle at (x, y).
func (e *Engine) Rect(x, y, w, h int, c Color) {
	x1, y1 := lastIndex(x, w, e.width), lastIndex(y, h, e.height)
	e.Line(x, y, x1, y, c)
	e.Line(x, y1, x1, y1, c)
	e.Line(x, y, x, y1, c)
	e.Line(x1, y, x1, y1, c)
}

// Circle outlines a circle of radius r centered on (cx, cy).
func (e *Engine) Circle(cx, cy, r int, c Color) {
	if r <= 0 {
		return
	}
	x, y := 0, r
	d := 1 - r
	for x <= y {
		e.Pixel(cx+x, cy+y, c)
		e.Pixel(cx-x, cy+y, c)
		e.Pixel(cx+x, cy-y, c)
		e.Pixel(cx-x, cy-y, c)
		e.Pixel(cx+y, cy+x, c)
		e.Pixel(cx-y, cy+x, c)
		e.Pixel(cx+y, cy-x, c)
		e.Pixel(cx-y, cy-x, c)
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
}

// FillCircle fills a circle of radius r centered on (cx, cy) with horizontal
// spans.
func (e *Engine) FillCircle(cx, cy, r int, c Color) {
	if r <= 0 {
		return
	}
	x, y := 0, r
	d := 1 - r

	e.FillRect(cx-r, cy, 2*r+1, 1, c)
	for x < y {
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			e.FillRect(cx-x, cy+y, 2*x+1, 1, c)
			e.FillRect(cx-x, cy-y, 2*x+1, 1, c)
			y--
		}
		x++
		if x <= y {
			e.FillRect(cx-y, cy+x, 2*y+1, 1, c)
			e.FillRect(cx-y, cy-x, 2*y+1, 1, c)
		}
	}
}

// clampSpan pulls v into [-1, limit], keeping off-screen end points off
// screen.
func clampSpan(v, limit int) int {
	return min(max(v, -1), limit)
}

// lastIndex returns x+n-1, or limit when that would land past it.
func lastIndex(x, n, limit int) int {
	if x >= 0 && n > limit-x {
		return limit
	}
	return x + n - 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
