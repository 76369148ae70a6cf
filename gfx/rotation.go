package gfx

import "strconv"

// Rotation selects one of the four fixed screen orientations.
type Rotation uint8

const (
	Rotation0   Rotation = iota // landscape, identity
	Rotation90                  // portrait, 90° clockwise
	Rotation180                 // landscape flipped
	Rotation270                 // portrait flipped
)

// FromDegrees maps 0, 90, 180 and 270 to a Rotation.
func FromDegrees(deg int) (Rotation, bool) {
	switch deg {
	case 0:
		return Rotation0, true
	case 90:
		return Rotation90, true
	case 180:
		return Rotation180, true
	case 270:
		return Rotation270, true
	}
	return 0, false
}

// Valid reports whether r is one of the four supported orientations.
func (r Rotation) Valid() bool { return r <= Rotation270 }

// Degrees returns the clockwise angle of r.
func (r Rotation) Degrees() int { return int(r) * 90 }

// Portrait reports whether r swaps the physical axes.
func (r Rotation) Portrait() bool { return r == Rotation90 || r == Rotation270 }

func (r Rotation) String() string {
	if !r.Valid() {
		return "Rotation(" + strconv.Itoa(int(r)) + ")"
	}
	return strconv.Itoa(r.Degrees()) + "°"
}

// LogicalSize returns the logical width and height of a pw×ph panel under r.
func (r Rotation) LogicalSize(pw, ph int) (w, h int) {
	if r.Portrait() {
		return ph, pw
	}
	return pw, ph
}

// Transform maps logical (x, y) to physical coordinates of a pw×ph panel.
func (r Rotation) Transform(x, y, pw, ph int) (px, py int) {
	switch r {
	case Rotation90:
		return pw - 1 - y, x
	case Rotation180:
		return pw - 1 - x, ph - 1 - y
	case Rotation270:
		return y, ph - 1 - x
	}
	return x, y
}

// Inverse maps physical (px, py) of a pw×ph panel back to logical coordinates.
// Inverse(Transform(x, y)) == (x, y) for every rotation.
func (r Rotation) Inverse(px, py, pw, ph int) (x, y int) {
	switch r {
	case Rotation90:
		return py, pw - 1 - px
	case Rotation180:
		return pw - 1 - px, ph - 1 - py
	case Rotation270:
		return ph - 1 - py, px
	}
	return px, py
}
