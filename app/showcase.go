package app

import (
	"fmt"
	"math/rand/v2"
	"time"

	"fastgfx/gfx"
)

const (
	showcasePages    = 5
	showcaseDebounce = 500 * time.Millisecond
	numTargets       = 5

	pageWelcome     = 0
	pageText        = 1
	pagePalette     = 2
	pageRotation    = 3
	pageInteractive = 4
)

type namedColor struct {
	name string
	c    gfx.Color
}

var palette = []namedColor{
	{"BLACK", gfx.Black}, {"RED", gfx.Red}, {"GREEN", gfx.Green},
	{"BLUE", gfx.Blue}, {"YELLOW", gfx.Yellow}, {"MAGENTA", gfx.Magenta},
	{"CYAN", gfx.Cyan}, {"WHITE", gfx.White}, {"ORANGE", gfx.Orange},
	{"PURPLE", gfx.Purple}, {"GRAY", gfx.Gray},
}

var showcaseRotations = []gfx.Rotation{gfx.Rotation0, gfx.Rotation90, gfx.Rotation180, gfx.Rotation270}

type target struct {
	x, y, r int
	c, orig gfx.Color
	hit     bool
}

// showcase is the five-page library tour: welcome, text, palette, rotation
// and an interactive page with touch targets.
type showcase struct {
	rng *rand.Rand

	page     int
	prevPage int
	rotIdx   int

	targets      [numTargets]target
	targetsReady bool

	lastTouch      time.Time
	touched        bool
	touchX, touchY int
}

func newShowcase(seed uint64) *showcase {
	return &showcase{
		rng:      rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		prevPage: -1,
	}
}

func (s *showcase) draw(a *App) {
	e := a.e
	if s.prevPage == pageRotation && s.page != pageRotation {
		if e.Rotation() != a.cfg.Rotation {
			e.SetRotation(a.cfg.Rotation)
			a.logf("rotation reset to %v for new scene", a.cfg.Rotation)
		}
		s.rotIdx = 0
	}
	if s.page != pageInteractive {
		s.targetsReady = false
	} else if !s.targetsReady {
		s.placeTargets(e)
	}

	e.SetTextArea(0, 0, e.Width(), e.Height())
	e.SetLineSpacing(2)
	e.SetTextWrap(true)
	e.SetTextSize(1)

	switch s.page {
	case pageWelcome:
		s.drawWelcome(e)
	case pageText:
		s.drawText(e)
	case pagePalette:
		s.drawPalette(e)
	case pageRotation:
		s.drawRotation(e)
	case pageInteractive:
		s.drawInteractive(e)
	}
	s.drawIndicator(e)
	s.prevPage = s.page
}

func (s *showcase) touch(a *App, x, y int) bool {
	now := a.now()
	s.touched = true
	s.touchX, s.touchY = x, y
	if !s.lastTouch.IsZero() && now.Sub(s.lastTouch) <= showcaseDebounce {
		if s.page == pageInteractive {
			s.draw(a)
			return true
		}
		return false
	}
	s.lastTouch = now
	a.logf("touch at: %d, %d, page %d", x, y, s.page+1)

	switch s.page {
	case pageRotation:
		s.rotIdx++
		if s.rotIdx >= len(showcaseRotations) {
			s.rotIdx = 0
			s.page = (s.page + 1) % showcasePages
		}
	case pageInteractive:
		if !s.hitTarget(x, y) {
			s.page = (s.page + 1) % showcasePages
			s.resetTargets()
			s.targetsReady = false
		}
	default:
		s.page = (s.page + 1) % showcasePages
		if s.page == pageInteractive {
			s.resetTargets()
			s.targetsReady = false
		}
	}
	s.draw(a)
	return true
}

func (s *showcase) step(*App) bool { return false }

func textWidth(str string, scale int) int { return len(str) * gfx.GlyphSize * scale }

func (s *showcase) drawIndicator(e *gfx.Engine) {
	label := fmt.Sprintf("%d/%d", s.page+1, showcasePages)
	x := e.Width() - textWidth(label, 1) - 10
	y := e.Height() - gfx.GlyphSize - 10
	if x < 5 {
		x = 5
	}
	if y < 5 {
		y = e.Height() - 20
	}
	e.Text(x, y, label, gfx.Gray, gfx.Black, 1)
}

func (s *showcase) drawWelcome(e *gfx.Engine) {
	w, h := e.Width(), e.Height()
	e.Clear(gfx.Black)
	e.Text((w-textWidth("FastGraphics", 3))/2, 30, "FastGraphics", gfx.Cyan, gfx.Black, 3)
	e.Text((w-textWidth("Library Showcase!", 2))/2, 80, "Library Showcase!", gfx.Green, gfx.Black, 2)
	e.Text((w-textWidth("Touch screen to advance", 1))/2, h-60, "Touch screen to advance", gfx.Yellow, gfx.Black, 1)

	e.FillRect(40, 140, 120, 60, gfx.Red)
	e.Text(45, 160, "fillRect", gfx.White, gfx.Red, 1)

	e.Rect(w-160, 140, 120, 60, gfx.Blue)
	e.Text(w-155, 160, "rect", gfx.White, gfx.Black, 1)

	e.FillCircle(100, 270, 40, gfx.Green)
	e.Text(70, 265, "fillCircle", gfx.Black, gfx.Green, 1)

	e.Circle(w-100, 270, 40, gfx.Yellow)
	e.Text(w-130, 265, "circle", gfx.Yellow, gfx.Yellow, 1)

	e.Line(40, 350, w-40, h-100, gfx.Magenta)
	e.Text(45, 355, "line", gfx.White, gfx.Black, 1)
}

const showcaseBlurb = "This is a demonstration of the printWrapped function. It intelligently " +
	"wraps long lines of text at word boundaries, making content more readable within " +
	"defined width constraints. Useful for dynamic content displays and user interfaces."

func (s *showcase) drawText(e *gfx.Engine) {
	e.Clear(gfx.Black)
	e.SetCursor(10, 10)
	e.SetTextColor(gfx.Cyan, gfx.Black)
	e.SetTextSize(2)
	e.Println(gfx.Str("Text Capabilities"))
	e.Println()

	e.SetTextSize(1)
	e.TextSmall(10, e.CursorY(), "Small Text (using textSmall)", gfx.White)
	e.SetCursor(10, e.CursorY()+15)
	e.TextMedium(10, e.CursorY(), "Medium Text (textMedium)", gfx.Yellow)
	e.SetCursor(10, e.CursorY()+25)
	e.TextLarge(10, e.CursorY(), "Large Text (textLarge)", gfx.Orange)
	e.SetCursor(10, e.CursorY()+35)
	e.Println()

	e.SetTextColor(gfx.Green, gfx.Black)
	e.Println(gfx.Str("Cursor & Print Functions:"))
	e.SetTextColor(gfx.White, gfx.Black)
	e.Println(gfx.Str("Integer: "), gfx.Int(12345))
	e.Println(gfx.Str("Float: "), gfx.Float(3.14159, 3))
	e.Println(gfx.Str("Boolean: "), gfx.Bool(true))
	e.Println(gfx.Str("Char: "), gfx.Char('X'))
	e.Println()

	e.SetTextColor(gfx.Magenta, gfx.Black)
	e.Println(gfx.Str("Wrapped Text (printWrapped):"))
	e.SetLineSpacing(3)
	e.PrintWrapped(10, e.CursorY(), e.Width()-20, showcaseBlurb, gfx.White, 1)
}

func (s *showcase) drawPalette(e *gfx.Engine) {
	w, h := e.Width(), e.Height()
	e.Clear(gfx.Black)
	e.Text((w-textWidth("Color Palette", 2))/2, 10, "Color Palette", gfx.Cyan, gfx.Black, 2)

	const cols, swatchH, gap = 3, 40, 10
	swatchW := (w - (cols+1)*gap) / cols
	x, y := gap, 60
	for i, nc := range palette {
		e.FillRect(x, y, swatchW, swatchH, nc.c)
		fg := gfx.Black
		switch nc.c {
		case gfx.Black, gfx.Blue, gfx.Purple, gfx.Red:
			fg = gfx.White
		}
		e.Text(x+5, y+swatchH/2-4, nc.name, fg, nc.c, 1)

		x += swatchW + gap
		if i%cols == cols-1 || i == len(palette)-1 {
			x = gap
			y += swatchH + gap
		}
		if y+swatchH > h-30 {
			break
		}
	}
}

var rotationNames = [...]string{"0 (Landscape)", "90 (Portrait)", "180 (Flipped Landscape)", "270 (Flipped Portrait)"}

func (s *showcase) drawRotation(e *gfx.Engine) {
	r := showcaseRotations[s.rotIdx]
	e.SetRotation(r)
	e.Clear(gfx.Black)
	w, h := e.Width(), e.Height()

	e.Text(10, 10, "Screen Rotation", gfx.Cyan, gfx.Black, 2)
	info := fmt.Sprintf("Current: %s (%dx%d)", rotationNames[r], w, h)
	e.Text(10, 50, info, gfx.White, gfx.Black, 1)
	e.Text(10, 80, "Touch to cycle rotation.", gfx.Yellow, gfx.Black, 1)
	if s.rotIdx == len(showcaseRotations)-1 {
		e.Text(10, 100, "Next touch advances to next scene.", gfx.Green, gfx.Black, 1)
	}

	// Arrow pointing towards logical +x.
	cx, cy := w/2, h/2
	e.FillRect(cx-50, cy-10, 100, 20, gfx.Red)
	e.Line(cx+50, cy, cx+20, cy-20, gfx.Red)
	e.Line(cx+50, cy, cx+20, cy+20, gfx.Red)
	e.Text(cx-45, cy-6, "TEXT", gfx.White, gfx.Red, 1)
}

// randIn returns a value in [lo, hi), or lo when the range is empty.
func (s *showcase) randIn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo)
}

func (s *showcase) randomColor() gfx.Color {
	for {
		c := palette[s.rng.IntN(len(palette))].c
		if c != gfx.Black {
			return c
		}
	}
}

func (s *showcase) placeTargets(e *gfx.Engine) {
	w, h := e.Width(), e.Height()
	for i := range s.targets {
		c := s.randomColor()
		s.targets[i] = target{
			x:    s.randIn(50, w-50),
			y:    s.randIn(100, h-50),
			r:    s.randIn(15, 35),
			c:    c,
			orig: c,
		}
	}
	s.targetsReady = true
}

func (s *showcase) resetTargets() {
	for i := range s.targets {
		s.targets[i].c = s.targets[i].orig
		s.targets[i].hit = false
	}
}

// hitTarget recolors the first target under (x, y).
func (s *showcase) hitTarget(x, y int) bool {
	for i := range s.targets {
		t := &s.targets[i]
		dx, dy := t.x-x, t.y-y
		if dx*dx+dy*dy < t.r*t.r {
			t.c = s.randomColor()
			t.hit = true
			return true
		}
	}
	return false
}

func (s *showcase) drawInteractive(e *gfx.Engine) {
	w, h := e.Width(), e.Height()
	e.Clear(gfx.Black)
	e.Text((w-textWidth("Interactive Demo", 2))/2, 10, "Interactive Demo", gfx.Cyan, gfx.Black, 2)
	e.Text(10, 45, "Touch the circles! Touch empty space to advance.", gfx.Yellow, gfx.Black, 1)

	for _, t := range s.targets {
		e.FillCircle(t.x, t.y, t.r, t.c)
		if t.hit {
			e.Circle(t.x, t.y, t.r+3, gfx.White)
		}
	}
	if s.touched {
		e.Text(10, h-40, fmt.Sprintf("Touch: %03d, %03d", s.touchX, s.touchY), gfx.White, gfx.Black, 1)
		e.FillCircle(s.touchX, s.touchY, 3, gfx.Red)
	}
}
