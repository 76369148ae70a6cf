package app

import "fastgfx/term"

const termBanner = "\x1b[1mfastgfx VT100 terminal\x1b[0m\n" +
	"SGR colors, scroll, and cursor-back.\n\n" +
	"\x1b[36mcolors:\x1b[0m " +
	"\x1b[31mRED\x1b[0m " +
	"\x1b[32mGREEN\x1b[0m " +
	"\x1b[33mYELLOW\x1b[0m " +
	"\x1b[44mBLUE\x1b[0m\n\n"

const (
	spinEvery   = 3  // frames per spinner update
	reportEvery = 60 // spinner updates per frame report
)

var spinner = []byte{'-', '\\', '|', '/'}

// termScene runs a tinyterm terminal over the engine: a banner, a spinner and
// one line per touch.
type termScene struct {
	t     *term.Terminal
	spins int
}

func (s *termScene) draw(a *App) {
	if s.t == nil {
		s.t = term.New(term.NewDisplay(a.e, nil))
	} else {
		s.t.Reset()
	}
	s.t.WriteString(termBanner)
	s.t.WriteString("spinner: -")
}

func (s *termScene) touch(a *App, x, y int) bool {
	a.logf("touch at: %d, %d", x, y)
	s.t.Printf("\n\x1b[33mtouch at %d, %d\x1b[0m\nspinner: -", x, y)
	return true
}

func (s *termScene) step(a *App) bool {
	if a.frame%spinEvery != 0 {
		return false
	}
	s.spins++
	s.t.Write([]byte{0x1b, '[', 'D', spinner[s.spins%len(spinner)]})
	if s.spins%reportEvery == 0 {
		s.t.Printf("\nframe: %d\nspinner: -", a.frame)
	}
	return true
}
