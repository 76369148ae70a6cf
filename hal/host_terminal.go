//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"fastgfx/gfx"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// TerminalConfig controls the terminal presenter.
type TerminalConfig struct {
	Host HostConfig
	Hz   int
}

// RunTerminal draws the framebuffer into the controlling terminal with
// half-block characters, two panel rows per cell. Left clicks become
// pointer events. Esc, q or Ctrl-C quit.
func RunTerminal(ctx context.Context, newApp AppFunc, cfg TerminalConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	return runTerminal(ctx, screen, newApp, cfg)
}

func runTerminal(ctx context.Context, screen tcell.Screen, newApp AppFunc, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 20
	}
	h, err := newHostHAL(cfg.Host)
	if err != nil {
		return err
	}
	step, err := newApp(h)
	if err != nil {
		return fmt.Errorf("start app: %w", err)
	}

	screen.EnableMouse()
	screen.HideCursor()
	tp := newTermPresenter(screen, h.fb)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := tp.handle(ev, h.ptr); quit {
				return nil
			}
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tp.draw()
			screen.Show()
		}
	}
}

type termPresenter struct {
	screen tcell.Screen
	fb     *hostFramebuffer
	pix    []uint16
}

func newTermPresenter(screen tcell.Screen, fb *hostFramebuffer) *termPresenter {
	return &termPresenter{
		screen: screen,
		fb:     fb,
		pix:    make([]uint16, fb.width*fb.height),
	}
}

// draw scales the framebuffer onto the terminal grid. Each cell shows an
// upper half block: foreground is the top half of the cell's panel area,
// background the bottom half.
func (tp *termPresenter) draw() {
	cols, rows := tp.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	tp.fb.snapshotRGB565(tp.pix)
	w, h := tp.fb.width, tp.fb.height
	sub := rows * 2
	for cy := 0; cy < rows; cy++ {
		top := (2 * cy) * h / sub
		mid := (2*cy + 1) * h / sub
		bot := (2*cy + 2) * h / sub
		for cx := 0; cx < cols; cx++ {
			x0, x1 := cx*w/cols, (cx+1)*w/cols
			style := tcell.StyleDefault.
				Foreground(tp.average(x0, x1, top, mid)).
				Background(tp.average(x0, x1, mid, bot))
			tp.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

// average blends the panel pixels in [x0,x1)×[y0,y1) in linear light. An
// empty range samples the pixel at (x0, y0).
func (tp *termPresenter) average(x0, x1, y0, y1 int) tcell.Color {
	x1, y1 = max(x1, x0+1), max(y1, y0+1)
	w := tp.fb.width
	first := gfx.Color(tp.pix[y0*w+x0])
	if tp.uniform(first, x0, x1, y0, y1) {
		return termColor(first.Colorful())
	}
	var r, g, b float64
	for y := y0; y < y1; y++ {
		for _, p := range tp.pix[y*w+x0 : y*w+x1] {
			lr, lg, lb := gfx.Color(p).Colorful().LinearRgb()
			r, g, b = r+lr, g+lg, b+lb
		}
	}
	n := float64((x1 - x0) * (y1 - y0))
	return termColor(colorful.LinearRgb(r/n, g/n, b/n))
}

func (tp *termPresenter) uniform(c gfx.Color, x0, x1, y0, y1 int) bool {
	w := tp.fb.width
	for y := y0; y < y1; y++ {
		for _, p := range tp.pix[y*w+x0 : y*w+x1] {
			if gfx.Color(p) != c {
				return false
			}
		}
	}
	return true
}

// toPanel maps the center of a terminal cell to panel coordinates.
func (tp *termPresenter) toPanel(cx, cy int) (x, y int) {
	cols, rows := tp.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	x = (2*cx + 1) * tp.fb.width / (2 * cols)
	y = (2*cy + 1) * tp.fb.height / (2 * rows)
	return x, y
}

// handle applies one terminal event and reports whether to quit.
func (tp *termPresenter) handle(ev tcell.Event, ptr *hostPointer) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return e.Rune() == 'q'
		}
	case *tcell.EventMouse:
		if e.Buttons()&tcell.Button1 == 0 {
			ptr.release()
			return false
		}
		x, y := tp.toPanel(e.Position())
		ptr.press(x, y)
	case *tcell.EventResize:
		tp.screen.Sync()
	}
	return false
}

func termColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
