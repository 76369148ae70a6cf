// Package app is the application glue between a HAL and the rasterizer: it
// owns the engine for the panel framebuffer, runs the selected scene and
// feeds it touch input mapped into logical coordinates.
package app

import (
	"fmt"
	"strings"
	"time"

	"fastgfx/gfx"
	"fastgfx/hal"
)

// Scene selects what the application shows.
type Scene string

const (
	// SceneApp is a status screen with simulated sensor readings. Touches
	// leave a dot.
	SceneApp Scene = "app"
	// SceneDemo exercises colors, numbers, wrapping and a confined text
	// area. Touches leave a dot.
	SceneDemo Scene = "demo"
	// SceneShowcase is a five-page tour; each touch advances.
	SceneShowcase Scene = "showcase"
	// SceneTerm is a VT100 terminal that echoes touches.
	SceneTerm Scene = "term"
)

// Scenes lists the valid scene names.
var Scenes = []Scene{SceneApp, SceneDemo, SceneShowcase, SceneTerm}

// ParseScene validates a scene name.
func ParseScene(s string) (Scene, error) {
	for _, sc := range Scenes {
		if strings.EqualFold(s, string(sc)) {
			return sc, nil
		}
	}
	return "", fmt.Errorf("unknown scene %q", s)
}

// Config controls the application.
type Config struct {
	Scene    Scene
	Rotation gfx.Rotation

	// Background clears the screen; TouchColor paints touch dots.
	Background gfx.Color
	TouchColor gfx.Color

	// Seed drives the showcase's random targets.
	Seed uint64

	// Clock replaces time.Now for touch debouncing.
	Clock func() time.Time
}

// DefaultConfig returns the app scene at Rotation0, white dots on black.
func DefaultConfig() Config {
	return Config{
		Scene:      SceneApp,
		Rotation:   gfx.Rotation0,
		Background: gfx.Black,
		TouchColor: gfx.White,
		Seed:       1,
	}
}

const touchRadius = 5

// scene is one screen of the application. draw repaints everything, touch
// handles a logical touch point and step runs once per frame; both report
// whether the framebuffer changed.
type scene interface {
	draw(a *App)
	touch(a *App, x, y int) bool
	step(a *App) bool
}

// App drives one scene on one framebuffer.
type App struct {
	cfg Config
	log hal.Logger
	fb  hal.Framebuffer
	ptr hal.Pointer
	e   *gfx.Engine

	sc     scene
	now    func() time.Time
	frame  uint64
	halted bool
}

// New binds an engine to h's framebuffer and draws the first frame.
func New(h hal.HAL, cfg Config) (*App, error) {
	if cfg.Scene == "" {
		cfg.Scene = SceneApp
	}
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return nil, hal.ErrNoFramebuffer
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("framebuffer format %d: %w", fb.Format(), hal.ErrNoFramebuffer)
	}
	buf := gfx.WrapBuffer(fb.Pixels(), fb.Width(), fb.Height())
	if buf == nil {
		return nil, fmt.Errorf("framebuffer %dx%d: %w", fb.Width(), fb.Height(), hal.ErrNoFramebuffer)
	}

	a := &App{
		cfg: cfg,
		log: h.Logger(),
		fb:  fb,
		e:   gfx.New(buf),
		now: cfg.Clock,
	}
	if a.now == nil {
		a.now = time.Now
	}
	if in := h.Input(); in != nil {
		a.ptr = in.Pointer()
	}
	a.e.SetRotation(cfg.Rotation)

	switch cfg.Scene {
	case SceneApp:
		a.sc = &statusScene{}
	case SceneDemo:
		a.sc = &demoScene{}
	case SceneShowcase:
		a.sc = newShowcase(cfg.Seed)
	case SceneTerm:
		a.sc = &termScene{}
	default:
		return nil, fmt.Errorf("unknown scene %q", cfg.Scene)
	}

	if err := a.redraw(); err != nil {
		return nil, err
	}
	a.logf("fastgfx initialized: %dx%d, rotation %v, scene %s", a.e.Width(), a.e.Height(), a.e.Rotation(), cfg.Scene)
	return a, nil
}

// Factory adapts New to the host runners.
func Factory(cfg Config) hal.AppFunc {
	return func(h hal.HAL) (func() error, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}
}

// Engine returns the engine drawing into the framebuffer.
func (a *App) Engine() *gfx.Engine { return a.e }

// Step handles queued touches, advances the scene and presents the frame
// when anything changed. After a panic it shows the panic screen and then
// does nothing.
func (a *App) Step() (err error) {
	if a.halted {
		return nil
	}
	defer func() {
		if v := recover(); v != nil {
			err = a.panicScreen(v)
		}
	}()

	a.frame++
	dirty := false
	if a.ptr != nil {
	drain:
		for {
			select {
			case ev := <-a.ptr.Events():
				x, y := a.e.ToLogical(ev.X, ev.Y)
				if a.sc.touch(a, x, y) {
					dirty = true
				}
			default:
				break drain
			}
		}
	}
	if a.sc.step(a) {
		dirty = true
	}
	if dirty {
		return a.present()
	}
	return nil
}

func (a *App) redraw() error {
	a.sc.draw(a)
	return a.present()
}

func (a *App) present() error {
	if err := a.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}

// touchDot is the touch feedback shared by the app and demo scenes.
func (a *App) touchDot(x, y int) bool {
	a.logf("touch at: %d, %d", x, y)
	a.e.FillCircle(x, y, touchRadius, a.cfg.TouchColor)
	return true
}
