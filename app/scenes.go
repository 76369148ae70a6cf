package app

import "fastgfx/gfx"

const statusBlurb = "This demonstrates automatic word wrapping with improved line spacing. " +
	"Long sentences will automatically break at word boundaries to fit within " +
	"the specified width. Notice how the extra space between lines makes it " +
	"much easier to read!"

// statusScene is the main application screen.
type statusScene struct{}

func (statusScene) draw(a *App) {
	e := a.e
	e.Clear(a.cfg.Background)
	e.SetTextArea(0, 0, e.Width(), e.Height())
	e.SetCursor(10, 10)
	e.SetTextWrap(true)
	e.SetLineSpacing(2)

	e.SetTextSize(2)
	e.SetTextColor(gfx.Green, a.cfg.Background)
	e.Println(gfx.Str("FastGFX Display"))
	e.Println()

	e.SetTextSize(1)
	e.SetTextColor(gfx.Yellow, a.cfg.Background)
	e.Print(gfx.Str("Resolution: "), gfx.Int(e.Width()), gfx.Str(" x "))
	e.Println(gfx.Int(e.Height()))
	e.Print(gfx.Str("Rotation: "))
	e.Println(gfx.Int(e.Rotation().Degrees()))
	e.Println()

	e.SetTextColor(gfx.Cyan, a.cfg.Background)
	e.Println(gfx.Str("Sensor Readings:"))
	e.SetTextColor(gfx.Red, a.cfg.Background)
	e.Println(gfx.Str("  Temperature: "), gfx.Float(23.5, 1), gfx.Str(" C"))
	e.Println(gfx.Str("  Humidity: "), gfx.Int(67), gfx.Str(" %"))
	e.Println(gfx.Str("  Pressure: "), gfx.Float(1013.25, 2), gfx.Str(" hPa"))
	e.Println()

	e.SetTextColor(gfx.Green, a.cfg.Background)
	e.Println(gfx.Str("Status: All systems OK"))
	e.SetTextColor(gfx.Blue, a.cfg.Background)
	e.Println(gfx.Str("WiFi: Connected"))
	e.SetTextColor(gfx.Magenta, a.cfg.Background)
	e.Println(gfx.Str("Memory: 85% free"))
	e.Println()

	e.SetTextColor(gfx.Red, a.cfg.Background)
	e.SetLineSpacing(4)
	e.PrintWrapped(10, e.CursorY(), e.Width()-20, statusBlurb, gfx.Orange, 1)
}

func (statusScene) touch(a *App, x, y int) bool { return a.touchDot(x, y) }

func (statusScene) step(*App) bool { return false }

const demoBlurb = "This is a long line that should automatically wrap to the next line " +
	"when it reaches the edge of the display. Pretty cool, right?"

// demoScene walks through the text features: colors, numbers, wrapping and
// a confined text area.
type demoScene struct{}

func (demoScene) draw(a *App) {
	e := a.e
	w, h := e.Width(), e.Height()
	e.Clear(a.cfg.Background)
	e.SetTextArea(0, 0, w, h)
	e.SetLineSpacing(2)
	e.SetTextWrap(true)

	e.SetCursor(10, 10)
	e.SetTextColor(gfx.White, a.cfg.Background)
	e.SetTextSize(1)

	e.Println(gfx.Str("=== FastGraphics Text Demo ==="))
	e.Println()

	e.SetTextColor(gfx.Green, a.cfg.Background)
	e.Print(gfx.Str("Green text, "))
	e.SetTextColor(gfx.Red, a.cfg.Background)
	e.Print(gfx.Str("Red text, "))
	e.SetTextColor(gfx.Blue, a.cfg.Background)
	e.Println(gfx.Str("Blue text"))
	e.Println()

	e.SetTextColor(gfx.Yellow, a.cfg.Background)
	e.Println(gfx.Str("Temperature: "), gfx.Float(25.6, 1), gfx.Str(" C"))
	e.Println(gfx.Str("Count: "), gfx.Int(42))
	e.Println()

	e.SetTextColor(gfx.Cyan, a.cfg.Background)
	e.PrintWrapped(10, e.CursorY(), w-20, demoBlurb, gfx.Cyan, 1)
	e.SetCursor(10, e.CursorY()+40)

	// Confined text area inside a blue box.
	e.FillRect(w-200, 100, 180, 100, gfx.Blue)
	e.SetTextArea(w-190, 110, 160, 80)
	e.SetCursor(w-190, 110)
	e.SetTextColor(gfx.White, gfx.Blue)
	e.Println(gfx.Str("Text Area:"))
	e.Println(gfx.Str("Confined to"))
	e.Println(gfx.Str("this blue box"))
	e.Println(gfx.Str("with auto-wrap"))

	e.SetTextArea(0, 0, w, h)
}

func (demoScene) touch(a *App, x, y int) bool { return a.touchDot(x, y) }

func (demoScene) step(*App) bool { return false }
