//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"

	"fastgfx/gfx"
)

// Panel size of the ILI9488 on the device carrier.
const (
	DeviceWidth  = 320
	DeviceHeight = 320
)

type deviceHAL struct {
	logger *uartLogger
	fb     *deviceFramebuffer
}

// New returns the device HAL: a UART logger on UART0 (GP0 TX, GP1 RX,
// 115200 8N1) and the SPI panel. Without a panel the framebuffer still
// works but Present reports ErrNotImplemented. There is no touch input.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	l := &uartLogger{uart: uart}

	fb := &deviceFramebuffer{pix: make([]uint16, DeviceWidth*DeviceHeight)}
	if lcd, err := initILI9488(); err == nil {
		fb.lcd = lcd
	} else {
		l.WriteLineString("panel: " + err.Error())
	}
	return &deviceHAL{logger: l, fb: fb}
}

func (h *deviceHAL) Logger() Logger   { return h.logger }
func (h *deviceHAL) Display() Display { return deviceDisplay{fb: h.fb} }
func (h *deviceHAL) Input() Input     { return nil }

type deviceDisplay struct {
	fb Framebuffer
}

func (d deviceDisplay) Framebuffer() Framebuffer { return d.fb }

type deviceFramebuffer struct {
	pix []uint16
	lcd *ili9488
}

func (f *deviceFramebuffer) Width() int          { return DeviceWidth }
func (f *deviceFramebuffer) Height() int         { return DeviceHeight }
func (f *deviceFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *deviceFramebuffer) Pixels() []uint16    { return f.pix }

func (f *deviceFramebuffer) ClearRGB(r, g, b uint8) {
	p := uint16(gfx.RGB(r, g, b))
	for i := range f.pix {
		f.pix[i] = p
	}
}

func (f *deviceFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	return f.lcd.blit(f.pix, DeviceWidth, DeviceHeight)
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// RunDevice builds the application and steps it at roughly hz frames per
// second forever. Errors are logged over UART and stop the loop.
func RunDevice(newApp AppFunc, hz int) {
	h := New()
	step, err := newApp(h)
	if err != nil {
		h.Logger().WriteLineString("start app: " + err.Error())
		return
	}
	if hz <= 0 {
		hz = 30
	}
	frame := time.Second / time.Duration(hz)
	for {
		start := time.Now()
		if err := step(); err != nil {
			h.Logger().WriteLineString("step: " + err.Error())
			return
		}
		if d := frame - time.Since(start); d > 0 {
			time.Sleep(d)
		}
	}
}
