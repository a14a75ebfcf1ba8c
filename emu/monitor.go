package emu

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Monitor framebuffer dimensions.
const (
	ScreenWidth     = 320
	MaxScreenHeight = 240
)

// Monitor layout, in pixels. basicfont.Face7x13 has a 13 pixel line.
const (
	monLineHeight = 14
	monMargin     = 6
	monBoxSize    = 10
	monBoxGap     = 3
)

// Bit labels for the trigger boxes, bit 0 first. Unused bits are blank.
var (
	labelsA = [8]string{"U", "D", "L", "R", "", "2", "1", ""}
	labelsB = [8]string{"5", "4", "3", "7", "", "8", "6", ""}
)

// Monitor draws the state of both joystick ports into an RGBA framebuffer.
type Monitor struct {
	img *image.RGBA
	dc  *gg.Context
}

// NewMonitor creates a monitor with a pre-allocated framebuffer.
func NewMonitor() *Monitor {
	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, MaxScreenHeight))
	dc := gg.NewContextForRGBA(img)
	dc.SetFontFace(basicfont.Face7x13)
	return &Monitor{img: img, dc: dc}
}

// Pixels returns the RGBA framebuffer.
func (m *Monitor) Pixels() []byte {
	return m.img.Pix
}

// Stride returns bytes per framebuffer row.
func (m *Monitor) Stride() int {
	return m.img.Stride
}

// render redraws the whole screen from emulator state.
func (m *Monitor) render(e *Emulator) {
	dc := m.dc
	dc.SetRGB(0.05, 0.05, 0.15)
	dc.Clear()

	y := float64(monMargin + monLineHeight)
	mode := "GAME"
	if e.menu {
		mode = "MENU"
	}
	if e.translator.SoftwareKeyboard {
		mode += " SWKBD"
	}
	m.text(fmt.Sprintf("%s  disk %08X", Name, e.imageCRC), monMargin, y)
	m.text(mode, ScreenWidth-monMargin-float64(7*len(mode)), y)
	y += monLineHeight * 1.5

	for port := 0; port < NumPorts; port++ {
		y = m.renderPort(e, port, y)
	}

	if e.menu {
		m.text(fmt.Sprintf("IN %08b  EDGE %08b  REP %04b",
			e.translator.MenuInput(), e.menuEdges, e.menuRepeat), monMargin, y)
	}

	if e.msgFrames > 0 {
		dc.SetRGB(0.6, 0.1, 0.1)
		dc.DrawRectangle(0, MaxScreenHeight-monLineHeight-monMargin, ScreenWidth, monLineHeight+monMargin)
		dc.Fill()
		m.text(e.msg, monMargin, MaxScreenHeight-monMargin)
	}
}

// renderPort draws one port block starting at baseline y and returns the
// baseline for the next block.
func (m *Monitor) renderPort(e *Emulator, port int, y float64) float64 {
	a, b := e.ports.Published(port)

	turbo := "off"
	if e.translator.TurboEnabled(port) {
		turbo = "ON"
	}
	state := ""
	if !e.ports.Active[port] {
		state = "  (inactive)"
	}
	m.text(fmt.Sprintf("PORT %d  %s  turbo %s%s", port+1, e.config.Layout[port], turbo, state), monMargin, y)
	y += monLineHeight

	m.text(fmt.Sprintf("A %08b  B %08b", a, b), monMargin, y)
	y += monLineHeight
	m.text(fmt.Sprintf("SEL %02X  READ %02X", e.ports.SelectMask(port), e.ports.Read(port)), monMargin, y)
	y += 4

	m.boxes(a, labelsA, monMargin, y)
	m.boxes(b, labelsB, ScreenWidth/2, y)
	y += monBoxSize + monLineHeight*1.5

	return y
}

// boxes draws one box per labelled bit, filled while the bit is active (0).
func (m *Monitor) boxes(v byte, labels [8]string, x, y float64) {
	dc := m.dc
	for i, label := range labels {
		if label == "" {
			continue
		}
		bx := x + float64(i)*(monBoxSize+monBoxGap+7)
		dc.DrawRectangle(bx, y, monBoxSize, monBoxSize)
		if v&(1<<i) == 0 {
			dc.SetRGB(0.3, 0.9, 0.3)
			dc.FillPreserve()
		}
		dc.SetRGB(0.7, 0.7, 0.7)
		dc.SetLineWidth(1)
		dc.Stroke()
		m.text(label, bx+monBoxSize+1, y+monBoxSize)
	}
}

func (m *Monitor) text(s string, x, y float64) {
	m.dc.SetRGB(1, 1, 1)
	m.dc.DrawString(s, x, y)
}
