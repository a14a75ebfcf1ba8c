// Package ebiten provides an Ebiten-specific wrapper for the emulator.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/x68pad/emu"
)

// Emulator wraps emu.Emulator with Ebiten-specific functionality
type Emulator struct {
	*emu.Emulator

	offscreen *ebiten.Image           // Offscreen buffer for the monitor at native resolution
	drawOpts  ebiten.DrawImageOptions // Pre-allocated draw options to avoid per-frame allocation
}

// NewEmulator creates a new emulator instance with Ebiten rendering.
func NewEmulator(image []byte, region emu.Region) (*Emulator, error) {
	core, err := emu.NewEmulator(image, region)
	if err != nil {
		return nil, err
	}

	return &Emulator{
		Emulator: core,
	}, nil
}

// Close cleans up the emulator resources.
func (e *Emulator) Close() {
	if e.offscreen != nil {
		e.offscreen.Deallocate()
		e.offscreen = nil
	}
	e.Emulator.Close()
}

// Layout implements ebiten.Game.
func (e *Emulator) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// DrawCachedFramebuffer renders pixel data copied out of the emulation
// goroutine to the screen. The monitor is text, so it is scaled by whole
// multiples when the window allows it.
func (e *Emulator) DrawCachedFramebuffer(screen *ebiten.Image, pixels []byte, stride, activeHeight int) {
	if activeHeight == 0 || stride == 0 {
		return
	}

	requiredLen := stride * activeHeight
	if len(pixels) < requiredLen {
		return
	}

	if e.offscreen == nil || e.offscreen.Bounds().Dy() != activeHeight {
		e.offscreen = ebiten.NewImage(emu.ScreenWidth, activeHeight)
	}

	e.offscreen.WritePixels(pixels[:requiredLen])

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	nativeW := float64(emu.ScreenWidth)
	nativeH := float64(activeHeight)

	scale := float64(screenW) / nativeW
	if s := float64(screenH) / nativeH; s < scale {
		scale = s
	}
	if scale >= 1 {
		scale = float64(int(scale))
	}

	offsetX := (float64(screenW) - nativeW*scale) / 2
	offsetY := (float64(screenH) - nativeH*scale) / 2

	e.drawOpts = ebiten.DrawImageOptions{}
	e.drawOpts.GeoM.Scale(scale, scale)
	e.drawOpts.GeoM.Translate(offsetX, offsetY)
	e.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(e.offscreen, &e.drawOpts)
}
