// Package cli provides a command-line runner for the emulator.
// It handles input polling and runs the emulator in a window without the full UI.
package cli

import (
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	emubridge "github.com/user-none/x68pad/bridge/ebiten"
	"github.com/user-none/x68pad/emu"
	"github.com/user-none/x68pad/ui"
)

// Keyboard bindings for port 1. WASD and the arrows both drive the d-pad.
var keyBindings = []struct {
	key ebiten.Key
	id  int
}{
	{ebiten.KeyW, emu.JoypadUp},
	{ebiten.KeyArrowUp, emu.JoypadUp},
	{ebiten.KeyS, emu.JoypadDown},
	{ebiten.KeyArrowDown, emu.JoypadDown},
	{ebiten.KeyA, emu.JoypadLeft},
	{ebiten.KeyArrowLeft, emu.JoypadLeft},
	{ebiten.KeyD, emu.JoypadRight},
	{ebiten.KeyArrowRight, emu.JoypadRight},
	{ebiten.KeyJ, emu.JoypadA},
	{ebiten.KeyK, emu.JoypadB},
	{ebiten.KeyU, emu.JoypadX},
	{ebiten.KeyI, emu.JoypadY},
	{ebiten.KeyO, emu.JoypadL},
	{ebiten.KeyL, emu.JoypadR},
	{ebiten.KeyEnter, emu.JoypadStart},
	{ebiten.KeyBackspace, emu.JoypadSelect},
	{ebiten.KeyF1, emu.JoypadL2},
	{ebiten.KeySpace, emu.JoypadR2},
}

// Standard gamepad bindings.
var padBindings = []struct {
	button ebiten.StandardGamepadButton
	id     int
}{
	{ebiten.StandardGamepadButtonLeftTop, emu.JoypadUp},
	{ebiten.StandardGamepadButtonLeftBottom, emu.JoypadDown},
	{ebiten.StandardGamepadButtonLeftLeft, emu.JoypadLeft},
	{ebiten.StandardGamepadButtonLeftRight, emu.JoypadRight},
	{ebiten.StandardGamepadButtonRightBottom, emu.JoypadA},
	{ebiten.StandardGamepadButtonRightRight, emu.JoypadB},
	{ebiten.StandardGamepadButtonRightLeft, emu.JoypadX},
	{ebiten.StandardGamepadButtonRightTop, emu.JoypadY},
	{ebiten.StandardGamepadButtonFrontTopLeft, emu.JoypadL},
	{ebiten.StandardGamepadButtonFrontTopRight, emu.JoypadR},
	{ebiten.StandardGamepadButtonCenterRight, emu.JoypadStart},
	{ebiten.StandardGamepadButtonCenterLeft, emu.JoypadSelect},
	{ebiten.StandardGamepadButtonFrontBottomLeft, emu.JoypadL2},
	{ebiten.StandardGamepadButtonFrontBottomRight, emu.JoypadR2},
}

// Numpad keys feed the menu alongside the joypad.
var menuKeyBindings = []struct {
	key ebiten.Key
	dir byte
}{
	{ebiten.KeyNumpad8, emu.JoyUp},
	{ebiten.KeyNumpad2, emu.JoyDown},
	{ebiten.KeyNumpad4, emu.JoyLeft},
	{ebiten.KeyNumpad6, emu.JoyRight},
}

// Runner wraps an emulator for command-line mode.
// The emulator runs on a dedicated goroutine paced by the frame clock.
// The Ebiten thread handles input polling and rendering from the shared framebuffer.
type Runner struct {
	emulator  *emubridge.Emulator
	statePath string

	// Emulation goroutine control
	emuControl        *ui.EmuControl
	sharedInput       *ui.SharedInput
	sharedFramebuffer *ui.SharedFramebuffer
	emuDone           chan struct{}
}

// NewRunner creates a new Runner wrapping the given emulator. statePath is
// where F5 saves and F7 loads the save state; empty disables both.
func NewRunner(e *emubridge.Emulator, statePath string) *Runner {
	r := &Runner{
		emulator:          e,
		statePath:         statePath,
		emuControl:        ui.NewEmuControl(),
		sharedInput:       &ui.SharedInput{},
		sharedFramebuffer: ui.NewSharedFramebuffer(),
		emuDone:           make(chan struct{}),
	}

	// The translator polls shared input directly
	e.SetSource(r.sharedInput)

	// Start emulation goroutine
	go r.emulationLoop()

	return r
}

// Close stops the emulation goroutine.
func (r *Runner) Close() {
	if r.emuControl != nil {
		r.emuControl.Stop()
		<-r.emuDone
		r.emuControl = nil
	}
}

// emulationLoop runs on a dedicated goroutine.
func (r *Runner) emulationLoop() {
	defer close(r.emuDone)

	timing := r.emulator.GetTiming()
	frameTime := time.Duration(float64(time.Second) / float64(timing.FPS))
	lastFrameTime := time.Now()

	for {
		if !r.emuControl.CheckPause() {
			return
		}

		if r.sharedInput.TakeKeyboardToggle() {
			r.emulator.SetSoftwareKeyboard(!r.emulator.SoftwareKeyboard())
		}
		r.emulator.SetMenuKeys(r.sharedInput.MenuKeys())

		// Run one frame
		r.emulator.RunFrame()

		// Update shared framebuffer
		r.sharedFramebuffer.Update(
			r.emulator.GetFramebuffer(),
			r.emulator.GetFramebufferStride(),
			r.emulator.GetActiveHeight(),
		)

		sleepTime := frameTime - time.Since(lastFrameTime)
		if sleepTime > time.Millisecond {
			time.Sleep(sleepTime)
		}

		lastFrameTime = time.Now()
	}
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	if !ebiten.IsFocused() || r.emuControl.IsPaused() {
		return nil
	}

	r.pollInputToShared()

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		r.sharedInput.ToggleKeyboard()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		r.saveState()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF7) {
		r.loadState()
	}
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	pixels, stride, height := r.sharedFramebuffer.Read()
	if height == 0 {
		return
	}
	r.emulator.DrawCachedFramebuffer(screen, pixels, stride, height)
}

// Layout implements ebiten.Game.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.emulator.Layout(outsideWidth, outsideHeight)
}

// pollInputToShared reads keyboard and gamepad input and writes to shared
// state. The keyboard and the first gamepad drive port 1, the second
// gamepad drives port 2.
func (r *Runner) pollInputToShared() {
	var buttons [emu.NumPorts]uint32

	for _, b := range keyBindings {
		if ebiten.IsKeyPressed(b.key) {
			buttons[0] |= 1 << b.id
		}
	}

	port := 0
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if port >= emu.NumPorts {
			break
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		buttons[port] |= padButtons(id)
		port++
	}

	for i, b := range buttons {
		r.sharedInput.Set(i, b)
	}

	var keys byte
	for _, b := range menuKeyBindings {
		if ebiten.IsKeyPressed(b.key) {
			keys |= b.dir
		}
	}
	r.sharedInput.SetMenuKeys(keys)
}

// padButtons returns the button bitmask of a standard layout gamepad,
// including the left stick as a d-pad.
func padButtons(id ebiten.GamepadID) uint32 {
	var res uint32
	for _, b := range padBindings {
		if ebiten.IsStandardGamepadButtonPressed(id, b.button) {
			res |= 1 << b.id
		}
	}

	// Left analog stick (with deadzone)
	const deadzone = 0.5
	axisX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	axisY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if axisX < -deadzone {
		res |= 1 << emu.JoypadLeft
	}
	if axisX > deadzone {
		res |= 1 << emu.JoypadRight
	}
	if axisY < -deadzone {
		res |= 1 << emu.JoypadUp
	}
	if axisY > deadzone {
		res |= 1 << emu.JoypadDown
	}
	return res
}

// saveState pauses emulation and writes a save state to statePath.
func (r *Runner) saveState() {
	if r.statePath == "" {
		return
	}

	r.emuControl.RequestPause()
	defer r.emuControl.RequestResume()

	data, err := r.emulator.Serialize()
	if err != nil {
		log.Printf("Warning: save state failed: %v", err)
		return
	}
	if err := os.WriteFile(r.statePath, data, 0644); err != nil {
		log.Printf("Warning: writing save state failed: %v", err)
		return
	}
	log.Printf("Saved state to %s", r.statePath)
}

// loadState pauses emulation and restores the save state at statePath.
func (r *Runner) loadState() {
	if r.statePath == "" {
		return
	}

	data, err := os.ReadFile(r.statePath)
	if err != nil {
		log.Printf("Warning: reading save state failed: %v", err)
		return
	}

	r.emuControl.RequestPause()
	defer r.emuControl.RequestResume()

	if err := r.emulator.Deserialize(data); err != nil {
		log.Printf("Warning: load state failed: %v", err)
		return
	}
	log.Printf("Loaded state from %s", r.statePath)
}
