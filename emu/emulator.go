package emu

import emucore "github.com/user-none/eblitui/api"

// Core identity.
const (
	Name    = "x68pad"
	Version = "0.1.0"
)

// Compile-time interface checks.
var _ emucore.Emulator = (*Emulator)(nil)
var _ emucore.SaveStater = (*Emulator)(nil)

// PPI register addresses wired to the joystick ports.
const (
	ppiPortA = 0xE9A001 // Joystick 1
	ppiPortB = 0xE9A003 // Joystick 2
)

// padInput holds the button bitmasks supplied by the frontend.
type padInput [NumPorts]uint32

// ButtonPressed implements InputSource.
func (p *padInput) ButtonPressed(port, id int) bool {
	return p.Buttons(port)&(1<<id) != 0
}

// Buttons implements BitmaskSource.
func (p *padInput) Buttons(port int) uint32 {
	if port < 0 || port >= NumPorts {
		return 0
	}
	return p[port]
}

// Emulator runs the joystick ports of an X68000 for a frontend. Each frame
// it translates host input for both ports and redraws the port monitor.
type Emulator struct {
	ports      *JoyPorts
	translator *Translator
	monitor    *Monitor
	config     Config

	pad    padInput
	source InputSource // Overrides pad when set

	// Region timing
	region Region
	timing DisplayTiming

	imageCRC uint32

	// Menu navigation. L2 on port 1 toggles menu mode; while active only
	// port 1 is translated and port state is left as last published.
	menu       bool
	menuHeld   bool // L2 level last frame
	menuKey    byte // Extra menu directions from other devices
	menuEdges  byte // Press edges consumed this frame
	menuRepeat byte // Repeat pulses this frame

	// On-screen message
	msg       string
	msgFrames uint32

	// Pre-allocated audio buffer for external consumption
	audioBuffer []int16
}

// NewEmulator creates an emulator for the given disk image.
func NewEmulator(image []byte, region Region) (*Emulator, error) {
	if err := ValidateImage(image); err != nil {
		return nil, err
	}

	e := &Emulator{
		ports:       NewJoyPorts(),
		monitor:     NewMonitor(),
		config:      DefaultConfig(),
		region:      region,
		timing:      GetTimingForRegion(region),
		imageCRC:    imageCRC(image),
		menuEdges:   0xFF,
		audioBuffer: make([]int16, 0, 2*sampleRate/Timing31kHz.FPS+2),
	}
	e.translator = NewTranslator(e.ports, &e.config, &e.pad)
	e.translator.SetNotifier(NotifyFunc(e.showMessage))

	return e, nil
}

// RunFrame executes one frame.
func (e *Emulator) RunFrame() {
	e.audioBuffer = e.audioBuffer[:0]

	held := e.input().ButtonPressed(0, JoypadL2)
	if held && !e.menuHeld {
		e.SetMenu(!e.menu)
	}
	e.menuHeld = held

	if e.menu {
		e.translator.Update(0, true, e.menuKey)
		e.menuEdges = e.translator.DownState()
		e.menuRepeat = e.translator.SpeedUpMask()
		e.translator.ResetDownState()
	} else {
		for port := 0; port < NumPorts; port++ {
			e.translator.Update(port, false, 0)
		}
	}

	e.monitor.render(e)

	if e.msgFrames > 0 {
		e.msgFrames--
	}

	e.fillSilence()
}

// input returns the source the translator currently polls.
func (e *Emulator) input() InputSource {
	if e.source != nil {
		return e.source
	}
	return &e.pad
}

// showMessage puts msg on screen for the given number of frames.
func (e *Emulator) showMessage(msg string, frames uint32) {
	e.msg = msg
	e.msgFrames = frames
}

// Message returns the on-screen message and the frames it has left.
func (e *Emulator) Message() (string, uint32) {
	if e.msgFrames == 0 {
		return "", 0
	}
	return e.msg, e.msgFrames
}

// SetInput sets the button bitmask for the given player.
func (e *Emulator) SetInput(player int, buttons uint32) {
	if player < 0 || player >= NumPorts {
		return
	}
	e.pad[player] = buttons
}

// SetSource polls src instead of the SetInput bitmasks. nil restores
// SetInput.
func (e *Emulator) SetSource(src InputSource) {
	e.source = src
	e.translator.SetSource(e.input())
}

// SetMenu enters or leaves menu navigation mode.
func (e *Emulator) SetMenu(active bool) {
	if active == e.menu {
		return
	}
	e.menu = active
	e.menuEdges = 0xFF
	e.menuRepeat = 0
	e.translator.ResetDownState()
}

// Menu reports whether menu navigation mode is active.
func (e *Emulator) Menu() bool {
	return e.menu
}

// SetMenuKeys sets extra menu directions (JoyUp etc, active high) from
// devices other than the joypad.
func (e *Emulator) SetMenuKeys(key byte) {
	e.menuKey = key
}

// MenuInput returns the press edges (active low) and repeat pulses
// (active high) seen by the menu in the last frame.
func (e *Emulator) MenuInput() (edges, repeat byte) {
	return e.menuEdges, e.menuRepeat
}

// SetSoftwareKeyboard stops joystick publishing while the on-screen
// keyboard is open.
func (e *Emulator) SetSoftwareKeyboard(active bool) {
	e.translator.SoftwareKeyboard = active
}

// SoftwareKeyboard reports whether the on-screen keyboard is open.
func (e *Emulator) SoftwareKeyboard() bool {
	return e.translator.SoftwareKeyboard
}

// SetPortActive connects or disconnects a joystick port. A disconnected
// port reads as nothing pressed.
func (e *Emulator) SetPortActive(port int, active bool) {
	if port < 0 || port >= NumPorts {
		return
	}
	e.ports.Active[port] = active
}

// Ports returns the joystick port registers.
func (e *Emulator) Ports() *JoyPorts {
	return e.ports
}

// Config returns a copy of the current input options.
func (e *Emulator) Config() Config {
	return e.config
}

// ReadRegister reads a PPI register by address.
func (e *Emulator) ReadRegister(addr uint32) byte {
	switch addr {
	case ppiPortA:
		return e.ports.Read(0)
	case ppiPortB:
		return e.ports.Read(1)
	default:
		return 0xFF
	}
}

// WriteRegister writes a PPI register by address.
func (e *Emulator) WriteRegister(addr uint32, val byte) {
	switch addr {
	case ppiPortA:
		e.ports.Write(0, val)
	case ppiPortB:
		e.ports.Write(1, val)
	}
}

// GetFramebuffer returns raw RGBA pixel data for current frame.
func (e *Emulator) GetFramebuffer() []byte {
	return e.monitor.Pixels()
}

// GetFramebufferStride returns the stride (bytes per row) of the framebuffer.
func (e *Emulator) GetFramebufferStride() int {
	return e.monitor.Stride()
}

// GetActiveHeight returns the current active display height.
func (e *Emulator) GetActiveHeight() int {
	return MaxScreenHeight
}

// GetRegion returns the emulator's region setting.
func (e *Emulator) GetRegion() Region {
	return e.region
}

// SetRegion updates the emulator's region configuration.
func (e *Emulator) SetRegion(region Region) {
	e.region = region
	e.timing = GetTimingForRegion(region)
}

// GetTiming returns FPS and scanline count for the current region.
func (e *Emulator) GetTiming() emucore.Timing {
	return emucore.Timing{
		FPS:       e.timing.FPS,
		Scanlines: e.timing.Scanlines,
	}
}

// SetOption applies a core option change identified by key.
func (e *Emulator) SetOption(key string, value string) {
	e.config.Apply(key, value)
}

// Reset returns the ports and translator to their power-on state.
// Options are kept.
func (e *Emulator) Reset() {
	e.ports.Reset()
	e.translator.Reset()
	e.menu = false
	e.menuHeld = false
	e.menuEdges = 0xFF
	e.menuRepeat = 0
	e.msgFrames = 0
}

// Close releases any resources held by the emulator.
func (e *Emulator) Close() {}
