package emu

import (
	"fmt"
	"log"
)

// Menu navigation repeat timing, in frames.
const (
	joyRepeatDelay = 30 // Delay before the first repeat
	joyRepeatRate  = 3  // Frames between repeats
)

// turboMessageFrames is how long the turbo toggle message stays on screen.
const turboMessageFrames = 180

// InputSource reports whether a host button is held. id is a bit position
// as defined by the Joypad constants.
type InputSource interface {
	ButtonPressed(port, id int) bool
}

// BitmaskSource is an InputSource that can report every button of a port
// in one call. Translator prefers it when available.
type BitmaskSource interface {
	InputSource
	Buttons(port int) uint32
}

// Notifier displays a short message for a number of frames. It must not
// block.
type Notifier interface {
	Notify(msg string, frames uint32)
}

// NotifyFunc adapts a function to the Notifier interface.
type NotifyFunc func(msg string, frames uint32)

// Notify calls f(msg, frames).
func (f NotifyFunc) Notify(msg string, frames uint32) {
	f(msg, frames)
}

// logNotifier is used when no on-screen sink is attached.
type logNotifier struct{}

func (logNotifier) Notify(msg string, frames uint32) {
	log.Print(msg)
}

// Config holds the input options the translator reads every frame.
type Config struct {
	Layout        [NumPorts]Layout
	ButtonSwap    bool // Swap TRG1/TRG2 on the 2-button layout
	SelectMapping bool // Select is mapped elsewhere; don't press Left+Right
	TurboToggle   bool // R2 latches turbo instead of acting as a hold
	TurboDelay    int  // Frames a turbo button is released per cycle
}

// DefaultConfig returns the option defaults.
func DefaultConfig() Config {
	return Config{TurboDelay: 2}
}

// portState is the per-port state carried between frames.
type portState struct {
	turbo     [maxSlots]int // Turbo phase per layout slot
	turboOn   bool          // Turbo modifier engaged
	turboHold bool          // R2 level last frame, for toggle edges
	prevA     byte          // Byte A last frame, for press edges
}

// menuRepeat is the single-focus menu auto-repeat timer.
type menuRepeat struct {
	lastInput byte
	delay     int
	rate      int
	speedUp   [4]bool // Indexed by direction bit number (Up, Down, Left, Right)
}

// Translator converts host input into joystick port bytes once per frame.
type Translator struct {
	ports  *JoyPorts
	config *Config
	source InputSource
	notify Notifier

	// SoftwareKeyboard disables publishing while the on-screen keyboard
	// owns the input.
	SoftwareKeyboard bool

	port      [NumPorts]portState
	menu      menuRepeat
	downState byte
}

// NewTranslator creates a translator publishing to ports and reading
// options from config.
func NewTranslator(ports *JoyPorts, config *Config, source InputSource) *Translator {
	t := &Translator{
		ports:  ports,
		config: config,
		source: source,
		notify: logNotifier{},
	}
	t.Reset()
	return t
}

// Reset clears all per-port and menu state.
func (t *Translator) Reset() {
	for i := range t.port {
		t.port[i] = portState{prevA: 0xFF}
	}
	t.menu = menuRepeat{}
	t.downState = 0xFF
}

// SetSource replaces the input source.
func (t *Translator) SetSource(source InputSource) {
	t.source = source
}

// SetNotifier replaces the message sink. nil restores logging.
func (t *Translator) SetNotifier(n Notifier) {
	if n == nil {
		n = logNotifier{}
	}
	t.notify = n
}

// poll reads the host buttons for a port as a bitmask.
func (t *Translator) poll(port int) uint32 {
	if t.source == nil {
		return 0
	}
	if bs, ok := t.source.(BitmaskSource); ok {
		return bs.Buttons(port)
	}

	var res uint32
	for id := 0; id <= JoypadR2; id++ {
		if t.source.ButtonPressed(port, id) {
			res |= 1 << id
		}
	}
	return res
}

// Update runs one frame for a port. menu selects menu navigation instead
// of publishing to the port, and key carries extra menu direction bits
// (active high) from other devices such as the keyboard.
func (t *Translator) Update(port int, menu bool, key byte) {
	if port < 0 || port >= NumPorts {
		return
	}

	ps := &t.port[port]
	res := t.poll(port)
	var retA, retB byte = 0xFF, 0xFF

	// D-pad
	var dir byte
	if res&(1<<JoypadRight) != 0 {
		dir |= JoyRight
	}
	if res&(1<<JoypadLeft) != 0 {
		dir |= JoyLeft
	}
	if res&(1<<JoypadUp) != 0 {
		dir |= JoyUp
	}
	if res&(1<<JoypadDown) != 0 {
		dir |= JoyDown
	}
	retA ^= clearOpposing(dir)

	t.updateTurbo(port, res)

	// Buttons
	layout := t.config.Layout[port]
	table := layout.table()
	for i, m := range table {
		if res&(1<<m.retro) == 0 {
			ps.turbo[i] = 0
			continue
		}

		if !ps.turboOn || ps.turbo[i] == 0 {
			switch {
			case layout == LayoutTwoButton && t.config.ButtonSwap:
				retA ^= m.swap
			case layout == LayoutTwoButton || i < 2:
				retA ^= m.joy
			default:
				retB ^= m.joy
			}
		}
		ps.turbo[i] = (ps.turbo[i] + 1) % (t.turboDelay() + 1)
	}

	// A 2-button stick reports Start as Up+Down and Select as Left+Right.
	if layout == LayoutTwoButton {
		if res&(1<<JoypadStart) != 0 {
			retA &^= JoyUp | JoyDown
		}
		if !t.config.SelectMapping && res&(1<<JoypadSelect) != 0 {
			retA &^= JoyLeft | JoyRight
		}
	}

	t.downState = ^(retA ^ ps.prevA) | retA
	ps.prevA = retA

	if menu {
		t.updateMenu(retA, key)
		return
	}

	if !t.SoftwareKeyboard {
		t.ports.Publish(port, retA, retB)
	}
}

// updateTurbo handles the R2 turbo modifier for a port.
func (t *Translator) updateTurbo(port int, res uint32) {
	ps := &t.port[port]
	held := res&(1<<JoypadR2) != 0

	if !t.config.TurboToggle {
		ps.turboOn = held
		return
	}

	prev := ps.turboHold
	ps.turboHold = held
	if held && !prev {
		ps.turboOn = !ps.turboOn
		state := "DISABLED"
		if ps.turboOn {
			state = "ENABLED"
		}
		t.notify.Notify(fmt.Sprintf("Port %d turbo buttons: %s", port+1, state), turboMessageFrames)
	}
}

// updateMenu runs the menu auto-repeat for this frame's byte A.
func (t *Translator) updateMenu(retA byte, key byte) {
	m := &t.menu
	in := clearOpposing((retA ^ 0xFF) | key)

	m.speedUp = [4]bool{}

	if m.lastInput != in {
		m.lastInput = in
		m.delay = joyRepeatDelay
		m.rate = 0
		t.downState = in ^ 0xFF
		return
	}

	if m.delay > 0 {
		m.delay--
	}
	if m.delay != 0 {
		return
	}
	if m.rate > 0 {
		m.rate--
	}
	if m.rate != 0 {
		return
	}

	m.rate = joyRepeatRate
	for i := range m.speedUp {
		if in&(1<<i) != 0 {
			m.speedUp[i] = true
		}
	}
}

func (t *Translator) turboDelay() int {
	if t.config.TurboDelay < 0 {
		return 0
	}
	return t.config.TurboDelay
}

// clearOpposing drops both halves of an Up+Down or Left+Right pair.
func clearOpposing(dir byte) byte {
	if dir&(JoyLeft|JoyRight) == JoyLeft|JoyRight {
		dir &^= JoyLeft | JoyRight
	}
	if dir&(JoyUp|JoyDown) == JoyUp|JoyDown {
		dir &^= JoyUp | JoyDown
	}
	return dir
}

// DownState returns the press-edge mask from the last update. A 0 bit is
// a fresh press.
func (t *Translator) DownState() byte {
	return t.downState
}

// ResetDownState marks every bit as not freshly pressed.
func (t *Translator) ResetDownState() {
	t.downState = 0xFF
}

// SpeedUp reports whether the menu repeat fired for a direction (JoyUp,
// JoyDown, JoyLeft or JoyRight) this frame.
func (t *Translator) SpeedUp(dir byte) bool {
	for i := range t.menu.speedUp {
		if dir == 1<<i {
			return t.menu.speedUp[i]
		}
	}
	return false
}

// SpeedUpMask returns the menu repeat flags as direction bits (active high).
func (t *Translator) SpeedUpMask() byte {
	var mask byte
	for i, on := range t.menu.speedUp {
		if on {
			mask |= 1 << i
		}
	}
	return mask
}

// MenuInput returns the combined menu input last seen (active high).
func (t *Translator) MenuInput() byte {
	return t.menu.lastInput
}

// TurboEnabled reports whether the turbo modifier is engaged on a port.
func (t *Translator) TurboEnabled(port int) bool {
	if port < 0 || port >= NumPorts {
		return false
	}
	return t.port[port].turboOn
}
