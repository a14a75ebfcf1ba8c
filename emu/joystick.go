package emu

// X68000 joystick port bits (active low: 0=pressed, 1=released).
//
// Byte A is what a plain 2-button Atari-style stick drives:
//
//	Bit 6: TRG1, Bit 5: TRG2, Bit 3: Right, Bit 2: Left, Bit 1: Down, Bit 0: Up
//
// Byte B carries the extra triggers of 8-button CPSF pads and is only
// visible to software through the select mask written to the port:
//
//	Bit 6: TRG6, Bit 5: TRG8, Bit 3: TRG7, Bit 2: TRG3, Bit 1: TRG4, Bit 0: TRG5
const (
	JoyUp    byte = 0x01
	JoyDown  byte = 0x02
	JoyLeft  byte = 0x04
	JoyRight byte = 0x08
	JoyTrg2  byte = 0x20
	JoyTrg1  byte = 0x40

	JoyTrg5 byte = 0x01
	JoyTrg4 byte = 0x02
	JoyTrg3 byte = 0x04
	JoyTrg7 byte = 0x08
	JoyTrg8 byte = 0x20
	JoyTrg6 byte = 0x40
)

// NumPorts is the number of joystick ports on the machine.
const NumPorts = 2

// JoyPorts is the register side of the two joystick ports. It only stores
// what the translator last published and what software last wrote.
type JoyPorts struct {
	// Active is the per-port enable. An inactive port reads as nothing
	// pressed regardless of published state.
	Active [NumPorts]bool

	stateA [NumPorts]byte // Published byte A
	stateB [NumPorts]byte // Published byte B
	data   [NumPorts]byte // Select mask written by software
}

// NewJoyPorts creates joystick ports in the power-on state.
func NewJoyPorts() *JoyPorts {
	p := &JoyPorts{}
	p.Reset()
	return p
}

// Reset restores the power-on state: both ports active, nothing pressed,
// select mask cleared.
func (p *JoyPorts) Reset() {
	for i := 0; i < NumPorts; i++ {
		p.Active[i] = true
		p.stateA[i] = 0xFF
		p.stateB[i] = 0xFF
		p.data[i] = 0
	}
}

// Read returns the port value seen by software. Each bit comes from byte B
// where the select mask is set and from byte A where it is clear.
func (p *JoyPorts) Read(port int) byte {
	if port < 0 || port >= NumPorts {
		return 0xFF
	}

	var a, b byte = 0xFF, 0xFF
	if p.Active[port] {
		a = p.stateA[port]
		b = p.stateB[port]
	}

	return (^p.data[port] & a) | (p.data[port] & b)
}

// Write stores the select mask for a port. Writes to any other port
// number are ignored.
func (p *JoyPorts) Write(port int, val byte) {
	if port < 0 || port >= NumPorts {
		return
	}
	p.data[port] = val
}

// Publish replaces the bytes a port reports.
func (p *JoyPorts) Publish(port int, a, b byte) {
	if port < 0 || port >= NumPorts {
		return
	}
	p.stateA[port] = a
	p.stateB[port] = b
}

// Published returns the last published bytes for a port.
func (p *JoyPorts) Published(port int) (a, b byte) {
	if port < 0 || port >= NumPorts {
		return 0xFF, 0xFF
	}
	return p.stateA[port], p.stateB[port]
}

// SelectMask returns the select mask last written to a port.
func (p *JoyPorts) SelectMask(port int) byte {
	if port < 0 || port >= NumPorts {
		return 0
	}
	return p.data[port]
}
