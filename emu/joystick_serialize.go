package emu

import (
	"encoding/binary"
	"errors"
)

const (
	joySerializeVersion = 1
	// JoySerializeSize is the total bytes needed for JoyPorts serialization.
	// version(1) + per port: active(1) + stateA(1) + stateB(1) + data(1)
	JoySerializeSize = 1 + NumPorts*4

	translatorSerializeVersion = 1
	// TranslatorSerializeSize is the total bytes needed for Translator
	// serialization.
	// version(1) + per port: turbo(maxSlots*4) + turboOn(1) + turboHold(1) +
	// prevA(1) + menu: lastInput(1) + delay(4) + rate(4) + speedUp(4) +
	// downState(1) + softwareKeyboard(1)
	TranslatorSerializeSize = 1 + NumPorts*(maxSlots*4+3) + 13 + 2
)

// Serialize writes port register state to buf. buf must be at least
// JoySerializeSize bytes.
func (p *JoyPorts) Serialize(buf []byte) error {
	if len(buf) < JoySerializeSize {
		return errors.New("joystick serialize buffer too small")
	}

	offset := 0

	// Version
	buf[offset] = joySerializeVersion
	offset++

	for i := 0; i < NumPorts; i++ {
		buf[offset] = boolByte(p.Active[i])
		offset++
		buf[offset] = p.stateA[i]
		offset++
		buf[offset] = p.stateB[i]
		offset++
		buf[offset] = p.data[i]
		offset++
	}

	return nil
}

// Deserialize reads port register state from buf. buf must be at least
// JoySerializeSize bytes.
func (p *JoyPorts) Deserialize(buf []byte) error {
	if len(buf) < JoySerializeSize {
		return errors.New("joystick deserialize buffer too small")
	}

	offset := 0

	// Version
	version := buf[offset]
	offset++
	if version > joySerializeVersion {
		return errors.New("unsupported joystick state version")
	}

	for i := 0; i < NumPorts; i++ {
		p.Active[i] = buf[offset] != 0
		offset++
		p.stateA[i] = buf[offset]
		offset++
		p.stateB[i] = buf[offset]
		offset++
		p.data[i] = buf[offset]
		offset++
	}

	return nil
}

// Serialize writes turbo, edge and menu repeat state to buf. buf must be at
// least TranslatorSerializeSize bytes. Config is not included; options are
// owned by the frontend.
func (t *Translator) Serialize(buf []byte) error {
	if len(buf) < TranslatorSerializeSize {
		return errors.New("translator serialize buffer too small")
	}

	offset := 0

	// Version
	buf[offset] = translatorSerializeVersion
	offset++

	// Per-port turbo and edge state
	for i := 0; i < NumPorts; i++ {
		ps := &t.port[i]
		for _, c := range ps.turbo {
			binary.LittleEndian.PutUint32(buf[offset:], uint32(c))
			offset += 4
		}
		buf[offset] = boolByte(ps.turboOn)
		offset++
		buf[offset] = boolByte(ps.turboHold)
		offset++
		buf[offset] = ps.prevA
		offset++
	}

	// Menu repeat
	buf[offset] = t.menu.lastInput
	offset++
	binary.LittleEndian.PutUint32(buf[offset:], uint32(t.menu.delay))
	offset += 4
	binary.LittleEndian.PutUint32(buf[offset:], uint32(t.menu.rate))
	offset += 4
	for _, on := range t.menu.speedUp {
		buf[offset] = boolByte(on)
		offset++
	}

	buf[offset] = t.downState
	offset++
	buf[offset] = boolByte(t.SoftwareKeyboard)
	offset++

	return nil
}

// Deserialize reads turbo, edge and menu repeat state from buf. buf must be
// at least TranslatorSerializeSize bytes.
func (t *Translator) Deserialize(buf []byte) error {
	if len(buf) < TranslatorSerializeSize {
		return errors.New("translator deserialize buffer too small")
	}

	offset := 0

	// Version
	version := buf[offset]
	offset++
	if version > translatorSerializeVersion {
		return errors.New("unsupported translator state version")
	}

	// Per-port turbo and edge state
	for i := 0; i < NumPorts; i++ {
		ps := &t.port[i]
		for j := range ps.turbo {
			ps.turbo[j] = int(int32(binary.LittleEndian.Uint32(buf[offset:])))
			offset += 4
		}
		ps.turboOn = buf[offset] != 0
		offset++
		ps.turboHold = buf[offset] != 0
		offset++
		ps.prevA = buf[offset]
		offset++
	}

	// Menu repeat
	t.menu.lastInput = buf[offset]
	offset++
	t.menu.delay = int(int32(binary.LittleEndian.Uint32(buf[offset:])))
	offset += 4
	t.menu.rate = int(int32(binary.LittleEndian.Uint32(buf[offset:])))
	offset += 4
	for i := range t.menu.speedUp {
		t.menu.speedUp[i] = buf[offset] != 0
		offset++
	}

	t.downState = buf[offset]
	offset++
	t.SoftwareKeyboard = buf[offset] != 0
	offset++

	return nil
}
