package emu

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
)

// Save state format constants
const (
	stateVersion    = 1
	stateMagic      = "X68PADState\x00"
	stateHeaderSize = 22 // magic(12) + version(2) + imageCRC(4) + dataCRC(4)
)

// emulatorSerializeSize is the inline Emulator state:
// menu(1) + menuHeld(1) + menuKey(1) + menuEdges(1) + menuRepeat(1)
const emulatorSerializeSize = 5

// boolByte converts a bool to a uint8 (0 or 1).
func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// SerializeSize returns the total size in bytes needed for a save state.
func SerializeSize() int {
	return stateHeaderSize +
		JoySerializeSize +
		TranslatorSerializeSize +
		emulatorSerializeSize
}

// Serialize creates a save state and returns it as a byte slice.
// Input options and the on-screen message are not part of the state.
func (e *Emulator) Serialize() ([]byte, error) {
	data := make([]byte, SerializeSize())

	// Write header
	copy(data[0:12], stateMagic)
	binary.LittleEndian.PutUint16(data[12:14], stateVersion)
	binary.LittleEndian.PutUint32(data[14:18], e.imageCRC)

	offset := stateHeaderSize

	// Joystick ports
	if err := e.ports.Serialize(data[offset:]); err != nil {
		return nil, err
	}
	offset += JoySerializeSize

	// Translator
	if err := e.translator.Serialize(data[offset:]); err != nil {
		return nil, err
	}
	offset += TranslatorSerializeSize

	// Emulator inline state
	e.serializeBase(data, offset)

	// Calculate and write data CRC32 (over everything after header)
	dataCRC := crc32.ChecksumIEEE(data[stateHeaderSize:])
	binary.LittleEndian.PutUint32(data[18:22], dataCRC)

	return data, nil
}

// Deserialize restores emulator state from a save state byte slice.
// Region is NOT restored - the current region setting is preserved.
func (e *Emulator) Deserialize(data []byte) error {
	if err := e.VerifyState(data); err != nil {
		return err
	}

	offset := stateHeaderSize

	// Restore into copies so a rejected component leaves the emulator
	// untouched.
	ports := *e.ports
	if err := ports.Deserialize(data[offset:]); err != nil {
		return err
	}
	offset += JoySerializeSize

	translator := *e.translator
	if err := translator.Deserialize(data[offset:]); err != nil {
		return err
	}
	offset += TranslatorSerializeSize

	*e.ports = ports
	*e.translator = translator

	// Emulator inline state
	e.deserializeBase(data, offset)

	return nil
}

// VerifyState checks if a save state is valid without loading it.
func (e *Emulator) VerifyState(data []byte) error {
	if len(data) < SerializeSize() {
		return errors.New("save state too short")
	}

	if string(data[0:12]) != stateMagic {
		return errors.New("invalid save state magic")
	}

	version := binary.LittleEndian.Uint16(data[12:14])
	if version > stateVersion {
		return errors.New("unsupported save state version")
	}

	crc := binary.LittleEndian.Uint32(data[14:18])
	if crc != e.imageCRC {
		return errors.New("save state is for a different disk image")
	}

	expectedCRC := binary.LittleEndian.Uint32(data[18:22])
	actualCRC := crc32.ChecksumIEEE(data[stateHeaderSize:])
	if expectedCRC != actualCRC {
		return errors.New("save state data is corrupted")
	}

	return nil
}

// serializeBase writes Emulator inline state to the data buffer.
func (e *Emulator) serializeBase(data []byte, offset int) int {
	data[offset] = boolByte(e.menu)
	offset++
	data[offset] = boolByte(e.menuHeld)
	offset++
	data[offset] = e.menuKey
	offset++
	data[offset] = e.menuEdges
	offset++
	data[offset] = e.menuRepeat
	offset++

	return offset
}

// deserializeBase reads Emulator inline state from the data buffer.
func (e *Emulator) deserializeBase(data []byte, offset int) int {
	e.menu = data[offset] != 0
	offset++
	e.menuHeld = data[offset] != 0
	offset++
	e.menuKey = data[offset]
	offset++
	e.menuEdges = data[offset]
	offset++
	e.menuRepeat = data[offset]
	offset++

	return offset
}
