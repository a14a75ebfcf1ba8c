package adapter

import (
	emucore "github.com/user-none/eblitui/api"
	"github.com/user-none/x68pad/emu"
)

// Compile-time interface check.
var _ emucore.CoreFactory = (*Factory)(nil)

// Factory implements emucore.CoreFactory for the X68000 joystick core.
type Factory struct{}

// SystemInfo returns system metadata for UI configuration.
func (f *Factory) SystemInfo() emucore.SystemInfo {
	return emucore.SystemInfo{
		Name:            "x68pad",
		ConsoleName:     "Sharp X68000",
		Extensions:      []string{".dim", ".xdf", ".hdm", ".d88", ".88d", ".hdf"},
		ScreenWidth:     emu.ScreenWidth,
		MaxScreenHeight: emu.MaxScreenHeight,
		AspectRatio:     4.0 / 3.0,
		SampleRate:      48000,
		Buttons: []emucore.Button{
			{Name: "A", ID: emu.JoypadA, DefaultKey: "J", DefaultPad: "A"},
			{Name: "B", ID: emu.JoypadB, DefaultKey: "K", DefaultPad: "B"},
			{Name: "X", ID: emu.JoypadX, DefaultKey: "U", DefaultPad: "X"},
			{Name: "Y", ID: emu.JoypadY, DefaultKey: "I", DefaultPad: "Y"},
			{Name: "L", ID: emu.JoypadL, DefaultKey: "O", DefaultPad: "L1"},
			{Name: "R", ID: emu.JoypadR, DefaultKey: "L", DefaultPad: "R1"},
			{Name: "Start", ID: emu.JoypadStart, DefaultKey: "Enter", DefaultPad: "Start"},
			{Name: "Select", ID: emu.JoypadSelect, DefaultKey: "Backspace", DefaultPad: "Back"},
			{Name: "Menu", ID: emu.JoypadL2, DefaultKey: "F1", DefaultPad: "L2"},
			{Name: "Turbo", ID: emu.JoypadR2, DefaultKey: "Space", DefaultPad: "R2"},
		},
		Players:         emu.NumPorts,
		CoreOptions:     emu.CoreOptions(),
		RDBName:         "Sharp - X68000",
		ThumbnailRepo:   "Sharp_-_X68000",
		DataDirName:     "x68pad",
		ConsoleID:       0,
		CoreName:        emu.Name,
		CoreVersion:     emu.Version,
		SerializeSize:   emu.SerializeSize(),
		BigEndianMemory: true, // 68000 host
	}
}

// CreateEmulator creates a new emulator instance with the given disk image
// and region.
func (f *Factory) CreateEmulator(image []byte, region emucore.Region) (emucore.Emulator, error) {
	e, err := emu.NewEmulator(image, region)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// DetectRegion returns the region for a disk image. The bool return is
// false since x68pad never consults a database.
func (f *Factory) DetectRegion(image []byte) (emucore.Region, bool) {
	return emu.DetectRegion(image), false
}
