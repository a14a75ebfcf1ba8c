package main

import (
	libretro "github.com/user-none/eblitui/libretro"
	"github.com/user-none/x68pad/adapter"
	"github.com/user-none/x68pad/emu"
)

// RETRO_DEVICE_ID_JOYPAD_L2/R2
const (
	retroJoypadL2 = 12
	retroJoypadR2 = 13
)

func init() {
	libretro.RegisterFactory(&adapter.Factory{}, []libretro.RetropadMapping{
		{RetroID: libretro.JoypadA, BitID: emu.JoypadA},
		{RetroID: libretro.JoypadB, BitID: emu.JoypadB},
		{RetroID: libretro.JoypadX, BitID: emu.JoypadX},
		{RetroID: libretro.JoypadY, BitID: emu.JoypadY},
		{RetroID: libretro.JoypadL, BitID: emu.JoypadL},
		{RetroID: libretro.JoypadR, BitID: emu.JoypadR},
		{RetroID: libretro.JoypadStart, BitID: emu.JoypadStart},
		{RetroID: libretro.JoypadSelect, BitID: emu.JoypadSelect},
		{RetroID: retroJoypadL2, BitID: emu.JoypadL2}, // Menu
		{RetroID: retroJoypadR2, BitID: emu.JoypadR2}, // Turbo
	})
}

func main() {}
