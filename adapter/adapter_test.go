package adapter

import (
	"testing"

	"github.com/user-none/x68pad/emu"
)

func TestSystemInfo_Buttons(t *testing.T) {
	info := (&Factory{}).SystemInfo()

	seen := map[int]string{}
	for _, b := range info.Buttons {
		if b.ID < 4 {
			t.Errorf("button %q uses d-pad bit %d", b.Name, b.ID)
		}
		if prev, ok := seen[b.ID]; ok {
			t.Errorf("buttons %q and %q share bit %d", prev, b.Name, b.ID)
		}
		seen[b.ID] = b.Name
	}

	for _, id := range []int{emu.JoypadL2, emu.JoypadR2} {
		if _, ok := seen[id]; !ok {
			t.Errorf("expected hotkey bit %d exposed", id)
		}
	}

	if info.Players != 2 {
		t.Errorf("expected 2 players, got %d", info.Players)
	}
	if info.SerializeSize != emu.SerializeSize() {
		t.Errorf("expected serialize size %d, got %d", emu.SerializeSize(), info.SerializeSize)
	}
	if len(info.CoreOptions) != len(emu.CoreOptions()) {
		t.Errorf("expected %d core options, got %d", len(emu.CoreOptions()), len(info.CoreOptions))
	}
}

func TestCreateEmulator(t *testing.T) {
	f := &Factory{}

	if _, err := f.CreateEmulator(nil, emu.RegionNTSC); err == nil {
		t.Error("expected error for empty image")
	}

	e, err := f.CreateEmulator([]byte{0x60, 0x00}, emu.RegionNTSC)
	if err != nil {
		t.Fatalf("CreateEmulator failed: %v", err)
	}
	defer e.Close()

	e.SetInput(0, 1<<emu.JoypadLeft)
	e.RunFrame()

	core, ok := e.(*emu.Emulator)
	if !ok {
		t.Fatalf("expected *emu.Emulator, got %T", e)
	}
	if val := core.Ports().Read(0); val != 0xFB {
		t.Errorf("expected Left pressed (0xFB), got 0x%02X", val)
	}
}

func TestDetectRegion(t *testing.T) {
	region, found := (&Factory{}).DetectRegion([]byte{0x00})
	if region != emu.RegionNTSC {
		t.Errorf("expected NTSC, got %v", region)
	}
	if found {
		t.Error("expected no database match")
	}
}
