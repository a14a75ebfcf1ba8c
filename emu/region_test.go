package emu

import "testing"

func TestDetectRegion_AnyImage(t *testing.T) {
	images := [][]byte{
		nil,
		make([]byte, 0x100),
		testImage(),
		[]byte("X68000 boot sector"),
	}

	for i, image := range images {
		if got := DetectRegion(image); got != RegionNTSC {
			t.Errorf("image %d: got %v, want NTSC", i, got)
		}
	}
}

func TestDefaultRegion(t *testing.T) {
	if got := DefaultRegion(); got != RegionNTSC {
		t.Errorf("got %v, want NTSC", got)
	}
}

func TestGetTimingForRegion(t *testing.T) {
	for _, r := range []Region{RegionNTSC, RegionPAL} {
		timing := GetTimingForRegion(r)
		if timing != Timing31kHz {
			t.Errorf("region %v: expected %+v, got %+v", r, Timing31kHz, timing)
		}
	}

	if Timing31kHz.FPS != 55 {
		t.Errorf("FPS: expected 55, got %d", Timing31kHz.FPS)
	}
	if Timing31kHz.Scanlines != 568 {
		t.Errorf("Scanlines: expected 568, got %d", Timing31kHz.Scanlines)
	}
}

func TestSetRegion_KeepsTiming(t *testing.T) {
	e := createTestEmulator()
	e.SetRegion(RegionPAL)

	if e.GetRegion() != RegionPAL {
		t.Errorf("expected PAL, got %v", e.GetRegion())
	}
	if timing := e.GetTiming(); timing.FPS != 55 || timing.Scanlines != 568 {
		t.Errorf("expected 55 FPS/568 lines, got %d/%d", timing.FPS, timing.Scanlines)
	}
}
