package emu

import emucore "github.com/user-none/eblitui/api"

// Region is an alias for emucore.Region so internal code compiles unchanged.
type Region = emucore.Region

const (
	RegionNTSC = emucore.RegionNTSC
	RegionPAL  = emucore.RegionPAL
)

// DisplayTiming holds frame timing for a CRTC display mode.
type DisplayTiming struct {
	Scanlines int // Total scanlines per frame
	FPS       int // Frames per second
}

// 31kHz mode: 31.5 kHz horizontal, 55.46 Hz vertical, 568 scanlines
var Timing31kHz = DisplayTiming{
	Scanlines: 568,
	FPS:       55,
}

// GetTimingForRegion returns display timing. The X68000 was only sold in
// Japan, so every region runs the 31kHz mode.
func GetTimingForRegion(r Region) DisplayTiming {
	return Timing31kHz
}

// DetectRegion returns the display region for a disk image. Disk images
// carry no region information.
func DetectRegion(image []byte) Region {
	return RegionNTSC
}

// DefaultRegion returns the default region (NTSC).
func DefaultRegion() Region {
	return RegionNTSC
}
