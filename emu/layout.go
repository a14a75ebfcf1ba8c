package emu

import (
	"strings"

	emucore "github.com/user-none/eblitui/api"
)

// Generic input ids. Each is a bit position in the host button bitmask.
// The d-pad occupies bits 0-3 as in every eblitui core.
const (
	JoypadUp     = emucore.ButtonUp
	JoypadDown   = emucore.ButtonDown
	JoypadLeft   = emucore.ButtonLeft
	JoypadRight  = emucore.ButtonRight
	JoypadA      = 4
	JoypadB      = 5
	JoypadX      = 6
	JoypadY      = 7
	JoypadL      = 8
	JoypadR      = 9
	JoypadStart  = 10
	JoypadSelect = 11
	JoypadL2     = 12 // Menu
	JoypadR2     = 13 // Turbo
)

// Layout selects how host buttons map onto the X68000 triggers.
type Layout int

const (
	LayoutTwoButton Layout = iota // Standard 2-button joystick
	LayoutCPSFMD                  // 8-button CPSF pad, Mega Drive labelling
	LayoutCPSFSFC                 // 8-button CPSF pad, Super Famicom labelling
)

// Layout option values, in Layout order.
var layoutNames = []string{"2 Buttons", "CPSF-MD", "CPSF-SFC"}

// String returns the option value for the layout.
func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return "Unknown"
	}
	return layoutNames[l]
}

// ParseLayout converts an option value to a Layout. Matching ignores case.
func ParseLayout(s string) (Layout, bool) {
	for i, name := range layoutNames {
		if strings.EqualFold(s, name) {
			return Layout(i), true
		}
	}
	return LayoutTwoButton, false
}

// joyMapping is one row of a layout table. swap is the alternate target
// used by the 2-button layout when the trigger swap option is set.
type joyMapping struct {
	retro int
	joy   byte
	swap  byte
}

// 2-button: A and B are duplicated onto X and Y.
var joyMap2Button = [...]joyMapping{
	{JoypadA, JoyTrg2, JoyTrg1},
	{JoypadB, JoyTrg1, JoyTrg2},
	{JoypadX, JoyTrg1, JoyTrg2},
	{JoypadY, JoyTrg2, JoyTrg1},
}

// 8-button tables. Slots 0-1 land in byte A, slots 2-7 in byte B.
var joyMapCPSFMD = [...]joyMapping{
	{JoypadA, JoyTrg1, JoyTrg1},      // MD B - Medium Kick
	{JoypadB, JoyTrg2, JoyTrg2},      // MD A - Light Kick
	{JoypadX, JoyTrg4, JoyTrg4},      // MD Y - Medium Punch
	{JoypadY, JoyTrg3, JoyTrg3},      // MD X - Light Punch
	{JoypadL, JoyTrg5, JoyTrg5},      // MD Z - High Punch
	{JoypadR, JoyTrg8, JoyTrg8},      // MD C - High Kick
	{JoypadStart, JoyTrg6, JoyTrg6},  // MD Start
	{JoypadSelect, JoyTrg7, JoyTrg7}, // MD Mode
}

var joyMapCPSFSFC = [...]joyMapping{
	{JoypadA, JoyTrg2, JoyTrg2},      // High Kick
	{JoypadB, JoyTrg1, JoyTrg1},      // Medium Kick
	{JoypadX, JoyTrg3, JoyTrg3},      // Medium Punch
	{JoypadY, JoyTrg4, JoyTrg4},      // Light Kick
	{JoypadL, JoyTrg8, JoyTrg8},      // Light Punch
	{JoypadR, JoyTrg5, JoyTrg5},      // High Punch
	{JoypadStart, JoyTrg6, JoyTrg6},  // Start
	{JoypadSelect, JoyTrg7, JoyTrg7}, // Select
}

// maxSlots is the largest table length; turbo counters are sized to it.
const maxSlots = len(joyMapCPSFMD)

// table returns the mapping rows for a layout. Unknown layouts map nothing.
func (l Layout) table() []joyMapping {
	switch l {
	case LayoutTwoButton:
		return joyMap2Button[:]
	case LayoutCPSFMD:
		return joyMapCPSFMD[:]
	case LayoutCPSFSFC:
		return joyMapCPSFSFC[:]
	default:
		return nil
	}
}
