package emu

import (
	"log"
	"strconv"

	emucore "github.com/user-none/eblitui/api"
)

// Core option keys.
const (
	OptionJoyType1      = "joy_type_1"
	OptionJoyType2      = "joy_type_2"
	OptionButtonSwap    = "button_swap"
	OptionSelectMapping = "select_mapping"
	OptionTurboToggle   = "turbo_toggle"
	OptionTurboDelay    = "turbo_delay"
)

// Turbo delay range in frames.
const (
	minTurboDelay = 1
	maxTurboDelay = 30
)

// CoreOptions describes the input options for frontends.
func CoreOptions() []emucore.CoreOption {
	def := DefaultConfig()
	return []emucore.CoreOption{
		{
			Key:         OptionJoyType1,
			Label:       "Joypad Type (Port 1)",
			Description: "Trigger layout of the joystick in port 1",
			Type:        emucore.CoreOptionSelect,
			Default:     def.Layout[0].String(),
			Values:      append([]string(nil), layoutNames...),
			Category:    emucore.CoreOptionCategoryInput,
			PerGame:     true,
		},
		{
			Key:         OptionJoyType2,
			Label:       "Joypad Type (Port 2)",
			Description: "Trigger layout of the joystick in port 2",
			Type:        emucore.CoreOptionSelect,
			Default:     def.Layout[1].String(),
			Values:      append([]string(nil), layoutNames...),
			Category:    emucore.CoreOptionCategoryInput,
			PerGame:     true,
		},
		{
			Key:         OptionButtonSwap,
			Label:       "Swap TRG1/TRG2",
			Description: "Swap the two triggers of the 2-button layout",
			Type:        emucore.CoreOptionBool,
			Default:     strconv.FormatBool(def.ButtonSwap),
			Category:    emucore.CoreOptionCategoryInput,
			PerGame:     true,
		},
		{
			Key:         OptionSelectMapping,
			Label:       "Select Mapped Elsewhere",
			Description: "Don't report Select as Left+Right on the 2-button layout",
			Type:        emucore.CoreOptionBool,
			Default:     strconv.FormatBool(def.SelectMapping),
			Category:    emucore.CoreOptionCategoryInput,
		},
		{
			Key:         OptionTurboToggle,
			Label:       "Turbo Toggle",
			Description: "R2 toggles turbo instead of enabling it while held",
			Type:        emucore.CoreOptionBool,
			Default:     strconv.FormatBool(def.TurboToggle),
			Category:    emucore.CoreOptionCategoryInput,
		},
		{
			Key:         OptionTurboDelay,
			Label:       "Turbo Delay",
			Description: "Frames a turbo button stays released between presses",
			Type:        emucore.CoreOptionRange,
			Default:     strconv.Itoa(def.TurboDelay),
			Min:         minTurboDelay,
			Max:         maxTurboDelay,
			Step:        1,
			Category:    emucore.CoreOptionCategoryInput,
		},
	}
}

// Apply sets one option on c. Unknown keys are ignored. Values that fail
// to parse leave the option at its default.
func (c *Config) Apply(key string, value string) {
	def := DefaultConfig()

	switch key {
	case OptionJoyType1, OptionJoyType2:
		port := 0
		if key == OptionJoyType2 {
			port = 1
		}
		l, ok := ParseLayout(value)
		if !ok {
			log.Printf("Warning: unknown joypad type %q for port %d", value, port+1)
			l = def.Layout[port]
		}
		c.Layout[port] = l
	case OptionButtonSwap:
		c.ButtonSwap = parseBoolOption(key, value, def.ButtonSwap)
	case OptionSelectMapping:
		c.SelectMapping = parseBoolOption(key, value, def.SelectMapping)
	case OptionTurboToggle:
		c.TurboToggle = parseBoolOption(key, value, def.TurboToggle)
	case OptionTurboDelay:
		n, err := strconv.Atoi(value)
		if err != nil || n < minTurboDelay || n > maxTurboDelay {
			log.Printf("Warning: invalid %s %q, using %d", key, value, def.TurboDelay)
			n = def.TurboDelay
		}
		c.TurboDelay = n
	}
}

func parseBoolOption(key, value string, def bool) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid %s %q, using %t", key, value, def)
		return def
	}
	return b
}
