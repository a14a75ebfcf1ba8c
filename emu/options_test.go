package emu

import (
	"strconv"
	"testing"

	emucore "github.com/user-none/eblitui/api"
)

func TestCoreOptions_Keys(t *testing.T) {
	opts := CoreOptions()
	expected := []string{
		OptionJoyType1,
		OptionJoyType2,
		OptionButtonSwap,
		OptionSelectMapping,
		OptionTurboToggle,
		OptionTurboDelay,
	}

	if len(opts) != len(expected) {
		t.Fatalf("expected %d options, got %d", len(expected), len(opts))
	}
	for i, key := range expected {
		if opts[i].Key != key {
			t.Errorf("option %d: expected key %q, got %q", i, key, opts[i].Key)
		}
		if opts[i].Category != emucore.CoreOptionCategoryInput {
			t.Errorf("option %q: expected input category", opts[i].Key)
		}
	}
}

func TestCoreOptions_DefaultsApplyCleanly(t *testing.T) {
	var c Config
	for _, opt := range CoreOptions() {
		c.Apply(opt.Key, opt.Default)
	}

	if c != DefaultConfig() {
		t.Errorf("expected defaults %+v, got %+v", DefaultConfig(), c)
	}
}

func TestCoreOptions_LayoutValues(t *testing.T) {
	opts := CoreOptions()
	values := opts[0].Values

	if len(values) != 3 {
		t.Fatalf("expected 3 layouts, got %v", values)
	}
	for i, v := range values {
		l, ok := ParseLayout(v)
		if !ok || l != Layout(i) {
			t.Errorf("value %q: expected layout %d, got %d (ok=%v)", v, i, l, ok)
		}
	}

	// Values must be copies
	values[0] = "changed"
	if layoutNames[0] != "2 Buttons" {
		t.Error("CoreOptions exposed the layout name table")
	}
}

func TestCoreOptions_TurboDelayRange(t *testing.T) {
	opt := CoreOptions()[5]

	if opt.Type != emucore.CoreOptionRange {
		t.Error("expected range option")
	}
	if opt.Min != minTurboDelay || opt.Max != maxTurboDelay {
		t.Errorf("expected range %d-%d, got %d-%d", minTurboDelay, maxTurboDelay, opt.Min, opt.Max)
	}
	if opt.Default != "2" {
		t.Errorf("expected default \"2\", got %q", opt.Default)
	}
}

func TestConfigApply_Layout(t *testing.T) {
	c := DefaultConfig()

	c.Apply(OptionJoyType1, "CPSF-MD")
	c.Apply(OptionJoyType2, "cpsf-sfc")

	if c.Layout[0] != LayoutCPSFMD {
		t.Errorf("port 1: expected %s, got %s", LayoutCPSFMD, c.Layout[0])
	}
	if c.Layout[1] != LayoutCPSFSFC {
		t.Errorf("port 2: expected %s, got %s", LayoutCPSFSFC, c.Layout[1])
	}

	c.Apply(OptionJoyType2, "Arcade Stick")
	if c.Layout[1] != LayoutTwoButton {
		t.Errorf("unknown value: expected fallback %s, got %s", LayoutTwoButton, c.Layout[1])
	}
}

func TestConfigApply_Bools(t *testing.T) {
	c := DefaultConfig()

	c.Apply(OptionButtonSwap, "true")
	c.Apply(OptionSelectMapping, "1")
	c.Apply(OptionTurboToggle, "true")

	if !c.ButtonSwap || !c.SelectMapping || !c.TurboToggle {
		t.Errorf("expected all flags set, got %+v", c)
	}

	c.Apply(OptionButtonSwap, "maybe")
	if c.ButtonSwap {
		t.Error("invalid bool: expected fallback to false")
	}

	c.Apply(OptionTurboToggle, "false")
	if c.TurboToggle {
		t.Error("expected turbo toggle cleared")
	}
}

func TestConfigApply_TurboDelay(t *testing.T) {
	testCases := []struct {
		value    string
		expected int
	}{
		{"1", 1},
		{"30", 30},
		{"7", 7},
		{"0", 2},
		{"31", 2},
		{"-4", 2},
		{"fast", 2},
	}

	for _, tc := range testCases {
		c := DefaultConfig()
		c.TurboDelay = 9
		c.Apply(OptionTurboDelay, tc.value)
		if c.TurboDelay != tc.expected {
			t.Errorf("value %q: expected %d, got %d", tc.value, tc.expected, c.TurboDelay)
		}
	}
}

func TestConfigApply_UnknownKey(t *testing.T) {
	c := DefaultConfig()
	c.Apply("region", "PAL")

	if c != DefaultConfig() {
		t.Errorf("expected config unchanged, got %+v", c)
	}
}

func TestLayout_String(t *testing.T) {
	testCases := []struct {
		layout   Layout
		expected string
	}{
		{LayoutTwoButton, "2 Buttons"},
		{LayoutCPSFMD, "CPSF-MD"},
		{LayoutCPSFSFC, "CPSF-SFC"},
		{Layout(3), "Unknown"},
		{Layout(-1), "Unknown"},
	}

	for _, tc := range testCases {
		if s := tc.layout.String(); s != tc.expected {
			t.Errorf("layout %d: expected %q, got %q", int(tc.layout), tc.expected, s)
		}
	}
}

func TestConfigApply_TurboDelayAllValid(t *testing.T) {
	for n := minTurboDelay; n <= maxTurboDelay; n++ {
		var c Config
		c.Apply(OptionTurboDelay, strconv.Itoa(n))
		if c.TurboDelay != n {
			t.Errorf("expected %d, got %d", n, c.TurboDelay)
		}
	}
}
