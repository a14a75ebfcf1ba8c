package emu

import "testing"

func TestJoyPorts_DefaultState(t *testing.T) {
	p := NewJoyPorts()

	for port := 0; port < NumPorts; port++ {
		if val := p.Read(port); val != 0xFF {
			t.Errorf("port %d: expected 0xFF (no buttons), got 0x%02X", port, val)
		}
		a, b := p.Published(port)
		if a != 0xFF || b != 0xFF {
			t.Errorf("port %d: expected published 0xFF/0xFF, got 0x%02X/0x%02X", port, a, b)
		}
		if !p.Active[port] {
			t.Errorf("port %d: expected active at power-on", port)
		}
	}
}

func TestJoyPorts_ReadSelectsBits(t *testing.T) {
	p := NewJoyPorts()
	p.Publish(0, 0xA0, 0x5F)

	testCases := []struct {
		mask     byte
		expected byte
	}{
		{0x00, 0xA0}, // All bits from A
		{0xFF, 0x5F}, // All bits from B
		{0xF0, 0x50}, // High nibble from B, low nibble from A
		{0x0F, 0xAF}, // High nibble from A, low nibble from B
		{0x40, 0xE0}, // Bit 6 from B
	}

	for _, tc := range testCases {
		p.Write(0, tc.mask)
		if val := p.Read(0); val != tc.expected {
			t.Errorf("mask 0x%02X: expected 0x%02X, got 0x%02X", tc.mask, tc.expected, val)
		}
	}
}

func TestJoyPorts_ReadIsNotMerge(t *testing.T) {
	p := NewJoyPorts()
	p.Publish(1, 0xFE, 0xFD)
	p.Write(1, 0x00)

	// A merge would report both Up and bit 1; the select only sees A.
	if val := p.Read(1); val != 0xFE {
		t.Errorf("expected 0xFE, got 0x%02X", val)
	}
}

func TestJoyPorts_InactivePortReadsReleased(t *testing.T) {
	p := NewJoyPorts()
	p.Publish(0, 0x00, 0x00)
	p.Write(0, 0x0F)
	p.Active[0] = false

	if val := p.Read(0); val != 0xFF {
		t.Errorf("inactive port: expected 0xFF, got 0x%02X", val)
	}

	p.Active[0] = true
	if val := p.Read(0); val != 0x00 {
		t.Errorf("reactivated port: expected 0x00, got 0x%02X", val)
	}
}

func TestJoyPorts_WriteIgnoresUnknownPorts(t *testing.T) {
	p := NewJoyPorts()
	p.Write(2, 0xFF)
	p.Write(-1, 0xFF)

	for port := 0; port < NumPorts; port++ {
		if mask := p.SelectMask(port); mask != 0x00 {
			t.Errorf("port %d: expected mask 0x00, got 0x%02X", port, mask)
		}
	}
}

func TestJoyPorts_OutOfRange(t *testing.T) {
	p := NewJoyPorts()
	p.Publish(5, 0x00, 0x00)

	if val := p.Read(5); val != 0xFF {
		t.Errorf("expected 0xFF for unknown port, got 0x%02X", val)
	}
	if val := p.Read(-1); val != 0xFF {
		t.Errorf("expected 0xFF for negative port, got 0x%02X", val)
	}
}

func TestJoyPorts_Reset(t *testing.T) {
	p := NewJoyPorts()
	p.Publish(0, 0x12, 0x34)
	p.Write(0, 0x56)
	p.Active[1] = false

	p.Reset()

	a, b := p.Published(0)
	if a != 0xFF || b != 0xFF {
		t.Errorf("expected published 0xFF/0xFF after reset, got 0x%02X/0x%02X", a, b)
	}
	if mask := p.SelectMask(0); mask != 0x00 {
		t.Errorf("expected mask 0x00 after reset, got 0x%02X", mask)
	}
	if !p.Active[1] {
		t.Error("expected port 2 active after reset")
	}
}

func TestJoyPorts_SerializeRoundTrip(t *testing.T) {
	p := NewJoyPorts()
	p.Publish(0, 0xBE, 0xEF)
	p.Publish(1, 0x12, 0x34)
	p.Write(0, 0xF0)
	p.Write(1, 0x0F)
	p.Active[1] = false

	buf := make([]byte, JoySerializeSize)
	if err := p.Serialize(buf); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	q := NewJoyPorts()
	if err := q.Deserialize(buf); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	if *q != *p {
		t.Errorf("round trip mismatch: got %+v, expected %+v", *q, *p)
	}
}

func TestJoyPorts_SerializeBufferTooSmall(t *testing.T) {
	p := NewJoyPorts()
	if err := p.Serialize(make([]byte, JoySerializeSize-1)); err == nil {
		t.Error("expected error for short serialize buffer")
	}
	if err := p.Deserialize(make([]byte, JoySerializeSize-1)); err == nil {
		t.Error("expected error for short deserialize buffer")
	}
}

func TestJoyPorts_DeserializeFutureVersion(t *testing.T) {
	p := NewJoyPorts()
	buf := make([]byte, JoySerializeSize)
	buf[0] = joySerializeVersion + 1

	if err := p.Deserialize(buf); err == nil {
		t.Error("expected error for unsupported version")
	}
}
