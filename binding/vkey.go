package binding

import "fmt"

var vkeyNames = map[uint16]string{
	0x01: "Left MB", 0x02: "Right MB", 0x04: "Middle MB", 0x05: "X1 MB", 0x06: "X2 MB",
	0x08: "Backspace", 0x09: "Tab", 0x0C: "Clear", 0x0D: "Enter",
	0x10: "Shift", 0x11: "Ctrl", 0x13: "Pause", 0x14: "Caps Lock", 0x1B: "Escape",
	0x20: "Space", 0x21: "Page Up", 0x22: "Page Down", 0x23: "End", 0x24: "Home",
	0x25: "Left", 0x26: "Up", 0x27: "Right", 0x28: "Down",
	0x2C: "Prt Scr", 0x2D: "Insert", 0x2E: "Delete",
	0x5B: "Left Windows", 0x5C: "Right Windows", 0x5D: "Apps",
	0x6A: "*", 0x6B: "+", 0x6C: "Separator", 0x6D: "-", 0x6E: ".", 0x6F: "/",
	0x90: "Num Lock", 0x91: "Scroll Lock",
	0xA0: "Left Shift", 0xA1: "Right Shift", 0xA2: "Left Control", 0xA3: "Right Control",
	0xA4: "Left Menu", 0xA5: "Right Menu",
}

// VKeyString names a Windows virtual key code. Bit 8 marks the extended
// (right-hand) variant, which only matters for Alt.
func VKeyString(vkey uint16) string {
	k := vkey % 256
	switch {
	case k == 0x12:
		if vkey > 0xFF {
			return "AltGr"
		}
		return "Alt"
	case k >= 0x30 && k <= 0x39, k >= 0x41 && k <= 0x5A:
		return string(rune(k))
	case k >= 0x60 && k <= 0x69:
		return fmt.Sprintf("Num %d", k-0x60)
	case k >= 0x70 && k <= 0x87:
		return fmt.Sprintf("F%d", k-0x70+1)
	}
	if name, ok := vkeyNames[k]; ok {
		return name
	}
	return "Unknown"
}
