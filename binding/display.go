package binding

import (
	"fmt"

	"github.com/arcadeio/bindcore/rawinput"
)

var mouseButtonNames = [...]string{
	"Left Mouse",
	"Right Mouse",
	"Middle Mouse",
	"Mouse 1",
	"Mouse 2",
	"Mouse 3",
	"Mouse 4",
	"Mouse 5",
}

// DisplayString describes the button's own binding for the configuration
// UI. It returns "" for an unbound button.
func (b *Button) DisplayString(reg *rawinput.Registry) string {
	vkeyHex := fmt.Sprintf("%#x", b.VKey)
	if b.DeviceID == "" && b.VKey == Unbound {
		return ""
	}
	if b.IsNaive() {
		return fmt.Sprintf("%s (Naive, %s)", VKeyString(b.VKey), vkeyHex)
	}

	dev := reg.Get(b.DeviceID)
	if dev == nil {
		return "Device missing (" + vkeyHex + ")"
	}
	dev.Lock()
	defer dev.Unlock()

	switch st := dev.State.(type) {
	case nil:
		return "Device unplugged (" + vkeyHex + ")"
	case *rawinput.MouseState:
		name := "Unknown"
		if int(b.VKey) < len(mouseButtonNames) {
			name = mouseButtonNames[b.VKey]
		}
		return fmt.Sprintf("%s (%s)", name, dev.Desc)
	case *rawinput.KeyboardState:
		return fmt.Sprintf("%s (%s)", VKeyString(b.VKey), dev.Desc)
	case *rawinput.HIDState:
		switch {
		case b.AnalogType == AnalogNone:
			if int(b.VKey) < len(st.ButtonCapsNames) {
				return fmt.Sprintf("%s (%s)", st.ButtonCapsNames[b.VKey], dev.Desc)
			}
			return "Invalid button (" + dev.Desc + ")"
		case b.AnalogType == AnalogPositive, b.AnalogType == AnalogNegative:
			sign := "+"
			if b.AnalogType == AnalogNegative {
				sign = "-"
			}
			if int(b.VKey) < len(st.ValueCapsNames) {
				return fmt.Sprintf("%s%s (%s)", st.ValueCapsNames[b.VKey], sign, dev.Desc)
			}
			return "Invalid analog (" + dev.Desc + ")"
		case b.AnalogType.IsHat():
			return fmt.Sprintf("%s (%s)", b.AnalogType, dev.Desc)
		default:
			return "Unknown analog type (" + dev.Desc + ")"
		}
	case *rawinput.MIDIState:
		var kind string
		switch b.AnalogType {
		case AnalogNone:
			kind = "MIDI " + vkeyHex
		case MidiCtrlPrecision:
			kind = "MIDI PREC " + vkeyHex
		case MidiCtrlSingle:
			kind = "MIDI CTRL " + vkeyHex
		case MidiCtrlOnOff:
			kind = "MIDI ONOFF " + vkeyHex
		case MidiPitchDown:
			kind = "MIDI Pitch Down"
		case MidiPitchUp:
			kind = "MIDI Pitch Up"
		default:
			kind = "MIDI Unknown " + vkeyHex
		}
		return fmt.Sprintf("%s (%s)", kind, dev.Desc)
	case *rawinput.PIUIOState:
		return "PIUIO " + vkeyHex
	default:
		return "Unknown device type (" + vkeyHex + ")"
	}
}

// DisplayString describes the analog's binding for the configuration UI.
func (a *Analog) DisplayString(reg *rawinput.Registry) string {
	if a.DeviceID == "" {
		return ""
	}
	indexHex := fmt.Sprintf("%#x", a.Index)

	dev := reg.Get(a.DeviceID)
	if dev == nil {
		return "Device missing (" + indexHex + ")"
	}
	dev.Lock()
	defer dev.Unlock()

	idx := int(a.Index)
	switch st := dev.State.(type) {
	case nil:
		return "Device unplugged (" + indexHex + ")"
	case *rawinput.MouseState:
		name := "?"
		switch idx {
		case rawinput.MousePosX:
			name = "X"
		case rawinput.MousePosY:
			name = "Y"
		case rawinput.MousePosWheel:
			name = "Scroll Wheel"
		}
		return fmt.Sprintf("%s (%s)", name, dev.Desc)
	case *rawinput.HIDState:
		if idx < len(st.ValueCapsNames) {
			return fmt.Sprintf("%s (%s)", st.ValueCapsNames[idx], dev.Desc)
		}
		return "Invalid Axis (" + indexHex + ")"
	case *rawinput.MIDIState:
		prec := len(st.ControlsPrecision)
		single := prec + len(st.ControlsSingle)
		onoff := single + len(st.ControlsOnOff)
		switch {
		case idx < prec:
			return fmt.Sprintf("MIDI PREC %s (%s)", indexHex, dev.Desc)
		case idx < single:
			return fmt.Sprintf("MIDI CTRL %s (%s)", indexHex, dev.Desc)
		case idx < onoff:
			return fmt.Sprintf("MIDI ONOFF %s (%s)", indexHex, dev.Desc)
		case idx == onoff:
			return fmt.Sprintf("MIDI Pitch Bend (%s)", dev.Desc)
		default:
			return fmt.Sprintf("MIDI Unknown %s (%s)", indexHex, dev.Desc)
		}
	default:
		return "Unknown Axis (" + indexHex + ")"
	}
}
