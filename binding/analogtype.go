package binding

import (
	"fmt"
	"strings"
)

// AnalogType tells how a button binding is derived from a device source
// other than a plain digital button.
type AnalogType int

const (
	AnalogNone AnalogType = iota
	AnalogPositive
	AnalogNegative
	HatUp
	HatUpRight
	HatRight
	HatDownRight
	HatDown
	HatDownLeft
	HatLeft
	HatUpLeft
	HatNeutral
	MidiCtrlPrecision
	MidiCtrlSingle
	MidiCtrlOnOff
	MidiPitchDown
	MidiPitchUp

	analogTypeCount
)

var analogTypeNames = [analogTypeCount]string{
	"None",
	"Positive",
	"Negative",
	"Hat Up",
	"Hat Upright",
	"Hat Right",
	"Hat Downright",
	"Hat Down",
	"Hat Downleft",
	"Hat Left",
	"Hat Upleft",
	"Hat Neutral",
	"MIDI Control Precision",
	"MIDI Control Single",
	"MIDI Control On/Off",
	"MIDI Pitch Down",
	"MIDI Pitch Up",
}

func (t AnalogType) String() string {
	if t < 0 || t >= analogTypeCount {
		return fmt.Sprintf("AnalogType(%d)", int(t))
	}
	return analogTypeNames[t]
}

// Valid reports whether t is a known analog type.
func (t AnalogType) Valid() bool { return t >= 0 && t < analogTypeCount }

// IsHat reports whether t is one of the nine hat switch directions.
func (t AnalogType) IsHat() bool { return t >= HatUp && t <= HatNeutral }

// ParseAnalogType accepts either the display name (case-insensitive) or the
// numeric value used by older config files.
func ParseAnalogType(s string) (AnalogType, error) {
	s = strings.TrimSpace(s)
	for i, name := range analogTypeNames {
		if strings.EqualFold(s, name) {
			return AnalogType(i), nil
		}
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil && AnalogType(n).Valid() {
		return AnalogType(n), nil
	}
	return AnalogNone, fmt.Errorf("binding: unknown analog type %q", s)
}
