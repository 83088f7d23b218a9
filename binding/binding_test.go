package binding_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadeio/bindcore/binding"
	"github.com/arcadeio/bindcore/rawinput"
)

func TestButtonAlternativesGrowLazily(t *testing.T) {
	b := binding.NewButton("Service")
	assert.Same(t, &b, b.Alternative(0))
	assert.Empty(t, b.Alternatives)

	alt := b.Alternative(3)
	require.Len(t, b.Alternatives, 3)
	assert.Same(t, &b.Alternatives[2], alt)
	for _, a := range b.Alternatives {
		assert.Equal(t, "Service", a.Name)
		assert.Equal(t, uint16(binding.Unbound), a.VKey)
		assert.False(t, a.IsBound())
	}

	b.Alternative(2).VKey = 0x20
	b.Alternative(1)
	assert.Len(t, b.Alternatives, 3)
	assert.Equal(t, uint16(0x20), b.Alternatives[1].VKey)
}

func TestButtonClearBindings(t *testing.T) {
	b := binding.NewButton("Test")
	b.DeviceID = "pad"
	b.VKey = 4
	b.AnalogType = binding.HatDown
	b.Invert = true
	b.DebounceUp = time.Second
	b.Alternative(1).VKey = 0x41

	b.ClearBindings()
	assert.True(t, b.IsNaive())
	assert.False(t, b.IsBound())
	assert.Equal(t, binding.AnalogNone, b.AnalogType)
	assert.Zero(t, b.DebounceUp)
	assert.Equal(t, uint16(0x41), b.Alternatives[0].VKey)
}

func TestButtonOverride(t *testing.T) {
	b := binding.NewButton("Test")
	b.SetOverride(binding.Pressed, 3)
	assert.True(t, b.OverrideEnabled)
	assert.Equal(t, 1.0, b.OverrideVelocity)

	b.ClearOverride()
	assert.False(t, b.OverrideEnabled)
}

func TestAnalogSettings(t *testing.T) {
	type testCase struct {
		name           string
		sensitivity    float64
		deadzone       float64
		sensitivitySet bool
		deadzoneSet    bool
		storedDeadzone float64
	}

	cases := []testCase{
		{name: "defaults", sensitivity: 1},
		{name: "inside tolerance", sensitivity: 1.005, deadzone: 0.01},
		{name: "sensitivity set", sensitivity: 1.5, sensitivitySet: true},
		{name: "low sensitivity set", sensitivity: 0.5, sensitivitySet: true},
		{name: "deadzone set", sensitivity: 1, deadzone: 0.2, deadzoneSet: true, storedDeadzone: 0.2},
		{name: "negative deadzone", sensitivity: 1, deadzone: -0.3, deadzoneSet: true, storedDeadzone: -0.3},
		{name: "deadzone clamped", sensitivity: 1, deadzone: 4, deadzoneSet: true, storedDeadzone: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := binding.NewAnalog("Knob")
			a.SetSensitivity(tc.sensitivity)
			a.SetDeadzone(tc.deadzone)
			assert.Equal(t, tc.sensitivitySet, a.SensitivitySet())
			assert.Equal(t, tc.deadzoneSet, a.DeadzoneSet())
			if tc.deadzoneSet {
				assert.Equal(t, tc.storedDeadzone, a.Deadzone())
			}
		})
	}
}

func TestAnalogDefaultsAndClear(t *testing.T) {
	a := binding.NewAnalog("Knob")
	assert.Equal(t, 0.5, a.LastState())
	assert.Equal(t, 0.5, a.OverrideState)
	assert.Equal(t, 1.0, a.Sensitivity())
	assert.False(t, a.IsSet())

	a.DeviceID = "pad"
	a.Index = 2
	a.SetSensitivity(3)
	a.SetDeadzone(0.4)
	a.Invert = true
	a.Smoothing = true
	assert.True(t, a.IsSet())

	a.ClearBindings()
	assert.False(t, a.IsSet())
	assert.False(t, a.SensitivitySet())
	assert.False(t, a.DeadzoneSet())
	assert.False(t, a.Invert)
	assert.False(t, a.Smoothing)

	a.SetLastState(7)
	assert.Equal(t, 1.0, a.LastState())
}

func TestParseAnalogType(t *testing.T) {
	type testCase struct {
		in      string
		expect  binding.AnalogType
		wantErr bool
	}

	cases := []testCase{
		{in: "Positive", expect: binding.AnalogPositive},
		{in: "hat downleft", expect: binding.HatDownLeft},
		{in: "16", expect: binding.MidiPitchUp},
		{in: " MIDI Control On/Off ", expect: binding.MidiCtrlOnOff},
		{in: "17", wantErr: true},
		{in: "sideways", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := binding.ParseAnalogType(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) binding.AnalogType {
	t.Helper()
	at, err := binding.ParseAnalogType(s)
	require.NoError(t, err)
	return at
}

func TestVKeyString(t *testing.T) {
	cases := map[uint16]string{
		0x41:  "A",
		0x35:  "5",
		0x12:  "Alt",
		0x112: "AltGr",
		0x63:  "Num 3",
		0x70:  "F1",
		0x87:  "F24",
		0x20:  "Space",
		0xFE:  "Unknown",
	}
	for vkey, want := range cases {
		assert.Equal(t, want, binding.VKeyString(vkey), "vkey %#x", vkey)
	}
}

func TestDisplayString(t *testing.T) {
	reg := rawinput.NewRegistry(nil)
	hid := &rawinput.HIDState{ValueCapsNames: []string{"X Axis"}}
	hid.AddButtonGroup("Button 1", "Button 2")
	require.NoError(t, reg.Add(rawinput.NewDevice("pad", "Arcade Pad", hid)))
	require.NoError(t, reg.Add(rawinput.NewDevice("mouse", "USB Mouse", &rawinput.MouseState{})))
	require.NoError(t, reg.Add(rawinput.NewDevice("midi", "Drum Kit", rawinput.NewMIDIState())))

	type testCase struct {
		name   string
		button binding.Button
		expect string
	}

	mk := func(dev string, vkey uint16, at binding.AnalogType) binding.Button {
		b := binding.NewButton("Test")
		b.DeviceID = dev
		b.VKey = vkey
		b.AnalogType = at
		return b
	}

	cases := []testCase{
		{name: "unbound", button: binding.NewButton("Test"), expect: ""},
		{name: "naive", button: mk("", 0x41, binding.AnalogNone), expect: "A (Naive, 0x41)"},
		{name: "missing", button: mk("nope", 3, binding.AnalogNone), expect: "Device missing (0x3)"},
		{name: "mouse", button: mk("mouse", rawinput.MouseBtnRight, binding.AnalogNone), expect: "Right Mouse (USB Mouse)"},
		{name: "hid button", button: mk("pad", 1, binding.AnalogNone), expect: "Button 2 (Arcade Pad)"},
		{name: "hid axis", button: mk("pad", 0, binding.AnalogNegative), expect: "X Axis- (Arcade Pad)"},
		{name: "hid hat", button: mk("pad", 0, binding.HatLeft), expect: "Hat Left (Arcade Pad)"},
		{name: "midi note", button: mk("midi", 0x24, binding.AnalogNone), expect: "MIDI 0x24 (Drum Kit)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.button.DisplayString(reg))
		})
	}

	a := binding.NewAnalog("Knob")
	a.DeviceID = "mouse"
	a.Index = rawinput.MousePosWheel
	assert.Equal(t, "Scroll Wheel (USB Mouse)", a.DisplayString(reg))
}
