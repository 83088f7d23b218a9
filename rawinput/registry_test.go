package rawinput_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadeio/bindcore/rawinput"
)

func TestRegistryLifecycle(t *testing.T) {
	reg := rawinput.NewRegistry(nil)

	kb := rawinput.NewDevice("kb0", "Keyboard", &rawinput.KeyboardState{})
	require.NoError(t, reg.Add(kb))
	require.NoError(t, reg.Add(rawinput.NewDevice("mouse0", "Mouse", &rawinput.MouseState{})))

	assert.Error(t, reg.Add(rawinput.NewDevice("kb0", "Other", &rawinput.KeyboardState{})))
	assert.Error(t, reg.Add(rawinput.NewDevice("", "Nameless", &rawinput.KeyboardState{})))

	assert.Same(t, kb, reg.Get("kb0"))
	assert.Nil(t, reg.Get("nope"))
	assert.Nil(t, reg.Get(""))
	require.Len(t, reg.Devices(), 2)
	assert.Equal(t, "kb0", reg.Devices()[0].Name)

	assert.True(t, reg.Remove("kb0"))
	assert.False(t, reg.Remove("nope"))
	kb.Lock()
	assert.Equal(t, rawinput.Destroyed, kb.Type())
	kb.Unlock()
	assert.Same(t, kb, reg.Get("kb0"))

	require.NoError(t, reg.Add(rawinput.NewDevice("kb0", "Keyboard", &rawinput.KeyboardState{})))
	kb.Lock()
	assert.Equal(t, rawinput.Keyboard, kb.Type())
	kb.Unlock()
	assert.Len(t, reg.Devices(), 2)
}

func TestFlushOutput(t *testing.T) {
	reg := rawinput.NewRegistry(nil)
	a := rawinput.NewDevice("a", "A", &rawinput.HIDState{})
	b := rawinput.NewDevice("b", "B", &rawinput.HIDState{})
	c := rawinput.NewDevice("c", "C", &rawinput.HIDState{})
	for _, d := range []*rawinput.Device{a, b, c} {
		require.NoError(t, reg.Add(d))
	}
	a.OutputEnabled, a.OutputPending = true, true
	b.OutputEnabled, b.OutputPending = true, true
	c.OutputPending = true

	boom := errors.New("write failed")
	var visited []string
	err := reg.FlushOutput(func(d *rawinput.Device) error {
		visited = append(visited, d.Name)
		if d.Name == "b" {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, visited)
	assert.False(t, a.OutputPending)
	assert.True(t, b.OutputPending)
	assert.True(t, c.OutputPending)
}

func TestStateHelpers(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	hid := &rawinput.HIDState{}
	hid.AddButtonGroup("A", "B")
	hid.AddButtonGroup("C")
	hid.SetButton(2, true, now)
	assert.True(t, hid.ButtonStates[1][0])
	assert.Equal(t, now, hid.ButtonDown[1][0])
	hid.SetButton(2, false, now.Add(time.Second))
	assert.Equal(t, now.Add(time.Second), hid.ButtonUp[1][0])
	hid.SetButton(9, true, now)
	assert.Equal(t, []string{"A", "B", "C"}, hid.ButtonCapsNames)

	kb := &rawinput.KeyboardState{}
	kb.SetKey(0x41, true, now)
	kb.SetKey(0x41, true, now.Add(time.Second))
	assert.Equal(t, now, kb.KeyDown[0x41], "repeated press keeps the first timestamp")

	midi := rawinput.NewMIDIState()
	assert.Equal(t, uint16(rawinput.MIDIPitchBendCenter), midi.PitchBend)
	midi.NoteOn(15, 127, 90)
	i := 15*128 + 127
	assert.True(t, midi.States[i])
	assert.Equal(t, uint8(1), midi.StatesEvents[i])
	assert.Equal(t, uint8(90), midi.Velocity[i])
	midi.NoteOff(15, 127)
	assert.False(t, midi.States[i])
	assert.Equal(t, uint8(2), midi.StatesEvents[i])
	midi.NoteOn(16, 0, 1)
}

func TestDeviceTypeString(t *testing.T) {
	assert.Equal(t, "hid", rawinput.HID.String())
	assert.Equal(t, "destroyed", rawinput.Destroyed.String())
	assert.Equal(t, "unknown", rawinput.Unknown.String())
}
