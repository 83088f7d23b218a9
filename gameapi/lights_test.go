package gameapi_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadeio/bindcore/binding"
	"github.com/arcadeio/bindcore/rawinput"
)

type recordingPusher struct {
	frames [][]bool
	err    error
}

func (p *recordingPusher) PushLights(lights []bool) error {
	frame := make([]bool, len(lights))
	copy(frame, lights)
	p.frames = append(p.frames, frame)
	return p.err
}

func newHIDOutputs() *rawinput.HIDState {
	return &rawinput.HIDState{
		ButtonOutputCapsNames: []string{"L1", "L2", "L3"},
		ButtonOutputStates:    [][]bool{{false, false}, {false}},
		ValueOutputCapsNames:  []string{"Bar"},
		ValueOutputStates:     []float64{0},
	}
}

func boundLight(dev string, index uint16) binding.Light {
	l := binding.NewLight("Test")
	l.DeviceID = dev
	l.Index = index
	return l
}

func TestLightOverridePropagates(t *testing.T) {
	f := newFixture(t)
	l := binding.NewLight("Neon")
	l.Alternative(1)
	l.SetOverride(0.75)

	f.api.WriteLight(&l, 0.3)

	assert.True(t, l.OverrideEnabled)
	assert.Equal(t, 0.75, f.api.ReadLight(&l))
	assert.Equal(t, 0.3, l.LastState)
	require.Len(t, l.Alternatives, 1)
	assert.True(t, l.Alternatives[0].OverrideEnabled)
	assert.Equal(t, 0.75, f.api.ReadLight(&l.Alternatives[0]))
}

func TestLightWriteClearsAlternativeOverride(t *testing.T) {
	f := newFixture(t)
	l := binding.NewLight("Neon")
	l.Alternative(2)
	l.Alternatives[0].SetOverride(1)

	f.api.WriteLight(&l, 0.4)

	for _, alt := range l.Alternatives {
		assert.False(t, alt.OverrideEnabled)
		assert.Equal(t, 0.4, f.api.ReadLight(&alt))
	}
}

func TestHIDLightWrite(t *testing.T) {
	f := newFixture(t)
	hid := newHIDOutputs()
	dev := f.add(t, "board", hid)

	button := boundLight("board", 1)
	f.api.WriteLight(&button, 0.7)
	assert.True(t, hid.ButtonOutputStates[0][1])
	assert.True(t, dev.OutputEnabled)
	assert.True(t, dev.OutputPending)
	assert.Equal(t, 1.0, f.api.ReadDeviceLight(dev, 1))

	flushed := 0
	require.NoError(t, f.reg.FlushOutput(func(*rawinput.Device) error {
		flushed++
		return nil
	}))
	assert.Equal(t, 1, flushed)
	assert.False(t, dev.OutputPending)

	f.api.WriteLight(&button, 0.9)
	assert.False(t, dev.OutputPending, "unchanged output must not be flushed again")

	second := boundLight("board", 2)
	f.api.WriteLight(&second, 0.5)
	assert.False(t, hid.ButtonOutputStates[1][0])
	assert.False(t, dev.OutputPending)

	bar := boundLight("board", 3)
	f.api.WriteLight(&bar, 0.42)
	assert.Equal(t, 0.42, hid.ValueOutputStates[0])
	assert.True(t, dev.OutputPending)
	assert.Equal(t, 0.42, f.api.ReadDeviceLight(dev, 3))

	assert.Equal(t, 0.0, f.api.ReadDeviceLight(dev, 9))
}

func TestLightAlternativeDevices(t *testing.T) {
	f := newFixture(t)
	hid := newHIDOutputs()
	f.add(t, "board", hid)
	pusher := &recordingPusher{}
	sextet := &rawinput.SextetState{Pusher: pusher}
	f.add(t, "sextet", sextet)
	drv := &fakePIUIO{pressed: map[int]bool{}, lights: map[int]bool{}}
	f.add(t, "piuio", &rawinput.PIUIOState{Driver: drv})

	l := boundLight("board", 0)
	*l.Alternative(1) = boundLight("sextet", 12)
	*l.Alternative(2) = boundLight("piuio", 3)

	f.api.WriteLight(&l, 1)

	assert.True(t, hid.ButtonOutputStates[0][0])
	assert.True(t, sextet.Lights[12])
	require.Len(t, pusher.frames, 1)
	assert.True(t, pusher.frames[0][12])
	assert.True(t, drv.lights[3])

	f.api.WriteLight(&l, 0)
	assert.False(t, sextet.Lights[12])
	assert.False(t, drv.lights[3])
}

func TestLightOutOfRange(t *testing.T) {
	f := newFixture(t)
	pusher := &recordingPusher{err: errors.New("unplugged")}
	f.add(t, "sextet", &rawinput.SextetState{Pusher: pusher})
	drv := &fakePIUIO{pressed: map[int]bool{}, lights: map[int]bool{}}
	f.add(t, "piuio", &rawinput.PIUIOState{Driver: drv})

	far := boundLight("sextet", rawinput.SextetLightCount)
	f.api.WriteLight(&far, 1)
	assert.Empty(t, pusher.frames)

	failing := boundLight("sextet", 0)
	f.api.WriteLight(&failing, 1)
	assert.Len(t, pusher.frames, 1)

	piuio := boundLight("piuio", rawinput.PIUIOMaxLights)
	f.api.WriteLight(&piuio, 1)
	assert.Empty(t, drv.lights)

	missing := boundLight("gone", 0)
	f.api.WriteLight(&missing, 2)
	assert.Equal(t, 1.0, f.api.ReadLight(&missing))
}
