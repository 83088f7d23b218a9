package bridge_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadeio/bindcore/binding"
	"github.com/arcadeio/bindcore/bridge"
	"github.com/arcadeio/bindcore/gameapi"
	"github.com/arcadeio/bindcore/games"
	"github.com/arcadeio/bindcore/rawinput"
)

func newBridge(t *testing.T) (*bridge.Bridge, *rawinput.Registry) {
	t.Helper()
	reg := rawinput.NewRegistry(nil)
	api := gameapi.New(reg, nil)
	api.Keys = rawinput.KeyStateFunc(func(uint16) bool { return false })
	api.Now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

	table, err := games.Open(games.SoundVoltex)
	require.NoError(t, err)
	return bridge.New(api, table, nil), reg
}

func TestButtonWrites(t *testing.T) {
	b, _ := newBridge(t)

	err := b.WriteButtons(map[string]string{
		"BT-A":  "true",
		"BT-B":  "0.4",
		"BT-C":  "false",
		"FX-L":  "loud",
		"Bogus": "1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, bridge.ErrInvalidValue)
	assert.ErrorIs(t, err, games.ErrUnknownControl)

	states := b.ReadButtons()
	assert.Equal(t, bridge.ControlState{State: 1, Enabled: true}, states["BT-A"])
	assert.Equal(t, bridge.ControlState{State: 1, Enabled: true}, states["BT-B"])
	assert.Equal(t, bridge.ControlState{State: 0, Enabled: true}, states["BT-C"])
	assert.Equal(t, bridge.ControlState{State: 0, Enabled: false}, states["FX-L"])

	btb, err := b.Table().Button("BT-B")
	require.NoError(t, err)
	assert.Equal(t, 0.4, btb.OverrideVelocity)
	assert.Equal(t, binding.Pressed, btb.OverrideState)

	require.NoError(t, b.ResetButtons("BT-A"))
	states = b.ReadButtons()
	assert.False(t, states["BT-A"].Enabled)
	assert.True(t, states["BT-B"].Enabled)

	require.NoError(t, b.ResetButtons(""))
	for name, s := range b.ReadButtons() {
		assert.False(t, s.Enabled, name)
	}

	assert.ErrorIs(t, b.ResetButtons("Bogus"), games.ErrUnknownControl)
}

func TestAnalogWrites(t *testing.T) {
	b, _ := newBridge(t)

	require.NoError(t, b.WriteAnalogs(map[string]string{"VOL-L": "0.25", "VOL-R": "7"}))
	states := b.ReadAnalogs()
	assert.Equal(t, bridge.ControlState{State: 0.25, Enabled: true}, states["VOL-L"])
	assert.Equal(t, bridge.ControlState{State: 1, Enabled: true}, states["VOL-R"])

	assert.ErrorIs(t, b.WriteAnalogs(map[string]string{"VOL-L": "NaN"}), bridge.ErrInvalidValue)

	require.NoError(t, b.ResetAnalogs("VOL-L"))
	states = b.ReadAnalogs()
	assert.Equal(t, bridge.ControlState{State: 0.5, Enabled: false}, states["VOL-L"])
	require.NoError(t, b.ResetAnalogs(""))
	assert.False(t, b.ReadAnalogs()["VOL-R"].Enabled)
}

func TestLightWritesReachDevices(t *testing.T) {
	b, reg := newBridge(t)
	hid := &rawinput.HIDState{ValueOutputStates: []float64{0}}
	dev := rawinput.NewDevice("board", "Light Board", hid)
	require.NoError(t, reg.Add(dev))

	woofer, err := b.Table().Light("Woofer")
	require.NoError(t, err)
	woofer.DeviceID = "board"
	woofer.Index = 0
	woofer.LastState = 0.2

	require.NoError(t, b.WriteLights(map[string]string{"Woofer": "0.9"}))
	assert.Equal(t, 0.9, hid.ValueOutputStates[0])
	assert.Equal(t, bridge.ControlState{State: 0.9, Enabled: true}, b.ReadLights()["Woofer"])
	assert.Equal(t, bridge.ControlState{State: 0.2, Enabled: true}, b.ReadLightsOriginal()["Woofer"])

	var flushed []string
	require.NoError(t, b.Flush(func(d *rawinput.Device) error {
		flushed = append(flushed, d.Name)
		return nil
	}))
	assert.Equal(t, []string{"board"}, flushed)

	require.NoError(t, b.ResetLights("Woofer"))
	assert.Equal(t, 0.2, hid.ValueOutputStates[0])
	assert.Equal(t, bridge.ControlState{State: 0.2, Enabled: false}, b.ReadLights()["Woofer"])

	assert.ErrorIs(t, b.ResetLights("Bogus"), games.ErrUnknownControl)
}

func TestCatalog(t *testing.T) {
	reg := rawinput.NewRegistry(nil)
	api := gameapi.New(reg, nil)
	loads := 0
	cat := bridge.NewCatalog(api, func(table *games.Table) error {
		loads++
		btn, err := table.Button("BT-A")
		require.NoError(t, err)
		btn.VKey = 0x20
		return nil
	}, nil)

	b, err := cat.Get("sound_voltex")
	require.NoError(t, err)
	assert.Equal(t, games.SoundVoltex, b.Game())

	again, err := cat.Get("SOUND VOLTEX")
	require.NoError(t, err)
	assert.Same(t, b, again)
	assert.Equal(t, 1, loads)
	assert.Len(t, cat.Open(), 1)

	btn, err := b.Table().Button("BT-A")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x20), btn.VKey)

	_, err = cat.Get("Pop'n Music")
	assert.ErrorIs(t, err, games.ErrUnknownGame)
}
