package handler_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadeio/bindcore/apiclient"
	"github.com/arcadeio/bindcore/apitypes"
	"github.com/arcadeio/bindcore/bridge"
	"github.com/arcadeio/bindcore/games"
	"github.com/arcadeio/bindcore/internal/server/api"
	"github.com/arcadeio/bindcore/internal/server/api/handler"
	handlerTest "github.com/arcadeio/bindcore/internal/testing"
	"github.com/arcadeio/bindcore/rawinput"
)

func TestPing(t *testing.T) {
	addr, _, done := handlerTest.StartAPIServer(t, func(r *api.Router, _ *bridge.Catalog) {
		r.Register("ping", handler.Ping())
	})
	defer done()

	c := apiclient.NewTransport(addr)
	line, err := c.Do("ping", nil, nil)
	assert.NoError(t, err)

	var out apitypes.PingResponse
	err = json.Unmarshal([]byte(line), &out)
	assert.NoError(t, err)
	assert.Equal(t, "bindcore", out.Server)
	assert.NotEmpty(t, out.Version)
}

func startAll(t *testing.T) (string, *bridge.Catalog, *rawinput.Registry, func()) {
	t.Helper()
	addr, cat, done := handlerTest.StartAPIServer(t, func(r *api.Router, cat *bridge.Catalog) {
		handler.Register(r, cat, nil)
	})
	return addr, cat, cat.API().Registry, done
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name             string
		setup            func(t *testing.T, cat *bridge.Catalog)
		cmd              string
		expectedResponse string
	}{
		{
			name:             "unknown path",
			cmd:              "bus/list",
			expectedResponse: `{"error":"unknown path"}`,
		},
		{
			name:             "unknown game",
			cmd:              "nope/buttons",
			expectedResponse: `{"error":"unknown game: \"nope\""}`,
		},
		{
			name:             "write without payload",
			cmd:              "sound_voltex/buttons/set",
			expectedResponse: `{"error":"missing payload"}`,
		},
		{
			name:             "write with broken payload",
			cmd:              `sound_voltex/analogs/set {"VOL-L":`,
			expectedResponse: `{"error":"invalid payload: unexpected end of JSON input"}`,
		},
		{
			name:             "write analogs",
			cmd:              `sound_voltex/analogs/set {"VOL-L":0.25}`,
			expectedResponse: `{"game":"Sound Voltex","written":1}`,
		},
		{
			name:             "read analogs",
			setup:            overrideAnalog("VOL-R", 0.75),
			cmd:              "sound%20voltex/analogs",
			expectedResponse: `{"game":"Sound Voltex","controls":{"VOL-L":{"state":0.5,"enabled":false},"VOL-R":{"state":0.75,"enabled":true}}}`,
		},
		{
			name:             "reset one analog",
			setup:            overrideAnalog("VOL-R", 0.75),
			cmd:              "sound_voltex/analogs/reset VOL-R",
			expectedResponse: `{"game":"Sound Voltex","reset":"VOL-R"}`,
		},
		{
			name:             "reset all buttons",
			cmd:              "sound_voltex/buttons/reset",
			expectedResponse: `{"game":"Sound Voltex","reset":"buttons"}`,
		},
		{
			name:             "reset unknown light",
			cmd:              "sound_voltex/lights/reset Nope",
			expectedResponse: `{"error":"unknown control: light \"Nope\" in Sound Voltex"}`,
		},
		{
			name:             "partial write reports the failures",
			cmd:              `sound_voltex/buttons/set {"BT-A":true,"Nope":1}`,
			expectedResponse: `{"error":"unknown control: button \"Nope\" in Sound Voltex"}`,
		},
		{
			name:             "nested values are rejected",
			cmd:              `sound_voltex/lights/set {"Woofer":[1]}`,
			expectedResponse: `{"error":"Woofer: invalid control value"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, cat, _, done := startAll(t)
			defer done()
			if tt.setup != nil {
				tt.setup(t, cat)
			}
			assert.Equal(t, tt.expectedResponse, handlerTest.ExecCmd(t, addr, tt.cmd))
		})
	}
}

func overrideAnalog(name string, v float64) func(t *testing.T, cat *bridge.Catalog) {
	return func(t *testing.T, cat *bridge.Catalog) {
		b, err := cat.Get(games.SoundVoltex)
		require.NoError(t, err)
		a, err := b.Table().Analog(name)
		require.NoError(t, err)
		a.SetOverride(v)
	}
}

func TestButtonsThroughClient(t *testing.T) {
	addr, cat, reg, done := startAll(t)
	defer done()

	kbd := &rawinput.KeyboardState{}
	kbd.KeyStates[0x41] = true
	require.NoError(t, reg.Add(rawinput.NewDevice("kbd", "test keyboard", kbd)))

	b, err := cat.Get(games.SoundVoltex)
	require.NoError(t, err)
	btn, err := b.Table().Button("BT-A")
	require.NoError(t, err)
	btn.DeviceID = "kbd"

	c := apiclient.New(addr)
	ctx := context.Background()

	states, err := c.Read(ctx, games.SoundVoltex, "buttons")
	require.NoError(t, err)
	assert.Equal(t, apitypes.ControlState{State: 1}, states.Controls["BT-A"])
	assert.Equal(t, apitypes.ControlState{State: 0}, states.Controls["BT-B"])

	w, err := c.Write(ctx, games.SoundVoltex, "buttons", map[string]any{"BT-A": false, "BT-B": "0.5"})
	require.NoError(t, err)
	assert.Equal(t, 2, w.Written)

	states, err = c.Read(ctx, games.SoundVoltex, "buttons")
	require.NoError(t, err)
	assert.Equal(t, apitypes.ControlState{State: 0, Enabled: true}, states.Controls["BT-A"])
	assert.Equal(t, apitypes.ControlState{State: 1, Enabled: true}, states.Controls["BT-B"])

	_, err = c.Reset(ctx, games.SoundVoltex, "buttons", "")
	require.NoError(t, err)
	states, err = c.Read(ctx, games.SoundVoltex, "buttons")
	require.NoError(t, err)
	assert.Equal(t, apitypes.ControlState{State: 1}, states.Controls["BT-A"])

	list, err := c.Games(ctx)
	require.NoError(t, err)
	assert.Contains(t, list.Games, games.SoundVoltex)
}

func TestLightsFlush(t *testing.T) {
	addr, cat, reg, done := startAll(t)
	defer done()

	hid := &rawinput.HIDState{ValueOutputStates: []float64{0}}
	require.NoError(t, reg.Add(rawinput.NewDevice("hid", "light board", hid)))

	b, err := cat.Get(games.SoundVoltex)
	require.NoError(t, err)
	woofer, err := b.Table().Light("Woofer")
	require.NoError(t, err)
	woofer.DeviceID = "hid"
	woofer.Index = 0

	c := apiclient.New(addr)
	ctx := context.Background()

	_, err = c.Write(ctx, games.SoundVoltex, "lights", map[string]any{"Woofer": 0.75})
	require.NoError(t, err)

	states, err := c.Read(ctx, games.SoundVoltex, "lights")
	require.NoError(t, err)
	assert.Equal(t, apitypes.ControlState{State: 0.75, Enabled: true}, states.Controls["Woofer"])
	original, err := c.Read(ctx, games.SoundVoltex, "lights/original")
	require.NoError(t, err)
	assert.Equal(t, apitypes.ControlState{State: 0, Enabled: true}, original.Controls["Woofer"])

	flushed, err := c.FlushLights(ctx, games.SoundVoltex)
	require.NoError(t, err)
	assert.Equal(t, 1, flushed.Devices)

	flushed, err = c.FlushLights(ctx, games.SoundVoltex)
	require.NoError(t, err)
	assert.Equal(t, 0, flushed.Devices)
}
