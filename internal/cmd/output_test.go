package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcadeio/bindcore/internal/log"
	"github.com/arcadeio/bindcore/rawinput"
)

func TestOutputFrame(t *testing.T) {
	hid := &rawinput.HIDState{
		ButtonOutputStates: [][]bool{
			{true, false, true},
			{false, false, false, false, false, false, false, false, true},
		},
		ValueOutputStates: []float64{0, 0.5, 1},
	}
	assert.Equal(t, []byte{0x05, 0x00, 0x01, 0x00, 0x80, 0xFF}, outputFrame(rawinput.NewDevice("hid", "", hid)))
	assert.Nil(t, outputFrame(rawinput.NewDevice("sextet", "", &rawinput.SextetState{})))

	var buf bytes.Buffer
	send := outputSender(log.NewRaw(&buf))
	assert.NoError(t, send(rawinput.NewDevice("hid", "", hid)))
	assert.Contains(t, buf.String(), "-> hid 6 bytes")
}
