package cmd

import (
	"github.com/arcadeio/bindcore/internal/log"
	"github.com/arcadeio/bindcore/rawinput"
)

// outputFrame packs the pending outputs of a HID device into one report:
// button outputs as bits, group after group, each group byte aligned,
// then one byte per value output. Other devices write through their own
// driver and have no frame.
func outputFrame(d *rawinput.Device) []byte {
	st, ok := d.State.(*rawinput.HIDState)
	if !ok {
		return nil
	}
	var frame []byte
	for _, group := range st.ButtonOutputStates {
		packed := make([]byte, (len(group)+7)/8)
		for i, on := range group {
			if on {
				packed[i/8] |= 1 << (i % 8)
			}
		}
		frame = append(frame, packed...)
	}
	for _, v := range st.ValueOutputStates {
		frame = append(frame, byte(v*255+0.5))
	}
	return frame
}

// outputSender returns the flush callback of the serve command. The frame
// goes to the raw logger; device backends hook their writes in here.
func outputSender(raw log.RawLogger) func(*rawinput.Device) error {
	return func(d *rawinput.Device) error {
		if frame := outputFrame(d); len(frame) > 0 {
			raw.Log(d.Name, true, frame)
		}
		return nil
	}
}
