package gameapi

import (
	"github.com/arcadeio/bindcore/binding"
	"github.com/arcadeio/bindcore/rawinput"
)

// WriteLight sets a light and broadcasts to its alternatives. An enabled
// override on l wins over value, on l and on every alternative.
func (a *API) WriteLight(l *binding.Light, value float64) {
	value = binding.Clamp(value, 0, 1)
	l.LastState = value

	out := value
	if l.OverrideEnabled {
		out = l.OverrideState
	}
	if dev := a.device(l.DeviceID); dev != nil {
		a.writeDevice(dev, int(l.Index), out)
	}

	for i := range l.Alternatives {
		alt := &l.Alternatives[i]
		if l.OverrideEnabled {
			alt.OverrideEnabled = true
			alt.OverrideState = l.OverrideState
			a.WriteLight(alt, l.OverrideState)
		} else {
			alt.OverrideEnabled = false
			a.WriteLight(alt, value)
		}
	}
}

// ReadLight returns the effective value of a light.
func (a *API) ReadLight(l *binding.Light) float64 {
	if l.OverrideEnabled {
		return l.OverrideState
	}
	return l.LastState
}

// ReadDeviceLight reads back an output of a HID device. Anything else, and
// any index out of range, reads as 0.
func (a *API) ReadDeviceLight(dev *rawinput.Device, index int) float64 {
	if dev == nil || index < 0 {
		return 0
	}
	dev.Lock()
	defer dev.Unlock()
	st, ok := dev.State.(*rawinput.HIDState)
	if !ok {
		return 0
	}
	for _, group := range st.ButtonOutputStates {
		if index < len(group) {
			if group[index] {
				return 1
			}
			return 0
		}
		index -= len(group)
	}
	if index < len(st.ValueOutputStates) {
		return st.ValueOutputStates[index]
	}
	return 0
}

// WriteDeviceLight writes value to output index of dev.
func (a *API) WriteDeviceLight(dev *rawinput.Device, index int, value float64) {
	if dev == nil {
		return
	}
	a.writeDevice(dev, index, binding.Clamp(value, 0, 1))
}

func (a *API) writeDevice(dev *rawinput.Device, index int, value float64) {
	dev.Lock()
	defer dev.Unlock()
	if dev.State == nil {
		return
	}
	dev.OutputEnabled = true

	switch st := dev.State.(type) {
	case *rawinput.HIDState:
		if index < 0 {
			return
		}
		n := index
		for _, group := range st.ButtonOutputStates {
			if n < len(group) {
				on := value > 0.5
				if group[n] != on {
					group[n] = on
					dev.OutputPending = true
				}
				return
			}
			n -= len(group)
		}
		if n < len(st.ValueOutputStates) {
			if st.ValueOutputStates[n] != value {
				st.ValueOutputStates[n] = value
				dev.OutputPending = true
			}
		}

	case *rawinput.SextetState:
		if index < 0 || index >= rawinput.SextetLightCount {
			a.logger().Warn("sextet light index out of range", "device", dev.Name, "index", index)
			return
		}
		st.Lights[index] = value > 0
		if err := st.Push(); err != nil {
			a.logger().Warn("sextet push failed", "device", dev.Name, "error", err)
		}

	case *rawinput.PIUIOState:
		if index < 0 || index >= rawinput.PIUIOMaxLights {
			a.logger().Warn("piuio light index out of range", "device", dev.Name, "index", index)
			return
		}
		if st.Driver != nil {
			st.Driver.SetLight(index, value > 0)
		}
	}
}
