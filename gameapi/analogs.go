package gameapi

import (
	"math"
	"time"

	"github.com/arcadeio/bindcore/binding"
	"github.com/arcadeio/bindcore/rawinput"
)

const (
	mouseAxisModulo  = 257
	mouseWheelModulo = 65
	precisionMax     = 16383
	singleMax        = 127

	// keeps a full-scale reading from smoothing into the 0 angle
	fullTurnNudge = 0.0001
)

// AnalogState resolves an analog to a value in [0,1] and caches it.
func (a *API) AnalogState(an *binding.Analog) float64 {
	if an.OverrideEnabled {
		return an.OverrideState
	}
	dev := a.device(an.DeviceID)
	if dev == nil {
		return an.LastState()
	}
	value, ok := lockedAnalog(dev, an, a.now())
	if !ok {
		return an.LastState()
	}
	an.SetLastState(value)
	return an.LastState()
}

func lockedAnalog(dev *rawinput.Device, an *binding.Analog, now time.Time) (float64, bool) {
	dev.Lock()
	defer dev.Unlock()
	if dev.State == nil {
		return 0, false
	}
	return readAnalog(dev, an, now), true
}

// readAnalog decodes and shapes an analog from dev, which must be locked.
func readAnalog(dev *rawinput.Device, an *binding.Analog, now time.Time) float64 {
	value := 0.5
	index := int(an.Index)
	invert := an.Invert

	switch st := dev.State.(type) {
	case *rawinput.MouseState:
		var pos int64
		switch index {
		case rawinput.MousePosX:
			pos = st.PosX
		case rawinput.MousePosY:
			pos = st.PosY
		case rawinput.MousePosWheel:
			pos = st.PosWheel
		}
		val := int64(math.Round(float64(pos) * an.Sensitivity()))
		if val < 0 {
			invert = !invert
			val = -val
		}
		// wraps instead of saturating so continued motion keeps sweeping
		if index == rawinput.MousePosWheel {
			value = float64(val%mouseWheelModulo) / (mouseWheelModulo - 1)
		} else {
			value = float64(val%mouseAxisModulo) / (mouseAxisModulo - 1)
		}
		if invert {
			value = 1 - value
		}
		return binding.Clamp(value, 0, 1)

	case *rawinput.HIDState:
		if index >= len(st.ValueStates) {
			return value
		}
		value = st.ValueStates[index]
		if invert {
			value = 1 - value
		}
		if an.Smoothing || an.SensitivitySet() {
			rads := value * binding.Tau
			if an.Smoothing {
				if rads >= binding.Tau {
					rads -= fullTurnNudge
				}
				rads = an.SmoothedValue(rads, now)
			}
			if an.SensitivitySet() {
				rads = an.ApplyAngularSensitivity(rads)
			}
			value = rads / binding.Tau
		}

	case *rawinput.MIDIState:
		prec := len(st.ControlsPrecision)
		single := prec + len(st.ControlsSingle)
		onoff := single + len(st.ControlsOnOff)
		switch {
		case index < prec:
			value = float64(st.ControlsPrecision[index]) / precisionMax
		case index < single:
			value = float64(st.ControlsSingle[index-prec]) / singleMax
		case index < onoff:
			value = 0
			if st.ControlsOnOff[index-single] {
				value = 1
			}
		case index == onoff:
			value = float64(st.PitchBend) / precisionMax
		}
		if invert {
			value = 1 - value
		}

	default:
		return value
	}

	if an.DeadzoneSet() {
		value = ShapeDeadzone(value, an.Deadzone(), an.DeadzoneMirror)
	}
	return binding.Clamp(value, 0, 1)
}
