package gameapi

import (
	"time"

	"github.com/arcadeio/bindcore/binding"
	"github.com/arcadeio/bindcore/rawinput"
)

const (
	positiveThreshold = 0.6
	negativeThreshold = 0.4
)

// ButtonState resolves a button. With checkAlts the alternatives are tried
// in declaration order after the primary binding and the first pressed one
// wins.
func (a *API) ButtonState(b *binding.Button, checkAlts bool) binding.ButtonState {
	if b.OverrideEnabled {
		return b.OverrideState
	}
	if a == nil || a.Registry == nil {
		return b.LastState()
	}

	if a.resolveOne(b) == binding.Pressed {
		return binding.Pressed
	}
	if !checkAlts {
		return binding.NotPressed
	}
	for i := range b.Alternatives {
		if a.resolveOne(&b.Alternatives[i]) == binding.Pressed {
			return binding.Pressed
		}
	}
	return binding.NotPressed
}

// resolveOne resolves a single chain entry, inversion applied.
func (a *API) resolveOne(b *binding.Button) binding.ButtonState {
	if b.IsNaive() {
		state := binding.NotPressed
		if b.VKey != binding.Unbound && a.keyPressed(b.VKey) {
			state = binding.Pressed
		}
		if b.Invert {
			state = state.Toggle()
		}
		return state
	}

	state := b.LastState()
	var lastUp, lastDown time.Time
	if dev := a.device(b.DeviceID); dev != nil {
		state, lastUp, lastDown = lockedButton(dev, b, state)
	}

	now := a.now()
	if state == binding.NotPressed {
		if b.DebounceUp > 0 && !lastUp.IsZero() && now.Sub(lastUp) < b.DebounceUp {
			state = binding.Pressed
		}
	} else {
		if b.DebounceDown > 0 && !lastDown.IsZero() && now.Sub(lastDown) < b.DebounceDown {
			state = binding.NotPressed
		}
	}

	b.SetLastState(state)

	if b.Invert {
		state = state.Toggle()
	}
	return state
}

func lockedButton(dev *rawinput.Device, b *binding.Button, cached binding.ButtonState) (binding.ButtonState, time.Time, time.Time) {
	dev.Lock()
	defer dev.Unlock()
	return readButton(dev, b, cached)
}

// readButton decodes the raw state of b from dev, which must be locked.
// Devices without a usable state keep the cached state.
func readButton(dev *rawinput.Device, b *binding.Button, cached binding.ButtonState) (state binding.ButtonState, lastUp, lastDown time.Time) {
	vkey := int(b.VKey)
	switch st := dev.State.(type) {
	case *rawinput.MouseState:
		if vkey < len(st.KeyStates) {
			return pressedIf(st.KeyStates[vkey]), st.KeyUp[vkey], st.KeyDown[vkey]
		}
		return binding.NotPressed, lastUp, lastDown
	case *rawinput.KeyboardState:
		if vkey < len(st.KeyStates) {
			return pressedIf(st.KeyStates[vkey]), st.KeyUp[vkey], st.KeyDown[vkey]
		}
		return binding.NotPressed, lastUp, lastDown
	case *rawinput.HIDState:
		return readHIDButton(st, b)
	case *rawinput.MIDIState:
		return readMIDIButton(st, b), lastUp, lastDown
	case *rawinput.PIUIOState:
		if st.Driver == nil {
			return binding.NotPressed, lastUp, lastDown
		}
		return pressedIf(st.Driver.IsPressed(vkey)), lastUp, lastDown
	default:
		return cached, lastUp, lastDown
	}
}

func readHIDButton(hid *rawinput.HIDState, b *binding.Button) (state binding.ButtonState, lastUp, lastDown time.Time) {
	vkey := int(b.VKey)
	switch {
	case b.AnalogType == binding.AnalogNone:
		for g, states := range hid.ButtonStates {
			if vkey < len(states) {
				var up, down time.Time
				if g < len(hid.ButtonUp) {
					up = stampAt(hid.ButtonUp[g], vkey)
				}
				if g < len(hid.ButtonDown) {
					down = stampAt(hid.ButtonDown[g], vkey)
				}
				return pressedIf(states[vkey]), up, down
			}
			vkey -= len(states)
		}
		return binding.NotPressed, lastUp, lastDown
	case b.AnalogType == binding.AnalogPositive:
		if vkey < len(hid.ValueStates) {
			return pressedIf(hid.ValueStates[vkey] > positiveThreshold), lastUp, lastDown
		}
	case b.AnalogType == binding.AnalogNegative:
		if vkey < len(hid.ValueStates) {
			return pressedIf(hid.ValueStates[vkey] < negativeThreshold), lastUp, lastDown
		}
	case b.AnalogType.IsHat():
		if vkey < len(hid.ValueStates) {
			return pressedIf(hatMatches(hid.ValueStates[vkey], b.AnalogType)), lastUp, lastDown
		}
	}
	return binding.NotPressed, lastUp, lastDown
}

func readMIDIButton(midi *rawinput.MIDIState, b *binding.Button) binding.ButtonState {
	vkey := int(b.VKey)
	switch b.AnalogType {
	case binding.AnalogNone:
		if vkey >= len(midi.StatesEvents) || vkey >= len(midi.States) {
			return binding.NotPressed
		}
		events := midi.StatesEvents[vkey]
		if events == 0 {
			return binding.NotPressed
		}
		// an odd count means the latest unconsumed event was a note-on.
		// A held note keeps its final event so it reads as pressed until
		// released.
		state := pressedIf(events%2 == 1)
		if !midi.States[vkey] || events > 1 {
			midi.StatesEvents[vkey]--
		}
		return state
	case binding.MidiCtrlPrecision:
		if vkey < len(midi.ControlsPrecision) {
			return pressedIf(midi.ControlsPrecision[vkey] > 0)
		}
	case binding.MidiCtrlSingle:
		if vkey < len(midi.ControlsSingle) {
			return pressedIf(midi.ControlsSingle[vkey] > 0)
		}
	case binding.MidiCtrlOnOff:
		if vkey < len(midi.ControlsOnOff) {
			return pressedIf(midi.ControlsOnOff[vkey])
		}
	case binding.MidiPitchDown:
		return pressedIf(midi.PitchBend < rawinput.MIDIPitchBendCenter)
	case binding.MidiPitchUp:
		return pressedIf(midi.PitchBend > rawinput.MIDIPitchBendCenter)
	}
	return binding.NotPressed
}

// stampAt returns the zero time for a missing timestamp, which disables
// debouncing for that read.
func stampAt(stamps []time.Time, i int) time.Time {
	if i < len(stamps) {
		return stamps[i]
	}
	return time.Time{}
}

func pressedIf(v bool) binding.ButtonState {
	if v {
		return binding.Pressed
	}
	return binding.NotPressed
}

// ButtonVelocity returns the strongest velocity across the button and all
// of its alternatives. Only MIDI notes carry a real velocity; every other
// source reports 1 while pressed.
func (a *API) ButtonVelocity(b *binding.Button) float64 {
	if a == nil || a.Registry == nil {
		if b.OverrideEnabled {
			return b.OverrideVelocity
		}
		return b.LastVelocity()
	}
	velocity := a.velocityOne(b)
	for i := range b.Alternatives {
		if v := a.velocityOne(&b.Alternatives[i]); v > velocity {
			velocity = v
		}
	}
	return velocity
}

func (a *API) velocityOne(b *binding.Button) float64 {
	if b.OverrideEnabled {
		return b.OverrideVelocity
	}

	if b.IsNaive() {
		pressed := b.VKey != binding.Unbound && a.keyPressed(b.VKey)
		if pressed != b.Invert {
			return 1
		}
		return 0
	}

	if a.ButtonState(b, false) != binding.Pressed {
		return 0
	}

	dev := a.device(b.DeviceID)
	if dev == nil {
		return b.LastVelocity()
	}

	velocity := lockedVelocity(dev, b)
	b.SetLastVelocity(velocity)
	return velocity
}

func lockedVelocity(dev *rawinput.Device, b *binding.Button) float64 {
	dev.Lock()
	defer dev.Unlock()
	midi, ok := dev.State.(*rawinput.MIDIState)
	if !ok {
		return 1
	}
	velocity := 0.0
	if int(b.VKey) < len(midi.Velocity) {
		velocity = float64(midi.Velocity[b.VKey]) / 127
	}
	if b.Invert {
		velocity = 1 - velocity
	}
	return velocity
}
