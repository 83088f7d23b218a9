// Package binding models the logical controls a game exposes (buttons,
// analogs, lights) and the physical inputs each one is bound to.
package binding

import "time"

// Unbound is the vkey/index value of a control that is not bound.
const Unbound = 0xFF

// ButtonState is the resolved state of a digital control.
type ButtonState int

const (
	NotPressed ButtonState = iota
	Pressed
)

func (s ButtonState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "not pressed"
}

// Toggle returns the opposite state.
func (s ButtonState) Toggle() ButtonState {
	if s == Pressed {
		return NotPressed
	}
	return Pressed
}

// Button is one logical digital control and its binding.
//
// A button with an empty DeviceID is naive: VKey is read as an OS virtual
// key. Otherwise VKey indexes into the bound device's state arrays.
// Alternatives are OR-ed with the primary binding in declaration order.
type Button struct {
	Name         string
	DeviceID     string
	VKey         uint16
	AnalogType   AnalogType
	Invert       bool
	DebounceUp   time.Duration
	DebounceDown time.Duration

	Alternatives []Button

	OverrideEnabled  bool
	OverrideState    ButtonState
	OverrideVelocity float64

	lastState    ButtonState
	lastVelocity float64
}

// NewButton creates an unbound button.
func NewButton(name string) Button {
	return Button{Name: name, VKey: Unbound}
}

// IsNaive reports whether the button reads OS key state directly.
func (b *Button) IsNaive() bool { return b.DeviceID == "" }

// IsBound reports whether the button itself (not its alternatives) has a
// binding.
func (b *Button) IsBound() bool { return b.VKey != Unbound || b.DeviceID != "" }

// IsSet reports whether the button or any alternative is bound, or an
// override is active.
func (b *Button) IsSet() bool {
	if b.OverrideEnabled || b.IsBound() {
		return true
	}
	for i := range b.Alternatives {
		if b.Alternatives[i].IsBound() {
			return true
		}
	}
	return false
}

// LastState is the most recently resolved state, before inversion.
func (b *Button) LastState() ButtonState { return b.lastState }

// SetLastState caches a resolved state.
func (b *Button) SetLastState(s ButtonState) { b.lastState = s }

// LastVelocity is the most recently resolved velocity.
func (b *Button) LastVelocity() float64 { return b.lastVelocity }

// SetLastVelocity caches a resolved velocity.
func (b *Button) SetLastVelocity(v float64) { b.lastVelocity = v }

// Alternative returns binding page n: page 0 is the button itself and page
// n > 0 is Alternatives[n-1]. Missing pages are appended as unbound copies.
func (b *Button) Alternative(page int) *Button {
	if page <= 0 {
		return b
	}
	for len(b.Alternatives) < page {
		b.Alternatives = append(b.Alternatives, NewButton(b.Name))
	}
	return &b.Alternatives[page-1]
}

// ClearBindings unbinds the button itself, leaving alternatives untouched.
func (b *Button) ClearBindings() {
	b.DeviceID = ""
	b.VKey = Unbound
	b.AnalogType = AnalogNone
	b.Invert = false
	b.DebounceUp = 0
	b.DebounceDown = 0
}

// SetOverride forces the button to state with the given velocity until
// ClearOverride is called.
func (b *Button) SetOverride(state ButtonState, velocity float64) {
	b.OverrideState = state
	b.OverrideVelocity = Clamp(velocity, 0, 1)
	b.OverrideEnabled = true
}

// ClearOverride returns the button to device resolution.
func (b *Button) ClearOverride() { b.OverrideEnabled = false }
