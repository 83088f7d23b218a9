package binding

import "math"

const (
	sensitivityTolerance = 0.01
	deadzoneEpsilon      = 0.01
)

// Analog is one logical continuous control. States are in [0,1] with 0.5
// as the neutral center of bidirectional axes.
type Analog struct {
	Name           string
	DeviceID       string
	Index          uint16
	DeadzoneMirror bool
	Invert         bool
	Smoothing      bool

	OverrideEnabled bool
	OverrideState   float64

	sensitivity    float64
	sensitivitySet bool
	deadzone       float64
	deadzoneSet    bool
	lastState      float64

	filter     angularFilter
	integrator angularIntegrator
}

// NewAnalog creates an unbound analog at its neutral state.
func NewAnalog(name string) Analog {
	return Analog{
		Name:          name,
		Index:         Unbound,
		OverrideState: 0.5,
		sensitivity:   1,
		lastState:     0.5,
	}
}

// IsSet reports whether the analog is bound or overridden.
func (a *Analog) IsSet() bool {
	return a.OverrideEnabled || a.Index != Unbound
}

// Sensitivity is the multiplicative sensitivity, 1 by default.
func (a *Analog) Sensitivity() float64 { return a.sensitivity }

// SetSensitivity stores s; values outside a small band around 1 count as
// configured.
func (a *Analog) SetSensitivity(s float64) {
	a.sensitivity = s
	a.sensitivitySet = s < 1-sensitivityTolerance || 1+sensitivityTolerance < s
}

// SensitivitySet reports whether sensitivity differs from 1.
func (a *Analog) SensitivitySet() bool { return a.sensitivitySet }

// Deadzone is in [-1,1]; positive values shape around the center, negative
// values from the minimum.
func (a *Analog) Deadzone() float64 { return a.deadzone }

// SetDeadzone clamps and stores dz.
func (a *Analog) SetDeadzone(dz float64) {
	a.deadzone = Clamp(dz, -1, 1)
	a.deadzoneSet = math.Abs(dz) > deadzoneEpsilon
}

// DeadzoneSet reports whether a deadzone is configured.
func (a *Analog) DeadzoneSet() bool { return a.deadzoneSet }

// LastState is the most recently resolved state.
func (a *Analog) LastState() float64 { return a.lastState }

// SetLastState caches a resolved state, clamped to [0,1].
func (a *Analog) SetLastState(v float64) { a.lastState = Clamp(v, 0, 1) }

// ClearBindings resets the binding and its shaping parameters.
func (a *Analog) ClearBindings() {
	a.DeviceID = ""
	a.Index = Unbound
	a.SetSensitivity(1)
	a.SetDeadzone(0)
	a.Invert = false
	a.Smoothing = false
}

// SetOverride forces the analog to value until ClearOverride is called.
func (a *Analog) SetOverride(value float64) {
	a.OverrideState = Clamp(value, 0, 1)
	a.OverrideEnabled = true
}

func (a *Analog) ClearOverride() { a.OverrideEnabled = false }
