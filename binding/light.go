package binding

// Light is one logical output. Every write goes to the light's own device
// and to all of its alternatives.
type Light struct {
	Name     string
	DeviceID string
	Index    uint16

	Alternatives []Light

	OverrideEnabled bool
	OverrideState   float64

	// LastState is the last commanded value, kept even when no device is
	// attached.
	LastState float64
}

// NewLight creates an unbound light.
func NewLight(name string) Light {
	return Light{Name: name, Index: Unbound}
}

// IsBound reports whether the light itself has a device binding.
func (l *Light) IsBound() bool { return l.DeviceID != "" }

// Alternative returns binding page n, growing Alternatives as needed.
func (l *Light) Alternative(page int) *Light {
	if page <= 0 {
		return l
	}
	for len(l.Alternatives) < page {
		l.Alternatives = append(l.Alternatives, NewLight(l.Name))
	}
	return &l.Alternatives[page-1]
}

// ClearBindings unbinds the light itself.
func (l *Light) ClearBindings() {
	l.DeviceID = ""
	l.Index = Unbound
}

// SetOverride locks the light at value until ClearOverride is called.
func (l *Light) SetOverride(value float64) {
	l.OverrideState = Clamp(value, 0, 1)
	l.OverrideEnabled = true
}

func (l *Light) ClearOverride() { l.OverrideEnabled = false }
