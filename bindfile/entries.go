package bindfile

// File is the on-disk layout of one game's bindings.
type File struct {
	Game    string        `yaml:"game" toml:"game" json:"game"`
	Buttons []ButtonEntry `yaml:"buttons,omitempty" toml:"buttons,omitempty" json:"buttons,omitempty"`
	Analogs []AnalogEntry `yaml:"analogs,omitempty" toml:"analogs,omitempty" json:"analogs,omitempty"`
	Lights  []LightEntry  `yaml:"lights,omitempty" toml:"lights,omitempty" json:"lights,omitempty"`
}

// ButtonEntry is a persisted button binding. Debounce times are seconds.
// A missing vkey leaves the button unbound.
type ButtonEntry struct {
	Name         string        `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	DevID        string        `yaml:"devid,omitempty" toml:"devid,omitempty" json:"devid,omitempty"`
	VKey         *uint16       `yaml:"vkey" toml:"vkey" json:"vkey"`
	AnalogType   string        `yaml:"analogtype,omitempty" toml:"analogtype,omitempty" json:"analogtype,omitempty"`
	DebounceUp   float64       `yaml:"debounce_up,omitempty" toml:"debounce_up,omitempty" json:"debounce_up,omitempty"`
	DebounceDown float64       `yaml:"debounce_down,omitempty" toml:"debounce_down,omitempty" json:"debounce_down,omitempty"`
	Invert       bool          `yaml:"invert,omitempty" toml:"invert,omitempty" json:"invert,omitempty"`
	Alternatives []ButtonEntry `yaml:"alternatives,omitempty" toml:"alternatives,omitempty" json:"alternatives,omitempty"`
}

// AnalogEntry is a persisted analog binding. A missing index leaves it
// unbound and a missing sensitivity means 1.
type AnalogEntry struct {
	Name           string   `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	DevID          string   `yaml:"devid,omitempty" toml:"devid,omitempty" json:"devid,omitempty"`
	Index          *uint16  `yaml:"index" toml:"index" json:"index"`
	Sensitivity    *float64 `yaml:"sensitivity" toml:"sensitivity" json:"sensitivity"`
	Deadzone       float64  `yaml:"deadzone,omitempty" toml:"deadzone,omitempty" json:"deadzone,omitempty"`
	DeadzoneMirror bool     `yaml:"deadzone_mirror,omitempty" toml:"deadzone_mirror,omitempty" json:"deadzone_mirror,omitempty"`
	Invert         bool     `yaml:"invert,omitempty" toml:"invert,omitempty" json:"invert,omitempty"`
	Smoothing      bool     `yaml:"smoothing,omitempty" toml:"smoothing,omitempty" json:"smoothing,omitempty"`
}

// LightEntry is a persisted light binding. A missing index leaves it
// unbound.
type LightEntry struct {
	Name         string       `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	DevID        string       `yaml:"devid,omitempty" toml:"devid,omitempty" json:"devid,omitempty"`
	Index        *uint16      `yaml:"index" toml:"index" json:"index"`
	Alternatives []LightEntry `yaml:"alternatives,omitempty" toml:"alternatives,omitempty" json:"alternatives,omitempty"`
}
