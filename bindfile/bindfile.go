// Package bindfile loads and stores per-game bindings as YAML, TOML or JSON.
//
// Loading is lenient: an entry that cannot be decoded or validated is
// logged and skipped, which leaves that control unbound once the bindings
// are merged into the game's table.
package bindfile

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/arcadeio/bindcore/binding"
	"github.com/arcadeio/bindcore/games"
)

// Bindings are the decoded controls of one game, in file order.
type Bindings struct {
	Game    string
	Buttons []binding.Button
	Analogs []binding.Analog
	Lights  []binding.Light
}

// FromTable snapshots the bindings of a table. The caller must hold at
// least the table's read lock if it is shared.
func FromTable(t *games.Table) *Bindings {
	b := &Bindings{Game: t.Name()}
	b.Buttons = append(b.Buttons, t.Buttons()...)
	b.Analogs = append(b.Analogs, t.Analogs()...)
	b.Lights = append(b.Lights, t.Lights()...)
	return b
}

// ApplyTo merges the bindings into t in canonical order.
func (b *Bindings) ApplyTo(t *games.Table) {
	t.Lock()
	defer t.Unlock()
	t.Apply(b.Buttons, b.Analogs, b.Lights)
}

// Decode parses data. Only a file that cannot be parsed at all is an
// error; bad entries are reported to logger and dropped.
func Decode(data []byte, f Format, logger *slog.Logger) (*Bindings, error) {
	if logger == nil {
		logger = slog.Default()
	}
	doc, err := parse(data, f)
	if err != nil {
		return nil, err
	}

	out := &Bindings{Game: doc.game}
	for i, dec := range doc.buttons {
		var e ButtonEntry
		if err := dec(&e); err != nil {
			logger.Warn("skipping malformed button", "game", doc.game, "entry", i, "error", err)
			continue
		}
		b, err := e.button()
		if err != nil {
			logger.Warn("skipping malformed button", "game", doc.game, "entry", i, "name", e.Name, "error", err)
			continue
		}
		for j, alt := range e.Alternatives {
			alt.Name = e.Name
			ab, err := alt.button()
			if err != nil {
				logger.Warn("alternative left unbound", "game", doc.game, "button", e.Name, "page", j+1, "error", err)
				ab = binding.NewButton(e.Name)
			}
			*b.Alternative(j + 1) = ab
		}
		out.Buttons = append(out.Buttons, b)
	}

	for i, dec := range doc.analogs {
		var e AnalogEntry
		if err := dec(&e); err != nil {
			logger.Warn("skipping malformed analog", "game", doc.game, "entry", i, "error", err)
			continue
		}
		a, err := e.analog()
		if err != nil {
			logger.Warn("skipping malformed analog", "game", doc.game, "entry", i, "name", e.Name, "error", err)
			continue
		}
		out.Analogs = append(out.Analogs, a)
	}

	for i, dec := range doc.lights {
		var e LightEntry
		if err := dec(&e); err != nil {
			logger.Warn("skipping malformed light", "game", doc.game, "entry", i, "error", err)
			continue
		}
		if e.Name == "" {
			logger.Warn("skipping malformed light", "game", doc.game, "entry", i, "error", errNoName)
			continue
		}
		out.Lights = append(out.Lights, e.light(e.Name))
	}
	return out, nil
}

// Encode serializes b. Every control is written, bound or not, so a file
// round-trips to the same table.
func Encode(b *Bindings, f Format) ([]byte, error) {
	file := &File{Game: b.Game}
	for i := range b.Buttons {
		file.Buttons = append(file.Buttons, buttonEntry(&b.Buttons[i], true))
	}
	for i := range b.Analogs {
		file.Analogs = append(file.Analogs, analogEntry(&b.Analogs[i]))
	}
	for i := range b.Lights {
		file.Lights = append(file.Lights, lightEntry(&b.Lights[i], true))
	}
	return encode(file, f)
}

// Load reads a bindings file, picking the codec from its extension.
func Load(path string, logger *slog.Logger) (*Bindings, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bindings: %w", err)
	}
	b, err := Decode(data, f, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Save writes a bindings file, picking the codec from its extension.
func Save(path string, b *Bindings) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(b, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write bindings: %w", err)
	}
	return nil
}

var errNoName = errors.New("missing name")

func (e *ButtonEntry) button() (binding.Button, error) {
	if e.Name == "" {
		return binding.Button{}, errNoName
	}
	b := binding.NewButton(e.Name)
	b.DeviceID = e.DevID
	b.VKey = orUnbound(e.VKey)
	b.Invert = e.Invert
	if e.AnalogType != "" {
		at, err := binding.ParseAnalogType(e.AnalogType)
		if err != nil {
			return binding.Button{}, err
		}
		b.AnalogType = at
	}
	var err error
	if b.DebounceUp, err = seconds(e.DebounceUp); err != nil {
		return binding.Button{}, fmt.Errorf("debounce_up: %w", err)
	}
	if b.DebounceDown, err = seconds(e.DebounceDown); err != nil {
		return binding.Button{}, fmt.Errorf("debounce_down: %w", err)
	}
	return b, nil
}

func seconds(s float64) (time.Duration, error) {
	if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return 0, fmt.Errorf("invalid duration %v", s)
	}
	return time.Duration(math.Round(s * float64(time.Second))), nil
}

func (e *AnalogEntry) analog() (binding.Analog, error) {
	if e.Name == "" {
		return binding.Analog{}, errNoName
	}
	sens := 1.0
	if e.Sensitivity != nil {
		sens = *e.Sensitivity
	}
	if math.IsNaN(sens) || math.IsNaN(e.Deadzone) {
		return binding.Analog{}, errors.New("sensitivity and deadzone must be numbers")
	}
	a := binding.NewAnalog(e.Name)
	a.DeviceID = e.DevID
	a.Index = orUnbound(e.Index)
	a.SetSensitivity(sens)
	a.SetDeadzone(e.Deadzone)
	a.DeadzoneMirror = e.DeadzoneMirror
	a.Invert = e.Invert
	a.Smoothing = e.Smoothing
	return a, nil
}

func (e *LightEntry) light(name string) binding.Light {
	l := binding.NewLight(name)
	l.DeviceID = e.DevID
	l.Index = orUnbound(e.Index)
	for i := range e.Alternatives {
		*l.Alternative(i + 1) = e.Alternatives[i].light(name)
	}
	return l
}

func orUnbound(v *uint16) uint16 {
	if v == nil {
		return binding.Unbound
	}
	return *v
}

func ptr[T any](v T) *T { return &v }

func buttonEntry(b *binding.Button, withAlts bool) ButtonEntry {
	e := ButtonEntry{
		Name:         b.Name,
		DevID:        b.DeviceID,
		VKey:         ptr(b.VKey),
		DebounceUp:   b.DebounceUp.Seconds(),
		DebounceDown: b.DebounceDown.Seconds(),
		Invert:       b.Invert,
	}
	if b.AnalogType != binding.AnalogNone {
		e.AnalogType = b.AnalogType.String()
	}
	if withAlts {
		for i := range b.Alternatives {
			alt := buttonEntry(&b.Alternatives[i], false)
			alt.Name = ""
			e.Alternatives = append(e.Alternatives, alt)
		}
	}
	return e
}

func analogEntry(a *binding.Analog) AnalogEntry {
	return AnalogEntry{
		Name:           a.Name,
		DevID:          a.DeviceID,
		Index:          ptr(a.Index),
		Sensitivity:    ptr(a.Sensitivity()),
		Deadzone:       a.Deadzone(),
		DeadzoneMirror: a.DeadzoneMirror,
		Invert:         a.Invert,
		Smoothing:      a.Smoothing,
	}
}

func lightEntry(l *binding.Light, withAlts bool) LightEntry {
	e := LightEntry{Name: l.Name, DevID: l.DeviceID, Index: ptr(l.Index)}
	if withAlts {
		for i := range l.Alternatives {
			alt := lightEntry(&l.Alternatives[i], false)
			alt.Name = ""
			e.Alternatives = append(e.Alternatives, alt)
		}
	}
	return e
}
