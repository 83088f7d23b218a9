// Package bridge exposes a game's control table to scripts and remote
// tools: bulk reads of resolved states and bulk override writes keyed by
// control name.
package bridge

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/arcadeio/bindcore/apitypes"
	"github.com/arcadeio/bindcore/binding"
	"github.com/arcadeio/bindcore/gameapi"
	"github.com/arcadeio/bindcore/games"
	"github.com/arcadeio/bindcore/rawinput"
)

// ErrInvalidValue is returned for a state that is not a number, nor
// "true"/"false" for buttons.
var ErrInvalidValue = errors.New("invalid control value")

// ControlState is one entry of a bulk read.
type ControlState = apitypes.ControlState

// Bridge serves one game table. All methods take the table lock.
type Bridge struct {
	api    *gameapi.API
	table  *games.Table
	logger *slog.Logger
}

func New(api *gameapi.API, table *games.Table, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{api: api, table: table, logger: logger}
}

func (b *Bridge) Table() *games.Table { return b.table }

func (b *Bridge) Game() string { return b.table.Name() }

// ReadButtons resolves every button, alternatives included.
func (b *Bridge) ReadButtons() map[string]ControlState {
	b.table.Lock()
	defer b.table.Unlock()
	buttons := b.table.Buttons()
	out := make(map[string]ControlState, len(buttons))
	for i := range buttons {
		btn := &buttons[i]
		state := 0.0
		if b.api.ButtonState(btn, true) == binding.Pressed {
			state = 1
		}
		out[btn.Name] = ControlState{State: state, Enabled: btn.OverrideEnabled}
	}
	return out
}

// ReadAnalogs resolves every analog.
func (b *Bridge) ReadAnalogs() map[string]ControlState {
	b.table.Lock()
	defer b.table.Unlock()
	analogs := b.table.Analogs()
	out := make(map[string]ControlState, len(analogs))
	for i := range analogs {
		a := &analogs[i]
		out[a.Name] = ControlState{State: b.api.AnalogState(a), Enabled: a.OverrideEnabled}
	}
	return out
}

// ReadLights returns the effective value of every light.
func (b *Bridge) ReadLights() map[string]ControlState {
	b.table.RLock()
	defer b.table.RUnlock()
	lights := b.table.Lights()
	out := make(map[string]ControlState, len(lights))
	for i := range lights {
		l := &lights[i]
		out[l.Name] = ControlState{State: b.api.ReadLight(l), Enabled: l.OverrideEnabled}
	}
	return out
}

// ReadLightsOriginal returns what the game last wrote to every light,
// ignoring overrides.
func (b *Bridge) ReadLightsOriginal() map[string]ControlState {
	b.table.RLock()
	defer b.table.RUnlock()
	lights := b.table.Lights()
	out := make(map[string]ControlState, len(lights))
	for i := range lights {
		l := &lights[i]
		out[l.Name] = ControlState{State: l.LastState, Enabled: l.OverrideEnabled}
	}
	return out
}

// WriteButtons overrides buttons. A value is "true", "false" or a number;
// any number above 0 presses the button with that number, clamped, as its
// velocity. Entries that fail are skipped and reported together.
func (b *Bridge) WriteButtons(values map[string]string) error {
	b.table.Lock()
	defer b.table.Unlock()
	var errs []error
	for name, raw := range values {
		v, err := parseButtonValue(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("button %q: %w", name, err))
			continue
		}
		btn, err := b.table.Button(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		state := binding.NotPressed
		if v > 0 {
			state = binding.Pressed
		}
		btn.SetOverride(state, v)
	}
	return b.report("buttons", errs)
}

// WriteAnalogs overrides analogs with clamped values.
func (b *Bridge) WriteAnalogs(values map[string]string) error {
	b.table.Lock()
	defer b.table.Unlock()
	var errs []error
	for name, raw := range values {
		v, err := parseValue(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("analog %q: %w", name, err))
			continue
		}
		a, err := b.table.Analog(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		a.SetOverride(v)
	}
	return b.report("analogs", errs)
}

// WriteLights overrides lights and pushes the override to their devices.
func (b *Bridge) WriteLights(values map[string]string) error {
	b.table.Lock()
	defer b.table.Unlock()
	var errs []error
	for name, raw := range values {
		v, err := parseValue(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("light %q: %w", name, err))
			continue
		}
		l, err := b.table.Light(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		l.SetOverride(v)
		b.api.WriteLight(l, l.LastState)
	}
	return b.report("lights", errs)
}

// ResetButtons clears the override of the named button, or of every button
// when name is empty.
func (b *Bridge) ResetButtons(name string) error {
	b.table.Lock()
	defer b.table.Unlock()
	if name == "" {
		buttons := b.table.Buttons()
		for i := range buttons {
			buttons[i].ClearOverride()
		}
		return nil
	}
	btn, err := b.table.Button(name)
	if err != nil {
		return err
	}
	btn.ClearOverride()
	return nil
}

// ResetAnalogs is ResetButtons for analogs.
func (b *Bridge) ResetAnalogs(name string) error {
	b.table.Lock()
	defer b.table.Unlock()
	if name == "" {
		analogs := b.table.Analogs()
		for i := range analogs {
			analogs[i].ClearOverride()
		}
		return nil
	}
	a, err := b.table.Analog(name)
	if err != nil {
		return err
	}
	a.ClearOverride()
	return nil
}

// ResetLights clears light overrides and restores the game's last value on
// the devices, alternatives included.
func (b *Bridge) ResetLights(name string) error {
	b.table.Lock()
	defer b.table.Unlock()
	reset := func(l *binding.Light) {
		l.ClearOverride()
		b.api.WriteLight(l, l.LastState)
	}
	if name == "" {
		lights := b.table.Lights()
		for i := range lights {
			reset(&lights[i])
		}
		return nil
	}
	l, err := b.table.Light(name)
	if err != nil {
		return err
	}
	reset(l)
	return nil
}

// Flush hands pending device output to send.
func (b *Bridge) Flush(send func(*rawinput.Device) error) error {
	if b.api.Registry == nil {
		return nil
	}
	return b.api.Registry.FlushOutput(send)
}

func (b *Bridge) report(kind string, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	err := errors.Join(errs...)
	b.logger.Debug("partial write", "game", b.table.Name(), "kind", kind, "error", err)
	return err
}

func parseButtonValue(raw string) (float64, error) {
	switch strings.TrimSpace(raw) {
	case "true":
		return 1, nil
	case "false":
		return 0, nil
	}
	return parseValue(raw)
}

func parseValue(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}
	return binding.Clamp(v, 0, 1), nil
}
