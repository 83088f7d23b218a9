package games

import (
	"fmt"
	"sync"

	"github.com/arcadeio/bindcore/binding"
)

// Table holds the live bindings of one game.
//
// The resolution engine mutates cached state on the bindings it resolves
// and the binding UI rewrites them in place, so every access from more than
// one goroutine goes through the table lock: Lock for resolving or
// rebinding, RLock for read-only inspection.
type Table struct {
	sync.RWMutex

	def     Definition
	buttons []binding.Button
	analogs []binding.Analog
	lights  []binding.Light
}

// NewTable creates a table of unbound controls for def.
func NewTable(def Definition) *Table {
	t := &Table{def: def}
	t.Apply(nil, nil, nil)
	return t
}

// Open creates the table of a registered game.
func Open(name string) (*Table, error) {
	def, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewTable(def), nil
}

func (t *Table) Name() string { return t.def.Name }

func (t *Table) Definition() Definition { return t.def }

// Apply replaces the bindings with saved ones sorted into canonical order.
// Saved controls the game does not know are dropped. The caller must hold
// the write lock if the table is shared.
func (t *Table) Apply(buttons []binding.Button, analogs []binding.Analog, lights []binding.Light) {
	t.buttons = SortButtons(buttons, t.def.Buttons, t.def.ButtonDefaults)
	t.analogs = SortAnalogs(analogs, t.def.Analogs)
	t.lights = SortLights(lights, t.def.Lights)
}

// Buttons returns the table's buttons in canonical order. The slice is
// shared with the table.
func (t *Table) Buttons() []binding.Button { return t.buttons }

func (t *Table) Analogs() []binding.Analog { return t.analogs }

func (t *Table) Lights() []binding.Light { return t.lights }

// Button returns the named button.
func (t *Table) Button(name string) (*binding.Button, error) {
	for i := range t.buttons {
		if t.buttons[i].Name == name {
			return &t.buttons[i], nil
		}
	}
	return nil, fmt.Errorf("%w: button %q in %s", ErrUnknownControl, name, t.def.Name)
}

// Analog returns the named analog.
func (t *Table) Analog(name string) (*binding.Analog, error) {
	for i := range t.analogs {
		if t.analogs[i].Name == name {
			return &t.analogs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: analog %q in %s", ErrUnknownControl, name, t.def.Name)
}

// Light returns the named light.
func (t *Table) Light(name string) (*binding.Light, error) {
	for i := range t.lights {
		if t.lights[i].Name == name {
			return &t.lights[i], nil
		}
	}
	return nil, fmt.Errorf("%w: light %q in %s", ErrUnknownControl, name, t.def.Name)
}
