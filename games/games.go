// Package games holds the per-game control tables: the canonical, ordered
// list of button, analog and light names a game reads, and the bindings
// currently attached to them.
package games

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/arcadeio/bindcore/binding"
)

var (
	ErrUnknownGame    = errors.New("unknown game")
	ErrUnknownControl = errors.New("unknown control")
)

// Definition is the static control layout of a game.
type Definition struct {
	Name    string
	Buttons []string
	// ButtonDefaults optionally holds a default vkey per entry of Buttons,
	// applied to buttons that have no saved binding.
	ButtonDefaults []uint16
	Analogs        []string
	Lights         []string
}

var (
	definitions   = make(map[string]Definition)
	definitionsMu sync.RWMutex
)

// Register adds a game definition. Names are matched case-insensitively.
func Register(def Definition) error {
	if def.Name == "" {
		return errors.New("games: definition needs a name")
	}
	if def.ButtonDefaults != nil && len(def.ButtonDefaults) != len(def.Buttons) {
		return fmt.Errorf("games: %s: %d button defaults for %d buttons", def.Name, len(def.ButtonDefaults), len(def.Buttons))
	}
	key := strings.ToLower(def.Name)
	definitionsMu.Lock()
	defer definitionsMu.Unlock()
	if _, ok := definitions[key]; ok {
		return fmt.Errorf("games: %s already registered", def.Name)
	}
	definitions[key] = def
	return nil
}

// MustRegister is Register for package initialization.
func MustRegister(def Definition) {
	if err := Register(def); err != nil {
		panic(err)
	}
}

// Names lists the registered games alphabetically.
func Names() []string {
	definitionsMu.RLock()
	defer definitionsMu.RUnlock()
	names := make([]string, 0, len(definitions))
	for _, def := range definitions {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the definition registered under name, or under a name
// whose Slug equals name.
func Lookup(name string) (Definition, error) {
	definitionsMu.RLock()
	defer definitionsMu.RUnlock()
	if def, ok := definitions[strings.ToLower(name)]; ok {
		return def, nil
	}
	for _, def := range definitions {
		if Slug(def.Name) == name {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %q", ErrUnknownGame, name)
}

// Slug folds a game name into a single lowercase word usable in file names
// and command paths: "Pop'n Music" becomes "popn_music".
func Slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('_')
		}
	}
	return b.String()
}

// SortButtons returns one button per canonical name in canonical order.
// Saved buttons are matched by name; names without a saved button get a
// fresh unbound one, with the vkey from defaults when given.
func SortButtons(saved []binding.Button, names []string, defaults []uint16) []binding.Button {
	sorted := make([]binding.Button, 0, len(names))
	for i, name := range names {
		if b, ok := findButton(saved, name); ok {
			sorted = append(sorted, b)
			continue
		}
		b := binding.NewButton(name)
		if i < len(defaults) {
			b.VKey = defaults[i]
		}
		sorted = append(sorted, b)
	}
	return sorted
}

// SortAnalogs is SortButtons for analogs.
func SortAnalogs(saved []binding.Analog, names []string) []binding.Analog {
	sorted := make([]binding.Analog, 0, len(names))
	for _, name := range names {
		found := false
		for _, a := range saved {
			if a.Name == name {
				sorted = append(sorted, a)
				found = true
				break
			}
		}
		if !found {
			sorted = append(sorted, binding.NewAnalog(name))
		}
	}
	return sorted
}

// SortLights is SortButtons for lights.
func SortLights(saved []binding.Light, names []string) []binding.Light {
	sorted := make([]binding.Light, 0, len(names))
	for _, name := range names {
		found := false
		for _, l := range saved {
			if l.Name == name {
				sorted = append(sorted, l)
				found = true
				break
			}
		}
		if !found {
			sorted = append(sorted, binding.NewLight(name))
		}
	}
	return sorted
}

func findButton(saved []binding.Button, name string) (binding.Button, bool) {
	for _, b := range saved {
		if b.Name == name {
			return b, true
		}
	}
	return binding.Button{}, false
}
