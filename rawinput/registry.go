package rawinput

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Registry owns every device known to the process, keyed by identifier.
//
// Removing a device marks it destroyed rather than forgetting it, so
// bindings that still refer to it keep resolving to their cached state.
type Registry struct {
	mu      sync.RWMutex
	devices map[string]*Device
	order   []*Device
	nextID  int
	logger  *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		devices: make(map[string]*Device),
		logger:  logger,
	}
}

// Add registers a device under its Name. Re-adding a destroyed device
// revives the existing entry with the new state.
func (r *Registry) Add(d *Device) error {
	if d == nil || d.Name == "" {
		return fmt.Errorf("rawinput: device needs a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.devices[d.Name]; ok {
		old.Lock()
		alive := old.State != nil
		if !alive {
			old.State = d.State
			old.Desc = d.Desc
			old.OutputPending = true
		}
		old.Unlock()
		if alive {
			return fmt.Errorf("rawinput: device %q already registered", d.Name)
		}
		r.logger.Info("device reattached", "device", d.Name)
		return nil
	}
	d.ID = r.nextID
	r.nextID++
	r.devices[d.Name] = d
	r.order = append(r.order, d)
	r.logger.Info("device added", "device", d.Name, "id", d.ID, "desc", d.Desc)
	return nil
}

// Get returns the device with the given identifier, or nil.
func (r *Registry) Get(name string) *Device {
	if name == "" {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.devices[name]
}

// Devices returns all devices in registration order.
func (r *Registry) Devices() []*Device {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Device, len(r.order))
	copy(out, r.order)
	return out
}

// Remove marks the device destroyed. It reports whether the device existed.
func (r *Registry) Remove(name string) bool {
	d := r.Get(name)
	if d == nil {
		return false
	}
	d.Lock()
	d.State = nil
	d.OutputPending = false
	d.Unlock()
	r.logger.Info("device removed", "device", name)
	return true
}

// FlushOutput calls fn for every device with pending output, while holding
// that device's lock, and clears the pending flag when fn succeeds.
func (r *Registry) FlushOutput(fn func(d *Device) error) error {
	var firstErr error
	for _, d := range r.Devices() {
		d.Lock()
		if d.OutputEnabled && d.OutputPending && d.State != nil {
			if err := fn(d); err != nil {
				r.logger.Warn("output flush failed", "device", d.Name, "error", err)
				if firstErr == nil {
					firstErr = err
				}
			} else {
				d.OutputPending = false
			}
		}
		d.Unlock()
	}
	return firstErr
}

// SetKey updates a keyboard key and its transition timestamp.
// The caller must hold the device lock.
func (s *KeyboardState) SetKey(vkey int, pressed bool, now time.Time) {
	if vkey < 0 || vkey >= len(s.KeyStates) || s.KeyStates[vkey] == pressed {
		return
	}
	s.KeyStates[vkey] = pressed
	if pressed {
		s.KeyDown[vkey] = now
	} else {
		s.KeyUp[vkey] = now
	}
}

// SetKey updates a mouse button and its transition timestamp.
// The caller must hold the device lock.
func (s *MouseState) SetKey(btn int, pressed bool, now time.Time) {
	if btn < 0 || btn >= len(s.KeyStates) || s.KeyStates[btn] == pressed {
		return
	}
	s.KeyStates[btn] = pressed
	if pressed {
		s.KeyDown[btn] = now
	} else {
		s.KeyUp[btn] = now
	}
}

// AddButtonGroup appends a button capability group of n buttons.
func (s *HIDState) AddButtonGroup(names ...string) {
	n := len(names)
	s.ButtonCapsNames = append(s.ButtonCapsNames, names...)
	s.ButtonStates = append(s.ButtonStates, make([]bool, n))
	s.ButtonUp = append(s.ButtonUp, make([]time.Time, n))
	s.ButtonDown = append(s.ButtonDown, make([]time.Time, n))
}

// SetButton updates a button addressed by its flat index across all groups.
// The caller must hold the device lock.
func (s *HIDState) SetButton(index int, pressed bool, now time.Time) {
	if index < 0 {
		return
	}
	for g, states := range s.ButtonStates {
		if index >= len(states) {
			index -= len(states)
			continue
		}
		if states[index] == pressed {
			return
		}
		states[index] = pressed
		if pressed {
			s.ButtonDown[g][index] = now
		} else {
			s.ButtonUp[g][index] = now
		}
		return
	}
}

// NoteOn records a note-on event. The caller must hold the device lock.
func (s *MIDIState) NoteOn(channel, note int, velocity uint8) {
	i, ok := noteIndex(channel, note)
	if !ok {
		return
	}
	s.States[i] = true
	s.StatesEvents[i]++
	s.Velocity[i] = velocity
}

// NoteOff records a note-off event. The caller must hold the device lock.
func (s *MIDIState) NoteOff(channel, note int) {
	i, ok := noteIndex(channel, note)
	if !ok {
		return
	}
	s.States[i] = false
	s.StatesEvents[i]++
}

func noteIndex(channel, note int) (int, bool) {
	if channel < 0 || channel >= MIDIChannels || note < 0 || note >= 128 {
		return 0, false
	}
	return channel*128 + note, true
}
