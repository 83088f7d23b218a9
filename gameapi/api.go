// Package gameapi resolves logical controls against the device registry.
//
// Every call is short and synchronous: it locks at most one device at a
// time, reads or writes the fields it needs and releases the lock again.
// Missing devices and out-of-range indices never fail; they resolve to the
// control's cached or neutral value.
package gameapi

import (
	"log/slog"
	"time"

	"github.com/arcadeio/bindcore/rawinput"
)

// API resolves bindings against one device registry.
type API struct {
	Registry *rawinput.Registry
	// Keys is consulted for naive (deviceless) button bindings.
	Keys rawinput.KeyState
	// Now is the clock used for debounce and smoothing.
	Now    func() time.Time
	Logger *slog.Logger
}

// New creates an API over reg reading naive keys from the OS.
func New(reg *rawinput.Registry, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		Registry: reg,
		Keys:     rawinput.OSKeyState(),
		Now:      time.Now,
		Logger:   logger,
	}
}

func (a *API) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *API) device(id string) *rawinput.Device {
	if a.Registry == nil {
		return nil
	}
	return a.Registry.Get(id)
}

func (a *API) keyPressed(vkey uint16) bool {
	if a.Keys == nil {
		return false
	}
	return a.Keys.KeyPressed(vkey)
}

func (a *API) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}
