package rawinput

// KeyState reports the global pressed state of a virtual key. Naive button
// bindings read through it instead of a registry device.
type KeyState interface {
	KeyPressed(vkey uint16) bool
}

// KeyStateFunc adapts a function to KeyState.
type KeyStateFunc func(vkey uint16) bool

func (f KeyStateFunc) KeyPressed(vkey uint16) bool { return f(vkey) }
