//go:build !windows

package rawinput

// OSKeyState returns a key state that never reports a press; there is no
// global asynchronous key state outside of Windows.
func OSKeyState() KeyState {
	return KeyStateFunc(func(uint16) bool { return false })
}
