//go:build windows

package rawinput

import "golang.org/x/sys/windows"

var procGetAsyncKeyState = windows.NewLazySystemDLL("user32.dll").NewProc("GetAsyncKeyState")

type asyncKeyState struct{}

func (asyncKeyState) KeyPressed(vkey uint16) bool {
	if procGetAsyncKeyState.Find() != nil {
		return false
	}
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vkey))
	return r&0x8000 != 0
}

// OSKeyState returns the process-wide asynchronous keyboard state.
func OSKeyState() KeyState { return asyncKeyState{} }
