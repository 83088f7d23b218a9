// Package rawinput holds the decoded state of physical input/output devices.
//
// Backends (raw input, HID, MIDI, proprietary buses) own the polling and
// report parsing; they publish their results into the arrays of a Device
// while holding its lock. Consumers lock the device for the duration of a
// single read or write and never across devices.
package rawinput

import (
	"sync"
	"time"
)

// DeviceType is the kind of a device as exposed to binding consumers.
type DeviceType int

const (
	Destroyed DeviceType = iota
	Unknown
	Mouse
	Keyboard
	HID
	MIDI
	SextetOutput
	PIUIO
)

func (t DeviceType) String() string {
	switch t {
	case Destroyed:
		return "destroyed"
	case Mouse:
		return "mouse"
	case Keyboard:
		return "keyboard"
	case HID:
		return "hid"
	case MIDI:
		return "midi"
	case SextetOutput:
		return "sextet"
	case PIUIO:
		return "piuio"
	default:
		return "unknown"
	}
}

// Mouse button indices into MouseState.KeyStates.
const (
	MouseBtnLeft = iota
	MouseBtnRight
	MouseBtnMiddle
	MouseBtn1
	MouseBtn2
	MouseBtn3
	MouseBtn4
	MouseBtn5
)

// Mouse position indices used by analog bindings.
const (
	MousePosX = iota
	MousePosY
	MousePosWheel
)

// Array sizes of the fixed-layout device states.
const (
	MouseKeyCount    = 16
	KeyboardKeyCount = 1024

	MIDIChannels        = 16
	MIDINoteCount       = MIDIChannels * 128
	MIDIPrecisionCount  = MIDIChannels * 32
	MIDISingleCount     = MIDIChannels * 44
	MIDIOnOffCount      = MIDIChannels * 6
	MIDIPitchBendCenter = 0x2000

	SextetLightCount = 100
	PIUIOMaxLights   = 48
)

// State is the type-specific decoded state of a device. The set of
// implementations is closed; switch on the concrete type.
type State interface {
	deviceType() DeviceType
}

// MouseState holds button states and accumulated positions of a mouse.
type MouseState struct {
	KeyStates [MouseKeyCount]bool
	KeyUp     [MouseKeyCount]time.Time
	KeyDown   [MouseKeyCount]time.Time

	PosX     int64
	PosY     int64
	PosWheel int64
}

// KeyboardState holds per virtual-key states of a keyboard.
type KeyboardState struct {
	KeyStates [KeyboardKeyCount]bool
	KeyUp     [KeyboardKeyCount]time.Time
	KeyDown   [KeyboardKeyCount]time.Time
}

// HIDState holds the decoded input and output capabilities of a HID device.
//
// Button capabilities are grouped as reported by the descriptor; a binding
// index addresses them as one flat range, group after group.
type HIDState struct {
	ButtonCapsNames []string
	ButtonStates    [][]bool
	ButtonUp        [][]time.Time
	ButtonDown      [][]time.Time

	ValueCapsNames  []string
	ValueStates     []float64 // normalized to [0,1], negative for a neutral hat
	ValueStatesRaw  []int32

	ButtonOutputCapsNames []string
	ButtonOutputStates    [][]bool
	ValueOutputCapsNames  []string
	ValueOutputStates     []float64
}

// MIDIState holds the decoded state of a MIDI input device.
type MIDIState struct {
	States            []bool  // note held, 16 channels * 128 notes
	StatesEvents      []uint8 // on/off events not yet consumed
	Velocity          []uint8
	ControlsPrecision []uint16 // 14-bit
	ControlsSingle    []uint8  // 7-bit
	ControlsOnOff     []bool
	PitchBend         uint16 // 14-bit
}

// NewMIDIState allocates the fixed channel layout of a MIDI device with the
// pitch bend centered.
func NewMIDIState() *MIDIState {
	return &MIDIState{
		States:            make([]bool, MIDINoteCount),
		StatesEvents:      make([]uint8, MIDINoteCount),
		Velocity:          make([]uint8, MIDINoteCount),
		ControlsPrecision: make([]uint16, MIDIPrecisionCount),
		ControlsSingle:    make([]uint8, MIDISingleCount),
		ControlsOnOff:     make([]bool, MIDIOnOffCount),
		PitchBend:         MIDIPitchBendCenter,
	}
}

// LightPusher sends a complete light frame to a sextet board.
type LightPusher interface {
	PushLights(lights []bool) error
}

// SextetState is the light output state of a sextet stream device.
type SextetState struct {
	Lights [SextetLightCount]bool
	Pusher LightPusher
}

// Push sends the current frame, if a pusher is attached.
func (s *SextetState) Push() error {
	if s.Pusher == nil {
		return nil
	}
	return s.Pusher.PushLights(s.Lights[:])
}

// PIUIODriver is the driver of a PIUIO board.
type PIUIODriver interface {
	IsPressed(index int) bool
	SetLight(index int, on bool)
}

// PIUIOState wraps the driver of a PIUIO board.
type PIUIOState struct {
	Driver PIUIODriver
}

func (*MouseState) deviceType() DeviceType    { return Mouse }
func (*KeyboardState) deviceType() DeviceType { return Keyboard }
func (*HIDState) deviceType() DeviceType      { return HID }
func (*MIDIState) deviceType() DeviceType     { return MIDI }
func (*SextetState) deviceType() DeviceType   { return SextetOutput }
func (*PIUIOState) deviceType() DeviceType    { return PIUIO }

// Device is one physical device known to the registry.
//
// All fields below mu are guarded by it. State is nil once the device has
// been destroyed.
type Device struct {
	ID   int
	Name string // stable identifier bindings refer to
	Desc string

	mu            sync.Mutex
	State         State
	OutputPending bool
	OutputEnabled bool
	InputTime     time.Time
}

// NewDevice creates a device with the given identifier and state.
func NewDevice(name, desc string, state State) *Device {
	return &Device{Name: name, Desc: desc, State: state}
}

func (d *Device) Lock()   { d.mu.Lock() }
func (d *Device) Unlock() { d.mu.Unlock() }

// Type reports the device kind. The caller must hold the lock.
func (d *Device) Type() DeviceType {
	if d.State == nil {
		return Destroyed
	}
	return d.State.deviceType()
}
