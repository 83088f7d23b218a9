package hub

import (
	"time"

	"github.com/arcadeio/bindcore/apitypes"
)

// Snapshot holds the resolved state of every control of a game.
type Snapshot struct {
	Buttons map[string]apitypes.ControlState `json:"buttons,omitempty"`
	Analogs map[string]apitypes.ControlState `json:"analogs,omitempty"`
	Lights  map[string]apitypes.ControlState `json:"lights,omitempty"`
}

// IsEmpty reports whether s carries no control at all.
func (s *Snapshot) IsEmpty() bool {
	return len(s.Buttons) == 0 && len(s.Analogs) == 0 && len(s.Lights) == 0
}

// ComputeDelta returns the controls of next whose state differs from prev.
// Controls missing from prev count as changed.
func ComputeDelta(prev, next Snapshot) Snapshot {
	return Snapshot{
		Buttons: diff(prev.Buttons, next.Buttons),
		Analogs: diff(prev.Analogs, next.Analogs),
		Lights:  diff(prev.Lights, next.Lights),
	}
}

func diff(prev, next map[string]apitypes.ControlState) map[string]apitypes.ControlState {
	var out map[string]apitypes.ControlState
	for name, st := range next {
		if old, ok := prev[name]; ok && old == st {
			continue
		}
		if out == nil {
			out = make(map[string]apitypes.ControlState)
		}
		out[name] = st
	}
	return out
}

// Message is the envelope of every frame sent to clients.
type Message struct {
	Type      string    `json:"type"` // "full" or "delta"
	Seq       int64     `json:"seq"`
	Timestamp int64     `json:"timestamp"` // Unix milliseconds
	Game      string    `json:"game"`
	Data      *Snapshot `json:"data"`
}

func newMessage(kind, game string, seq int64, s *Snapshot, now time.Time) *Message {
	return &Message{Type: kind, Seq: seq, Timestamp: now.UnixMilli(), Game: game, Data: s}
}
