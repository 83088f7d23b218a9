// Package apitypes holds the JSON payloads of the bindcore line API.
package apitypes

// ApiError is the payload of a failed request.
type ApiError struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Server  string `json:"server"`
	Version string `json:"version"`
}

type GamesResponse struct {
	Games []string `json:"games"`
}

// ControlState is the resolved state of one control, and whether a remote
// override currently drives it.
type ControlState struct {
	State   float64 `json:"state"`
	Enabled bool    `json:"enabled"`
}

// ControlsResponse answers every read of a game's buttons, analogs or
// lights, keyed by control name.
type ControlsResponse struct {
	Game     string                  `json:"game"`
	Controls map[string]ControlState `json:"controls"`
}

// WriteResponse reports how many overrides were applied.
type WriteResponse struct {
	Game    string `json:"game"`
	Written int    `json:"written"`
}

type ResetResponse struct {
	Game  string `json:"game"`
	Reset string `json:"reset"`
}

type FlushResponse struct {
	Game    string `json:"game"`
	Devices int    `json:"devices"`
}
