package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/arcadeio/bindcore/apitypes"
	"github.com/arcadeio/bindcore/bridge"
	"github.com/arcadeio/bindcore/internal/server/api"
	"github.com/arcadeio/bindcore/rawinput"
)

// Kind selects the control family a handler serves.
type Kind int

const (
	Buttons Kind = iota
	Analogs
	Lights
)

func (k Kind) String() string {
	switch k {
	case Buttons:
		return "buttons"
	case Analogs:
		return "analogs"
	default:
		return "lights"
	}
}

var errMissingGame = errors.New("missing game parameter")

func gameBridge(cat *bridge.Catalog, req *api.Request) (*bridge.Bridge, error) {
	game, ok := req.Params["game"]
	if !ok {
		return nil, errMissingGame
	}
	return cat.Get(game)
}

// Read returns a handler answering the resolved state of every control of
// kind in the game named by the "game" path parameter.
func Read(cat *bridge.Catalog, kind Kind) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, _ *slog.Logger) error {
		b, err := gameBridge(cat, req)
		if err != nil {
			return err
		}
		var states map[string]bridge.ControlState
		switch kind {
		case Buttons:
			states = b.ReadButtons()
		case Analogs:
			states = b.ReadAnalogs()
		default:
			states = b.ReadLights()
		}
		return respond(res, apitypes.ControlsResponse{Game: b.Game(), Controls: states})
	}
}

// ReadLightsOriginal answers the values the game itself last wrote.
func ReadLightsOriginal(cat *bridge.Catalog) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, _ *slog.Logger) error {
		b, err := gameBridge(cat, req)
		if err != nil {
			return err
		}
		return respond(res, apitypes.ControlsResponse{Game: b.Game(), Controls: b.ReadLightsOriginal()})
	}
}

// Write returns a handler overriding controls from a JSON object payload
// mapping control names to a number, a bool, or a string holding either.
// Valid entries are applied even when others fail.
func Write(cat *bridge.Catalog, kind Kind) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, _ *slog.Logger) error {
		b, err := gameBridge(cat, req)
		if err != nil {
			return err
		}
		values, err := decodeValues(req.Payload())
		if err != nil {
			return err
		}
		switch kind {
		case Buttons:
			err = b.WriteButtons(values)
		case Analogs:
			err = b.WriteAnalogs(values)
		default:
			err = b.WriteLights(values)
		}
		if err != nil {
			return err
		}
		return respond(res, apitypes.WriteResponse{Game: b.Game(), Written: len(values)})
	}
}

// Reset returns a handler clearing the override of the control named by the
// payload, or of every control of kind when the payload is empty.
func Reset(cat *bridge.Catalog, kind Kind) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, _ *slog.Logger) error {
		b, err := gameBridge(cat, req)
		if err != nil {
			return err
		}
		name := req.Payload()
		switch kind {
		case Buttons:
			err = b.ResetButtons(name)
		case Analogs:
			err = b.ResetAnalogs(name)
		default:
			err = b.ResetLights(name)
		}
		if err != nil {
			return err
		}
		reset := name
		if reset == "" {
			reset = kind.String()
		}
		return respond(res, apitypes.ResetResponse{Game: b.Game(), Reset: reset})
	}
}

// FlushLights returns a handler handing every device with pending output to
// send.
func FlushLights(cat *bridge.Catalog, send func(*rawinput.Device) error) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, _ *slog.Logger) error {
		b, err := gameBridge(cat, req)
		if err != nil {
			return err
		}
		n := 0
		err = b.Flush(func(d *rawinput.Device) error {
			n++
			if send == nil {
				return nil
			}
			return send(d)
		})
		if err != nil {
			return err
		}
		return respond(res, apitypes.FlushResponse{Game: b.Game(), Devices: n})
	}
}

func decodeValues(payload string) (map[string]string, error) {
	if payload == "" {
		return nil, errors.New("missing payload")
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}
	values := make(map[string]string, len(raw))
	for name, v := range raw {
		switch t := v.(type) {
		case bool:
			values[name] = strconv.FormatBool(t)
		case float64:
			values[name] = strconv.FormatFloat(t, 'f', -1, 64)
		case string:
			values[name] = t
		default:
			return nil, fmt.Errorf("%s: %w", name, bridge.ErrInvalidValue)
		}
	}
	return values, nil
}

// Register wires every game control endpoint into r.
func Register(r *api.Router, cat *bridge.Catalog, send func(*rawinput.Device) error) {
	r.Register("ping", Ping())
	r.Register("games", Games())
	for _, kind := range []Kind{Buttons, Analogs, Lights} {
		base := "{game}/" + kind.String()
		r.Register(base, Read(cat, kind))
		r.Register(base+"/set", Write(cat, kind))
		r.Register(base+"/reset", Reset(cat, kind))
	}
	r.Register("{game}/lights/original", ReadLightsOriginal(cat))
	r.Register("{game}/lights/flush", FlushLights(cat, send))
}
