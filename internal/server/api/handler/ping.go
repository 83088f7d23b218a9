package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/arcadeio/bindcore/apitypes"
	"github.com/arcadeio/bindcore/games"
	"github.com/arcadeio/bindcore/internal/server/api"
	"github.com/arcadeio/bindcore/internal/version"
)

// Ping returns a handler for the "ping" endpoint.
// It provides a minimal identity + version response.
func Ping() api.HandlerFunc {
	return func(_ *api.Request, res *api.Response, _ *slog.Logger) error {
		b, err := json.Marshal(apitypes.PingResponse{Server: "bindcore", Version: version.Version})
		if err != nil {
			return err
		}
		res.JSON = string(b)
		return nil
	}
}

// Games lists the games with a control table.
func Games() api.HandlerFunc {
	return func(_ *api.Request, res *api.Response, _ *slog.Logger) error {
		return respond(res, apitypes.GamesResponse{Games: games.Names()})
	}
}

func respond(res *api.Response, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	res.JSON = string(b)
	return nil
}
