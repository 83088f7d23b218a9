package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arcadeio/bindcore/apitypes"
)

// Client is the typed interface to the bindcore API.
type Client struct{ transport *Transport }

// New constructs a client for the API server at addr (host:port).
func New(addr string) *Client { return &Client{transport: NewTransport(addr)} }

// NewWithConfig constructs a client with custom transport timeouts.
func NewWithConfig(addr string, cfg *Config) *Client {
	return &Client{transport: NewTransportWithConfig(addr, cfg)}
}

// WithTransport constructs a Client over t, a mock transport in tests.
func WithTransport(t *Transport) *Client { return &Client{transport: t} }

func (c *Client) Ping(ctx context.Context) (*apitypes.PingResponse, error) {
	line, err := c.transport.DoCtx(ctx, "ping", nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.PingResponse](line)
}

func (c *Client) Games(ctx context.Context) (*apitypes.GamesResponse, error) {
	line, err := c.transport.DoCtx(ctx, "games", nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.GamesResponse](line)
}

// Read resolves every control of kind ("buttons", "analogs", "lights" or
// "lights/original") of game.
func (c *Client) Read(ctx context.Context, game, kind string) (*apitypes.ControlsResponse, error) {
	line, err := c.transport.DoCtx(ctx, "{game}/"+kind, nil, map[string]string{"game": game})
	if err != nil {
		return nil, err
	}
	return parse[apitypes.ControlsResponse](line)
}

// Write overrides controls of kind. Values are numbers, bools or strings.
func (c *Client) Write(ctx context.Context, game, kind string, values map[string]any) (*apitypes.WriteResponse, error) {
	line, err := c.transport.DoCtx(ctx, "{game}/"+kind+"/set", values, map[string]string{"game": game})
	if err != nil {
		return nil, err
	}
	return parse[apitypes.WriteResponse](line)
}

// Reset clears the override of the named control, or all of kind when name
// is empty.
func (c *Client) Reset(ctx context.Context, game, kind, name string) (*apitypes.ResetResponse, error) {
	line, err := c.transport.DoCtx(ctx, "{game}/"+kind+"/reset", name, map[string]string{"game": game})
	if err != nil {
		return nil, err
	}
	return parse[apitypes.ResetResponse](line)
}

// FlushLights sends pending light output to the devices.
func (c *Client) FlushLights(ctx context.Context, game string) (*apitypes.FlushResponse, error) {
	line, err := c.transport.DoCtx(ctx, "{game}/lights/flush", nil, map[string]string{"game": game})
	if err != nil {
		return nil, err
	}
	return parse[apitypes.FlushResponse](line)
}

func parse[T any](line string) (*T, error) {
	if line == "" {
		return nil, errors.New("empty response")
	}
	var ae apitypes.ApiError
	if err := json.Unmarshal([]byte(line), &ae); err == nil && ae.Error != "" {
		return nil, errors.New(ae.Error)
	}
	var out T
	dec := json.NewDecoder(bytes.NewReader([]byte(line)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &out, nil
}
