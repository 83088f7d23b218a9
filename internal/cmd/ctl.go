package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/arcadeio/bindcore/apiclient"
)

// Ctl talks to a running serve command.
type Ctl struct {
	Ping  CtlPing  `cmd:"" help:"Check that the server answers"`
	Games CtlGames `cmd:"" help:"List the games the server knows"`
	Read  CtlRead  `cmd:"" help:"Print the resolved states of a game's controls"`
	Set   CtlSet   `cmd:"" help:"Override controls with NAME=VALUE pairs"`
	Reset CtlReset `cmd:"" help:"Clear overrides"`
	Flush CtlFlush `cmd:"" help:"Send pending light output to the devices"`
}

// CtlConn holds the connection flags shared by the ctl commands.
type CtlConn struct {
	Addr    string        `help:"API server address" default:"127.0.0.1:3243" env:"BINDCORE_API_ADDR"`
	Timeout time.Duration `help:"Request timeout" default:"5s"`

	Out io.Writer `kong:"-"`
}

func (c *CtlConn) client() *apiclient.Client {
	return apiclient.NewWithConfig(c.Addr, &apiclient.Config{
		DialTimeout:  c.Timeout,
		ReadTimeout:  c.Timeout,
		WriteTimeout: c.Timeout,
	})
}

func (c *CtlConn) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.Timeout)
}

func (c *CtlConn) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(writerOr(c.Out), "%s\n", b)
	return err
}

type CtlPing struct {
	CtlConn `embed:""`
}

func (c *CtlPing) Run(_ *slog.Logger) error {
	ctx, cancel := c.context()
	defer cancel()
	res, err := c.client().Ping(ctx)
	if err != nil {
		return err
	}
	return c.print(res)
}

type CtlGames struct {
	CtlConn `embed:""`
}

func (c *CtlGames) Run(_ *slog.Logger) error {
	ctx, cancel := c.context()
	defer cancel()
	res, err := c.client().Games(ctx)
	if err != nil {
		return err
	}
	return c.print(res)
}

type CtlRead struct {
	CtlConn `embed:""`
	Game    string `arg:"" help:"Game name or slug"`
	Kind    string `arg:"" enum:"buttons,analogs,lights,lights/original" help:"Control family"`
}

func (c *CtlRead) Run(_ *slog.Logger) error {
	ctx, cancel := c.context()
	defer cancel()
	res, err := c.client().Read(ctx, c.Game, c.Kind)
	if err != nil {
		return err
	}
	return c.print(res)
}

type CtlSet struct {
	CtlConn `embed:""`
	Game    string   `arg:"" help:"Game name or slug"`
	Kind    string   `arg:"" enum:"buttons,analogs,lights" help:"Control family"`
	Values  []string `arg:"" help:"NAME=VALUE pairs; VALUE is true, false or a number in [0,1]"`
}

func (c *CtlSet) Run(_ *slog.Logger) error {
	values, err := parseAssignments(c.Values)
	if err != nil {
		return err
	}
	ctx, cancel := c.context()
	defer cancel()
	res, err := c.client().Write(ctx, c.Game, c.Kind, values)
	if err != nil {
		return err
	}
	return c.print(res)
}

func parseAssignments(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected NAME=VALUE, got %q", p)
		}
		values[name] = value
	}
	return values, nil
}

type CtlReset struct {
	CtlConn `embed:""`
	Game    string `arg:"" help:"Game name or slug"`
	Kind    string `arg:"" enum:"buttons,analogs,lights" help:"Control family"`
	Name    string `arg:"" optional:"" help:"Control to reset (default: all of the family)"`
}

func (c *CtlReset) Run(_ *slog.Logger) error {
	ctx, cancel := c.context()
	defer cancel()
	res, err := c.client().Reset(ctx, c.Game, c.Kind, c.Name)
	if err != nil {
		return err
	}
	return c.print(res)
}

type CtlFlush struct {
	CtlConn `embed:""`
	Game    string `arg:"" help:"Game name or slug"`
}

func (c *CtlFlush) Run(_ *slog.Logger) error {
	ctx, cancel := c.context()
	defer cancel()
	res, err := c.client().FlushLights(ctx, c.Game)
	if err != nil {
		return err
	}
	return c.print(res)
}
