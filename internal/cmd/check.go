package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/arcadeio/bindcore/bindfile"
	"github.com/arcadeio/bindcore/games"
)

// Check validates a bindings file and optionally rewrites it, in any of the
// supported formats.
type Check struct {
	File    string `arg:"" help:"Bindings file (.yaml, .yml, .toml or .json)" type:"existingfile"`
	Game    string `help:"Game the file is for (default: the game named in the file)"`
	Convert string `help:"Write the normalized bindings to this file; the extension picks the format" type:"path"`

	Out io.Writer `kong:"-"`
}

var errNoGame = errors.New("bindings file names no game, pass --game")

func (c *Check) Run(logger *slog.Logger) error {
	counter := newWarnCounter(logger.Handler())
	b, err := bindfile.Load(c.File, slog.New(counter))
	if err != nil {
		return err
	}

	game := c.Game
	if game == "" {
		game = b.Game
	}
	if game == "" {
		return errNoGame
	}
	table, err := games.Open(game)
	if err != nil {
		return err
	}
	unknown := unknownControls(b, table.Definition())
	b.ApplyTo(table)

	out := writerOr(c.Out)
	fmt.Fprintf(out, "%s: %s, %d buttons, %d analogs, %d lights\n", c.File, table.Name(), len(b.Buttons), len(b.Analogs), len(b.Lights))
	for _, name := range unknown {
		fmt.Fprintf(out, "  unknown control %q dropped\n", name)
	}
	if n := counter.Count(); n > 0 {
		fmt.Fprintf(out, "  %d malformed entries skipped\n", n)
	}

	if c.Convert == "" {
		return nil
	}
	if err := bindfile.Save(c.Convert, bindfile.FromTable(table)); err != nil {
		return err
	}
	fmt.Fprintf(out, "written %s\n", c.Convert)
	return nil
}

func unknownControls(b *bindfile.Bindings, def games.Definition) []string {
	known := make(map[string]bool, len(def.Buttons)+len(def.Analogs)+len(def.Lights))
	for _, names := range [][]string{def.Buttons, def.Analogs, def.Lights} {
		for _, n := range names {
			known[n] = true
		}
	}
	var unknown []string
	for i := range b.Buttons {
		if !known[b.Buttons[i].Name] {
			unknown = append(unknown, b.Buttons[i].Name)
		}
	}
	for i := range b.Analogs {
		if !known[b.Analogs[i].Name] {
			unknown = append(unknown, b.Analogs[i].Name)
		}
	}
	for i := range b.Lights {
		if !known[b.Lights[i].Name] {
			unknown = append(unknown, b.Lights[i].Name)
		}
	}
	return unknown
}
