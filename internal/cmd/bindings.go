package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/arcadeio/bindcore/bindfile"
	"github.com/arcadeio/bindcore/bridge"
	"github.com/arcadeio/bindcore/games"
	"github.com/arcadeio/bindcore/internal/configpaths"
	"github.com/arcadeio/bindcore/rawinput"
)

// bindingsExts is the lookup order of bindings files in a directory.
var bindingsExts = []string{"yaml", "yml", "toml", "json"}

// findBindings returns the bindings file of game in dir, or "" when there
// is none.
func findBindings(dir, game string) string {
	for _, ext := range bindingsExts {
		path := configpaths.BindingsFile(dir, game, ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func resolveBindingsDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	return configpaths.BindingsDir()
}

// bindingsLoader loads a game's file from dir into its table. A game
// without a file stays unbound.
func bindingsLoader(dir string, logger *slog.Logger) bridge.Loader {
	return func(t *games.Table) error {
		path := findBindings(dir, t.Name())
		if path == "" {
			logger.Debug("no bindings file", "game", t.Name(), "dir", dir)
			return nil
		}
		b, err := bindfile.Load(path, logger)
		if err != nil {
			return err
		}
		b.ApplyTo(t)
		logger.Info("bindings loaded", "game", t.Name(), "file", path)
		return nil
	}
}

// Bindings prints the bindings of a game.
type Bindings struct {
	Game string `arg:"" help:"Game name or slug"`
	File string `help:"Bindings file (default: the game's file in the bindings directory)" type:"path"`
	Dir  string `help:"Bindings directory" env:"BINDCORE_BINDINGS_DIR"`

	Out io.Writer `kong:"-"`
}

func (c *Bindings) Run(logger *slog.Logger) error {
	table, err := games.Open(c.Game)
	if err != nil {
		return err
	}
	path := c.File
	if path == "" {
		dir, err := resolveBindingsDir(c.Dir)
		if err != nil {
			return err
		}
		path = findBindings(dir, table.Name())
	}
	if path != "" {
		b, err := bindfile.Load(path, logger)
		if err != nil {
			return err
		}
		b.ApplyTo(table)
	}
	return printBindings(writerOr(c.Out), table, rawinput.NewRegistry(logger))
}

func printBindings(out io.Writer, table *games.Table, reg *rawinput.Registry) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\n", table.Name())
	buttons := table.Buttons()
	for i := range buttons {
		fmt.Fprintf(w, "  button\t%s\t%s\n", buttons[i].Name, orUnbound(buttons[i].DisplayString(reg)))
		for j := range buttons[i].Alternatives {
			alt := &buttons[i].Alternatives[j]
			if s := alt.DisplayString(reg); s != "" {
				fmt.Fprintf(w, "  \t  alt %d\t%s\n", j+1, s)
			}
		}
	}
	analogs := table.Analogs()
	for i := range analogs {
		fmt.Fprintf(w, "  analog\t%s\t%s\n", analogs[i].Name, orUnbound(analogs[i].DisplayString(reg)))
	}
	lights := table.Lights()
	for i := range lights {
		l := &lights[i]
		desc := "unbound"
		if l.IsBound() {
			desc = fmt.Sprintf("%s #%d", l.DeviceID, l.Index)
		}
		fmt.Fprintf(w, "  light\t%s\t%s\n", l.Name, desc)
	}
	return w.Flush()
}

func orUnbound(s string) string {
	if s == "" {
		return "unbound"
	}
	return s
}

func writerOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
