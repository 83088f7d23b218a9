package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/arcadeio/bindcore/games"
)

// Games lists the games with a control table.
type Games struct {
	Controls bool `help:"Also list every control name" short:"c"`

	Out io.Writer `kong:"-"`
}

func (c *Games) Run(_ *slog.Logger) error {
	w := tabwriter.NewWriter(writerOr(c.Out), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GAME\tSLUG\tBUTTONS\tANALOGS\tLIGHTS")
	for _, name := range games.Names() {
		def, err := games.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", def.Name, games.Slug(def.Name), len(def.Buttons), len(def.Analogs), len(def.Lights))
		if !c.Controls {
			continue
		}
		for _, n := range def.Buttons {
			fmt.Fprintf(w, "  button\t%s\n", n)
		}
		for _, n := range def.Analogs {
			fmt.Fprintf(w, "  analog\t%s\n", n)
		}
		for _, n := range def.Lights {
			fmt.Fprintf(w, "  light\t%s\n", n)
		}
	}
	return w.Flush()
}
