package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"golang.org/x/term"

	"github.com/arcadeio/bindcore/internal/config"
	"github.com/arcadeio/bindcore/internal/configpaths"
	"github.com/arcadeio/bindcore/internal/log"
)

func main() {
	handlePlainHelpFlag()

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("bindcore"),
		kong.Description(Description()),
		kong.UsageOnError(),
		kong.Help(styledHelp),
		// Flags and env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logger:", err)
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()
	slog.SetDefault(logger)

	rawLogger := setupRawLogger(&cli, logger, &closeFiles)

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func handlePlainHelpFlag() {
	for i, arg := range os.Args[1:] {
		if arg == "-p" {
			os.Setenv("BINDCORE_HELP_STYLE", "plain")
			os.Args[i+1] = "-h"
			return
		}
	}
}

func findUserConfig(args []string) string {
	for i, a := range args {
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("BINDCORE_CONFIG")
}

func setupRawLogger(cli *config.CLI, logger *slog.Logger, closeFiles *[]io.Closer) log.RawLogger {
	if cli.Log.RawFile != "" {
		f, err := os.OpenFile(cli.Log.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cli.Log.RawFile, "error", err)
			return log.NewRaw(nil)
		}
		*closeFiles = append(*closeFiles, f)
		return log.NewRaw(f)
	}
	if strings.EqualFold(cli.Log.Level, "trace") {
		return log.NewRaw(os.Stdout)
	}
	return log.NewRaw(nil)
}

// styledHelp picks the help layout. BINDCORE_HELP_STYLE is "plain",
// "compact" or "tree"; without it the terminal width decides.
func styledHelp(options kong.HelpOptions, ctx *kong.Context) error {
	style := strings.ToLower(os.Getenv("BINDCORE_HELP_STYLE"))
	width := 0
	if style == "" {
		style, width = detectHelpStyle()
	}
	switch style {
	case "tree":
		options.Tree = true
		options.Compact = true
	case "compact":
		options.Compact = true
	}
	if width > 0 {
		options.WrapUpperBound = width
	}
	return kong.DefaultHelpPrinter(options, ctx)
}

func detectHelpStyle() (string, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fd = int(os.Stderr.Fd())
		if !term.IsTerminal(fd) {
			return "plain", 0
		}
	}

	if os.Getenv("TERM") == "dumb" {
		return "plain", 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return "compact", 0
	}

	const (
		treeThreshold    = 140
		compactThreshold = 100
	)
	switch {
	case width >= treeThreshold:
		return "tree", width
	case width >= compactThreshold:
		return "compact", width
	default:
		return "plain", width
	}
}
