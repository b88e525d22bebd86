package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/memaccess"
	"github.com/hupe1980/memaccess/strategy"
)

type appCtx struct {
	logFormat string
	logLevel  string
	arch      string

	logger   *memaccess.Logger
	provider *strategy.Provider
}

func newRootCommand() *cobra.Command {
	app := &appCtx{}

	root := &cobra.Command{
		Use:           "memprobe",
		Short:         "inspect memory access strategies on this host",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.logFormat, "log-format", "text", "log format: text or json")
	flags.StringVar(&app.logLevel, "log-level", "info", "minimum log level: debug, info, warn or error")
	flags.StringVar(&app.arch, "arch", "", "resolve strategies for this architecture instead of the host's")

	root.AddCommand(
		app.platformCommand(),
		app.layoutCommand(),
		app.stressCommand(),
		app.dumpCommand(),
	)
	return root
}

func (app *appCtx) init(w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(app.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", app.logLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(app.logFormat) {
	case "text":
		app.logger = memaccess.NewLogger(slog.NewTextHandler(w, opts))
	case "json":
		app.logger = memaccess.NewLogger(slog.NewJSONHandler(w, opts))
	default:
		return fmt.Errorf("invalid --log-format %q: want text or json", app.logFormat)
	}

	if app.arch == "" {
		app.provider = strategy.DefaultProvider()
	} else {
		app.provider = strategy.NewProvider(strategy.WithArch(app.arch))
	}
	return nil
}
