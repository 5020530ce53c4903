package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/econviz/internal/export"
	"github.com/alexisbeaulieu97/econviz/internal/gallery"
	"github.com/alexisbeaulieu97/econviz/internal/logger"
	"github.com/alexisbeaulieu97/econviz/internal/series"
	"github.com/alexisbeaulieu97/econviz/internal/theme"
)

// AppContext bundles long-lived services created for a command.
type AppContext struct {
	Logger   *logger.Logger
	Themes   *theme.Set
	Gallery  *gallery.Gallery
	Exporter *export.Exporter
	Seed     uint64

	logFile io.Closer
}

// newAppContext loads the themes and wires the gallery. Interactive commands
// never log to the terminal: without --log-file their logs are discarded.
func newAppContext(cmd *cobra.Command, flags *rootFlags, interactive bool) (*AppContext, error) {
	app := &AppContext{}

	log, err := app.openLogger(cmd, flags, interactive)
	if err != nil {
		return nil, newCommandError("configure logging", flags.logFile, err, "Check --log-level and that the --log-file location is writable.")
	}
	app.Logger = log.Component("cli").With("command", cmd.Name())

	app.Seed = flags.seed
	if app.Seed == 0 {
		app.Seed = uint64(time.Now().UnixNano())
	}

	themes, err := theme.NewLoader(log).LoadDir(cmd.Context(), flags.themesDir)
	if err != nil {
		app.Close()
		return nil, newCommandError("load themes", fmt.Sprintf("reading %q", flags.themesDir), err, "Point --themes at a directory of valid *.yaml theme files.")
	}
	app.Themes = themes

	app.Gallery = gallery.New(themes, series.NewCache(app.Seed), log)
	app.Exporter = export.New(log)

	app.Logger.Debug("application ready", "themes", themes.Len(), "seed", app.Seed)
	return app, nil
}

func (a *AppContext) openLogger(cmd *cobra.Command, flags *rootFlags, interactive bool) (*logger.Logger, error) {
	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}

	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		log, err := logger.New(logger.Options{Level: level, Writer: f})
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		a.logFile = f
		return log, nil
	}

	if interactive {
		return logger.Nop(), nil
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
}

// resolveTheme returns name, or the first theme by name when name is empty.
func (a *AppContext) resolveTheme(name string) (theme.Theme, error) {
	if name == "" {
		th, ok := a.Themes.Default()
		if !ok {
			return theme.Theme{}, theme.ErrNoThemes
		}
		return th, nil
	}
	return a.Gallery.Theme(name)
}

// Close releases the log file, if any.
func (a *AppContext) Close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}
