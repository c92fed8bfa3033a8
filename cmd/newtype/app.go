// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/invowk/newtype/internal/config"
	"github.com/invowk/newtype/pkg/types"
)

// skipConfigAnnotation marks commands that must run even when the
// configuration file is broken.
const skipConfigAnnotation = "newtype.skip-config"

type (
	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config  ConfigProvider
		Stdout  io.Writer
		Stderr  io.Writer
		WorkDir string
	}

	// App wires CLI services and shared state. Every command handler
	// receives the App.
	App struct {
		Config ConfigProvider

		stdout  io.Writer
		stderr  io.Writer
		workDir string

		// Set from global flags.
		verbose bool
		cfgFile string

		cfg    *config.Config
		logger *log.Logger
	}
)

// NewApp builds an App from deps.
func NewApp(deps Dependencies) *App {
	a := &App{
		Config:  deps.Config,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
		workDir: deps.WorkDir,
	}
	if a.Config == nil {
		a.Config = config.NewProvider()
	}
	if a.stdout == nil {
		a.stdout = os.Stdout
	}
	if a.stderr == nil {
		a.stderr = os.Stderr
	}
	a.logger = newLogger(a.stderr, false, config.LogLevelInfo)
	return a
}

func newLogger(w io.Writer, verbose bool, level config.LogLevel) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "newtype"})
	lvl, err := log.ParseLevel(level.String())
	if err != nil {
		lvl = log.InfoLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// setup loads the configuration for cmd and rebuilds the logger from it.
func (a *App) setup(cmd *cobra.Command) error {
	if cmd.Annotations[skipConfigAnnotation] != "" {
		a.logger = newLogger(a.stderr, a.verbose, config.LogLevelInfo)
		return nil
	}
	cfg, err := a.Config.Load(cmd.Context(), a.loadOptions())
	if err != nil {
		a.reportError(err)
		return &ExitError{Code: types.ExitFailure}
	}
	a.cfg = cfg
	a.logger = newLogger(a.stderr, a.verbose, cfg.Log.Level)
	a.logger.Debug("configuration loaded", "witnesses", cfg.Gen.Witnesses, "output", cfg.Gen.Output)
	return nil
}

func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: types.FilesystemPath(a.cfgFile),
		WorkDir:        types.FilesystemPath(a.workDir),
	}
}

// settings returns the loaded configuration, or the defaults.
func (a *App) settings() *config.Config {
	if a.cfg == nil {
		return config.DefaultConfig()
	}
	return a.cfg
}

// workingDir returns the directory declarations are searched in.
func (a *App) workingDir() (types.FilesystemPath, error) {
	if a.workDir != "" {
		return types.FilesystemPath(a.workDir), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return types.FilesystemPath(wd), nil
}

// glamourStyle maps ui.color_scheme to a glamour standard style.
func (a *App) glamourStyle() string {
	return string(a.settings().UI.ColorScheme)
}
