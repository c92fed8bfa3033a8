// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/invowk/newtype/internal/config"
	"github.com/invowk/newtype/pkg/types"
)

func newConfigCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage newtype configuration",
		Long: `Manage newtype configuration.

Configuration is read from newtype.cue in the user config directory, then
in the working directory. Every key can be overridden with a NEWTYPE_*
environment variable, e.g. NEWTYPE_GEN_WITNESSES=false.`,
	}
	cmd.AddCommand(
		newConfigShowCommand(app),
		newConfigPathCommand(app),
		newConfigInitCommand(app),
		newConfigDumpCommand(app),
	)
	return cmd
}

func newConfigShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			path, err := config.Locate(app.loadOptions())
			if err != nil {
				app.reportError(err)
				return &ExitError{Code: types.ExitFailure}
			}
			if path == "" {
				path = SubtitleStyle.Render("(using defaults)")
			}

			fmt.Fprintln(w, TitleStyle.Render("Configuration"))
			fmt.Fprintf(w, "  %s %s\n\n", SubtitleStyle.Render("file:"), path)
			settings := config.Settings(app.settings())
			for _, key := range config.Keys {
				fmt.Fprintf(w, "  %s = %q\n", CmdStyle.Render(key), settings[key])
			}
			return nil
		},
	}
}

func newConfigPathCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Locate(app.loadOptions())
			if err != nil {
				app.reportError(err)
				return &ExitError{Code: types.ExitFailure}
			}
			if path == "" {
				dir, err := config.ConfigDir()
				if err != nil {
					return err
				}
				app.logger.Debug("no configuration file, defaults apply")
				path = filepath.Join(dir, config.FileName())
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigInitCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, created, err := config.CreateDefaultConfig("")
			if err != nil {
				app.reportError(err)
				return &ExitError{Code: types.ExitFailure}
			}
			w := cmd.OutOrStdout()
			if !created {
				fmt.Fprintf(w, "%s Configuration already exists at %s\n", WarningStyle.Render(warningIcon), CmdStyle.Render(path))
				return nil
			}
			fmt.Fprintf(w, "%s Created %s\n", SuccessStyle.Render(successIcon), CmdStyle.Render(path))
			return nil
		},
	}
}

func newConfigDumpCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(app.settings()))
			return nil
		},
	}
}
