// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/invowk/newtype/internal/issue"
	"github.com/invowk/newtype/pkg/newtype"
	"github.com/invowk/newtype/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "newtype",
		Short: "Generate and check strong type aliases for Go",
		Long: TitleStyle.Render("newtype") + SubtitleStyle.Render(" - strong type aliases for Go") + `

newtype reads a declaration file listing newtypes, each an underlying Go
type plus the capabilities to derive, and generates the tag types, aliases,
definitions and compile-time witnesses that make them distinct types.

Declarations are looked up as newtypes.cue, .toml, .yaml, .yml or .json.

` + SubtitleStyle.Render("Examples:") + `
  newtype check             Validate the declarations in this directory
  newtype gen               Generate newtypes_gen.go
  newtype gen --stdout      Print the generated code
  newtype caps              List the capabilities
  newtype caps Relational   Describe one capability`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
	}
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is newtype.cue in the user config directory)")

	root.AddCommand(
		newGenCommand(app),
		newCheckCommand(app),
		newCapsCommand(app),
		newConfigCommand(app),
	)
	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	lib := newtype.Version().String()
	if Version == "dev" {
		return fmt.Sprintf("dev (built from source, library %s)", lib)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s, library %s)", Version, Commit, BuildDate, lib)
}

// Execute runs the CLI and exits the process with the command's exit code.
// It is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			writeError(w, err, app.verbose)
		}),
	); err != nil {
		os.Exit(int(exitCode(err)))
	}
}

// exitCode returns the process exit code for an error returned by a command.
func exitCode(err error) types.ExitCode {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return types.ExitFailure
}

// writeError prints err unless a command already reported it.
func writeError(w io.Writer, err error, verbose bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// reportError prints err to stderr. With --verbose it also renders the
// catalog entry the error points to.
func (a *App) reportError(err error) {
	writeError(a.stderr, err, a.verbose)

	var ae *issue.ActionableError
	if !a.verbose || !errors.As(err, &ae) || ae.Issue == 0 {
		return
	}
	if iss := issue.Get(ae.Issue); iss != nil {
		rendered, renderErr := iss.Render(a.glamourStyle())
		if renderErr != nil {
			a.logger.Debug("cannot render issue", "error", renderErr)
			rendered = iss.Markdown()
		}
		fmt.Fprint(a.stderr, rendered)
	}
}
