// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/newtype/internal/discovery"
	"github.com/invowk/newtype/internal/issue"
	"github.com/invowk/newtype/pkg/decl"
	"github.com/invowk/newtype/pkg/types"
)

func newCheckCommand(app *App) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "check [file | dir]",
		Short: "Validate a declaration file",
		Long: `Validate a declaration file without generating code.

Every problem is reported: schema violations, duplicate names, unparsable
underlying types, unknown capabilities, newtypes that refer to each other,
and capabilities whose requirement a predeclared underlying type does not
meet. Requirements of named types are checked by the compiler once the code
is generated.

With --all the argument is a directory (default: the current one) and every
declaration file below it is checked. Hidden directories, directories
starting with "_", vendor and testdata are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				return checkAll(cmd, app, args)
			}
			f, err := app.loadDeclarations(cmd, args)
			if err != nil {
				return err
			}
			printSummary(cmd, f)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "check every declaration file in the directory tree")
	return cmd
}

func checkAll(cmd *cobra.Command, app *App, args []string) error {
	root, err := app.workingDir()
	if err != nil {
		app.reportError(err)
		return &ExitError{Code: types.ExitFailure}
	}
	if len(args) > 0 {
		root = types.FilesystemPath(args[0])
	}

	res, err := discovery.Discover(root)
	if err != nil {
		app.reportError(issue.NewErrorContext().
			WithOperation("discover declarations").
			WithResource(root.String()).
			WithSuggestion("Pass a directory to check --all").
			Wrap(err).
			BuildError())
		return &ExitError{Code: types.ExitFailure}
	}
	for _, d := range res.Diagnostics {
		if d.Severity == discovery.SeverityError {
			app.logger.Error(d.Message, "path", d.Path, "code", d.Code, "err", d.Cause)
		} else {
			app.logger.Warn(d.Message, "path", d.Path, "code", d.Code)
		}
	}
	if len(res.Files) == 0 {
		app.reportError(issue.NewErrorContext().
			WithOperation("find declarations").
			WithResource(root.String()).
			WithIssue(issue.DeclarationsNotFoundId).
			Wrap(decl.ErrNotFound).
			BuildError())
		return &ExitError{Code: types.ExitFailure}
	}

	var worst types.ExitCode
	for _, df := range res.Files {
		f, err := app.loadDeclarations(cmd, []string{df.Path.String()})
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			worst = max(worst, exitErr.Code)
			continue
		}
		printSummary(cmd, f)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nChecked %d declaration files\n", len(res.Files))
	if worst != types.ExitOK {
		return &ExitError{Code: worst}
	}
	return nil
}

func printSummary(cmd *cobra.Command, f *decl.File) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s %s: %d newtypes in package %s\n",
		SuccessStyle.Render(successIcon), CmdStyle.Render(f.Path.String()), len(f.Newtypes), f.Package)
	for _, nt := range f.Newtypes {
		caps, _ := nt.Capabilities()
		fmt.Fprintf(w, "  %s %s %s\n",
			nt.Name, SubtitleStyle.Render(nt.Underlying.String()), caps)
	}
}
