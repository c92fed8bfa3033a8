// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/invowk/newtype/internal/issue"
	"github.com/invowk/newtype/pkg/cueutil"
	"github.com/invowk/newtype/pkg/decl"
	"github.com/invowk/newtype/pkg/newtype"
	"github.com/invowk/newtype/pkg/types"
)

// loadDeclarations resolves the declaration file named by args, or found in
// the working directory, then loads and fully validates it. Failures are
// reported on stderr and returned as *ExitError.
func (a *App) loadDeclarations(cmd *cobra.Command, args []string) (*decl.File, error) {
	path, err := a.resolveDeclarations(args)
	if err != nil {
		a.reportError(err)
		return nil, &ExitError{Code: types.ExitFailure}
	}
	a.logger.Debug("loading declarations", "path", path)

	f, err := decl.Load(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		a.reportError(issue.NewErrorContext().
			WithOperation("load declarations").
			WithResource(path.String()).
			WithSuggestion("Check the file name passed to " + cmd.CommandPath()).
			WithIssue(issue.DeclarationsNotFoundId).
			Wrap(err).
			BuildError())
		return nil, &ExitError{Code: types.ExitFailure}
	case isParseFailure(err):
		a.reportProblems(path, problemsOf(err), issue.DeclarationsParseErrorId)
		return nil, &ExitError{Code: types.ExitInvalid}
	default:
		a.reportError(issue.WrapWithContext(err, "load declarations", path.String()))
		return nil, &ExitError{Code: types.ExitFailure}
	}

	if err := f.Validate(); err != nil {
		id := issue.DeclarationsInvalidId
		switch {
		case errors.Is(err, newtype.ErrInvalidCapability):
			id = issue.UnknownCapabilityId
		case errors.Is(err, decl.ErrCyclicNewtype):
			id = issue.CyclicNewtypeId
		}
		a.reportProblems(path, problemsOf(err), id)
		return nil, &ExitError{Code: types.ExitInvalid}
	}
	if err := f.CheckRequirements(); err != nil {
		a.reportProblems(path, problemsOf(err), issue.UnsupportedCapabilityId)
		return nil, &ExitError{Code: types.ExitInvalid}
	}
	a.logger.Debug("declarations valid", "package", f.Package, "newtypes", len(f.Newtypes))
	return f, nil
}

func (a *App) resolveDeclarations(args []string) (types.FilesystemPath, error) {
	if len(args) > 0 {
		return types.FilesystemPath(args[0]), nil
	}
	dir, err := a.workingDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	path, err := decl.Find(dir)
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("find declarations").
			WithResource(dir.String()).
			WithSuggestion("Create newtypes.cue, or pass the declaration file as an argument").
			WithIssue(issue.DeclarationsNotFoundId).
			Wrap(err).
			BuildError()
	}
	return path, nil
}

func isParseFailure(err error) bool {
	return errors.Is(err, decl.ErrParse) ||
		errors.Is(err, decl.ErrInvalidFormat) ||
		errors.Is(err, cueutil.ErrValidation)
}

// problemsOf returns one message per problem in err.
func problemsOf(err error) []string {
	var ve *cueutil.ValidationError
	if errors.As(err, &ve) && len(ve.Issues) > 0 {
		out := make([]string, len(ve.Issues))
		for i, is := range ve.Issues {
			out[i] = is.String()
		}
		return out
	}
	errs := decl.Flatten(err)
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}

// reportProblems prints a numbered problem list for path. With --verbose it
// also renders the catalog entry id.
func (a *App) reportProblems(path types.FilesystemPath, problems []string, id issue.Id) {
	w := a.stderr
	fmt.Fprintf(w, "%s %s: %d problem(s)\n", ErrorStyle.Render(errorIcon), CmdStyle.Render(path.String()), len(problems))
	for i, p := range problems {
		fmt.Fprintf(w, "  %d. %s\n", i+1, p)
	}

	iss := issue.Get(id)
	if iss == nil {
		return
	}
	if !a.verbose {
		fmt.Fprintln(w, SubtitleStyle.Render("Run with --verbose for help on fixing this."))
		return
	}
	rendered, err := iss.Render(a.glamourStyle())
	if err != nil {
		rendered = iss.Markdown()
	}
	fmt.Fprint(w, rendered)
}
