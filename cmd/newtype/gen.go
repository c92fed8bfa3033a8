// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/invowk/newtype/internal/codegen"
	"github.com/invowk/newtype/internal/config"
	"github.com/invowk/newtype/internal/issue"
	"github.com/invowk/newtype/internal/watch"
	"github.com/invowk/newtype/pkg/decl"
	"github.com/invowk/newtype/pkg/fspath"
	"github.com/invowk/newtype/pkg/types"
)

type genFlags struct {
	output    string
	pkg       string
	noWitness bool
	stdout    bool
	watch     bool
}

func newGenCommand(app *App) *cobra.Command {
	var flags genFlags
	cmd := &cobra.Command{
		Use:   "gen [file]",
		Short: "Generate Go code from a declaration file",
		Long: `Generate Go code from a declaration file.

The declarations are validated first; nothing is written if any newtype is
invalid or derives a capability its underlying type cannot support. The
output file defaults to gen.output, next to the declaration file.

With --watch the declarations are regenerated on every change until the
command is interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.watch {
				return watchGen(cmd, app, args, flags)
			}
			return runGen(cmd, app, args, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default gen.output next to the declarations)")
	cmd.Flags().StringVar(&flags.pkg, "package", "", "override the package clause of the generated file")
	cmd.Flags().BoolVar(&flags.noWitness, "no-witness", false, "omit the compile-time witness declarations")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "print the generated code instead of writing it")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "regenerate whenever the declaration file changes")
	return cmd
}

func runGen(cmd *cobra.Command, app *App, args []string, flags genFlags) error {
	f, err := app.loadDeclarations(cmd, args)
	if err != nil {
		return err
	}

	cfg := app.settings()
	opts := codegen.Options{
		Package:   decl.PackageName(flags.pkg),
		Witnesses: cfg.Gen.Witnesses && !flags.noWitness,
		Header:    cfg.Gen.Header,
		Source:    f.Path.Base(),
	}
	res, err := codegen.Generate(f, opts)
	if err != nil {
		app.reportError(issue.NewErrorContext().
			WithOperation("generate code").
			WithResource(f.Path.String()).
			WithSuggestion("Check the value passed to --package").
			Wrap(err).
			BuildError())
		return &ExitError{Code: types.ExitInvalid}
	}
	for _, w := range res.Warnings {
		if w.Newtype == "" {
			app.logger.Warn(w.Message)
			continue
		}
		app.logger.Warn(w.Message, "newtype", w.Newtype)
	}

	if flags.stdout {
		_, err := cmd.OutOrStdout().Write(res.Source)
		return err
	}

	out := outputPath(f.Path, flags.output, cfg.Gen.Output)
	if err := fspath.WriteFile(out, res.Source, 0o644); err != nil {
		app.reportError(issue.NewErrorContext().
			WithOperation("write generated code").
			WithResource(out.String()).
			WithSuggestion("Check that the directory exists and is writable").
			WithSuggestion("Use --stdout to print the code instead").
			WithIssue(issue.OutputWriteFailedId).
			Wrap(err).
			BuildError())
		return &ExitError{Code: types.ExitFailure}
	}
	app.logger.Debug("generated", "output", out, "bytes", len(res.Source))

	fmt.Fprintf(cmd.OutOrStdout(), "%s Generated %s (%d newtypes)\n",
		SuccessStyle.Render(successIcon), CmdStyle.Render(out.String()), len(f.Newtypes))
	return nil
}

// outputPath resolves where generated code goes. The flag is taken as given;
// a relative configured path is resolved against the declaration file's
// directory.
func outputPath(declPath types.FilesystemPath, flag string, configured types.FilesystemPath) types.FilesystemPath {
	if flag != "" {
		return types.FilesystemPath(flag)
	}
	if configured == "" {
		configured = config.DefaultOutput
	}
	if filepath.IsAbs(configured.String()) {
		return configured
	}
	return fspath.Join(fspath.Dir(declPath), configured)
}

// watchGen generates once, then again after every change to the declaration
// file. Failures are reported and watching continues.
func watchGen(cmd *cobra.Command, app *App, args []string, flags genFlags) error {
	path, err := app.resolveDeclarations(args)
	if err != nil {
		app.reportError(err)
		return &ExitError{Code: types.ExitFailure}
	}
	args = []string{path.String()}
	_ = runGen(cmd, app, args, flags)

	w, err := watch.New(watch.Config{
		Dir:      fspath.Dir(path).String(),
		Patterns: []string{path.Base()},
		Logger:   app.logger,
		OnChange: func(context.Context, []string) error {
			app.logger.Info("declarations changed", "path", path)
			_ = runGen(cmd, app, args, flags)
			return nil
		},
	})
	if err != nil {
		app.reportError(issue.WrapWithContext(err, "watch declarations", path.String()))
		return &ExitError{Code: types.ExitFailure}
	}
	app.logger.Info("watching for changes", "path", path)
	return w.Run(cmd.Context())
}
