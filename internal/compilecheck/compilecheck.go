// SPDX-License-Identifier: MPL-2.0

// Package compilecheck type-checks Go source snippets against packages of
// the current module, so tests can assert that code fails to compile and
// with which diagnostic.
package compilecheck

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// ErrNotLoaded is returned by Import for packages outside the loaded graph.
var ErrNotLoaded = errors.New("package not loaded")

// Checker type-checks snippets. It implements types.Importer over a fixed
// set of packages loaded once with go/packages.
type Checker struct {
	fset *token.FileSet
	pkgs map[string]*types.Package
}

// Load loads patterns, and everything they import, from the module rooted
// at or above dir.
func Load(ctx context.Context, dir string, patterns ...string) (*Checker, error) {
	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode:    packages.NeedName | packages.NeedTypes | packages.NeedImports | packages.NeedDeps,
	}
	roots, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", strings.Join(patterns, " "), err)
	}

	c := &Checker{fset: token.NewFileSet(), pkgs: make(map[string]*types.Package)}
	var loadErrs []error
	packages.Visit(roots, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			loadErrs = append(loadErrs, e)
		}
		if p.Types != nil {
			c.pkgs[p.PkgPath] = p.Types
		}
	})
	if len(loadErrs) > 0 {
		return nil, errors.Join(loadErrs...)
	}
	return c, nil
}

// Import implements types.Importer.
func (c *Checker) Import(path string) (*types.Package, error) {
	if p, ok := c.pkgs[path]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotLoaded, path)
}

// Check parses and type-checks one file and returns every error found.
// A nil result means src compiles.
// Check may be called from several goroutines.
func (c *Checker) Check(filename, src string) []error {
	f, err := parser.ParseFile(c.fset, filename, src, parser.AllErrors)
	if err != nil {
		return []error{err}
	}

	var errs []error
	conf := types.Config{
		Importer: c,
		Error:    func(err error) { errs = append(errs, err) },
	}
	// The returned error is the first one reported to Error.
	_, _ = conf.Check(f.Name.Name, c.fset, []*ast.File{f}, nil)
	return errs
}

// Messages returns the messages of errs without positions, one per error.
func Messages(errs []error) []string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		var te types.Error
		if errors.As(err, &te) {
			msgs = append(msgs, te.Msg)
			continue
		}
		msgs = append(msgs, err.Error())
	}
	return msgs
}
