// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/invowk/newtype/pkg/decl"
	"github.com/invowk/newtype/pkg/types"
)

// ErrNotDirectory is returned when the discovery root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

type (
	// DiscoveredFile is a declaration file found during a walk.
	DiscoveredFile struct {
		// Path is the file, rooted like the directory passed to Discover.
		Path types.FilesystemPath
		// Shadowed lists other declaration files in the same directory.
		Shadowed []types.FilesystemPath
	}

	// Result bundles the discovered files with diagnostics.
	Result struct {
		Files       []DiscoveredFile
		Diagnostics []Diagnostic
	}

	// Option configures Discover.
	Option func(*options)

	options struct {
		skipDirs []string
	}
)

// DefaultSkipDirs are directory names never descended into.
var DefaultSkipDirs = []string{"vendor", "testdata", "node_modules"}

// WithSkipDirs replaces DefaultSkipDirs.
func WithSkipDirs(names ...string) Option {
	return func(o *options) { o.skipDirs = names }
}

// Discover walks root and returns one declaration file per directory, in
// lexical order. Hidden directories and directories whose name starts with
// "_" are skipped like the go tool skips them.
func Discover(root types.FilesystemPath, opts ...Option) (Result, error) {
	o := options{skipDirs: DefaultSkipDirs}
	for _, opt := range opts {
		opt(&o)
	}

	info, err := os.Stat(root.String())
	if err != nil {
		return Result{}, err
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("discover declarations: %s: %w", root, ErrNotDirectory)
	}

	var res Result
	err = filepath.WalkDir(root.String(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root.String() {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Severity: SeverityWarning,
					Code:     CodeUnreadable,
					Message:  "skipping unreadable directory",
					Path:     path,
					Cause:    err,
				})
				return fs.SkipDir
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root.String() && o.skip(d.Name()) {
			return fs.SkipDir
		}
		if f, ok := discoverInDir(path); ok {
			res.Files = append(res.Files, f)
			for _, s := range f.Shadowed {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Severity: SeverityWarning,
					Code:     CodeShadowed,
					Message:  fmt.Sprintf("ignored: %s takes precedence", f.Path.Base()),
					Path:     s.String(),
				})
			}
		}
		return nil
	})
	if err != nil {
		return res, err
	}
	return res, nil
}

func (o options) skip(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || slices.Contains(o.skipDirs, name)
}

// discoverInDir picks the declaration file of one directory.
func discoverInDir(dir string) (DiscoveredFile, bool) {
	var found []types.FilesystemPath
	for _, name := range decl.FileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			found = append(found, types.FilesystemPath(p))
		}
	}
	if len(found) == 0 {
		return DiscoveredFile{}, false
	}
	return DiscoveredFile{Path: found[0], Shadowed: found[1:]}, true
}
