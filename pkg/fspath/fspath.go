// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath and os
// functions that accept and return types.FilesystemPath, so declaration and
// output paths stay typed from the command line to the file system.
package fspath

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/invowk/newtype/pkg/types"
)

// Join wraps filepath.Join.
func Join(elem ...types.FilesystemPath) types.FilesystemPath {
	strs := make([]string, len(elem))
	for i, e := range elem {
		strs[i] = string(e)
	}
	return types.FilesystemPath(filepath.Join(strs...))
}

// JoinStr joins a typed base path with literal segments such as
// "newtypes.cue".
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Dir wraps filepath.Dir.
func Dir(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Dir(string(p)))
}

// Abs wraps filepath.Abs.
func Abs(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return types.FilesystemPath(abs), nil
}

// Clean wraps filepath.Clean.
func Clean(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Clean(string(p)))
}

// Exists reports whether p names an existing regular file or directory.
// Errors other than fs.ErrNotExist are returned.
func Exists(p types.FilesystemPath) (bool, error) {
	_, err := os.Stat(string(p))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// ReadFile wraps os.ReadFile.
func ReadFile(p types.FilesystemPath) ([]byte, error) {
	return os.ReadFile(string(p))
}

// WriteFile writes data to p, creating parent directories as needed.
func WriteFile(p types.FilesystemPath, data []byte, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(p)), 0o755); err != nil {
		return fmt.Errorf("creating parent directory of %s: %w", p, err)
	}
	return os.WriteFile(string(p), data, perm)
}
