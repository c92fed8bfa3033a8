// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

type (
	// FilesystemPath is a path to a declaration file, a generated file or
	// a configuration directory. The zero value is invalid.
	FilesystemPath string

	// InvalidFilesystemPathError is returned when a FilesystemPath value is
	// empty, whitespace-only or contains a NUL byte.
	InvalidFilesystemPathError struct {
		Value FilesystemPath
	}
)

// String returns the string representation of the FilesystemPath.
func (p FilesystemPath) String() string { return string(p) }

// Validate returns an error if the path is empty, whitespace-only or
// contains a NUL byte.
func (p FilesystemPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" || strings.ContainsRune(string(p), 0) {
		return &InvalidFilesystemPathError{Value: p}
	}
	return nil
}

// IsValid returns whether the FilesystemPath is valid, and a list of
// validation errors if it is not.
func (p FilesystemPath) IsValid() (bool, []error) {
	if err := p.Validate(); err != nil {
		return false, []error{err}
	}
	return true, nil
}

// Ext returns the lower-cased file name extension, including the dot.
func (p FilesystemPath) Ext() string {
	return strings.ToLower(filepath.Ext(string(p)))
}

// Base returns the last element of the path.
func (p FilesystemPath) Base() string {
	return filepath.Base(string(p))
}

// Error implements the error interface for InvalidFilesystemPathError.
func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidFilesystemPath for errors.Is() compatibility.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
