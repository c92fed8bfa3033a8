// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDocText is the sentinel error wrapped by InvalidDocTextError.
var ErrInvalidDocText = errors.New("invalid doc text")

type (
	// DocText is the documentation attached to a declared newtype and
	// emitted as its Go doc comment. The zero value ("") is valid and means
	// no documentation. Non-zero values must not be whitespace-only and
	// must not contain "*/" or NUL bytes.
	DocText string

	// InvalidDocTextError is returned when a DocText value cannot be
	// rendered as a Go comment.
	InvalidDocTextError struct {
		Value  DocText
		Reason string
	}
)

// String returns the string representation of the DocText.
func (d DocText) String() string { return string(d) }

// Validate returns an error if the DocText cannot be rendered as a comment.
func (d DocText) Validate() error {
	switch {
	case d == "":
		return nil
	case strings.TrimSpace(string(d)) == "":
		return &InvalidDocTextError{Value: d, Reason: "must not be whitespace-only"}
	case strings.Contains(string(d), "*/"):
		return &InvalidDocTextError{Value: d, Reason: `must not contain "*/"`}
	case strings.ContainsRune(string(d), 0):
		return &InvalidDocTextError{Value: d, Reason: "must not contain NUL bytes"}
	}
	return nil
}

// IsValid returns whether the DocText is valid, and a list of validation
// errors if it is not.
func (d DocText) IsValid() (bool, []error) {
	if err := d.Validate(); err != nil {
		return false, []error{err}
	}
	return true, nil
}

// CommentLines renders the text as "//" comment lines. Leading and
// trailing blank lines are dropped; inner blank lines become "//".
func (d DocText) CommentLines() []string {
	text := strings.Trim(strings.ReplaceAll(string(d), "\r\n", "\n"), "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, " \t")
		if l == "" {
			lines = append(lines, "//")
			continue
		}
		lines = append(lines, "// "+l)
	}
	return lines
}

// Error implements the error interface for InvalidDocTextError.
func (e *InvalidDocTextError) Error() string {
	return fmt.Sprintf("invalid doc text %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidDocText for errors.Is() compatibility.
func (e *InvalidDocTextError) Unwrap() error { return ErrInvalidDocText }
