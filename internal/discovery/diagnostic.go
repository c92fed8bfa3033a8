// SPDX-License-Identifier: MPL-2.0

package discovery

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal discovery error.
	SeverityError Severity = "error"

	// CodeShadowed marks a declaration file hidden by a higher-priority one
	// in the same directory.
	CodeShadowed = "declarations_shadowed"
	// CodeUnreadable marks a directory that could not be read.
	CodeUnreadable = "directory_unreadable"
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// Diagnostic is a non-fatal discovery problem. It is returned to callers
	// rather than written anywhere, so the CLI decides how to render it.
	Diagnostic struct {
		Severity Severity
		// Code is a machine-readable identifier such as CodeShadowed.
		Code    string
		Message string
		Path    string
		Cause   error
	}
)
