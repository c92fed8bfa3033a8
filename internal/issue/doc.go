// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors for the newtype CLI: errors that
// name the failed operation and the file involved, carry suggestions, and
// may point at a Markdown guide from the issue catalog.
package issue
