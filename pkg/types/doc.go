// SPDX-License-Identifier: MPL-2.0

// Package types defines small validated value types shared by the
// declaration loader, the generator and the CLI.
//
// This package is a leaf dependency: it imports only the standard library.
package types
