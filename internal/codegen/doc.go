// SPDX-License-Identifier: MPL-2.0

// Package codegen renders a decl.File as Go source: one tag type per
// newtype embedding its capability markers, a type alias over
// newtype.Type, a validated definition and compile-time witnesses.
package codegen
