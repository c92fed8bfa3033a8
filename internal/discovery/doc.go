// SPDX-License-Identifier: MPL-2.0

// Package discovery finds declaration files in a directory tree.
//
// Each directory contributes at most one file, chosen in the order of
// decl.FileNames, so a tree-wide walk picks the same file that
// decl.Find picks for that directory. Other declaration files in the
// same directory are shadowed and reported as diagnostics.
package discovery
