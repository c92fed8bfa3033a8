// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for newtype.
//
// The command tree is built by NewRootCommand from an App, which carries the
// configuration provider, the output streams and the logger. Commands render
// their own diagnostics and return *ExitError to select the exit code:
// 0 on success, 1 on failure, 2 when declarations are invalid.
package cmd
