// SPDX-License-Identifier: MPL-2.0

// Package testutil holds test fixtures: declaration files that are valid
// (SampleDeclarations) or break requirements (UnmetDeclarations), and
// helpers that write them to disk and fail the test on I/O errors.
package testutil
