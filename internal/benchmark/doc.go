// SPDX-License-Identifier: MPL-2.0

// Package benchmark holds benchmarks for the hot paths of newtype:
//   - declaration parsing and schema validation in every format
//   - code generation
//   - newtype operations next to the same operations on the bare type
//
// Run them with:
//
//	go test -bench=. -benchmem ./internal/benchmark
package benchmark
