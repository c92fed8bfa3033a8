// SPDX-License-Identifier: MPL-2.0

// newtypelint reports newtype declarations whose underlying type cannot
// support a derived capability, tags that embed a capability marker
// ambiguously, and comparisons that unwrap newtypes of different tags.
//
// Usage:
//
//	newtypelint [-config=newtypelint.toml] [-json] ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/invowk/newtype/tools/newtypelint/newtypelint"
)

func main() {
	singlechecker.Main(newtypelint.Analyzer)
}
