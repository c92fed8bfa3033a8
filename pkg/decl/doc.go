// SPDX-License-Identifier: MPL-2.0

// Package decl loads and validates newtype declaration files.
//
// A declaration file names a Go package and lists newtypes, each with an
// underlying Go type expression and the capabilities to derive:
//
//	"package": "units"
//	imports: ["time"]
//	newtypes: [{
//		name:       "Meters"
//		underlying: "int32"
//		derive: ["Equality", "Ordering", "Addable", "Printable"]
//		doc:        "Meters is a length in meters."
//	}, {
//		name:       "Timeout"
//		underlying: "time.Duration"
//		derive: ["Ordering", "Printable"]
//	}]
//
// The same structure is accepted as TOML, YAML and JSON. Every format is
// checked against one embedded CUE schema and then validated semantically:
// identifiers, duplicate names, type expressions, capability names and,
// for underlying types built from predeclared types only, the capability
// requirements.
package decl
