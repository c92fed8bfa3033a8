// SPDX-License-Identifier: MPL-2.0

package testutil

// SampleDeclarations is a valid newtypes.cue covering a named underlying
// type, a bundle and a doc comment.
const SampleDeclarations = `"package": "units"
imports: ["time"]
newtypes: [{
	name:       "Meters"
	underlying: "int32"
	derive: ["Equality", "Ordering", "Addable", "Printable"]
	doc:        "Meters is a length in meters."
}, {
	name:       "Timeout"
	underlying: "time.Duration"
	derive: ["Ordering", "Printable"]
}]
`

// UnmetDeclarations is schema-valid but asks for capabilities its
// underlying types cannot provide.
const UnmetDeclarations = `"package": "units"
newtypes: [{
	name:       "Label"
	underlying: "[]byte"
	derive: ["Ordering", "Hashable"]
}]
`
