// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates user files against embedded CUE schemas.
//
// Declaration files and the CLI configuration share the same flow:
//
//  1. Compile the embedded schema
//  2. Compile user data (or encode a decoded Go value) and unify it with
//     the schema definition
//  3. Validate and decode to a Go struct
//
// Errors carry the CUE path of the offending value:
//
//	result, err := cueutil.ParseAndDecode[decl.File](
//	    schemaBytes,
//	    data,
//	    "#Declarations",
//	    cueutil.WithFilename("newtypes.cue"),
//	)
//	if err != nil {
//	    return nil, err // newtypes.cue: newtypes[0].derive[1]: ...
//	}
package cueutil
