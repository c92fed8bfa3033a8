// SPDX-License-Identifier: MPL-2.0

// Package config handles newtype CLI configuration using Viper with CUE as
// the file format.
//
// Configuration is read from newtype.cue in the user configuration
// directory (os.UserConfigDir()/newtype), falling back to newtype.cue in the
// working directory. Files are validated against the embedded #Config
// schema. Every key can be overridden by a NEWTYPE_* environment variable,
// e.g. NEWTYPE_GEN_WITNESSES=false.
package config
