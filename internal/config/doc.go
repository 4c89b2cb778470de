// SPDX-License-Identifier: MPL-2.0

// Package config loads the argkit CLI configuration using Viper with CUE as
// the file format.
//
// Values come from, in increasing precedence: built-in defaults, a CUE file
// (the path in ARGKIT_CONFIG, else argkit.cue in the working directory) and
// ARGKIT_* environment variables. The file is validated against the embedded
// #Config schema in config_schema.cue, which rejects unknown fields.
package config
