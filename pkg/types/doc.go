// Package types defines the shared vocabulary for registry snapshot diffing:
// hive designations, Windows registry value type codes, typed errors with
// stable categories, and codec options for the textual .reg format.
//
// This package has no dependencies beyond the standard library.
package types
