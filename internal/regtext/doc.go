// Package regtext implements the textual .reg format: parsing exported
// registry text into the in-memory tree model and emitting trees (and
// patches) back to text. The diff engine itself never touches this
// package; it is the serialization collaborator on either side of a diff.
//
// Deletion markers follow the format's own conventions: a key tombstone is
// a section path prefixed with '-' ([-HKEY_...\Path]) and a value
// tombstone is "name"=-.
package regtext
