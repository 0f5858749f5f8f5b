// Package regfile reads and writes .reg text, the Windows Registry Editor
// export format, against the snapshot and patch models in pkg/registry.
//
// A snapshot read rejects deletion markers: [-path] and "name"=- describe
// changes, not state, and belong in patch text. ParsePatch accepts both.
package regfile
