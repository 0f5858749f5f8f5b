// Package registry implements the in-memory model of a hive-rooted
// registry snapshot: a flat mapping from full key path to Key, each Key
// holding named, typed values.
//
// The tree is deliberately flat. Subkey relationships are never stored as
// parent/child references; they are derived on demand by path-prefix
// comparison (see IsDescendant). This keeps the model free of mutable
// back-references and cyclic ownership.
//
// The package also defines Patch, the result of diffing two snapshots: a
// registry-shaped tree whose entries carry an EntryKind marker so that
// additions, changed values, and the two tombstone flavors are first-class,
// exhaustively switchable cases.
package registry
