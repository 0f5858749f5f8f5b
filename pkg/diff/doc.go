// Package diff computes the structural difference between two registry
// snapshots and represents it as a registry.Patch: the minimal set of
// additions, deletions, and changes that transforms the old snapshot into
// the new one.
//
// The engine is a pure function over two immutable inputs: it performs no
// I/O, holds no locks, and shares no state across calls, so independent
// diffs may run concurrently without coordination.
//
// The package also provides the inverse direction (Apply replays a patch
// onto a snapshot) and Normalize, which strips entries shadowed by a key
// tombstone from patches that were not produced by this engine.
package diff
