package registry

import "github.com/joshuapare/regdiff/pkg/types"

// EntryKind classifies a patch entry. Modeling removal as its own kind
// (rather than a flag on a normal entry) keeps deletions an explicit,
// exhaustively-switched case in the serializer and the apply path.
type EntryKind int

const (
	EntrySet         EntryKind = iota // concrete value or key present (addition or change)
	EntryKeyDelete                    // remove the key, its values, and all descendants
	EntryValueDelete                  // remove a single named value, keep the key
)

// String implements the Stringer interface for EntryKind.
func (k EntryKind) String() string {
	switch k {
	case EntrySet:
		return "set"
	case EntryKeyDelete:
		return "delete-key"
	case EntryValueDelete:
		return "delete-value"
	default:
		return "unknown"
	}
}

// PatchValue is one value-level patch entry: either a concrete value to
// upsert (EntrySet) or a value tombstone (EntryValueDelete, Value unused).
type PatchValue struct {
	Kind  EntryKind
	Value Value
}

// PatchKey is one key-level patch entry. Kind is EntrySet for a key whose
// values are added or changed, or EntryKeyDelete for a key tombstone. A
// tombstoned key carries no values: descendant and value removal is implied
// transitively.
type PatchKey struct {
	Kind   EntryKind
	Values map[string]PatchValue
}

// Clone returns a deep copy of the patch key.
func (pk *PatchKey) Clone() *PatchKey {
	out := &PatchKey{Kind: pk.Kind}
	if pk.Values != nil {
		out.Values = make(map[string]PatchValue, len(pk.Values))
		for name, pv := range pk.Values {
			pv.Value = pv.Value.clone()
			out.Values[name] = pv
		}
	}
	return out
}

// Patch describes the minimal set of additions, deletions, and changes
// transforming one Registry into another. It is registry-shaped (a hive
// tag plus a path-keyed mapping) so the .reg serializer can render it with
// the format's existing deletion conventions ([-path] and "name"=-).
//
// A Patch is built once, as a whole, and never mutated afterwards.
type Patch struct {
	hive types.Hive
	keys map[string]*PatchKey
}

// NewPatch builds a Patch from a hive and a path -> PatchKey mapping. The
// input map is deep-copied. Unlike registry.New, no ancestor keys are
// synthesized: a patch names only paths with an observable change.
//
// A key-level entry of kind EntryValueDelete is meaningless (value
// tombstones live inside a set entry's value map) and is dropped, so every
// stored entry is either EntrySet or EntryKeyDelete and the serializer can
// render the patch without loss.
func NewPatch(hive types.Hive, keys map[string]*PatchKey) *Patch {
	p := &Patch{hive: hive, keys: make(map[string]*PatchKey, len(keys))}
	for path, pk := range keys {
		if pk.Kind == EntryValueDelete {
			continue
		}
		p.keys[path] = pk.Clone()
	}
	return p
}

// Hive returns the hive shared by the two diffed registries.
func (p *Patch) Hive() types.Hive { return p.hive }

// Len returns the number of key-level entries.
func (p *Patch) Len() int { return len(p.keys) }

// Empty reports whether the patch carries no entries at all, i.e. the two
// snapshots were structurally identical.
func (p *Patch) Empty() bool { return len(p.keys) == 0 }

// Keys returns every patched key path, in no particular order.
func (p *Patch) Keys() []string {
	paths := make([]string, 0, len(p.keys))
	for path := range p.keys {
		paths = append(paths, path)
	}
	return paths
}

// Key looks up a key-level entry by path. The returned entry must be
// treated as read-only.
func (p *Patch) Key(path string) (*PatchKey, bool) {
	pk, ok := p.keys[path]
	return pk, ok
}
