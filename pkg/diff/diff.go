package diff

import (
	"fmt"
	"sort"

	"github.com/joshuapare/regdiff/pkg/registry"
	"github.com/joshuapare/regdiff/pkg/types"
)

// Diff compares two snapshots of the same hive and returns the patch that,
// applied to old, yields new. Both inputs are read-only; the patch is
// built once and complete on return.
//
// Classification per key path:
//   - present only in new: a set entry carrying every value of the key
//   - present only in old: a key tombstone; entries for its descendants
//     are suppressed, since key deletion is implicitly recursive
//   - present in both: per-value comparison; the entry is omitted entirely
//     when no value differs
//
// Returns types.ErrHiveMismatch (wrapped) when the hives differ; no
// partial patch is produced.
func Diff(old, new *registry.Registry) (*registry.Patch, error) {
	return DiffWithOptions(old, new, DefaultOptions())
}

// DiffWithOptions is Diff with an explicit comparison policy.
func DiffWithOptions(old, new *registry.Registry, opts Options) (*registry.Patch, error) {
	if old.Hive() != new.Hive() {
		return nil, fmt.Errorf("diff %s against %s: %w", old.Hive(), new.Hive(), types.ErrHiveMismatch)
	}
	fold := opts.foldFunc()

	oldPaths := indexPaths(old, fold)
	newPaths := indexPaths(new, fold)

	// Union of folded paths, sorted. Sorting is what makes tombstone
	// suppression a single forward pass: an ancestor's folded path is a
	// strict prefix of its descendants', so it always sorts first.
	union := make([]string, 0, len(oldPaths)+len(newPaths))
	for folded := range oldPaths {
		union = append(union, folded)
	}
	for folded := range newPaths {
		if _, ok := oldPaths[folded]; !ok {
			union = append(union, folded)
		}
	}
	sort.Strings(union)

	entries := make(map[string]*registry.PatchKey)
	tombstoned := make(map[string]struct{})

	for _, folded := range union {
		oldPath, inOld := oldPaths[folded]
		newPath, inNew := newPaths[folded]

		switch {
		case inNew && !inOld:
			key, _ := new.Key(newPath)
			entries[newPath] = presentKey(key)

		case inOld && !inNew:
			if underTombstone(folded, tombstoned) {
				continue
			}
			tombstoned[folded] = struct{}{}
			entries[oldPath] = &registry.PatchKey{Kind: registry.EntryKeyDelete}

		default:
			oldKey, _ := old.Key(oldPath)
			newKey, _ := new.Key(newPath)
			if pk := diffValues(oldKey, newKey, fold); pk != nil {
				entries[newPath] = pk
			}
		}
	}

	return registry.NewPatch(new.Hive(), entries), nil
}

// indexPaths maps folded key path -> original spelling.
func indexPaths(r *registry.Registry, fold func(string) string) map[string]string {
	paths := r.Keys()
	index := make(map[string]string, len(paths))
	for _, path := range paths {
		index[fold(path)] = path
	}
	return index
}

// underTombstone reports whether any strict ancestor of folded has already
// been tombstoned in this pass.
func underTombstone(folded string, tombstoned map[string]struct{}) bool {
	for _, parent := range registry.ParentPaths(folded) {
		if _, ok := tombstoned[parent]; ok {
			return true
		}
	}
	return false
}

// presentKey builds a full-key addition: every value of the new key,
// unchanged.
func presentKey(k *registry.Key) *registry.PatchKey {
	pk := &registry.PatchKey{
		Kind:   registry.EntrySet,
		Values: make(map[string]registry.PatchValue, len(k.Values)),
	}
	for name, v := range k.Values {
		pk.Values[name] = registry.PatchValue{Kind: registry.EntrySet, Value: v}
	}
	return pk
}

// diffValues compares the value mappings of a key present in both
// snapshots. Returns nil when nothing differs, so the caller can omit the
// key from the patch entirely.
func diffValues(oldKey, newKey *registry.Key, fold func(string) string) *registry.PatchKey {
	oldNames := indexNames(oldKey, fold)
	newNames := indexNames(newKey, fold)

	values := make(map[string]registry.PatchValue)

	for folded, newName := range newNames {
		newVal := newKey.Values[newName]
		if oldName, ok := oldNames[folded]; ok && newVal.Equal(oldKey.Values[oldName]) {
			continue
		}
		values[newName] = registry.PatchValue{Kind: registry.EntrySet, Value: newVal}
	}
	for folded, oldName := range oldNames {
		if _, ok := newNames[folded]; !ok {
			values[oldName] = registry.PatchValue{Kind: registry.EntryValueDelete}
		}
	}

	if len(values) == 0 {
		return nil
	}
	return &registry.PatchKey{Kind: registry.EntrySet, Values: values}
}

// indexNames maps folded value name -> original spelling.
func indexNames(k *registry.Key, fold func(string) string) map[string]string {
	index := make(map[string]string, len(k.Values))
	for name := range k.Values {
		index[fold(name)] = name
	}
	return index
}
