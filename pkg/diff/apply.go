package diff

import (
	"fmt"
	"sort"

	"github.com/joshuapare/regdiff/pkg/registry"
	"github.com/joshuapare/regdiff/pkg/types"
)

// Apply replays a patch onto a snapshot and returns the resulting
// registry. The base is not mutated.
//
// Semantics per entry: a key tombstone removes the key and every
// descendant; a value tombstone removes the named value and keeps the key;
// a set entry upserts the value (creating the key and any missing
// ancestors). Entries are applied in sorted path order, so a tombstone for
// a path precedes set entries for anything beneath it. Under the
// case-insensitive default a set entry's spelling wins: the targeted key
// path (ancestors included) and value names are rekeyed to the patch's
// spelling, never left at a case-variant of the base's.
//
// Apply is the executable form of the round-trip contract:
// Apply(old, Diff(old, new)) is structurally equal to new.
func Apply(base *registry.Registry, p *registry.Patch) (*registry.Registry, error) {
	return ApplyWithOptions(base, p, DefaultOptions())
}

// ApplyWithOptions is Apply with an explicit comparison policy. The policy
// must match the one the patch was produced with for the round-trip
// contract to hold.
func ApplyWithOptions(base *registry.Registry, p *registry.Patch, opts Options) (*registry.Registry, error) {
	if base.Hive() != p.Hive() {
		return nil, fmt.Errorf("apply %s patch to %s: %w", p.Hive(), base.Hive(), types.ErrHiveMismatch)
	}
	fold := opts.foldFunc()

	keys := make(map[string]*registry.Key, base.Len())
	for _, path := range base.Keys() {
		k, _ := base.Key(path)
		keys[path] = k.Clone()
	}

	// index maps folded path -> the spelling currently present in keys.
	index := make(map[string]string, len(keys))
	for path := range keys {
		index[fold(path)] = path
	}

	// Sorted by folded path: a tombstone is applied before set entries for
	// anything beneath it, regardless of spelling.
	paths := p.Keys()
	sort.Slice(paths, func(i, j int) bool { return fold(paths[i]) < fold(paths[j]) })

	for _, ppath := range paths {
		pk, _ := p.Key(ppath)
		folded := fold(ppath)

		switch pk.Kind {
		case registry.EntryKeyDelete:
			if target, ok := index[folded]; ok {
				delete(keys, target)
				delete(index, folded)
			}
			for f, path := range index {
				if registry.IsDescendant(f, folded) {
					delete(keys, path)
					delete(index, f)
				}
			}

		case registry.EntrySet:
			for _, parent := range registry.ParentPaths(ppath) {
				adoptSpelling(keys, index, parent, fold)
			}
			adoptSpelling(keys, index, ppath, fold)
			applyValues(keys[ppath], pk, fold)
		}
	}

	return registry.New(base.Hive(), keys), nil
}

// adoptSpelling makes path present under exactly this spelling, taking
// over the values of a case-variant entry when one exists. Set entries
// carry the new-side spelling of their full path, so the stored chain is
// rekeyed to match; applyValues does the same for value names. Without
// this, a re-cased key would keep the base spelling and the round-trip
// contract would break on it.
func adoptSpelling(keys map[string]*registry.Key, index map[string]string, path string, fold func(string) string) {
	folded := fold(path)
	existing, ok := index[folded]
	if !ok {
		keys[path] = registry.NewKey()
		index[folded] = path
		return
	}
	if existing != path {
		keys[path] = keys[existing]
		delete(keys, existing)
		index[folded] = path
	}
}

// applyValues upserts and deletes the values of one set entry on a key.
func applyValues(key *registry.Key, pk *registry.PatchKey, fold func(string) string) {
	for name, pv := range pk.Values {
		existing, found := findName(key, name, fold)
		switch pv.Kind {
		case registry.EntrySet:
			if found && existing != name {
				delete(key.Values, existing)
			}
			key.Set(name, pv.Value)
		case registry.EntryValueDelete:
			if found {
				delete(key.Values, existing)
			}
		}
	}
}

// findName locates the stored spelling of a value name under the fold.
func findName(key *registry.Key, name string, fold func(string) string) (string, bool) {
	if _, ok := key.Values[name]; ok {
		return name, true
	}
	folded := fold(name)
	for existing := range key.Values {
		if fold(existing) == folded {
			return existing, true
		}
	}
	return "", false
}
