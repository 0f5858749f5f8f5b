package diff

import (
	"sort"

	"github.com/joshuapare/regdiff/pkg/registry"
)

// NormalizeStats reports what Normalize removed.
type NormalizeStats struct {
	// InputEntries is the number of key-level entries before normalization.
	InputEntries int

	// OutputEntries is the number of key-level entries after normalization.
	OutputEntries int

	// ShadowedByDelete is the count of entries dropped because an ancestor
	// key was tombstoned in the same patch.
	ShadowedByDelete int
}

// Normalize removes redundant entries from a patch: any entry whose path
// lies under a key tombstone is dropped, since key deletion is implicitly
// recursive. Patches produced by Diff are already minimal; Normalize is
// for patches read from .reg text or assembled by hand.
func Normalize(p *registry.Patch) (*registry.Patch, NormalizeStats) {
	return NormalizeWithOptions(p, DefaultOptions())
}

// NormalizeWithOptions is Normalize with an explicit comparison policy.
func NormalizeWithOptions(p *registry.Patch, opts Options) (*registry.Patch, NormalizeStats) {
	fold := opts.foldFunc()
	stats := NormalizeStats{InputEntries: p.Len()}

	// Sort by folded path so a tombstone precedes the case-variant
	// spellings of its descendants as well.
	paths := p.Keys()
	sort.Slice(paths, func(i, j int) bool { return fold(paths[i]) < fold(paths[j]) })

	entries := make(map[string]*registry.PatchKey, len(paths))
	tombstoned := make(map[string]struct{})

	for _, path := range paths {
		pk, _ := p.Key(path)
		folded := fold(path)

		if underTombstone(folded, tombstoned) {
			stats.ShadowedByDelete++
			continue
		}
		if pk.Kind == registry.EntryKeyDelete {
			tombstoned[folded] = struct{}{}
		}
		entries[path] = pk
	}

	stats.OutputEntries = len(entries)
	return registry.NewPatch(p.Hive(), entries), stats
}
