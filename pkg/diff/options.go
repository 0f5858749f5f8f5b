package diff

import "strings"

// Options controls comparison behavior. The zero value is the default.
type Options struct {
	// CaseSensitive compares key paths and value names byte-for-byte.
	//
	// The default (false) matches Windows registry name semantics: names
	// differing only in letter case refer to the same key or value. Under
	// the default policy the emitted patch preserves the new-side spelling
	// for additions and changes and the old-side spelling for tombstones.
	CaseSensitive bool
}

// DefaultOptions returns the recommended settings: case-insensitive name
// matching, as the real registry behaves.
func DefaultOptions() Options {
	return Options{}
}

// foldFunc returns the name normalization the options select. The fold is
// applied for matching only; stored paths and names keep their original
// spelling.
func (o Options) foldFunc() func(string) string {
	if o.CaseSensitive {
		return func(s string) string { return s }
	}
	return strings.ToLower
}
