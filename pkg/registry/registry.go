package registry

import "github.com/joshuapare/regdiff/pkg/types"

// DefaultValueName is the reserved name of a key's unnamed "default"
// value, written as @ in .reg text.
const DefaultValueName = ""

// Key holds the named values of a single registry key. The key's own name
// lives in the Registry mapping; subkeys are implied by path structure, not
// stored here.
type Key struct {
	Values map[string]Value
}

// NewKey returns an empty key.
func NewKey() *Key {
	return &Key{Values: make(map[string]Value)}
}

// Set adds or replaces a named value and returns the key for chaining.
func (k *Key) Set(name string, v Value) *Key {
	if k.Values == nil {
		k.Values = make(map[string]Value)
	}
	k.Values[name] = v
	return k
}

// Value looks up a named value. Absence is a normal outcome, not an error.
func (k *Key) Value(name string) (Value, bool) {
	v, ok := k.Values[name]
	return v, ok
}

// Equal reports set-equality of the (name, value) entries.
func (k *Key) Equal(o *Key) bool {
	if k == nil || o == nil {
		return k == o
	}
	if len(k.Values) != len(o.Values) {
		return false
	}
	for name, v := range k.Values {
		ov, ok := o.Values[name]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the key.
func (k *Key) Clone() *Key {
	out := &Key{Values: make(map[string]Value, len(k.Values))}
	for name, v := range k.Values {
		out.Values[name] = v.clone()
	}
	return out
}

// Registry is one snapshot of a hive-rooted registry tree: a hive tag plus
// a flat mapping from full key path to Key. Registries are read-only once
// built; the diff engine never mutates its inputs.
type Registry struct {
	hive types.Hive
	keys map[string]*Key
}

// New builds a Registry from a hive and a path -> Key mapping, ordinarily
// the output of the .reg parser. The input map is deep-copied. Every
// ancestor of a mapped path is inserted as an empty key if missing, root
// included, so that any path appearing as a value container exists as an
// entry of its own.
func New(hive types.Hive, keys map[string]*Key) *Registry {
	r := &Registry{hive: hive, keys: make(map[string]*Key, len(keys)+1)}
	for path, key := range keys {
		if key == nil {
			key = NewKey()
		}
		r.keys[path] = key.Clone()
	}
	for path := range keys {
		for _, parent := range ParentPaths(path) {
			if _, ok := r.keys[parent]; !ok {
				r.keys[parent] = NewKey()
			}
		}
	}
	if _, ok := r.keys[""]; !ok {
		r.keys[""] = NewKey()
	}
	return r
}

// Hive returns the hive designation supplied at construction.
func (r *Registry) Hive() types.Hive { return r.hive }

// Len returns the number of keys, root included.
func (r *Registry) Len() int { return len(r.keys) }

// Keys returns every key path present, in no particular order. Callers
// that need determinism sort separately.
func (r *Registry) Keys() []string {
	paths := make([]string, 0, len(r.keys))
	for path := range r.keys {
		paths = append(paths, path)
	}
	return paths
}

// Key looks up a key by path. The returned key must be treated as
// read-only. Absence is a normal outcome, not an error.
func (r *Registry) Key(path string) (*Key, bool) {
	k, ok := r.keys[path]
	return k, ok
}

// ValueAt looks up a named value under a key path. Absence of either the
// key or the value is a normal outcome, not an error.
func (r *Registry) ValueAt(path, name string) (Value, bool) {
	k, ok := r.keys[path]
	if !ok {
		return Value{}, false
	}
	return k.Value(name)
}

// Equal reports hive equality plus set-equality of the (path, Key)
// entries. Path comparison is case-exact here; the diff engine layers its
// own case policy on top.
func (r *Registry) Equal(o *Registry) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.hive != o.hive || len(r.keys) != len(o.keys) {
		return false
	}
	for path, key := range r.keys {
		ok, found := o.keys[path]
		if !found || !key.Equal(ok) {
			return false
		}
	}
	return true
}
