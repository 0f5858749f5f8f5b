package registry

import (
	"sort"
	"testing"

	"github.com/joshuapare/regdiff/pkg/types"
)

func TestNewFillsAncestors(t *testing.T) {
	r := New(types.LocalMachine, map[string]*Key{
		"Software\\Vendor\\App": NewKey().Set("Version", NewString("1.0")),
	})

	paths := r.Keys()
	sort.Strings(paths)
	want := []string{"", "Software", "Software\\Vendor", "Software\\Vendor\\App"}
	if len(paths) != len(want) {
		t.Fatalf("got %d keys %v, want %v", len(paths), paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}

	if _, ok := r.Key("Software"); !ok {
		t.Error("synthesized ancestor should be addressable")
	}
}

func TestValueAt(t *testing.T) {
	r := New(types.CurrentUser, map[string]*Key{
		"Console": NewKey().
			Set("FontSize", NewDword(14)).
			Set(DefaultValueName, NewString("default")),
	})

	v, ok := r.ValueAt("Console", "FontSize")
	if !ok || v.DwordVal != 14 {
		t.Fatalf("ValueAt(Console, FontSize) = %v, %v", v, ok)
	}

	v, ok = r.ValueAt("Console", DefaultValueName)
	if !ok || v.StringVal != "default" {
		t.Fatalf("default value = %v, %v", v, ok)
	}

	// Absence of value and absence of key are both normal outcomes.
	if _, ok := r.ValueAt("Console", "Missing"); ok {
		t.Error("missing value should report absence")
	}
	if _, ok := r.ValueAt("NoSuchKey", "FontSize"); ok {
		t.Error("missing key should report absence")
	}
}

func TestNewDoesNotAliasInput(t *testing.T) {
	in := map[string]*Key{"K": NewKey().Set("V", NewString("a"))}
	r := New(types.Users, in)

	in["K"].Set("V", NewString("mutated"))
	in["Other"] = NewKey()

	v, _ := r.ValueAt("K", "V")
	if v.StringVal != "a" {
		t.Error("registry must deep-copy the input mapping")
	}
	if _, ok := r.Key("Other"); ok {
		t.Error("later additions to the input map must not leak in")
	}
}

func TestRegistryEqual(t *testing.T) {
	build := func(hive types.Hive) *Registry {
		return New(hive, map[string]*Key{
			"Software\\X": NewKey().Set("Name", NewString("Foo")),
		})
	}

	a, b := build(types.LocalMachine), build(types.LocalMachine)
	if !a.Equal(b) || !b.Equal(a) {
		t.Error("structurally identical registries should be equal")
	}
	if !a.Equal(a) {
		t.Error("equality should be reflexive")
	}

	if a.Equal(build(types.CurrentUser)) {
		t.Error("hive participates in equality")
	}

	c := New(types.LocalMachine, map[string]*Key{
		"Software\\X": NewKey().Set("Name", NewString("Bar")),
	})
	if a.Equal(c) {
		t.Error("differing payloads should break equality")
	}

	// Case differences are exact-match differences at the model layer.
	d := New(types.LocalMachine, map[string]*Key{
		"software\\x": NewKey().Set("Name", NewString("Foo")),
	})
	if a.Equal(d) {
		t.Error("model equality is case-exact")
	}
}

func TestKeyEqualIsSetEquality(t *testing.T) {
	a := NewKey().Set("A", NewDword(1)).Set("B", NewString("x"))
	b := NewKey().Set("B", NewString("x")).Set("A", NewDword(1))
	if !a.Equal(b) {
		t.Error("insertion order must not matter")
	}

	c := NewKey().Set("A", NewDword(1))
	if a.Equal(c) {
		t.Error("missing entries should break equality")
	}
}

func TestPatchAccessors(t *testing.T) {
	p := NewPatch(types.LocalMachine, map[string]*PatchKey{
		"Software\\X": {
			Kind: EntrySet,
			Values: map[string]PatchValue{
				"Name": {Kind: EntrySet, Value: NewString("Bar")},
				"Old":  {Kind: EntryValueDelete},
			},
		},
		"Software\\Z": {Kind: EntryKeyDelete},
	})

	if p.Empty() || p.Len() != 2 {
		t.Fatalf("Len = %d, want 2", p.Len())
	}
	if p.Hive() != types.LocalMachine {
		t.Error("hive should round-trip")
	}

	pk, ok := p.Key("Software\\Z")
	if !ok || pk.Kind != EntryKeyDelete {
		t.Fatalf("tombstone entry = %+v, %v", pk, ok)
	}
	if len(pk.Values) != 0 {
		t.Error("key tombstones carry no values")
	}

	pk, _ = p.Key("Software\\X")
	if pk.Values["Old"].Kind != EntryValueDelete {
		t.Error("value tombstone kind should survive construction")
	}

	if !NewPatch(types.Users, nil).Empty() {
		t.Error("patch with no entries should be empty")
	}
}

func TestNewPatchDropsKeyLevelValueTombstone(t *testing.T) {
	p := NewPatch(types.LocalMachine, map[string]*PatchKey{
		"Software\\Stray": {Kind: EntryValueDelete},
		"Software\\Ok": {Kind: EntrySet, Values: map[string]PatchValue{
			"v": {Kind: EntrySet, Value: NewDword(1)},
		}},
	})

	if p.Len() != 1 {
		t.Fatalf("Len = %d, want 1: %v", p.Len(), p.Keys())
	}
	if _, ok := p.Key("Software\\Stray"); ok {
		t.Error("a key-level value tombstone has no meaning and should be dropped")
	}
	if _, ok := p.Key("Software\\Ok"); !ok {
		t.Error("well-formed entries survive")
	}
}

func TestEntryKindString(t *testing.T) {
	if EntrySet.String() != "set" ||
		EntryKeyDelete.String() != "delete-key" ||
		EntryValueDelete.String() != "delete-value" {
		t.Error("unexpected EntryKind strings")
	}
}
