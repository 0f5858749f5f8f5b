package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regdiff/pkg/diff"
	"github.com/joshuapare/regdiff/pkg/registry"
	"github.com/joshuapare/regdiff/pkg/types"
)

func TestNormalizeDropsShadowedEntries(t *testing.T) {
	p := registry.NewPatch(types.LocalMachine, map[string]*registry.PatchKey{
		"A":       {Kind: registry.EntryKeyDelete},
		"A\\B":    {Kind: registry.EntryKeyDelete},
		"A\\B\\C": {Kind: registry.EntrySet, Values: map[string]registry.PatchValue{
			"v": {Kind: registry.EntrySet, Value: registry.NewDword(1)},
		}},
		"D": {Kind: registry.EntrySet, Values: map[string]registry.PatchValue{
			"w": {Kind: registry.EntrySet, Value: registry.NewString("x")},
		}},
	})

	got, stats := diff.Normalize(p)

	assert.Equal(t, 4, stats.InputEntries)
	assert.Equal(t, 2, stats.OutputEntries)
	assert.Equal(t, 2, stats.ShadowedByDelete)

	_, ok := got.Key("A")
	assert.True(t, ok)
	_, ok = got.Key("D")
	assert.True(t, ok)
	for _, path := range []string{"A\\B", "A\\B\\C"} {
		_, ok := got.Key(path)
		assert.False(t, ok, "%s is shadowed by the tombstone on A", path)
	}
}

func TestNormalizeHonorsCaseFold(t *testing.T) {
	p := registry.NewPatch(types.CurrentUser, map[string]*registry.PatchKey{
		"software": {Kind: registry.EntryKeyDelete},
		"Software\\App": {Kind: registry.EntrySet, Values: map[string]registry.PatchValue{
			"v": {Kind: registry.EntrySet, Value: registry.NewDword(1)},
		}},
	})

	got, stats := diff.Normalize(p)
	assert.Equal(t, 1, stats.ShadowedByDelete)
	_, ok := got.Key("Software\\App")
	assert.False(t, ok, "case-variant descendants are shadowed under the default policy")

	// Exact matching keeps both.
	got, stats = diff.NormalizeWithOptions(p, diff.Options{CaseSensitive: true})
	assert.Zero(t, stats.ShadowedByDelete)
	assert.Equal(t, 2, got.Len())
}

func TestNormalizeIdempotentOnDiffOutput(t *testing.T) {
	old := build(types.LocalMachine, map[string]*registry.Key{
		"Software\\X": registry.NewKey().Set("Name", registry.NewString("Foo")),
		"Software\\Z": registry.NewKey().Set("Gone", registry.NewDword(1)),
	})
	new := build(types.LocalMachine, map[string]*registry.Key{
		"Software\\X": registry.NewKey().Set("Name", registry.NewString("Bar")),
	})

	p, err := diff.Diff(old, new)
	require.NoError(t, err)

	got, stats := diff.Normalize(p)
	assert.Zero(t, stats.ShadowedByDelete, "engine output is already minimal")
	assert.Equal(t, p.Len(), got.Len())
}
