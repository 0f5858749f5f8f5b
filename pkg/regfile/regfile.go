package regfile

import (
	"fmt"
	"os"

	"github.com/joshuapare/regdiff/internal/regtext"
	"github.com/joshuapare/regdiff/pkg/registry"
	"github.com/joshuapare/regdiff/pkg/types"
)

// Parse parses .reg snapshot text into a Registry rooted at the given
// hive. The hive is always supplied by the caller: exports routinely omit
// or abbreviate the HKEY_* prefix, so it cannot be inferred from the text.
// Deletion markers in the input are a format error.
//
// Example:
//
//	data, _ := os.ReadFile("before.reg")
//	r, err := regfile.Parse(data, types.LocalMachine, types.RegParseOptions{})
func Parse(data []byte, hive types.Hive, opts types.RegParseOptions) (*registry.Registry, error) {
	return regtext.ParseSnapshot(data, hive, opts)
}

// ParseFile reads and parses a .reg snapshot file.
func ParseFile(path string, hive types.Hive, opts types.RegParseOptions) (*registry.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading .reg file %s: %w", path, err)
	}
	return regtext.ParseSnapshot(data, hive, opts)
}

// ParsePatch parses .reg text that may carry deletion markers into a
// Patch: [-path] becomes a key tombstone, "name"=- a value tombstone.
func ParsePatch(data []byte, hive types.Hive, opts types.RegParseOptions) (*registry.Patch, error) {
	return regtext.ParsePatch(data, hive, opts)
}

// ParsePatchFile reads and parses a .reg patch file.
func ParsePatchFile(path string, hive types.Hive, opts types.RegParseOptions) (*registry.Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading .reg file %s: %w", path, err)
	}
	return regtext.ParsePatch(data, hive, opts)
}

// Serialize renders a Registry as .reg text. Output is deterministic:
// keys and value names are emitted in sorted order.
func Serialize(r *registry.Registry, opts types.RegExportOptions) ([]byte, error) {
	return regtext.EmitSnapshot(r, opts)
}

// SerializePatch renders a Patch as .reg text using the format's deletion
// conventions. The result parses back with ParsePatch and applies with
// diff.Apply.
//
// Example:
//
//	patch, _ := diff.Diff(before, after)
//	out, err := regfile.SerializePatch(patch, types.RegExportOptions{})
func SerializePatch(p *registry.Patch, opts types.RegExportOptions) ([]byte, error) {
	return regtext.EmitPatch(p, opts)
}

// WriteFile serializes a Registry and writes it to path.
func WriteFile(path string, r *registry.Registry, opts types.RegExportOptions) error {
	data, err := regtext.EmitSnapshot(r, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing .reg file %s: %w", path, err)
	}
	return nil
}

// WritePatchFile serializes a Patch and writes it to path.
func WritePatchFile(path string, p *registry.Patch, opts types.RegExportOptions) error {
	data, err := regtext.EmitPatch(p, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing .reg file %s: %w", path, err)
	}
	return nil
}
