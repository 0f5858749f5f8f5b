package regtext

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"

	"github.com/joshuapare/regdiff/pkg/registry"
	"github.com/joshuapare/regdiff/pkg/types"
)

// EmitSnapshot renders a Registry as .reg text. Keys and values are
// emitted in sorted order so output is deterministic and diffable.
func EmitSnapshot(r *registry.Registry, opts types.RegExportOptions) ([]byte, error) {
	var buf strings.Builder
	buf.WriteString(RegFileHeader + CRLF + CRLF)

	paths := r.Keys()
	sort.Strings(paths)
	for _, path := range paths {
		key, _ := r.Key(path)
		if path == "" && len(key.Values) == 0 {
			continue // a bare root section carries no information
		}
		writeSectionLine(&buf, r.Hive(), path, false)
		writeKeyValues(&buf, key)
		buf.WriteString(CRLF)
	}
	return encodeOutput(buf.String(), opts)
}

// EmitPatch renders a Patch as .reg text, using the format's deletion
// conventions: [-path] for key tombstones, "name"=- for value tombstones.
func EmitPatch(p *registry.Patch, opts types.RegExportOptions) ([]byte, error) {
	var buf strings.Builder
	buf.WriteString(RegFileHeader + CRLF + CRLF)

	paths := p.Keys()
	sort.Strings(paths)
	for _, path := range paths {
		pk, _ := p.Key(path)
		switch pk.Kind {
		case registry.EntryKeyDelete:
			writeSectionLine(&buf, p.Hive(), path, true)
			buf.WriteString(CRLF)
		case registry.EntrySet:
			writeSectionLine(&buf, p.Hive(), path, false)
			writePatchValues(&buf, pk)
			buf.WriteString(CRLF)
		}
	}
	return encodeOutput(buf.String(), opts)
}

func writeSectionLine(buf *strings.Builder, hive types.Hive, path string, deleted bool) {
	full := hive.String()
	if path != "" {
		full += registry.Separator + path
	}
	buf.WriteString(KeyOpenBracket)
	if deleted {
		buf.WriteString(DeleteKeyPrefix)
	}
	buf.WriteString(full)
	buf.WriteString(KeyCloseBracket + CRLF)
}

func writeKeyValues(buf *strings.Builder, key *registry.Key) {
	names := make([]string, 0, len(key.Values))
	for name := range key.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writeValueName(buf, name)
		writeValuePayload(buf, key.Values[name])
		buf.WriteString(CRLF)
	}
}

func writePatchValues(buf *strings.Builder, pk *registry.PatchKey) {
	names := make([]string, 0, len(pk.Values))
	for name := range pk.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		pv := pk.Values[name]
		writeValueName(buf, name)
		if pv.Kind == registry.EntryValueDelete {
			buf.WriteString(DeleteValueToken)
		} else {
			writeValuePayload(buf, pv.Value)
		}
		buf.WriteString(CRLF)
	}
}

func writeValueName(buf *strings.Builder, name string) {
	if name == registry.DefaultValueName {
		buf.WriteString(DefaultValuePrefix)
		return
	}
	buf.WriteString(Quote)
	buf.WriteString(escapeRegString(name))
	buf.WriteString(Quote + ValueAssignment)
}

func writeValuePayload(buf *strings.Builder, v registry.Value) {
	switch v.Type {
	case types.REG_SZ:
		buf.WriteString(Quote)
		buf.WriteString(escapeRegString(v.StringVal))
		buf.WriteString(Quote)
	case types.REG_EXPAND_SZ:
		writeHex(buf, fmt.Sprintf("hex(%x):", uint32(v.Type)), encodeUTF16LEZeroTerminated(v.StringVal))
	case types.REG_MULTI_SZ:
		writeHex(buf, fmt.Sprintf("hex(%x):", uint32(v.Type)), encodeMultiString(v.MultiVal))
	case types.REG_DWORD:
		buf.WriteString(DWORDPrefix)
		fmt.Fprintf(buf, DWORDHexFormat, v.DwordVal)
	case types.REG_QWORD:
		data := make([]byte, QwordByteLength)
		binary.LittleEndian.PutUint64(data, v.QwordVal)
		writeHex(buf, fmt.Sprintf("hex(%x):", uint32(v.Type)), data)
	case types.REG_BINARY:
		writeHex(buf, HexPrefix, v.Data)
	default:
		writeHex(buf, fmt.Sprintf("hex(%x):", uint32(v.Type)), v.Data)
	}
}

// writeHex emits a hex payload, wrapping long runs onto backslash
// continuation lines the way regedit.exe does.
func writeHex(buf *strings.Builder, prefix string, data []byte) {
	buf.WriteString(prefix)
	col := len(prefix)
	for i, b := range data {
		if i > 0 {
			buf.WriteString(HexByteSeparator)
			col++
			if col+2 > HexWrapColumn {
				buf.WriteString(Backslash + CRLF + "  ")
				col = 2
			}
		}
		fmt.Fprintf(buf, HexByteFormat, b)
		col += 2
	}
}
