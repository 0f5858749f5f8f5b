package regtext

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/regdiff/pkg/registry"
	"github.com/joshuapare/regdiff/pkg/types"
)

// section is one [path] block of a .reg file before conversion to the
// tree model.
type section struct {
	path    string
	deleted bool
	values  []valueLine
}

// valueLine is one name=value line. deleted marks the "name"=- form.
type valueLine struct {
	name    string
	deleted bool
	value   registry.Value
}

// ParseSnapshot parses .reg text into a Registry. The hive is supplied by
// the caller, never inferred: exports routinely omit or abbreviate the
// root. Deletion markers are a format error here: a snapshot describes
// state, not changes.
func ParseSnapshot(data []byte, hive types.Hive, opts types.RegParseOptions) (*registry.Registry, error) {
	sections, err := parse(data, hive, opts)
	if err != nil {
		return nil, err
	}

	keys := make(map[string]*registry.Key)
	for _, sec := range sections {
		if sec.deleted {
			return nil, &types.Error{Kind: types.ErrKindFormat,
				Msg: fmt.Sprintf("key deletion marker under %q in snapshot", sec.path)}
		}
		key, ok := keys[sec.path]
		if !ok {
			key = registry.NewKey()
			keys[sec.path] = key
		}
		for _, v := range sec.values {
			if v.deleted {
				return nil, &types.Error{Kind: types.ErrKindFormat,
					Msg: fmt.Sprintf("value deletion marker %q under %q in snapshot", v.name, sec.path)}
			}
			key.Set(v.name, v.value)
		}
	}
	return registry.New(hive, keys), nil
}

// ParsePatch parses .reg text that may carry deletion markers into a
// Patch: [-path] becomes a key tombstone and "name"=- a value tombstone.
//
// When a section re-creates a path tombstoned earlier in the same file,
// the later section wins outright. The patch model has no
// delete-then-recreate form, so such text collapses to a plain upsert:
// values the re-create section does not name survive an apply, where
// regedit would have cleared them first.
func ParsePatch(data []byte, hive types.Hive, opts types.RegParseOptions) (*registry.Patch, error) {
	sections, err := parse(data, hive, opts)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]*registry.PatchKey)
	for _, sec := range sections {
		if sec.deleted {
			entries[sec.path] = &registry.PatchKey{Kind: registry.EntryKeyDelete}
			continue
		}
		pk, ok := entries[sec.path]
		if !ok || pk.Kind == registry.EntryKeyDelete {
			pk = &registry.PatchKey{Kind: registry.EntrySet, Values: make(map[string]registry.PatchValue)}
			entries[sec.path] = pk
		}
		for _, v := range sec.values {
			if v.deleted {
				pk.Values[v.name] = registry.PatchValue{Kind: registry.EntryValueDelete}
			} else {
				pk.Values[v.name] = registry.PatchValue{Kind: registry.EntrySet, Value: v.value}
			}
		}
	}
	return registry.NewPatch(hive, entries), nil
}

// parse runs the line scan shared by snapshot and patch parsing.
func parse(data []byte, hive types.Hive, opts types.RegParseOptions) ([]*section, error) {
	text, err := decodeInput(data, opts.InputEncoding)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		sections   []*section
		current    *section
		seenHeader bool
	)

	for scanner.Scan() {
		trim := strings.TrimSpace(strings.TrimRight(scanner.Text(), CR))
		if trim == "" || strings.HasPrefix(trim, CommentPrefix) {
			continue
		}
		if !seenHeader {
			if trim != RegFileHeader && trim != RegFileHeaderV4 {
				return nil, fmt.Errorf("missing .reg header, got %q: %w", trim, types.ErrMalformed)
			}
			seenHeader = true
			continue
		}

		if strings.HasPrefix(trim, KeyOpenBracket) {
			if !strings.HasSuffix(trim, KeyCloseBracket) {
				return nil, fmt.Errorf("malformed section %q: %w", trim, types.ErrMalformed)
			}
			inner := strings.TrimSuffix(strings.TrimPrefix(trim, KeyOpenBracket), KeyCloseBracket)

			deleted := strings.HasPrefix(inner, DeleteKeyPrefix)
			if deleted {
				inner = strings.TrimSpace(strings.TrimPrefix(inner, DeleteKeyPrefix))
			}
			path, pathErr := normalizePath(inner, hive, opts.StrictHive)
			if pathErr != nil {
				return nil, pathErr
			}

			current = &section{path: path, deleted: deleted}
			sections = append(sections, current)
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("value line %q before any section: %w", trim, types.ErrMalformed)
		}
		if current.deleted {
			return nil, fmt.Errorf("value line under deleted key %q: %w", current.path, types.ErrMalformed)
		}

		// Hex payloads wrap across lines with a trailing backslash.
		for strings.HasSuffix(trim, Backslash) && scanner.Scan() {
			trim += strings.TrimSpace(strings.TrimRight(scanner.Text(), CR))
		}

		v, lineErr := parseValueLine(trim)
		if lineErr != nil {
			return nil, lineErr
		}
		current.values = append(current.values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning .reg text: %w", err)
	}
	if !seenHeader {
		return nil, fmt.Errorf("empty input: %w", types.ErrMalformed)
	}
	return sections, nil
}

// normalizePath strips a recognized HKEY_*/HKLM-style root from a section
// path and validates it against the declared hive when strict is set. The
// bare root section ([HKEY_LOCAL_MACHINE]) normalizes to the root path "".
func normalizePath(inner string, hive types.Hive, strict bool) (string, error) {
	root := inner
	rest := ""
	if i := strings.Index(inner, Backslash); i >= 0 {
		root, rest = inner[:i], inner[i+1:]
	}

	parsed, ok := types.ParseHive(root)
	if !ok {
		// No recognized root: the whole section path is hive-relative.
		return inner, nil
	}
	if strict && parsed != hive {
		return "", fmt.Errorf("section root %s does not match declared hive %s: %w",
			parsed, hive, types.ErrHiveMismatch)
	}
	return rest, nil
}

// parseValueLine splits one value line into name and payload and decodes
// the payload.
func parseValueLine(line string) (valueLine, error) {
	if strings.HasPrefix(line, DefaultValuePrefix) {
		return parsePayload(registry.DefaultValueName, line[len(DefaultValuePrefix):])
	}
	if !strings.HasPrefix(line, Quote) {
		return valueLine{}, fmt.Errorf("malformed value line %q: %w", line, types.ErrMalformed)
	}
	end := findClosingQuote(line)
	if end < 0 {
		return valueLine{}, fmt.Errorf("unterminated value name in %q: %w", line, types.ErrMalformed)
	}
	name := unescapeRegString(line[1:end])
	rest := line[end+1:]
	if !strings.HasPrefix(rest, ValueAssignment) {
		return valueLine{}, fmt.Errorf("missing %q in %q: %w", ValueAssignment, line, types.ErrMalformed)
	}
	return parsePayload(name, rest[1:])
}

// parsePayload decodes the text after '=' into a typed value or a
// deletion marker.
func parsePayload(name, payload string) (valueLine, error) {
	payload = strings.TrimSpace(payload)

	if payload == DeleteValueToken {
		return valueLine{name: name, deleted: true}, nil
	}

	if strings.HasPrefix(payload, Quote) {
		if len(payload) < 2 || !strings.HasSuffix(payload, Quote) {
			return valueLine{}, fmt.Errorf("unterminated string %q: %w", payload, types.ErrMalformed)
		}
		s := unescapeRegString(payload[1 : len(payload)-1])
		return valueLine{name: name, value: registry.NewString(s)}, nil
	}

	if strings.HasPrefix(payload, DWORDPrefix) {
		hexPart := payload[len(DWORDPrefix):]
		if len(hexPart) != DWORDHexLength {
			return valueLine{}, fmt.Errorf("invalid dword %q: %w", payload, types.ErrMalformed)
		}
		n, err := strconv.ParseUint(hexPart, 16, 32)
		if err != nil {
			return valueLine{}, fmt.Errorf("invalid dword %q: %w", payload, types.ErrMalformed)
		}
		return valueLine{name: name, value: registry.NewDword(uint32(n))}, nil
	}

	if strings.HasPrefix(payload, HexPrefix) || strings.HasPrefix(payload, HexTypePrefix) {
		return parseHexValue(name, payload)
	}

	return valueLine{}, fmt.Errorf("unsupported value payload %q: %w", payload, types.ErrMalformed)
}

// parseHexValue decodes a hex: or hex(n): payload into the value type the
// code names, falling back to an opaque value for codes without a decoded
// form.
func parseHexValue(name, payload string) (valueLine, error) {
	code := uint32(types.REG_BINARY)
	if strings.HasPrefix(payload, HexTypePrefix) {
		parsed, ok := parseHexTypeCode(payload)
		if !ok {
			return valueLine{}, fmt.Errorf("malformed hex type in %q: %w", payload, types.ErrMalformed)
		}
		code = parsed
	}

	data, err := parseHexBytes(payload)
	if err != nil {
		return valueLine{}, fmt.Errorf("%v: %w", err, types.ErrMalformed)
	}

	switch types.RegType(code) {
	case types.REG_SZ:
		return valueLine{name: name, value: registry.NewString(decodeUTF16LEZeroTerminated(data))}, nil
	case types.REG_EXPAND_SZ:
		return valueLine{name: name, value: registry.NewExpandString(decodeUTF16LEZeroTerminated(data))}, nil
	case types.REG_MULTI_SZ:
		return valueLine{name: name, value: registry.NewMultiString(decodeMultiString(data)...)}, nil
	case types.REG_BINARY:
		return valueLine{name: name, value: registry.NewBinary(data)}, nil
	case types.REG_DWORD:
		if len(data) != DwordByteLength {
			return valueLine{}, fmt.Errorf("dword payload has %d bytes: %w", len(data), types.ErrMalformed)
		}
		return valueLine{name: name, value: registry.NewDword(binary.LittleEndian.Uint32(data))}, nil
	case types.REG_QWORD:
		if len(data) != QwordByteLength {
			return valueLine{}, fmt.Errorf("qword payload has %d bytes: %w", len(data), types.ErrMalformed)
		}
		return valueLine{name: name, value: registry.NewQword(binary.LittleEndian.Uint64(data))}, nil
	default:
		return valueLine{name: name, value: registry.NewOpaque(code, data)}, nil
	}
}
