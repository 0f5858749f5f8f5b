package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // malformed .reg text (bad header, section, value line)
	ErrKindUnsupported                // valid feature we don't support (yet)
	ErrKindNotFound                   // missing key/value/path
	ErrKindState                      // invalid operation for current inputs (e.g., hive mismatch)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrHiveMismatch indicates two registries with different hive
	// designations were combined (diffed or patched against each other).
	ErrHiveMismatch = &Error{Kind: ErrKindState, Msg: "registries have different hives"}
	// ErrMalformed indicates .reg text that does not follow the format.
	ErrMalformed = &Error{Kind: ErrKindFormat, Msg: "malformed .reg text"}
	// ErrUnsupported indicates a recognized but unsupported format variant.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported .reg feature"}
	// ErrNotFound indicates a missing key/value/path.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
)

// -----------------------------------------------------------------------------
// Registry value types
// -----------------------------------------------------------------------------

// RegType enumerates Windows registry value types commonly encountered.
// (The numbers align with Windows definitions.) Codes outside the named set
// are carried through verbatim, so unknown types survive a parse/diff/emit
// round trip without loss.
type RegType uint32

const (
	REG_NONE      RegType = 0
	REG_SZ        RegType = 1
	REG_EXPAND_SZ RegType = 2
	REG_BINARY    RegType = 3
	REG_DWORD     RegType = 4
	REG_DWORD_BE  RegType = 5
	REG_LINK      RegType = 6
	REG_MULTI_SZ  RegType = 7
	REG_QWORD     RegType = 11
)

// String implements the Stringer interface for RegType.
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_DWORD_BE:
		return "REG_DWORD_BE"
	case REG_LINK:
		return "REG_LINK"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", uint32(t))
	}
}

// -----------------------------------------------------------------------------
// .REG (regedit) import/export options
// -----------------------------------------------------------------------------

// RegParseOptions controls .reg text parsing behavior.
type RegParseOptions struct {
	// InputEncoding declares the .reg text encoding (e.g., "UTF-16LE",
	// "ANSI"). Empty means auto-detect from the BOM, falling back to UTF-8.
	// Implementations transcode to UTF-8 internally.
	InputEncoding string

	// StrictHive rejects section paths whose HKEY_* prefix disagrees with
	// the hive the caller declared. When false, mismatched prefixes are
	// stripped and the declared hive wins (some exports carry no prefix at
	// all, which is why the hive is supplied out-of-band in the first place).
	StrictHive bool
}

// RegExportOptions controls .reg text emission.
type RegExportOptions struct {
	// OutputEncoding for emitted .reg text (e.g., "UTF-16LE" with BOM to
	// match regedit.exe). Empty means UTF-8.
	OutputEncoding string
	WithBOM        bool
}
