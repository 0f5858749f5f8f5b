package registry

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/joshuapare/regdiff/pkg/types"
)

// Value is a typed registry datum. Type selects which payload field is
// meaningful; the others stay at their zero value. Types without a decoded
// representation (REG_BINARY, REG_NONE, and any unrecognized code) carry
// their raw bytes in Data, so unfamiliar value types survive a
// parse/diff/emit round trip untouched.
type Value struct {
	Type      types.RegType
	StringVal string   // REG_SZ, REG_EXPAND_SZ
	MultiVal  []string // REG_MULTI_SZ
	DwordVal  uint32   // REG_DWORD
	QwordVal  uint64   // REG_QWORD
	Data      []byte   // everything else
}

// NewString returns a REG_SZ value.
func NewString(s string) Value {
	return Value{Type: types.REG_SZ, StringVal: s}
}

// NewExpandString returns a REG_EXPAND_SZ value.
func NewExpandString(s string) Value {
	return Value{Type: types.REG_EXPAND_SZ, StringVal: s}
}

// NewMultiString returns a REG_MULTI_SZ value.
func NewMultiString(values ...string) Value {
	return Value{Type: types.REG_MULTI_SZ, MultiVal: values}
}

// NewDword returns a REG_DWORD value.
func NewDword(v uint32) Value {
	return Value{Type: types.REG_DWORD, DwordVal: v}
}

// NewQword returns a REG_QWORD value.
func NewQword(v uint64) Value {
	return Value{Type: types.REG_QWORD, QwordVal: v}
}

// NewBinary returns a REG_BINARY value.
func NewBinary(data []byte) Value {
	return Value{Type: types.REG_BINARY, Data: data}
}

// NewOpaque returns a value of an arbitrary numeric type code carrying raw
// bytes. Used for type codes this package has no decoded form for.
func NewOpaque(code uint32, data []byte) Value {
	return Value{Type: types.RegType(code), Data: data}
}

// Equal reports structural equality: the type tags match and the payloads
// match. Payload comparison is byte-exact for raw-byte types and
// value-exact for the decoded ones.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case types.REG_SZ, types.REG_EXPAND_SZ:
		return v.StringVal == o.StringVal
	case types.REG_MULTI_SZ:
		return slices.Equal(v.MultiVal, o.MultiVal)
	case types.REG_DWORD:
		return v.DwordVal == o.DwordVal
	case types.REG_QWORD:
		return v.QwordVal == o.QwordVal
	default:
		return bytes.Equal(v.Data, o.Data)
	}
}

// String renders the value for debugging and test failure output.
func (v Value) String() string {
	switch v.Type {
	case types.REG_SZ, types.REG_EXPAND_SZ:
		return fmt.Sprintf("%s(%q)", v.Type, v.StringVal)
	case types.REG_MULTI_SZ:
		return fmt.Sprintf("%s(%q)", v.Type, strings.Join(v.MultiVal, "|"))
	case types.REG_DWORD:
		return fmt.Sprintf("%s(0x%08x)", v.Type, v.DwordVal)
	case types.REG_QWORD:
		return fmt.Sprintf("%s(0x%016x)", v.Type, v.QwordVal)
	default:
		return fmt.Sprintf("%s(% x)", v.Type, v.Data)
	}
}

// clone returns a copy that shares no mutable payload with v.
func (v Value) clone() Value {
	out := v
	if v.MultiVal != nil {
		out.MultiVal = slices.Clone(v.MultiVal)
	}
	if v.Data != nil {
		out.Data = slices.Clone(v.Data)
	}
	return out
}
