package registry

import (
	"testing"

	"github.com/joshuapare/regdiff/pkg/types"
)

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same string", NewString("foo"), NewString("foo"), true},
		{"different string", NewString("foo"), NewString("bar"), false},
		{"sz vs expand_sz", NewString("foo"), NewExpandString("foo"), false},
		{"same dword", NewDword(42), NewDword(42), true},
		{"different dword", NewDword(42), NewDword(43), false},
		{"same qword", NewQword(1 << 40), NewQword(1 << 40), true},
		{"same multi", NewMultiString("a", "b"), NewMultiString("a", "b"), true},
		{"multi order matters", NewMultiString("a", "b"), NewMultiString("b", "a"), false},
		{"same binary", NewBinary([]byte{1, 2}), NewBinary([]byte{1, 2}), true},
		{"binary byte-exact", NewBinary([]byte{1, 2}), NewBinary([]byte{1, 2, 3}), false},
		{"empty vs nil binary", NewBinary([]byte{}), NewBinary(nil), true},
		{"same opaque", NewOpaque(0x99, []byte{1}), NewOpaque(0x99, []byte{1}), true},
		{"opaque code differs", NewOpaque(0x99, []byte{1}), NewOpaque(0x9a, []byte{1}), false},
		{"dword vs binary encoding of it", NewDword(1), NewBinary([]byte{1, 0, 0, 0}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Equality is symmetric.
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestValueEqualReflexive(t *testing.T) {
	values := []Value{
		NewString("x"),
		NewExpandString("%PATH%"),
		NewMultiString("a", "b", "c"),
		NewDword(0),
		NewQword(0),
		NewBinary(nil),
		NewOpaque(0x1234, []byte{0xde, 0xad}),
	}
	for _, v := range values {
		if !v.Equal(v) {
			t.Errorf("%v should equal itself", v)
		}
	}
}

func TestValueCloneIsolation(t *testing.T) {
	orig := NewBinary([]byte{1, 2, 3})
	key := NewKey().Set("Blob", orig)

	clone := key.Clone()
	clone.Values["Blob"].Data[0] = 0xff

	if key.Values["Blob"].Data[0] != 1 {
		t.Error("mutating a clone must not touch the original payload")
	}
}

func TestValueTypeCodes(t *testing.T) {
	if NewOpaque(0xbeef, nil).Type != types.RegType(0xbeef) {
		t.Error("opaque values carry their numeric type code verbatim")
	}
	if NewString("").Type != types.REG_SZ {
		t.Error("NewString should tag REG_SZ")
	}
}
