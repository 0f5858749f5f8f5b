package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestRegTypeString(t *testing.T) {
	tests := []struct {
		typ  RegType
		want string
	}{
		{REG_NONE, "REG_NONE"},
		{REG_SZ, "REG_SZ"},
		{REG_EXPAND_SZ, "REG_EXPAND_SZ"},
		{REG_BINARY, "REG_BINARY"},
		{REG_DWORD, "REG_DWORD"},
		{REG_MULTI_SZ, "REG_MULTI_SZ"},
		{REG_QWORD, "REG_QWORD"},
		{RegType(0x4242), "UNKNOWN_TYPE_16962"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("RegType(%d).String() = %q, want %q", uint32(tt.typ), got, tt.want)
		}
	}
}

func TestHiveStrings(t *testing.T) {
	tests := []struct {
		hive  Hive
		long  string
		short string
	}{
		{ClassesRoot, "HKEY_CLASSES_ROOT", "HKCR"},
		{CurrentUser, "HKEY_CURRENT_USER", "HKCU"},
		{LocalMachine, "HKEY_LOCAL_MACHINE", "HKLM"},
		{Users, "HKEY_USERS", "HKU"},
		{CurrentConfig, "HKEY_CURRENT_CONFIG", "HKCC"},
	}
	for _, tt := range tests {
		if got := tt.hive.String(); got != tt.long {
			t.Errorf("%v.String() = %q, want %q", int(tt.hive), got, tt.long)
		}
		if got := tt.hive.ShortString(); got != tt.short {
			t.Errorf("%v.ShortString() = %q, want %q", int(tt.hive), got, tt.short)
		}

		// Both spellings must parse back to the same hive.
		for _, name := range []string{tt.long, tt.short} {
			h, ok := ParseHive(name)
			if !ok || h != tt.hive {
				t.Errorf("ParseHive(%q) = %v, %v", name, h, ok)
			}
		}
	}

	if _, ok := ParseHive("HKEY_DYN_DATA"); ok {
		t.Error("ParseHive should reject unsupported roots")
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Kind: ErrKindFormat, Msg: "bad section", Err: cause}

	if err.Error() != "bad section: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	wrapped := fmt.Errorf("diff: %w", ErrHiveMismatch)
	if !errors.Is(wrapped, ErrHiveMismatch) {
		t.Error("errors.Is should match the ErrHiveMismatch sentinel through wrapping")
	}
	var typed *Error
	if !errors.As(wrapped, &typed) || typed.Kind != ErrKindState {
		t.Error("errors.As should recover the typed error")
	}
}
