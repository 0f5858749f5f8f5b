package types

import "fmt"

// Hive identifies one of the fixed top-level roots of the registry
// namespace. It is always supplied explicitly by the caller at load time:
// some .reg exports omit the HKEY_* prefix entirely, so the hive cannot be
// inferred reliably from the text.
type Hive int

const (
	ClassesRoot Hive = iota
	CurrentUser
	LocalMachine
	Users
	CurrentConfig
)

// String returns the canonical HKEY_* spelling used in .reg section paths.
func (h Hive) String() string {
	switch h {
	case ClassesRoot:
		return "HKEY_CLASSES_ROOT"
	case CurrentUser:
		return "HKEY_CURRENT_USER"
	case LocalMachine:
		return "HKEY_LOCAL_MACHINE"
	case Users:
		return "HKEY_USERS"
	case CurrentConfig:
		return "HKEY_CURRENT_CONFIG"
	default:
		return fmt.Sprintf("HIVE(%d)", int(h))
	}
}

// ShortString returns the abbreviated root name (HKLM, HKCU, ...).
func (h Hive) ShortString() string {
	switch h {
	case ClassesRoot:
		return "HKCR"
	case CurrentUser:
		return "HKCU"
	case LocalMachine:
		return "HKLM"
	case Users:
		return "HKU"
	case CurrentConfig:
		return "HKCC"
	default:
		return fmt.Sprintf("HIVE(%d)", int(h))
	}
}

// ParseHive resolves a root name in either long (HKEY_LOCAL_MACHINE) or
// short (HKLM) spelling.
func ParseHive(s string) (Hive, bool) {
	switch s {
	case "HKEY_CLASSES_ROOT", "HKCR":
		return ClassesRoot, true
	case "HKEY_CURRENT_USER", "HKCU":
		return CurrentUser, true
	case "HKEY_LOCAL_MACHINE", "HKLM":
		return LocalMachine, true
	case "HKEY_USERS", "HKU":
		return Users, true
	case "HKEY_CURRENT_CONFIG", "HKCC":
		return CurrentConfig, true
	default:
		return 0, false
	}
}
