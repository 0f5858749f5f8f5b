package regtext

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// unescapeRegString unescapes a string from .reg format. .reg files escape
// backslashes as \\ and quotes as \".
func unescapeRegString(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s // no backslashes, no escapes
	}
	s = strings.ReplaceAll(s, EscapedBackslash, Backslash)
	s = strings.ReplaceAll(s, EscapedQuote, Quote)
	return s
}

// escapeRegString escapes a string for .reg output.
func escapeRegString(s string) string {
	s = strings.ReplaceAll(s, Backslash, EscapedBackslash)
	s = strings.ReplaceAll(s, Quote, EscapedQuote)
	return s
}

// findClosingQuote finds the position of the closing quote in a line,
// accounting for escaped quotes (preceded by an odd number of
// backslashes). Returns -1 if no valid closing quote is found. The search
// starts at position 1, assuming the opening quote is at position 0.
func findClosingQuote(line string) int {
	for i := 1; i < len(line); i++ {
		if line[i] == '"' {
			numBackslashes := 0
			for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
				numBackslashes++
			}
			if numBackslashes%2 == 1 {
				continue // escaped quote, keep looking
			}
			return i
		}
	}
	return -1
}

// parseHexBytes parses hex data from .reg format (hex:01,02,03,...). It
// handles the prefix up to the colon, line continuation characters and
// whitespace, comma-separated bytes, and single-digit bytes (padded with 0).
func parseHexBytes(hexStr string) ([]byte, error) {
	colonPos := strings.Index(hexStr, ":")
	if colonPos == -1 {
		return nil, errors.New("invalid hex data format: missing colon")
	}
	hexStr = removeHexNoise(hexStr[colonPos+1:])

	parts := strings.Split(hexStr, HexByteSeparator)
	buf := make([]byte, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if len(p) == 1 {
			p = "0" + p
		}
		b, err := hex.DecodeString(p)
		if err != nil {
			return nil, fmt.Errorf("invalid hex byte %q: %w", p, err)
		}
		buf = append(buf, b...)
	}
	return buf, nil
}

// removeHexNoise strips whitespace and line continuation characters from a
// hex payload that may have spanned multiple lines.
func removeHexNoise(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, ch := range s {
		switch ch {
		case ' ', '\t', '\r', '\n', '\\':
		default:
			result.WriteRune(ch)
		}
	}
	return result.String()
}

// parseHexTypeCode extracts the numeric type code from a hex(n): prefix.
// The code is hexadecimal, per regedit convention (hex(b) is REG_QWORD).
func parseHexTypeCode(payload string) (uint32, bool) {
	openParen := strings.Index(payload, "(")
	closeParen := strings.Index(payload, ")")
	if openParen < 0 || closeParen <= openParen {
		return 0, false
	}
	var code uint32
	if _, err := fmt.Sscanf(payload[openParen+1:closeParen], "%x", &code); err != nil {
		return 0, false
	}
	return code, true
}
