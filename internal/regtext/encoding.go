package regtext

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/regdiff/pkg/types"
)

// decodeInput converts raw .reg bytes to UTF-8 text. A BOM wins over the
// declared encoding; without one, enc selects the decoder and empty means
// UTF-8.
func decodeInput(data []byte, enc string) (string, error) {
	if len(data) >= len(UTF16LEBOM) && data[0] == UTF16LEBOM[0] && data[1] == UTF16LEBOM[1] {
		return utf16LEToString(data[len(UTF16LEBOM):]), nil
	}
	if len(data) >= len(UTF8BOM) && bytes.Equal(data[:len(UTF8BOM)], UTF8BOM) {
		return string(data[len(UTF8BOM):]), nil
	}

	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		return string(data), nil
	case EncodingUTF16LE:
		return utf16LEToString(data), nil
	case EncodingANSI, "WINDOWS-1252":
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", &types.Error{Kind: types.ErrKindFormat, Msg: "decoding Windows-1252 input", Err: err}
		}
		return string(decoded), nil
	default:
		return "", fmt.Errorf("input encoding %q: %w", enc, types.ErrUnsupported)
	}
}

// encodeOutput converts emitted UTF-8 text to the requested encoding.
func encodeOutput(text string, opts types.RegExportOptions) ([]byte, error) {
	switch strings.ToUpper(opts.OutputEncoding) {
	case "", EncodingUTF8:
		return []byte(text), nil
	case EncodingUTF16LE:
		return encodeUTF16LE(text, opts.WithBOM), nil
	default:
		return nil, fmt.Errorf("output encoding %q: %w", opts.OutputEncoding, types.ErrUnsupported)
	}
}

// utf16LEToString converts UTF-16LE bytes to a Go string. A trailing odd
// byte is dropped.
func utf16LEToString(data []byte) string {
	if len(data)%UTF16CodeUnitSize == 1 {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return ""
	}
	words := make([]uint16, len(data)/UTF16CodeUnitSize)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(data[i*UTF16CodeUnitSize:])
	}
	return string(utf16.Decode(words))
}

// encodeUTF16LE encodes a string to UTF-16LE, optionally BOM-prefixed.
func encodeUTF16LE(s string, withBOM bool) []byte {
	words := utf16.Encode([]rune(s))

	bufSize := len(words) * UTF16CodeUnitSize
	if withBOM {
		bufSize += len(UTF16LEBOM)
	}
	buf := make([]byte, bufSize)

	offset := 0
	if withBOM {
		copy(buf, UTF16LEBOM)
		offset = len(UTF16LEBOM)
	}
	for i, w := range words {
		binary.LittleEndian.PutUint16(buf[offset+i*UTF16CodeUnitSize:], w)
	}
	return buf
}

// encodeUTF16LEZeroTerminated encodes a string to UTF-16LE with a null
// terminator, the payload form of hex(2) string values.
func encodeUTF16LEZeroTerminated(s string) []byte {
	words := utf16.Encode([]rune(s))
	buf := make([]byte, (len(words)+1)*UTF16CodeUnitSize)
	for i, w := range words {
		binary.LittleEndian.PutUint16(buf[i*UTF16CodeUnitSize:], w)
	}
	return buf
}

// decodeUTF16LEZeroTerminated decodes a null-terminated UTF-16LE payload.
func decodeUTF16LEZeroTerminated(data []byte) string {
	s := utf16LEToString(data)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return s
}

// encodeMultiString encodes a REG_MULTI_SZ payload: each string
// null-terminated, the list double-null-terminated.
func encodeMultiString(values []string) []byte {
	var buf bytes.Buffer
	for _, v := range values {
		buf.Write(encodeUTF16LEZeroTerminated(v))
	}
	buf.Write([]byte{0x00, 0x00})
	return buf.Bytes()
}

// decodeMultiString splits a REG_MULTI_SZ payload into its strings.
func decodeMultiString(data []byte) []string {
	s := utf16LEToString(data)
	s = strings.TrimRight(s, "\x00")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\x00")
}
