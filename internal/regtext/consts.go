package regtext

const (
	// RegFileHeader is the header line for .reg files version 5.00.
	RegFileHeader = "Windows Registry Editor Version 5.00"

	// RegFileHeaderV4 is the legacy REGEDIT4 header, still produced by
	// some export tools.
	RegFileHeaderV4 = "REGEDIT4"

	// KeyOpenBracket marks the start of a registry key path.
	KeyOpenBracket = "["

	// KeyCloseBracket marks the end of a registry key path.
	KeyCloseBracket = "]"

	// DeleteKeyPrefix marks a key for deletion (e.g., [-HKEY_LOCAL_MACHINE\...]).
	DeleteKeyPrefix = "-"

	// ValueAssignment separates value names from their data.
	ValueAssignment = "="

	// DefaultValuePrefix marks the default (unnamed) value.
	DefaultValuePrefix = "@="

	// CommentPrefix marks a comment line.
	CommentPrefix = ";"

	// Quote is the double-quote character for value names and string data.
	Quote = "\""

	// Backslash is used for escaping and path separators.
	Backslash = "\\"

	// EscapedQuote is the escaped double-quote sequence.
	EscapedQuote = "\\\""

	// EscapedBackslash is the escaped backslash sequence.
	EscapedBackslash = "\\\\"

	// CRLF is the Windows line ending used in emitted .reg text.
	CRLF = "\r\n"

	// CR is the carriage return character.
	CR = "\r"

	// DWORDPrefix identifies a DWORD value in .reg format.
	DWORDPrefix = "dword:"

	// HexPrefix identifies binary data in .reg format.
	HexPrefix = "hex:"

	// HexTypePrefix starts a typed hex payload like hex(2): or hex(b):.
	HexTypePrefix = "hex("

	// DeleteValueToken marks a value for deletion.
	DeleteValueToken = "-"

	// HexByteSeparator separates bytes in hex data.
	HexByteSeparator = ","

	// HexByteFormat is the format string for a single hex byte.
	HexByteFormat = "%02x"

	// DWORDHexFormat is the format string for DWORD values (8 hex digits).
	DWORDHexFormat = "%08x"

	// DWORDHexLength is the expected length of a DWORD hex string.
	DWORDHexLength = 8

	// HexWrapColumn is the column at which emitted hex payloads wrap onto
	// a continuation line, roughly matching regedit.exe output width.
	HexWrapColumn = 76

	// EncodingUTF8 is the identifier for UTF-8 encoding.
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding.
	EncodingUTF16LE = "UTF-16LE"

	// EncodingANSI identifies Windows-1252 text, the local encoding many
	// non-regedit export tools write.
	EncodingANSI = "ANSI"

	// UTF16CodeUnitSize is the size of a UTF-16 code unit in bytes.
	UTF16CodeUnitSize = 2

	// QwordByteLength is the payload size of a REG_QWORD value.
	QwordByteLength = 8

	// DwordByteLength is the payload size of a REG_DWORD value.
	DwordByteLength = 4
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian.
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF8BOM is the byte order mark for UTF-8.
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)
