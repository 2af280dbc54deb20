package diag

import (
	"fmt"
)

// Code identifies a diagnostic category.
type Code uint16

const (
	// UnknownCode covers diagnostics without a dedicated code.
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexNulByte            Code = 1003

	// File handling
	IOReadFailed  Code = 3001
	IOWriteFailed Code = 3002
	IOBadEncoding Code = 3003
)

// ID returns the stable printable identifier of the code, e.g. "LEX1002".
func (c Code) ID() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	case c >= 3000 && c < 4000:
		return fmt.Sprintf("IO%04d", uint16(c))
	default:
		return fmt.Sprintf("UNK%04d", uint16(c))
	}
}
