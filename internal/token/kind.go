package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token (unterminated string, stray byte).
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// String represents a string literal, prefix included (r'', b"", f'''...''').
	String
	// Comment represents a '#' comment running to end of line.
	Comment
	// Name represents an identifier or keyword.
	Name
	// Number represents a numeric literal.
	Number
	// Op represents any operator or punctuation byte.
	Op
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "INVALID"
	case EOF:
		return "EOF"
	case String:
		return "STRING"
	case Comment:
		return "COMMENT"
	case Name:
		return "NAME"
	case Number:
		return "NUMBER"
	case Op:
		return "OP"
	}
	return "UNKNOWN"
}
