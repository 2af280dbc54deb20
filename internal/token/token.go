package token

import (
	"unify/internal/source"
)

// Token represents a single source token with its location.
// Tokens are immutable once produced by the lexer; whitespace and line
// continuations between tokens are not tokenized, they live in the byte gaps
// between spans and are reproduced verbatim on reassembly.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsString reports whether the token is a string literal of any flavor.
func (t Token) IsString() bool { return t.Kind == String }

// IsEOF reports whether the token marks the end of input.
func (t Token) IsEOF() bool { return t.Kind == EOF }
