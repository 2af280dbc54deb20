package lexer

import (
	"unify/internal/diag"
	"unify/internal/token"
)

// scanString consumes a string literal starting at start (which may already
// cover a prefix like r, b, f, rb). The cursor sits on the opening quote.
//
// Lexing rules follow CPython's tokenizer as of the pre-3.12 grammar:
//   - a backslash neutralizes the following byte, including the quote, in
//     raw and non-raw strings alike (r"a\"b" is one token);
//   - backslash-newline continues a single-quoted string, except in raw
//     strings where it is an error;
//   - a bare newline terminates (with an error) a single-quoted string;
//   - triple-quoted strings run until the matching triple, or EOF (error).
func (lx *Lexer) scanString(start Mark, raw bool) token.Token {
	q := lx.cursor.Bump() // opening quote

	triple := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == q && b1 == q {
		lx.cursor.Bump()
		lx.cursor.Bump()
		triple = true
	} else if lx.cursor.Peek() == q {
		// empty string: '' or ""
		lx.cursor.Bump()
		return lx.tokenFrom(token.String, start)
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == q {
			if !triple {
				lx.cursor.Bump()
				return lx.tokenFrom(token.String, start)
			}
			if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == q && b1 == q && b2 == q {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.cursor.Bump()
				return lx.tokenFrom(token.String, start)
			}
			lx.cursor.Bump()
			continue
		}

		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			next := lx.cursor.Peek()
			if next == '\n' || next == '\r' {
				if !triple && raw {
					// raw strings cannot continue across a line
					sp := lx.cursor.SpanFrom(start)
					lx.errLex(diag.LexUnterminatedString, sp, "EOL in raw string literal")
					return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
				}
				lx.eatNewline()
				continue
			}
			lx.cursor.Bump()
			continue
		}

		if !triple && (b == '\n' || b == '\r') {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "EOL while scanning string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}

		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "EOF while scanning string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// stringPrefix reports whether name is a valid string-literal prefix: up to
// four letters drawn from r, u, b, f in any case and order. raw is true when
// the prefix contains r.
func stringPrefix(name []byte) (raw, ok bool) {
	if len(name) == 0 || len(name) > 4 {
		return false, false
	}
	for _, b := range name {
		switch b {
		case 'r', 'R':
			raw = true
		case 'u', 'U', 'b', 'B', 'f', 'F':
		default:
			return false, false
		}
	}
	return raw, true
}
