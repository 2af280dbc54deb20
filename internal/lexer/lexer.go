package lexer

import (
	"unify/internal/diag"
	"unify/internal/source"
	"unify/internal/token"
)

// Lexer walks Python source and yields significant tokens: strings,
// comments, names, numbers, and operator bytes. Whitespace, newlines, and
// backslash line continuations are skipped; they stay in the byte gaps
// between token spans and the reassembler copies them verbatim.
//
// This is deliberately not a full Python tokenizer: it has no INDENT/DEDENT
// logic and no grammar. It only needs to find string literals without being
// fooled by quotes in comments or hashes in strings.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	errors int
}

// New creates a lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Errors returns the number of lexical errors reported so far.
func (lx *Lexer) Errors() int {
	return lx.errors
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipGap()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.cursor.SpanFrom(lx.cursor.Mark()),
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '#':
		return lx.scanComment()

	case ch == '\'' || ch == '"':
		return lx.scanString(lx.cursor.Mark(), false)

	case isIdentStartByte(ch) || ch >= 0x80:
		return lx.scanNameOrString()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	default:
		return lx.scanOp()
	}
}

// Tokenize drains the lexer and returns all tokens including the final EOF.
func Tokenize(file *source.File, opts Options) ([]token.Token, int) {
	lx := New(file, opts)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out, lx.Errors()
		}
	}
}

// skipGap consumes whitespace, newlines, and backslash-newline line
// continuations. The consumed bytes are never emitted; reassembly restores
// them from the original buffer.
func (lx *Lexer) skipGap() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case ' ', '\t', '\f', '\r', '\n':
			lx.cursor.Bump()
		case '\\':
			_, b1, ok := lx.cursor.Peek2()
			if ok && (b1 == '\n' || b1 == '\r') {
				lx.cursor.Bump() // backslash
				lx.eatNewline()
				continue
			}
			return
		default:
			return
		}
	}
}

func (lx *Lexer) eatNewline() {
	if lx.cursor.Eat('\r') {
		lx.cursor.Eat('\n')
		return
	}
	lx.cursor.Eat('\n')
}

func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || b == '\r' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.tokenFrom(token.Comment, start)
}

// scanNameOrString consumes an identifier; if it turns out to be a string
// prefix (any mix of r/u/b/f) glued to a quote, it continues into the string
// so the prefix is part of the string token.
func (lx *Lexer) scanNameOrString() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if !isIdentContinueByte(b) && b < 0x80 {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	name := lx.file.Content[sp.Start:sp.End]

	if q := lx.cursor.Peek(); q == '\'' || q == '"' {
		if raw, ok := stringPrefix(name); ok {
			return lx.scanString(start, raw)
		}
	}
	return lx.tokenFrom(token.Name, start)
}

func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	prev := byte(0)
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b) || isIdentContinueByte(b) || b == '.':
			prev = b
			lx.cursor.Bump()
		case (b == '+' || b == '-') && (prev == 'e' || prev == 'E'):
			// exponent sign: 1e+5
			prev = b
			lx.cursor.Bump()
		default:
			return lx.tokenFrom(token.Number, start)
		}
	}
	return lx.tokenFrom(token.Number, start)
}

// scanOp consumes one operator or punctuation byte. Non-printable control
// bytes are not valid Python source outside string literals; they produce an
// Invalid token so the file fails open instead of being rewritten blindly.
func (lx *Lexer) scanOp() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()
	if b < 0x20 || b == 0x7f {
		sp := lx.cursor.SpanFrom(start)
		code, msg := diag.LexUnknownChar, "invalid non-printable character in source"
		if b == 0 {
			code, msg = diag.LexNulByte, "source code cannot contain null bytes"
		}
		lx.errLex(code, sp, msg)
		return token.Token{
			Kind: token.Invalid,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}
	return lx.tokenFrom(token.Op, start)
}

func (lx *Lexer) isNumberAfterDot() bool {
	_, b1, ok := lx.cursor.Peek2()
	return ok && isDec(b1)
}

func (lx *Lexer) tokenFrom(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
