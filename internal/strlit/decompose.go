package strlit

import (
	"strings"
)

// Decomposed is a string token split into prefix, quote delimiter, and raw
// body. Prefix keeps its original casing so Compose reproduces the token
// byte-for-byte; membership checks fold case.
type Decomposed struct {
	Prefix string // original spelling, any mix of r/u/b/f
	Quote  string // "'", `"`, "'''" or `"""`
	Body   string // raw inner text, escapes untouched
}

// Decompose splits a string token's text. ok is false when the text does not
// match the literal grammar; callers treat that as an immutable token.
// Direct character scan, no regex: prefix letters, delimiter detection via
// run length of the first quote character, body slice.
func Decompose(text string) (Decomposed, bool) {
	i := 0
	for i < len(text) && isPrefixLetter(text[i]) {
		i++
		if i > 4 {
			return Decomposed{}, false
		}
	}
	if i >= len(text) {
		return Decomposed{}, false
	}

	q := text[i]
	if q != '\'' && q != '"' {
		return Decomposed{}, false
	}

	quoteLen := 1
	if i+2 < len(text) && text[i+1] == q && text[i+2] == q {
		quoteLen = 3
		if len(text)-i < 6 {
			return Decomposed{}, false
		}
	}

	delim := text[i : i+quoteLen]
	bodyStart := i + quoteLen
	bodyEnd := len(text) - quoteLen
	if bodyEnd < bodyStart {
		return Decomposed{}, false
	}
	if text[bodyEnd:] != delim {
		return Decomposed{}, false
	}

	return Decomposed{
		Prefix: text[:i],
		Quote:  delim,
		Body:   text[bodyStart:bodyEnd],
	}, true
}

// Compose rebuilds the exact original token text.
func (d Decomposed) Compose() string {
	return d.Prefix + d.Quote + d.Body + d.Quote
}

// Triple reports whether the literal uses a triple-quoted delimiter.
func (d Decomposed) Triple() bool {
	return len(d.Quote) == 3
}

// Raw reports whether the prefix contains r in any case.
func (d Decomposed) Raw() bool {
	return strings.ContainsAny(d.Prefix, "rR")
}

// Interpolated reports whether the prefix contains f in any case.
func (d Decomposed) Interpolated() bool {
	return strings.ContainsAny(d.Prefix, "fF")
}

func isPrefixLetter(b byte) bool {
	switch b {
	case 'r', 'R', 'u', 'U', 'b', 'B', 'f', 'F':
		return true
	}
	return false
}
