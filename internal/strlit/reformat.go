package strlit

import (
	"strings"
)

// Unify rewrites one string token's text toward the rule set. The returned
// text equals the input whenever the token cannot be changed safely.
func Unify(text string, rules Rules) string {
	d, ok := Decompose(text)
	if !ok {
		return text
	}
	return Reformat(d, Classify(d), rules)
}

// Reformat applies the variant's rewrite rule. The switch is exhaustive over
// the closed VariantKind set; an unknown kind is a programming error.
func Reformat(d Decomposed, v Variant, rules Rules) string {
	switch v.Kind {
	case VariantImmutable:
		return d.Compose()
	case VariantSimple:
		q := string(rules.PreferredQuote)
		return d.Prefix + q + d.Body + q
	case VariantSimpleEscaped:
		return reformatSimpleEscaped(d, rules)
	case VariantSimpleEscapedInterp:
		return reformatInterpolated(d, v.Chunks, rules)
	}
	panic("strlit: unhandled variant " + v.Kind.String())
}

func reformatSimpleEscaped(d Decomposed, rules Rules) string {
	if rules.EscapeSimple == EscapeIgnore {
		return d.Compose()
	}

	qb := bodyQuote(d.Body)
	body := unescapeQuote(d.Body, qb)

	var nq byte
	switch rules.EscapeSimple {
	case EscapeOpposite:
		nq = oppositeQuote(qb)
	case EscapeBackslash:
		nq = rules.PreferredQuote
		if nq == qb {
			body = escapeQuote(body, qb)
		}
	default:
		return d.Compose()
	}
	return d.Prefix + string(nq) + body + string(nq)
}

// reformatInterpolated mirrors the SimpleEscaped decision, scoped to the
// literal-text chunks; expression chunks are rewritten independently per the
// f-string expression-quote mode. A chunk that cannot be rewritten without
// ambiguity is kept verbatim.
func reformatInterpolated(d Decomposed, chunks []Chunk, rules Rules) string {
	var lit strings.Builder
	for _, c := range chunks {
		if !c.IsExpr {
			lit.WriteString(c.Text)
		}
	}
	qb := bodyQuote(lit.String())

	nq := d.Quote[0]
	escape := false
	switch rules.EscapeSimple {
	case EscapeIgnore:
		// outer delimiter stays; only expression areas may change
	case EscapeOpposite:
		nq = oppositeQuote(qb)
	case EscapeBackslash:
		nq = rules.PreferredQuote
		escape = nq == qb
	}

	exprTarget, rewriteExprs := exprQuoteTarget(rules, nq)

	// rewrite expression chunks first; whether the token can adopt the new
	// outer delimiter depends on the quotes left inside them afterwards
	final := make([]string, len(chunks))
	for i, c := range chunks {
		final[i] = c.Text
		if c.IsExpr && rewriteExprs {
			if rewritten, ok := rewriteExprChunk(c.Text, exprTarget); ok {
				final[i] = rewritten
			}
		}
	}

	// the new outer delimiter must not occur inside an expression area, or
	// the rewritten token would stop lexing as one string
	for i, c := range chunks {
		if c.IsExpr && strings.IndexByte(final[i], nq) >= 0 {
			return d.Compose()
		}
	}

	var out strings.Builder
	for i, c := range chunks {
		switch {
		case c.IsExpr:
			out.WriteString(final[i])
		case rules.EscapeSimple == EscapeIgnore:
			out.WriteString(c.Text)
		default:
			text := unescapeQuote(c.Text, qb)
			if escape {
				text = escapeQuote(text, qb)
			}
			out.WriteString(text)
		}
	}
	return d.Prefix + string(nq) + out.String() + string(nq)
}

// exprQuoteTarget resolves the quote character to force inside expression
// areas, if any. A target equal to the outer delimiter is refused: nesting
// the outer quote inside an expression would split the token.
func exprQuoteTarget(rules Rules, outer byte) (byte, bool) {
	var target byte
	switch rules.FStringExprQuote {
	case ExprQuoteIgnore:
		return 0, false
	case ExprQuoteSingle:
		target = '\''
	case ExprQuoteDouble:
		target = '"'
	case ExprQuoteDepended:
		target = oppositeQuote(outer)
	}
	if target == outer {
		return 0, false
	}
	return target, true
}

// rewriteExprChunk re-quotes nested string literals inside one expression
// chunk. Only literals that classify as Simple are touched; any construct
// that would need escaping (or that this scanner cannot delimit, such as a
// nested triple quote) makes the whole chunk come back unchanged.
func rewriteExprChunk(chunk string, target byte) (string, bool) {
	var out strings.Builder
	changed := false

	i := 0
	for i < len(chunk) {
		b := chunk[i]
		if b != '\'' && b != '"' {
			out.WriteByte(b)
			i++
			continue
		}

		// pull an adjacent r/u/b/f prefix back out of what was already
		// written, so the whole nested token is rewritten as a unit
		start := i
		for start > 0 && isPrefixLetter(chunk[start-1]) {
			start--
		}
		if start > 0 && isIdentByte(chunk[start-1]) {
			// quote glued to a longer identifier: not a literal we know
			return chunk, false
		}

		end, ok := nestedLiteralEnd(chunk, i)
		if !ok {
			return chunk, false
		}

		tokenText := chunk[start:end]
		d, ok := Decompose(tokenText)
		if !ok {
			return chunk, false
		}
		if Classify(d).Kind != VariantSimple {
			return chunk, false
		}

		trim := out.String()
		out.Reset()
		out.WriteString(trim[:len(trim)-(i-start)])
		rewritten := Reformat(d, Variant{Kind: VariantSimple}, Rules{PreferredQuote: target})
		out.WriteString(rewritten)
		if rewritten != tokenText {
			changed = true
		}
		i = end
	}

	if !changed {
		return chunk, false
	}
	return out.String(), true
}

// nestedLiteralEnd finds the end offset (exclusive) of a single-quote-
// delimited literal starting at the quote at position i. Triple quotes and
// unterminated literals are rejected.
func nestedLiteralEnd(chunk string, i int) (int, bool) {
	q := chunk[i]
	if i+2 < len(chunk) && chunk[i+1] == q && chunk[i+2] == q {
		return 0, false // nested triple: out of scope
	}
	j := i + 1
	for j < len(chunk) {
		switch chunk[j] {
		case '\\':
			j += 2
		case q:
			return j + 1, true
		default:
			j++
		}
	}
	return 0, false
}

func bodyQuote(body string) byte {
	if strings.IndexByte(body, '\'') >= 0 {
		return '\''
	}
	return '"'
}

// unescapeQuote removes the escaping backslash from every escaped q in body.
// An odd run of backslashes immediately before q loses exactly one
// backslash; even runs are literal backslashes and stay.
func unescapeQuote(body string, q byte) string {
	var b strings.Builder
	b.Grow(len(body))
	i := 0
	for i < len(body) {
		if body[i] != '\\' {
			b.WriteByte(body[i])
			i++
			continue
		}
		j := i
		for j < len(body) && body[j] == '\\' {
			j++
		}
		run := j - i
		if j < len(body) && body[j] == q && run%2 == 1 {
			run--
		}
		for range run {
			b.WriteByte('\\')
		}
		i = j
	}
	return b.String()
}

// escapeQuote inserts a backslash before every occurrence of q.
func escapeQuote(body string, q byte) string {
	var b strings.Builder
	b.Grow(len(body) + 2)
	for i := 0; i < len(body); i++ {
		if body[i] == q {
			b.WriteByte('\\')
		}
		b.WriteByte(body[i])
	}
	return b.String()
}

func isIdentByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
