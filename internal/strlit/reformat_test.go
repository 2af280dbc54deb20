package strlit

import (
	"testing"
)

func TestUnifySimple(t *testing.T) {
	single := DefaultRules()
	double := DefaultRules()
	double.PreferredQuote = '"'

	cases := []struct {
		text  string
		rules Rules
		want  string
	}{
		{`"foo"`, single, `'foo'`},
		{`'foo'`, double, `"foo"`},
		{`'foo'`, single, `'foo'`},
		{`""`, single, `''`},
		{`u"x"`, single, `u'x'`},
		{`B"x"`, single, `B'x'`},
		{`r"a\nb"`, single, `r'a\nb'`},
		{`f"{x}"`, single, `f'{x}'`},
	}
	for _, tc := range cases {
		if got := Unify(tc.text, tc.rules); got != tc.want {
			t.Errorf("Unify(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestUnifyImmutable(t *testing.T) {
	rules := DefaultRules()
	cases := []string{
		`"""foo"""`,
		`'''foo'''`,
		`r"don't"`,
		`"a'b\"c"`,
		`f"{d['k']}"`,
	}
	for _, text := range cases {
		if got := Unify(text, rules); got != text {
			t.Errorf("Unify(%q) = %q, want unchanged", text, got)
		}
	}
}

func TestUnifySimpleEscaped(t *testing.T) {
	opposite := DefaultRules() // preferred ', escape opposite
	backslash := Rules{PreferredQuote: '\'', EscapeSimple: EscapeBackslash}
	backslashDouble := Rules{PreferredQuote: '"', EscapeSimple: EscapeBackslash}
	ignore := Rules{PreferredQuote: '\'', EscapeSimple: EscapeIgnore}

	cases := []struct {
		text  string
		rules Rules
		want  string
	}{
		// opposite: pick the delimiter that avoids escaping
		{`"foo's"`, opposite, `"foo's"`},
		{`'foo\'s'`, opposite, `"foo's"`},
		{`'say "hi"'`, opposite, `'say "hi"'`},
		{`"say \"hi\""`, opposite, `'say "hi"'`},

		// backslash: force the preferred delimiter, escaping as needed
		{`"foo's"`, backslash, `'foo\'s'`},
		{`'foo\'s'`, backslash, `'foo\'s'`},
		{`"foo's"`, backslashDouble, `"foo's"`},
		{`'foo\'s'`, backslashDouble, `"foo's"`},
		{`"say \"hi\""`, backslashDouble, `"say \"hi\""`},

		// ignore: hands off
		{`"foo's"`, ignore, `"foo's"`},
		{`'foo\'s'`, ignore, `'foo\'s'`},
	}
	for _, tc := range cases {
		if got := Unify(tc.text, tc.rules); got != tc.want {
			t.Errorf("Unify(%q, %v/%v) = %q, want %q",
				tc.text, string(tc.rules.PreferredQuote), tc.rules.EscapeSimple, got, tc.want)
		}
	}
}

// Even-length backslash runs are literal backslashes, not escapes.
func TestUnescapeQuoteBackslashRuns(t *testing.T) {
	cases := []struct {
		body string
		q    byte
		want string
	}{
		{`a\'b`, '\'', `a'b`},
		{`a\\'b`, '\'', `a\\'b`},
		{`a\\\'b`, '\'', `a\\'b`},
		{`a\\b`, '\'', `a\\b`},
		{`\'`, '\'', `'`},
		{`no quotes`, '\'', `no quotes`},
	}
	for _, tc := range cases {
		if got := unescapeQuote(tc.body, tc.q); got != tc.want {
			t.Errorf("unescapeQuote(%q) = %q, want %q", tc.body, got, tc.want)
		}
	}
}

func TestUnifyInterpolated(t *testing.T) {
	opposite := DefaultRules()
	backslash := Rules{PreferredQuote: '\'', EscapeSimple: EscapeBackslash}

	cases := []struct {
		text  string
		rules Rules
		want  string
	}{
		// literal-chunk quote drives the outer delimiter
		{`f"it's {x}"`, opposite, `f"it's {x}"`},
		{`f'it\'s {x}'`, opposite, `f"it's {x}"`},
		{`f"it's {x}"`, backslash, `f'it\'s {x}'`},

		// collision with an expression area keeps the token unchanged
		{`f"it's {d['k']}"`, backslash, `f"it's {d['k']}"`},
	}
	for _, tc := range cases {
		if got := Unify(tc.text, tc.rules); got != tc.want {
			t.Errorf("Unify(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestUnifyInterpolatedExprQuote(t *testing.T) {
	depended := Rules{PreferredQuote: '\'', EscapeSimple: EscapeOpposite, FStringExprQuote: ExprQuoteDepended}
	forceSingle := Rules{PreferredQuote: '\'', EscapeSimple: EscapeIgnore, FStringExprQuote: ExprQuoteSingle}
	forceDouble := Rules{PreferredQuote: '\'', EscapeSimple: EscapeIgnore, FStringExprQuote: ExprQuoteDouble}

	cases := []struct {
		name  string
		text  string
		rules Rules
		want  string
	}{
		{
			name: "depended converges expressions on the opposite of the new outer quote",
			// outer becomes " (lit contains '), so expressions move to '
			text:  `f'it\'s {d["k"]}'`,
			rules: depended,
			want:  `f"it's {d['k']}"`,
		},
		{
			name:  "force single inside expressions",
			text:  `f"it's {d["k"]}"`,
			rules: forceSingle,
			want:  `f"it's {d['k']}"`,
		},
		{
			name: "force double refused when it equals the outer quote",
			// rewriting to " would split the token; chunk stays as is
			text:  `f"it's {d['k']}"`,
			rules: forceDouble,
			want:  `f"it's {d['k']}"`,
		},
	}
	for _, tc := range cases {
		if got := Unify(tc.text, tc.rules); got != tc.want {
			t.Errorf("%s: Unify(%q) = %q, want %q", tc.name, tc.text, got, tc.want)
		}
	}
}

func TestUnifyIdempotent(t *testing.T) {
	rulesets := []Rules{
		DefaultRules(),
		{PreferredQuote: '"', EscapeSimple: EscapeOpposite},
		{PreferredQuote: '\'', EscapeSimple: EscapeBackslash},
		{PreferredQuote: '"', EscapeSimple: EscapeBackslash},
		{PreferredQuote: '\'', EscapeSimple: EscapeIgnore, FStringExprQuote: ExprQuoteDepended},
	}
	texts := []string{
		`'foo'`, `"foo"`, `"foo's"`, `'foo\'s'`, `'say "hi"'`,
		`r"don't"`, `'''x'''`, `f"it's {x}"`, `f"{d['k']}"`, `rb'a\x00'`,
	}
	for _, rules := range rulesets {
		for _, text := range texts {
			once := Unify(text, rules)
			twice := Unify(once, rules)
			if once != twice {
				t.Errorf("not idempotent under %+v: %q -> %q -> %q", rules, text, once, twice)
			}
		}
	}
}
