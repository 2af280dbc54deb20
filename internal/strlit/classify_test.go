package strlit

import (
	"testing"
)

func classifyText(t *testing.T, text string) VariantKind {
	t.Helper()
	d, ok := Decompose(text)
	if !ok {
		t.Fatalf("Decompose(%q) failed", text)
	}
	return Classify(d).Kind
}

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		want VariantKind
	}{
		// triple-quoted first, regardless of content
		{`'''abc'''`, VariantImmutable},
		{`"""a'b"""`, VariantImmutable},

		// neither quote in the body
		{`'abc'`, VariantSimple},
		{`"abc"`, VariantSimple},
		{`''`, VariantSimple},
		{`r'a\nb'`, VariantSimple},
		{`b"bytes"`, VariantSimple},
		{`f'{x}'`, VariantSimple},

		// raw with a quote conflict
		{`r"don't"`, VariantImmutable},
		{`rb'a"b'`, VariantImmutable},

		// both quote characters present
		{`"a'b\"c"`, VariantImmutable},

		// exactly one quote character
		{`"don't"`, VariantSimpleEscaped},
		{`'don\'t'`, VariantSimpleEscaped},
		{`'say "hi"'`, VariantSimpleEscaped},

		// f-strings: quotes in literal text only
		{`f"it's {x}"`, VariantSimpleEscapedInterp},
		// quotes only inside the expression area
		{`f"{d['k']}"`, VariantImmutable},
		// literal quote plus consistent expression quotes
		{`f"it's {d['k']}"`, VariantSimpleEscapedInterp},
		// literal text with both quote kinds
		{`f"it's \"x\" {y}"`, VariantImmutable},
		// expression areas mixing both quote kinds
		{`f"it's {a['k'] + b[\"j\"]}"`, VariantImmutable},
	}

	for _, tc := range cases {
		if got := classifyText(t, tc.text); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestClassifyCarriesChunks(t *testing.T) {
	d, ok := Decompose(`f"a'b{x}c"`)
	if !ok {
		t.Fatal("decompose failed")
	}
	v := Classify(d)
	if v.Kind != VariantSimpleEscapedInterp {
		t.Fatalf("kind = %v", v.Kind)
	}
	if len(v.Chunks) != 3 {
		t.Fatalf("chunks = %v", v.Chunks)
	}
	if !v.Chunks[1].IsExpr || v.Chunks[1].Text != "{x}" {
		t.Fatalf("middle chunk = %+v", v.Chunks[1])
	}
}
