package strlit

import (
	"strings"
)

// Classify maps a decomposed string to its rewrite variant. Decision order,
// first match wins:
//
//  1. triple-quoted                          -> immutable
//  2. body has neither quote character       -> simple
//  3. raw prefix                             -> immutable
//  4. f prefix                               -> chunk-wise analysis below
//  5. body has both quote characters         -> immutable
//  6. body has exactly one quote character   -> simple-escaped
//  7. anything else                          -> immutable
func Classify(d Decomposed) Variant {
	if d.Triple() {
		return Variant{Kind: VariantImmutable}
	}

	hasSingle := strings.IndexByte(d.Body, '\'') >= 0
	hasDouble := strings.IndexByte(d.Body, '"') >= 0

	if !hasSingle && !hasDouble {
		return Variant{Kind: VariantSimple}
	}

	if d.Raw() {
		// a raw body cannot be re-escaped; backslash has no escape meaning
		return Variant{Kind: VariantImmutable}
	}

	if d.Interpolated() {
		return classifyInterpolated(d)
	}

	if hasSingle && hasDouble {
		return Variant{Kind: VariantImmutable}
	}
	return Variant{Kind: VariantSimpleEscaped}
}

// classifyInterpolated inspects literal-text and expression segments of an
// f-string body independently. The literal text must contain exactly one
// quote character kind, and the expression areas must not mix both kinds;
// everything else stays immutable.
func classifyInterpolated(d Decomposed) Variant {
	chunks := SplitFString(d.Body)

	var lit, expr strings.Builder
	for _, c := range chunks {
		if c.IsExpr {
			expr.WriteString(c.Text)
		} else {
			lit.WriteString(c.Text)
		}
	}

	litSingle := strings.IndexByte(lit.String(), '\'') >= 0
	litDouble := strings.IndexByte(lit.String(), '"') >= 0
	if litSingle && litDouble {
		return Variant{Kind: VariantImmutable}
	}
	if !litSingle && !litDouble {
		// all quotes live inside expression areas; re-quoting the outer
		// literal around them is not provably safe
		return Variant{Kind: VariantImmutable}
	}

	exprSingle := strings.IndexByte(expr.String(), '\'') >= 0
	exprDouble := strings.IndexByte(expr.String(), '"') >= 0
	if exprSingle && exprDouble {
		return Variant{Kind: VariantImmutable}
	}

	return Variant{Kind: VariantSimpleEscapedInterp, Chunks: chunks}
}
