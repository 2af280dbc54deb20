package strlit

// VariantKind tags the closed set of rewrite strategies a string token can
// be assigned. There is deliberately no open-ended escape hatch: every kind
// is matched exhaustively in Reformat, so adding a new unsafe case is a
// compile-visible decision.
type VariantKind uint8

const (
	// VariantImmutable leaves the token byte-for-byte untouched.
	VariantImmutable VariantKind = iota
	// VariantSimple has neither quote character in the body; the delimiter
	// can be swapped freely.
	VariantSimple
	// VariantSimpleEscaped has exactly one of the two quote characters in
	// the body and needs an escape-strategy decision.
	VariantSimpleEscaped
	// VariantSimpleEscapedInterp is a SimpleEscaped f-string whose body has
	// been split into literal and expression chunks.
	VariantSimpleEscapedInterp
)

func (k VariantKind) String() string {
	switch k {
	case VariantImmutable:
		return "immutable"
	case VariantSimple:
		return "simple"
	case VariantSimpleEscaped:
		return "simple-escaped"
	case VariantSimpleEscapedInterp:
		return "simple-escaped-interpolated"
	}
	return "unknown"
}

// Variant is the classification result for one decomposed string. Chunks is
// populated only for VariantSimpleEscapedInterp.
type Variant struct {
	Kind   VariantKind
	Chunks []Chunk
}
