package strlit

import (
	"fmt"
)

// EscapeStrategy governs how a single embedded quote character is handled
// when a literal cannot be re-quoted without escaping.
type EscapeStrategy uint8

const (
	// EscapeOpposite picks the delimiter opposite to the embedded quote so
	// no escaping is needed.
	EscapeOpposite EscapeStrategy = iota
	// EscapeBackslash forces the preferred delimiter and backslash-escapes
	// the embedded quote when required.
	EscapeBackslash
	// EscapeIgnore leaves such literals untouched.
	EscapeIgnore
)

func (s EscapeStrategy) String() string {
	switch s {
	case EscapeOpposite:
		return "opposite"
	case EscapeBackslash:
		return "backslash"
	case EscapeIgnore:
		return "ignore"
	}
	return "unknown"
}

// ParseEscapeStrategy parses the CLI/config spelling of an escape strategy.
func ParseEscapeStrategy(s string) (EscapeStrategy, error) {
	switch s {
	case "opposite":
		return EscapeOpposite, nil
	case "backslash":
		return EscapeBackslash, nil
	case "ignore":
		return EscapeIgnore, nil
	}
	return 0, fmt.Errorf("unknown escape strategy %q (want opposite|backslash|ignore)", s)
}

// ExprQuote governs quoting inside f-string expression areas.
type ExprQuote uint8

const (
	// ExprQuoteIgnore leaves expression-area quoting untouched.
	ExprQuoteIgnore ExprQuote = iota
	// ExprQuoteSingle forces single quotes inside expression areas.
	ExprQuoteSingle
	// ExprQuoteDouble forces double quotes inside expression areas.
	ExprQuoteDouble
	// ExprQuoteDepended uses the opposite of whatever quote the outer
	// literal ends up with.
	ExprQuoteDepended
)

func (q ExprQuote) String() string {
	switch q {
	case ExprQuoteIgnore:
		return "ignore"
	case ExprQuoteSingle:
		return "single"
	case ExprQuoteDouble:
		return "double"
	case ExprQuoteDepended:
		return "depended"
	}
	return "unknown"
}

// ParseExprQuote parses the CLI/config spelling of an f-string expression
// quote mode.
func ParseExprQuote(s string) (ExprQuote, error) {
	switch s {
	case "", "ignore":
		return ExprQuoteIgnore, nil
	case "single":
		return ExprQuoteSingle, nil
	case "double":
		return ExprQuoteDouble, nil
	case "depended":
		return ExprQuoteDepended, nil
	}
	return 0, fmt.Errorf("unknown f-string quote mode %q (want single|double|depended|ignore)", s)
}

// Rules is the immutable configuration for one formatting pass. It is
// created once per invocation and passed by value; nothing here mutates it.
type Rules struct {
	PreferredQuote   byte // '\'' or '"'
	EscapeSimple     EscapeStrategy
	FStringExprQuote ExprQuote
}

// DefaultRules mirrors the CLI defaults.
func DefaultRules() Rules {
	return Rules{
		PreferredQuote:   '\'',
		EscapeSimple:     EscapeOpposite,
		FStringExprQuote: ExprQuoteIgnore,
	}
}

// Validate rejects rules the engine cannot honor.
func (r Rules) Validate() error {
	if r.PreferredQuote != '\'' && r.PreferredQuote != '"' {
		return fmt.Errorf("preferred quote must be ' or \", got %q", string(r.PreferredQuote))
	}
	return nil
}

func oppositeQuote(q byte) byte {
	if q == '\'' {
		return '"'
	}
	return '\''
}
