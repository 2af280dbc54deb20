package lexer

import (
	"unify/internal/diag"
	"unify/internal/source"
)

// Reporter is a thin sink for lexer diagnostics; formatting them is the
// caller's business. A nil reporter means errors are counted but not
// forwarded.
type Reporter interface {
	Report(code diag.Code, span source.Span, msg string)
}

// Options configures a Lexer.
type Options struct {
	Reporter Reporter
}

// BagReporter adapts a diag.Bag to the lexer Reporter contract.
type BagReporter struct{ Bag *diag.Bag }

// Report stores the diagnostic as an error in the underlying bag.
func (r BagReporter) Report(code diag.Code, span source.Span, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(diag.NewError(code, span, msg))
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.errors++
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}
