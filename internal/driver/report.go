package driver

import (
	"sync"

	"unify/internal/diag"
	"unify/internal/source"
)

// lockedReporter serializes reports from parallel workers onto a single
// downstream reporter, which need not be safe for concurrent use.
type lockedReporter struct {
	mu   sync.Mutex
	next diag.Reporter
}

func (l *lockedReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next.Report(code, sev, primary, msg, notes)
}
