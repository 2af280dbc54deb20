// Package diag carries diagnostics between the lexer, the driver, and the
// rendering layer.
//
// Does: severities, stable codes, a bounded Bag, and the Reporter contract.
// Does not: formatting of diagnostics (see internal/diagfmt) or recovery
// decisions (the driver fails open on lexical errors).
package diag
