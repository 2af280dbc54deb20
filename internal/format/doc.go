// Package format contains the quote-unification pass over a lexed source
// buffer: classify every string token, rewrite the eligible ones, and
// splice the results back over the original bytes.
//
// Does: the per-buffer formatting entry points used by the driver and tests.
// Does not: IO, encoding, or path handling (see internal/driver and
// internal/textenc).
package format
