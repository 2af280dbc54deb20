// Package driver glues the quote-unification core to the filesystem: path
// collection, encoding-aware read/write, parallel per-file formatting, diff
// generation, and the clean-file cache.
//
// The core (internal/format, internal/strlit) stays free of IO; everything
// here is the "collaborator" side of that boundary.
package driver
