package driver

import (
	"bytes"
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"unify/internal/diag"
	"unify/internal/format"
	"unify/internal/source"
	"unify/internal/strlit"
	"unify/internal/textenc"
)

// Stage tags a progress event for one file.
type Stage uint8

const (
	// StageQueued is emitted once per file before work starts.
	StageQueued Stage = iota
	// StageFormatting is emitted when a worker picks the file up.
	StageFormatting
	// StageDone is emitted with the final Changed/Err state.
	StageDone
)

// Event feeds progress consumers (the terminal UI). Emission is best-effort:
// a nil channel disables it.
type Event struct {
	Path    string
	Stage   Stage
	Changed bool
	Err     error
}

// Options configures a formatting run.
type Options struct {
	Rules      strlit.Rules
	InPlace    bool
	CheckOnly  bool
	Recursive  bool
	Extensions []string
	// Jobs bounds parallel workers; <=0 means one per CPU.
	Jobs int
	// Cache, when non-nil, is consulted and updated with clean files.
	Cache *Cache
	// Events, when non-nil, receives per-file progress.
	Events chan<- Event
	// Reporter receives per-file IO failures as IO-coded diagnostics in
	// addition to Result.Err. Optional; it does not have to be safe for
	// concurrent use.
	Reporter diag.Reporter
}

// Result captures the outcome of formatting a single file.
type Result struct {
	Path    string
	Changed bool
	Err     error
	// Diff holds the unified diff in the default (dry-run) mode.
	Diff []byte
}

// FormatPaths expands paths per opts and formats every file, in parallel at
// file granularity. Per-file failures land in the corresponding Result and
// never abort the rest of the run; only argument or context problems return
// an error.
func FormatPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	if err := opts.Rules.Validate(); err != nil {
		return nil, err
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".py"}
	}
	files, err := CollectFiles(paths, opts.Recursive, exts)
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	rep := opts.Reporter
	if rep == nil {
		rep = diag.NopReporter{}
	}
	opts.Reporter = &lockedReporter{next: rep}

	for _, path := range files {
		emit(opts.Events, Event{Path: path, Stage: StageQueued})
	}

	results := make([]Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Path: path, Err: err}
				return err
			}
			emit(opts.Events, Event{Path: path, Stage: StageFormatting})
			results[i] = formatOne(path, opts)
			emit(opts.Events, Event{
				Path:    path,
				Stage:   StageDone,
				Changed: results[i].Changed,
				Err:     results[i].Err,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(path string, opts Options) Result {
	res := Result{Path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		opts.Reporter.Report(diag.IOReadFailed, diag.SevError, source.Span{}, path+": "+err.Error(), nil)
		return res
	}

	key := CleanKey(raw, opts.Rules)
	if opts.Cache.IsClean(key) {
		return res
	}

	text, enc, err := textenc.Decode(raw)
	if err != nil {
		res.Err = err
		opts.Reporter.Report(diag.IOBadEncoding, diag.SevError, source.Span{}, path+": "+err.Error(), nil)
		return res
	}

	formatted := format.Source(text, opts.Rules)
	if bytes.Equal(formatted, text) {
		opts.Cache.MarkClean(key)
		return res
	}
	res.Changed = true

	switch {
	case opts.CheckOnly:
		// report only

	case opts.InPlace:
		out, encodeErr := textenc.Encode(formatted, enc)
		if encodeErr != nil {
			res.Err = encodeErr
			opts.Reporter.Report(diag.IOBadEncoding, diag.SevError, source.Span{}, path+": "+encodeErr.Error(), nil)
			return res
		}
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if writeErr := os.WriteFile(path, out, mode.Perm()); writeErr != nil {
			res.Err = writeErr
			opts.Reporter.Report(diag.IOWriteFailed, diag.SevError, source.Span{}, path+": "+writeErr.Error(), nil)
		}

	default:
		res.Diff, res.Err = unifiedDiff(text, formatted, path)
	}
	return res
}

func emit(ch chan<- Event, ev Event) {
	if ch != nil {
		ch <- ev
	}
}
