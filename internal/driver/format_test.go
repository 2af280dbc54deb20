package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"unify/internal/diag"
	"unify/internal/strlit"
)

func TestFormatPathsInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	writeFile(t, path, "x = \"hi\"\n")

	results, err := FormatPaths(context.Background(), []string{path}, Options{
		Rules:   strlit.DefaultRules(),
		InPlace: true,
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Err != nil {
		t.Fatalf("result error: %v", results[0].Err)
	}
	if !results[0].Changed {
		t.Fatal("expected Changed")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "x = 'hi'\n" {
		t.Fatalf("file = %q", got)
	}
}

func TestFormatPathsDryRunProducesDiff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	src := "x = \"hi\"\n"
	writeFile(t, path, src)

	results, err := FormatPaths(context.Background(), []string{path}, Options{
		Rules: strlit.DefaultRules(),
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	res := results[0]
	if !res.Changed {
		t.Fatal("expected Changed")
	}
	if !bytes.Contains(res.Diff, []byte("before/"+path)) {
		t.Fatalf("diff missing before label:\n%s", res.Diff)
	}
	if !bytes.Contains(res.Diff, []byte("+x = 'hi'")) {
		t.Fatalf("diff missing changed line:\n%s", res.Diff)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != src {
		t.Fatalf("dry run modified the file: %q", got)
	}
}

func TestFormatPathsCheckOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	src := "x = \"hi\"\n"
	writeFile(t, path, src)

	results, err := FormatPaths(context.Background(), []string{path}, Options{
		Rules:     strlit.DefaultRules(),
		CheckOnly: true,
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	res := results[0]
	if !res.Changed {
		t.Fatal("expected Changed")
	}
	if res.Diff != nil {
		t.Fatal("check-only should not build a diff")
	}
	got, _ := os.ReadFile(path)
	if string(got) != src {
		t.Fatalf("check-only modified the file: %q", got)
	}
}

func TestFormatPathsCleanFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	writeFile(t, path, "x = 'hi'\n")

	results, err := FormatPaths(context.Background(), []string{path}, Options{
		Rules:   strlit.DefaultRules(),
		InPlace: true,
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if results[0].Changed {
		t.Fatal("clean file reported as changed")
	}
}

func TestFormatPathsMissingFileIsPerFileError(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.py")
	writeFile(t, good, "x = \"hi\"\n")
	missing := filepath.Join(dir, "missing.py")

	results, err := FormatPaths(context.Background(), []string{missing, good}, Options{
		Rules:   strlit.DefaultRules(),
		InPlace: true,
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	var sawErr, sawChanged bool
	for _, res := range results {
		if res.Path == good && res.Changed {
			sawChanged = true
		}
		if res.Path == missing && res.Err != nil {
			sawErr = true
		}
	}
	if !sawErr {
		t.Fatal("missing file did not produce a per-file error")
	}
	if !sawChanged {
		t.Fatal("good file was not formatted despite sibling error")
	}
}

func TestFormatPathsReportsIOFailures(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.py")

	bag := diag.NewBag(8)
	results, err := FormatPaths(context.Background(), []string{missing}, Options{
		Rules:    strlit.DefaultRules(),
		Reporter: diag.BagReporter{Bag: bag},
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if results[0].Err == nil {
		t.Fatal("expected a per-file error")
	}
	if bag.Len() != 1 {
		t.Fatalf("bag holds %d diagnostics, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.IOReadFailed {
		t.Errorf("code = %v, want %v", d.Code, diag.IOReadFailed)
	}
	if d.Severity != diag.SevError {
		t.Errorf("severity = %v, want %v", d.Severity, diag.SevError)
	}
	if !strings.Contains(d.Message, missing) {
		t.Errorf("message %q does not name the file", d.Message)
	}
}

func TestFormatPathsRecursiveParallel(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.py", "b.py", "sub/c.py"} {
		writeFile(t, filepath.Join(dir, name), "x = \"hi\"\n")
	}
	writeFile(t, filepath.Join(dir, "skip.txt"), "x = \"hi\"\n")

	events := make(chan Event, 64)
	results, err := FormatPaths(context.Background(), []string{dir}, Options{
		Rules:     strlit.DefaultRules(),
		InPlace:   true,
		Recursive: true,
		Jobs:      2,
		Events:    events,
	})
	close(events)
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, res := range results {
		if res.Err != nil || !res.Changed {
			t.Fatalf("result %+v", res)
		}
	}

	done := 0
	for ev := range events {
		if ev.Stage == StageDone {
			done++
		}
	}
	if done != 3 {
		t.Fatalf("got %d done events, want 3", done)
	}
}

func TestFormatPathsCacheSkipsCleanFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	writeFile(t, path, "x = 'hi'\n")

	cachePath := filepath.Join(dir, "cache.msgpack")
	cache := OpenCache(cachePath)

	opts := Options{Rules: strlit.DefaultRules(), InPlace: true, Cache: cache}
	if _, err := FormatPaths(context.Background(), []string{path}, opts); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := cache.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, _ := os.ReadFile(path)
	key := CleanKey(raw, opts.Rules)

	reopened := OpenCache(cachePath)
	if !reopened.IsClean(key) {
		t.Fatal("clean entry did not survive a save/load round trip")
	}

	// Different rules must miss: the key binds content and rules together.
	other := strlit.DefaultRules()
	other.PreferredQuote = '"'
	if reopened.IsClean(CleanKey(raw, other)) {
		t.Fatal("cache hit across rule sets")
	}
}

func TestFormatPathsPreservesEncoding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	bom := []byte{0xEF, 0xBB, 0xBF}
	writeFile(t, path, string(bom)+"x = \"hi\"\n")

	_, err := FormatPaths(context.Background(), []string{path}, Options{
		Rules:   strlit.DefaultRules(),
		InPlace: true,
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	got, _ := os.ReadFile(path)
	if !bytes.HasPrefix(got, bom) {
		t.Fatalf("BOM lost: %q", got)
	}
	if !bytes.Contains(got, []byte("x = 'hi'")) {
		t.Fatalf("content not formatted: %q", got)
	}
}
