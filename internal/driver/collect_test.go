package driver

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestCollectFilesRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "")
	writeFile(t, filepath.Join(dir, "b.txt"), "")
	writeFile(t, filepath.Join(dir, "pkg", "c.py"), "")
	writeFile(t, filepath.Join(dir, ".hidden.py"), "")
	writeFile(t, filepath.Join(dir, ".git", "d.py"), "")

	got, err := CollectFiles([]string{dir}, true, []string{".py"})
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.py"),
		filepath.Join(dir, "pkg", "c.py"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCollectFilesExplicitFileKeepsExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.txt")
	writeFile(t, path, "")

	got, err := CollectFiles([]string{path, path}, true, []string{".py"})
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}
	if len(got) != 1 || got[0] != path {
		t.Fatalf("got %v, want [%s]", got, path)
	}
}

func TestCollectFilesDirWithoutRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "")

	// Without -r a directory argument is passed through as-is and fails
	// later at the read stage.
	got, err := CollectFiles([]string{dir}, false, []string{".py"})
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}
	if len(got) != 1 || got[0] != filepath.Clean(dir) {
		t.Fatalf("got %v, want [%s]", got, dir)
	}
}
