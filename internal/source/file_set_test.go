package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualAssignsSequentialIDs(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.py", []byte("x = 1\n"))
	b := fs.AddVirtual("b.py", []byte("y = 2\n"))

	if a == b {
		t.Fatalf("expected distinct ids, got %d and %d", a, b)
	}
	if fs.Len() != 2 {
		t.Fatalf("expected 2 files, got %d", fs.Len())
	}
	if fs.Get(a).Path != "a.py" {
		t.Errorf("unexpected path: %q", fs.Get(a).Path)
	}
	if fs.Get(a).Flags&FileVirtual == 0 {
		t.Errorf("virtual flag not set")
	}
}

func TestLoadKeepsBytesExactly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.py")
	content := []byte("\xEF\xBB\xBFx = 'a'\r\ny = 'b'\r\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != string(content) {
		t.Fatalf("content was normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Errorf("BOM flag not set")
	}
	if f.Flags&FileHadCRLF == 0 {
		t.Errorf("CRLF flag not set")
	}
}

func TestLineColResolution(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.py", []byte("ab\ncd\n"))
	f := fs.Get(id)

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the newline itself
		{3, LineCol{2, 1}},
		{4, LineCol{2, 2}},
	}
	for _, tc := range cases {
		if got := f.LineCol(tc.off); got != tc.want {
			t.Errorf("LineCol(%d) = %v, want %v", tc.off, got, tc.want)
		}
	}

	if got := f.Line(1); got != "ab" {
		t.Errorf("Line(1) = %q", got)
	}
	if got := f.Line(2); got != "cd" {
		t.Errorf("Line(2) = %q", got)
	}
}
