package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.rl", []byte("enum a {}\nenum b {}\n"))

	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Error("virtual file missing FileVirtual flag")
	}

	// "enum b" начинается на строке 2, колонка 1 (offset 10)
	start, end := fs.Resolve(Span{File: id, Start: 10, End: 16})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 7 {
		t.Errorf("end = %d:%d, want 2:7", end.Line, end.Col)
	}
}

func TestResolveFirstLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("one.rl", []byte("import a.b;"))
	start, _ := fs.Resolve(Span{File: id, Start: 7, End: 8})
	if start.Line != 1 || start.Col != 8 {
		t.Errorf("pos = %d:%d, want 1:8", start.Line, start.Col)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.rl", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		num  uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.num); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.num, got, tt.want)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.rl")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("enum a {}\r\nenum b {}\r\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if f.Flags&FileHadBOM == 0 {
		t.Error("BOM flag not set")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("CRLF flag not set")
	}
	if string(f.Content) != "enum a {}\nenum b {}\n" {
		t.Errorf("content = %q", f.Content)
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("x/./y.rl", []byte("a"))
	if _, ok := fs.GetByPath("x/y.rl"); !ok {
		t.Error("normalized path lookup failed")
	}
	if _, ok := fs.GetByPath("missing.rl"); ok {
		t.Error("lookup of missing path succeeded")
	}
}
