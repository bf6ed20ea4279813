package fsops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces become hyphens", in: "The Go Programming Language", want: "the-go-programming-language"},
		{name: "unsafe characters stripped", in: `What? A "Title": Part*2`, want: "what-a-title-part-2"},
		{name: "runs collapse", in: "a  -  b", want: "a-b"},
		{name: "empty falls back", in: "", want: "untitled"},
		{name: "bare dot falls back", in: ".", want: "untitled"},
		{name: "only unsafe falls back", in: "???", want: "untitled"},
		{name: "extension dropped", in: "report.pdf", want: "report"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	t.Run("long names truncated", func(t *testing.T) {
		got := Sanitize(strings.Repeat("x", 500))
		if len(got) > 200 {
			t.Errorf("len = %d, want <= 200", len(got))
		}
	})
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()

	p1 := UniquePath(dir, "doc", ".md")
	if want := filepath.Join(dir, "doc.md"); p1 != want {
		t.Fatalf("first path = %s, want %s", p1, want)
	}
	if err := os.WriteFile(p1, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	p2 := UniquePath(dir, "doc", ".md")
	if want := filepath.Join(dir, "doc-1.md"); p2 != want {
		t.Fatalf("second path = %s, want %s", p2, want)
	}
	if err := os.WriteFile(p2, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	p3 := UniquePath(dir, "doc", "md") // missing dot tolerated
	if want := filepath.Join(dir, "doc-2.md"); p3 != want {
		t.Fatalf("third path = %s, want %s", p3, want)
	}
}

func TestWriteTextAtomic(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "library")

	path, err := WriteTextAtomic(dir, "doc", ".md", "hello")
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("content = %q", data)
	}

	// second write to the same stem does not clobber the first
	path2, err := WriteTextAtomic(dir, "doc", ".md", "other")
	if err != nil {
		t.Fatal(err)
	}
	if path2 == path {
		t.Errorf("second write reused %s", path)
	}

	// no temp droppings left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
}

func TestCopyFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "orig.pdf")
	if err := os.WriteFile(src, []byte("pdf bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(t.TempDir(), "originals")

	dst, err := CopyFile(src, dir, "orig", ".pdf")
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "pdf bytes" {
		t.Errorf("copied content = %q", data)
	}

	if _, err := CopyFile(filepath.Join(dir, "missing.pdf"), dir, "m", ".pdf"); err == nil {
		t.Error("expected error for missing source")
	}
}
