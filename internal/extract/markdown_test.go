package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/candlekeep/candlekeep/constants"
)

func writeMarkdown(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMarkdownExtractor(t *testing.T) {
	e := NewMarkdownExtractor(nil)
	ctx := context.Background()

	t.Run("front matter wins over structure", func(t *testing.T) {
		path := writeMarkdown(t, "doc.md", "---\ntitle: Declared Title\nauthor: Declared Author\n---\n# Structural Title\n\nbody\n")
		draft, err := e.Extract(ctx, path)
		if err != nil {
			t.Fatal(err)
		}
		if draft.Title != "Declared Title" || draft.Author != "Declared Author" {
			t.Errorf("metadata = %q / %q", draft.Title, draft.Author)
		}
		if draft.SourceType != constants.SourceMarkdown {
			t.Errorf("source type = %s", draft.SourceType)
		}
		if draft.PageCount != nil {
			t.Errorf("page count should stay unset, got %d", *draft.PageCount)
		}
	})

	t.Run("first level-1 heading as title fallback", func(t *testing.T) {
		path := writeMarkdown(t, "doc.md", "intro paragraph\n\n## Early Subsection\n\n# Real Title\n\nbody\n")
		draft, err := e.Extract(ctx, path)
		if err != nil {
			t.Fatal(err)
		}
		if draft.Title != "Real Title" {
			t.Errorf("title = %q, want %q", draft.Title, "Real Title")
		}
	})

	t.Run("headings build the toc outside fences", func(t *testing.T) {
		body := "# One\n\n```\n# not a heading\n```\n\n## Two\n\n####### too deep\n\n#nospace\n"
		path := writeMarkdown(t, "doc.md", body)
		draft, err := e.Extract(ctx, path)
		if err != nil {
			t.Fatal(err)
		}
		if draft.ChapterCount != 2 || len(draft.TOC) != 2 {
			t.Fatalf("toc = %+v", draft.TOC)
		}
		if draft.TOC[0].Title != "One" || draft.TOC[0].Level != 1 {
			t.Errorf("first entry = %+v", draft.TOC[0])
		}
		if draft.TOC[1].Title != "Two" || draft.TOC[1].Level != 2 {
			t.Errorf("second entry = %+v", draft.TOC[1])
		}
		if draft.TOC[0].Page != 0 {
			t.Errorf("markdown toc entries carry page 0, got %d", draft.TOC[0].Page)
		}
	})

	t.Run("filename fallback when no headings", func(t *testing.T) {
		path := writeMarkdown(t, "Notes by Casey.md", "plain prose only\n")
		draft, err := e.Extract(ctx, path)
		if err != nil {
			t.Fatal(err)
		}
		if draft.Title != "Notes" || draft.Author != "Casey" {
			t.Errorf("metadata = %q / %q", draft.Title, draft.Author)
		}
	})

	t.Run("invalid utf8 is fatal", func(t *testing.T) {
		path := writeMarkdown(t, "doc.md", "ok so far \xff\xfe broken")
		if _, err := e.Extract(ctx, path); err == nil {
			t.Error("expected error for invalid UTF-8")
		}
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		if _, err := e.Extract(ctx, filepath.Join(t.TempDir(), "absent.md")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
