package extract

import (
	"strings"
	"testing"
)

func TestSplitFrontMatter(t *testing.T) {
	t.Run("absent block returns body untouched", func(t *testing.T) {
		fm, body, err := splitFrontMatter("# Title\n\nprose\n")
		if err != nil {
			t.Fatal(err)
		}
		if fm != nil {
			t.Errorf("front matter = %+v, want nil", fm)
		}
		if body != "# Title\n\nprose\n" {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("valid block parsed and stripped from body", func(t *testing.T) {
		text := "---\ntitle: A Book\nauthor: Someone\ntags:\n  - go\n  - pdf\nyear: 2021\n---\n# A Book\n"
		fm, body, err := splitFrontMatter(text)
		if err != nil {
			t.Fatal(err)
		}
		if fm == nil {
			t.Fatal("front matter = nil")
		}
		if fm.Title != "A Book" || fm.Author != "Someone" || fm.Year != 2021 {
			t.Errorf("front matter = %+v", fm)
		}
		if len(fm.Tags) != 2 || fm.Tags[0] != "go" {
			t.Errorf("tags = %v", fm.Tags)
		}
		if !strings.HasPrefix(body, "# A Book") {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("unterminated block treated as body", func(t *testing.T) {
		text := "---\ntitle: A Book\nno closing fence\n"
		fm, body, err := splitFrontMatter(text)
		if err != nil {
			t.Fatal(err)
		}
		if fm != nil || body != text {
			t.Errorf("fm = %+v, body = %q", fm, body)
		}
	})

	t.Run("delimiter embedded in a longer line does not close", func(t *testing.T) {
		// "----" is a thematic break, not the closing fence; with no real
		// fence the whole text stays body.
		text := "---\ntitle: A Book\n----\nstill inside\n"
		fm, body, err := splitFrontMatter(text)
		if err != nil {
			t.Fatal(err)
		}
		if fm != nil || body != text {
			t.Errorf("fm = %+v, body = %q", fm, body)
		}
	})

	t.Run("closing fence after delimiter-like lines", func(t *testing.T) {
		text := "---\ntitle: A Book\n---\n---- a table rule\nprose\n"
		fm, body, err := splitFrontMatter(text)
		if err != nil {
			t.Fatal(err)
		}
		if fm == nil || fm.Title != "A Book" {
			t.Fatalf("front matter = %+v", fm)
		}
		if body != "---- a table rule\nprose\n" {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("fence at end of text closes", func(t *testing.T) {
		fm, body, err := splitFrontMatter("---\ntitle: A Book\n---")
		if err != nil {
			t.Fatal(err)
		}
		if fm == nil || fm.Title != "A Book" {
			t.Fatalf("front matter = %+v", fm)
		}
		if body != "" {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("malformed yaml is fatal", func(t *testing.T) {
		if _, _, err := splitFrontMatter("---\ntitle: [unclosed\n---\nbody\n"); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("schema violation is fatal", func(t *testing.T) {
		if _, _, err := splitFrontMatter("---\nyear: 12345\n---\nbody\n"); err == nil {
			t.Error("expected validation error for out-of-range year")
		}
		if _, _, err := splitFrontMatter("---\ntags: not-a-list\n---\nbody\n"); err == nil {
			t.Error("expected validation error for scalar tags")
		}
	})
}

func TestApplyFrontMatter(t *testing.T) {
	d := &Draft{}
	applyFrontMatter(d, &frontMatter{
		Title: "T", Author: "A", Category: "c", ISBN: "978-0",
		Publisher: "P", Year: 2001, Language: "en",
	})
	if d.Title != "T" || d.Author != "A" || d.Category != "c" {
		t.Errorf("draft = %+v", d)
	}
	if d.PublicationYear == nil || *d.PublicationYear != 2001 {
		t.Errorf("publication year = %v", d.PublicationYear)
	}

	zero := &Draft{}
	applyFrontMatter(zero, &frontMatter{})
	if zero.PublicationYear != nil {
		t.Error("zero year should stay unset")
	}
}
