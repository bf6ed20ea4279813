package library

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/candlekeep/candlekeep/constants"
	"github.com/candlekeep/candlekeep/internal/entity"
)

func seedDocument(t *testing.T, docs *memDocs, d entity.Document) *entity.Document {
	t.Helper()
	created, err := docs.Create(context.Background(), &d)
	if err != nil {
		t.Fatal(err)
	}
	return created
}

func TestFormatDocument(t *testing.T) {
	pages := 320
	year := 1999
	doc := &entity.Document{
		ID:              3,
		Title:           "The Practice of Programming",
		Author:          "Kernighan & Pike",
		SourceType:      constants.SourcePDF,
		PageCount:       &pages,
		WordCount:       90000,
		ChapterCount:    9,
		Category:        "reference",
		Tags:            []string{"c", "style"},
		Publisher:       "Addison-Wesley",
		PublicationYear: &year,
		MarkdownPath:    "/keep/library/the-practice-of-programming.md",
		AddedAt:         time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
	}

	t.Run("essential fields only by default", func(t *testing.T) {
		out := FormatDocument(doc, ListOptions{})
		for _, want := range []string{
			"## Document ID: 3",
			"Title: The Practice of Programming",
			"Author: Kernighan & Pike",
			"Type: PDF",
			"Pages: 320",
			"Added: 2026-08-01 10:30:00",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in:\n%s", want, out)
			}
		}
		for _, reject := range []string{"Publisher:", "Tags:", "Markdown Path:"} {
			if strings.Contains(out, reject) {
				t.Errorf("unexpected %q in default output:\n%s", reject, out)
			}
		}
	})

	t.Run("fields flag adds selected fields", func(t *testing.T) {
		out := FormatDocument(doc, ListOptions{Fields: []string{"tags", "word_count"}})
		if !strings.Contains(out, "Tags: c, style") || !strings.Contains(out, "Word Count: 90000") {
			t.Errorf("selected fields missing:\n%s", out)
		}
		if strings.Contains(out, "Publisher:") {
			t.Errorf("unselected field leaked:\n%s", out)
		}
	})

	t.Run("full shows everything", func(t *testing.T) {
		out := FormatDocument(doc, ListOptions{Full: true})
		for _, want := range []string{"Publisher: Addison-Wesley", "Publication Year: 1999", "Markdown Path:"} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in full output:\n%s", want, out)
			}
		}
	})
}

func TestQueryList(t *testing.T) {
	docs := newMemDocs()
	query := NewQuery(docs, &memImages{}, testLogger())
	ctx := context.Background()

	out, err := query.List(ctx, ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if out != "No documents found in library." {
		t.Errorf("empty library output = %q", out)
	}

	seedDocument(t, docs, entity.Document{Title: "One", SourceType: constants.SourceMarkdown, ContentHash: strings.Repeat("a", 64)})
	seedDocument(t, docs, entity.Document{Title: "Two", SourceType: constants.SourcePDF, ContentHash: strings.Repeat("b", 64)})

	out, err = query.List(ctx, ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "# Library Documents (Total: 2)") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Title: One") || !strings.Contains(out, "Title: Two") {
		t.Errorf("missing documents:\n%s", out)
	}
}

func TestQueryTableOfContents(t *testing.T) {
	docs := newMemDocs()
	query := NewQuery(docs, &memImages{}, testLogger())
	ctx := context.Background()

	t.Run("nested entries indent by level", func(t *testing.T) {
		doc := seedDocument(t, docs, entity.Document{
			Title:       "Structured",
			ContentHash: strings.Repeat("c", 64),
			TOC: []entity.TOCEntry{
				{Level: 1, Title: "Part One", Page: 1},
				{Level: 2, Title: "Getting Started", Page: 3},
			},
		})
		out, err := query.TableOfContents(ctx, doc.ID)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, "\nPart One (Page 1)") {
			t.Errorf("top level entry wrong:\n%s", out)
		}
		if !strings.Contains(out, "\n  Getting Started (Page 3)") {
			t.Errorf("nested entry not indented:\n%s", out)
		}
	})

	t.Run("missing toc says so", func(t *testing.T) {
		doc := seedDocument(t, docs, entity.Document{Title: "Bare", ContentHash: strings.Repeat("d", 64)})
		out, err := query.TableOfContents(ctx, doc.ID)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, "No table of contents available") {
			t.Errorf("missing fallback line:\n%s", out)
		}
	})

	t.Run("unknown document errors", func(t *testing.T) {
		if _, err := query.TableOfContents(ctx, 999); err == nil {
			t.Error("expected error for unknown document")
		}
	})
}

func TestQueryGetPagesInvalidSpec(t *testing.T) {
	docs := newMemDocs()
	query := NewQuery(docs, &memImages{}, testLogger())
	if _, _, err := query.GetPages(context.Background(), 1, "1,oops"); err == nil {
		t.Error("expected error for malformed page spec")
	}
}
