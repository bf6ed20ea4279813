package extract

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/candlekeep/candlekeep/internal/content"
	"github.com/candlekeep/candlekeep/internal/entity"
	"github.com/candlekeep/candlekeep/internal/pdfdoc"
)

type stubPDF struct {
	info    pdfdoc.Info
	outline []entity.TOCEntry
	pages   []string
	pageErr map[int]error
}

func (d *stubPDF) NumPages() int { return len(d.pages) }

func (d *stubPDF) Info() pdfdoc.Info { return d.info }

func (d *stubPDF) Outline() []entity.TOCEntry { return d.outline }

func (d *stubPDF) PageText(page int) (string, error) {
	if err := d.pageErr[page]; err != nil {
		return "", err
	}
	return d.pages[page-1], nil
}

func (d *stubPDF) PageLines(page int) ([]string, error) {
	text, err := d.PageText(page)
	return strings.Split(text, "\n"), err
}

func (d *stubPDF) PageImages(int) ([]pdfdoc.Image, error) { return nil, nil }

func (d *stubPDF) Close() error { return nil }

func stubOpener(doc pdfdoc.Document, err error) pdfdoc.Opener {
	return func(string) (pdfdoc.Document, error) { return doc, err }
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestPDFExtractor(t *testing.T) {
	ctx := context.Background()

	t.Run("metadata and page markers", func(t *testing.T) {
		created := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
		doc := &stubPDF{
			info: pdfdoc.Info{
				Title:        "Systems",
				Author:       "Avery",
				Subject:      "engineering",
				CreationDate: &created,
			},
			outline: []entity.TOCEntry{
				{Level: 1, Title: "Intro", Page: 1},
				{Level: 1, Title: "Deep End", Page: 2},
			},
			pages: []string{"first page text", "second page text"},
		}
		e := NewPDFExtractor(stubOpener(doc, nil), quietLogger())

		draft, err := e.Extract(ctx, "/tmp/systems.pdf")
		if err != nil {
			t.Fatal(err)
		}
		if draft.Title != "Systems" || draft.Author != "Avery" {
			t.Errorf("metadata = %q / %q", draft.Title, draft.Author)
		}
		if draft.PageCount == nil || *draft.PageCount != 2 {
			t.Errorf("page count = %v", draft.PageCount)
		}
		if draft.ChapterCount != 2 {
			t.Errorf("chapter count = %d", draft.ChapterCount)
		}
		if draft.PDFCreationDate == nil || !draft.PDFCreationDate.Equal(created) {
			t.Errorf("creation date = %v", draft.PDFCreationDate)
		}

		// markers are 0-based and each page ends with one
		for _, want := range []string{
			"first page text",
			content.PageMarker(0),
			"second page text",
			content.PageMarker(1),
		} {
			if !strings.Contains(draft.Markdown, want) {
				t.Errorf("markdown missing %q:\n%s", want, draft.Markdown)
			}
		}
		idx := content.BuildPageIndex(draft.Markdown)
		if len(idx) != 2 {
			t.Errorf("page index size = %d, want 2", len(idx))
		}
	})

	t.Run("unreadable page keeps its marker", func(t *testing.T) {
		doc := &stubPDF{
			pages:   []string{"one", "two", "three"},
			pageErr: map[int]error{2: errors.New("bad stream")},
		}
		e := NewPDFExtractor(stubOpener(doc, nil), quietLogger())

		draft, err := e.Extract(ctx, "/tmp/partial.pdf")
		if err != nil {
			t.Fatalf("page-level failure must not fail extraction: %v", err)
		}
		idx := content.BuildPageIndex(draft.Markdown)
		if len(idx) != 3 {
			t.Errorf("page index size = %d, want 3", len(idx))
		}
		if out, ok := content.ExtractPages(draft.Markdown, []int{3}); !ok || !strings.Contains(out, "three") {
			t.Errorf("page 3 misnumbered after failed page 2:\n%s", draft.Markdown)
		}
	})

	t.Run("filename fallback chain", func(t *testing.T) {
		doc := &stubPDF{pages: []string{"text"}}
		e := NewPDFExtractor(stubOpener(doc, nil), quietLogger())

		draft, err := e.Extract(ctx, "/tmp/Practical Vim by Drew Neil.pdf")
		if err != nil {
			t.Fatal(err)
		}
		if draft.Title != "Practical Vim" || draft.Author != "Drew Neil" {
			t.Errorf("fallback metadata = %q / %q", draft.Title, draft.Author)
		}
	})

	t.Run("open failure is fatal", func(t *testing.T) {
		e := NewPDFExtractor(stubOpener(nil, errors.New("not a pdf")), quietLogger())
		if _, err := e.Extract(ctx, "/tmp/broken.pdf"); err == nil {
			t.Error("expected error")
		}
	})
}
