package library

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/candlekeep/candlekeep/internal/content"
	"github.com/candlekeep/candlekeep/internal/entity"
	"github.com/candlekeep/candlekeep/internal/repository"
)

// Query is the read side of the library. Output methods render structured
// plain text meant for downstream language-model consumption.
type Query struct {
	docs   repository.DocumentRepository
	images repository.ImageRepository
	logger *slog.Logger
}

func NewQuery(docs repository.DocumentRepository, images repository.ImageRepository, logger *slog.Logger) *Query {
	if logger == nil {
		logger = slog.Default()
	}
	return &Query{docs: docs, images: images, logger: logger}
}

// ListOptions selects which metadata fields the listing includes beyond
// the essentials.
type ListOptions struct {
	Full   bool
	Fields []string
}

// Documents returns every document in the library, ordered by id.
func (q *Query) Documents(ctx context.Context) ([]*entity.Document, error) {
	return q.docs.List(ctx)
}

// List renders every document in the library, ordered by id.
func (q *Query) List(ctx context.Context, opts ListOptions) (string, error) {
	docs, err := q.docs.List(ctx)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "No documents found in library.", nil
	}

	out := []string{fmt.Sprintf("# Library Documents (Total: %d)", len(docs)), ""}
	for _, doc := range docs {
		out = append(out, FormatDocument(doc, opts), "")
	}
	return strings.Join(out, "\n"), nil
}

// FormatDocument renders one document's metadata as key-value lines under
// an id header.
func FormatDocument(doc *entity.Document, opts ListOptions) string {
	want := func(field string) bool {
		return opts.Full || slices.Contains(opts.Fields, field)
	}

	lines := []string{
		fmt.Sprintf("## Document ID: %d", doc.ID),
		fmt.Sprintf("Title: %s", doc.Title),
	}
	if doc.Author != "" {
		lines = append(lines, fmt.Sprintf("Author: %s", doc.Author))
	}
	lines = append(lines, fmt.Sprintf("Type: %s", string(doc.SourceType)))
	if doc.PageCount != nil {
		lines = append(lines, fmt.Sprintf("Pages: %d", *doc.PageCount))
	}
	if !doc.AddedAt.IsZero() {
		lines = append(lines, fmt.Sprintf("Added: %s", doc.AddedAt.Format("2006-01-02 15:04:05")))
	}

	if want("category") && doc.Category != "" {
		lines = append(lines, fmt.Sprintf("Category: %s", doc.Category))
	}
	if want("tags") && len(doc.Tags) > 0 {
		lines = append(lines, fmt.Sprintf("Tags: %s", strings.Join(doc.Tags, ", ")))
	}
	if want("word_count") && doc.WordCount > 0 {
		lines = append(lines, fmt.Sprintf("Word Count: %d", doc.WordCount))
	}
	if want("chapter_count") && doc.ChapterCount > 0 {
		lines = append(lines, fmt.Sprintf("Chapters: %d", doc.ChapterCount))
	}

	if opts.Full {
		if doc.Subject != "" {
			lines = append(lines, fmt.Sprintf("Subject: %s", doc.Subject))
		}
		if doc.Keywords != "" {
			lines = append(lines, fmt.Sprintf("Keywords: %s", doc.Keywords))
		}
		if doc.ISBN != "" {
			lines = append(lines, fmt.Sprintf("ISBN: %s", doc.ISBN))
		}
		if doc.Publisher != "" {
			lines = append(lines, fmt.Sprintf("Publisher: %s", doc.Publisher))
		}
		if doc.PublicationYear != nil {
			lines = append(lines, fmt.Sprintf("Publication Year: %d", *doc.PublicationYear))
		}
		if doc.Language != "" {
			lines = append(lines, fmt.Sprintf("Language: %s", doc.Language))
		}
		if doc.PDFCreator != "" {
			lines = append(lines, fmt.Sprintf("PDF Creator: %s", doc.PDFCreator))
		}
		if doc.PDFProducer != "" {
			lines = append(lines, fmt.Sprintf("PDF Producer: %s", doc.PDFProducer))
		}
		if doc.PDFCreationDate != nil {
			lines = append(lines, fmt.Sprintf("PDF Created: %s", doc.PDFCreationDate.Format("2006-01-02 15:04:05")))
		}
		if doc.PDFModDate != nil {
			lines = append(lines, fmt.Sprintf("PDF Modified: %s", doc.PDFModDate.Format("2006-01-02 15:04:05")))
		}
		lines = append(lines,
			fmt.Sprintf("Original Path: %s", doc.OriginalPath),
			fmt.Sprintf("Markdown Path: %s", doc.MarkdownPath),
		)
	}
	return strings.Join(lines, "\n")
}

// TableOfContents renders a document's outline with two-space indentation
// per nesting level.
func (q *Query) TableOfContents(ctx context.Context, documentID int) (string, error) {
	doc, err := q.docs.GetByID(ctx, documentID)
	if err != nil {
		return "", err
	}

	lines := []string{
		fmt.Sprintf("## Table of Contents - Document ID: %d", doc.ID),
		fmt.Sprintf("Title: %s", doc.Title),
		"",
	}
	if len(doc.TOC) == 0 {
		lines = append(lines, "No table of contents available for this document.")
		return strings.Join(lines, "\n"), nil
	}
	for _, entry := range doc.TOC {
		level := entry.Level
		if level < 1 {
			level = 1
		}
		indent := strings.Repeat("  ", level-1)
		lines = append(lines, fmt.Sprintf("%s%s (Page %d)", indent, entry.Title, entry.Page))
	}
	return strings.Join(lines, "\n"), nil
}

// GetPages extracts the requested pages from a document's canonical text.
// pageSpec uses the range selector syntax ("1,2,3", "1-5", "1-5,10-15");
// numbers are resolved printed→canonical when attachment evidence exists.
// found is false when none of the resolved pages had content; that is not
// an error.
func (q *Query) GetPages(ctx context.Context, documentID int, pageSpec string) (out string, found bool, err error) {
	pages, err := content.ParsePageRanges(pageSpec)
	if err != nil {
		return "", false, err
	}

	doc, err := q.docs.GetByID(ctx, documentID)
	if err != nil {
		return "", false, err
	}

	printed, err := q.images.ListPrintedByDocument(ctx, documentID)
	if err != nil {
		return "", false, err
	}
	resolved := ResolvePages(BuildPrintedMap(printed), pages)

	raw, err := os.ReadFile(doc.MarkdownPath)
	if err != nil {
		return "", false, fmt.Errorf("read canonical text: %w", err)
	}

	body, ok := content.ExtractPages(string(raw), resolved)
	if !ok {
		return "", false, nil
	}

	header := fmt.Sprintf("## Document ID: %d - %s\nPages: %s\n", doc.ID, doc.Title, pageSpec)
	return header + "\n" + body, true, nil
}
