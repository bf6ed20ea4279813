package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/candlekeep/candlekeep/constants"
	"github.com/candlekeep/candlekeep/internal/content"
	"github.com/candlekeep/candlekeep/internal/pdfdoc"
)

// PDFExtractor converts a PDF source into a metadata draft plus canonical
// markdown with a page marker after every physical page.
type PDFExtractor struct {
	open   pdfdoc.Opener
	logger *slog.Logger
}

func NewPDFExtractor(open pdfdoc.Opener, logger *slog.Logger) *PDFExtractor {
	if open == nil {
		open = pdfdoc.Open
	}
	return &PDFExtractor{open: open, logger: logger}
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (*Draft, error) {
	doc, err := e.open(path)
	if err != nil {
		return nil, fmt.Errorf("parse pdf: %w", err)
	}
	defer doc.Close()

	info := doc.Info()
	toc := doc.Outline()
	pages := doc.NumPages()

	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := doc.PageText(i)
		if err != nil {
			// keep the page boundary so canonical numbering stays intact
			e.logger.Warn("unreadable page text", "path", path, "page", i, "error", err)
			text = ""
		}
		sb.WriteString(strings.TrimRight(text, "\n"))
		sb.WriteString("\n\n")
		sb.WriteString(content.PageMarker(i - 1))
		sb.WriteString("\n\n")
	}
	markdown := sb.String()

	draft := &Draft{
		Title:           info.Title,
		Author:          info.Author,
		SourceType:      constants.SourcePDF,
		PageCount:       &pages,
		WordCount:       CountWords(markdown),
		ChapterCount:    len(toc),
		TOC:             toc,
		Subject:         info.Subject,
		Keywords:        info.Keywords,
		PDFCreationDate: info.CreationDate,
		PDFModDate:      info.ModDate,
		PDFCreator:      info.Creator,
		PDFProducer:     info.Producer,
		Markdown:        markdown,
	}

	// fall back to the filename convention, then the bare stem
	if draft.Title == "" || draft.Author == "" {
		title, author := ParseFilenameMetadata(filepath.Base(path))
		if draft.Title == "" {
			draft.Title = title
		}
		if draft.Author == "" {
			draft.Author = author
		}
	}
	if draft.Title == "" {
		draft.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return draft, nil
}
