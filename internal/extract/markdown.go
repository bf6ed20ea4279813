package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/candlekeep/candlekeep/constants"
	"github.com/candlekeep/candlekeep/internal/entity"
)

// MarkdownExtractor reads a markdown source. Metadata comes from YAML
// front matter when present, with structural inference from the document
// body as fallback. Markdown has no page concept: no page markers are
// inserted and the page count stays unset.
type MarkdownExtractor struct {
	logger *slog.Logger
}

func NewMarkdownExtractor(logger *slog.Logger) *MarkdownExtractor {
	return &MarkdownExtractor{logger: logger}
}

func (e *MarkdownExtractor) Extract(ctx context.Context, path string) (*Draft, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("parse markdown: %s is not valid UTF-8", filepath.Base(path))
	}
	text := string(raw)

	draft := &Draft{
		SourceType: constants.SourceMarkdown,
		Markdown:   text,
		WordCount:  CountWords(text),
	}

	fm, body, err := splitFrontMatter(text)
	if err != nil {
		return nil, err
	}
	if fm != nil {
		applyFrontMatter(draft, fm)
	}

	headings := scanHeadings(body)
	draft.ChapterCount = len(headings)
	draft.TOC = headings

	if draft.Title == "" {
		draft.Title = firstHeadingTitle(headings)
	}
	if draft.Title == "" {
		title, author := ParseFilenameMetadata(filepath.Base(path))
		draft.Title = title
		if draft.Author == "" {
			draft.Author = author
		}
	}
	if draft.Title == "" {
		draft.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return draft, nil
}

func firstHeadingTitle(headings []entity.TOCEntry) string {
	for _, h := range headings {
		if h.Level == 1 {
			return h.Title
		}
	}
	if len(headings) > 0 {
		return headings[0].Title
	}
	return ""
}

// scanHeadings collects ATX headings outside fenced code blocks. Markdown
// has no pages, so entries carry page 0.
func scanHeadings(body string) []entity.TOCEntry {
	var toc []entity.TOCEntry
	inFence := false
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence || !strings.HasPrefix(trimmed, "#") {
			continue
		}
		level := 0
		for level < len(trimmed) && trimmed[level] == '#' {
			level++
		}
		if level > 6 || level == len(trimmed) || trimmed[level] != ' ' {
			continue
		}
		title := strings.TrimSpace(trimmed[level:])
		if title == "" {
			continue
		}
		toc = append(toc, entity.TOCEntry{Level: level, Title: title})
	}
	return toc
}
