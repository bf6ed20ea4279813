package extract

import (
	"context"
	"time"

	"github.com/candlekeep/candlekeep/constants"
	"github.com/candlekeep/candlekeep/internal/entity"
)

// Draft is the best-effort metadata record plus canonical text produced
// from one source file. Missing fields stay zero; the orchestrator fills
// in paths, hash and overrides before persisting.
type Draft struct {
	Title        string
	Author       string
	SourceType   constants.SourceType
	PageCount    *int
	WordCount    int
	ChapterCount int
	TOC          []entity.TOCEntry
	Subject      string
	Keywords     string
	Category     string
	Tags         []string

	PDFCreationDate *time.Time
	PDFModDate      *time.Time
	PDFCreator      string
	PDFProducer     string

	ISBN            string
	Publisher       string
	PublicationYear *int
	Language        string

	// Markdown is the canonical text: UTF-8 markdown, with page markers
	// for paged sources.
	Markdown string
}

// Extractor converts one source file into a metadata draft plus canonical
// text. A malformed or unreadable source fails the whole extraction.
type Extractor interface {
	Extract(ctx context.Context, path string) (*Draft, error)
}
