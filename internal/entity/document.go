package entity

import (
	"time"

	"github.com/candlekeep/candlekeep/constants"
)

// TOCEntry is one entry of a document's table of contents.
// Level is 1-based nesting depth; Page is the 1-based canonical page the
// entry starts on (0 when the source carries no page, e.g. markdown).
type TOCEntry struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Page  int    `json:"page"`
}

// Document represents a library document for data transfer between layers.
type Document struct {
	ID           int                  `json:"id"`
	Title        string               `json:"title"`
	Author       string               `json:"author,omitempty"`
	SourceType   constants.SourceType `json:"source_type"`
	ContentHash  string               `json:"content_hash"`
	MarkdownPath string               `json:"markdown_path"`
	OriginalPath string               `json:"original_path,omitempty"`

	PageCount    *int       `json:"page_count,omitempty"`
	WordCount    int        `json:"word_count"`
	ChapterCount int        `json:"chapter_count"`
	TOC          []TOCEntry `json:"table_of_contents,omitempty"`

	Subject  string   `json:"subject,omitempty"`
	Keywords string   `json:"keywords,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`

	PDFCreationDate *time.Time `json:"pdf_creation_date,omitempty"`
	PDFModDate      *time.Time `json:"pdf_mod_date,omitempty"`
	PDFCreator      string     `json:"pdf_creator,omitempty"`
	PDFProducer     string     `json:"pdf_producer,omitempty"`

	ISBN            string `json:"isbn,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	PublicationYear *int   `json:"publication_year,omitempty"`
	Language        string `json:"language,omitempty"`

	ImageCount int  `json:"image_count"`
	HasImages  bool `json:"has_images"`

	AddedAt    time.Time `json:"added_at"`
	ModifiedAt time.Time `json:"modified_at"`
}
