// Package pdfdoc wraps PDF decoding behind a small interface so the
// extraction pipeline can be exercised without real PDF files. The
// implementation uses github.com/ledongthuc/pdf (pure Go, no CGO).
package pdfdoc

import (
	"time"

	"github.com/candlekeep/candlekeep/internal/entity"
)

// Info is the metadata embedded in a PDF's document information dictionary.
// Absent entries are zero values.
type Info struct {
	Title        string
	Author       string
	Subject      string
	Keywords     string
	Creator      string
	Producer     string
	CreationDate *time.Time
	ModDate      *time.Time
}

// Image is one raster image embedded on a page. Err is set when the image
// stream could not be decoded; callers skip such images. Components is the
// color component count reported by the source (0 when unknown).
type Image struct {
	XRef        int
	Name        string
	Width       int
	Height      int
	Components  int
	HasSoftMask bool
	Format      string
	Data        []byte
	Err         error
}

// Document is an open PDF source. Pages are 1-based.
type Document interface {
	NumPages() int
	Info() Info
	// Outline returns the document outline flattened in reading order.
	// Entries whose destination page cannot be resolved carry Page 0.
	Outline() []entity.TOCEntry
	PageText(page int) (string, error)
	// PageLines returns the page's text split into lines in top-to-bottom
	// row order, for header/footer inspection.
	PageLines(page int) ([]string, error)
	PageImages(page int) ([]Image, error)
	Close() error
}

// Opener opens a PDF file at path. It is the seam test fakes plug into.
type Opener func(path string) (Document, error)
