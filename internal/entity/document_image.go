package entity

import "time"

// DocumentImage represents one image extracted from a document's source.
// PageNumber is the 1-based canonical page the image appears on.
// PrintedPageNumber is the number printed on that page, when one was
// detected; it is best-effort and not unique per document.
type DocumentImage struct {
	ID                int        `json:"id"`
	DocumentID        int        `json:"document_id"`
	PageNumber        int        `json:"page_number"`
	PrintedPageNumber *int       `json:"printed_page_number,omitempty"`
	XRef              int        `json:"xref"`
	FilePath          string     `json:"file_path"`
	Width             int        `json:"width"`
	Height            int        `json:"height"`
	Format            string     `json:"format"`
	Colorspace        string     `json:"colorspace,omitempty"`
	HasTransparency   bool       `json:"has_transparency"`
	FileSize          *int       `json:"file_size,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
