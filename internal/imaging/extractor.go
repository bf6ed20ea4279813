// Package imaging extracts embedded raster images from PDF documents,
// binds each image to its page and the page's printed label, and writes
// the image bytes into a per-document directory.
package imaging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/candlekeep/candlekeep/internal/entity"
	"github.com/candlekeep/candlekeep/internal/fsops"
	"github.com/candlekeep/candlekeep/internal/pdfdoc"
)

// Extractor walks a PDF's pages and produces one attachment draft per
// surviving embedded image. Per-image failures are logged and skipped;
// they never abort the remaining images.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract writes every decodable image in doc to dir and returns attachment
// drafts with DocumentID and FilePath already populated. The image index in
// the filename is 0-based and global across the document.
func (e *Extractor) Extract(ctx context.Context, doc pdfdoc.Document, documentID int, dir string) ([]entity.DocumentImage, error) {
	if err := fsops.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create image directory: %w", err)
	}

	var attachments []entity.DocumentImage
	index := 0
	for page := 1; page <= doc.NumPages(); page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		printed := e.detectLabel(doc, documentID, page)

		images, err := doc.PageImages(page)
		if err != nil {
			e.logger.Warn("failed to enumerate page images",
				"document_id", documentID,
				"page", page,
				"error", err)
			continue
		}
		for _, img := range images {
			if img.Err != nil {
				e.logger.Warn("skipping undecodable image",
					"document_id", documentID,
					"page", page,
					"name", img.Name,
					"error", img.Err)
				continue
			}

			filename := fmt.Sprintf("page-%d-img-%d.%s", page, index, strings.ToLower(img.Format))
			path := filepath.Join(dir, filename)
			if err := os.WriteFile(path, img.Data, 0o644); err != nil {
				e.logger.Warn("failed to write image file",
					"document_id", documentID,
					"page", page,
					"path", path,
					"error", err)
				continue
			}

			size := len(img.Data)
			attachment := entity.DocumentImage{
				DocumentID:      documentID,
				PageNumber:      page,
				XRef:            img.XRef,
				FilePath:        path,
				Width:           img.Width,
				Height:          img.Height,
				Format:          strings.ToLower(img.Format),
				Colorspace:      ColorspaceName(img.Components),
				HasTransparency: img.HasSoftMask || hasAlpha(img.Components),
				FileSize:        &size,
			}
			if printed > 0 {
				p := printed
				attachment.PrintedPageNumber = &p
			}
			attachments = append(attachments, attachment)
			index++
		}
	}
	return attachments, nil
}

// detectLabel reuses one printed-label detection per page for every image
// found on that page.
func (e *Extractor) detectLabel(doc pdfdoc.Document, documentID, page int) int {
	lines, err := doc.PageLines(page)
	if err != nil {
		e.logger.Warn("failed to read page text for label detection",
			"document_id", documentID,
			"page", page,
			"error", err)
		return 0
	}
	return DetectPrintedPageNumber(lines)
}

// ColorspaceName maps a color component count onto the classification
// stored with each attachment.
func ColorspaceName(components int) string {
	switch components {
	case 1, 2:
		return "Gray"
	case 3:
		return "RGB"
	case 4:
		return "RGBA"
	case 5:
		return "CMYK"
	case 6:
		return "CMYKA"
	default:
		return fmt.Sprintf("Unknown(%d)", components)
	}
}

func hasAlpha(components int) bool {
	return components == 4 || components == 6
}
