package utils

import (
	"github.com/candlekeep/candlekeep/constants"
	"github.com/candlekeep/candlekeep/gen/ent"
	"github.com/candlekeep/candlekeep/internal/entity"
)

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:              e.ID,
		Title:           e.Title,
		Author:          e.Author,
		SourceType:      constants.SourceType(e.SourceType),
		ContentHash:     e.ContentHash,
		MarkdownPath:    e.MarkdownPath,
		OriginalPath:    e.OriginalPath,
		PageCount:       e.PageCount,
		WordCount:       e.WordCount,
		ChapterCount:    e.ChapterCount,
		TOC:             e.TableOfContents,
		Subject:         e.Subject,
		Keywords:        e.Keywords,
		Category:        e.Category,
		Tags:            e.Tags,
		PDFCreationDate: e.PdfCreationDate,
		PDFModDate:      e.PdfModDate,
		PDFCreator:      e.PdfCreator,
		PDFProducer:     e.PdfProducer,
		ISBN:            e.Isbn,
		Publisher:       e.Publisher,
		PublicationYear: e.PublicationYear,
		Language:        e.Language,
		ImageCount:      e.ImageCount,
		HasImages:       e.HasImages,
		AddedAt:         e.AddedAt,
		ModifiedAt:      e.ModifiedAt,
	}
}

func ToDocumentImage(e *ent.DocumentImage) *entity.DocumentImage {
	return &entity.DocumentImage{
		ID:                e.ID,
		DocumentID:        e.DocumentID,
		PageNumber:        e.PageNumber,
		PrintedPageNumber: e.PrintedPageNumber,
		XRef:              e.Xref,
		FilePath:          e.FilePath,
		Width:             e.Width,
		Height:            e.Height,
		Format:            e.Format,
		Colorspace:        e.Colorspace,
		HasTransparency:   e.HasTransparency,
		FileSize:          e.FileSize,
		CreatedAt:         e.CreatedAt,
	}
}
