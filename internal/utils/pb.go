package utils

import (
	"time"

	libraryv1 "github.com/candlekeep/candlekeep/gen/proto/library/v1"
	"github.com/candlekeep/candlekeep/internal/entity"
)

// ToPBDocument converts a document entity into its wire representation.
func ToPBDocument(d *entity.Document) *libraryv1.Document {
	if d == nil {
		return nil
	}
	pb := &libraryv1.Document{
		Id:           int64(d.ID),
		Title:        d.Title,
		Author:       d.Author,
		SourceType:   string(d.SourceType),
		ContentHash:  d.ContentHash,
		MarkdownPath: d.MarkdownPath,
		OriginalPath: d.OriginalPath,
		WordCount:    int32(d.WordCount),
		ChapterCount: int32(d.ChapterCount),
		Category:     d.Category,
		Tags:         d.Tags,
		ImageCount:   int32(d.ImageCount),
		HasImages:    d.HasImages,
	}
	if d.PageCount != nil {
		pb.PageCount = int32(*d.PageCount)
	}
	if !d.AddedAt.IsZero() {
		pb.AddedAt = d.AddedAt.UTC().Format(time.RFC3339)
	}
	return pb
}
