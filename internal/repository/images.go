package repository

import (
	"context"
	"log/slog"

	"github.com/candlekeep/candlekeep/gen/ent"
	entimg "github.com/candlekeep/candlekeep/gen/ent/documentimage"
	"github.com/candlekeep/candlekeep/internal/entity"
	"github.com/candlekeep/candlekeep/internal/utils"
)

// ImageRepository persists image attachment records. Inserts are
// independent row inserts: a failed row never rolls back earlier ones.
type ImageRepository interface {
	InsertOne(ctx context.Context, img *entity.DocumentImage) (*entity.DocumentImage, error)
	// ListPrintedByDocument returns the document's images that carry a
	// detected printed page number, ordered by page then insertion.
	ListPrintedByDocument(ctx context.Context, documentID int) ([]*entity.DocumentImage, error)
	CountByDocument(ctx context.Context, documentID int) (int, error)
}

type imageRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewImageRepository(client *ent.Client, logger *slog.Logger) ImageRepository {
	return &imageRepo{
		client: client,
		logger: logger,
	}
}

func (r *imageRepo) InsertOne(ctx context.Context, img *entity.DocumentImage) (*entity.DocumentImage, error) {
	builder := r.client.DocumentImage.Create().
		SetDocumentID(img.DocumentID).
		SetPageNumber(img.PageNumber).
		SetNillablePrintedPageNumber(img.PrintedPageNumber).
		SetXref(img.XRef).
		SetFilePath(img.FilePath).
		SetWidth(img.Width).
		SetHeight(img.Height).
		SetFormat(img.Format).
		SetHasTransparency(img.HasTransparency).
		SetNillableFileSize(img.FileSize)
	if img.Colorspace != "" {
		builder = builder.SetColorspace(img.Colorspace)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert document image",
			"document_id", img.DocumentID, "page", img.PageNumber, "error", err)
		return nil, err
	}
	return utils.ToDocumentImage(row), nil
}

func (r *imageRepo) ListPrintedByDocument(ctx context.Context, documentID int) ([]*entity.DocumentImage, error) {
	rows, err := r.client.DocumentImage.Query().
		Where(
			entimg.DocumentID(documentID),
			entimg.PrintedPageNumberNotNil(),
		).
		Order(entimg.ByPageNumber(), entimg.ByID()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list printed-page images", "document_id", documentID, "error", err)
		return nil, err
	}
	result := make([]*entity.DocumentImage, len(rows))
	for i, row := range rows {
		result[i] = utils.ToDocumentImage(row)
	}
	return result, nil
}

func (r *imageRepo) CountByDocument(ctx context.Context, documentID int) (int, error) {
	n, err := r.client.DocumentImage.Query().
		Where(entimg.DocumentID(documentID)).
		Count(ctx)
	if err != nil {
		r.logger.Error("failed to count document images", "document_id", documentID, "error", err)
		return 0, err
	}
	return n, nil
}
