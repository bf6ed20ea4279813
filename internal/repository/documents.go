package repository

import (
	"context"
	"log/slog"

	"github.com/candlekeep/candlekeep/gen/ent"
	entdoc "github.com/candlekeep/candlekeep/gen/ent/document"
	"github.com/candlekeep/candlekeep/internal/entity"
	"github.com/candlekeep/candlekeep/internal/utils"
)

// DocumentRepository is the persistence contract the ingestion pipeline and
// query side depend on. Implementations return plain entity values, never
// persistence framework types.
type DocumentRepository interface {
	// Create inserts a document and returns it with its assigned id. The
	// insert and its derived counters are one atomic statement; a unique
	// constraint violation on content_hash is reported via IsConflict.
	Create(ctx context.Context, d *entity.Document) (*entity.Document, error)
	// GetByHash looks a document up by content hash. found is false when no
	// document carries the hash; that is not an error.
	GetByHash(ctx context.Context, hash string) (doc *entity.Document, found bool, err error)
	GetByID(ctx context.Context, id int) (*entity.Document, error)
	List(ctx context.Context) ([]*entity.Document, error)
	// UpdateImageStats sets image_count and has_images after image extraction.
	UpdateImageStats(ctx context.Context, id int, imageCount int) error
	Delete(ctx context.Context, id int) error
}

// IsConflict reports whether err is a uniqueness/constraint violation.
func IsConflict(err error) bool {
	return ent.IsConstraintError(err)
}

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	return ent.IsNotFound(err)
}

type documentRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{
		client: client,
		logger: logger,
	}
}

func (r *documentRepo) Create(ctx context.Context, d *entity.Document) (*entity.Document, error) {
	builder := r.client.Document.Create().
		SetTitle(d.Title).
		SetSourceType(string(d.SourceType)).
		SetContentHash(d.ContentHash).
		SetMarkdownPath(d.MarkdownPath).
		SetWordCount(d.WordCount).
		SetChapterCount(d.ChapterCount).
		SetNillablePageCount(d.PageCount).
		SetNillablePdfCreationDate(d.PDFCreationDate).
		SetNillablePdfModDate(d.PDFModDate).
		SetNillablePublicationYear(d.PublicationYear)

	if d.Author != "" {
		builder = builder.SetAuthor(d.Author)
	}
	if d.OriginalPath != "" {
		builder = builder.SetOriginalPath(d.OriginalPath)
	}
	if len(d.TOC) > 0 {
		builder = builder.SetTableOfContents(d.TOC)
	}
	if d.Subject != "" {
		builder = builder.SetSubject(d.Subject)
	}
	if d.Keywords != "" {
		builder = builder.SetKeywords(d.Keywords)
	}
	if d.Category != "" {
		builder = builder.SetCategory(d.Category)
	}
	if len(d.Tags) > 0 {
		builder = builder.SetTags(d.Tags)
	}
	if d.PDFCreator != "" {
		builder = builder.SetPdfCreator(d.PDFCreator)
	}
	if d.PDFProducer != "" {
		builder = builder.SetPdfProducer(d.PDFProducer)
	}
	if d.ISBN != "" {
		builder = builder.SetIsbn(d.ISBN)
	}
	if d.Publisher != "" {
		builder = builder.SetPublisher(d.Publisher)
	}
	if d.Language != "" {
		builder = builder.SetLanguage(d.Language)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if !ent.IsConstraintError(err) {
			r.logger.Error("failed to create document", "title", d.Title, "error", err)
		}
		return nil, err
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepo) GetByHash(ctx context.Context, hash string) (*entity.Document, bool, error) {
	row, err := r.client.Document.Query().
		Where(entdoc.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		r.logger.Error("failed to get document by hash", "error", err)
		return nil, false, err
	}
	return utils.ToDocument(row), true, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id int) (*entity.Document, error) {
	row, err := r.client.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepo) List(ctx context.Context) ([]*entity.Document, error) {
	rows, err := r.client.Document.Query().
		Order(entdoc.ByID()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, err
	}
	result := make([]*entity.Document, len(rows))
	for i, row := range rows {
		result[i] = utils.ToDocument(row)
	}
	return result, nil
}

func (r *documentRepo) UpdateImageStats(ctx context.Context, id int, imageCount int) error {
	err := r.client.Document.UpdateOneID(id).
		SetImageCount(imageCount).
		SetHasImages(imageCount > 0).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update document image stats", "document_id", id, "error", err)
	}
	return err
}

func (r *documentRepo) Delete(ctx context.Context, id int) error {
	err := r.client.Document.DeleteOneID(id).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete document", "document_id", id, "error", err)
	}
	return err
}
