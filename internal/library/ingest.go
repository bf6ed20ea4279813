package library

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/candlekeep/candlekeep/constants"
	"github.com/candlekeep/candlekeep/internal/common"
	"github.com/candlekeep/candlekeep/internal/content"
	"github.com/candlekeep/candlekeep/internal/entity"
	"github.com/candlekeep/candlekeep/internal/extract"
	"github.com/candlekeep/candlekeep/internal/fsops"
	"github.com/candlekeep/candlekeep/internal/imaging"
	"github.com/candlekeep/candlekeep/internal/pdfdoc"
	"github.com/candlekeep/candlekeep/internal/repository"
)

// IngestStatus is the terminal outcome of one ingestion.
type IngestStatus string

const (
	StatusCreated   IngestStatus = "CREATED"
	StatusDuplicate IngestStatus = "DUPLICATE"
)

// IngestOptions carries caller-supplied overrides for one ingestion.
// Overrides replace the extracted value only when non-empty.
type IngestOptions struct {
	Title        string
	Author       string
	Category     string
	Tags         []string
	KeepOriginal bool
}

// IngestResult reports what one ingestion did. Duplicate is a terminal
// success, not an error: Document then points at the existing record.
// Warnings carries non-fatal problems, such as a failed image pass.
type IngestResult struct {
	Status   IngestStatus
	Document *entity.Document
	Warnings []string
}

// Ingestor drives a source file through the ingestion pipeline:
// hash, dedup check, extraction, text write, original copy, persistence
// and, for PDFs, the image pass.
type Ingestor struct {
	docs     repository.DocumentRepository
	images   repository.ImageRepository
	paths    common.LibraryPaths
	pdf      extract.Extractor
	markdown extract.Extractor
	openPDF  pdfdoc.Opener
	imaging  *imaging.Extractor
	logger   *slog.Logger
}

func NewIngestor(
	docs repository.DocumentRepository,
	images repository.ImageRepository,
	paths common.LibraryPaths,
	logger *slog.Logger,
) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{
		docs:     docs,
		images:   images,
		paths:    paths,
		pdf:      extract.NewPDFExtractor(nil, logger),
		markdown: extract.NewMarkdownExtractor(logger),
		openPDF:  pdfdoc.Open,
		imaging:  imaging.NewExtractor(logger),
		logger:   logger,
	}
}

// Ingest runs the full pipeline for the file at path. The returned error
// is non-nil only for failed ingestions; duplicates return StatusDuplicate
// with a nil error, and a failed image pass degrades to a warning.
func (s *Ingestor) Ingest(ctx context.Context, path string, opts IngestOptions) (*IngestResult, error) {
	start := time.Now()
	state := constants.StateHashing

	sourceType, ok := constants.SourceTypeForExt(filepath.Ext(path))
	if !ok {
		return nil, common.NewAppError("UNSUPPORTED_SOURCE",
			fmt.Sprintf("unsupported file extension: %s", filepath.Ext(path)), common.ErrInvalidInput)
	}

	hash, err := HashFile(path)
	if err != nil {
		return nil, s.fail(state, path, err)
	}

	state = constants.StateDedupCheck
	existing, found, err := s.docs.GetByHash(ctx, hash)
	if err != nil {
		return nil, s.fail(state, path, err)
	}
	if found {
		s.logger.Info("document already in library",
			"path", path,
			"document_id", existing.ID,
			"title", existing.Title)
		return &IngestResult{Status: StatusDuplicate, Document: existing}, nil
	}

	state = constants.StateExtracting
	draft, err := s.extractor(sourceType).Extract(ctx, path)
	if err != nil {
		return nil, s.fail(state, path, err)
	}
	applyOverrides(draft, opts)

	state = constants.StateWritingText
	base := fsops.Sanitize(draft.Title)
	markdownPath, err := fsops.WriteTextAtomic(s.paths.LibraryDir, base, ".md", draft.Markdown)
	if err != nil {
		return nil, s.fail(state, path, err)
	}

	state = constants.StateCopyingOriginal
	originalPath := path
	copiedOriginal := ""
	if sourceType == constants.SourcePDF && opts.KeepOriginal {
		copiedOriginal, err = fsops.CopyFile(path, s.paths.OriginalsDir, base, ".pdf")
		if err != nil {
			os.Remove(markdownPath)
			return nil, s.fail(state, path, err)
		}
		originalPath = copiedOriginal
	}

	state = constants.StatePersisting
	record := draftToDocument(draft, hash, markdownPath, originalPath)
	doc, err := s.docs.Create(ctx, record)
	if err != nil {
		// Roll the filesystem back so a lost race leaves no orphan files.
		os.Remove(markdownPath)
		if copiedOriginal != "" {
			os.Remove(copiedOriginal)
		}
		return nil, s.fail(state, path, err)
	}

	result := &IngestResult{Status: StatusCreated, Document: doc}

	if sourceType == constants.SourcePDF {
		state = constants.StateExtractingImages
		count, warning := s.runImagePass(ctx, path, doc, markdownPath)
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		doc.ImageCount = count
		doc.HasImages = count > 0
	}

	state = constants.StateDone
	s.logger.Info("document ingested",
		"document_id", doc.ID,
		"title", doc.Title,
		"source_type", string(sourceType),
		"state", string(state),
		"image_count", doc.ImageCount,
		"elapsed_ms", time.Since(start).Milliseconds())
	return result, nil
}

func (s *Ingestor) extractor(t constants.SourceType) extract.Extractor {
	if t == constants.SourcePDF {
		return s.pdf
	}
	return s.markdown
}

func (s *Ingestor) fail(state constants.IngestState, path string, err error) error {
	s.logger.Error("ingestion failed",
		"path", path,
		"state", string(state),
		"error", err)
	return fmt.Errorf("%s: %w", state, err)
}

// runImagePass extracts and persists the PDF's embedded images. Any
// failure here degrades to a warning: the document stays in the library
// without images, matching an image count of zero.
func (s *Ingestor) runImagePass(ctx context.Context, path string, doc *entity.Document, markdownPath string) (int, string) {
	imageDir := s.paths.ImageDir(doc.ID)

	pdoc, err := s.openPDF(path)
	if err != nil {
		return 0, s.imageWarning(doc.ID, err)
	}
	defer pdoc.Close()

	attachments, err := s.imaging.Extract(ctx, pdoc, doc.ID, imageDir)
	if err != nil {
		return 0, s.imageWarning(doc.ID, err)
	}

	count := 0
	for i := range attachments {
		if _, err := s.images.InsertOne(ctx, &attachments[i]); err != nil {
			s.logger.Warn("failed to persist image attachment",
				"document_id", doc.ID,
				"page", attachments[i].PageNumber,
				"error", err)
			continue
		}
		count++
	}

	if count > 0 {
		if err := s.rewriteMarkdown(markdownPath, imageDir); err != nil {
			s.logger.Warn("failed to rewrite image paths",
				"document_id", doc.ID,
				"path", markdownPath,
				"error", err)
		}
	}

	// The persisted row still says 0/false, so report that, not the
	// in-memory count.
	if err := s.docs.UpdateImageStats(ctx, doc.ID, count); err != nil {
		return 0, s.imageWarning(doc.ID, err)
	}
	return count, ""
}

func (s *Ingestor) rewriteMarkdown(markdownPath, imageDir string) error {
	raw, err := os.ReadFile(markdownPath)
	if err != nil {
		return err
	}
	rewritten := content.RewriteImagePaths(string(raw), imageDir)
	if rewritten == string(raw) {
		return nil
	}
	return os.WriteFile(markdownPath, []byte(rewritten), 0o644)
}

func (s *Ingestor) imageWarning(documentID int, err error) string {
	s.logger.Warn("image extraction failed, document kept without images",
		"document_id", documentID,
		"error", err)
	return fmt.Sprintf("image extraction failed: %v", err)
}

func applyOverrides(draft *extract.Draft, opts IngestOptions) {
	if opts.Title != "" {
		draft.Title = opts.Title
	}
	if opts.Author != "" {
		draft.Author = opts.Author
	}
	if opts.Category != "" {
		draft.Category = opts.Category
	}
	if len(opts.Tags) > 0 {
		draft.Tags = opts.Tags
	}
}

func draftToDocument(draft *extract.Draft, hash, markdownPath, originalPath string) *entity.Document {
	return &entity.Document{
		Title:           draft.Title,
		Author:          draft.Author,
		SourceType:      draft.SourceType,
		ContentHash:     hash,
		MarkdownPath:    markdownPath,
		OriginalPath:    originalPath,
		PageCount:       draft.PageCount,
		WordCount:       draft.WordCount,
		ChapterCount:    draft.ChapterCount,
		TOC:             draft.TOC,
		Subject:         draft.Subject,
		Keywords:        draft.Keywords,
		Category:        draft.Category,
		Tags:            draft.Tags,
		PDFCreationDate: draft.PDFCreationDate,
		PDFModDate:      draft.PDFModDate,
		PDFCreator:      draft.PDFCreator,
		PDFProducer:     draft.PDFProducer,
		ISBN:            draft.ISBN,
		Publisher:       draft.Publisher,
		PublicationYear: draft.PublicationYear,
		Language:        draft.Language,
	}
}
