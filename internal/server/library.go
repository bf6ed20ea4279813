package server

import (
	"context"
	"log/slog"
	"strings"

	libraryv1 "github.com/candlekeep/candlekeep/gen/proto/library/v1"
	"github.com/candlekeep/candlekeep/internal/common"
	"github.com/candlekeep/candlekeep/internal/library"
	"github.com/candlekeep/candlekeep/internal/repository"
	"github.com/candlekeep/candlekeep/internal/utils"
)

type LibraryService struct {
	libraryv1.UnimplementedLibraryServiceServer
	ingestor *library.Ingestor
	query    *library.Query
	logger   *slog.Logger
}

func NewLibraryService(ingestor *library.Ingestor, query *library.Query, logger *slog.Logger) *LibraryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LibraryService{
		ingestor: ingestor,
		query:    query,
		logger:   logger,
	}
}

// IngestFile runs the full ingestion pipeline for one source file.
func (s *LibraryService) IngestFile(ctx context.Context, req *libraryv1.IngestFileRequest) (*libraryv1.IngestFileResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, common.InvalidArgumentError("path is required")
	}

	s.logger.Info("starting file ingest", "path", path)
	result, err := s.ingestor.Ingest(ctx, path, library.IngestOptions{
		Title:        req.GetTitle(),
		Author:       req.GetAuthor(),
		Category:     req.GetCategory(),
		Tags:         req.GetTags(),
		KeepOriginal: req.GetKeepOriginal(),
	})
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded",
		"path", path,
		"document_id", result.Document.ID,
		"deduplicated", result.Status == library.StatusDuplicate)

	return &libraryv1.IngestFileResponse{
		Document:     utils.ToPBDocument(result.Document),
		Deduplicated: result.Status == library.StatusDuplicate,
		Warnings:     result.Warnings,
	}, nil
}

// IngestDirectory walks a directory on the server host and ingests every
// supported file in it.
func (s *LibraryService) IngestDirectory(ctx context.Context, req *libraryv1.IngestDirectoryRequest) (*libraryv1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path")
		return nil, common.InvalidArgumentError("root_path is required")
	}

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, library.BatchOptions{
		SkipHidden:   req.GetSkipHidden(),
		KeepOriginal: req.GetKeepOriginal(),
		Category:     req.GetCategory(),
		Tags:         req.GetTags(),
	})
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest directory: %v", err)
	}

	out := &libraryv1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*libraryv1.FileResult, 0, len(results)),
	}
	for _, r := range results {
		out.Results = append(out.Results, &libraryv1.FileResult{
			Path:         r.Path,
			DocumentId:   int64(r.DocumentID),
			Deduplicated: r.Deduplicated,
			Warnings:     r.Warnings,
			Error:        r.Err,
		})
	}
	return out, nil
}

// ListDocuments renders the catalog plus structured document records.
func (s *LibraryService) ListDocuments(ctx context.Context, req *libraryv1.ListDocumentsRequest) (*libraryv1.ListDocumentsResponse, error) {
	opts := library.ListOptions{Full: req.GetFull(), Fields: req.GetFields()}

	rendered, err := s.query.List(ctx, opts)
	if err != nil {
		s.logger.Error("failed to list documents", "error", err)
		return nil, common.InternalError("list documents failed")
	}

	docs, err := s.query.Documents(ctx)
	if err != nil {
		s.logger.Error("failed to list documents", "error", err)
		return nil, common.InternalError("list documents failed")
	}

	out := make([]*libraryv1.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.ToPBDocument(d))
	}
	return &libraryv1.ListDocumentsResponse{
		Rendered:  rendered,
		Documents: out,
	}, nil
}

// GetTableOfContents renders one document's outline.
func (s *LibraryService) GetTableOfContents(ctx context.Context, req *libraryv1.GetTableOfContentsRequest) (*libraryv1.GetTableOfContentsResponse, error) {
	id := int(req.GetDocumentId())
	if id <= 0 {
		return nil, common.InvalidArgumentError("document_id is required")
	}

	rendered, err := s.query.TableOfContents(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, common.NotFoundErrorf("document %d not found", id)
		}
		s.logger.Error("failed to get table of contents", "document_id", id, "error", err)
		return nil, common.InternalError("get table of contents failed")
	}
	return &libraryv1.GetTableOfContentsResponse{Rendered: rendered}, nil
}

// GetPages extracts a page range from one document's canonical text.
func (s *LibraryService) GetPages(ctx context.Context, req *libraryv1.GetPagesRequest) (*libraryv1.GetPagesResponse, error) {
	id := int(req.GetDocumentId())
	if id <= 0 {
		return nil, common.InvalidArgumentError("document_id is required")
	}
	spec := strings.TrimSpace(req.GetPages())
	if spec == "" {
		return nil, common.InvalidArgumentError("pages is required")
	}

	content, found, err := s.query.GetPages(ctx, id, spec)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, common.NotFoundErrorf("document %d not found", id)
		}
		return nil, common.InvalidArgumentErrorf("get pages: %v", err)
	}
	return &libraryv1.GetPagesResponse{Content: content, Found: found}, nil
}
