package server

import (
	"context"
	"log/slog"

	libraryv1 "github.com/candlekeep/candlekeep/gen/proto/library/v1"
	"github.com/candlekeep/candlekeep/internal/common"
	"github.com/candlekeep/candlekeep/internal/export"
)

type ExportServer struct {
	libraryv1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

// ExportCatalog returns the full library catalog as an XLSX workbook.
func (s *ExportServer) ExportCatalog(ctx context.Context, _ *libraryv1.ExportCatalogRequest) (*libraryv1.ExportCatalogResponse, error) {
	xlsx, err := s.svc.ExportCatalogXLSX(ctx)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError("export catalog failed")
	}
	return &libraryv1.ExportCatalogResponse{Xlsx: xlsx}, nil
}
