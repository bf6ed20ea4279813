package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	libraryv1 "github.com/candlekeep/candlekeep/gen/proto/library/v1"
	"github.com/candlekeep/candlekeep/internal/common"
	"github.com/candlekeep/candlekeep/internal/export"
	"github.com/candlekeep/candlekeep/internal/fsops"
	"github.com/candlekeep/candlekeep/internal/library"
	repo "github.com/candlekeep/candlekeep/internal/repository"
	svc "github.com/candlekeep/candlekeep/internal/server"
)

func main() {
	// Process lifecycle logging
	zlog, _ := zap.NewProduction()
	defer zlog.Sync()
	log := zlog.Sugar()

	// Structured logger for the service stack
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths := common.NewLibraryPaths(cfg.Library.Root)
	for _, dir := range []string{paths.Root, paths.LibraryDir, paths.OriginalsDir, paths.ImagesDir} {
		if err := fsops.EnsureDir(dir); err != nil {
			log.Fatalf("creating library layout: %v", err)
		}
	}

	entc, pool, err := svc.ConnectDB(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := entc.Schema.Create(ctx); err != nil {
		log.Fatalf("migrating schema: %v", err)
	}
	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		log.Fatalf("database health: %v", err)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	imagesRepo := repo.NewImageRepository(entc, logger)
	ingestor := library.NewIngestor(docsRepo, imagesRepo, paths, logger)
	query := library.NewQuery(docsRepo, imagesRepo, logger)
	exportSvc := export.NewService(docsRepo, logger)

	grpcServer := grpc.NewServer()
	libraryv1.RegisterLibraryServiceServer(grpcServer, svc.NewLibraryService(ingestor, query, logger))
	libraryv1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen on %s: %v", cfg.Server.GRPCAddr, err)
	}
	log.Infof("candlekeepd listening on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
}
