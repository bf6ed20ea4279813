package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/candlekeep/candlekeep/internal/common"
	repo "github.com/candlekeep/candlekeep/internal/repository"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	paths := common.NewLibraryPaths(cfg.Library.Root)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, paths.DBPath, logger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 1*time.Second, logger); err != nil {
		log.Fatalf("DB health: FAIL (%v)", err)
	}
	log.Println("DB health: OK")

	docs := repo.NewDocumentRepository(entc, logger)
	all, err := docs.List(ctx)
	if err != nil {
		log.Fatalf("listing documents: %v", err)
	}

	log.Printf("documents count: %d", len(all))
	for _, d := range all {
		log.Printf("- [%d] %s", d.ID, d.Title)
	}
}
