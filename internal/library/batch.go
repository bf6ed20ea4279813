package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/candlekeep/candlekeep/constants"
)

// FileResult is the per-file outcome of a directory ingestion.
type FileResult struct {
	Path         string
	DocumentID   int
	Deduplicated bool
	Warnings     []string
	Err          string
}

// DirStats aggregates a directory ingestion.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// BatchOptions controls a directory ingestion. Workers defaults to 4.
type BatchOptions struct {
	SkipHidden   bool
	Workers      int
	KeepOriginal bool
	Category     string
	Tags         []string
}

// IngestDirectory walks root, filters to ingestable extensions, skips
// hidden entries if requested, and ingests each match on a small worker
// pool. Per-file failures are recorded in the results, never aborting the
// walk. Results are returned in completion order.
func (s *Ingestor) IngestDirectory(ctx context.Context, root string, opts BatchOptions) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}

	var stats DirStats
	var matched []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			return nil // continue walking
		}
		if opts.SkipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := constants.SourceTypeForExt(filepath.Ext(path)); !ok {
			return nil
		}
		stats.Matched++
		matched = append(matched, path)
		return nil
	})
	if err != nil {
		return nil, stats, fmt.Errorf("walk: %w", err)
	}

	paths := make(chan string)
	var mu sync.Mutex
	var results []FileResult
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				result := s.ingestOne(ctx, path, opts)
				mu.Lock()
				results = append(results, result)
				switch {
				case result.Err != "":
					stats.Failed++
				case result.Deduplicated:
					stats.Succeeded++
					stats.Deduplicated++
				default:
					stats.Succeeded++
				}
				mu.Unlock()
			}
		}()
	}

	for _, path := range matched {
		if ctx.Err() != nil {
			break
		}
		paths <- path
	}
	close(paths)
	wg.Wait()

	s.logger.Info("directory ingest completed",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed)
	return results, stats, ctx.Err()
}

func (s *Ingestor) ingestOne(ctx context.Context, path string, opts BatchOptions) FileResult {
	result, err := s.Ingest(ctx, path, IngestOptions{
		Category:     opts.Category,
		Tags:         opts.Tags,
		KeepOriginal: opts.KeepOriginal,
	})
	if err != nil {
		return FileResult{Path: path, Err: err.Error()}
	}
	return FileResult{
		Path:         path,
		DocumentID:   result.Document.ID,
		Deduplicated: result.Status == StatusDuplicate,
		Warnings:     result.Warnings,
	}
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
