package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestIngestDirectory(t *testing.T) {
	docs, images := newMemDocs(), &memImages{}
	ingestor, _ := newTestIngestor(t, docs, images)

	root := t.TempDir()
	write := func(rel, body string) {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.md", "# Alpha\n\nfirst body\n")
	write("nested/b.md", "# Bravo\n\nsecond body\n")
	write("dup.md", "# Alpha\n\nfirst body\n") // same bytes as a.md
	write("notes.txt", "not ingestable")
	write(".hidden/c.md", "# Hidden\n\nshould be skipped\n")

	// one worker keeps the duplicate detection deterministic
	results, stats, err := ingestor.IngestDirectory(context.Background(), root, BatchOptions{
		SkipHidden: true,
		Workers:    1,
	})
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}

	if stats.Matched != 3 {
		t.Errorf("matched = %d, want 3", stats.Matched)
	}
	if stats.Succeeded != 3 || stats.Failed != 0 {
		t.Errorf("succeeded/failed = %d/%d, want 3/0", stats.Succeeded, stats.Failed)
	}
	if stats.Deduplicated != 1 {
		t.Errorf("deduplicated = %d, want 1", stats.Deduplicated)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if len(docs.byID) != 2 {
		t.Errorf("documents persisted = %d, want 2", len(docs.byID))
	}
	for _, r := range results {
		if r.Err != "" {
			t.Errorf("unexpected per-file error for %s: %s", r.Path, r.Err)
		}
	}
}

func TestIngestDirectoryEmptyRoot(t *testing.T) {
	ingestor, _ := newTestIngestor(t, newMemDocs(), &memImages{})
	if _, _, err := ingestor.IngestDirectory(context.Background(), "  ", BatchOptions{}); err == nil {
		t.Fatal("expected error for blank root")
	}
}
