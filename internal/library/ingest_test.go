package library

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/candlekeep/candlekeep/internal/common"
	"github.com/candlekeep/candlekeep/internal/entity"
	"github.com/candlekeep/candlekeep/internal/extract"
	"github.com/candlekeep/candlekeep/internal/imaging"
	"github.com/candlekeep/candlekeep/internal/pdfdoc"
)

type memDocs struct {
	byID            map[int]*entity.Document
	nextID          int
	failCreate      bool
	failUpdateStats bool
}

func newMemDocs() *memDocs {
	return &memDocs{byID: map[int]*entity.Document{}}
}

func (m *memDocs) Create(_ context.Context, d *entity.Document) (*entity.Document, error) {
	if m.failCreate {
		return nil, errors.New("unique constraint violation")
	}
	for _, e := range m.byID {
		if e.ContentHash == d.ContentHash {
			return nil, errors.New("unique constraint violation")
		}
	}
	m.nextID++
	cp := *d
	cp.ID = m.nextID
	m.byID[cp.ID] = &cp
	return &cp, nil
}

func (m *memDocs) GetByHash(_ context.Context, hash string) (*entity.Document, bool, error) {
	for _, e := range m.byID {
		if e.ContentHash == hash {
			return e, true, nil
		}
	}
	return nil, false, nil
}

func (m *memDocs) GetByID(_ context.Context, id int) (*entity.Document, error) {
	d, ok := m.byID[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	return d, nil
}

func (m *memDocs) List(_ context.Context) ([]*entity.Document, error) {
	out := make([]*entity.Document, 0, len(m.byID))
	for _, d := range m.byID {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memDocs) UpdateImageStats(_ context.Context, id, imageCount int) error {
	if m.failUpdateStats {
		return errors.New("connection reset")
	}
	d, ok := m.byID[id]
	if !ok {
		return errors.New("document not found")
	}
	d.ImageCount = imageCount
	d.HasImages = imageCount > 0
	return nil
}

func (m *memDocs) Delete(_ context.Context, id int) error {
	delete(m.byID, id)
	return nil
}

type memImages struct {
	rows []*entity.DocumentImage
}

func (m *memImages) InsertOne(_ context.Context, img *entity.DocumentImage) (*entity.DocumentImage, error) {
	cp := *img
	cp.ID = len(m.rows) + 1
	m.rows = append(m.rows, &cp)
	return &cp, nil
}

func (m *memImages) ListPrintedByDocument(_ context.Context, documentID int) ([]*entity.DocumentImage, error) {
	var out []*entity.DocumentImage
	for _, r := range m.rows {
		if r.DocumentID == documentID && r.PrintedPageNumber != nil {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PageNumber < out[j].PageNumber })
	return out, nil
}

func (m *memImages) CountByDocument(_ context.Context, documentID int) (int, error) {
	n := 0
	for _, r := range m.rows {
		if r.DocumentID == documentID {
			n++
		}
	}
	return n, nil
}

// testPDF is a five page document with three images on page 5, whose
// footer carries the printed label "41", plus one corrupt image on page 2.
type testPDF struct{}

func (testPDF) NumPages() int { return 5 }

func (testPDF) Info() pdfdoc.Info {
	return pdfdoc.Info{Title: "Deep Dive", Author: "R. Sorcere"}
}

func (testPDF) Outline() []entity.TOCEntry {
	return []entity.TOCEntry{{Level: 1, Title: "Chapter One", Page: 2}}
}

func (testPDF) PageText(page int) (string, error) {
	texts := map[int]string{
		1: "Title page",
		2: "Chapter One begins",
		3: "middle content",
		4: "more middle content",
		5: "the good part\n41",
	}
	return texts[page], nil
}

func (testPDF) PageLines(page int) ([]string, error) {
	text, _ := testPDF{}.PageText(page)
	return strings.Split(text, "\n"), nil
}

func (testPDF) PageImages(page int) ([]pdfdoc.Image, error) {
	switch page {
	case 2:
		return []pdfdoc.Image{{Name: "Bad", Err: errors.New("corrupt stream")}}, nil
	case 5:
		return []pdfdoc.Image{
			{XRef: 1, Name: "A", Width: 10, Height: 10, Components: 3, Format: "jpg", Data: []byte("a")},
			{XRef: 2, Name: "B", Width: 10, Height: 10, Components: 3, Format: "jpg", Data: []byte("b")},
			{XRef: 3, Name: "C", Width: 10, Height: 10, Components: 1, Format: "png", Data: []byte("c")},
		}, nil
	}
	return nil, nil
}

func (testPDF) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestIngestor(t *testing.T, docs *memDocs, images *memImages) (*Ingestor, common.LibraryPaths) {
	t.Helper()
	logger := testLogger()
	paths := common.NewLibraryPaths(t.TempDir())
	open := func(string) (pdfdoc.Document, error) { return testPDF{}, nil }
	return &Ingestor{
		docs:     docs,
		images:   images,
		paths:    paths,
		pdf:      extract.NewPDFExtractor(open, logger),
		markdown: extract.NewMarkdownExtractor(logger),
		openPDF:  open,
		imaging:  imaging.NewExtractor(logger),
		logger:   logger,
	}, paths
}

func writeSource(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIngestMarkdown(t *testing.T) {
	docs, images := newMemDocs(), &memImages{}
	ingestor, paths := newTestIngestor(t, docs, images)
	ctx := context.Background()

	src := writeSource(t, "notes.md", "---\ntitle: Field Notes\nauthor: A. Writer\n---\n# Field Notes\n\nSome prose.\n")

	result, err := ingestor.Ingest(ctx, src, IngestOptions{})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if result.Status != StatusCreated {
		t.Fatalf("status = %s, want %s", result.Status, StatusCreated)
	}
	doc := result.Document
	if doc.Title != "Field Notes" || doc.Author != "A. Writer" {
		t.Errorf("metadata = %q / %q", doc.Title, doc.Author)
	}
	if doc.PageCount != nil {
		t.Errorf("markdown page count should be unset, got %d", *doc.PageCount)
	}
	if !strings.HasPrefix(doc.MarkdownPath, paths.LibraryDir) {
		t.Errorf("markdown written outside library dir: %s", doc.MarkdownPath)
	}
	if _, err := os.Stat(doc.MarkdownPath); err != nil {
		t.Errorf("canonical text not on disk: %v", err)
	}

	// same bytes again short-circuit as a duplicate
	dup, err := ingestor.Ingest(ctx, src, IngestOptions{})
	if err != nil {
		t.Fatalf("duplicate Ingest: %v", err)
	}
	if dup.Status != StatusDuplicate {
		t.Fatalf("status = %s, want %s", dup.Status, StatusDuplicate)
	}
	if dup.Document.ID != doc.ID {
		t.Errorf("duplicate points at document %d, want %d", dup.Document.ID, doc.ID)
	}
	if len(docs.byID) != 1 {
		t.Errorf("documents persisted = %d, want 1", len(docs.byID))
	}
}

func TestIngestOverrides(t *testing.T) {
	docs, images := newMemDocs(), &memImages{}
	ingestor, _ := newTestIngestor(t, docs, images)

	src := writeSource(t, "notes.md", "# Original Title\n\nbody\n")
	result, err := ingestor.Ingest(context.Background(), src, IngestOptions{
		Title:    "Chosen Title",
		Author:   "Chosen Author",
		Category: "reference",
		Tags:     []string{"go", "testing"},
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	doc := result.Document
	if doc.Title != "Chosen Title" || doc.Author != "Chosen Author" || doc.Category != "reference" {
		t.Errorf("overrides not applied: %+v", doc)
	}
	if len(doc.Tags) != 2 {
		t.Errorf("tags = %v", doc.Tags)
	}
}

func TestIngestUnsupportedExtension(t *testing.T) {
	ingestor, _ := newTestIngestor(t, newMemDocs(), &memImages{})
	src := writeSource(t, "data.csv", "a,b,c\n")
	if _, err := ingestor.Ingest(context.Background(), src, IngestOptions{}); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestIngestPersistenceConflictRollsBackFiles(t *testing.T) {
	docs, images := newMemDocs(), &memImages{}
	docs.failCreate = true
	ingestor, paths := newTestIngestor(t, docs, images)

	src := writeSource(t, "notes.md", "# Doomed\n\nbody\n")
	if _, err := ingestor.Ingest(context.Background(), src, IngestOptions{}); err == nil {
		t.Fatal("expected persistence error")
	}

	entries, err := os.ReadDir(paths.LibraryDir)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("library dir not rolled back: %v", entries)
	}
}

func TestIngestPDFEndToEnd(t *testing.T) {
	docs, images := newMemDocs(), &memImages{}
	ingestor, paths := newTestIngestor(t, docs, images)
	ctx := context.Background()

	src := writeSource(t, "deep-dive.pdf", "%PDF-1.7 stand-in bytes")
	result, err := ingestor.Ingest(ctx, src, IngestOptions{KeepOriginal: true})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	doc := result.Document

	if doc.Title != "Deep Dive" || doc.Author != "R. Sorcere" {
		t.Errorf("metadata = %q / %q", doc.Title, doc.Author)
	}
	if doc.PageCount == nil || *doc.PageCount != 5 {
		t.Errorf("page count = %v, want 5", doc.PageCount)
	}
	if doc.ImageCount != 3 || !doc.HasImages {
		t.Errorf("image stats = %d/%v, want 3/true (corrupt image skipped)", doc.ImageCount, doc.HasImages)
	}
	if !strings.HasPrefix(doc.OriginalPath, paths.OriginalsDir) {
		t.Errorf("original not copied into library: %s", doc.OriginalPath)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	// a page-range query for the printed label resolves to canonical page 5
	query := NewQuery(docs, images, testLogger())
	out, found, err := query.GetPages(ctx, doc.ID, "41")
	if err != nil {
		t.Fatalf("GetPages: %v", err)
	}
	if !found {
		t.Fatal("no content for printed page 41")
	}
	if !strings.Contains(out, "### Page 5") || !strings.Contains(out, "the good part") {
		t.Errorf("printed page 41 did not resolve to canonical page 5:\n%s", out)
	}
}

func TestIngestPDFStatsUpdateFailureReportsPersistedCounts(t *testing.T) {
	docs, images := newMemDocs(), &memImages{}
	docs.failUpdateStats = true
	ingestor, _ := newTestIngestor(t, docs, images)

	src := writeSource(t, "deep-dive.pdf", "%PDF-1.7 stand-in bytes")
	result, err := ingestor.Ingest(context.Background(), src, IngestOptions{})
	if err != nil {
		t.Fatalf("Ingest should not fail on a stats update error: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for the failed stats update")
	}
	// the document row still says 0/false, so the entity must too
	if result.Document.ImageCount != 0 || result.Document.HasImages {
		t.Errorf("image stats = %d/%v, want the persisted 0/false",
			result.Document.ImageCount, result.Document.HasImages)
	}
	// the image rows themselves were persisted before the update failed
	if len(images.rows) != 3 {
		t.Errorf("image rows persisted = %d, want 3", len(images.rows))
	}
}

func TestIngestPDFImageFailureDegrades(t *testing.T) {
	docs := newMemDocs()
	images := &memImages{}
	ingestor, _ := newTestIngestor(t, docs, images)
	ingestor.openPDF = func(string) (pdfdoc.Document, error) {
		return nil, errors.New("cannot reopen")
	}

	src := writeSource(t, "deep-dive.pdf", "%PDF-1.7 stand-in bytes")
	result, err := ingestor.Ingest(context.Background(), src, IngestOptions{})
	if err != nil {
		t.Fatalf("Ingest should not fail on image extraction: %v", err)
	}
	if result.Status != StatusCreated {
		t.Fatalf("status = %s, want %s", result.Status, StatusCreated)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected an image extraction warning")
	}
	if result.Document.ImageCount != 0 || result.Document.HasImages {
		t.Errorf("image stats = %d/%v, want 0/false", result.Document.ImageCount, result.Document.HasImages)
	}
}
