package imaging

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/candlekeep/candlekeep/internal/entity"
	"github.com/candlekeep/candlekeep/internal/pdfdoc"
)

type fakeDoc struct {
	lines  map[int][]string
	images map[int][]pdfdoc.Image
	pages  int
}

func (d *fakeDoc) NumPages() int { return d.pages }

func (d *fakeDoc) Info() pdfdoc.Info { return pdfdoc.Info{} }

func (d *fakeDoc) Outline() []entity.TOCEntry { return nil }

func (d *fakeDoc) PageText(int) (string, error) { return "", nil }

func (d *fakeDoc) Close() error { return nil }

func (d *fakeDoc) PageLines(p int) ([]string, error) {
	return d.lines[p], nil
}

func (d *fakeDoc) PageImages(p int) ([]pdfdoc.Image, error) {
	return d.images[p], nil
}

func TestExtractorExtract(t *testing.T) {
	dir := t.TempDir()
	doc := &fakeDoc{
		pages: 3,
		lines: map[int][]string{
			1: {"front matter"},
			2: {"body text", "41"},
			3: {"more text"},
		},
		images: map[int][]pdfdoc.Image{
			2: {
				{XRef: 11, Name: "Im1", Width: 640, Height: 480, Components: 3, Format: "JPG", Data: []byte("one")},
				{XRef: 12, Name: "Im2", Width: 100, Height: 100, Components: 4, Format: "png", Data: []byte("two")},
			},
			3: {
				{XRef: 13, Name: "Im3", Err: errors.New("corrupt stream")},
				{XRef: 14, Name: "Im4", Width: 32, Height: 32, Components: 1, HasSoftMask: true, Format: "png", Data: []byte("four")},
			},
		},
	}

	got, err := NewExtractor(nil).Extract(context.Background(), doc, 7, filepath.Join(dir, "7"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("attachments = %d, want 3 (corrupt image skipped)", len(got))
	}

	first := got[0]
	if first.DocumentID != 7 || first.PageNumber != 2 || first.XRef != 11 {
		t.Errorf("first attachment = %+v", first)
	}
	if first.PrintedPageNumber == nil || *first.PrintedPageNumber != 41 {
		t.Errorf("first printed page = %v, want 41", first.PrintedPageNumber)
	}
	if first.Colorspace != "RGB" || first.HasTransparency {
		t.Errorf("first colorspace/transparency = %s/%v", first.Colorspace, first.HasTransparency)
	}
	if want := filepath.Join(dir, "7", "page-2-img-0.jpg"); first.FilePath != want {
		t.Errorf("first path = %s, want %s", first.FilePath, want)
	}
	if first.FileSize == nil || *first.FileSize != len("one") {
		t.Errorf("first size = %v", first.FileSize)
	}

	second := got[1]
	if second.Colorspace != "RGBA" || !second.HasTransparency {
		t.Errorf("alpha colorspace should imply transparency: %+v", second)
	}
	if want := filepath.Join(dir, "7", "page-2-img-1.png"); second.FilePath != want {
		t.Errorf("second path = %s, want %s", second.FilePath, want)
	}

	third := got[2]
	if third.PageNumber != 3 || third.PrintedPageNumber != nil {
		t.Errorf("third attachment = %+v, want page 3 with no printed label", third)
	}
	if !third.HasTransparency {
		t.Error("soft mask should imply transparency")
	}
	// index keeps counting across pages, skipping the corrupt image
	if want := filepath.Join(dir, "7", "page-3-img-2.png"); third.FilePath != want {
		t.Errorf("third path = %s, want %s", third.FilePath, want)
	}

	for _, a := range got {
		data, err := os.ReadFile(a.FilePath)
		if err != nil {
			t.Errorf("image file not written: %v", err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("image file %s is empty", a.FilePath)
		}
	}
}

func TestExtractorExtractNoImages(t *testing.T) {
	doc := &fakeDoc{pages: 2}
	got, err := NewExtractor(nil).Extract(context.Background(), doc, 1, t.TempDir())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("attachments = %d, want 0", len(got))
	}
}
