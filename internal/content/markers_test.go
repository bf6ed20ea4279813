package content

import (
	"strings"
	"testing"
)

func TestPageMarker(t *testing.T) {
	if got, want := PageMarker(0), "--- end of page=0 ---"; got != want {
		t.Errorf("PageMarker(0) = %q, want %q", got, want)
	}
	if got, want := PageMarker(103), "--- end of page=103 ---"; got != want {
		t.Errorf("PageMarker(103) = %q, want %q", got, want)
	}
}

func pagedText(pages ...string) string {
	var sb strings.Builder
	for i, p := range pages {
		sb.WriteString(p)
		sb.WriteString("\n\n")
		sb.WriteString(PageMarker(i))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func TestBuildPageIndex(t *testing.T) {
	t.Run("no markers treats whole text as page 1", func(t *testing.T) {
		text := "just some prose without any markers"
		idx := BuildPageIndex(text)
		if len(idx) != 1 {
			t.Fatalf("index size = %d, want 1", len(idx))
		}
		seg, ok := idx[1]
		if !ok {
			t.Fatal("page 1 missing from index")
		}
		if seg.Start != 0 || seg.End != len(text) {
			t.Errorf("page 1 segment = [%d,%d), want [0,%d)", seg.Start, seg.End, len(text))
		}
	})

	t.Run("markers are zero-based, index keys one-based", func(t *testing.T) {
		text := pagedText("first page", "second page", "third page")
		idx := BuildPageIndex(text)
		if len(idx) != 3 {
			t.Fatalf("index size = %d, want 3", len(idx))
		}
		for page, want := range map[int]string{1: "first page", 2: "second page", 3: "third page"} {
			seg, ok := idx[page]
			if !ok {
				t.Fatalf("page %d missing from index", page)
			}
			if got := strings.TrimSpace(text[seg.Start:seg.End]); got != want {
				t.Errorf("page %d content = %q, want %q", page, got, want)
			}
		}
	})

	t.Run("segment boundaries are half-open around markers", func(t *testing.T) {
		text := "aaa--- end of page=0 ---bbb--- end of page=1 ---"
		idx := BuildPageIndex(text)
		if got := text[idx[1].Start:idx[1].End]; got != "aaa" {
			t.Errorf("page 1 = %q, want %q", got, "aaa")
		}
		if got := text[idx[2].Start:idx[2].End]; got != "bbb" {
			t.Errorf("page 2 = %q, want %q", got, "bbb")
		}
	})
}

func TestExtractPages(t *testing.T) {
	text := pagedText("alpha", "bravo", "charlie")

	t.Run("renders headers and trimmed segments", func(t *testing.T) {
		out, ok := ExtractPages(text, []int{1, 3})
		if !ok {
			t.Fatal("ok = false, want true")
		}
		for _, want := range []string{"### Page 1", "alpha", "### Page 3", "charlie"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "bravo") {
			t.Errorf("output contains unrequested page content:\n%s", out)
		}
	})

	t.Run("absent pages are silently omitted", func(t *testing.T) {
		out, ok := ExtractPages(text, []int{2, 99})
		if !ok {
			t.Fatal("ok = false, want true")
		}
		if strings.Contains(out, "99") {
			t.Errorf("output mentions absent page:\n%s", out)
		}
	})

	t.Run("nothing found reports not ok", func(t *testing.T) {
		out, ok := ExtractPages(text, []int{50, 60})
		if ok {
			t.Fatal("ok = true, want false")
		}
		if out != "" {
			t.Errorf("output = %q, want empty", out)
		}
	})
}
