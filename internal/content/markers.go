// Package content implements the canonical text transforms: page markers,
// the page index, range extraction, image path rewriting and the page
// range selector syntax.
package content

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Page markers take the literal form "--- end of page=N ---" where N is
// the 0-based physical page index. The canonical (1-based) page number is
// N+1.
var markerPattern = regexp.MustCompile(`--- end of page=(\d+) ---`)

// PageMarker renders the end marker for the 0-based physical page index.
func PageMarker(index int) string {
	return fmt.Sprintf("--- end of page=%d ---", index)
}

// Segment is a half-open byte range of one page's content.
type Segment struct {
	Start int
	End   int
}

// PageIndex maps 1-based canonical page numbers to their byte ranges in
// the canonical text.
type PageIndex map[int]Segment

// BuildPageIndex parses page markers out of canonical text. Page 1 spans
// from the start of the text to the first marker; page k spans from the
// end of marker k-1 to the start of marker k. A text without markers
// yields a single entry covering everything as page 1.
func BuildPageIndex(text string) PageIndex {
	matches := markerPattern.FindAllStringSubmatchIndex(text, -1)
	idx := make(PageIndex, len(matches))
	if len(matches) == 0 {
		idx[1] = Segment{Start: 0, End: len(text)}
		return idx
	}
	for i, m := range matches {
		physical, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		start := 0
		if i > 0 {
			start = matches[i-1][1]
		}
		idx[physical+1] = Segment{Start: start, End: m[0]}
	}
	return idx
}

// ExtractPages renders the requested canonical pages from canonical text.
// Each present page yields a "### Page N" header followed by its trimmed
// segment; pages absent from the index are silently omitted. ok is false
// when nothing was found for the request.
func ExtractPages(text string, pages []int) (out string, ok bool) {
	idx := BuildPageIndex(text)

	var lines []string
	for _, page := range pages {
		seg, present := idx[page]
		if !present {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("### Page %d", page),
			strings.TrimSpace(text[seg.Start:seg.End]),
			"",
		)
	}
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}
