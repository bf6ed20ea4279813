package library

import (
	"slices"

	"github.com/candlekeep/candlekeep/internal/entity"
)

// BuildPrintedMap builds a printed→canonical page mapping from attachments
// that carry a detected printed page number. The first canonical page seen
// for a printed number wins; later duplicates are not re-resolved.
func BuildPrintedMap(images []*entity.DocumentImage) map[int]int {
	mapping := make(map[int]int, len(images))
	for _, img := range images {
		if img.PrintedPageNumber == nil {
			continue
		}
		if _, seen := mapping[*img.PrintedPageNumber]; !seen {
			mapping[*img.PrintedPageNumber] = img.PageNumber
		}
	}
	return mapping
}

// ResolvePages maps a requested page list through the printed→canonical
// mapping. With an empty mapping the input is treated as already canonical.
// A requested number found in the mapping is substituted; anything else
// passes through unchanged, which can conflate a printed number with an
// unrelated canonical page when no image evidence exists for it. The
// result is deduplicated and sorted.
func ResolvePages(mapping map[int]int, pages []int) []int {
	seen := make(map[int]struct{}, len(pages))
	resolved := make([]int, 0, len(pages))
	for _, page := range pages {
		if canonical, ok := mapping[page]; ok {
			page = canonical
		}
		if _, dup := seen[page]; dup {
			continue
		}
		seen[page] = struct{}{}
		resolved = append(resolved, page)
	}
	slices.Sort(resolved)
	return resolved
}
