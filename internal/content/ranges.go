package content

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ParsePageRanges parses caller-supplied page range syntax: comma-separated
// tokens, each a single non-negative integer or an inclusive "A-B" range.
// The result is deduplicated and sorted ascending. A token that fails to
// parse yields an error naming it.
//
//	"1,2,3"      -> [1 2 3]
//	"1-5,10-12"  -> [1 2 3 4 5 10 11 12]
func ParsePageRanges(s string) ([]int, error) {
	seen := make(map[int]struct{})

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			bounds := strings.SplitN(part, "-", 2)
			start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
			if err != nil {
				return nil, fmt.Errorf("invalid page range: %s", part)
			}
			end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err != nil {
				return nil, fmt.Errorf("invalid page range: %s", part)
			}
			for p := start; p <= end; p++ {
				seen[p] = struct{}{}
			}
		} else {
			p, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid page number: %s", part)
			}
			seen[p] = struct{}{}
		}
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	slices.Sort(pages)
	return pages, nil
}
