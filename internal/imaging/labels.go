package imaging

import (
	"strconv"
	"strings"
)

const (
	labelScanLines = 5
	maxPrintedPage = 9999
)

// DetectPrintedPageNumber scans a page's text lines for the number printed
// on the page itself. Footers are checked before headers: the last five
// lines first, then the first five. A candidate line must consist solely
// of one to four digits and parse into [1, 9999]. Returns 0 when no label
// is found.
func DetectPrintedPageNumber(lines []string) int {
	tail := lines
	if len(tail) > labelScanLines {
		tail = tail[len(tail)-labelScanLines:]
	}
	if n := firstLabel(tail); n > 0 {
		return n
	}
	head := lines
	if len(head) > labelScanLines {
		head = head[:labelScanLines]
	}
	return firstLabel(head)
}

func firstLabel(lines []string) int {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !digitsOnly(line) {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > maxPrintedPage {
			continue
		}
		return n
	}
	return 0
}

func digitsOnly(s string) bool {
	if len(s) == 0 || len(s) > 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
