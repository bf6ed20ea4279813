package extract

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	byPattern        = regexp.MustCompile(`(?i)\s+by\s+`)
	parenPattern     = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)\s*$`)
	authorIndicators = []string{"dr.", "prof.", "jr.", "sr."}
)

// ParseFilenameMetadata extracts title and author from common filename
// patterns: "Title - Author", "Title by Author", "Title (Author)". Either
// result may be empty.
func ParseFilenameMetadata(filename string) (title, author string) {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	switch {
	case strings.Contains(name, " - "):
		parts := strings.SplitN(name, " - ", 2)
		// author-first convention shows up with honorifics
		if hasAuthorIndicator(parts[0]) {
			author = strings.TrimSpace(parts[0])
			title = strings.TrimSpace(parts[1])
		} else {
			title = strings.TrimSpace(parts[0])
			author = strings.TrimSpace(parts[1])
		}
	case byPattern.MatchString(name):
		parts := byPattern.Split(name, 2)
		title = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			author = strings.TrimSpace(parts[1])
		}
	default:
		if m := parenPattern.FindStringSubmatch(name); m != nil {
			title = strings.TrimSpace(m[1])
			author = strings.TrimSpace(m[2])
		} else {
			title = strings.TrimSpace(name)
		}
	}
	return title, author
}

func hasAuthorIndicator(s string) bool {
	s = strings.ToLower(s)
	for _, ind := range authorIndicators {
		if strings.Contains(s, ind) {
			return true
		}
	}
	return false
}
