package extract

import (
	"regexp"
	"strings"
)

var markdownSyntax = regexp.MustCompile("[#*`\\[\\]()]")

// CountWords counts words in markdown text, stripping markdown syntax
// before splitting on whitespace.
func CountWords(text string) int {
	clean := markdownSyntax.ReplaceAllString(text, " ")
	return len(strings.Fields(clean))
}
