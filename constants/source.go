package constants

import "strings"

// SourceType is the canonical source kind for library documents.
type SourceType string

// Stable values (store these exact strings in DB).
const (
	SourcePDF      SourceType = "PDF"
	SourceMarkdown SourceType = "MARKDOWN"
)

// PDFExtensions holds the file extensions ingested as PDF sources.
var PDFExtensions = map[string]struct{}{
	"pdf": {},
}

// MarkdownExtensions holds the file extensions ingested as markdown sources.
var MarkdownExtensions = map[string]struct{}{
	"md":       {},
	"markdown": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// SourceTypeForExt maps a file extension to its source kind.
// The bool is false for extensions the library does not ingest.
func SourceTypeForExt(ext string) (SourceType, bool) {
	ext = NormalizeExt(ext)
	if _, ok := PDFExtensions[ext]; ok {
		return SourcePDF, true
	}
	if _, ok := MarkdownExtensions[ext]; ok {
		return SourceMarkdown, true
	}
	return "", false
}
