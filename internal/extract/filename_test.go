package extract

import "testing"

func TestParseFilenameMetadata(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantTitle  string
		wantAuthor string
	}{
		{
			name:       "title dash author",
			in:         "The Go Programming Language - Donovan.pdf",
			wantTitle:  "The Go Programming Language",
			wantAuthor: "Donovan",
		},
		{
			name:       "honorific flips author first",
			in:         "Dr. Jane Smith - Systems Thinking.pdf",
			wantTitle:  "Systems Thinking",
			wantAuthor: "Dr. Jane Smith",
		},
		{
			name:       "title by author",
			in:         "Clean Architecture by Robert Martin.pdf",
			wantTitle:  "Clean Architecture",
			wantAuthor: "Robert Martin",
		},
		{
			name:       "parenthesized author",
			in:         "Refactoring (Martin Fowler).pdf",
			wantTitle:  "Refactoring",
			wantAuthor: "Martin Fowler",
		},
		{
			name:      "bare stem",
			in:        "misc-scans.pdf",
			wantTitle: "misc-scans",
		},
		{
			name:       "case insensitive by",
			in:         "Patterns BY Gamma.md",
			wantTitle:  "Patterns",
			wantAuthor: "Gamma",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, author := ParseFilenameMetadata(tt.in)
			if title != tt.wantTitle || author != tt.wantAuthor {
				t.Errorf("ParseFilenameMetadata(%q) = (%q, %q), want (%q, %q)",
					tt.in, title, author, tt.wantTitle, tt.wantAuthor)
			}
		})
	}
}
