package imaging

import "testing"

func TestDetectPrintedPageNumber(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{
			name:  "footer line with bare number",
			lines: []string{"chapter text", "more text", "42"},
			want:  42,
		},
		{
			name:  "five digits rejected",
			lines: []string{"text", "10000"},
			want:  0,
		},
		{
			name:  "zero rejected",
			lines: []string{"text", "0"},
			want:  0,
		},
		{
			name:  "upper bound accepted",
			lines: []string{"text", "9999"},
			want:  9999,
		},
		{
			name:  "header checked when footer has no candidate",
			lines: []string{"7", "Chapter One", "body", "body", "body", "body", "body", "closing words"},
			want:  7,
		},
		{
			name: "footer wins over header",
			lines: []string{
				"3", "heading", "body", "body", "body",
				"body", "body", "body", "body", "88",
			},
			want: 88,
		},
		{
			name:  "number outside scan windows ignored",
			lines: []string{"a", "b", "c", "d", "e", "55", "f", "g", "h", "i", "j", "k"},
			want:  0,
		},
		{
			name:  "mixed text line rejected",
			lines: []string{"page 42"},
			want:  0,
		},
		{
			name:  "surrounding whitespace tolerated",
			lines: []string{"  17  "},
			want:  17,
		},
		{
			name:  "no lines",
			lines: nil,
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPrintedPageNumber(tt.lines); got != tt.want {
				t.Errorf("DetectPrintedPageNumber(%v) = %d, want %d", tt.lines, got, tt.want)
			}
		})
	}
}

func TestColorspaceName(t *testing.T) {
	tests := []struct {
		components int
		want       string
	}{
		{1, "Gray"},
		{2, "Gray"},
		{3, "RGB"},
		{4, "RGBA"},
		{5, "CMYK"},
		{6, "CMYKA"},
		{0, "Unknown(0)"},
		{9, "Unknown(9)"},
	}
	for _, tt := range tests {
		if got := ColorspaceName(tt.components); got != tt.want {
			t.Errorf("ColorspaceName(%d) = %q, want %q", tt.components, got, tt.want)
		}
	}
}
