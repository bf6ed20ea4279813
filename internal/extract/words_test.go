package extract

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "plain prose", in: "three short words", want: 3},
		{name: "markdown syntax stripped", in: "# Heading\n\n*emphasis* and [link](target)", want: 5},
		{name: "whitespace collapsed", in: "  a\n\n\tb  ", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.in); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
