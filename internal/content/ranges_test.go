package content

import (
	"slices"
	"strings"
	"testing"
)

func TestParsePageRanges(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr string
	}{
		{name: "single pages", in: "1,2,3", want: []int{1, 2, 3}},
		{name: "single range", in: "1-5", want: []int{1, 2, 3, 4, 5}},
		{name: "mixed ranges", in: "1-5,10-15", want: []int{1, 2, 3, 4, 5, 10, 11, 12, 13, 14, 15}},
		{name: "overlap deduplicated", in: "1-3,2-4", want: []int{1, 2, 3, 4}},
		{name: "unordered input sorted", in: "7,1,4", want: []int{1, 4, 7}},
		{name: "whitespace tolerated", in: " 1 , 3 - 4 ", want: []int{1, 3, 4}},
		{name: "bad number names token", in: "1,abc", wantErr: "invalid page number: abc"},
		{name: "bad range names token", in: "1-x", wantErr: "invalid page range: 1-x"},
		{name: "empty token", in: "1,,2", wantErr: "invalid page number: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageRanges(tt.in)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParsePageRanges(%q) = %v, want error", tt.in, got)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %q, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePageRanges(%q) error: %v", tt.in, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParsePageRanges(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
