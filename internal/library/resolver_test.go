package library

import (
	"slices"
	"testing"

	"github.com/candlekeep/candlekeep/internal/entity"
)

func printedImage(canonical, printed int) *entity.DocumentImage {
	return &entity.DocumentImage{PageNumber: canonical, PrintedPageNumber: &printed}
}

func TestBuildPrintedMap(t *testing.T) {
	t.Run("first seen canonical wins per printed number", func(t *testing.T) {
		m := BuildPrintedMap([]*entity.DocumentImage{
			printedImage(12, 10),
			printedImage(13, 10),
			printedImage(20, 18),
			{PageNumber: 5}, // no printed label
		})
		if len(m) != 2 {
			t.Fatalf("map size = %d, want 2", len(m))
		}
		if m[10] != 12 {
			t.Errorf("m[10] = %d, want 12", m[10])
		}
		if m[18] != 20 {
			t.Errorf("m[18] = %d, want 20", m[18])
		}
	})

	t.Run("no printed labels gives empty map", func(t *testing.T) {
		m := BuildPrintedMap([]*entity.DocumentImage{{PageNumber: 1}, {PageNumber: 2}})
		if len(m) != 0 {
			t.Errorf("map size = %d, want 0", len(m))
		}
	})
}

func TestResolvePages(t *testing.T) {
	tests := []struct {
		name    string
		mapping map[int]int
		in      []int
		want    []int
	}{
		{
			name: "identity without printed evidence",
			in:   []int{3, 1, 3, 7},
			want: []int{1, 3, 7},
		},
		{
			name:    "printed number substituted, others pass through",
			mapping: map[int]int{10: 12},
			in:      []int{10, 3},
			want:    []int{3, 12},
		},
		{
			name:    "substitution collapsing onto a passed-through page",
			mapping: map[int]int{10: 12},
			in:      []int{10, 12},
			want:    []int{12},
		},
		{
			name:    "unmapped number passes through even when out of range",
			mapping: map[int]int{41: 5},
			in:      []int{41, 9000},
			want:    []int{5, 9000},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePages(tt.mapping, tt.in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ResolvePages(%v, %v) = %v, want %v", tt.mapping, tt.in, got, tt.want)
			}
		})
	}
}
