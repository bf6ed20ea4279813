package content

import (
	"path/filepath"
	"testing"
)

func TestRewriteImagePaths(t *testing.T) {
	dir := filepath.Join("/", "keep", "images", "7")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare filename",
			in:   "see ![diagram](fig1.png) here",
			want: "see ![diagram](" + filepath.Join(dir, "fig1.png") + ") here",
		},
		{
			name: "directory component dropped",
			in:   "![](tmp/extract/fig2.jpg)",
			want: "![](" + filepath.Join(dir, "fig2.jpg") + ")",
		},
		{
			name: "multiple references",
			in:   "![a](x.png) and ![b](y.png)",
			want: "![a](" + filepath.Join(dir, "x.png") + ") and ![b](" + filepath.Join(dir, "y.png") + ")",
		},
		{
			name: "no references untouched",
			in:   "plain text [link](not-an-image.md)",
			want: "plain text [link](not-an-image.md)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RewriteImagePaths(tt.in, dir); got != tt.want {
				t.Errorf("RewriteImagePaths() = %q, want %q", got, tt.want)
			}
		})
	}
}
