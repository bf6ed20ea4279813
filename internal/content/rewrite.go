package content

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
)

var imageRefPattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// RewriteImagePaths rewrites every markdown image reference from its
// extraction-relative name to a stable absolute path under the document's
// image directory. Any directory component in the original reference is
// ignored; only the filename survives.
func RewriteImagePaths(markdown, imageDir string) string {
	return imageRefPattern.ReplaceAllStringFunc(markdown, func(ref string) string {
		m := imageRefPattern.FindStringSubmatch(ref)
		alt, target := m[1], m[2]
		name := path.Base(target)
		return fmt.Sprintf("![%s](%s)", alt, filepath.Join(imageDir, name))
	})
}
