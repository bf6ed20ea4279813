// Package fsops is the filesystem collaborator for the ingestion pipeline:
// atomic text writes, unique destination paths and per-document image
// directories, all scoped under the library root.
package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const maxFilenameLength = 200

var (
	unsafeChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	hyphenRuns  = regexp.MustCompile(`[-\s]+`)
)

// Sanitize turns a title into a lowercase hyphenated filename stem safe
// for all filesystems.
func Sanitize(name string) string {
	base := filepath.Base(name)
	name = strings.TrimSuffix(base, filepath.Ext(base))
	name = unsafeChars.ReplaceAllString(name, "-")
	name = hyphenRuns.ReplaceAllString(name, "-")
	name = strings.Trim(name, "- ")
	if len(name) > maxFilenameLength {
		name = strings.TrimRight(name[:maxFilenameLength], "- ")
	}
	if name == "" {
		name = "untitled"
	}
	return strings.ToLower(name)
}

// EnsureDir creates dir (and parents) when missing.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// UniquePath returns a path under dir for base+ext that does not collide
// with an existing file, appending -1, -2, ... as needed.
func UniquePath(dir, base, ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	p := filepath.Join(dir, base+ext)
	if _, err := os.Stat(p); os.IsNotExist(err) {
		return p
	}
	for counter := 1; ; counter++ {
		p = filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, counter, ext))
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return p
		}
	}
}

// WriteTextAtomic writes text to a unique path under dir, staging through
// a temp file and renaming so readers never observe a partial file.
// Returns the final path.
func WriteTextAtomic(dir, base, ext, text string) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure directory: %w", err)
	}
	dst := UniquePath(dir, base, ext)
	tmp := filepath.Join(dir, "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("rename into place: %w", err)
	}
	return dst, nil
}

// CopyFile copies src to a unique path under dir named base+ext. Returns
// the destination path.
func CopyFile(src, dir, base, ext string) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure directory: %w", err)
	}
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	dst := UniquePath(dir, base, ext)
	tmp := filepath.Join(dir, "."+uuid.NewString()+".tmp")
	out, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("copy: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("rename into place: %w", err)
	}
	return dst, nil
}
