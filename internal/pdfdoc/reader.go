package pdfdoc

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/candlekeep/candlekeep/internal/entity"
)

type reader struct {
	f *os.File
	r *pdf.Reader
}

// Open opens the PDF at path for reading.
func Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat pdf: %w", err)
	}
	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("invalid pdf file: %w", err)
	}
	return &reader{f: f, r: r}, nil
}

func (d *reader) Close() error {
	return d.f.Close()
}

func (d *reader) NumPages() int {
	return d.r.NumPage()
}

func (d *reader) Info() (info Info) {
	// the reader panics on some malformed cross references
	defer func() { recover() }()

	dict := d.r.Trailer().Key("Info")
	if dict.Kind() != pdf.Dict {
		return info
	}
	info.Title = strings.TrimSpace(dict.Key("Title").Text())
	info.Author = strings.TrimSpace(dict.Key("Author").Text())
	info.Subject = strings.TrimSpace(dict.Key("Subject").Text())
	info.Keywords = strings.TrimSpace(dict.Key("Keywords").Text())
	info.Creator = strings.TrimSpace(dict.Key("Creator").Text())
	info.Producer = strings.TrimSpace(dict.Key("Producer").Text())
	info.CreationDate = ParseDate(dict.Key("CreationDate").Text())
	info.ModDate = ParseDate(dict.Key("ModDate").Text())
	return info
}

// ParseDate parses the PDF date encoding D:YYYYMMDDHHmmSS (timezone suffix
// ignored). Returns nil when the value does not carry a full timestamp.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.TrimPrefix(s, "D:")
	if len(s) < 14 {
		return nil
	}
	t, err := time.Parse("20060102150405", s[:14])
	if err != nil {
		return nil
	}
	return &t
}

func (d *reader) Outline() (toc []entity.TOCEntry) {
	defer func() { recover() }()

	outlines := d.r.Trailer().Key("Root").Key("Outlines")
	if outlines.Kind() != pdf.Dict {
		return nil
	}
	pages := d.pageKeys()
	d.walkOutline(outlines.Key("First"), 1, pages, &toc)
	return toc
}

// pageKeys maps each page dictionary's serialized form to its 1-based page
// number, used to resolve outline destinations.
func (d *reader) pageKeys() map[string]int {
	m := make(map[string]int, d.r.NumPage())
	for i := 1; i <= d.r.NumPage(); i++ {
		p := d.r.Page(i)
		if p.V.IsNull() {
			continue
		}
		m[p.V.String()] = i
	}
	return m
}

func (d *reader) walkOutline(node pdf.Value, level int, pages map[string]int, toc *[]entity.TOCEntry) {
	for ; node.Kind() == pdf.Dict; node = node.Key("Next") {
		title := strings.TrimSpace(node.Key("Title").Text())
		if title != "" {
			*toc = append(*toc, entity.TOCEntry{
				Level: level,
				Title: title,
				Page:  d.destPage(node, pages),
			})
		}
		if first := node.Key("First"); first.Kind() == pdf.Dict {
			d.walkOutline(first, level+1, pages, toc)
		}
	}
}

func (d *reader) destPage(node pdf.Value, pages map[string]int) int {
	dest := node.Key("Dest")
	if dest.Kind() == pdf.Null {
		if a := node.Key("A"); a.Kind() == pdf.Dict && a.Key("S").Name() == "GoTo" {
			dest = a.Key("D")
		}
	}
	// explicit destinations only; named destinations stay unresolved
	if dest.Kind() != pdf.Array || dest.Len() == 0 {
		return 0
	}
	return pages[dest.Index(0).String()]
}

func (d *reader) PageText(page int) (text string, err error) {
	defer recoverTo(&err)

	p := d.r.Page(page)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d not found", page)
	}
	return p.GetPlainText(nil)
}

func (d *reader) PageLines(page int) (lines []string, err error) {
	defer recoverTo(&err)

	p := d.r.Page(page)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d not found", page)
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		var sb strings.Builder
		for _, word := range row.Content {
			sb.WriteString(word.S)
		}
		lines = append(lines, sb.String())
	}
	return lines, nil
}

func (d *reader) PageImages(page int) (images []Image, err error) {
	defer recoverTo(&err)

	p := d.r.Page(page)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d not found", page)
	}
	xobjects := p.Resources().Key("XObject")
	if xobjects.Kind() != pdf.Dict {
		return nil, nil
	}
	for _, name := range xobjects.Keys() {
		obj := xobjects.Key(name)
		if obj.Key("Subtype").Name() != "Image" {
			continue
		}
		img := Image{
			XRef:        imageRef(page, name),
			Name:        name,
			Width:       int(obj.Key("Width").Int64()),
			Height:      int(obj.Key("Height").Int64()),
			Components:  components(obj.Key("ColorSpace")),
			HasSoftMask: obj.Key("SMask").Kind() != pdf.Null,
			Format:      streamFormat(obj.Key("Filter")),
		}
		img.Data, img.Err = readStream(obj)
		images = append(images, img)
	}
	return images, nil
}

// imageRef derives a stable per-source reference for an image from its page
// and XObject name. Kept only for potential source-level dedup.
func imageRef(page int, name string) int {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d/%s", page, name)
	return int(h.Sum32() & 0x7fffffff)
}

func components(cs pdf.Value) int {
	switch cs.Kind() {
	case pdf.Name:
		switch cs.Name() {
		case "DeviceGray", "CalGray":
			return 1
		case "DeviceRGB", "CalRGB", "Lab":
			return 3
		case "DeviceCMYK":
			return 4
		}
	case pdf.Array:
		if cs.Len() == 0 {
			return 0
		}
		switch cs.Index(0).Name() {
		case "ICCBased":
			if cs.Len() > 1 {
				return int(cs.Index(1).Key("N").Int64())
			}
		case "Indexed", "Separation":
			return 1
		case "DeviceN":
			if cs.Len() > 1 {
				return cs.Index(1).Len()
			}
		}
	}
	return 0
}

func streamFormat(filter pdf.Value) string {
	name := filter.Name()
	if filter.Kind() == pdf.Array && filter.Len() > 0 {
		name = filter.Index(filter.Len() - 1).Name()
	}
	switch name {
	case "DCTDecode":
		return "jpg"
	case "JPXDecode":
		return "jp2"
	case "CCITTFaxDecode":
		return "tiff"
	case "JBIG2Decode":
		return "jbig2"
	default:
		return "png"
	}
}

func readStream(obj pdf.Value) (data []byte, err error) {
	defer recoverTo(&err)

	rc := obj.Reader()
	defer rc.Close()
	data, err = io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// recoverTo converts the pdf reader's parse panics into errors.
func recoverTo(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("pdf decode: %v", r)
	}
}
