package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML metadata block at the top of a markdown source.
type frontMatter struct {
	Title     string   `yaml:"title"`
	Author    string   `yaml:"author"`
	Subject   string   `yaml:"subject"`
	Keywords  string   `yaml:"keywords"`
	Category  string   `yaml:"category"`
	Tags      []string `yaml:"tags"`
	ISBN      string   `yaml:"isbn"`
	Publisher string   `yaml:"publisher"`
	Year      int      `yaml:"year"`
	Language  string   `yaml:"language"`
}

// frontMatterSchema constrains the recognized front matter fields; unknown
// fields pass through untouched.
const frontMatterSchema = `{
	"type": "object",
	"properties": {
		"title":     {"type": "string"},
		"author":    {"type": "string"},
		"subject":   {"type": "string"},
		"keywords":  {"type": "string"},
		"category":  {"type": "string"},
		"tags":      {"type": "array", "items": {"type": "string"}},
		"isbn":      {"type": "string", "maxLength": 20},
		"publisher": {"type": "string"},
		"year":      {"type": "integer", "minimum": 0, "maximum": 9999},
		"language":  {"type": "string", "maxLength": 10}
	}
}`

var compiledFrontMatterSchema = jsonschema.MustCompileString("frontmatter.json", frontMatterSchema)

// splitFrontMatter separates a leading YAML front matter block from the
// body. The returned front matter is nil when the document has none. A
// present but malformed block is a fatal extraction error.
func splitFrontMatter(text string) (*frontMatter, string, error) {
	rest, ok := strings.CutPrefix(text, "---\n")
	if !ok {
		return nil, text, nil
	}
	end := closingDelimiter(rest)
	if end < 0 {
		return nil, text, nil
	}
	block := rest[:end]
	body := rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return nil, "", fmt.Errorf("parse front matter: %w", err)
	}
	if err := validateFrontMatter(raw); err != nil {
		return nil, "", err
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return nil, "", fmt.Errorf("parse front matter: %w", err)
	}
	return &fm, body, nil
}

// closingDelimiter returns the offset of the newline that precedes the
// closing "---", which must sit alone on its line. Lines that merely start
// with "---" (table rules, thematic breaks) do not close the block.
func closingDelimiter(rest string) int {
	for from := 0; ; {
		i := strings.Index(rest[from:], "\n---")
		if i < 0 {
			return -1
		}
		at := from + i
		tail := rest[at+len("\n---"):]
		tail = strings.TrimPrefix(tail, "\r")
		if tail == "" || strings.HasPrefix(tail, "\n") {
			return at
		}
		from = at + 1
	}
}

// validateFrontMatter checks the decoded block against the schema via a
// JSON round-trip, so type mismatches surface as descriptive field errors
// instead of silent zero values.
func validateFrontMatter(raw map[string]any) error {
	buf, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("front matter not representable as JSON: %w", err)
	}
	var doc any
	if err := json.Unmarshal(buf, &doc); err != nil {
		return err
	}
	if err := compiledFrontMatterSchema.Validate(doc); err != nil {
		return fmt.Errorf("invalid front matter: %w", err)
	}
	return nil
}

func applyFrontMatter(d *Draft, fm *frontMatter) {
	d.Title = fm.Title
	d.Author = fm.Author
	d.Subject = fm.Subject
	d.Keywords = fm.Keywords
	d.Category = fm.Category
	d.Tags = fm.Tags
	d.ISBN = fm.ISBN
	d.Publisher = fm.Publisher
	d.Language = fm.Language
	if fm.Year > 0 {
		year := fm.Year
		d.PublicationYear = &year
	}
}
