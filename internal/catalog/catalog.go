// Package catalog holds the fixed collection of posts shown by the reader.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// All is the filter value that selects every entry.
const All = "All"

// DefaultMarkupCategories are the categories whose bodies are markup rather
// than ready-made HTML.
var DefaultMarkupCategories = []string{"Tech"}

//go:embed posts/*.md
var builtin embed.FS

// idNamespace seeds name-based ids for entries without an explicit id.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/gerunddev/blogdeck"))

// Entry is a single post.
type Entry struct {
	ID        string
	Title     string
	Category  string
	ShortDesc string
	Image     string
	Body      string
}

// frontMatter mirrors the YAML header of a post file
type frontMatter struct {
	ID        any    `yaml:"id"`
	Title     string `yaml:"title"`
	Category  string `yaml:"category"`
	ShortDesc string `yaml:"short_desc"`
	Image     string `yaml:"image"`
}

// Catalog is an ordered, read-only set of entries.
type Catalog struct {
	entries []Entry
	markup  map[string]bool
}

// New builds a catalog from entries. A nil markupCategories uses
// DefaultMarkupCategories.
func New(entries []Entry, markupCategories []string) *Catalog {
	if markupCategories == nil {
		markupCategories = DefaultMarkupCategories
	}
	markup := make(map[string]bool, len(markupCategories))
	for _, c := range markupCategories {
		markup[c] = true
	}
	return &Catalog{
		entries: append([]Entry(nil), entries...),
		markup:  markup,
	}
}

// Default returns the catalog of built-in posts.
func Default(markupCategories []string) (*Catalog, error) {
	return Load(builtin, "posts", markupCategories)
}

// Load reads every *.md file in dir, sorted by file name.
func Load(fsys fs.FS, dir string, markupCategories []string) (*Catalog, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	sort.Strings(matches)

	entries := make([]Entry, 0, len(matches))
	seen := make(map[string]string, len(matches))
	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		entry, err := ParseEntry(path.Base(name), data)
		if err != nil {
			return nil, err
		}

		if other, dup := seen[entry.ID]; dup {
			return nil, fmt.Errorf("duplicate id %q in %s and %s", entry.ID, other, name)
		}
		seen[entry.ID] = name
		entries = append(entries, entry)
	}

	return New(entries, markupCategories), nil
}

// ParseEntry decodes a post file: YAML front matter followed by the raw body.
func ParseEntry(name string, data []byte) (Entry, error) {
	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to parse front matter in %s: %w", name, err)
	}

	if strings.TrimSpace(meta.Title) == "" {
		return Entry{}, fmt.Errorf("%s: title cannot be empty", name)
	}
	if strings.TrimSpace(meta.Category) == "" {
		return Entry{}, fmt.Errorf("%s: category cannot be empty", name)
	}

	id := ""
	if meta.ID != nil {
		id = strings.TrimSpace(fmt.Sprint(meta.ID))
	}
	if id == "" {
		id = uuid.NewSHA1(idNamespace, []byte(name)).String()
	}

	return Entry{
		ID:        id,
		Title:     meta.Title,
		Category:  meta.Category,
		ShortDesc: meta.ShortDesc,
		Image:     meta.Image,
		Body:      string(body),
	}, nil
}

// All returns every entry in catalog order.
func (c *Catalog) All() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Filter returns the entries in category. All selects everything; an
// unknown category selects nothing.
func (c *Catalog) Filter(category string) []Entry {
	if category == All || category == "" {
		return c.All()
	}
	var out []Entry
	for _, e := range c.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Find looks up an entry by id.
func (c *Catalog) Find(id string) (Entry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Categories lists distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	var out []string
	seen := map[string]bool{}
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// NeedsMarkup reports whether bodies in category must go through the
// markup converter before display.
func (c *Catalog) NeedsMarkup(category string) bool {
	return c.markup[category]
}

// IndexEntry is the exported summary of an entry.
type IndexEntry struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Category  string `yaml:"category"`
	ShortDesc string `yaml:"short_desc,omitempty"`
	Image     string `yaml:"image,omitempty"`
	Markup    bool   `yaml:"markup"`
}

// Index summarises the catalog without bodies.
func (c *Catalog) Index() []IndexEntry {
	index := make([]IndexEntry, 0, len(c.entries))
	for _, e := range c.entries {
		index = append(index, IndexEntry{
			ID:        e.ID,
			Title:     e.Title,
			Category:  e.Category,
			ShortDesc: e.ShortDesc,
			Image:     e.Image,
			Markup:    c.NeedsMarkup(e.Category),
		})
	}
	return index
}

// ExportYAML encodes the index as a YAML document.
func (c *Catalog) ExportYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any{"posts": c.Index()}); err != nil {
		return nil, fmt.Errorf("failed to encode catalog index: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode catalog index: %w", err)
	}
	return buf.Bytes(), nil
}
