package view

import (
	"github.com/gerunddev/blogdeck/internal/catalog"
	"github.com/gerunddev/blogdeck/internal/markup"
)

// CategoryStats summarises one category for the admin view.
type CategoryStats struct {
	Category   string
	Posts      int
	Markup     bool
	CodeBlocks int
}

// AdminReport is the content of the admin view.
type AdminReport struct {
	Posts      int
	Categories []CategoryStats
	IndexYAML  string
	IndexErr   error
}

// BuildAdminReport counts posts and code snippets per category.
func BuildAdminReport(c *catalog.Catalog) *AdminReport {
	report := &AdminReport{Posts: c.Len()}

	for _, category := range c.Categories() {
		stats := CategoryStats{
			Category: category,
			Markup:   c.NeedsMarkup(category),
		}
		for _, e := range c.Filter(category) {
			stats.Posts++
			if stats.Markup {
				stats.CodeBlocks += len(markup.CodeBlocks(e.Body))
			}
		}
		report.Categories = append(report.Categories, stats)
	}

	data, err := c.ExportYAML()
	if err != nil {
		report.IndexErr = err
	} else {
		report.IndexYAML = string(data)
	}

	return report
}
