package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/gerunddev/blogdeck/internal/prefs"
	"github.com/gerunddev/blogdeck/internal/view"
)

// adminMarkdown describes the admin report as markdown
func adminMarkdown(r *view.AdminReport) string {
	if r == nil {
		return "# Admin\n\nNo report available.\n"
	}

	var b strings.Builder
	b.WriteString("# Admin\n\n")
	fmt.Fprintf(&b, "**Posts:** %d\n\n", r.Posts)

	b.WriteString("| Category | Posts | Markup | Code blocks |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, s := range r.Categories {
		markup := "no"
		if s.Markup {
			markup = "yes"
		}
		fmt.Fprintf(&b, "| %s | %d | %s | %d |\n", s.Category, s.Posts, markup, s.CodeBlocks)
	}

	b.WriteString("\n## Index\n\n")
	if r.IndexErr != nil {
		fmt.Fprintf(&b, "Index unavailable: %v\n", r.IndexErr)
		return b.String()
	}
	b.WriteString("```yaml\n")
	b.WriteString(r.IndexYAML)
	if !strings.HasSuffix(r.IndexYAML, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")

	return b.String()
}

// adminContent renders the admin report with glamour in the active theme
func adminContent(r *view.AdminReport, theme prefs.Theme, width int) string {
	md := adminMarkdown(r)

	style := "light"
	if theme == prefs.Dark {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-4, 40)),
	)
	if err != nil {
		// Fallback to plain markdown if glamour fails
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}
