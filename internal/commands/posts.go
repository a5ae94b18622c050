package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/blogdeck/internal/catalog"
	"github.com/gerunddev/blogdeck/internal/render"
	"github.com/gerunddev/blogdeck/internal/styles"
	"github.com/gerunddev/blogdeck/internal/view"
)

// List prints the catalog, optionally filtered by category
func List(args []string) {
	cfg, log, cleanup := setup()
	defer cleanup()

	c := mustLoadCatalog(cfg, log)

	category := flagValue(args, "--category")
	if category == "" {
		category = catalog.All
	}

	entries := c.Filter(category)
	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("Posts (%s): %d", category, len(entries))))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println(styles.WarningStyle.Render("  No posts in this category"))
		return
	}

	idStyle := styles.HighlightStyle.Width(6)
	for _, e := range entries {
		title := e.Title
		if c.NeedsMarkup(e.Category) {
			title += styles.DimStyle.Render(" (markup)")
		}
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, "  ", idStyle.Render(shortID(e.ID)), title))
		fmt.Println(styles.DimStyle.Render(fmt.Sprintf("        %s • %s", e.Category, e.ShortDesc)))
	}
}

// Show prints a single post
func Show(args []string) {
	cfg, log, cleanup := setup()
	defer cleanup()

	ids := positional(args, "--width")
	if len(ids) != 1 {
		exitWithError("Usage: blogdeck show <id> [--html] [--width N]")
	}

	c := mustLoadCatalog(cfg, log)
	e, ok := c.Find(ids[0])
	if !ok {
		exitWithError(fmt.Sprintf("No post with id %q", ids[0]))
	}
	log.PostOpened(e.ID, e.Category, c.NeedsMarkup(e.Category))

	body := view.Body(c, e)
	if hasFlag(args, "--html") {
		fmt.Println(body)
		return
	}

	width := 100
	if w := flagValue(args, "--width"); w != "" {
		if _, err := fmt.Sscanf(w, "%d", &width); err != nil || width < 0 {
			exitWithError("Invalid width: " + w)
		}
	}

	palette := styles.For(resolveTheme(prefsStore(), log))
	out, err := render.HTML(body, palette, render.Options{Width: width, Selected: -1})
	if err != nil {
		exitWithError("Failed to render post: " + err.Error())
	}

	fmt.Println(palette.Title.Render(e.Title))
	fmt.Println(palette.Dim.Render(e.Category + " • " + e.Image))
	fmt.Println()
	fmt.Println(out)
}

// Export writes the catalog index as YAML
func Export(args []string) {
	cfg, log, cleanup := setup()
	defer cleanup()

	c := mustLoadCatalog(cfg, log)
	data, err := c.ExportYAML()
	if err != nil {
		exitWithError("Failed to export index: " + err.Error())
	}

	out := flagValue(args, "--out")
	if out == "" {
		os.Stdout.Write(data)
		return
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		exitWithError("Failed to write index: " + err.Error())
	}
	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d posts to %s", c.Len(), out)))
}

// shortID trims generated ids for display
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
