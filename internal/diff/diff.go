package diff

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns a unified diff from want to got, or "" when they match
func Unified(wantName, gotName, want, got string) string {
	if want == got {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath(wantName), want, got)
	return fmt.Sprint(gotextdiff.ToUnified(wantName, gotName, want, edits))
}

// Golden diffs got against the contents of a golden file
func Golden(goldenPath, gotName, got string) (string, error) {
	want, err := os.ReadFile(goldenPath)
	if err != nil {
		return "", fmt.Errorf("failed to read golden file: %w", err)
	}
	return Unified(filepath.Base(goldenPath), gotName, string(want), got), nil
}

// Render wraps a unified diff in a diff fence and renders it for the terminal
func Render(unified string) string {
	if unified == "" {
		return ""
	}

	// Wrap in diff code fence for proper syntax highlighting (+ in green, - in red)
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		// Fallback to plain diff if glamour fails
		return diffMarkdown
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		// Fallback to plain diff if rendering fails
		return diffMarkdown
	}

	return rendered
}
