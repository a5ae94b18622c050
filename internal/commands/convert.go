package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerunddev/blogdeck/internal/diff"
	"github.com/gerunddev/blogdeck/internal/markup"
	"github.com/gerunddev/blogdeck/internal/styles"
)

// Convert turns a markup file into HTML, or checks it against a golden file
func Convert(args []string) {
	files := positional(args, "--expect")
	if len(files) != 1 {
		exitWithError("Usage: blogdeck convert <file> [--expect golden.html]")
	}
	path := files[0]

	content, err := os.ReadFile(path)
	if err != nil {
		exitWithError("Failed to read file: " + err.Error())
	}

	html := markup.ToHTML(string(content))

	golden := flagValue(args, "--expect")
	if golden == "" {
		fmt.Println(html)
		return
	}

	// Golden files usually end with a newline; the converter output does not
	unified, err := diff.Golden(golden, filepath.Base(path), html+"\n")
	if err != nil {
		exitWithError(err.Error())
	}
	if unified == "" {
		fmt.Println(styles.SuccessStyle.Render("✓ Output matches " + filepath.Base(golden)))
		return
	}

	fmt.Println(styles.ErrorStyle.Render("✗ Output differs from " + filepath.Base(golden)))
	fmt.Print(diff.Render(unified))
	os.Exit(1)
}
