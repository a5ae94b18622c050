package commands

import (
	"fmt"

	"github.com/gerunddev/blogdeck/internal/prefs"
	"github.com/gerunddev/blogdeck/internal/styles"
)

// Theme shows or toggles the saved colour theme
func Theme(args []string) {
	_, log, cleanup := setup()
	defer cleanup()

	store := prefsStore()
	current := resolveTheme(store, log)

	if len(args) == 0 {
		settings, _ := store.Load()
		source := "terminal background"
		if settings.Theme.Valid() {
			source = "saved"
		}
		fmt.Printf("Theme: %s %s\n", styles.HighlightStyle.Render(string(current)), styles.DimStyle.Render("("+source+")"))
		return
	}

	switch args[0] {
	case "toggle":
		next, err := prefs.Toggle(store, current)
		if err != nil {
			log.PrefsError("save", err)
			exitWithError("Failed to save theme: " + err.Error())
		}
		log.ThemeChanged(string(next))
		fmt.Println(styles.SuccessStyle.Render("✓ Theme set to " + string(next)))
	case "light", "dark":
		theme := prefs.Theme(args[0])
		if err := store.Save(prefs.Settings{Theme: theme}); err != nil {
			log.PrefsError("save", err)
			exitWithError("Failed to save theme: " + err.Error())
		}
		log.ThemeChanged(string(theme))
		fmt.Println(styles.SuccessStyle.Render("✓ Theme set to " + string(theme)))
	default:
		exitWithError("Usage: blogdeck theme [toggle|light|dark]")
	}
}
