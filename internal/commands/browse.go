package commands

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/blogdeck/internal/catalog"
	"github.com/gerunddev/blogdeck/internal/clipboard"
	"github.com/gerunddev/blogdeck/internal/tui"
)

// Browse opens the interactive reader
func Browse(args []string) {
	cfg, log, cleanup := setup()
	defer cleanup()

	filter := cfg.DefaultFilter
	if category := flagValue(args, "--category"); category != "" {
		filter = category
	}

	store := prefsStore()
	theme := resolveTheme(store, log)

	m := tui.New(tui.Options{
		Load: func() (*catalog.Catalog, error) {
			return loadCatalog(cfg, log)
		},
		Filter: filter,
		Theme:  theme,
		Prefs:  store,
		// The program owns stdout; the terminal still sees OSC 52 on stderr
		Clipboard: clipboard.OSC52{
			Out:    os.Stderr,
			Tmux:   os.Getenv("TMUX") != "",
			Screen: strings.HasPrefix(os.Getenv("TERM"), "screen"),
		},
		Logger: log,
	})

	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		cleanup()
		exitWithError("Error: " + err.Error())
	}
}
