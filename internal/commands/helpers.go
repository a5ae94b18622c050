package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/blogdeck/internal/catalog"
	"github.com/gerunddev/blogdeck/internal/config"
	"github.com/gerunddev/blogdeck/internal/logger"
	"github.com/gerunddev/blogdeck/internal/prefs"
	"github.com/gerunddev/blogdeck/internal/styles"
)

// exitWithError prints a failure line and exits
func exitWithError(msg string) {
	fmt.Println(styles.ErrorStyle.Render("✗ " + msg))
	os.Exit(1)
}

// setup loads the configuration and opens the log file.
// The returned cleanup closes the log file.
func setup() (*config.Config, *logger.Logger, func()) {
	cfg, err := config.Load()
	if err != nil {
		exitWithError("Failed to load configuration: " + err.Error())
	}

	log, cleanup, err := logger.NewFileLogger(cfg.LogFile)
	if err != nil {
		// Logging is best effort; commands still work without it
		log = logger.Discard()
		cleanup = func() {}
	}
	log.ConfigLoaded(cfg.CatalogDir, cfg.MarkupCategories)

	return cfg, log, cleanup
}

// catalogSource names where posts are read from
func catalogSource(cfg *config.Config) string {
	if cfg.CatalogDir == "" {
		return "embedded"
	}
	return cfg.CatalogDir
}

// loadCatalog reads posts from the configured directory or the built-in set
func loadCatalog(cfg *config.Config, log *logger.Logger) (*catalog.Catalog, error) {
	var (
		c   *catalog.Catalog
		err error
	)
	if cfg.CatalogDir == "" {
		c, err = catalog.Default(cfg.MarkupCategories)
	} else {
		c, err = catalog.Load(os.DirFS(cfg.CatalogDir), ".", cfg.MarkupCategories)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.CatalogLoaded(c.Len(), catalogSource(cfg))
	return c, nil
}

// mustLoadCatalog loads the catalog or exits
func mustLoadCatalog(cfg *config.Config, log *logger.Logger) *catalog.Catalog {
	c, err := loadCatalog(cfg, log)
	if err != nil {
		exitWithError(err.Error())
	}
	return c
}

// prefsStore returns the persisted preference store
func prefsStore() *prefs.FileStore {
	return prefs.NewFileStore(config.PrefsFilePath())
}

// resolveTheme picks the saved theme, falling back to the terminal background
func resolveTheme(store prefs.Store, log *logger.Logger) prefs.Theme {
	settings, err := store.Load()
	if err != nil {
		log.PrefsError("load", err)
	}
	return prefs.Resolve(settings, lipgloss.HasDarkBackground())
}

// flagValue returns the value following name in args, if any
func flagValue(args []string, name string) string {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, name+"="); ok {
			return v
		}
	}
	return ""
}

// hasFlag reports whether name appears in args
func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

// positional returns args that are neither flags nor flag values
func positional(args []string, valueFlags ...string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			for _, f := range valueFlags {
				if arg == f {
					i++
					break
				}
			}
			continue
		}
		out = append(out, arg)
	}
	return out
}
