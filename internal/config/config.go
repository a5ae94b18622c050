package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/gerunddev/blogdeck/internal/catalog"
)

// Config represents the blogdeck configuration
type Config struct {
	CatalogDir       string   `json:"catalog_dir,omitempty"` // Empty uses the built-in posts
	LogFile          string   `json:"log_file"`
	MarkupCategories []string `json:"markup_categories"`
	DefaultFilter    string   `json:"default_filter,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		CatalogDir:       "",
		LogFile:          filepath.Join(os.TempDir(), "blogdeck.log"),
		MarkupCategories: append([]string(nil), catalog.DefaultMarkupCategories...),
		DefaultFilter:    catalog.All,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "blogdeck", "config.json")
	}
	return filepath.Join(home, ".config", "blogdeck", "config.json")
}

// PrefsFilePath returns the path to the persisted preferences
// Uses the platform-specific XDG state directory
// Can be overridden for testing
var PrefsFilePath = func() string {
	return filepath.Join(xdg.StateHome, "blogdeck", "prefs.json")
}

// Load reads configuration from the config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DefaultFilter == "" {
		cfg.DefaultFilter = catalog.All
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	if c.MarkupCategories == nil {
		return fmt.Errorf("markup_categories must be a list (use [] for none)")
	}
	for _, category := range c.MarkupCategories {
		if category == "" {
			return fmt.Errorf("markup_categories cannot contain an empty name")
		}
		if category == catalog.All {
			return fmt.Errorf("'%s' is a filter, not a category", catalog.All)
		}
	}
	if c.DefaultFilter == "" {
		return fmt.Errorf("default_filter cannot be empty")
	}

	if c.CatalogDir != "" {
		info, err := os.Stat(c.CatalogDir)
		if err != nil {
			return fmt.Errorf("catalog_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("catalog_dir '%s' is not a directory", c.CatalogDir)
		}
	}

	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.CatalogDir, err = expandPath(c.CatalogDir)
	if err != nil {
		return fmt.Errorf("failed to expand catalog_dir: %w", err)
	}

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
