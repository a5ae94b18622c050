// Package prefs persists reader preferences across sessions.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Theme is the colour scheme of the reader.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Settings is the persisted preference set. An empty Theme means the user
// never chose one.
type Settings struct {
	Theme Theme `json:"theme,omitempty"`
}

// Store reads and writes settings.
type Store interface {
	Load() (Settings, error)
	Save(Settings) error
}

// Resolve picks the theme to start with: a saved choice wins, otherwise the
// system preference.
func Resolve(s Settings, prefersDark bool) Theme {
	if s.Theme.Valid() {
		return s.Theme
	}
	if prefersDark {
		return Dark
	}
	return Light
}

// Toggle flips current and persists the result. The new theme is returned
// even when saving fails so the UI can still switch.
func Toggle(store Store, current Theme) (Theme, error) {
	next := current.Opposite()

	s, err := store.Load()
	if err != nil {
		s = Settings{}
	}
	s.Theme = next

	if err := store.Save(s); err != nil {
		return next, fmt.Errorf("failed to save theme: %w", err)
	}
	return next, nil
}

// FileStore keeps settings in a JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads settings. A missing file yields empty settings.
func (f *FileStore) Load() (Settings, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, err
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse preferences: %w", err)
	}
	if s.Theme != "" && !s.Theme.Valid() {
		return Settings{}, fmt.Errorf("invalid theme '%s' in %s", s.Theme, f.path)
	}

	return s, nil
}

// Save writes settings, creating the directory if needed.
func (f *FileStore) Save(s Settings) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}

	return nil
}

// MemoryStore keeps settings in memory
type MemoryStore struct {
	mu       sync.Mutex
	settings Settings
	SaveErr  error
}

func (m *MemoryStore) Load() (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

func (m *MemoryStore) Save(s Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.settings = s
	return nil
}
