package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/gerunddev/blogdeck/internal/catalog"
	"github.com/gerunddev/blogdeck/internal/clipboard"
	"github.com/gerunddev/blogdeck/internal/logger"
	"github.com/gerunddev/blogdeck/internal/prefs"
	"github.com/gerunddev/blogdeck/internal/view"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type recorder struct {
	copied []string
	err    error
}

func (r *recorder) Write(_ context.Context, text string) error {
	if r.err != nil {
		return r.err
	}
	r.copied = append(r.copied, text)
	return nil
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, key(k))
	}
	return m
}

func loaded(t *testing.T, opts Options) Model {
	t.Helper()
	c, err := catalog.Default(nil)
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	m := New(opts)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 80})
	m, _ = update(t, m, CatalogMsg{Catalog: c})
	return m
}

func plain(m Model) string {
	return ansi.Strip(m.View())
}

func TestLoading(t *testing.T) {
	m := New(Options{})
	if m.Init() == nil {
		t.Error("Init() should start loading")
	}
	if !strings.Contains(plain(m), "Loading posts") {
		t.Errorf("expected loading view:\n%s", plain(m))
	}

	m, _ = update(t, m, CatalogMsg{Err: errors.New("boom")})
	if !strings.Contains(plain(m), "✗ Error: boom") {
		t.Errorf("expected error view:\n%s", plain(m))
	}
}

func TestLoadCatalogCommand(t *testing.T) {
	c := catalog.New(nil, nil)
	m := New(Options{Load: func() (*catalog.Catalog, error) { return c, nil }})

	msg, ok := m.loadCatalog()().(CatalogMsg)
	if !ok {
		t.Fatal("expected CatalogMsg")
	}
	if msg.Catalog != c || msg.Err != nil {
		t.Errorf("loadCatalog() = %+v", msg)
	}

	msg = New(Options{}).loadCatalog()().(CatalogMsg)
	if msg.Err == nil {
		t.Error("expected error without a catalog source")
	}
}

func TestQuit(t *testing.T) {
	m := New(Options{})
	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestGridFilter(t *testing.T) {
	m := loaded(t, Options{})

	out := plain(m)
	for _, want := range []string{"1 All", "2 People", "3 Tech", "4 Food", "The Art of Minimalist Living"} {
		if !strings.Contains(out, want) {
			t.Errorf("grid missing %q:\n%s", want, out)
		}
	}

	m = press(t, m, "3")
	if m.State().Filter != "Tech" {
		t.Fatalf("Filter = %q, want Tech", m.State().Filter)
	}
	out = plain(m)
	if !strings.Contains(out, "Modern Web Development 2024") || strings.Contains(out, "Minimalist") {
		t.Errorf("Tech filter shows wrong cards:\n%s", out)
	}

	// No ninth filter
	m = press(t, m, "9")
	if m.State().Filter != "Tech" {
		t.Errorf("Filter changed to %q", m.State().Filter)
	}
}

func TestOpenPostAndGoHome(t *testing.T) {
	m := loaded(t, Options{})
	m = press(t, m, "3", "enter")

	want := view.State{Mode: view.Post, Filter: "Tech", PostID: "2"}
	if m.State() != want {
		t.Fatalf("State() = %+v, want %+v", m.State(), want)
	}
	out := plain(m)
	if !strings.Contains(out, "Static vs Dynamic") || !strings.Contains(out, "Copy") {
		t.Errorf("post view missing content:\n%s", out)
	}

	m = press(t, m, "esc")
	if m.State().Mode != view.Grid || m.State().Filter != "Tech" {
		t.Errorf("after esc State() = %+v", m.State())
	}
}

func TestRawPostHasNoCopyHelp(t *testing.T) {
	m := loaded(t, Options{})
	m = press(t, m, "2", "enter")

	out := plain(m)
	if !strings.Contains(out, "Minimalism isn't just about throwing away your stuff.") {
		t.Errorf("raw body not rendered:\n%s", out)
	}
	if strings.Contains(out, "c copy") {
		t.Errorf("post without code blocks offers copy:\n%s", out)
	}
}

func TestCopyFeedback(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	rec := &recorder{}
	var logs bytes.Buffer

	m := loaded(t, Options{Clipboard: rec, Now: clock.Now, Logger: logger.New(&logs)})
	m = press(t, m, "3", "enter")

	_, cmd := update(t, m, key("c"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	m, tick := update(t, m, cmd())

	if len(rec.copied) != 1 || !strings.HasPrefix(rec.copied[0], "function toggleTheme() {") {
		t.Fatalf("copied = %q", rec.copied)
	}
	if tick == nil {
		t.Error("expected feedback timer")
	}
	if !strings.Contains(plain(m), "Copied!") {
		t.Errorf("button not acknowledged:\n%s", plain(m))
	}
	if !strings.Contains(logs.String(), "code copied") {
		t.Errorf("copy not logged: %q", logs.String())
	}

	clock.now = clock.now.Add(clipboard.FeedbackWindow)
	m, _ = update(t, m, feedbackExpiredMsg{index: 0})
	if strings.Contains(plain(m), "Copied!") {
		t.Errorf("button not reverted:\n%s", plain(m))
	}
}

func TestCopyFailureIsLoggedOnly(t *testing.T) {
	rec := &recorder{err: errors.New("no terminal")}
	var logs bytes.Buffer

	m := loaded(t, Options{Clipboard: rec, Logger: logger.New(&logs)})
	m = press(t, m, "3", "enter")

	_, cmd := update(t, m, key("c"))
	m, tick := update(t, m, cmd())

	if tick != nil {
		t.Error("failed copy should not schedule feedback")
	}
	if strings.Contains(plain(m), "Copied!") {
		t.Errorf("failed copy shows feedback:\n%s", plain(m))
	}
	if !strings.Contains(logs.String(), "copy failed") {
		t.Errorf("failure not logged: %q", logs.String())
	}
}

func TestCopyWithoutClipboard(t *testing.T) {
	m := loaded(t, Options{})
	m = press(t, m, "3", "enter")

	if _, cmd := update(t, m, key("c")); cmd != nil {
		t.Error("copy without a clipboard should do nothing")
	}
}

func TestSelectCodeBlockWraps(t *testing.T) {
	m := loaded(t, Options{})
	m = press(t, m, "3", "enter")

	if m.selected != 0 {
		t.Fatalf("selected = %d, want 0", m.selected)
	}
	m = press(t, m, "]")
	if m.selected != 0 {
		t.Errorf("single block should wrap to 0, got %d", m.selected)
	}
	m = press(t, m, "[")
	if m.selected != 0 {
		t.Errorf("single block should wrap to 0, got %d", m.selected)
	}
}

func TestToggleTheme(t *testing.T) {
	store := &prefs.MemoryStore{}
	m := loaded(t, Options{Prefs: store, Theme: prefs.Light})

	_, cmd := update(t, m, key("t"))
	if cmd == nil {
		t.Fatal("expected toggle command")
	}
	m, _ = update(t, m, cmd())

	if m.Theme() != prefs.Dark {
		t.Errorf("Theme() = %q, want dark", m.Theme())
	}
	saved, _ := store.Load()
	if saved.Theme != prefs.Dark {
		t.Errorf("saved theme = %q, want dark", saved.Theme)
	}
	if !strings.Contains(plain(m), "dark theme") {
		t.Errorf("header does not show theme:\n%s", plain(m))
	}
}

func TestToggleThemeSaveError(t *testing.T) {
	store := &prefs.MemoryStore{SaveErr: errors.New("read-only")}
	var logs bytes.Buffer
	m := loaded(t, Options{Prefs: store, Theme: prefs.Dark, Logger: logger.New(&logs)})

	_, cmd := update(t, m, key("t"))
	m, _ = update(t, m, cmd())

	if m.Theme() != prefs.Light {
		t.Errorf("Theme() = %q, want light", m.Theme())
	}
	if !strings.Contains(logs.String(), "prefs error") {
		t.Errorf("save error not logged: %q", logs.String())
	}
}

func TestAdminView(t *testing.T) {
	m := loaded(t, Options{})
	m = press(t, m, "a")

	if m.State().Mode != view.Admin {
		t.Fatalf("Mode = %v, want admin", m.State().Mode)
	}
	out := plain(m)
	for _, want := range []string{"Admin", "Tech", "Index"} {
		if !strings.Contains(out, want) {
			t.Errorf("admin view missing %q:\n%s", want, out)
		}
	}

	m = press(t, m, "h")
	if m.State().Mode != view.Grid {
		t.Errorf("Mode = %v, want grid", m.State().Mode)
	}
}

func TestAdminMarkdown(t *testing.T) {
	r := &view.AdminReport{
		Posts: 2,
		Categories: []view.CategoryStats{
			{Category: "Tech", Posts: 1, Markup: true, CodeBlocks: 3},
			{Category: "Food", Posts: 1},
		},
		IndexYAML: "posts: []",
	}

	md := adminMarkdown(r)
	for _, want := range []string{"**Posts:** 2", "| Tech | 1 | yes | 3 |", "| Food | 1 | no | 0 |", "```yaml\nposts: []\n```"} {
		if !strings.Contains(md, want) {
			t.Errorf("adminMarkdown() missing %q:\n%s", want, md)
		}
	}

	r.IndexErr = errors.New("encode failed")
	if md := adminMarkdown(r); !strings.Contains(md, "Index unavailable: encode failed") {
		t.Errorf("adminMarkdown() missing index error:\n%s", md)
	}

	if md := adminMarkdown(nil); !strings.Contains(md, "No report available") {
		t.Errorf("adminMarkdown(nil) = %q", md)
	}
}

func TestInitialFilter(t *testing.T) {
	m := loaded(t, Options{Filter: "Food"})
	out := plain(m)
	if !strings.Contains(out, "Sourdough") || strings.Contains(out, "Modern Web") {
		t.Errorf("initial filter not applied:\n%s", out)
	}
}

var _ clipboard.Writer = (*recorder)(nil)
