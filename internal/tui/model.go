package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/blogdeck/internal/catalog"
	"github.com/gerunddev/blogdeck/internal/clipboard"
	"github.com/gerunddev/blogdeck/internal/logger"
	"github.com/gerunddev/blogdeck/internal/prefs"
	"github.com/gerunddev/blogdeck/internal/render"
	"github.com/gerunddev/blogdeck/internal/styles"
	"github.com/gerunddev/blogdeck/internal/view"
)

// copyTimeout bounds a single clipboard write
const copyTimeout = 2 * time.Second

// CatalogMsg is sent when the catalog has been loaded
type CatalogMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

// copyResultMsg reports the outcome of a clipboard write
type copyResultMsg struct {
	index int
	text  string
	err   error
}

// feedbackExpiredMsg fires when a copy button should revert its label
type feedbackExpiredMsg struct {
	index int
}

// themeMsg reports a theme toggle and any error persisting it
type themeMsg struct {
	theme prefs.Theme
	err   error
}

// Options are the dependencies of the reader
type Options struct {
	Load      func() (*catalog.Catalog, error)
	Filter    string
	Theme     prefs.Theme
	Prefs     prefs.Store
	Clipboard clipboard.Writer
	Logger    *logger.Logger
	Now       func() time.Time
}

// Model is the bubbletea model of the reader
type Model struct {
	opts     Options
	catalog  *catalog.Catalog
	state    view.State
	screen   view.Screen
	palette  styles.Palette
	table    table.Model
	viewport viewport.Model
	spinner  spinner.Model
	buttons  []clipboard.Button
	selected int
	err      error
	ready    bool
	width    int
	height   int
}

// New creates the reader model
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Prefs == nil {
		opts.Prefs = &prefs.MemoryStore{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if !opts.Theme.Valid() {
		opts.Theme = prefs.Light
	}

	columns := []table.Column{
		{Title: "Title", Width: 32},
		{Title: "Category • Description", Width: 60},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	vp := viewport.New(100, 20)

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		opts:     opts,
		state:    view.Initial(opts.Filter),
		table:    t,
		viewport: vp,
		spinner:  s,
		selected: -1,
	}
	m.applyTheme(opts.Theme)
	return m
}

// Theme returns the active theme
func (m Model) Theme() prefs.Theme {
	return m.palette.Theme
}

// State returns the current navigation state
func (m Model) State() view.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCatalog())
}

func (m Model) loadCatalog() tea.Cmd {
	load := m.opts.Load
	return func() tea.Msg {
		if load == nil {
			return CatalogMsg{Err: fmt.Errorf("no catalog source")}
		}
		c, err := load()
		return CatalogMsg{Catalog: c, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-10, 3))
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-8, 5)
		m.refreshContent()
		return m, nil

	case CatalogMsg:
		m.ready = true
		m.catalog = msg.Catalog
		m.err = msg.Err
		if m.catalog != nil {
			m.refresh()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.ready {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			// Copy is best-effort: log and leave the button alone
			m.opts.Logger.CopyFailed(msg.index, msg.err)
			return m, nil
		}
		m.opts.Logger.CodeCopied(msg.index, len(msg.text))
		if msg.index < len(m.buttons) {
			m.buttons[msg.index] = m.buttons[msg.index].Press(m.opts.Now())
			m.refreshContent()
		}
		index := msg.index
		return m, tea.Tick(clipboard.FeedbackWindow, func(time.Time) tea.Msg {
			return feedbackExpiredMsg{index: index}
		})

	case feedbackExpiredMsg:
		m.refreshContent()
		return m, nil

	case themeMsg:
		if msg.err != nil {
			m.opts.Logger.PrefsError("save", msg.err)
		}
		m.applyTheme(msg.theme)
		m.opts.Logger.ThemeChanged(string(msg.theme))
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.catalog == nil {
		return m, nil
	}

	switch key {
	case "t":
		return m, m.toggleTheme()
	case "a":
		m.transition(m.state.ShowAdmin())
		return m, nil
	case "esc", "h":
		m.transition(m.state.GoHome())
		return m, nil
	}

	switch m.state.Mode {
	case view.Grid:
		switch key {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			n := int(key[0] - '1')
			if n < len(m.screen.Filters) {
				m.transition(m.state.FilterBy(m.screen.Filters[n].Name))
			}
			return m, nil
		case "enter":
			cursor := m.table.Cursor()
			if cursor >= 0 && cursor < len(m.screen.Cards) {
				m.transition(m.state.ShowPost(m.catalog, m.screen.Cards[cursor].ID))
			}
			return m, nil
		}
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case view.Post:
		switch key {
		case "]":
			if len(m.buttons) > 0 {
				m.selected = (m.selected + 1) % len(m.buttons)
				m.refreshContent()
			}
			return m, nil
		case "[":
			if len(m.buttons) > 0 {
				m.selected = (m.selected - 1 + len(m.buttons)) % len(m.buttons)
				m.refreshContent()
			}
			return m, nil
		case "c":
			return m, m.copySelected()
		}
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case view.Admin:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// transition moves to a new state and redraws
func (m *Model) transition(next view.State) {
	prev := m.state
	if next == prev {
		return
	}
	m.state = next
	if prev.Mode != next.Mode || prev.Filter != next.Filter {
		m.opts.Logger.ViewChanged(prev.Mode.String(), next.Mode.String(), next.Filter)
	}
	m.refresh()
	if m.screen.Page != nil {
		m.opts.Logger.PostOpened(m.screen.Page.ID, m.screen.Page.Category, m.screen.Page.Markup)
	}
}

// refresh recomputes the screen for the current state
func (m *Model) refresh() {
	m.screen = view.Render(m.state, m.catalog)
	m.buttons = nil
	m.selected = -1

	switch m.screen.Mode {
	case view.Grid:
		rows := make([]table.Row, 0, len(m.screen.Cards))
		for _, card := range m.screen.Cards {
			rows = append(rows, table.Row{card.Title, card.Caption})
		}
		m.table.SetRows(rows)
		m.table.SetCursor(0)
	case view.Post:
		if m.screen.Page != nil {
			n := clipboard.Count(m.screen.Page.BodyHTML)
			m.buttons = make([]clipboard.Button, n)
			for i := range m.buttons {
				m.buttons[i] = clipboard.NewButton()
			}
			if n > 0 {
				m.selected = 0
			}
		}
	}

	m.refreshContent()
	m.viewport.GotoTop()
}

// refreshContent redraws the viewport without resetting scroll position
func (m *Model) refreshContent() {
	switch m.screen.Mode {
	case view.Post:
		m.viewport.SetContent(m.postContent())
	case view.Admin:
		m.viewport.SetContent(adminContent(m.screen.Admin, m.palette.Theme, m.contentWidth()))
	}
}

// contentWidth is the usable width inside the viewport frame
func (m Model) contentWidth() int {
	return max(m.viewport.Width-m.viewport.Style.GetHorizontalFrameSize(), 0)
}

func (m Model) postContent() string {
	page := m.screen.Page
	if page == nil {
		return m.palette.Error.Render("✗ Post not found")
	}

	now := m.opts.Now()
	body, err := render.HTML(page.BodyHTML, m.palette, render.Options{
		Width:    m.contentWidth(),
		Selected: m.selected,
		Label: func(i int) string {
			if i < len(m.buttons) {
				return m.buttons[i].Text(now)
			}
			return clipboard.NewButton().Label
		},
	})
	if err != nil {
		body = m.palette.Error.Render("✗ " + err.Error())
	}

	var b strings.Builder
	b.WriteString(m.palette.Title.Render(page.Title))
	b.WriteString("\n")
	b.WriteString(m.palette.Dim.Render(page.Category + " • " + page.Image))
	b.WriteString("\n\n")
	b.WriteString(body)
	return b.String()
}

// copySelected copies the selected code block without blocking the UI
func (m Model) copySelected() tea.Cmd {
	if m.screen.Page == nil || m.selected < 0 || m.opts.Clipboard == nil {
		return nil
	}
	w := m.opts.Clipboard
	fragment := m.screen.Page.BodyHTML
	index := m.selected

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()
		text, err := clipboard.Copy(ctx, w, fragment, index)
		return copyResultMsg{index: index, text: text, err: err}
	}
}

func (m Model) toggleTheme() tea.Cmd {
	store := m.opts.Prefs
	current := m.palette.Theme
	return func() tea.Msg {
		theme, err := prefs.Toggle(store, current)
		return themeMsg{theme: theme, err: err}
	}
}

func (m *Model) applyTheme(theme prefs.Theme) {
	m.palette = styles.For(theme)

	ts := table.DefaultStyles()
	ts.Header = m.palette.TableHeader
	ts.Selected = m.palette.TableSelected
	m.table.SetStyles(ts)

	m.viewport.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(m.palette.Dim.GetForeground()).
		Padding(0, 1)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.palette.Title.Render("BlogDeck"))
	b.WriteString(m.palette.Dim.Render(fmt.Sprintf("  %s theme", m.palette.Theme)))
	b.WriteString("\n\n")

	if m.err != nil {
		return b.String() + m.palette.Error.Render("✗ Error: "+m.err.Error()) + "\n"
	}

	if !m.ready || m.catalog == nil {
		b.WriteString(fmt.Sprintf("%s Loading posts...\n", m.spinner.View()))
		return b.String()
	}

	switch m.screen.Mode {
	case view.Grid:
		b.WriteString(m.filterBar())
		b.WriteString("\n\n")
		if len(m.screen.Cards) == 0 {
			b.WriteString(m.palette.Dim.Render("No posts in this category."))
		} else {
			b.WriteString(m.palette.Table.Render(m.table.View()))
		}
		b.WriteString("\n\n")
		b.WriteString(m.palette.Help.Render("1-9 filter • ↑/k ↓/j move • enter open • a admin • t theme • q quit"))
	case view.Post:
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		if len(m.buttons) > 0 {
			b.WriteString(m.palette.Help.Render(fmt.Sprintf("[/] code block %d/%d • c copy • ↑/↓ scroll • esc back • t theme • q quit", m.selected+1, len(m.buttons))))
		} else {
			b.WriteString(m.palette.Help.Render("↑/↓ scroll • esc back • t theme • q quit"))
		}
	case view.Admin:
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(m.palette.Help.Render("↑/↓ scroll • esc back • t theme • q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) filterBar() string {
	parts := make([]string, 0, len(m.screen.Filters))
	for i, f := range m.screen.Filters {
		label := fmt.Sprintf("%d %s", i+1, f.Name)
		if f.Active {
			parts = append(parts, m.palette.FilterActive.Render(label))
		} else {
			parts = append(parts, m.palette.FilterInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
