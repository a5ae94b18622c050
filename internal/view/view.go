// Package view maps the reader's navigation state and the catalog to what
// should be on screen. It holds no state of its own.
package view

import (
	"github.com/gerunddev/blogdeck/internal/catalog"
	"github.com/gerunddev/blogdeck/internal/markup"
)

// Mode is the screen currently shown.
type Mode int

const (
	Grid Mode = iota
	Post
	Admin
)

func (m Mode) String() string {
	switch m {
	case Grid:
		return "grid"
	case Post:
		return "post"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

// State is the navigation state owned by the application controller.
// Transitions return a new value.
type State struct {
	Mode   Mode
	Filter string
	PostID string
}

// Initial returns the grid view with the given filter.
func Initial(filter string) State {
	if filter == "" {
		filter = catalog.All
	}
	return State{Mode: Grid, Filter: filter}
}

// FilterBy changes the grid filter.
func (s State) FilterBy(category string) State {
	if category == "" {
		category = catalog.All
	}
	s.Filter = category
	return s
}

// ShowPost opens a post. Unknown ids leave the state unchanged.
func (s State) ShowPost(c *catalog.Catalog, id string) State {
	if _, ok := c.Find(id); !ok {
		return s
	}
	s.Mode = Post
	s.PostID = id
	return s
}

// ShowAdmin switches to the admin view.
func (s State) ShowAdmin() State {
	s.Mode = Admin
	s.PostID = ""
	return s
}

// GoHome returns to the grid, keeping the filter.
func (s State) GoHome() State {
	s.Mode = Grid
	s.PostID = ""
	return s
}

// FilterButton is one category button above the grid.
type FilterButton struct {
	Name   string
	Active bool
}

// Card is a grid tile.
type Card struct {
	ID      string
	Title   string
	Caption string
	Image   string
}

// Page is a single opened post.
type Page struct {
	ID       string
	Title    string
	Category string
	Image    string
	BodyHTML string
	Markup   bool
}

// Screen is everything needed to draw one frame.
type Screen struct {
	Mode    Mode
	Filters []FilterButton
	Cards   []Card
	Page    *Page
	Admin   *AdminReport
}

// Render computes the screen for s. A post state whose entry has gone
// missing renders no page.
func Render(s State, c *catalog.Catalog) Screen {
	screen := Screen{Mode: s.Mode}

	switch s.Mode {
	case Grid:
		screen.Filters = filterButtons(c, s.Filter)
		for _, e := range c.Filter(s.Filter) {
			screen.Cards = append(screen.Cards, Card{
				ID:      e.ID,
				Title:   e.Title,
				Caption: e.Category + " • " + e.ShortDesc,
				Image:   e.Image,
			})
		}
	case Post:
		e, ok := c.Find(s.PostID)
		if !ok {
			return screen
		}
		screen.Page = &Page{
			ID:       e.ID,
			Title:    e.Title,
			Category: e.Category,
			Image:    e.Image,
			BodyHTML: Body(c, e),
			Markup:   c.NeedsMarkup(e.Category),
		}
	case Admin:
		screen.Admin = BuildAdminReport(c)
	}

	return screen
}

// Body returns the display markup for an entry. Markup categories are
// converted and wrapped; everything else passes through unmodified.
func Body(c *catalog.Catalog, e catalog.Entry) string {
	if !c.NeedsMarkup(e.Category) {
		return e.Body
	}
	return `<div class="markdown-content">` + markup.ToHTML(e.Body) + `</div>`
}

func filterButtons(c *catalog.Catalog, active string) []FilterButton {
	names := append([]string{catalog.All}, c.Categories()...)
	buttons := make([]FilterButton, 0, len(names))
	for _, name := range names {
		buttons = append(buttons, FilterButton{Name: name, Active: name == active})
	}
	return buttons
}
