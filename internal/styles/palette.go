// Package styles holds the reader's colours and lipgloss styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/blogdeck/internal/prefs"
)

// Palette is the set of styles for one theme.
type Palette struct {
	Theme prefs.Theme

	Title      lipgloss.Style
	Heading    [3]lipgloss.Style
	Text       lipgloss.Style
	Dim        lipgloss.Style
	Help       lipgloss.Style
	Strong     lipgloss.Style
	InlineCode lipgloss.Style
	Quote      lipgloss.Style
	CodeBox    lipgloss.Style
	Button     lipgloss.Style
	ButtonAck  lipgloss.Style
	Bullet     lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style

	FilterActive   lipgloss.Style
	FilterInactive lipgloss.Style
	Table          lipgloss.Style
	TableHeader    lipgloss.Style
	TableSelected  lipgloss.Style
}

type colors struct {
	bg, fg, red, orange, yellow, green, cyan, blue, comment, border string
}

var (
	darkColors  = colors{Background, Foreground, Red, Orange, Yellow, Green, Cyan, Blue, Comment, Border}
	lightColors = colors{LightBackground, LightForeground, LightRed, LightOrange, LightYellow, LightGreen, LightCyan, LightBlue, LightComment, LightBorder}
)

// For returns the palette of a theme. Unknown themes get the light palette.
func For(theme prefs.Theme) Palette {
	c := lightColors
	if theme == prefs.Dark {
		c = darkColors
	} else {
		theme = prefs.Light
	}
	return build(theme, c)
}

func build(theme prefs.Theme, c colors) Palette {
	color := func(s string) lipgloss.Color { return lipgloss.Color(s) }

	return Palette{
		Theme: theme,

		Title: lipgloss.NewStyle().Bold(true).Foreground(color(c.red)),
		Heading: [3]lipgloss.Style{
			lipgloss.NewStyle().Bold(true).Underline(true).Foreground(color(c.red)),
			lipgloss.NewStyle().Bold(true).Foreground(color(c.orange)),
			lipgloss.NewStyle().Bold(true).Foreground(color(c.yellow)),
		},
		Text:       lipgloss.NewStyle().Foreground(color(c.fg)),
		Dim:        lipgloss.NewStyle().Foreground(color(c.comment)),
		Help:       lipgloss.NewStyle().Foreground(color(c.comment)),
		Strong:     lipgloss.NewStyle().Bold(true).Foreground(color(c.fg)),
		InlineCode: lipgloss.NewStyle().Foreground(color(c.cyan)),
		Quote: lipgloss.NewStyle().
			Italic(true).
			Foreground(color(c.comment)).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(color(c.blue)).
			PaddingLeft(1),
		CodeBox: lipgloss.NewStyle().
			Foreground(color(c.green)).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(color(c.border)).
			Padding(0, 1),
		Button:    lipgloss.NewStyle().Foreground(color(c.bg)).Background(color(c.cyan)).Padding(0, 1),
		ButtonAck: lipgloss.NewStyle().Foreground(color(c.bg)).Background(color(c.green)).Padding(0, 1),
		Bullet:    lipgloss.NewStyle().Foreground(color(c.yellow)),
		Error:     lipgloss.NewStyle().Foreground(color(c.red)),
		Success:   lipgloss.NewStyle().Foreground(color(c.green)),

		FilterActive:   lipgloss.NewStyle().Foreground(color(c.bg)).Background(color(c.yellow)).Padding(0, 1),
		FilterInactive: lipgloss.NewStyle().Foreground(color(c.comment)).Padding(0, 1),
		Table: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(color(c.border)),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(color(c.border)).
			BorderBottom(true).
			Bold(true).
			Foreground(color(c.red)),
		TableSelected: lipgloss.NewStyle().Foreground(color(c.bg)).Background(color(c.yellow)),
	}
}
