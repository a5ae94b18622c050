package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette, used for dark mode
const (
	// Base colors
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	// Accent colors
	Red     = "#FF6188" // Errors, danger
	Orange  = "#FC9867" // Warnings
	Yellow  = "#FFD866" // Highlights
	Green   = "#A9DC76" // Success
	Cyan    = "#78DCE8" // Info, code
	Blue    = "#AB9DF2" // Links
	Magenta = "#FF6188" // Titles, emphasis

	// UI colors
	Comment = "#727072" // Dim text, help
	Border  = "#5B595C" // Borders, separators
)

// Monokai Pro Light counterparts
const (
	LightBackground = "#FAF4F2"
	LightForeground = "#29242A"
	LightRed        = "#E14775"
	LightOrange     = "#E16032"
	LightYellow     = "#CC7A0A"
	LightGreen      = "#269D69"
	LightCyan       = "#1C8CA8"
	LightBlue       = "#7058BE"
	LightComment    = "#A59FA0"
	LightBorder     = "#D3CDCC"
)

// Common styles for command output
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
)
