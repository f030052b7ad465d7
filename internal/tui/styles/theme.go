// Package styles turns a config.Theme palette into lipgloss styles.
package styles

import (
	"termfolio/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles for every part of the frame.
type Theme struct {
	Name string

	TitleBar  lipgloss.Style
	Clock     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Content   lipgloss.Style
	Heading   lipgloss.Style
	StatusBar lipgloss.Style
	Command   lipgloss.Style
	KnownCmd  lipgloss.Style
	Help      lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
	HelpSep   lipgloss.Style
}

// New builds the styles for palette t.
func New(t config.Theme) Theme {
	border := lipgloss.Color(t.Border)
	return Theme{
		Name: t.Name,
		TitleBar: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Clock: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)).
			Underline(true).
			Padding(0, 1),
		Content: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)).
			MarginBottom(1),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.StatusFg)).
			Background(lipgloss.Color(t.StatusBg)),
		Command: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.CommandFg)).
			Background(lipgloss.Color(t.StatusBg)),
		KnownCmd: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)).
			Background(lipgloss.Color(t.StatusBg)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		HelpSep: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)),
	}
}

// Named builds the styles for a theme from config.ListThemes.
func Named(name string) Theme {
	return New(config.GetTheme(name))
}
