package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StatusBar is the full-width bottom line of the frame.
type StatusBar struct {
	text  string
	style lipgloss.Style
	width int
}

func NewStatusBar(style lipgloss.Style) *StatusBar {
	return &StatusBar{style: style}
}

func (s *StatusBar) SetText(text string) {
	s.text = text
}

func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

func (s *StatusBar) View() string {
	style := s.style
	if s.width > 0 {
		style = style.Width(s.width)
	}
	return style.Render(s.text)
}
