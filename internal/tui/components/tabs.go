package components

import (
	"strings"

	"termfolio/internal/app"

	"github.com/charmbracelet/lipgloss"
)

// Tabs renders one label per section, highlighting current.
func Tabs(current app.Section, tab, active lipgloss.Style) string {
	labels := make([]string, 0, len(app.Sections()))
	for _, s := range app.Sections() {
		if s == current {
			labels = append(labels, active.Render(s.String()))
		} else {
			labels = append(labels, tab.Render(s.String()))
		}
	}
	return strings.Join(labels, "│")
}
