package views

import (
	"fmt"
	"strings"
	"time"

	"termfolio/internal/app"
	"termfolio/internal/tui/components"
	"termfolio/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// ModelReader is what the frame needs from the model.
type ModelReader interface {
	Title() string
	Version() string
	Section() app.Section
	Mode() app.Mode
	StatusLine() string
	CommandBuffer() string
	Content(app.Section) []string
	LastTick() time.Time
	Started() time.Time
	Width() int
	Height() int
	Theme() styles.Theme
	HelpView() string
}

const clockLayout = "15:04:05"

// RenderMainView draws the title bar, the section tabs and content, the
// status bar and the help line.
func RenderMainView(m ModelReader) string {
	theme := m.Theme()
	width := m.Width()

	header := renderHeader(m, theme, width)
	tabs := components.Tabs(m.Section(), theme.Tab, theme.ActiveTab)
	status := renderStatus(m, theme, width)
	help := theme.Help.Render(m.HelpView())

	body := renderContent(m, theme, width, m.Height()-
		lipgloss.Height(header)-lipgloss.Height(tabs)-lipgloss.Height(status)-lipgloss.Height(help))

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, body, status, help)
}

func renderHeader(m ModelReader, theme styles.Theme, width int) string {
	title := fmt.Sprintf("%s %s", m.Title(), m.Version())

	var clock string
	if tick := m.LastTick(); !tick.IsZero() {
		clock = theme.Clock.Render(fmt.Sprintf("%s · started %s",
			tick.Format(clockLayout),
			humanize.RelTime(m.Started(), tick, "ago", "from now")))
	}

	style := theme.TitleBar
	if width > 2 {
		style = style.Width(width - 2)
	}

	if clock == "" {
		return style.Render(title)
	}
	inner := style.GetWidth() - style.GetHorizontalPadding()
	gap := inner - lipgloss.Width(title) - lipgloss.Width(clock)
	if gap < 1 {
		gap = 1
	}
	return style.Render(title + strings.Repeat(" ", gap) + clock)
}

func renderContent(m ModelReader, theme styles.Theme, width, height int) string {
	section := m.Section()
	lines := append([]string{theme.Heading.Render(section.String())}, m.Content(section)...)

	style := theme.Content
	if width > 2 {
		style = style.Width(width - 2)
	}
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func renderStatus(m ModelReader, theme styles.Theme, width int) string {
	style := theme.StatusBar
	if m.Mode() == app.Command {
		style = theme.Command
		if app.IsCommand(m.CommandBuffer()) {
			style = theme.KnownCmd
		}
	}
	bar := components.NewStatusBar(style)
	bar.SetText(m.StatusLine())
	bar.SetWidth(width)
	return bar.View()
}
