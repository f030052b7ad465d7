package cmd

import (
	"fmt"
	"io"

	"termfolio/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render("✓ "+msg))
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListThemes() {
				fmt.Fprintln(cmd.OutOrStdout(), swatch(config.GetTheme(name)))
			}
		},
	}
}

func swatch(t config.Theme) string {
	block := func(color string) string {
		return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
	}
	return fmt.Sprintf("%-12s %s%s%s%s", t.Name, block(t.Primary), block(t.Accent), block(t.Muted), block(t.StatusBg))
}
