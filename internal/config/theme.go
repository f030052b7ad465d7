package config

import "sort"

// Theme is a named color palette. Values are lipgloss color strings
// (ANSI 256 codes or hex).
type Theme struct {
	Name      string
	Primary   string // title bar and active tab
	Accent    string // recognised commands, highlights
	Muted     string // inactive tabs, help text
	Border    string // frames
	StatusFg  string
	StatusBg  string
	CommandFg string // status bar while typing a command
}

var themes = map[string]Theme{
	"default": {
		Primary:   "14",
		Accent:    "114",
		Muted:     "245",
		Border:    "14",
		StatusFg:  "15",
		StatusBg:  "4",
		CommandFg: "220",
	},
	"dark": {
		Primary:   "105",
		Accent:    "78",
		Muted:     "240",
		Border:    "105",
		StatusFg:  "252",
		StatusBg:  "236",
		CommandFg: "214",
	},
	"light": {
		Primary:   "135",
		Accent:    "28",
		Muted:     "244",
		Border:    "135",
		StatusFg:  "16",
		StatusBg:  "189",
		CommandFg: "124",
	},
	"monochrome": {
		Primary:   "255",
		Accent:    "252",
		Muted:     "241",
		Border:    "245",
		StatusFg:  "232",
		StatusBg:  "250",
		CommandFg: "232",
	},
	"ocean": {
		Primary:   "31",
		Accent:    "36",
		Muted:     "66",
		Border:    "31",
		StatusFg:  "195",
		StatusBg:  "24",
		CommandFg: "51",
	},
	"sunset": {
		Primary:   "208",
		Accent:    "154",
		Muted:     "138",
		Border:    "208",
		StatusFg:  "230",
		StatusBg:  "88",
		CommandFg: "214",
	},
}

// GetTheme returns the theme with the given name, or the default theme.
func GetTheme(name string) Theme {
	t, ok := themes[name]
	if !ok {
		name = "default"
		t = themes[name]
	}
	t.Name = name
	return t
}

// ListThemes returns the available theme names, sorted.
func ListThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
