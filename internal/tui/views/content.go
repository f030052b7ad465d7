package views

import "termfolio/internal/app"

var defaultContent = map[app.Section][]string{
	app.Dashboard: {
		"Welcome. Use j/k or the arrow keys to move between sections.",
		"Type ':' to enter a command; ':q' or ':quit' leaves.",
	},
	app.Profile: {
		"Who I am and what I work on.",
		"Add your own text under content.profile in the config file.",
	},
	app.Projects: {
		"Things I have built.",
		"Add entries under content.projects in the config file.",
	},
	app.Experience: {
		"Where I have worked.",
		"Add entries under content.experience in the config file.",
	},
	app.Skills: {
		"Languages, tools and areas of practice.",
		"Add entries under content.skills in the config file.",
	},
	app.Contact: {
		"How to reach me.",
		"Add entries under content.contact in the config file.",
	},
}

// DefaultContent returns the built-in text for s.
func DefaultContent(s app.Section) []string {
	return defaultContent[s]
}
