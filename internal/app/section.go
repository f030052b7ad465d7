package app

import "strings"

// Section is one of the dashboard's content categories.
type Section int

const (
	Dashboard Section = iota
	Profile
	Projects
	Experience
	Skills
	Contact
)

// sections is the navigation cycle. next/previous wrap around it.
var sections = []Section{Dashboard, Profile, Projects, Experience, Skills, Contact}

// Sections returns every section in cycle order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

func (s Section) String() string {
	switch s {
	case Dashboard:
		return "Dashboard"
	case Profile:
		return "Profile"
	case Projects:
		return "Projects"
	case Experience:
		return "Experience"
	case Skills:
		return "Skills"
	case Contact:
		return "Contact"
	default:
		return "Unknown"
	}
}

// Next returns the section after s, wrapping from the last to the first.
func (s Section) Next() Section {
	i := s.index()
	return sections[(i+1)%len(sections)]
}

// Previous returns the section before s, wrapping from the first to the last.
func (s Section) Previous() Section {
	i := s.index()
	return sections[(i-1+len(sections))%len(sections)]
}

// index returns the position of s in the cycle. Returns 0 if not found.
func (s Section) index() int {
	for i, sec := range sections {
		if sec == s {
			return i
		}
	}
	return 0
}

// ParseSection looks a section up by name, ignoring case.
func ParseSection(name string) (Section, bool) {
	for _, s := range sections {
		if strings.EqualFold(s.String(), strings.TrimSpace(name)) {
			return s, true
		}
	}
	return Dashboard, false
}
