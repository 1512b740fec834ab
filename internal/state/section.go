package state

import (
	"fmt"
	"strings"
)

// Section identifies one of the six top-level views.
type Section int

const (
	Home Section = iota
	Dashboard
	Upload
	Search
	Analytics
	About
)

var sectionNames = [...]string{
	Home:      "Home",
	Dashboard: "Dashboard",
	Upload:    "Upload",
	Search:    "Search",
	Analytics: "Analytics",
	About:     "About",
}

var sectionIcons = [...]string{
	Home:      "🏠",
	Dashboard: "📊",
	Upload:    "📤",
	Search:    "🔍",
	Analytics: "📈",
	About:     "ℹ️",
}

// Sections returns every section in sidebar order.
func Sections() []Section {
	return []Section{Home, Dashboard, Upload, Search, Analytics, About}
}

// String returns the display name.
func (s Section) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionNames[s]
}

// Icon returns the sidebar glyph.
func (s Section) Icon() string {
	if !s.Valid() {
		return ""
	}
	return sectionIcons[s]
}

// Label returns the icon and name as shown in the sidebar.
func (s Section) Label() string {
	return s.Icon() + " " + s.String()
}

// Key returns the lowercase identifier used in config and on the command line.
func (s Section) Key() string {
	return strings.ToLower(s.String())
}

// Hotkey returns the number key that selects the section.
func (s Section) Hotkey() string {
	return fmt.Sprintf("%d", int(s)+1)
}

// Valid reports whether s is one of the six sections.
func (s Section) Valid() bool {
	return s >= Home && s <= About
}

// ParseSection resolves a section by name, case-insensitively.
func ParseSection(name string) (Section, error) {
	trimmed := strings.TrimSpace(name)
	for _, s := range Sections() {
		if strings.EqualFold(trimmed, s.String()) {
			return s, nil
		}
	}
	return Home, fmt.Errorf("unknown section %q", name)
}

// MarshalText encodes the section by name.
func (s Section) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid section %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a section name.
func (s *Section) UnmarshalText(text []byte) error {
	parsed, err := ParseSection(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
