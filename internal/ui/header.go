package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	productName = "AkshRail"
	tagline     = "Where Information Meets Action"
)

// renderHeader renders the logo, product name and tagline, followed by the
// logo warning when the logo file was missing.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	lines := m.logo.Lines
	if len(lines) > LogoMaxLines {
		lines = lines[:LogoMaxLines]
	}
	art := make([]string, len(lines))
	for i, line := range lines {
		art[i] = bg.Render(line, styles.Brand)
	}

	title := bg.Render(productName, styles.Brand)
	if m.width >= LayoutCompactWidth {
		title += sep + bg.Render(tagline, styles.MutedText)
	}
	section := m.nav.Active()
	title += sep + bg.Render("›", styles.FaintText) + bg.Space() + bg.Render(section.Label(), styles.AccentText)

	content := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(art, "\n"), sep, title)
	rows := []string{styles.Header.Width(m.width).Render(content)}

	if warning := m.logo.Warning(); warning != "" {
		rows = append(rows, styles.Header.Width(m.width).Render(bg.Render("⚠ "+warning, styles.WarningText)))
	}
	return strings.Join(rows, "\n")
}

// renderCommandBar renders the context-sensitive key hints.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	f, ok := m.focused()
	switch {
	case m.focus == focusSidebar:
		commands = []cmd{
			{"1-6", "Sections"},
			{"j/k", "Move"},
			{"enter", "Open"},
			{"tab", "Content"},
			{"?", "More"},
		}
	case ok && f.typing():
		commands = []cmd{
			{"enter", "Submit"},
			{"tab", "Next"},
			{"esc", "Sidebar"},
		}
	case ok && f.kind == focusFilters:
		commands = []cmd{
			{"h/l", "Move"},
			{"Space", "Toggle"},
			{"tab", "Next"},
			{"esc", "Sidebar"},
			{"?", "More"},
		}
	case ok && f.kind == focusType:
		commands = []cmd{
			{"h/l", "Type"},
			{"tab", "Next"},
			{"esc", "Sidebar"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"tab", "Next"},
			{"enter", m.activateLabel(f, ok)},
			{"j/k", "Scroll"},
			{"[/]", "Sections"},
			{"esc", "Sidebar"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	if m.pending() {
		segments = append(segments, bg.Render(m.spinner.View(), styles.AccentText)+bg.Space()+bg.Render("Working", styles.WarningText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

// activateLabel describes what enter does on the focused control.
func (m Model) activateLabel(f focusable, ok bool) string {
	if !ok {
		return "Press"
	}
	switch f.kind {
	case focusFile:
		return "Browse"
	case focusExpander:
		if m.page.expanded[f.id] {
			return "Collapse"
		}
		return "Expand"
	case focusButton:
		if f.action != nil {
			return "Go to " + f.action.Navigate.String()
		}
	}
	return "Press"
}
