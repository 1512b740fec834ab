package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/akshrail/internal/state"
)

const sidebarFooter = "Developed for Kochi Metro Rail Limited"

// renderSidebar renders the navigation panel with its six destinations.
func (m Model) renderSidebar(width, height int) string {
	focused := m.focus == focusSidebar
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	inner := width - 2
	compact := width < SidebarWidth

	var lines []string
	if !compact {
		lines = append(lines, bg.Render("Go to:", styles.MutedText), "")
	}

	active := m.nav.Active()
	for i, s := range state.Sections() {
		marker := "○"
		if s == active {
			marker = "●"
		}
		label := marker + " " + s.Label()
		if compact {
			label = s.Hotkey() + " " + s.Icon()
		}

		switch {
		case focused && i == m.sidebarCursor:
			lines = append(lines, styles.Selected.Width(inner).Render(label))
		case s == active:
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
				styles.AccentText.Bold(true).Width(inner-2).Render(label),
				bg.Render(s.Hotkey(), styles.FaintText)))
		default:
			if compact {
				lines = append(lines, bg.Render(label, styles.Text))
				continue
			}
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
				styles.Text.Width(inner-2).Render(label),
				bg.Render(s.Hotkey(), styles.FaintText)))
		}
	}

	if !compact {
		footer := strings.Split(styles.InfoText.Width(inner).Render(sidebarFooter), "\n")
		room := height - 2 - len(lines) - len(footer)
		if room > 0 {
			lines = append(lines, make([]string, room)...)
			lines = append(lines, footer...)
		}
	}

	title := "📂 Navigation"
	if compact {
		title = "📂"
	}
	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, focused)
}

// renderTitledBox renders a box with the title embedded in the top border.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderColor := lipgloss.Color(borderColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	// Build the top border with embedded title
	innerWidth := width - 2 // Account for left and right border chars
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0) // -2 for spaces around title
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	// Build the bottom border
	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", max(innerWidth, 0)), borderStyle) +
		bg.Render("┘", borderStyle)

	// Style for side borders and content background
	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(bgColor)

	// Split content into lines and pad to fill the box
	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2 // -2 for top and bottom borders

	paddedLines := make([]string, 0, max(boxHeight, 0))
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
