package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/akshrail/internal/fixtures"
	"github.com/five82/akshrail/internal/submit"
	"github.com/five82/akshrail/internal/view"
)

const formLabelWidth = 10

// form draws the input fields that belong to a submit button.
func (d drawer) form(c *canvas, buttonID string, width int) {
	switch buttonID {
	case view.ButtonUploadSubmit:
		d.uploadForm(c, width)
	case view.ButtonSearchSubmit:
		d.searchForm(c, width)
	}
}

func (d drawer) uploadForm(c *canvas, width int) {
	s := d.styles
	form := d.m.page.upload

	c.blank()
	c.mark(focusable{kind: focusFile}.key())
	file := "No file chosen"
	fileStyle := s.FaintText
	if form.file != nil {
		file = form.file.Name + " · " + form.file.HumanSize()
		fileStyle = s.Text
	}
	c.add(d.field(focusFile, "File", d.bg.Render(truncate(file, max(width-formLabelWidth-16, 8)), fileStyle)+
		d.bg.Space()+d.bg.Render("(enter to browse)", s.FaintText)))
	hint := "Supported formats: " + strings.ToUpper(strings.ReplaceAll(strings.Join(submit.AllowedExtensions, ", "), ".", ""))
	c.add(d.bg.Spaces(formLabelWidth) + d.bg.Render(hint, s.FaintText))
	if form.note != "" {
		c.add(d.bg.Spaces(formLabelWidth) + d.bg.Render("⚠ "+form.note, s.WarningText))
	}

	c.mark(focusable{kind: focusTitle}.key())
	c.add(d.field(focusTitle, "Title", d.input(form.title.View())))

	c.mark(focusable{kind: focusType}.key())
	c.add(d.field(focusType, "Type", d.bg.Render("◂ ", s.FaintText)+d.bg.Render(string(d.m.selectedType()), s.AccentText)+d.bg.Render(" ▸", s.FaintText)))
	c.blank()
}

func (d drawer) searchForm(c *canvas, width int) {
	s := d.styles
	form := d.m.page.search

	c.blank()
	c.mark(focusable{kind: focusQuery}.key())
	c.add(d.field(focusQuery, "Query", d.input(form.query.View())))

	c.mark(focusable{kind: focusFilters}.key())
	focused := d.focusKey == focusable{kind: focusFilters}.key()
	chips := make([]string, 0, len(fixtures.SelectableTypes()))
	for i, t := range fixtures.SelectableTypes() {
		box := "[ ]"
		if form.selected[t] {
			box = "[x]"
		}
		chip := box + " " + string(t)
		switch {
		case focused && i == form.cursor:
			chips = append(chips, s.Selected.Render(chip))
		case form.selected[t]:
			chips = append(chips, d.bg.Render(chip, s.AccentText))
		default:
			chips = append(chips, d.bg.Render(chip, s.MutedText))
		}
	}
	rows := wrapChips(chips, max(width-formLabelWidth, 12), d.bg.Spaces(2))
	for i, row := range rows {
		if i == 0 {
			c.add(d.field(focusFilters, "Types", row))
		} else {
			c.add(d.bg.Spaces(formLabelWidth) + row)
		}
	}
	c.blank()
}

// field renders a labelled form row, highlighting the label when focused.
func (d drawer) field(kind focusKind, label, value string) string {
	style := d.styles.MutedText.Width(formLabelWidth)
	if d.focusKey == (focusable{kind: kind}).key() {
		return d.styles.Selected.Width(formLabelWidth-1).Render(label) + d.bg.Space() + value
	}
	return style.Render(label) + value
}

func (d drawer) input(rendered string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(d.theme.Surface)).
		Width(48).
		Render(rendered)
}

// wrapChips packs chips into rows no wider than width.
func wrapChips(chips []string, width int, sep string) []string {
	var rows []string
	var cur []string
	curWidth := 0
	sepWidth := lipgloss.Width(sep)
	for _, chip := range chips {
		w := lipgloss.Width(chip)
		if len(cur) > 0 && curWidth+sepWidth+w > width {
			rows = append(rows, strings.Join(cur, sep))
			cur, curWidth = nil, 0
		}
		if len(cur) > 0 {
			curWidth += sepWidth
		}
		cur = append(cur, chip)
		curWidth += w
	}
	if len(cur) > 0 {
		rows = append(rows, strings.Join(cur, sep))
	}
	return rows
}

// renderPicker draws the upload file picker as a centered modal.
func (m Model) renderPicker() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Choose a document to upload"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(truncate(m.picker.CurrentDirectory, 56)))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	if note := m.page.upload.note; note != "" {
		b.WriteString("\n")
		b.WriteString(styles.WarningText.Render("⚠ " + note))
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter open/select · h back · esc cancel"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(64)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
