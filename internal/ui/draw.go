package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/view"
)

// canvas collects rendered lines and remembers where focusable controls
// start so the viewport can follow focus.
type canvas struct {
	lines   []string
	anchors map[string]int
}

func newCanvas() *canvas {
	return &canvas{anchors: make(map[string]int)}
}

func (c *canvas) add(block string) {
	c.lines = append(c.lines, strings.Split(block, "\n")...)
}

func (c *canvas) blank() {
	c.lines = append(c.lines, "")
}

func (c *canvas) mark(key string) {
	c.anchors[key] = len(c.lines)
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// drawer turns a render tree into styled terminal lines.
type drawer struct {
	m        *Model
	theme    Theme
	styles   Styles
	bg       BgStyle
	bgColor  string
	focusKey string
}

func (m *Model) newDrawer(focusKey string) drawer {
	bgColor := m.theme.SurfaceAlt
	if m.focus == focusContent {
		bgColor = m.theme.FocusBg
	}
	return drawer{
		m:        m,
		theme:    m.theme,
		styles:   m.theme.Styles().WithBackground(bgColor),
		bg:       NewBgStyle(bgColor),
		bgColor:  bgColor,
		focusKey: focusKey,
	}
}

// refreshContent redraws the active section into the content viewport and
// scrolls the focused control into view.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}

	t := m.tree()
	items := m.focusables(t)
	if m.page.focusIdx >= len(items) {
		m.page.focusIdx = max(len(items)-1, 0)
	}
	focusKey := ""
	if m.focus == focusContent && len(items) > 0 {
		focusKey = items[m.page.focusIdx].key()
	}

	d := m.newDrawer(focusKey)
	c := newCanvas()
	d.nodes(c, t.Nodes, max(m.content.Width-1, 10))
	m.content.SetContent(c.String())

	if line, ok := c.anchors[focusKey]; ok {
		switch {
		case line < m.content.YOffset:
			m.content.SetYOffset(line)
		case line >= m.content.YOffset+m.content.Height:
			m.content.SetYOffset(line - m.content.Height + 1)
		}
	}
}

func (d drawer) nodes(c *canvas, nodes []render.Node, width int) {
	for _, n := range nodes {
		d.node(c, n, width)
	}
}

func (d drawer) node(c *canvas, n render.Node, width int) {
	s := d.styles
	switch n.Kind {
	case render.KindHeading:
		if n.Level <= 1 {
			c.add(s.Brand.Width(width).Render(n.Text))
		} else {
			c.blank()
			c.add(s.Heading.Width(width).Render(n.Text))
		}

	case render.KindText:
		c.add(s.Text.Width(width).Render(n.Text))

	case render.KindCallout:
		c.add(d.callout(n, width))

	case render.KindMetric:
		c.add(d.metric(n, width))

	case render.KindTable:
		c.add(d.table(n.Table, width))

	case render.KindChart:
		c.add(d.chart(n.Chart, width))

	case render.KindList:
		if n.Text != "" {
			c.add(s.Heading.Render(n.Text))
		}
		for _, item := range n.Items {
			c.add(lipgloss.JoinHorizontal(lipgloss.Top,
				d.bg.Render("•", s.AccentText)+d.bg.Space(),
				s.Text.Width(max(width-2, 1)).Render(item)))
		}

	case render.KindDivider:
		c.add(s.FaintText.Render(strings.Repeat("─", width)))

	case render.KindAnimation:
		if n.Animation != nil {
			c.add(s.InfoText.Width(width).Render(render.AnimationCaption(*n.Animation)))
		}

	case render.KindButton:
		d.form(c, n.ID, width)
		c.mark("node:" + n.ID)
		c.add(d.button(n))

	case render.KindExpander:
		key := "node:" + n.ID
		open := d.m.page.expanded[n.ID]
		marker := "▸"
		if open {
			marker = "▾"
		}
		c.mark(key)
		label := marker + " " + n.Text
		if key == d.focusKey {
			c.add(s.Selected.Render(label))
		} else {
			c.add(d.bg.Render(label, s.AccentText))
		}
		if open {
			sub := newCanvas()
			d.nodes(sub, n.Children, max(width-2, 10))
			base := len(c.lines)
			for k, line := range sub.anchors {
				c.anchors[k] = base + line
			}
			for _, line := range sub.lines {
				c.lines = append(c.lines, d.bg.Spaces(2)+line)
			}
		}

	case render.KindColumns:
		d.columns(c, n.Children, width)
	}
}

// columns lays children side by side on wide panes and stacks them otherwise.
func (d drawer) columns(c *canvas, children []render.Node, width int) {
	if len(children) == 0 {
		return
	}
	if d.m.width < LayoutWideWidth && len(children) > 1 && children[0].Kind != render.KindButton {
		d.nodes(c, children, width)
		return
	}

	colWidth := max((width-2*(len(children)-1))/len(children), 10)
	blocks := make([]string, 0, 2*len(children))
	base := len(c.lines)
	for i, child := range children {
		sub := newCanvas()
		d.node(sub, child, colWidth)
		for k, line := range sub.anchors {
			c.anchors[k] = base + line
		}
		if i > 0 {
			blocks = append(blocks, d.bg.Spaces(2))
		}
		blocks = append(blocks, lipgloss.NewStyle().Width(colWidth).Background(lipgloss.Color(d.bgColor)).Render(sub.String()))
	}
	c.add(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
}

func (d drawer) button(n render.Node) string {
	label := "[ " + n.Text + " ]"
	if n.Action != nil {
		label += " → " + n.Action.Navigate.String()
	}
	switch {
	case "node:"+n.ID == d.focusKey:
		return d.styles.Selected.Render(label)
	case d.submitting(n.ID):
		return d.bg.Render(label, d.styles.FaintText)
	default:
		return d.bg.Render(label, d.styles.Button)
	}
}

// submitting reports whether a submit button's wait is running.
func (d drawer) submitting(id string) bool {
	switch id {
	case view.ButtonUploadSubmit:
		return d.m.page.upload.state.Pending
	case view.ButtonSearchSubmit:
		return d.m.page.search.state.Pending
	}
	return false
}

func (d drawer) callout(n render.Node, width int) string {
	text := n.Text
	if n.Tone == render.ToneNone && strings.HasPrefix(text, "⏳ ") && d.m.pending() {
		text = d.m.spinner.View() + " " + strings.TrimPrefix(text, "⏳ ")
	}
	color := d.styles.ToneColor(n.Tone)
	bg := lipgloss.Color(d.bgColor)
	return lipgloss.NewStyle().
		Foreground(color).
		Background(bg).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color).
		BorderBackground(bg).
		PaddingLeft(1).
		Width(max(width-1, 1)).
		Render(text)
}

func (d drawer) metric(n render.Node, width int) string {
	s := d.styles
	lines := []string{
		s.MutedText.Width(width).Render(n.Text),
		s.AccentText.Bold(true).Render(n.Value),
	}
	if n.Help != "" {
		lines = append(lines, s.FaintText.Width(width).Render(n.Help))
	}
	return strings.Join(lines, "\n")
}

func (d drawer) table(t *render.Table, width int) string {
	if t == nil || len(t.Columns) == 0 {
		return ""
	}
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = lipgloss.Width(col)
	}
	for _, row := range t.Rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], lipgloss.Width(row[i]))
			}
		}
	}
	// Shrink the widest column until the row fits.
	gap := 2
	for sum(widths)+gap*(len(widths)-1) > width {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 4 {
			break
		}
		widths[widest]--
	}

	s := d.styles
	row := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = truncate(cells[i], w)
			}
			parts[i] = style.Width(w).Render(cell)
		}
		return strings.Join(parts, d.bg.Spaces(gap))
	}

	lines := []string{row(t.Columns, s.AccentText.Bold(true))}
	for _, r := range t.Rows {
		lines = append(lines, row(r, s.Text))
	}
	return strings.Join(lines, "\n")
}

func (d drawer) chart(ch *render.Chart, width int) string {
	if ch == nil {
		return ""
	}
	s := d.styles
	lines := []string{s.Heading.Render(ch.Title)}
	switch ch.Kind {
	case render.ChartLine:
		lines = append(lines, d.lineChart(ch)...)
	case render.ChartPie:
		lines = append(lines, d.pieChart(ch, width)...)
	default:
		lines = append(lines, d.barChart(ch, width)...)
	}
	if ch.XLabel != "" || ch.YLabel != "" {
		axes := strings.TrimSpace(ch.XLabel + " × " + ch.YLabel)
		lines = append(lines, s.FaintText.Render(strings.Trim(axes, "× ")))
	}
	return strings.Join(lines, "\n")
}

// lineChart plots one marker per point on a small grid scaled from zero.
func (d drawer) lineChart(ch *render.Chart) []string {
	s := d.styles
	maxV := ch.MaxValue()
	if maxV <= 0 || len(ch.Points) == 0 {
		return nil
	}

	colWidth := 4
	for _, p := range ch.Points {
		colWidth = max(colWidth, lipgloss.Width(p.Label)+1)
	}
	axisWidth := len(fmt.Sprintf("%.0f", maxV)) + 1

	levels := make([]int, len(ch.Points))
	for i, p := range ch.Points {
		levels[i] = int(math.Round(p.Value / maxV * float64(ChartHeight-1)))
	}

	var lines []string
	for row := ChartHeight - 1; row >= 0; row-- {
		axis := ""
		switch row {
		case ChartHeight - 1:
			axis = fmt.Sprintf("%.0f", maxV)
		case 0:
			axis = "0"
		}
		var b strings.Builder
		b.WriteString(s.FaintText.Width(axisWidth).Align(lipgloss.Right).Render(axis))
		b.WriteString(d.bg.Render("┤", s.FaintText))
		for _, lvl := range levels {
			cell := ""
			if lvl == row {
				cell = "●"
			} else if lvl > row {
				cell = "│"
			}
			style := s.AccentText
			if cell == "│" {
				style = s.FaintText
			}
			b.WriteString(style.Width(colWidth).Align(lipgloss.Center).Render(cell))
		}
		lines = append(lines, b.String())
	}

	var labels, values strings.Builder
	labels.WriteString(d.bg.Spaces(axisWidth + 1))
	values.WriteString(d.bg.Spaces(axisWidth + 1))
	for _, p := range ch.Points {
		labels.WriteString(s.MutedText.Width(colWidth).Align(lipgloss.Center).Render(p.Label))
		values.WriteString(s.FaintText.Width(colWidth).Align(lipgloss.Center).Render(fmt.Sprintf("%.0f", p.Value)))
	}
	return append(lines, labels.String(), values.String())
}

// barChart draws one horizontal bar per point.
func (d drawer) barChart(ch *render.Chart, width int) []string {
	s := d.styles
	maxV := ch.MaxValue()
	labelWidth := 0
	for _, p := range ch.Points {
		labelWidth = max(labelWidth, lipgloss.Width(p.Label))
	}
	barWidth := max(min(BarWidth, width-labelWidth-10), 4)

	lines := make([]string, 0, len(ch.Points))
	for i, p := range ch.Points {
		color := lipgloss.Color(d.theme.Accent)
		if ch.Kind == render.ChartBar {
			color = s.SeriesColor(i)
		}
		bar := render.Bar(p.Value, maxV, barWidth)
		lines = append(lines,
			s.Text.Width(labelWidth).Render(p.Label)+
				d.bg.Space()+
				lipgloss.NewStyle().Foreground(color).Background(lipgloss.Color(d.bgColor)).Width(barWidth).Render(bar)+
				d.bg.Space()+
				d.bg.Render(fmt.Sprintf("%.0f", p.Value), s.MutedText))
	}
	return lines
}

// pieChart draws a stacked share strip followed by a legend with percentages.
func (d drawer) pieChart(ch *render.Chart, width int) []string {
	s := d.styles
	total := ch.Total()
	if total <= 0 {
		return nil
	}
	stripWidth := max(min(BarWidth*2, width), 10)

	var strip strings.Builder
	used := 0
	for i, p := range ch.Points {
		cells := int(math.Round(p.Value / total * float64(stripWidth)))
		if i == len(ch.Points)-1 {
			cells = stripWidth - used
		}
		cells = max(min(cells, stripWidth-used), 0)
		used += cells
		strip.WriteString(lipgloss.NewStyle().Foreground(s.SeriesColor(i)).Background(lipgloss.Color(d.bgColor)).Render(strings.Repeat("█", cells)))
	}

	lines := []string{strip.String()}
	for i, p := range ch.Points {
		swatch := lipgloss.NewStyle().Foreground(s.SeriesColor(i)).Background(lipgloss.Color(d.bgColor)).Render("■")
		lines = append(lines,
			swatch+d.bg.Space()+
				d.bg.Render(p.Label, s.Text)+d.bg.Space()+
				d.bg.Render(fmt.Sprintf("%d%% (%.0f)", render.Percent(p.Value, total), p.Value), s.MutedText))
	}
	return lines
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// truncate shortens s to max display cells with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
