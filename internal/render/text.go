package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const textBarWidth = 30

// TextWriter prints a tree as plain, optionally coloured, text. Expanders are
// printed open.
type TextWriter struct {
	w       io.Writer
	err     error
	heading *color.Color
	faint   *color.Color
	accent  *color.Color
	tones   map[Tone]*color.Color
}

// NewTextWriter returns a writer for w.
func NewTextWriter(w io.Writer, colorize bool) *TextWriter {
	tw := &TextWriter{
		w:       w,
		heading: color.New(color.FgHiWhite, color.Bold),
		faint:   color.New(color.Faint),
		accent:  color.New(color.FgCyan),
		tones: map[Tone]*color.Color{
			ToneInfo:    color.New(color.FgBlue),
			ToneSuccess: color.New(color.FgGreen),
			ToneWarning: color.New(color.FgYellow),
			ToneError:   color.New(color.FgRed, color.Bold),
		},
	}
	all := []*color.Color{tw.heading, tw.faint, tw.accent}
	for _, c := range tw.tones {
		all = append(all, c)
	}
	for _, c := range all {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return tw
}

// Write prints t and returns the first write error.
func (tw *TextWriter) Write(t Tree) error {
	tw.printf("%s\n\n", tw.heading.Sprint(strings.ToUpper(t.Title)))
	tw.nodes(t.Nodes, "")
	return tw.err
}

func (tw *TextWriter) nodes(nodes []Node, indent string) {
	for _, n := range nodes {
		tw.node(n, indent)
	}
}

func (tw *TextWriter) node(n Node, indent string) {
	switch n.Kind {
	case KindHeading:
		marker := "#"
		if n.Level > 1 {
			marker = "##"
		}
		tw.printf("%s%s\n", indent, tw.heading.Sprintf("%s %s", marker, n.Text))
	case KindText:
		tw.printf("%s%s\n", indent, n.Text)
	case KindCallout:
		c := tw.tones[n.Tone]
		if c == nil {
			c = tw.accent
		}
		tw.printf("%s%s\n", indent, c.Sprintf("[%s] %s", toneLabel(n.Tone), n.Text))
	case KindMetric:
		tw.printf("%s%s: %s", indent, n.Text, tw.accent.Sprint(n.Value))
		if n.Help != "" {
			tw.printf("  %s", tw.faint.Sprint(n.Help))
		}
		tw.printf("\n")
	case KindTable:
		tw.table(n.Table, indent)
	case KindChart:
		tw.chart(n.Chart, indent)
	case KindExpander:
		tw.printf("%s%s\n", indent, tw.accent.Sprintf("▾ %s", n.Text))
		tw.nodes(n.Children, indent+"  ")
	case KindColumns:
		tw.nodes(n.Children, indent)
	case KindList:
		if n.Text != "" {
			tw.printf("%s%s\n", indent, n.Text)
		}
		for _, item := range n.Items {
			tw.printf("%s  • %s\n", indent, item)
		}
	case KindButton:
		label := fmt.Sprintf("[ %s ]", n.Text)
		if n.Action != nil {
			label += tw.faint.Sprintf(" → %s", n.Action.Navigate)
		}
		tw.printf("%s%s\n", indent, label)
	case KindDivider:
		tw.printf("%s%s\n", indent, tw.faint.Sprint(strings.Repeat("─", 40)))
	case KindAnimation:
		if a := n.Animation; a != nil {
			tw.printf("%s%s\n", indent, tw.faint.Sprint(AnimationCaption(*a)))
		}
	}
}

func (tw *TextWriter) table(t *Table, indent string) {
	if t == nil {
		return
	}
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len([]rune(c))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}
	line := func(cells []string) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = cell + strings.Repeat(" ", widths[i]-len([]rune(cell)))
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}
	tw.printf("%s%s\n", indent, tw.heading.Sprint(line(t.Columns)))
	for _, row := range t.Rows {
		tw.printf("%s%s\n", indent, line(row))
	}
}

func (tw *TextWriter) chart(c *Chart, indent string) {
	if c == nil {
		return
	}
	tw.printf("%s%s\n", indent, tw.heading.Sprint(c.Title))
	labelWidth := 0
	for _, p := range c.Points {
		if l := len([]rune(p.Label)); l > labelWidth {
			labelWidth = l
		}
	}
	switch c.Kind {
	case ChartLine:
		tw.printf("%s  %s\n", indent, tw.accent.Sprint(Sparkline(c.Values())))
		labels := make([]string, len(c.Points))
		for i, p := range c.Points {
			labels[i] = fmt.Sprintf("%s %.0f", p.Label, p.Value)
		}
		tw.printf("%s  %s\n", indent, tw.faint.Sprint(strings.Join(labels, "  ")))
	case ChartPie:
		total := c.Total()
		for _, p := range c.Points {
			pct := Percent(p.Value, total)
			tw.printf("%s  %-*s %s %3d%%\n", indent, labelWidth, p.Label,
				tw.accent.Sprint(Bar(float64(pct), 100, textBarWidth/2)), pct)
		}
	default:
		maxV := c.MaxValue()
		for _, p := range c.Points {
			tw.printf("%s  %-*s %s %.0f\n", indent, labelWidth, p.Label,
				tw.accent.Sprint(Bar(p.Value, maxV, textBarWidth)), p.Value)
		}
	}
}

func (tw *TextWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func toneLabel(t Tone) string {
	if t == ToneNone {
		return "note"
	}
	return string(t)
}

// AnimationCaption is the one-line description shown in place of an
// animation.
func AnimationCaption(a Animation) string {
	name := a.Name
	if name == "" {
		name = "animation"
	}
	caption := fmt.Sprintf("✨ %s", name)
	if a.Width > 0 && a.Height > 0 {
		caption += fmt.Sprintf(" · %dx%d", a.Width, a.Height)
	}
	if a.FrameRate > 0 && a.Frames > 0 {
		caption += fmt.Sprintf(" · %.1fs", float64(a.Frames)/a.FrameRate)
	}
	if a.Layers > 0 {
		caption += fmt.Sprintf(" · %d layers", a.Layers)
	}
	return caption
}
