package render

import (
	"github.com/five82/akshrail/internal/state"
)

// Kind names a node type.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindText      Kind = "text"
	KindCallout   Kind = "callout"
	KindMetric    Kind = "metric"
	KindTable     Kind = "table"
	KindChart     Kind = "chart"
	KindExpander  Kind = "expander"
	KindColumns   Kind = "columns"
	KindList      Kind = "list"
	KindButton    Kind = "button"
	KindDivider   Kind = "divider"
	KindAnimation Kind = "animation"
)

// Tone colours callouts and outcome messages.
type Tone string

const (
	ToneNone    Tone = ""
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneError   Tone = "error"
)

// ChartKind selects how a chart's points are drawn.
type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
	ChartBarH ChartKind = "barh"
	ChartPie  ChartKind = "pie"
)

// Tree is the rendered form of one section.
type Tree struct {
	Section state.Section `json:"section" yaml:"section"`
	Title   string        `json:"title" yaml:"title"`
	Nodes   []Node        `json:"nodes" yaml:"nodes"`
}

// Node is one element of a section. Only the fields relevant to Kind are set.
type Node struct {
	Kind      Kind       `json:"kind" yaml:"kind"`
	ID        string     `json:"id,omitempty" yaml:"id,omitempty"`
	Text      string     `json:"text,omitempty" yaml:"text,omitempty"`
	Level     int        `json:"level,omitempty" yaml:"level,omitempty"`
	Tone      Tone       `json:"tone,omitempty" yaml:"tone,omitempty"`
	Value     string     `json:"value,omitempty" yaml:"value,omitempty"`
	Help      string     `json:"help,omitempty" yaml:"help,omitempty"`
	Items     []string   `json:"items,omitempty" yaml:"items,omitempty"`
	Table     *Table     `json:"table,omitempty" yaml:"table,omitempty"`
	Chart     *Chart     `json:"chart,omitempty" yaml:"chart,omitempty"`
	Action    *Action    `json:"action,omitempty" yaml:"action,omitempty"`
	Animation *Animation `json:"animation,omitempty" yaml:"animation,omitempty"`
	Children  []Node     `json:"children,omitempty" yaml:"children,omitempty"`
}

// Table is a header row plus data rows of equal width.
type Table struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Chart is a titled series of labelled points.
type Chart struct {
	Kind   ChartKind `json:"kind" yaml:"kind"`
	Title  string    `json:"title" yaml:"title"`
	XLabel string    `json:"x_label,omitempty" yaml:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty" yaml:"y_label,omitempty"`
	Points []Point   `json:"points" yaml:"points"`
}

// Point is one labelled value.
type Point struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Action is what a button does when pressed.
type Action struct {
	Navigate state.Section `json:"navigate" yaml:"navigate"`
}

// Animation summarizes a decorative animation that loaded successfully.
type Animation struct {
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	Source    string  `json:"source" yaml:"source"`
	Width     int     `json:"width,omitempty" yaml:"width,omitempty"`
	Height    int     `json:"height,omitempty" yaml:"height,omitempty"`
	FrameRate float64 `json:"frame_rate,omitempty" yaml:"frame_rate,omitempty"`
	Frames    int     `json:"frames,omitempty" yaml:"frames,omitempty"`
	Layers    int     `json:"layers,omitempty" yaml:"layers,omitempty"`
}

// Heading returns a level-1 heading.
func Heading(text string) Node {
	return Node{Kind: KindHeading, Text: text, Level: 1}
}

// Subheading returns a level-2 heading.
func Subheading(text string) Node {
	return Node{Kind: KindHeading, Text: text, Level: 2}
}

// Text returns a paragraph.
func Text(text string) Node {
	return Node{Kind: KindText, Text: text}
}

// Callout returns a toned message box.
func Callout(tone Tone, text string) Node {
	return Node{Kind: KindCallout, Tone: tone, Text: text}
}

// Metric returns a headline number with an optional help line.
func Metric(label, value, help string) Node {
	return Node{Kind: KindMetric, Text: label, Value: value, Help: help}
}

// TableNode wraps a table.
func TableNode(columns []string, rows [][]string) Node {
	return Node{Kind: KindTable, Table: &Table{Columns: columns, Rows: rows}}
}

// ChartNode wraps a chart.
func ChartNode(c Chart) Node {
	return Node{Kind: KindChart, Chart: &c}
}

// Expander returns a collapsible panel. id identifies it for toggling.
func Expander(id, title string, children ...Node) Node {
	return Node{Kind: KindExpander, ID: id, Text: title, Children: children}
}

// Columns lays children out side by side.
func Columns(children ...Node) Node {
	return Node{Kind: KindColumns, Children: children}
}

// List returns a bulleted list, optionally titled.
func List(title string, items ...string) Node {
	return Node{Kind: KindList, Text: title, Items: items}
}

// Button returns a pressable action. A nil action renders a label only.
func Button(id, label string, action *Action) Node {
	return Node{Kind: KindButton, ID: id, Text: label, Action: action}
}

// NavigateTo builds an action that switches sections.
func NavigateTo(s state.Section) *Action {
	return &Action{Navigate: s}
}

// Divider returns a horizontal rule.
func Divider() Node {
	return Node{Kind: KindDivider}
}

// AnimationNode wraps a loaded animation summary.
func AnimationNode(a Animation) Node {
	return Node{Kind: KindAnimation, Animation: &a}
}
