package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/akshrail/internal/render"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and command bar
	SurfaceAlt string // Sidebar and content panels
	FocusBg    string // Focused panel background

	SelectionBg   string // Highlighted sidebar entry or focused control
	SelectionText string

	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Brand   string // Product name in the header
	Success string
	Warning string
	Danger  string
	Info    string

	// Chart series colors, cycled per point on pie charts
	Series []string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Brand: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Brand)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		series: t.Series,
		tones: map[render.Tone]string{
			render.ToneInfo:    t.Info,
			render.ToneSuccess: t.Success,
			render.ToneWarning: t.Warning,
			render.ToneError:   t.Danger,
		},
		muted: t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Surface lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Heading  lipgloss.Style
	Brand    lipgloss.Style
	Selected lipgloss.Style
	Button   lipgloss.Style
	Header   lipgloss.Style

	series []string
	tones  map[render.Tone]string
	muted  string
}

// WithBackground returns a copy of Styles with all text styles having the specified background.
// This ensures styled text has explicit backgrounds instead of transparent/inherit.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	return Styles{
		Surface: s.Surface.Background(bg),

		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),
		InfoText:    s.InfoText.Background(bg),

		Heading:  s.Heading.Background(bg),
		Brand:    s.Brand.Background(bg),
		Selected: s.Selected,
		Button:   s.Button.Background(bg),
		Header:   s.Header.Background(bg),

		series: s.series,
		tones:  s.tones,
		muted:  s.muted,
	}
}

// ToneColor returns the color for a callout tone, muted for untoned callouts.
func (s Styles) ToneColor(tone render.Tone) lipgloss.Color {
	if c, ok := s.tones[tone]; ok && c != "" {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(s.muted)
}

// SeriesColor returns the i-th chart color, wrapping around.
func (s Styles) SeriesColor(i int) lipgloss.Color {
	if len(s.series) == 0 {
		return lipgloss.Color(s.muted)
	}
	return lipgloss.Color(s.series[i%len(s.series)])
}

// Theme definitions

var themes = map[string]Theme{
	"Metro":   metroTheme(),
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Metro", "Dracula", "Slate"}

// GetTheme returns a theme by name, falling back to Metro.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return metroTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func metroTheme() Theme {
	// Kochi Metro house colors: navy #333366, action green #4CAF50,
	// metric blue #007bff, page grey #f0f2f6.
	return Theme{
		Name: "Metro",

		Background: "#14152b",
		Surface:    "#222449",
		SurfaceAlt: "#1a1c38",
		FocusBg:    "#20234a",

		SelectionBg:   "#333366",
		SelectionText: "#f0f2f6",

		Border:      "#3a3d6e",
		BorderFocus: "#4CAF50",

		Text:    "#f0f2f6",
		Muted:   "#a3a8c9",
		Faint:   "#5f6494",
		Accent:  "#4d9fff", // #007bff lifted for dark backgrounds
		Brand:   "#8c8cd9", // #333366 lifted for dark backgrounds
		Success: "#4CAF50",
		Warning: "#f5b041",
		Danger:  "#ef5350",
		Info:    "#4d9fff",

		Series: []string{"#66c5cc", "#f6cf71", "#f89c74", "#dcb0f2", "#87c55f", "#9eb9f3", "#fe88b1"},
	}
}

func draculaTheme() Theme {
	// Official Dracula palette: https://draculatheme.com/spec
	return Theme{
		Name: "Dracula",

		Background: "#191A21",
		Surface:    "#282A36",
		SurfaceAlt: "#21222C",
		FocusBg:    "#343746",

		SelectionBg:   "#44475A",
		SelectionText: "#F8F8F2",

		Border:      "#44475A",
		BorderFocus: "#BD93F9",

		Text:    "#F8F8F2",
		Muted:   "#6272A4",
		Faint:   "#44475A",
		Accent:  "#BD93F9",
		Brand:   "#FF79C6",
		Success: "#50FA7B",
		Warning: "#FFB86C",
		Danger:  "#FF5555",
		Info:    "#8BE9FD",

		Series: []string{"#8BE9FD", "#50FA7B", "#FFB86C", "#FF79C6", "#BD93F9", "#F1FA8C", "#FF5555"},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548",

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Brand:   "#a78bfa", // violet-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		Series: []string{"#38bdf8", "#22c55e", "#f59e0b", "#ec4899", "#8b5cf6", "#14b8a6", "#ef4444"},
	}
}
