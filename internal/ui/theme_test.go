package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/akshrail/internal/render"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Metro", "Dracula", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Metro":   "Dracula",
		"Dracula": "Slate",
		"Slate":   "Metro",
		"Unknown": "Metro",
	}
	for current, want := range cases {
		if got := NextTheme(current); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", current, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q, want %q", name, got, name)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Metro" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Metro (fallback)", got)
	}
}

func TestToneColor(t *testing.T) {
	th := GetTheme("Metro")
	styles := th.Styles()

	if got := styles.ToneColor(render.ToneError); got != lipgloss.Color(th.Danger) {
		t.Fatalf("ToneColor(error) = %q, want %q", got, th.Danger)
	}
	if got := styles.ToneColor(render.ToneSuccess); got != lipgloss.Color(th.Success) {
		t.Fatalf("ToneColor(success) = %q, want %q", got, th.Success)
	}
	if got := styles.ToneColor(render.ToneNone); got != lipgloss.Color(th.Muted) {
		t.Fatalf("ToneColor(none) = %q, want %q", got, th.Muted)
	}
}

func TestSeriesColorWraps(t *testing.T) {
	th := GetTheme("Slate")
	styles := th.Styles()
	n := len(th.Series)
	if got := styles.SeriesColor(n + 1); got != lipgloss.Color(th.Series[1]) {
		t.Fatalf("SeriesColor(%d) = %q, want %q", n+1, got, th.Series[1])
	}

	styles = th.Styles().WithBackground(th.Surface)
	if got := styles.SeriesColor(0); got != lipgloss.Color(th.Series[0]) {
		t.Fatalf("WithBackground dropped series colors: %q", got)
	}
}
