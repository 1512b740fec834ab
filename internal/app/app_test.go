package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/state"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	logFile := filepath.Join(dir, "akshrail.log")
	content := "log_file = \"" + logFile + "\"\n" + body
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRender_DashboardJSON(t *testing.T) {
	cfgPath := writeConfig(t, "decorations = false\n")

	var buf bytes.Buffer
	err := Render(context.Background(), &buf, RenderOptions{
		Options: Options{ConfigPath: cfgPath},
		Section: state.Dashboard,
		Format:  render.FormatJSON,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var tree render.Tree
	if err := json.Unmarshal(buf.Bytes(), &tree); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if tree.Section != state.Dashboard {
		t.Fatalf("section = %v, want Dashboard", tree.Section)
	}
	if !strings.Contains(buf.String(), "1,245") {
		t.Fatalf("dashboard output missing 1,245 metric")
	}
}

func TestRender_AnalyticsSeedIsReproducible(t *testing.T) {
	cfgPath := writeConfig(t, "")
	seed := uint64(42)

	renderOnce := func() string {
		var buf bytes.Buffer
		err := Render(context.Background(), &buf, RenderOptions{
			Options:  Options{ConfigPath: cfgPath},
			Section:  state.Analytics,
			Format:   render.FormatYAML,
			Seed:     &seed,
			NoAssets: true,
		})
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		return buf.String()
	}

	first, second := renderOnce(), renderOnce()
	if first != second {
		t.Fatalf("seeded renders differ:\n%s\n---\n%s", first, second)
	}
}

func TestRender_WritesLogFile(t *testing.T) {
	cfgPath := writeConfig(t, "log_level = \"debug\"\ndecorations = false\n")

	var buf bytes.Buffer
	if err := Render(context.Background(), &buf, RenderOptions{
		Options: Options{ConfigPath: cfgPath},
		Section: state.About,
		Format:  render.FormatText,
	}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(filepath.Dir(cfgPath), "akshrail.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "rendered section") {
		t.Fatalf("log = %q, want rendered section entry", data)
	}
}

func TestSetup_InvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("theme = ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	err := Run(context.Background(), Options{ConfigPath: path})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Run error = %v, want load config failure", err)
	}
}

func TestSetup_OverridesApply(t *testing.T) {
	cfgPath := writeConfig(t, "theme = \"Slate\"\n")
	cfg, logger, err := setup(Options{ConfigPath: cfgPath, LogLevel: "warn", Theme: "Dracula"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	if cfg.Theme != "Dracula" || cfg.LogLevel != "warn" {
		t.Fatalf("cfg = theme %q level %q, want Dracula warn", cfg.Theme, cfg.LogLevel)
	}
}

func TestSetup_BadLogLevelFails(t *testing.T) {
	cfgPath := writeConfig(t, "")
	if _, _, err := setup(Options{ConfigPath: cfgPath, LogLevel: "loud"}); err == nil {
		t.Fatalf("setup accepted log level loud")
	}
}
