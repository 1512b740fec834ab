package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.UploadDelay != 3*time.Second {
		t.Fatalf("UploadDelay = %v, want 3s", cfg.UploadDelay)
	}
	if cfg.SearchDelay != 2*time.Second {
		t.Fatalf("SearchDelay = %v, want 2s", cfg.SearchDelay)
	}
	if !cfg.Decorations {
		t.Fatalf("Decorations = false, want true")
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.Assets != DefaultAssets() {
		t.Fatalf("Assets = %#v, want defaults", cfg.Assets)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
theme = "  Slate  "
logo_path = "  ~/art/logo.txt  "
log_level = "DEBUG"
upload_delay = "150ms"
search_delay = "0s"
decorations = false

[assets]
home = "https://example.test/home.json"
about = "off"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, "Slate")
	}
	if cfg.LogoPath != filepath.Join(home, "art/logo.txt") {
		t.Fatalf("LogoPath = %q, want it under HOME %q", cfg.LogoPath, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.UploadDelay != 150*time.Millisecond {
		t.Fatalf("UploadDelay = %v, want 150ms", cfg.UploadDelay)
	}
	if cfg.SearchDelay != 0 {
		t.Fatalf("SearchDelay = %v, want 0", cfg.SearchDelay)
	}
	if cfg.Decorations {
		t.Fatalf("Decorations = true, want false")
	}
	if cfg.Assets.Home != "https://example.test/home.json" {
		t.Fatalf("Assets.Home = %q, want override", cfg.Assets.Home)
	}
	if cfg.Assets.About != "" {
		t.Fatalf("Assets.About = %q, want disabled", cfg.Assets.About)
	}
	if cfg.Assets.Upload != DefaultAssets().Upload {
		t.Fatalf("Assets.Upload = %q, want default", cfg.Assets.Upload)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
theme = "   "
log_file = ""
upload_delay = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.UploadDelay != defaultUploadDelay {
		t.Fatalf("UploadDelay = %v, want %v", cfg.UploadDelay, defaultUploadDelay)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidDelayFails(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "garbage", body: `upload_delay = "soon"`, field: "upload_delay"},
		{name: "negative", body: `search_delay = "-1s"`, field: "search_delay"},
		{name: "timeout", body: `fetch_timeout = "5 parsecs"`, field: "fetch_timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Fatalf("Load error = %q, want it to mention %s", err.Error(), tt.field)
			}
		})
	}
}

func TestAssetsURL(t *testing.T) {
	a := DefaultAssets()
	tests := map[string]string{
		"home":       a.Home,
		" Analytics": a.Analytics,
		"SEARCH":     a.Search,
		"summary":    a.Summary,
		"nowhere":    "",
	}
	for name, want := range tests {
		if got := a.URL(name); got != want {
			t.Fatalf("URL(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
