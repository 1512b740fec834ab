package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings AkshRail reads at startup.
type Config struct {
	Theme        string
	LogoPath     string
	LogFile      string
	LogLevel     string
	UploadDelay  time.Duration
	SearchDelay  time.Duration
	FetchTimeout time.Duration
	Decorations  bool
	Assets       Assets
}

// Assets maps each section to the animation it shows. An empty URL disables
// the decoration for that section.
type Assets struct {
	Home      string `toml:"home"`
	Summary   string `toml:"summary"`
	Dashboard string `toml:"dashboard"`
	Upload    string `toml:"upload"`
	Search    string `toml:"search"`
	Analytics string `toml:"analytics"`
	About     string `toml:"about"`
}

const (
	defaultConfigPath   = "~/.config/akshrail/config.toml"
	defaultLogoPath     = "~/.config/akshrail/logo.txt"
	defaultLogFile      = "~/.local/share/akshrail/akshrail.log"
	defaultLogLevel     = "info"
	defaultTheme        = "Metro"
	defaultUploadDelay  = 3 * time.Second
	defaultSearchDelay  = 2 * time.Second
	defaultFetchTimeout = 5 * time.Second
)

// DefaultAssets returns the stock animation URLs.
func DefaultAssets() Assets {
	return Assets{
		Home:      "https://lottie.host/17eb65e5-3375-4c07-a50d-d1235b62b32f/lQ2Jz8wO9D.json",
		Summary:   "https://assets7.lottiefiles.com/packages/lf20_u4yrau.json",
		Dashboard: "https://assets9.lottiefiles.com/packages/lf20_tutvdkg0.json",
		Upload:    "https://assets2.lottiefiles.com/packages/lf20_jbr3byh0.json",
		Search:    "https://assets1.lottiefiles.com/packages/lf20_x17yudbs.json",
		Analytics: "https://assets1.lottiefiles.com/packages/lf20_mhlvj87g.json",
		About:     "https://assets4.lottiefiles.com/packages/lf20_tpgx4e3e.json",
	}
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:        defaultTheme,
		LogoPath:     mustExpand(defaultLogoPath),
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
		UploadDelay:  defaultUploadDelay,
		SearchDelay:  defaultSearchDelay,
		FetchTimeout: defaultFetchTimeout,
		Decorations:  true,
		Assets:       DefaultAssets(),
	}
}

// Load locates and parses the AkshRail config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Theme        string  `toml:"theme"`
		LogoPath     string  `toml:"logo_path"`
		LogFile      string  `toml:"log_file"`
		LogLevel     string  `toml:"log_level"`
		UploadDelay  string  `toml:"upload_delay"`
		SearchDelay  string  `toml:"search_delay"`
		FetchTimeout string  `toml:"fetch_timeout"`
		Decorations  *bool   `toml:"decorations"`
		Assets       *Assets `toml:"assets"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if logo := strings.TrimSpace(raw.LogoPath); logo != "" {
		cfg.LogoPath = mustExpand(logo)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	if cfg.UploadDelay, err = parseDelay("upload_delay", raw.UploadDelay, cfg.UploadDelay); err != nil {
		return Config{}, err
	}
	if cfg.SearchDelay, err = parseDelay("search_delay", raw.SearchDelay, cfg.SearchDelay); err != nil {
		return Config{}, err
	}
	if cfg.FetchTimeout, err = parseDelay("fetch_timeout", raw.FetchTimeout, cfg.FetchTimeout); err != nil {
		return Config{}, err
	}

	if raw.Decorations != nil {
		cfg.Decorations = *raw.Decorations
	}
	if raw.Assets != nil {
		cfg.Assets = mergeAssets(cfg.Assets, *raw.Assets)
	}

	return cfg, nil
}

// URL returns the animation URL for a section name such as "home" or
// "analytics". Unknown names return an empty string.
func (a Assets) URL(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "home":
		return a.Home
	case "summary":
		return a.Summary
	case "dashboard":
		return a.Dashboard
	case "upload":
		return a.Upload
	case "search":
		return a.Search
	case "analytics":
		return a.Analytics
	case "about":
		return a.About
	default:
		return ""
	}
}

// mergeAssets overlays the keys present in the file. A key set to "off"
// disables that decoration.
func mergeAssets(base, override Assets) Assets {
	pick := func(cur, next string) string {
		next = strings.TrimSpace(next)
		switch {
		case next == "":
			return cur
		case strings.EqualFold(next, "off"):
			return ""
		default:
			return next
		}
	}
	return Assets{
		Home:      pick(base.Home, override.Home),
		Summary:   pick(base.Summary, override.Summary),
		Dashboard: pick(base.Dashboard, override.Dashboard),
		Upload:    pick(base.Upload, override.Upload),
		Search:    pick(base.Search, override.Search),
		Analytics: pick(base.Analytics, override.Analytics),
		About:     pick(base.About, override.About),
	}
}

func parseDelay(field, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("parse %s: negative duration %s", field, trimmed)
	}
	return d, nil
}

// DefaultPath returns the expanded default config location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
