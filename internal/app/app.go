package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/akshrail/internal/asset"
	"github.com/five82/akshrail/internal/config"
	"github.com/five82/akshrail/internal/fixtures"
	"github.com/five82/akshrail/internal/logging"
	"github.com/five82/akshrail/internal/logo"
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/search"
	"github.com/five82/akshrail/internal/state"
	"github.com/five82/akshrail/internal/submit"
	"github.com/five82/akshrail/internal/ui"
	"github.com/five82/akshrail/internal/view"
)

// Options configure the AkshRail application.
type Options struct {
	ConfigPath string
	LogLevel   string // overrides the config file when set
	Theme      string // overrides the config file when set
}

// Run boots the AkshRail TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	art, err := logo.Load(cfg.LogoPath, ui.LogoMaxLines)
	if err != nil {
		logger.Warn("logo unreadable", zap.String("path", cfg.LogoPath), zap.Error(err))
	}

	flows := submit.New(submit.Options{
		UploadDelay: cfg.UploadDelay,
		SearchDelay: cfg.SearchDelay,
		Filter:      search.Engine{},
		Logger:      logger,
	})

	logger.Info("starting",
		zap.String("theme", cfg.Theme),
		zap.Bool("decorations", cfg.Decorations),
		zap.Bool("logo_found", art.Found),
	)

	uiOpts := ui.Options{
		Context:     ctx,
		Flows:       flows,
		Fetcher:     asset.NewClient(cfg.FetchTimeout, logger),
		Assets:      cfg.Assets,
		Decorations: cfg.Decorations,
		Logo:        art,
		ThemeName:   cfg.Theme,
		Logger:      logger,
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("stopped")
	return nil
}

// RenderOptions configure a one-shot render of a single section.
type RenderOptions struct {
	Options
	Section state.Section
	Format  render.Format
	// Seed makes the analytics series reproducible when non-nil.
	Seed *uint64
	// NoAssets skips the decoration fetch.
	NoAssets bool
	Color    bool
}

// Render writes one section's tree to w without starting the UI.
func Render(ctx context.Context, w io.Writer, opts RenderOptions) error {
	cfg, logger, err := setup(opts.Options)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var in view.Input
	if !opts.NoAssets && cfg.Decorations {
		if url := cfg.Assets.URL(opts.Section.Key()); url != "" {
			client := asset.NewClient(cfg.FetchTimeout, logger)
			if doc, ok := client.Fetch(ctx, url); ok {
				a := doc.Summary(url)
				in.Animation = &a
			}
		}
	}
	if opts.Section == state.Analytics {
		var src fixtures.IntSource
		if opts.Seed != nil {
			src = fixtures.NewSeededSource(*opts.Seed)
		}
		in.Monthly = fixtures.MonthlyUploads(src)
	}

	tree := view.Render(opts.Section, in)
	logger.Debug("rendered section",
		zap.String("section", opts.Section.Key()),
		zap.String("format", string(opts.Format)),
		zap.Int("nodes", len(tree.Nodes)),
	)
	if err := render.WriteTree(w, tree, opts.Format, opts.Color); err != nil {
		return fmt.Errorf("write %s: %w", opts.Section.Key(), err)
	}
	return nil
}

// setup loads config and opens the log file.
func setup(opts Options) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	if theme := strings.TrimSpace(opts.Theme); theme != "" {
		cfg.Theme = theme
	}

	logger, err := logging.New(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("open log %s: %w", cfg.LogFile, err)
	}
	logger = logger.With(zap.Int("pid", os.Getpid()))
	return cfg, logger, nil
}
