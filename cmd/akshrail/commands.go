package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/five82/akshrail/internal/app"
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/state"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "akshrail",
		Short: "AkshRail document workspace for Kochi Metro Rail",
		Long: `AkshRail is a terminal mockup of a document management workspace:
a dashboard, upload and search flows, analytics and an about page.

Examples:
  akshrail
  akshrail --config ./config.toml --log-level debug
  akshrail render dashboard --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/akshrail/config.toml)")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().StringVar(&opts.Theme, "theme", "", "color theme: Metro, Dracula, Slate")

	root.AddCommand(newRenderCmd(&opts), newSectionsCmd(), newVersionCmd())
	return root
}

// --- render ---

func newRenderCmd(opts *app.Options) *cobra.Command {
	var (
		format   string
		seed     uint64
		noAssets bool
	)

	cmd := &cobra.Command{
		Use:   "render SECTION",
		Short: "Print one section without starting the UI",
		Long: `Print one section's content as text, JSON or YAML.

Examples:
  akshrail render home
  akshrail render analytics --seed 7 --format yaml
  akshrail render dashboard --format json --no-assets`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := state.ParseSection(args[0])
			if err != nil {
				return err
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			ropts := app.RenderOptions{
				Options:  *opts,
				Section:  section,
				Format:   f,
				NoAssets: noAssets,
				Color:    f == render.FormatText && !color.NoColor,
			}
			if cmd.Flags().Changed("seed") {
				ropts.Seed = &seed
			}
			return app.Render(cmd.Context(), cmd.OutOrStdout(), ropts)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatText), "output format: text, json, yaml")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the analytics upload series")
	cmd.Flags().BoolVar(&noAssets, "no-assets", false, "skip fetching the section animation")
	return cmd
}

// --- sections ---

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the sections and their hotkeys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range state.Sections() {
				fmt.Fprintf(out, "%s  %-10s %s\n", s.Hotkey(), s.Key(), s.Label())
			}
			return nil
		},
	}
}

// --- version ---

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "akshrail %s\n", strings.TrimSpace(version))
		},
	}
}
