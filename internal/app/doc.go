// Package app is the composition root for AkshRail.
//
// # Overview
//
// Run loads configuration, opens the log file, and wires the asset fetcher,
// logo, submission flows and UI together before handing the terminal to
// Bubble Tea. Render builds the same section trees without a terminal and
// writes them as text, JSON or YAML for the CLI's render command.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Read ~/.config/akshrail/config.toml
//	       ├─────> logging.New()     Rotating JSON log file
//	       ├─────> logo.Load()       Header art or the fallback glyph
//	       ├─────> asset.NewClient() Decoration fetcher
//	       ├─────> submit.New()      Upload and search flows
//	       └─────> ui.Run()          Start TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run and Render):
//   - Config file unreadable or invalid
//   - Log file cannot be created
//   - Terminal cannot be initialised
//
// Everything else is recoverable: missing logos, unavailable animations and
// invalid form input are shown or logged and the UI carries on.
package app
