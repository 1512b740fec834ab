// Package config handles loading and parsing the AkshRail configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/akshrail/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Theme: Metro
//   - Logo: ~/.config/akshrail/logo.txt
//   - Log file: ~/.local/share/akshrail/akshrail.log
//   - Upload delay: 3s, search delay: 2s
//   - Animation fetch timeout: 5s
//   - Decorations: enabled, using the stock lottiefiles URLs
//
// # TOML Format
//
//	theme = "Metro"
//	logo_path = "~/.config/akshrail/logo.txt"
//	log_file = "~/.local/share/akshrail/akshrail.log"
//	log_level = "info"
//	upload_delay = "3s"
//	search_delay = "2s"
//	fetch_timeout = "5s"
//	decorations = true
//
//	[assets]
//	home = "https://lottie.host/.../lQ2Jz8wO9D.json"
//	about = "off"
//
// Every field is optional. Durations use Go syntax ("150ms", "2s"). An asset
// set to "off" hides the decoration for that section only.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and malformed or negative durations
//
// Missing config files are NOT an error. AkshRail runs without any
// configuration on a fresh machine.
package config
