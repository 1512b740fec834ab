// Package ui provides the terminal user interface for AkshRail.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. It owns the navigation state and the
// active section's local state (form values, outcomes, expanded panels) and
// draws whatever render.Tree the view package produces for that section.
// Nothing is persisted; every navigation rebuilds the section from scratch.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View, messages, commands and Run
//   - page.go: Per-section local state, focusable controls and navigation
//   - input.go: Key routing for the sidebar, content pane, text inputs and picker
//   - draw.go: Render tree to styled lines (tables, charts, callouts, expanders)
//   - forms.go: Upload and Search form fields and the file picker modal
//   - header.go: Header with logo, product name and tagline; command bar
//   - sidebar.go: Navigation sidebar and the titled box used by both panes
//   - help.go: Keyboard shortcut overlay
//   - theme.go, style_helpers.go, keys.go, layout.go: styling and constants
//
// # Event Flow
//
//  1. Run() builds the Model and starts the program on Home
//  2. Each navigation bumps the visit counter, resets the section and starts
//     its decoration fetch as a command
//  3. Submissions validate synchronously, then run the simulated wait as a
//     command while a spinner runs
//  4. Async results carry the visit they were started in and are dropped if
//     the user has since navigated
//
// # Key Bindings
//
//   - 1-6: Home, Dashboard, Upload, Search, Analytics, About
//   - [ / ]: Previous/next section
//   - Tab / Shift+Tab: Move between controls in the content pane
//   - Enter: Press a button, expand a panel, open the file picker, submit
//   - Space, h/l: Toggle and move through type filters, cycle upload type
//   - j/k, g/G, Ctrl+d/u: Scroll
//   - Esc: Back to the sidebar
//   - T: Cycle theme
//   - ?: Toggle help
//   - q or Ctrl+C: Exit
package ui
