package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the sidebar collapses
	// to hotkeys and icons.
	LayoutCompactWidth = 90

	// LayoutWideWidth is the minimum width for two-column node groups.
	LayoutWideWidth = 130
)

// Pane sizes.
const (
	// SidebarWidth is the full sidebar width including borders.
	SidebarWidth = 30

	// SidebarCompactWidth is the sidebar width in compact mode.
	SidebarCompactWidth = 12

	// LogoMaxLines caps how many logo lines the header shows.
	LogoMaxLines = 3

	// BarWidth is the width of chart bars at full scale.
	BarWidth = 32

	// ChartHeight is the number of rows a line chart occupies.
	ChartHeight = 6

	// PickerMaxHeight caps the file picker height.
	PickerMaxHeight = 18
)
