package ui

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/akshrail/internal/asset"
	"github.com/five82/akshrail/internal/config"
	"github.com/five82/akshrail/internal/fixtures"
	"github.com/five82/akshrail/internal/logo"
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/search"
	"github.com/five82/akshrail/internal/state"
	"github.com/five82/akshrail/internal/submit"
)

// focusArea is the pane receiving keys.
type focusArea int

const (
	focusSidebar focusArea = iota
	focusContent
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Flows   *submit.Flows
	// Fetcher loads section decorations; nil disables them.
	Fetcher     asset.Fetcher
	Assets      config.Assets
	Decorations bool
	Logo        logo.Logo
	ThemeName   string
	Logger      *zap.Logger
	// Random feeds the analytics series; nil uses the global source.
	Random fixtures.IntSource
	// StartDir is where the upload file picker opens.
	StartDir string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	flows       *submit.Flows
	fetcher     asset.Fetcher
	assets      config.Assets
	decorations bool
	logo        logo.Logo
	logger      *zap.Logger
	random      fixtures.IntSource

	// UI state
	theme         Theme
	keys          keyMap
	help          help.Model
	width         int
	height        int
	ready         bool
	focus         focusArea
	sidebarCursor int

	// Navigation and the active section's local state
	nav  state.Navigation
	page pageState

	// Content pane
	content viewport.Model
	spinner spinner.Model

	// Help overlay
	showHelp bool

	// Upload file picker modal
	picker     filepicker.Model
	showPicker bool
}

// New creates a new Bubble Tea model showing Home.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	flows := opts.Flows
	if flows == nil {
		flows = submit.New(submit.Options{Filter: search.Engine{}, Logger: logger})
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Metro"
	}
	theme := GetTheme(themeName)

	lg := opts.Logo
	if len(lg.Lines) == 0 {
		lg.Lines = logo.Fallbacked().Lines
	}

	startDir := opts.StartDir
	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		} else {
			startDir = "."
		}
	}
	fp := filepicker.New()
	fp.AllowedTypes = submit.AllowedExtensions
	fp.CurrentDirectory = startDir
	fp.AutoHeight = false
	fp.SetHeight(PickerMaxHeight)

	m := Model{
		ctx:         ctx,
		flows:       flows,
		fetcher:     opts.Fetcher,
		assets:      opts.Assets,
		decorations: opts.Decorations,
		logo:        lg,
		logger:      logger,
		random:      opts.Random,
		theme:       theme,
		keys:        DefaultKeyMap(),
		help:        newHelp(),
		content:     viewport.New(0, 0),
		picker:      fp,
	}
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.applyTheme()
	m.page = m.newPage(m.nav.Active())
	return m
}

func newHelp() help.Model {
	h := help.New()
	h.Width = 40
	return h
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.fetchAnimation(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.refreshContent()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case animationMsg:
		if msg.visit != m.nav.Visits() {
			return m, nil
		}
		m.page.animation = msg.animation
		return m, nil

	case uploadDoneMsg:
		return m.handleUploadDone(msg), nil

	case searchDoneMsg:
		return m.handleSearchDone(msg), nil

	case spinner.TickMsg:
		if !m.pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Directory listings and other picker-internal messages.
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	if m.showPicker {
		return m.renderPicker()
	}

	return m.renderMain()
}

// Section returns the active section.
func (m Model) Section() state.Section {
	return m.nav.Active()
}

// resize fits the content viewport and picker to the terminal.
func (m *Model) resize() {
	bodyHeight := m.bodyHeight()
	m.content.Width = max(m.width-m.sidebarWidth()-2, 0)
	m.content.Height = max(bodyHeight-2, 0)
	m.picker.SetHeight(min(PickerMaxHeight, max(m.height-10, 3)))
}

// bodyHeight is the height left for sidebar and content below the header
// and command bar.
func (m Model) bodyHeight() int {
	return max(m.height-lipgloss.Height(m.renderHeader())-1, 3)
}

func (m Model) sidebarWidth() int {
	if m.width < LayoutCompactWidth {
		return SidebarCompactWidth
	}
	return SidebarWidth
}

// applyTheme restyles the bubbles widgets after a theme change.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.spinner.Style = styles.AccentText
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
	m.picker.Styles.Cursor = styles.AccentText
	m.picker.Styles.Directory = styles.InfoText
	m.picker.Styles.File = styles.Text
	m.picker.Styles.DisabledFile = styles.FaintText
	m.picker.Styles.Selected = styles.SuccessText
	m.picker.Styles.FileSize = styles.MutedText.Width(7).Align(lipgloss.Right)
}

// renderMain draws header, command bar and the sidebar/content body.
func (m Model) renderMain() string {
	var b []string

	// Header: logo, title, logo warning
	b = append(b, m.renderHeader())

	// Command bar
	b = append(b, m.renderCommandBar())

	// Body
	height := m.bodyHeight()
	sidebar := m.renderSidebar(m.sidebarWidth(), height)
	section := m.nav.Active()
	content := m.renderTitledBox(section.Label(), m.content.View(), m.width-m.sidebarWidth(), height, m.focus == focusContent)
	b = append(b, lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content))

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}

// Messages

type animationMsg struct {
	visit     int
	animation *render.Animation
}

type uploadDoneMsg struct {
	visit  int
	result submit.UploadResult
	err    error
}

type searchDoneMsg struct {
	visit  int
	result submit.SearchResult
	err    error
}

// Commands

func fetchAnimationCmd(ctx context.Context, f asset.Fetcher, url string, visit int) tea.Cmd {
	return func() tea.Msg {
		doc, ok := f.Fetch(ctx, url)
		if !ok {
			return animationMsg{visit: visit}
		}
		a := doc.Summary(url)
		return animationMsg{visit: visit, animation: &a}
	}
}

func uploadCmd(ctx context.Context, flows *submit.Flows, u submit.Upload, visit int) tea.Cmd {
	return func() tea.Msg {
		result, err := flows.FinishUpload(ctx, u)
		return uploadDoneMsg{visit: visit, result: result, err: err}
	}
}

func searchCmd(ctx context.Context, flows *submit.Flows, req search.Request, visit int) tea.Cmd {
	return func() tea.Msg {
		result, err := flows.FinishSearch(ctx, req)
		return searchDoneMsg{visit: visit, result: result, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
