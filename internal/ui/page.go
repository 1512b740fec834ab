package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/akshrail/internal/fixtures"
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/state"
	"github.com/five82/akshrail/internal/submit"
	"github.com/five82/akshrail/internal/view"
)

// focusKind identifies a control in the content pane.
type focusKind int

const (
	focusFile focusKind = iota
	focusTitle
	focusType
	focusQuery
	focusFilters
	focusButton
	focusExpander
)

// focusable is one control tab can land on.
type focusable struct {
	kind   focusKind
	id     string
	action *render.Action
}

// key identifies the control across redraws.
func (f focusable) key() string {
	switch f.kind {
	case focusButton, focusExpander:
		return "node:" + f.id
	default:
		return fmt.Sprintf("field:%d", f.kind)
	}
}

// typing reports whether the control is a text input that consumes keys.
func (f focusable) typing() bool {
	return f.kind == focusTitle || f.kind == focusQuery
}

type uploadForm struct {
	file    *submit.File
	title   textinput.Model
	typeIdx int
	note    string // why the last picked file was refused
	state   view.UploadState
}

type searchForm struct {
	query    textinput.Model
	cursor   int
	selected map[fixtures.DocumentType]bool
	state    view.SearchState
}

// pageState is the active section's local state. It is rebuilt on every
// navigation so a revisited section starts fresh.
type pageState struct {
	animation *render.Animation
	expanded  map[string]bool
	focusIdx  int
	monthly   fixtures.Series
	upload    uploadForm
	search    searchForm
}

func (m Model) newPage(s state.Section) pageState {
	p := pageState{
		expanded: make(map[string]bool),
		upload: uploadForm{
			title: newTextInput("e.g., Q4 Financial Report, Metro Line 3 Design", 120),
		},
		search: searchForm{
			query:    newTextInput("e.g., 'Maintenance report Q3', 'invoice from ABC Corp'", 200),
			selected: make(map[fixtures.DocumentType]bool),
		},
	}
	if s == state.Analytics {
		p.monthly = fixtures.MonthlyUploads(m.random)
	}
	return p
}

func newTextInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 48
	return ti
}

// tree renders the active section from its local state.
func (m Model) tree() render.Tree {
	return view.Render(m.nav.Active(), view.Input{
		Animation: m.page.animation,
		Upload:    m.page.upload.state,
		Search:    m.page.search.state,
		Monthly:   m.page.monthly,
	})
}

// focusables lists the content controls in drawing order. Form fields are
// placed just before the submit button they feed, and controls inside
// collapsed expanders are skipped.
func (m Model) focusables(t render.Tree) []focusable {
	var out []focusable
	render.Walk(t.Nodes, func(n render.Node) bool {
		switch n.Kind {
		case render.KindButton:
			switch n.ID {
			case view.ButtonUploadSubmit:
				out = append(out, focusable{kind: focusFile}, focusable{kind: focusTitle}, focusable{kind: focusType})
			case view.ButtonSearchSubmit:
				out = append(out, focusable{kind: focusQuery}, focusable{kind: focusFilters})
			}
			out = append(out, focusable{kind: focusButton, id: n.ID, action: n.Action})
		case render.KindExpander:
			out = append(out, focusable{kind: focusExpander, id: n.ID})
			return m.page.expanded[n.ID]
		}
		return true
	})
	return out
}

// focused returns the control with focus in the content pane.
func (m Model) focused() (focusable, bool) {
	if m.focus != focusContent {
		return focusable{}, false
	}
	items := m.focusables(m.tree())
	if len(items) == 0 {
		return focusable{}, false
	}
	return items[min(m.page.focusIdx, len(items)-1)], true
}

// moveFocus steps through the content controls, wrapping at both ends.
func (m *Model) moveFocus(delta int) tea.Cmd {
	items := m.focusables(m.tree())
	if len(items) == 0 {
		return nil
	}
	m.page.focusIdx = ((m.page.focusIdx+delta)%len(items) + len(items)) % len(items)
	return m.syncInputs()
}

// syncInputs focuses the text input under the cursor and blurs the other.
func (m *Model) syncInputs() tea.Cmd {
	m.page.upload.title.Blur()
	m.page.search.query.Blur()
	f, ok := m.focused()
	if !ok {
		return nil
	}
	switch f.kind {
	case focusTitle:
		return m.page.upload.title.Focus()
	case focusQuery:
		return m.page.search.query.Focus()
	}
	return nil
}

// navigate makes s the active section, resets its local state and starts
// the decoration fetch.
func (m Model) navigate(s state.Section) (Model, tea.Cmd) {
	if !m.nav.Navigate(s) {
		return m, nil
	}
	m.sidebarCursor = int(s)
	m.page = m.newPage(s)
	m.showPicker = false
	m.content.GotoTop()
	m.logger.Debug("navigated",
		zap.String("section", s.Key()),
		zap.Int("visit", m.nav.Visits()),
	)
	return m, m.fetchAnimation()
}

// fetchAnimation loads the active section's decoration when enabled.
func (m Model) fetchAnimation() tea.Cmd {
	if !m.decorations || m.fetcher == nil {
		return nil
	}
	url := m.assets.URL(m.nav.Active().Key())
	if url == "" {
		return nil
	}
	return fetchAnimationCmd(m.ctx, m.fetcher, url, m.nav.Visits())
}

// activate presses the focused control.
func (m Model) activate(f focusable) (Model, tea.Cmd) {
	switch f.kind {
	case focusFile:
		m.showPicker = true
		m.page.upload.note = ""
		return m, m.picker.Init()
	case focusType:
		m.cycleType(1)
		return m, nil
	case focusFilters:
		m.toggleFilter()
		return m, nil
	case focusTitle:
		return m.submitUpload()
	case focusQuery:
		return m.submitSearch()
	case focusExpander:
		m.page.expanded[f.id] = !m.page.expanded[f.id]
		return m, nil
	case focusButton:
		switch {
		case f.id == view.ButtonUploadSubmit:
			return m.submitUpload()
		case f.id == view.ButtonSearchSubmit:
			return m.submitSearch()
		case f.action != nil:
			next, cmd := m.navigate(f.action.Navigate)
			next.focus = focusContent
			return next, cmd
		}
	}
	return m, nil
}

func (m *Model) cycleType(delta int) {
	types := fixtures.SelectableTypes()
	m.page.upload.typeIdx = ((m.page.upload.typeIdx+delta)%len(types) + len(types)) % len(types)
}

func (m Model) selectedType() fixtures.DocumentType {
	return fixtures.SelectableTypes()[m.page.upload.typeIdx]
}

func (m *Model) moveFilterCursor(delta int) {
	n := len(fixtures.SelectableTypes())
	m.page.search.cursor = ((m.page.search.cursor+delta)%n + n) % n
}

func (m *Model) toggleFilter() {
	t := fixtures.SelectableTypes()[m.page.search.cursor]
	m.page.search.selected[t] = !m.page.search.selected[t]
}

// selectedFilters returns the ticked types in selector order.
func (m Model) selectedFilters() []fixtures.DocumentType {
	var out []fixtures.DocumentType
	for _, t := range fixtures.SelectableTypes() {
		if m.page.search.selected[t] {
			out = append(out, t)
		}
	}
	return out
}

// pending reports whether a simulated wait is running on this page.
func (m Model) pending() bool {
	return m.page.upload.state.Pending || m.page.search.state.Pending
}
