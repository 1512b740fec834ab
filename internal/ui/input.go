package ui

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/akshrail/internal/search"
	"github.com/five82/akshrail/internal/state"
	"github.com/five82/akshrail/internal/submit"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showPicker {
		return m.handlePickerKey(msg)
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Text inputs swallow everything except focus movement and submit.
	if f, ok := m.focused(); ok && f.typing() {
		return m.handleTypingKey(msg, f)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		probe := m.nav
		return m.navigate(probe.Next())

	case key.Matches(msg, m.keys.PrevPage):
		probe := m.nav
		return m.navigate(probe.Prev())
	}

	for i, b := range m.keys.sectionKeys() {
		if key.Matches(msg, b) {
			return m.navigate(state.Sections()[i])
		}
	}

	if m.focus == focusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleContentKey(msg)
}

// handleSidebarKey moves the sidebar cursor and selects sections.
func (m Model) handleSidebarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	sections := state.Sections()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.sidebarCursor = max(m.sidebarCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.sidebarCursor = min(m.sidebarCursor+1, len(sections)-1)
	case key.Matches(msg, m.keys.Top):
		m.sidebarCursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.sidebarCursor = len(sections) - 1
	case key.Matches(msg, m.keys.Activate), key.Matches(msg, m.keys.Toggle):
		return m.navigate(sections[m.sidebarCursor])
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Right):
		m.focus = focusContent
		m.page.focusIdx = 0
		return m, m.syncInputs()
	}
	return m, nil
}

// handleContentKey drives the focused control and scrolls the content pane.
func (m Model) handleContentKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	f, hasFocus := m.focused()

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.focus = focusSidebar
		m.sidebarCursor = int(m.nav.Active())
		return m, m.syncInputs()

	case key.Matches(msg, m.keys.Tab):
		return m, m.moveFocus(1)

	case key.Matches(msg, m.keys.ShiftTab):
		return m, m.moveFocus(-1)

	case key.Matches(msg, m.keys.Left):
		switch {
		case hasFocus && f.kind == focusType:
			m.cycleType(-1)
		case hasFocus && f.kind == focusFilters:
			m.moveFilterCursor(-1)
		default:
			m.focus = focusSidebar
			m.sidebarCursor = int(m.nav.Active())
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		switch {
		case hasFocus && f.kind == focusType:
			m.cycleType(1)
		case hasFocus && f.kind == focusFilters:
			m.moveFilterCursor(1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if hasFocus && f.kind == focusFilters {
			m.toggleFilter()
			return m, nil
		}
		if hasFocus {
			return m.activate(f)
		}
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		if hasFocus {
			return m.activate(f)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.content.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.content.LineDown(1)
	case key.Matches(msg, m.keys.Top):
		m.content.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.content.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.content.HalfViewUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.content.HalfViewDown()
	}
	return m, nil
}

// handleTypingKey feeds a focused text input.
func (m Model) handleTypingKey(msg tea.KeyMsg, f focusable) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Tab):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.ShiftTab):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Escape):
		m.focus = focusSidebar
		m.sidebarCursor = int(m.nav.Active())
		return m, m.syncInputs()
	case key.Matches(msg, m.keys.Confirm):
		return m.activate(f)
	}

	var cmd tea.Cmd
	if f.kind == focusTitle {
		m.page.upload.title, cmd = m.page.upload.title.Update(msg)
	} else {
		m.page.search.query, cmd = m.page.search.query.Update(msg)
	}
	return m, cmd
}

// handlePickerKey drives the upload file picker modal.
func (m Model) handlePickerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape):
		m.showPicker = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.chooseFile(path)
		return m, cmd
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.page.upload.note = fmt.Sprintf("%s is not a supported format.", filepath.Base(path))
	}
	return m, cmd
}

// chooseFile records the picked file by name and size.
func (m *Model) chooseFile(path string) {
	form := &m.page.upload
	if !submit.AllowedFile(path) {
		form.note = fmt.Sprintf("%s is not a supported format.", filepath.Base(path))
		return
	}
	f, err := submit.StatFile(path)
	if err != nil {
		m.logger.Debug("file pick failed", zap.String("path", path), zap.Error(err))
		form.note = "Could not read " + filepath.Base(path) + "."
		return
	}
	form.file = f
	form.note = ""
	m.showPicker = false
}

// submitUpload validates the upload form and starts processing.
func (m Model) submitUpload() (Model, tea.Cmd) {
	form := &m.page.upload
	if form.state.Pending {
		return m, nil
	}

	u := submit.Upload{File: form.file, Title: form.title.Value(), Type: m.selectedType()}
	outcomes, err := m.flows.BeginUpload(u)
	form.state.Outcomes = outcomes
	form.state.Receipt = nil
	if err != nil {
		return m, nil
	}

	form.state.Pending = true
	return m, tea.Batch(m.spinner.Tick, uploadCmd(m.ctx, m.flows, u, m.nav.Visits()))
}

// submitSearch validates the search form and starts the search.
func (m Model) submitSearch() (Model, tea.Cmd) {
	form := &m.page.search
	if form.state.Pending {
		return m, nil
	}

	req := search.Request{Query: form.query.Value(), Types: m.selectedFilters()}
	outcomes, err := m.flows.BeginSearch(req)
	form.state.Outcomes = outcomes
	form.state.Result = nil
	if err != nil {
		return m, nil
	}

	form.state.Pending = true
	return m, tea.Batch(m.spinner.Tick, searchCmd(m.ctx, m.flows, req, m.nav.Visits()))
}

func (m Model) handleUploadDone(msg uploadDoneMsg) Model {
	// Results of an upload started before the user navigated away are dropped.
	if msg.visit != m.nav.Visits() {
		return m
	}
	form := &m.page.upload
	form.state.Pending = false
	if msg.err != nil {
		if !errors.Is(msg.err, m.ctx.Err()) {
			m.logger.Warn("upload failed", zap.Error(msg.err))
		}
		return m
	}
	form.state.Outcomes = append(form.state.Outcomes, msg.result.Outcomes...)
	receipt := msg.result.Receipt
	form.state.Receipt = &receipt
	return m
}

func (m Model) handleSearchDone(msg searchDoneMsg) Model {
	if msg.visit != m.nav.Visits() {
		return m
	}
	form := &m.page.search
	form.state.Pending = false
	if msg.err != nil {
		if !errors.Is(msg.err, m.ctx.Err()) {
			m.logger.Warn("search failed", zap.Error(msg.err))
		}
		return m
	}
	result := msg.result
	form.state.Result = &result
	return m
}
