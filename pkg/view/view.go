// Package view provides the interactive terminal UI for browsing scan
// results.
package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avral/scriptscan/pkg/asset"
	"github.com/avral/scriptscan/pkg/scriptscan"
)

// refreshDoneMsg reports the outcome of a refresh run as a Bubble Tea
// message.
type refreshDoneMsg struct {
	err error
}

// viewModel represents the Bubble Tea model for browsing script references.
type viewModel struct {
	scanner    scriptscan.ScriptScanner
	refs       []*asset.Reference
	cursor     int
	detail     *asset.Reference
	refreshing bool
	scanErr    error
	quitting   bool
}

// initialViewModel creates a new view model over an already-created scanner.
func initialViewModel(scanner scriptscan.ScriptScanner) viewModel {
	return viewModel{
		scanner: scanner,
		refs:    scanner.References(),
	}
}

// Init triggers the first scan so the list is populated on startup.
func (m viewModel) Init() tea.Cmd {
	return m.refreshCmd()
}

// refreshCmd runs a scan and reports its outcome as a message.
func (m viewModel) refreshCmd() tea.Cmd {
	scanner := m.scanner
	return func() tea.Msg {
		_, err := scanner.Refresh()
		return refreshDoneMsg{err: err}
	}
}

// Update handles messages and updates the model.
func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyInput(msg)
	case refreshDoneMsg:
		m.refreshing = false
		m.scanErr = msg.err
		m.reloadReferences()
		return m, nil
	}

	return m, nil
}

// reloadReferences re-reads the reference list from the scanner and clamps
// the cursor.
func (m *viewModel) reloadReferences() {
	m.refs = m.scanner.References()
	if m.cursor >= len(m.refs) {
		m.cursor = 0
	}
	if m.detail != nil {
		m.detail = nil
	}
}

// Run starts the interactive browser over the given scanner and blocks
// until the user quits.
func Run(scanner scriptscan.ScriptScanner) error {
	p := tea.NewProgram(initialViewModel(scanner))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run view program: %w", err)
	}

	return nil
}
