package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyInput processes key input and returns the updated model and command.
func (m *viewModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Handle special keys
	if m.handleSpecialKeys(key) {
		return m, tea.Quit
	}

	// Handle action keys
	if cmd := m.handleActionKeys(key); cmd != nil {
		return m, cmd
	}

	// Handle navigation keys
	m.handleNavigationKeys(key)

	return m, nil
}

// handleSpecialKeys handles keys that cause the program to quit.
func (m *viewModel) handleSpecialKeys(key string) bool {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return true
	}
	return false
}

// handleActionKeys handles keys that act on the scanner state.
func (m *viewModel) handleActionKeys(key string) tea.Cmd {
	switch key {
	case "r":
		if !m.refreshing {
			m.refreshing = true
			m.scanErr = nil
			return m.refreshCmd()
		}
	case "c":
		m.scanner.Clear()
		m.scanErr = nil
		m.reloadReferences()
	case "u":
		m.scanner.SetUnusedOnly(!m.scanner.UnusedOnly())
		m.reloadReferences()
	case "enter":
		if m.detail == nil && m.cursor < len(m.refs) {
			m.detail = m.refs[m.cursor]
		}
	case "esc":
		m.detail = nil
	}
	return nil
}

// handleNavigationKeys handles navigation keys (up/down).
func (m *viewModel) handleNavigationKeys(key string) {
	if m.detail != nil {
		return
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.refs)-1 {
			m.cursor++
		}
	}
}
