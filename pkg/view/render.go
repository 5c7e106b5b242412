package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avral/scriptscan/pkg/asset"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	unusedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	usedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View renders the UI.
func (m viewModel) View() string {
	if m.quitting {
		return ""
	}

	if m.detail != nil {
		return m.renderDetail()
	}

	return m.renderList()
}

// renderList renders the script reference list.
func (m viewModel) renderList() string {
	var s strings.Builder

	title := "scriptscan"
	if m.scanner.UnusedOnly() {
		title += " (unused only)"
	}
	s.WriteString(headerStyle.Render(title))
	s.WriteString("\n\n")

	switch {
	case m.refreshing:
		s.WriteString(dimStyle.Render("Scanning..."))
		s.WriteString("\n")
	case m.scanErr != nil:
		s.WriteString(errorStyle.Render(fmt.Sprintf("Scan failed: %v", m.scanErr)))
		s.WriteString("\n")
	case m.scanner.LastIndex() == nil:
		s.WriteString(dimStyle.Render("No scan results. Press r to scan."))
		s.WriteString("\n")
	case len(m.refs) == 0:
		s.WriteString(dimStyle.Render("No scripts match the current filter."))
		s.WriteString("\n")
	default:
		for i, ref := range m.refs {
			s.WriteString(m.renderLine(i, ref))
		}
	}

	s.WriteString("\n")
	s.WriteString(dimStyle.Render(
		"Enter: detail  u: toggle unused-only  r: refresh  c: clear  q: quit"))

	return s.String()
}

// renderLine renders one list entry with its usage badge.
func (m viewModel) renderLine(i int, ref *asset.Reference) string {
	cursor := " "
	if m.cursor == i {
		cursor = ">"
	}

	badge := usedStyle.Render("[used]  ")
	if ref.IsUnused() {
		badge = unusedStyle.Render("[unused]")
	}

	line := fmt.Sprintf("%s %s %s", cursor, badge, ref.Script.Path)
	if m.cursor == i {
		line = selectedStyle.Render(line)
	}

	return line + "\n"
}

// renderDetail renders a single script's reference record.
func (m viewModel) renderDetail() string {
	ref := m.detail

	var s strings.Builder
	s.WriteString(headerStyle.Render(ref.Script.Path))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Class:    %s\n", ref.Script.ClassName))
	s.WriteString(fmt.Sprintf("Language: %s\n", ref.Script.Language))
	if ref.IsUnused() {
		s.WriteString(unusedStyle.Render("Unused: not contained in any prefab or scene"))
		s.WriteString("\n")
	}

	s.WriteString(renderContainers("Prefabs", ref.ContainingPrefabs))
	s.WriteString(renderContainers("Scenes", ref.ContainingScenes))

	if len(ref.ReferencingScripts) > 0 {
		s.WriteString("\nReferenced by:\n")
		for _, path := range sortedScriptPaths(ref.ReferencingScripts) {
			s.WriteString(fmt.Sprintf("  %s\n", path))
		}
	}

	if len(ref.AttachedObjects) > 0 {
		s.WriteString("\nAttached to (open scene):\n")
		for _, name := range sortedObjectNames(ref.AttachedObjects) {
			s.WriteString(fmt.Sprintf("  %s\n", name))
		}
	}

	s.WriteString("\n")
	s.WriteString(dimStyle.Render("Esc: back  q: quit"))

	return s.String()
}

// renderContainers renders a labeled, path-sorted container section, or
// nothing when the set is empty.
func renderContainers(label string, containers map[asset.GUID]asset.Container) string {
	if len(containers) == 0 {
		return ""
	}

	paths := make([]string, 0, len(containers))
	for _, c := range containers {
		paths = append(paths, c.Path)
	}
	sort.Strings(paths)

	var s strings.Builder
	s.WriteString(fmt.Sprintf("\n%s:\n", label))
	for _, path := range paths {
		s.WriteString(fmt.Sprintf("  %s\n", path))
	}
	return s.String()
}

func sortedScriptPaths(scripts map[asset.GUID]asset.Script) []string {
	paths := make([]string, 0, len(scripts))
	for _, sc := range scripts {
		paths = append(paths, sc.Path)
	}
	sort.Strings(paths)
	return paths
}

func sortedObjectNames(objects map[asset.ObjectID]string) []string {
	names := make([]string, 0, len(objects))
	for _, name := range objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
