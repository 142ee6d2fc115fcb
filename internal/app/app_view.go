package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/troc-app/troc/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	vc := ui.GetViewContext()
	vc.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(vc.TerminalWidth)
	m.footer.SetWidth(vc.TerminalWidth)
	m.sidebar.SetSize(vc.SidebarWidth, vc.ContentHeight)
	m.chat.SetSize(vc.ChatWidth, vc.ContentHeight)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	// Update footer context for conditional bindings
	m.footer.SetContext(
		m.inbox.SelectedID() != "",
		m.focus == FocusSidebar,
		m.inbox.HasPendingSends(),
	)

	header := m.header.View()
	footer := m.footer.View()

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.sidebar.View(),
		m.chat.View(),
	)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		panels,
		footer,
	)

	// Overlay modal if visible
	if m.modal.IsVisible() {
		v.SetContent(m.modal.View(m.width, m.height))
		return v
	}

	v.SetContent(view)
	return v
}
