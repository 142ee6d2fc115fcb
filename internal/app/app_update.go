package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/troc-app/troc/internal/keys"
	"github.com/troc-app/troc/internal/logger"
	"github.com/troc-app/troc/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.FocusMsg:
		m.windowFocused = true

	case tea.BlurMsg:
		m.windowFocused = false

	case tea.KeyPressMsg:
		if model, cmd, handled := m.handleKeyPress(msg); handled {
			return model, cmd
		}
		// Key not handled here, fall through to the focused panel

	case ConversationsLoadedMsg:
		return m.handleConversationsLoaded(msg)

	case ThreadLoadedMsg:
		return m.handleThreadLoaded(msg)

	case MessageSentMsg:
		return m.handleMessageSent(msg)

	case ConversationStartedMsg:
		return m.handleConversationStarted(msg)

	case PollTickMsg:
		return m.handlePollTick()

	case ui.FlashTickMsg:
		m.footer.ClearFlash()
		return m, nil
	}

	// Update modal
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Update focused panel for other messages
	if m.focus == FocusSidebar {
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		cmds = append(cmds, cmd)
	} else {
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		cmds = append(cmds, cmd)
		// Keep the draft in sync with the composer
		m.inbox.SetDraft(m.chat.RawInput())
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress routes key presses by focus and modal state. The returned
// bool reports whether the key was consumed.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd, bool) {
	key := msg.String()

	// Ctrl+C always quits
	if key == keys.CtrlC {
		logger.Info("App: quitting")
		return m, tea.Quit, true
	}

	// Modal captures everything while visible
	if m.modal.IsVisible() {
		model, cmd := m.handleModalKey(msg)
		return model, cmd, true
	}

	if key == keys.Tab {
		m.toggleFocus()
		return m, nil, true
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleChatKey(msg)
}

// handleModalKey drives the Message Seller modal
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		if state, ok := m.modal.State.(*ui.StartConversationState); ok {
			return m, m.submitStartConversation(state)
		}
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleSidebarKey handles keys while the conversation list is focused
func (m *Model) handleSidebarKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		logger.Info("App: quitting")
		return m, tea.Quit, true

	case keys.Enter:
		sel := m.sidebar.SelectedConversation()
		if sel == nil {
			return m, nil, true
		}
		cmd := m.openConversation(sel.ID)
		m.setFocus(FocusChat)
		return m, cmd, true

	case "n":
		m.modal.Show(ui.NewStartConversationState(""))
		return m, nil, true

	case "r":
		m.sidebar.SetLoading(len(m.inbox.Conversations()) == 0)
		return m, m.loadConversations(false), true
	}

	return m, nil, false
}

// handleChatKey handles keys while the composer is focused
func (m *Model) handleChatKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case keys.Escape:
		m.setFocus(FocusSidebar)
		return m, nil, true

	case keys.Enter:
		return m, m.sendMessage(), true
	}

	return m, nil, false
}
