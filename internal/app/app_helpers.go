package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/troc-app/troc/internal/logger"
	"github.com/troc-app/troc/internal/ui"
)

// setFocus moves keyboard focus between the sidebar and the chat panel
func (m *Model) setFocus(focus Focus) {
	m.focus = focus
	m.sidebar.SetFocused(focus == FocusSidebar)
	m.chat.SetFocused(focus == FocusChat)
}

// toggleFocus switches between the two panels. The chat panel only takes
// focus when a conversation is open.
func (m *Model) toggleFocus() {
	if m.focus == FocusSidebar {
		if m.inbox.SelectedID() == "" {
			return
		}
		m.setFocus(FocusChat)
	} else {
		m.setFocus(FocusSidebar)
	}
}

// openConversation selects a conversation, clears its unread marker, points
// the chat panel at it, and starts the thread load.
func (m *Model) openConversation(conversationID string) tea.Cmd {
	gen := m.inbox.Select(conversationID)
	m.sidebar.ClearUnread(conversationID)

	if conv, ok := m.inbox.SelectedConversation(); ok {
		other := conv.Other(m.currentUser.ID)
		m.chat.SetConversation(other.Username)
		m.header.SetConversation(other.Username, conv.Listing.Title)
	} else {
		// Freshly started conversation not in the cached list yet; the
		// pending list reload will fill the header in.
		m.chat.SetConversation("")
		m.header.ClearConversation()
	}

	logger.WithConversation(conversationID).Debug("conversation opened")
	return m.fetchThread(gen, conversationID)
}

// sendMessage validates the composer and issues an optimistic send. An empty
// or whitespace-only composer is a silent no-op; nothing reaches the network.
func (m *Model) sendMessage() tea.Cmd {
	m.inbox.SetDraft(m.chat.RawInput())
	pending, ok := m.inbox.BeginSend(m.currentUser, time.Now())
	if !ok {
		return nil
	}

	// The pending entry renders immediately, before the round-trip.
	m.chat.SetMessages(m.inbox.Thread())
	return m.sendPending(pending)
}

// submitStartConversation validates and submits the Message Seller modal
func (m *Model) submitStartConversation(state *ui.StartConversationState) tea.Cmd {
	listingID := state.GetListingID()
	content := state.GetMessage()

	if listingID == "" {
		m.modal.SetError("Listing id cannot be empty")
		return nil
	}
	if content == "" {
		m.modal.SetError("Message cannot be empty")
		return nil
	}

	return m.startConversation(listingID, content)
}

// Flash Message Helpers

// ShowFlash displays a flash message in the footer and returns a command to
// start the auto-dismiss timer
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashWarning displays a warning flash message
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

// ShowFlashInfo displays an info flash message
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}
