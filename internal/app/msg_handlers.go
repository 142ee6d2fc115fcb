package app

import (
	tea "charm.land/bubbletea/v2"

	trocerrors "github.com/troc-app/troc/internal/errors"
	"github.com/troc-app/troc/internal/logger"
)

// handleConversationsLoaded reconciles a finished list load with the inbox.
// Stale generations are dropped; background failures are logged but never
// flashed, the previous list simply stays on screen.
func (m *Model) handleConversationsLoaded(msg ConversationsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		if !m.inbox.FailConversations(msg.Gen) {
			return m, nil
		}
		m.sidebar.SetLoading(false)
		if msg.Background {
			logger.Warn("App: background conversation refresh failed: %v", msg.Err)
			return m, nil
		}
		logger.Error("App: conversation load failed: %v", msg.Err)
		return m, m.ShowFlashError(trocerrors.UserMessage(msg.Err))
	}

	if !m.inbox.ApplyConversations(msg.Gen, msg.Conversations) {
		return m, nil
	}

	m.trackActivity(msg.Conversations)
	m.sidebar.SetConversations(m.inbox.Conversations())
	return m, nil
}

// handleThreadLoaded reconciles a finished thread load. A response for a
// conversation the user has already navigated away from is discarded.
func (m *Model) handleThreadLoaded(msg ThreadLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		if !m.inbox.FailThread(msg.Gen) {
			return m, nil
		}
		m.chat.SetMessages(nil)
		logger.WithConversation(msg.ConversationID).Error("thread load failed", "error", msg.Err)
		return m, m.ShowFlashError(trocerrors.UserMessage(msg.Err))
	}

	if !m.inbox.ApplyThread(msg.Gen, msg.Messages) {
		logger.WithConversation(msg.ConversationID).Debug("discarding thread for superseded selection")
		return m, nil
	}

	m.chat.SetMessages(m.inbox.Thread())
	return m, nil
}

// handleMessageSent reconciles a finished send with its optimistic entry.
// On success the pending message is replaced in place, the composer clears.
// On failure the pending entry is rolled back and the composer keeps its
// text for retry. Both outcomes trigger a background list refresh: even a
// failed send may have raced other activity, and the sidebar order follows
// the backend.
func (m *Model) handleMessageSent(msg MessageSentMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.inbox.FailSend(msg.LocalID)
		if m.inbox.SelectedID() == msg.ConversationID {
			m.chat.SetMessages(m.inbox.Thread())
		}
		logger.WithConversation(msg.ConversationID).Error("send failed", "error", msg.Err)
		return m, tea.Batch(
			m.ShowFlashError(trocerrors.UserMessage(msg.Err)),
			m.loadConversations(true),
		)
	}

	m.inbox.ConfirmSend(msg.LocalID, msg.Message)
	m.chat.ClearInput()
	if m.inbox.SelectedID() == msg.Message.ConversationID {
		m.chat.SetMessages(m.inbox.Thread())
	}
	m.lastSeen[msg.Message.ConversationID] = msg.Message.CreatedAt

	// The backend bumped this conversation's recency; refresh the list so the
	// sidebar reflects the new order.
	return m, m.loadConversations(true)
}

// handleConversationStarted finishes the Message Seller flow. On success the
// modal closes and the new conversation opens; on failure the modal stays up
// with the error so the typed message is not lost.
func (m *Model) handleConversationStarted(msg ConversationStartedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: start conversation failed: %v", msg.Err)
		m.modal.SetError(trocerrors.UserMessage(msg.Err))
		return m, nil
	}

	m.modal.Hide()

	cmds := []tea.Cmd{
		m.loadConversations(false),
		m.openConversation(msg.Conversation.ID),
		m.ShowFlashSuccess("Message sent"),
	}
	m.sidebar.SelectConversation(msg.Conversation.ID)
	m.setFocus(FocusChat)
	return m, tea.Batch(cmds...)
}
