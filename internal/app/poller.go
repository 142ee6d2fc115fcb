package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/troc-app/troc/internal/api"
	"github.com/troc-app/troc/internal/logger"
	"github.com/troc-app/troc/internal/notification"
)

// PollTickMsg triggers a background conversation list refresh
type PollTickMsg time.Time

// PollTick returns a command that sends a PollTickMsg after the poll interval
func PollTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PollTickMsg(t)
	})
}

// handlePollTick kicks off a background list load and re-arms the timer.
func (m *Model) handlePollTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.loadConversations(true)}
	if interval := m.config.GetPollInterval(); interval > 0 {
		cmds = append(cmds, PollTick(interval))
	}
	return m, tea.Batch(cmds...)
}

// trackActivity compares a freshly applied conversation list against the
// last observed activity timestamps. Conversations that moved while not on
// screen get an unread marker and, if enabled, a desktop notification.
// The first load seeds the baseline without notifying.
func (m *Model) trackActivity(conversations []api.Conversation) {
	seeded := len(m.lastSeen) > 0
	selectedID := m.inbox.SelectedID()

	for _, c := range conversations {
		prev, known := m.lastSeen[c.ID]
		isNews := !known || c.LastMessageAt.After(prev)
		m.lastSeen[c.ID] = c.LastMessageAt

		if !seeded || !isNews || c.ID == selectedID {
			continue
		}

		m.sidebar.MarkUnread(c.ID)
		if m.config.GetNotificationsEnabled() && !m.windowFocused {
			other := c.Other(m.currentUser.ID)
			if err := notification.NewMessage(other.Username); err != nil {
				logger.Warn("App: desktop notification failed: %v", err)
			}
		}
	}
}
