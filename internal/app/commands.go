package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/troc-app/troc/internal/api"
)

// loadConversations issues a list load and returns the command that carries
// its result back into the event loop. The generation token is drawn before
// the request leaves so that handlers can discard responses a newer load has
// already superseded.
func (m *Model) loadConversations(background bool) tea.Cmd {
	gen := m.inbox.BeginLoadConversations()
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		conversations, err := client.ListConversations(ctx)
		return ConversationsLoadedMsg{
			Gen:           gen,
			Conversations: conversations,
			Err:           err,
			Background:    background,
		}
	}
}

// fetchThread loads the message history for a conversation under the thread
// generation token handed out by Select.
func (m *Model) fetchThread(gen int, conversationID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		messages, err := client.ListMessages(ctx, conversationID)
		return ThreadLoadedMsg{
			Gen:            gen,
			ConversationID: conversationID,
			Messages:       messages,
			Err:            err,
		}
	}
}

// sendPending posts an optimistic message to the backend. The pending entry
// is already on screen; the handler reconciles it by local id.
func (m *Model) sendPending(pending api.Message) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		confirmed, err := client.SendMessage(ctx, pending.ConversationID, pending.Content)
		return MessageSentMsg{
			LocalID:        pending.LocalID,
			ConversationID: pending.ConversationID,
			Message:        confirmed,
			Err:            err,
		}
	}
}

// startConversation opens a new conversation about a listing with an
// opening message.
func (m *Model) startConversation(listingID, content string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		conversation, err := client.StartConversation(ctx, listingID, content)
		return ConversationStartedMsg{Conversation: conversation, Err: err}
	}
}
