package api

import (
	"strings"
	"time"
)

// User identifies a marketplace account. Referenced by conversations and
// messages, never owned by the client.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Location string `json:"location,omitempty"`
}

// ListingRef is a read-only snapshot of the listing a conversation is about.
// The backend owns the listing; the client only displays id and title.
type ListingRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Conversation is a two-participant message thread scoped to one listing.
type Conversation struct {
	ID            string     `json:"id"`
	Participants  []User     `json:"participants"` // exactly two: buyer and seller
	Listing       ListingRef `json:"listing"`
	LastMessageAt time.Time  `json:"last_message_at"`
}

// Other returns the participant that is not the current user, for display in
// the conversation list and thread header.
func (c Conversation) Other(currentUserID string) User {
	for _, p := range c.Participants {
		if p.ID != currentUserID {
			return p
		}
	}
	if len(c.Participants) > 0 {
		return c.Participants[0]
	}
	return User{}
}

// Message is a single message within a conversation.
//
// Pending and LocalID exist only on the client: a message synthesized by an
// optimistic send carries Pending=true and a LocalID correlation key until the
// backend's confirmed message replaces it. Neither field crosses the wire.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Sender         User      `json:"sender"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`

	Pending bool   `json:"-"`
	LocalID string `json:"-"`
}

// Key returns the identity used for in-place reconciliation: the local
// correlation id while pending, the backend id once confirmed.
func (m Message) Key() string {
	if m.Pending {
		return m.LocalID
	}
	return m.ID
}

// localIDPrefix distinguishes locally synthesized ids from backend ids.
const localIDPrefix = "local-"

// IsLocalID reports whether id was synthesized by this client rather than
// assigned by the backend.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, localIDPrefix)
}
