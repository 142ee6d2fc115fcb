// Package inbox is the conversation/message synchronization core: it owns the
// cached conversation list, the single active thread, the composer buffer and
// the selection state machine, and enforces the consistency rules around them.
//
// The package does no I/O. Loads and sends are two-phase: a Begin method
// records intent and hands back a generation token, and the matching Apply or
// Fail method is called with the result. Apply/Fail reject stale tokens, which
// is how a response that was overtaken by a newer request is discarded instead
// of clobbering newer state ("last request wins"). Sends are correlated by a
// locally generated id rather than a generation, so a confirmation can find
// its pending entry no matter what happened to the thread in between.
package inbox

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/troc-app/troc/internal/api"
	"github.com/troc-app/troc/internal/logger"
)

// State is the selection state machine. There is no transition back to
// StateIdle short of a full session restart.
type State int

const (
	// StateIdle means no conversation list has been loaded yet.
	StateIdle State = iota
	// StateConversationsLoaded means the list is present with no selection.
	StateConversationsLoaded
	// StateConversationSelected means one conversation's thread is loading or loaded.
	StateConversationSelected
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateConversationsLoaded:
		return "ConversationsLoaded"
	case StateConversationSelected:
		return "ConversationSelected"
	default:
		return "Unknown"
	}
}

// Inbox owns all synchronization state. All access goes through its methods;
// readers never observe a partially updated collection.
type Inbox struct {
	mu sync.Mutex

	state         State
	conversations []api.Conversation
	listGen       int

	selectedID    string
	thread        []api.Message
	threadLoading bool
	threadGen     int

	// Optimistic sends in flight, in dispatch order, keyed by LocalID.
	// They live here as well as in the thread so a wholesale thread reload
	// can re-append them at the tail.
	pendings []api.Message

	composer Composer
}

// New creates an empty Inbox in StateIdle.
func New() *Inbox {
	return &Inbox{}
}

// State returns the current selection state.
func (in *Inbox) State() State {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state
}

// --- Conversation list -------------------------------------------------------

// BeginLoadConversations records intent to (re)load the conversation list and
// returns the generation token the eventual result must present.
func (in *Inbox) BeginLoadConversations() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.listGen++
	return in.listGen
}

// ApplyConversations installs a loaded list wholesale, in exactly the order
// given - the backend's order is authoritative and is never re-sorted here.
// Returns false if a newer load has been issued since gen was handed out, in
// which case nothing changes.
func (in *Inbox) ApplyConversations(gen int, conversations []api.Conversation) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	if gen != in.listGen {
		logger.Debug("Inbox: discarding stale conversation list (gen %d, current %d)", gen, in.listGen)
		return false
	}

	in.conversations = make([]api.Conversation, len(conversations))
	copy(in.conversations, conversations)

	if in.state == StateIdle {
		in.state = StateConversationsLoaded
	}
	return true
}

// FailConversations reports a failed list load. State is left untouched: a
// failed initial load stays in StateIdle for a manual retry, and a failed
// refresh keeps the previous list. Returns false for stale tokens.
func (in *Inbox) FailConversations(gen int) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return gen == in.listGen
}

// Conversations returns a copy of the cached list in backend order.
func (in *Inbox) Conversations() []api.Conversation {
	in.mu.Lock()
	defer in.mu.Unlock()

	out := make([]api.Conversation, len(in.conversations))
	copy(out, in.conversations)
	return out
}

// --- Selection and thread ----------------------------------------------------

// Select sets the session selection and returns the thread generation token
// for the load the caller must now issue. The visible thread is cleared
// immediately: the previous conversation's messages are never shown under the
// new selection, not even while the load is in flight.
//
// The composer buffer is deliberately NOT cleared here: a draft survives
// switching conversations.
func (in *Inbox) Select(conversationID string) int {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.selectedID = conversationID
	in.thread = nil
	in.threadLoading = true
	in.threadGen++
	if in.state != StateIdle {
		in.state = StateConversationSelected
	}
	return in.threadGen
}

// Deselect clears the selection and the active thread.
func (in *Inbox) Deselect() {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.selectedID = ""
	in.thread = nil
	in.threadLoading = false
	in.threadGen++ // any in-flight thread load is now stale
	if in.state == StateConversationSelected {
		in.state = StateConversationsLoaded
	}
}

// SelectedID returns the selected conversation id, or "" when none.
func (in *Inbox) SelectedID() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.selectedID
}

// SelectedConversation returns the selected conversation from the cached
// list, if both a selection and a matching list entry exist.
func (in *Inbox) SelectedConversation() (api.Conversation, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.selectedID == "" {
		return api.Conversation{}, false
	}
	for _, c := range in.conversations {
		if c.ID == in.selectedID {
			return c, true
		}
	}
	return api.Conversation{}, false
}

// ApplyThread installs a loaded thread wholesale (oldest first, backend
// order). Optimistic sends still in flight for this conversation are
// re-appended at the tail: the pending entry always sits at the end of the
// thread regardless of timestamps. Returns false for stale tokens.
func (in *Inbox) ApplyThread(gen int, messages []api.Message) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	if gen != in.threadGen {
		logger.Debug("Inbox: discarding stale thread (gen %d, current %d)", gen, in.threadGen)
		return false
	}

	in.thread = make([]api.Message, 0, len(messages)+len(in.pendings))
	in.thread = append(in.thread, messages...)
	for _, p := range in.pendings {
		if p.ConversationID == in.selectedID {
			in.thread = append(in.thread, p)
		}
	}
	in.threadLoading = false
	return true
}

// FailThread reports a failed thread load. The selection stays set with an
// empty thread; re-selecting the same conversation retries. Returns false for
// stale tokens.
func (in *Inbox) FailThread(gen int) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	if gen != in.threadGen {
		return false
	}
	in.thread = nil
	in.threadLoading = false
	return true
}

// Thread returns a copy of the active thread, oldest first.
func (in *Inbox) Thread() []api.Message {
	in.mu.Lock()
	defer in.mu.Unlock()

	out := make([]api.Message, len(in.thread))
	copy(out, in.thread)
	return out
}

// ThreadLoading reports whether the selected conversation's thread load is
// still in flight.
func (in *Inbox) ThreadLoading() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.threadLoading
}

// --- Composer ----------------------------------------------------------------

// SetDraft replaces the composer buffer.
func (in *Inbox) SetDraft(s string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.composer.SetText(s)
}

// Draft returns the composer buffer as typed.
func (in *Inbox) Draft() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.composer.Text()
}

// CanSubmit reports whether a send is currently allowed: a conversation is
// selected and the trimmed buffer is non-empty.
func (in *Inbox) CanSubmit() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state == StateConversationSelected && in.composer.CanSubmit()
}

// --- Optimistic send ---------------------------------------------------------

// BeginSend synthesizes a pending message from the composer buffer and
// appends it to the thread tail before any network activity. The buffer is
// left in place; it is cleared only when the backend confirms, so a failure
// keeps the user's text for retry.
//
// Returns ok=false when no conversation is selected or the buffer trims
// empty; nothing is submitted in that case.
func (in *Inbox) BeginSend(sender api.User, now time.Time) (api.Message, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.state != StateConversationSelected || !in.composer.CanSubmit() {
		return api.Message{}, false
	}

	pending := api.Message{
		LocalID:        localIDPrefix + uuid.NewString(),
		ConversationID: in.selectedID,
		Sender:         sender,
		Content:        in.composer.peek(),
		CreatedAt:      now,
		Pending:        true,
	}

	in.pendings = append(in.pendings, pending)
	in.thread = append(in.thread, pending)
	return pending, true
}

const localIDPrefix = "local-"

// ConfirmSend reconciles a confirmed message against its pending entry. The
// pending entry is replaced in place (by key, not position arithmetic) when
// that conversation is still selected; when the user has moved on, the
// confirmation is dropped rather than appended into the wrong thread. Either
// way the send succeeded, so the composer buffer is cleared and the pending
// bookkeeping released.
func (in *Inbox) ConfirmSend(localID string, confirmed api.Message) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	if !in.removePending(localID) {
		return false
	}
	in.composer.clear()

	if confirmed.ConversationID != in.selectedID {
		logger.Debug("Inbox: send %s confirmed for non-selected conversation %s, discarding", localID, confirmed.ConversationID)
		return true
	}

	// A reload racing the send may have installed the server's copy already;
	// drop the pending entry instead of duplicating the id.
	for i := range in.thread {
		if !in.thread[i].Pending && in.thread[i].ID == confirmed.ID {
			for j := range in.thread {
				if in.thread[j].Pending && in.thread[j].LocalID == localID {
					in.thread = append(in.thread[:j], in.thread[j+1:]...)
					break
				}
			}
			return true
		}
	}

	for i := range in.thread {
		if in.thread[i].Pending && in.thread[i].LocalID == localID {
			in.thread[i] = confirmed
			return true
		}
	}
	// Pending entry not in the visible thread (e.g. user selected away and
	// back while the send was in flight and the reload has not landed).
	return true
}

// FailSend rolls back a failed send: the pending entry is removed from the
// thread and the composer buffer is left untouched for retry.
func (in *Inbox) FailSend(localID string) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	if !in.removePending(localID) {
		return false
	}

	for i := range in.thread {
		if in.thread[i].Pending && in.thread[i].LocalID == localID {
			in.thread = append(in.thread[:i], in.thread[i+1:]...)
			break
		}
	}
	return true
}

// removePending drops the registry entry for localID. Callers hold the lock.
func (in *Inbox) removePending(localID string) bool {
	for i := range in.pendings {
		if in.pendings[i].LocalID == localID {
			in.pendings = append(in.pendings[:i], in.pendings[i+1:]...)
			return true
		}
	}
	return false
}

// HasPendingSends reports whether any optimistic send is awaiting its result.
func (in *Inbox) HasPendingSends() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.pendings) > 0
}
