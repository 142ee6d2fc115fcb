package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/troc-app/troc/internal/api"
	"github.com/troc-app/troc/internal/config"
	"github.com/troc-app/troc/internal/inbox"
	"github.com/troc-app/troc/internal/ui"
)

// requestTimeout bounds every API round-trip issued from the event loop.
const requestTimeout = 15 * time.Second

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusChat
)

// apiClient is the slice of api.Client the event loop uses. Tests substitute
// a stub so handlers can be driven without a server.
type apiClient interface {
	ListConversations(ctx context.Context) ([]api.Conversation, error)
	ListMessages(ctx context.Context, conversationID string) ([]api.Message, error)
	SendMessage(ctx context.Context, conversationID, content string) (api.Message, error)
	StartConversation(ctx context.Context, listingID, content string) (api.Conversation, error)
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	client  apiClient
	inbox   *inbox.Inbox
	version string // App version (injected at build time)

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	chat    *ui.Chat
	modal   *ui.Modal

	width  int
	height int
	focus  Focus

	currentUser   api.User
	windowFocused bool

	// lastSeen tracks the newest activity timestamp observed per conversation,
	// to detect which conversations moved between two list loads.
	lastSeen map[string]time.Time
}

// ConversationsLoadedMsg carries the result of a conversation list load.
// Background loads (recency polls, post-send refreshes) never surface their
// failures to the user.
type ConversationsLoadedMsg struct {
	Gen           int
	Conversations []api.Conversation
	Err           error
	Background    bool
}

// ThreadLoadedMsg carries the result of a thread load.
type ThreadLoadedMsg struct {
	Gen            int
	ConversationID string
	Messages       []api.Message
	Err            error
}

// MessageSentMsg carries the result of a message send.
type MessageSentMsg struct {
	LocalID        string
	ConversationID string
	Message        api.Message
	Err            error
}

// ConversationStartedMsg carries the result of starting a conversation from
// a listing.
type ConversationStartedMsg struct {
	Conversation api.Conversation
	Err          error
}

// New creates a new app model
func New(cfg *config.Config, version string) *Model {
	m := &Model{
		config:   cfg,
		client:   api.New(cfg),
		inbox:    inbox.New(),
		version:  version,
		header:   ui.NewHeader(),
		footer:   ui.NewFooter(),
		sidebar:  ui.NewSidebar(),
		chat:     ui.NewChat(),
		modal:    ui.NewModal(),
		focus:    FocusSidebar,
		lastSeen: make(map[string]time.Time),

		// Assume focused until the terminal reports otherwise; avoids
		// notifying about a window the user is already looking at.
		windowFocused: true,
	}

	if sub, ok := config.TokenSubject(cfg.GetToken()); ok {
		m.currentUser = api.User{ID: sub}
	}
	m.sidebar.SetCurrentUser(m.currentUser.ID)
	m.chat.SetCurrentUser(m.currentUser.ID)

	m.sidebar.SetFocused(true)
	m.sidebar.SetLoading(true)

	return m
}

// Init initializes the model with the first conversation load and the
// recency poll loop.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadConversations(false)}
	if interval := m.config.GetPollInterval(); interval > 0 {
		cmds = append(cmds, PollTick(interval))
	}
	return tea.Batch(cmds...)
}

// Inbox exposes the synchronization core, mainly for tests.
func (m *Model) Inbox() *inbox.Inbox {
	return m.inbox
}
