package ui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/troc-app/troc/internal/api"
	"github.com/troc-app/troc/internal/keys"
)

// Sidebar represents the left panel with the conversation list. Conversations
// are rendered in exactly the order given; ordering is owned by the caller.
type Sidebar struct {
	conversations []api.Conversation
	currentUserID string
	selectedIdx   int
	width         int
	height        int
	focused       bool
	scrollOffset  int
	loading       bool
	unread        map[string]bool // conversation IDs with activity since last viewed
	now           func() time.Time
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	return &Sidebar{
		unread: make(map[string]bool),
		now:    time.Now,
	}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetLoading sets the loading placeholder state
func (s *Sidebar) SetLoading(loading bool) {
	s.loading = loading
}

// SetCurrentUser sets the logged-in user id, used to pick the counterparty
// for each conversation row.
func (s *Sidebar) SetCurrentUser(userID string) {
	s.currentUserID = userID
}

// SetConversations replaces the conversation list. The previous selection is
// kept when the same conversation still exists, otherwise the cursor is
// clamped into range.
func (s *Sidebar) SetConversations(conversations []api.Conversation) {
	var selectedID string
	if s.selectedIdx >= 0 && s.selectedIdx < len(s.conversations) {
		selectedID = s.conversations[s.selectedIdx].ID
	}

	s.conversations = conversations
	s.loading = false

	if selectedID != "" {
		for i, c := range conversations {
			if c.ID == selectedID {
				s.selectedIdx = i
				return
			}
		}
	}
	if s.selectedIdx >= len(conversations) {
		s.selectedIdx = len(conversations) - 1
	}
	if s.selectedIdx < 0 {
		s.selectedIdx = 0
	}
}

// Conversations returns the current list.
func (s *Sidebar) Conversations() []api.Conversation {
	return s.conversations
}

// SelectedConversation returns the conversation under the cursor, or nil when
// the list is empty.
func (s *Sidebar) SelectedConversation() *api.Conversation {
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.conversations) {
		return nil
	}
	c := s.conversations[s.selectedIdx]
	return &c
}

// SelectConversation moves the cursor to the conversation with the given id,
// if present.
func (s *Sidebar) SelectConversation(id string) {
	for i, c := range s.conversations {
		if c.ID == id {
			s.selectedIdx = i
			return
		}
	}
}

// MarkUnread flags a conversation as having new activity.
func (s *Sidebar) MarkUnread(id string) {
	s.unread[id] = true
}

// ClearUnread removes the unread flag for a conversation.
func (s *Sidebar) ClearUnread(id string) {
	delete(s.unread, id)
}

// HasUnread reports whether a conversation is flagged unread.
func (s *Sidebar) HasUnread(id string) bool {
	return s.unread[id]
}

// Update handles messages
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		if s.selectedIdx > 0 {
			s.selectedIdx--
			s.ensureVisible()
		}
	case keys.Down, "j":
		if s.selectedIdx < len(s.conversations)-1 {
			s.selectedIdx++
			s.ensureVisible()
		}
	case keys.Home:
		s.selectedIdx = 0
		s.ensureVisible()
	case keys.End:
		if len(s.conversations) > 0 {
			s.selectedIdx = len(s.conversations) - 1
			s.ensureVisible()
		}
	}

	return s, nil
}

// ensureVisible adjusts the scroll offset so the cursor stays on screen
func (s *Sidebar) ensureVisible() {
	visibleHeight := GetViewContext().InnerHeight(s.height)
	if visibleHeight < 1 {
		return
	}
	if s.selectedIdx < s.scrollOffset {
		s.scrollOffset = s.selectedIdx
	} else if s.selectedIdx >= s.scrollOffset+visibleHeight {
		s.scrollOffset = s.selectedIdx - visibleHeight + 1
	}
}

// View renders the sidebar
func (s *Sidebar) View() string {
	vc := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := vc.InnerWidth(s.width)
	innerHeight := vc.InnerHeight(s.height)

	var content string
	if s.loading {
		content = StatusLoadingStyle.Render("Loading conversations...")
	} else if len(s.conversations) == 0 {
		content = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No conversations yet.")
	} else {
		var lines []string
		for i, c := range s.conversations {
			lines = append(lines, s.renderRow(c, i == s.selectedIdx, innerWidth))
		}

		// Clamp scroll and cut to the visible window
		if s.scrollOffset < 0 {
			s.scrollOffset = 0
		}
		maxScroll := len(lines) - innerHeight
		if maxScroll < 0 {
			maxScroll = 0
		}
		if s.scrollOffset > maxScroll {
			s.scrollOffset = maxScroll
		}
		if s.scrollOffset > 0 && s.scrollOffset < len(lines) {
			lines = lines[s.scrollOffset:]
		}
		if innerHeight > 0 && len(lines) > innerHeight {
			lines = lines[:innerHeight]
		}
		content = strings.Join(lines, "\n")
	}

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(s.width).Height(s.height).Render(content)
}

// renderRow builds a single conversation line: unread marker, counterparty,
// listing title, and a right-aligned relative timestamp.
func (s *Sidebar) renderRow(c api.Conversation, selected bool, innerWidth int) string {
	other := c.Other(s.currentUserID)
	timeText := formatRelativeTime(c.LastMessageAt, s.now())

	// Padding(0, 1) on the row style eats two columns
	textWidth := innerWidth - SidebarItemStyle.GetHorizontalPadding()

	marker := "  "
	if s.unread[c.ID] {
		marker = "● "
	}

	name := other.Username
	if c.Listing.Title != "" {
		name += " · " + c.Listing.Title
	}

	avail := textWidth - runewidth.StringWidth(marker) - runewidth.StringWidth(timeText) - 1
	if avail < 0 {
		avail = 0
	}
	name = runewidth.Truncate(name, avail, "…")

	gap := textWidth - runewidth.StringWidth(marker) - runewidth.StringWidth(name) - runewidth.StringWidth(timeText)
	if gap < 1 {
		gap = 1
	}

	if selected {
		return SidebarSelectedStyle.Width(innerWidth).
			Render(marker + name + strings.Repeat(" ", gap) + timeText)
	}

	var row strings.Builder
	if s.unread[c.ID] {
		row.WriteString(lipgloss.NewStyle().Foreground(ColorPrimary).Render("●") + " ")
	} else {
		row.WriteString(marker)
	}
	row.WriteString(ChatMessageStyle.Render(name))
	row.WriteString(strings.Repeat(" ", gap))
	row.WriteString(SidebarTimeStyle.Render(timeText))
	return SidebarItemStyle.Width(innerWidth).Render(row.String())
}

// formatRelativeTime renders a timestamp as a compact age ("3m", "2h", "5d").
// Zero times render as empty.
func formatRelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
