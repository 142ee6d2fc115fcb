package ui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/troc-app/troc/internal/api"
)

func testConversations() []api.Conversation {
	me := api.User{ID: "user-1", Username: "marie"}
	return []api.Conversation{
		{
			ID:           "conv-1",
			Participants: []api.User{me, {ID: "user-2", Username: "paul"}},
			Listing:      api.ListingRef{ID: "listing-1", Title: "Oak table"},
		},
		{
			ID:           "conv-2",
			Participants: []api.User{me, {ID: "user-3", Username: "nina"}},
			Listing:      api.ListingRef{ID: "listing-2", Title: "Road bike"},
		},
		{
			ID:           "conv-3",
			Participants: []api.User{me, {ID: "user-4", Username: "tom"}},
			Listing:      api.ListingRef{ID: "listing-3", Title: "Bookshelf"},
		},
	}
}

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	default:
		return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
	}
}

func TestNewSidebar(t *testing.T) {
	sidebar := NewSidebar()

	if sidebar == nil {
		t.Fatal("NewSidebar() returned nil")
	}

	if sidebar.selectedIdx != 0 {
		t.Errorf("Expected selectedIdx 0, got %d", sidebar.selectedIdx)
	}

	if sidebar.unread == nil {
		t.Error("unread map should be initialized")
	}
}

func TestSidebar_SetSize(t *testing.T) {
	sidebar := NewSidebar()

	sidebar.SetSize(40, 24)

	if sidebar.width != 40 {
		t.Errorf("Expected width 40, got %d", sidebar.width)
	}

	if sidebar.Width() != 40 {
		t.Errorf("Width() should return 40, got %d", sidebar.Width())
	}
}

func TestSidebar_FocusState(t *testing.T) {
	sidebar := NewSidebar()

	if sidebar.IsFocused() {
		t.Error("Should not be focused initially")
	}

	sidebar.SetFocused(true)
	if !sidebar.IsFocused() {
		t.Error("Should be focused after SetFocused(true)")
	}
}

func TestSidebar_SetConversations_OrderPreserved(t *testing.T) {
	sidebar := NewSidebar()
	sidebar.SetCurrentUser("user-1")
	sidebar.SetConversations(testConversations())

	got := sidebar.Conversations()
	want := []string{"conv-1", "conv-2", "conv-3"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Conversation %d = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestSidebar_SetConversations_KeepsSelectionByID(t *testing.T) {
	sidebar := NewSidebar()
	sidebar.SetConversations(testConversations())
	sidebar.SelectConversation("conv-3")

	// New list with conv-3 in a different position
	reordered := testConversations()
	reordered[0], reordered[2] = reordered[2], reordered[0]
	sidebar.SetConversations(reordered)

	sel := sidebar.SelectedConversation()
	if sel == nil || sel.ID != "conv-3" {
		t.Errorf("Selection should follow conv-3 across a reorder, got %v", sel)
	}
}

func TestSidebar_SetConversations_ClampsCursor(t *testing.T) {
	sidebar := NewSidebar()
	sidebar.SetConversations(testConversations())
	sidebar.SelectConversation("conv-3")

	sidebar.SetConversations(testConversations()[:1])

	sel := sidebar.SelectedConversation()
	if sel == nil || sel.ID != "conv-1" {
		t.Errorf("Cursor should clamp to the shorter list, got %v", sel)
	}
}

func TestSidebar_Navigation(t *testing.T) {
	sidebar := NewSidebar()
	sidebar.SetSize(40, 24)
	sidebar.SetFocused(true)
	sidebar.SetConversations(testConversations())

	sidebar.Update(keyPress("down"))
	if sel := sidebar.SelectedConversation(); sel == nil || sel.ID != "conv-2" {
		t.Errorf("After down, selection = %v, want conv-2", sel)
	}

	sidebar.Update(keyPress("j"))
	if sel := sidebar.SelectedConversation(); sel == nil || sel.ID != "conv-3" {
		t.Errorf("After j, selection = %v, want conv-3", sel)
	}

	// Down at the bottom stays put
	sidebar.Update(keyPress("down"))
	if sel := sidebar.SelectedConversation(); sel == nil || sel.ID != "conv-3" {
		t.Errorf("Down at bottom moved selection to %v", sel)
	}

	sidebar.Update(keyPress("k"))
	sidebar.Update(keyPress("up"))
	if sel := sidebar.SelectedConversation(); sel == nil || sel.ID != "conv-1" {
		t.Errorf("After k+up, selection = %v, want conv-1", sel)
	}
}

func TestSidebar_IgnoresKeysWhenUnfocused(t *testing.T) {
	sidebar := NewSidebar()
	sidebar.SetConversations(testConversations())

	sidebar.Update(keyPress("down"))
	if sel := sidebar.SelectedConversation(); sel == nil || sel.ID != "conv-1" {
		t.Errorf("Unfocused sidebar moved selection to %v", sel)
	}
}

func TestSidebar_UnreadFlags(t *testing.T) {
	sidebar := NewSidebar()
	sidebar.SetConversations(testConversations())

	sidebar.MarkUnread("conv-2")
	if !sidebar.HasUnread("conv-2") {
		t.Error("conv-2 should be unread")
	}

	sidebar.ClearUnread("conv-2")
	if sidebar.HasUnread("conv-2") {
		t.Error("conv-2 should be read after ClearUnread")
	}
}

func TestSidebar_View(t *testing.T) {
	sidebar := NewSidebar()
	sidebar.SetSize(40, 24)
	sidebar.SetCurrentUser("user-1")
	sidebar.SetConversations(testConversations())

	view := sidebar.View()

	for _, want := range []string{"paul", "nina", "tom"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain counterparty %q", want)
		}
	}
	if strings.Contains(view, "marie") {
		t.Error("View should not show the logged-in user as counterparty")
	}
}

func TestSidebar_ViewLoading(t *testing.T) {
	sidebar := NewSidebar()
	sidebar.SetSize(40, 24)
	sidebar.SetLoading(true)

	if !strings.Contains(sidebar.View(), "Loading conversations") {
		t.Error("Loading sidebar should show the loading placeholder")
	}
}

func TestSidebar_ViewEmpty(t *testing.T) {
	sidebar := NewSidebar()
	sidebar.SetSize(40, 24)

	if !strings.Contains(sidebar.View(), "No conversations") {
		t.Error("Empty sidebar should show the empty placeholder")
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero time", time.Time{}, ""},
		{"seconds ago", now.Add(-30 * time.Second), "now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5m"},
		{"hours ago", now.Add(-3 * time.Hour), "3h"},
		{"days ago", now.Add(-49 * time.Hour), "2d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRelativeTime(tt.t, now); got != tt.want {
				t.Errorf("formatRelativeTime() = %q, want %q", got, tt.want)
			}
		})
	}
}
