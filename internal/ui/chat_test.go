package ui

import (
	"strings"
	"testing"

	"github.com/troc-app/troc/internal/api"
)

func testMessages() []api.Message {
	return []api.Message{
		{
			ID:             "msg-1",
			ConversationID: "conv-1",
			Sender:         api.User{ID: "user-2", Username: "paul"},
			Content:        "Is the table still available?",
		},
		{
			ID:             "msg-2",
			ConversationID: "conv-1",
			Sender:         api.User{ID: "user-1", Username: "marie"},
			Content:        "Yes, it is!",
		},
	}
}

func TestNewChat(t *testing.T) {
	chat := NewChat()

	if chat == nil {
		t.Fatal("NewChat() returned nil")
	}

	if chat.HasConversation() {
		t.Error("New chat should have no conversation")
	}
}

func TestChat_FocusState(t *testing.T) {
	chat := NewChat()

	if chat.IsFocused() {
		t.Error("Should not be focused initially")
	}

	chat.SetFocused(true)
	if !chat.IsFocused() {
		t.Error("Should be focused after SetFocused(true)")
	}

	chat.SetFocused(false)
	if chat.IsFocused() {
		t.Error("Should not be focused after SetFocused(false)")
	}
}

func TestChat_SetConversation(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 24)

	chat.SetConversation("paul")

	if !chat.HasConversation() {
		t.Error("HasConversation() should be true")
	}
	if !chat.loading {
		t.Error("Switching conversations should enter the loading state")
	}
	if len(chat.messages) != 0 {
		t.Error("Switching conversations should clear the previous thread")
	}
}

func TestChat_ClearConversation(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 24)
	chat.SetConversation("paul")
	chat.SetMessages(testMessages())

	chat.ClearConversation()

	if chat.HasConversation() {
		t.Error("HasConversation() should be false after clear")
	}
	if !strings.Contains(chat.View(), "No conversation selected") {
		t.Error("Cleared chat should show the placeholder")
	}
}

func TestChat_RendersMessages(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 24)
	chat.SetCurrentUser("user-1")
	chat.SetConversation("paul")
	chat.SetMessages(testMessages())

	view := chat.View()

	if !strings.Contains(view, "paul:") {
		t.Error("Other party's messages should be labeled with their username")
	}
	if !strings.Contains(view, "You:") {
		t.Error("Own messages should be labeled You")
	}
	if !strings.Contains(view, "still available") {
		t.Error("Message content should be rendered")
	}
}

func TestChat_RendersMessagesInGivenOrder(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 24)
	chat.SetCurrentUser("user-1")
	chat.SetConversation("paul")
	chat.SetMessages(testMessages())

	view := chat.View()
	first := strings.Index(view, "still available")
	second := strings.Index(view, "Yes, it is")
	if first == -1 || second == -1 || first > second {
		t.Error("Messages should render in the order given, oldest first")
	}
}

func TestChat_PendingMarker(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 24)
	chat.SetCurrentUser("user-1")
	chat.SetConversation("paul")

	msgs := testMessages()
	msgs = append(msgs, api.Message{
		LocalID:        "local-abc",
		ConversationID: "conv-1",
		Sender:         api.User{ID: "user-1", Username: "marie"},
		Content:        "One more thing",
		Pending:        true,
	})
	chat.SetMessages(msgs)

	if !strings.Contains(chat.View(), "(sending...)") {
		t.Error("Pending messages should render the sending marker")
	}
}

func TestChat_LoadingPlaceholder(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 24)
	chat.SetConversation("paul")

	if !strings.Contains(chat.View(), "Loading messages") {
		t.Error("Loading thread should show the loading placeholder")
	}
}

func TestChat_EmptyThreadPlaceholder(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 24)
	chat.SetConversation("paul")
	chat.SetMessages(nil)

	if !strings.Contains(chat.View(), "No messages yet") {
		t.Error("Empty thread should show the empty placeholder")
	}
}

func TestChat_Input(t *testing.T) {
	chat := NewChat()

	chat.SetInput("  hello there  ")

	if chat.GetInput() != "hello there" {
		t.Errorf("GetInput() = %q, want trimmed value", chat.GetInput())
	}
	if chat.RawInput() != "  hello there  " {
		t.Errorf("RawInput() = %q, want untrimmed value", chat.RawInput())
	}

	chat.ClearInput()
	if chat.GetInput() != "" {
		t.Error("Input should be empty after ClearInput()")
	}
}
