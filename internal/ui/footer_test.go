package ui

import (
	"strings"
	"testing"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if footer == nil {
		t.Fatal("NewFooter() returned nil")
	}

	if footer.HasFlash() {
		t.Error("Expected no flash message initially")
	}
}

func TestFooter_SetWidth(t *testing.T) {
	footer := NewFooter()

	footer.SetWidth(120)

	if footer.width != 120 {
		t.Errorf("Expected width 120, got %d", footer.width)
	}
}

func TestFooter_SetFlash(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Connection failed - check your network and retry", FlashError)

	if !footer.HasFlash() {
		t.Fatal("Expected flash message to be set")
	}

	if footer.flashText != "Connection failed - check your network and retry" {
		t.Errorf("Unexpected flash text %q", footer.flashText)
	}

	if footer.flashType != FlashError {
		t.Errorf("Expected type FlashError, got %v", footer.flashType)
	}
}

func TestFooter_ClearFlash(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Test message", FlashInfo)
	if !footer.HasFlash() {
		t.Error("Expected HasFlash() to return true")
	}

	footer.ClearFlash()
	if footer.HasFlash() {
		t.Error("Expected HasFlash() to return false after ClearFlash()")
	}
}

func TestFooter_FlashReplacesBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(true, false, false)

	footer.SetFlash("Message sent", FlashSuccess)
	view := footer.View()

	if !strings.Contains(view, "Message sent") {
		t.Error("Flash text should be rendered")
	}
	if strings.Contains(view, "send") && strings.Contains(view, "switch pane") {
		t.Error("Keybindings should not be rendered while a flash is showing")
	}
}

func TestFooter_SidebarBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(false, true, false)

	view := footer.View()

	for _, want := range []string{"navigate", "new conversation", "refresh", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("Sidebar-focused footer should mention %q", want)
		}
	}
}

func TestFooter_ChatBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(true, false, false)

	view := footer.View()

	if !strings.Contains(view, "send") {
		t.Error("Chat-focused footer should mention send")
	}
	if strings.Contains(view, "quit") {
		t.Error("Chat-focused footer should not offer quit")
	}
}

func TestFooter_SendingBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(true, false, true)

	view := footer.View()

	if strings.Contains(view, "send") {
		t.Error("Footer should not offer send while a send is in flight")
	}
	if !strings.Contains(view, "scroll") {
		t.Error("Footer should still offer scrolling while sending")
	}
}
