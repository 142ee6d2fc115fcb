package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// FlashType indicates the severity of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashTickMsg is sent when a flash message should be dismissed
type FlashTickMsg time.Time

// FlashTick returns a command that fires after the flash display duration
func FlashTick() tea.Cmd {
	return tea.Tick(FlashDurationSeconds*time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings.
// A flash message, when set, takes over the whole bar until dismissed.
type Footer struct {
	width           int
	hasConversation bool // Whether a conversation is selected
	sidebarFocused  bool // Whether sidebar has focus
	sending         bool // Whether a send is in flight

	flashText string
	flashType FlashType
	hasFlash  bool
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(hasConversation, sidebarFocused, sending bool) {
	f.hasConversation = hasConversation
	f.sidebarFocused = sidebarFocused
	f.sending = sending
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash sets a flash message that replaces the keybinding bar
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flashText = text
	f.flashType = flashType
	f.hasFlash = true
}

// ClearFlash removes the current flash message
func (f *Footer) ClearFlash() {
	f.flashText = ""
	f.hasFlash = false
}

// HasFlash returns whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.hasFlash
}

// flashStyle returns the style for the current flash severity
func (f *Footer) flashStyle() lipgloss.Style {
	switch f.flashType {
	case FlashSuccess:
		return FlashSuccessStyle
	case FlashWarning:
		return FlashWarningStyle
	case FlashError:
		return FlashErrorStyle
	default:
		return FlashInfoStyle
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.hasFlash {
		return FooterStyle.Width(f.width).Render(f.flashStyle().Render(f.flashText))
	}

	var bindings []KeyBinding
	switch {
	case f.sidebarFocused:
		bindings = []KeyBinding{
			{Key: "↑/↓/j/k", Desc: "navigate"},
			{Key: "enter", Desc: "open"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "n", Desc: "new conversation"},
			{Key: "r", Desc: "refresh"},
			{Key: "q", Desc: "quit"},
		}
	case f.sending:
		bindings = []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
			{Key: "pgup/dn", Desc: "scroll"},
		}
	case f.hasConversation:
		bindings = []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "esc", Desc: "back"},
		}
	default:
		bindings = []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
		}
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
