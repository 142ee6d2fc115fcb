package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/troc-app/troc/internal/keys"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// =============================================================================
// StartConversationState - State for the Message Seller modal
// =============================================================================

// StartConversationState collects a listing id and an opening message for a
// new conversation. Focus 0 is the listing input, focus 1 the message.
type StartConversationState struct {
	ListingInput textinput.Model
	MessageInput textarea.Model
	Focus        int
}

func (*StartConversationState) modalState() {}

func (s *StartConversationState) Title() string { return "Message Seller" }

func (s *StartConversationState) Help() string {
	return "Tab: next field  Enter: send  Esc: cancel"
}

func (s *StartConversationState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	listingLabel := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("Listing id:")
	listingView := s.fieldStyle(0).Render(s.ListingInput.View())

	messageLabel := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1).
		Render("Message:")
	messageView := s.fieldStyle(1).Render(s.MessageInput.View())

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, listingLabel, listingView, messageLabel, messageView, help)
}

// fieldStyle marks the focused field with a left border
func (s *StartConversationState) fieldStyle(focus int) lipgloss.Style {
	if s.Focus == focus {
		return lipgloss.NewStyle().
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorPrimary).
			PaddingLeft(1)
	}
	return lipgloss.NewStyle().PaddingLeft(2)
}

func (s *StartConversationState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Tab:
			if s.Focus == 0 {
				s.Focus = 1
				s.ListingInput.Blur()
				return s, s.MessageInput.Focus()
			}
			s.Focus = 0
			s.MessageInput.Blur()
			return s, s.ListingInput.Focus()
		case keys.ShiftTab:
			if s.Focus == 1 {
				s.Focus = 0
				s.MessageInput.Blur()
				return s, s.ListingInput.Focus()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	if s.Focus == 0 {
		s.ListingInput, cmd = s.ListingInput.Update(msg)
	} else {
		s.MessageInput, cmd = s.MessageInput.Update(msg)
	}
	return s, cmd
}

// GetListingID returns the entered listing id, trimmed
func (s *StartConversationState) GetListingID() string {
	return strings.TrimSpace(s.ListingInput.Value())
}

// GetMessage returns the entered opening message, trimmed
func (s *StartConversationState) GetMessage() string {
	return strings.TrimSpace(s.MessageInput.Value())
}

// NewStartConversationState creates the Message Seller modal state with the
// listing field focused. listingID may be empty; when set it pre-fills the
// field and focuses the message instead.
func NewStartConversationState(listingID string) *StartConversationState {
	li := textinput.New()
	li.Placeholder = "listing id"
	li.CharLimit = ModalInputCharLimit
	li.SetWidth(ModalInputWidth)

	mi := textarea.New()
	mi.Placeholder = "Hi! Is this still available?"
	mi.CharLimit = 0
	mi.SetHeight(TextareaHeight)
	mi.ShowLineNumbers = false
	mi.Prompt = ""
	mi.SetWidth(ModalInputWidth)

	s := &StartConversationState{ListingInput: li, MessageInput: mi}
	if listingID != "" {
		s.ListingInput.SetValue(listingID)
		s.Focus = 1
		s.MessageInput.Focus()
	} else {
		s.ListingInput.Focus()
	}
	return s
}
