package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/troc-app/troc/internal/api"
	"github.com/troc-app/troc/internal/keys"
)

// Chat represents the right panel with the message thread and composer
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool

	messages        []api.Message
	currentUserID   string
	counterparty    string
	hasConversation bool
	loading         bool
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Type your message..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	vc := GetViewContext()

	// Chat panel height (excluding input area which is separate)
	chatPanelHeight := height - InputTotalHeight

	innerWidth := vc.InnerWidth(width)
	viewportHeight := vc.InnerHeight(chatPanelHeight)
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)

	// Input width accounts for its own border AND padding
	c.input.SetWidth(vc.InnerWidth(width) - InputPaddingWidth)

	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetCurrentUser sets the logged-in user id, used to label own messages.
func (c *Chat) SetCurrentUser(userID string) {
	c.currentUserID = userID
}

// SetConversation switches the panel to a conversation. The thread starts
// empty with the loading placeholder until SetMessages is called.
func (c *Chat) SetConversation(counterparty string) {
	c.counterparty = counterparty
	c.hasConversation = true
	c.loading = true
	c.messages = nil
	c.updateContent()
}

// ClearConversation returns the panel to the no-conversation placeholder
func (c *Chat) ClearConversation() {
	c.counterparty = ""
	c.hasConversation = false
	c.loading = false
	c.messages = nil
	c.updateContent()
}

// HasConversation returns whether a conversation is on screen
func (c *Chat) HasConversation() bool {
	return c.hasConversation
}

// SetMessages replaces the thread contents
func (c *Chat) SetMessages(messages []api.Message) {
	c.messages = messages
	c.loading = false
	c.updateContent()
}

// SetLoading sets the loading placeholder state
func (c *Chat) SetLoading(loading bool) {
	c.loading = loading
	c.updateContent()
}

// GetInput returns the current composer text, trimmed
func (c *Chat) GetInput() string {
	return strings.TrimSpace(c.input.Value())
}

// RawInput returns the composer text without trimming
func (c *Chat) RawInput() string {
	return c.input.Value()
}

// ClearInput clears the composer
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput sets the composer value
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// renderNoConversationMessage renders the placeholder when nothing is selected
func (c *Chat) renderNoConversationMessage() string {
	msgStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	var sb strings.Builder
	sb.WriteString(msgStyle.Italic(true).Render("No conversation selected"))
	sb.WriteString("\n\n")
	sb.WriteString(msgStyle.Render("  • Use "))
	sb.WriteString(keyStyle.Render("↑/↓"))
	sb.WriteString(msgStyle.Render(" and "))
	sb.WriteString(keyStyle.Render("enter"))
	sb.WriteString(msgStyle.Render(" to open a conversation"))
	sb.WriteString("\n")
	sb.WriteString(msgStyle.Render("  • Press "))
	sb.WriteString(keyStyle.Render("n"))
	sb.WriteString(msgStyle.Render(" to message a seller about a listing"))
	return sb.String()
}

func (c *Chat) updateContent() {
	var sb strings.Builder

	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}
	bodyStyle := ChatMessageStyle.Width(wrapWidth)

	if !c.hasConversation {
		sb.WriteString(c.renderNoConversationMessage())
	} else if c.loading {
		sb.WriteString(StatusLoadingStyle.Render("Loading messages..."))
	} else if len(c.messages) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No messages yet. Say hello!"))
	} else {
		for i, msg := range c.messages {
			if i > 0 {
				sb.WriteString("\n\n")
			}

			var nameStyle lipgloss.Style
			var name string
			if msg.Sender.ID == c.currentUserID {
				nameStyle = ChatSelfStyle
				name = "You"
			} else {
				nameStyle = ChatOtherStyle
				name = msg.Sender.Username
			}

			sb.WriteString(nameStyle.Render(name + ":"))
			if msg.Pending {
				sb.WriteString(" " + ChatPendingStyle.Render("(sending...)"))
			}
			sb.WriteString("\n")
			sb.WriteString(bodyStyle.Render(strings.TrimSpace(msg.Content)))
		}
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	if c.focused && c.hasConversation {
		// Check if this is a scroll key before sending to input
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case keys.PgUp, keys.PgDown, keys.CtrlUp, keys.CtrlDown,
				keys.Home, keys.End, keys.CtrlU, keys.CtrlD:
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				cmds = append(cmds, cmd)
				return c, tea.Batch(cmds...)
			}
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)

		// Don't pass other key events to viewport when input is focused.
		// This prevents spacebar/arrows from scrolling while typing.
		if _, isKey := msg.(tea.KeyPressMsg); isKey {
			return c, tea.Batch(cmds...)
		}
	}

	// Update viewport for scrolling (non-key events, or when not focused)
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	if !c.hasConversation {
		// No conversation: just show the panel with placeholder
		return panelStyle.Width(c.width).Height(c.height).Render(c.renderNoConversationMessage())
	}

	// With conversation: thread panel + input area below it
	chatPanelHeight := c.height - InputTotalHeight
	chatPanel := panelStyle.Width(c.width).Height(chatPanelHeight).Render(c.viewport.View())

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
