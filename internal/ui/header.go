package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Header represents the top header bar
type Header struct {
	width        int
	counterparty string
	listingTitle string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetConversation sets the selected conversation's counterparty and listing
// title to display on the right side of the header.
func (h *Header) SetConversation(counterparty, listingTitle string) {
	h.counterparty = counterparty
	h.listingTitle = listingTitle
}

// ClearConversation removes the conversation info from the header.
func (h *Header) ClearConversation() {
	h.counterparty = ""
	h.listingTitle = ""
}

// View renders the header
func (h *Header) View() string {
	// Build the content string (without styling)
	titleText := " troc"
	var rightText string
	if h.counterparty != "" {
		rightText = h.counterparty
		if h.listingTitle != "" {
			rightText += " (" + h.listingTitle + ")"
		}
		rightText += " "
	}

	// Calculate padding by display width, not byte count
	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent, h.listingTitle)
}

// parseHexColor parses a hex color string (e.g., "#D97706") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a gradient background fading from
// the primary color into the main background. listingTitle identifies the
// portion of the text rendered muted.
func (h *Header) renderGradient(content string, listingTitle string) string {
	if len(content) == 0 {
		return ""
	}

	startR, startG, startB := parseHexColor(hexPrimary)
	endR, endG, endB := parseHexColor(hexBg)

	textColor := ColorText
	mutedColor := ColorTextMuted

	// Find where the listing title portion starts (if present)
	listingStart := -1
	if listingTitle != "" {
		listingMarker := "(" + listingTitle + ")"
		listingStart = strings.Index(content, listingMarker)
	}

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		// Interpolation factor (0.0 to 1.0)
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		inListing := listingStart >= 0 && i >= listingStart

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < 5) // Bold for the "troc" title

		if inListing {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
