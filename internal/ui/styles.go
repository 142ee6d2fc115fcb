package ui

import "charm.land/lipgloss/v2"

// Hex values kept as strings for gradient interpolation in the header
const (
	hexPrimary = "#D97706"
	hexBg      = "#1F2937"
)

// Color palette - Amber + Teal theme
var (
	ColorPrimary     = lipgloss.Color(hexPrimary) // Amber
	ColorSecondary   = lipgloss.Color("#0D9488") // Teal
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#D97706") // Amber when focused
	ColorBg          = lipgloss.Color(hexBg)     // Dark background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#B0B8C4") // Muted text
	ColorSelf        = lipgloss.Color("#FBBF24") // Light amber for own messages
	ColorOther       = lipgloss.Color("#2DD4BF") // Bright teal for the other party
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber for warnings
	ColorError       = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess     = lipgloss.Color("#10B981") // Green for success
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)
)

// Sidebar styles
var (
	SidebarItemStyle = lipgloss.NewStyle().
				Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#3B3266")).
				Foreground(ColorText).
				Bold(true).
				Padding(0, 1)

	SidebarListingStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	SidebarTimeStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)
)

// Chat styles
var (
	ChatSelfStyle = lipgloss.NewStyle().
			Foreground(ColorSelf).
			Bold(true)

	ChatOtherStyle = lipgloss.NewStyle().
			Foreground(ColorOther).
			Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	ChatPendingStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)

	ChatInputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus).
				Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1)
)

// Status styles
var (
	StatusLoadingStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Flash styles by severity
var (
	FlashInfoStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	FlashSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	FlashWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	FlashErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)
