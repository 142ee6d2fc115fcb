// Package ui provides the user interface components for the troc TUI.
//
// # Overview
//
// The ui package implements the visual components of troc using the Bubble Tea
// framework and Lipgloss styling library. It follows the Model-Update-View
// pattern established by Bubble Tea.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│                 │                                   │
//	│   Sidebar       │         Chat Panel                │
//	│   (1/3 width)   │         (2/3 width)               │
//	│                 │                                   │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Header: Displays the application title and, when a conversation is open,
// the counterparty and listing title. Uses a gradient background.
//
// Footer: Shows context-aware keyboard shortcuts, or a flash message when
// one is active. Flashes auto-dismiss via FlashTick.
//
// Sidebar: Lists conversations in the exact order the backend returned them,
// with counterparty, listing title, relative age, and an unread marker.
// Supports selection with keyboard navigation (j/k or arrow keys).
//
// Chat: The main thread panel showing message history and the composer.
// Includes a viewport for scrolling through messages and a textarea for
// input. Optimistic sends render with a "(sending...)" marker.
//
// Modal: Popup dialog for starting a conversation from a listing.
//
// # Focus System
//
// The application has two focus states:
//   - sidebar focused: keyboard controls conversation navigation
//   - chat focused: keyboard input goes to the composer textarea
//
// Tab toggles between focus states. The 'q' key only quits when the sidebar
// is focused (to allow typing 'q' in the composer).
package ui
