// Package ui provides the visual styling for the echomart terminal
// storefront, with light/dark mode support.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette, matching the original storefront chrome.
var (
	// Light mode
	LightBackground = lipgloss.Color("#f9fafb") // near-white
	LightForeground = lipgloss.Color("#1f2937") // gray-800
	LightPrimary    = lipgloss.Color("#2563eb") // blue-600
	LightAccent     = lipgloss.Color("#3b82f6") // blue-500
	LightMuted      = lipgloss.Color("#6b7280") // gray-500
	LightBorder     = lipgloss.Color("#d1d5db") // gray-300
	LightCard       = lipgloss.Color("#ffffff")

	// Dark mode
	DarkBackground = lipgloss.Color("#111827") // gray-900
	DarkForeground = lipgloss.Color("#f3f4f6") // gray-100
	DarkPrimary    = lipgloss.Color("#60a5fa") // blue-400
	DarkAccent     = lipgloss.Color("#3b82f6") // blue-500
	DarkMuted      = lipgloss.Color("#9ca3af") // gray-400
	DarkBorder     = lipgloss.Color("#374151") // gray-700
	DarkCard       = lipgloss.Color("#1f2937") // gray-800

	// Semantic colors, same in both modes
	Danger  = lipgloss.Color("#ef4444") // red-500, badge and remove controls
	Success = lipgloss.Color("#22c55e") // green-500, buy-now control
	Warning = lipgloss.Color("#f59e0b") // amber-500
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeFor selects the theme for the configured mode.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style
	Sidebar lipgloss.Style

	// Text
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Product cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Price        lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Notice  lipgloss.Style
	Badge   lipgloss.Style

	// Chat
	BotBubble  lipgloss.Style
	UserBubble lipgloss.Style

	// Interactive
	Prompt lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Padding(0, 1).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Sidebar: lipgloss.NewStyle().
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		Price: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true),

		Notice: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(Danger).
			Padding(0, 1).
			Bold(true),

		BotBubble: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Card).
			Padding(0, 1),

		UserBubble: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Border).
			Padding(0, 1).
			Align(lipgloss.Right),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),
	}
}
