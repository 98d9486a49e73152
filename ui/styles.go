package ui

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI Dracula palette
var (
	DraculaForeground = lipgloss.AdaptiveColor{Light: "255", Dark: "255"}
	DraculaPurple     = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "14", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "10", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
	DraculaOrange     = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	DraculaRed        = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}

	TitleStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Padding(0, 1)

	// Filter bar
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	LabelStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	SliderFillStyle = lipgloss.NewStyle().
			Foreground(DraculaPurple)
	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(DraculaComment)
	PriceLabelStyle = lipgloss.NewStyle().
			Foreground(DraculaGreen).
			Bold(true)

	// Cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DraculaComment).
			Padding(0, 1)
	SelectedCardStyle = CardStyle.
				BorderForeground(DraculaPink)
	CardTitleStyle = lipgloss.NewStyle().
			Foreground(DraculaCyan).
			Bold(true)
	CardImageStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Italic(true)
	CardPriceStyle = lipgloss.NewStyle().
			Foreground(DraculaGreen)

	// Page controls
	PageButtonStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Padding(0, 1)
	ActivePageButtonStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true).
				Underline(true).
				Padding(0, 1)

	// Detail view styles
	DetailTitleStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(DraculaCyan).
				Bold(true)
	BackButtonStyle = lipgloss.NewStyle().
			Foreground(DraculaOrange).
			Border(lipgloss.NormalBorder()).
			BorderForeground(DraculaOrange).
			Padding(0, 1)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(DraculaRed)
	EmptyStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Italic(true)

	AlertStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(DraculaRed).
			Foreground(DraculaForeground).
			Padding(0, 2)
)
