package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorSpecial   = lipgloss.Color("208")
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1)

	helpStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	modeStyle    = lipgloss.NewStyle().Foreground(colorSpecial)

	// Карточки в списке
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1).
			Width(44)
	selectedCardStyle = cardStyle.
				BorderForeground(colorHighlight)
	nicknameStyle = lipgloss.NewStyle().Bold(true)
	networkStyle  = lipgloss.NewStyle().Foreground(colorHighlight)

	focusedInputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorError).
			Padding(1, 2).
			Width(40)
)
