package shared

import (
	"github.com/charmbracelet/lipgloss"

	"notedays/internal/tui/theme"
)

var (
	DatePickerBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.BorderFocused).
				Padding(1, 2).
				Width(50)

	DatePickerTitleStyle = theme.ModalTitle.Align(lipgloss.Center)

	DatePickerMonthStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(theme.Accent).
				Align(lipgloss.Center)

	DatePickerDayHeaderStyle = lipgloss.NewStyle().
					Foreground(theme.TextMuted).
					Bold(true)

	DatePickerDayStyle = lipgloss.NewStyle().Foreground(theme.Text)

	DatePickerTodayStyle = lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true)

	// Days that already have a stored list
	DatePickerMarkedStyle = lipgloss.NewStyle().
				Foreground(theme.Warning).
				Underline(true)

	DatePickerCursorStyle = lipgloss.NewStyle().
				Background(theme.Warning).
				Foreground(lipgloss.Color("0")).
				Bold(true)

	DatePickerErrorStyle = theme.Error

	DatePickerExamplesStyle = lipgloss.NewStyle().
				Foreground(theme.TextMuted).
				Italic(true)

	DatePickerHelpStyle = theme.ModalHelp
)
