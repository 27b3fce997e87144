package day

import (
	"github.com/charmbracelet/lipgloss"

	"notedays/internal/tui/theme"
)

var (
	titleStyle     = theme.Title
	dateKeyStyle   = theme.Subtitle
	emptyStyle     = lipgloss.NewStyle().Foreground(theme.TextMuted).Italic(true)
	countStyle     = theme.Muted
	searchLabel    = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	cursorStyle    = theme.Cursor
	selectedStyle  = theme.SelectedBg.Bold(true)
	importantStyle = theme.Important
	doneStyle      = theme.Done
	handleStyle    = theme.Handle
	draggingStyle  = theme.Dragging
	flashStyle     = theme.Flash
	messageStyle   = theme.Ok
	errorStyle     = theme.Error
	hintStyle      = theme.HelpHint
)

var (
	inputBoxStyle        = theme.InputBox
	inputBoxFocusedStyle = theme.InputBoxFocused
)
