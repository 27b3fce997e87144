package shared

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type datePickerMode int

const (
	calendarMode datePickerMode = iota
	textInputMode
)

// DatePickedMsg is sent when the user confirms a date.
type DatePickedMsg struct {
	Date time.Time
}

// DatePickerCancelledMsg is sent when the picker is dismissed.
type DatePickerCancelledMsg struct{}

type DatePickerModel struct {
	mode       datePickerMode
	cursorDate time.Time // The date under cursor in calendar
	viewMonth  time.Time // The month being viewed
	marked     map[string]bool
	textInput  textinput.Model
	err        string
	width      int
	height     int
	title      string
}

// NewDatePickerModel opens the calendar on current. Dates in marked
// (keyed YYYY-MM-DD) are highlighted as having notes.
func NewDatePickerModel(current time.Time, title string, marked map[string]bool) DatePickerModel {
	viewMonth := time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, time.Local)

	ti := textinput.New()
	ti.Placeholder = "2026-03-15, +5, tomorrow"
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 30
	ti.SetValue(current.Format("2006-01-02"))

	if marked == nil {
		marked = map[string]bool{}
	}

	return DatePickerModel{
		mode:       calendarMode,
		cursorDate: current,
		viewMonth:  viewMonth,
		marked:     marked,
		textInput:  ti,
		title:      title,
	}
}

func (m DatePickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// IsTyping reports whether keystrokes are going to the text input.
func (m DatePickerModel) IsTyping() bool {
	return m.mode == textInputMode
}

func (m DatePickerModel) Update(msg tea.KeyMsg) (DatePickerModel, tea.Cmd) {
	if m.mode == textInputMode {
		return m.updateTextInput(msg)
	}
	return m.updateCalendar(msg)
}

func (m DatePickerModel) updateCalendar(msg tea.KeyMsg) (DatePickerModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return DatePickerCancelledMsg{} }
	case "enter":
		picked := m.cursorDate
		return m, func() tea.Msg { return DatePickedMsg{Date: picked} }
	case "i":
		m.mode = textInputMode
		m.err = ""
		return m, textinput.Blink
	case "t":
		m.cursorDate = time.Now()
		m.ensureCursorInView()
	case "h", "left":
		m.cursorDate = m.cursorDate.AddDate(0, 0, -1)
		m.ensureCursorInView()
	case "l", "right":
		m.cursorDate = m.cursorDate.AddDate(0, 0, 1)
		m.ensureCursorInView()
	case "k", "up":
		m.cursorDate = m.cursorDate.AddDate(0, 0, -7)
		m.ensureCursorInView()
	case "j", "down":
		m.cursorDate = m.cursorDate.AddDate(0, 0, 7)
		m.ensureCursorInView()
	case "-", "H":
		m.cursorDate = m.cursorDate.AddDate(0, -1, 0)
		m.ensureCursorInView()
	case "+", "=", "L":
		m.cursorDate = m.cursorDate.AddDate(0, 1, 0)
		m.ensureCursorInView()
	}

	return m, nil
}

func (m DatePickerModel) updateTextInput(msg tea.KeyMsg) (DatePickerModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = calendarMode
		m.err = ""
		return m, nil
	case "enter":
		parsed, err := ParseDateInput(m.textInput.Value(), time.Now())
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return DatePickedMsg{Date: parsed} }
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.err = ""
	return m, cmd
}

func (m *DatePickerModel) ensureCursorInView() {
	if m.cursorDate.Year() != m.viewMonth.Year() || m.cursorDate.Month() != m.viewMonth.Month() {
		m.viewMonth = time.Date(m.cursorDate.Year(), m.cursorDate.Month(), 1, 0, 0, 0, 0, time.Local)
	}
}

// ParseDateInput accepts 2026-03-15, 03-15, +N, -N, today and tomorrow,
// resolving relative forms against now.
func ParseDateInput(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	if strings.HasPrefix(input, "+") || (strings.HasPrefix(input, "-") && !strings.Contains(input[1:], "-")) {
		days, err := strconv.Atoi(input)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day offset %q", input)
		}
		return now.AddDate(0, 0, days), nil
	}

	if parsed, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return parsed, nil
	}

	if parsed, err := time.Parse("01-02", input); err == nil {
		return time.Date(now.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local), nil
	}

	return time.Time{}, fmt.Errorf("invalid date format")
}

func (m DatePickerModel) View() string {
	if m.mode == textInputMode {
		return m.viewTextInput()
	}
	return m.viewCalendar()
}

func (m DatePickerModel) viewCalendar() string {
	var s strings.Builder

	s.WriteString(DatePickerTitleStyle.Render(m.title))
	s.WriteString("\n\n")

	s.WriteString(DatePickerMonthStyle.Render(m.viewMonth.Format("January 2006")))
	s.WriteString("\n\n")

	for _, day := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		s.WriteString(DatePickerDayHeaderStyle.Render(day))
		s.WriteString(" ")
	}
	s.WriteString("\n")

	startWeekday := int(m.viewMonth.Weekday())
	daysInMonth := m.viewMonth.AddDate(0, 1, -1).Day()
	currentDay := 1 - startWeekday
	today := time.Now()

	for week := 0; week < 6; week++ {
		for weekday := 0; weekday < 7; weekday++ {
			if currentDay < 1 || currentDay > daysInMonth {
				s.WriteString("  ")
			} else {
				date := time.Date(m.viewMonth.Year(), m.viewMonth.Month(), currentDay, 0, 0, 0, 0, time.Local)
				dayStr := fmt.Sprintf("%2d", currentDay)

				switch {
				case isSameDay(date, m.cursorDate):
					s.WriteString(DatePickerCursorStyle.Render(dayStr))
				case isSameDay(date, today):
					s.WriteString(DatePickerTodayStyle.Render(dayStr))
				case m.marked[date.Format("2006-01-02")]:
					s.WriteString(DatePickerMarkedStyle.Render(dayStr))
				default:
					s.WriteString(DatePickerDayStyle.Render(dayStr))
				}
			}
			s.WriteString(" ")
			currentDay++
		}
		s.WriteString("\n")

		if currentDay > daysInMonth {
			break
		}
	}

	s.WriteString("\n")
	s.WriteString(DatePickerHelpStyle.Render("hjkl: move • H/L: month • t: today • i: type • enter: open • esc: cancel"))

	box := DatePickerBoxStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m DatePickerModel) viewTextInput() string {
	var s strings.Builder

	s.WriteString(DatePickerTitleStyle.Render(m.title + " (Text Input)"))
	s.WriteString("\n\n")
	s.WriteString(m.textInput.View())
	s.WriteString("\n\n")

	if m.err != "" {
		s.WriteString(DatePickerErrorStyle.Render("Error: " + m.err))
		s.WriteString("\n\n")
	}

	s.WriteString(DatePickerHelpStyle.Render("enter: open • esc: back to calendar"))
	s.WriteString("\n\n")
	s.WriteString(DatePickerExamplesStyle.Render("Examples: 2026-03-15, 03-15, +5, -2, tomorrow, today"))

	box := DatePickerBoxStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func isSameDay(d1, d2 time.Time) bool {
	return d1.Year() == d2.Year() && d1.Month() == d2.Month() && d1.Day() == d2.Day()
}

// CursorDate returns the date currently under the calendar cursor.
func (m DatePickerModel) CursorDate() time.Time {
	return m.cursorDate
}

func (m *DatePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
