package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"notedays/internal/config"
	"notedays/internal/logs"
	"notedays/internal/notes/service"
	"notedays/internal/tui/day"
	"notedays/internal/tui/shared"
	"notedays/internal/tui/theme"
)

// AppModel is the root model. It owns the window, global keys and the
// status bar, and hands everything else to the day list.
type AppModel struct {
	cfg      *config.Config
	list     day.ListModel
	showHelp bool
	width    int
	height   int
	ready    bool
}

// NewAppModel creates the root application model showing date
func NewAppModel(cfg *config.Config, svc service.DayService, date time.Time) AppModel {
	return AppModel{
		cfg:  cfg,
		list: day.NewListModel(svc, date, cfg.AutosaveDelay()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.list.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.list.SetSize(msg.Width, msg.Height-lipgloss.Height(m.renderStatusBar()))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if !m.list.IsTyping() {
			switch msg.String() {
			case "q":
				return m.quit()
			case "?":
				m.showHelp = true
				return m, nil
			}
		}

	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.list.Flush()
	if err := m.list.Err(); err != nil {
		logs.Logger.Printf("Error flushing on quit: %v", err)
	}
	return m, tea.Quit
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup("notedays - Keyboard Shortcuts", helpSections, m.width, m.height)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), m.renderStatusBar())
}

func (m AppModel) renderStatusBar() string {
	text := m.list.DateKey() + " | " + m.cfg.Backend + " | ?:help | q:quit"
	if err := m.list.Err(); err != nil {
		text = theme.Error.Render("save failed: "+err.Error()) + " | q:quit"
	}
	if m.width > 0 {
		text = ansi.Truncate(text, m.width, "…")
	}
	return theme.StatusBar.Width(m.width).Render(theme.HelpHint.Render(text))
}

var helpSections = []shared.HelpSection{
	{
		Title: "Global",
		Binds: []shared.HelpBind{
			{Key: "?", Desc: "Show this help"},
			{Key: "q", Desc: "Save and quit"},
			{Key: "ctrl+c", Desc: "Save and quit (always)"},
		},
	},
	{
		Title: "Days",
		Binds: []shared.HelpBind{
			{Key: "h / l", Desc: "Previous / next day"},
			{Key: "pgup / pgdown", Desc: "Previous / next day (also while typing)"},
			{Key: "t", Desc: "Jump to today"},
			{Key: "g", Desc: "Go to date"},
		},
	},
	{
		Title: "Notes",
		Binds: []shared.HelpBind{
			{Key: "i / a / tab", Desc: "New note (prefix ! for important)"},
			{Key: "j / k", Desc: "Navigate notes"},
			{Key: "space / click [ ]", Desc: "Toggle done"},
			{Key: "e / enter", Desc: "Edit note"},
			{Key: "backspace", Desc: "Delete note while editing an empty one"},
			{Key: "m", Desc: "Move note with j / k"},
			{Key: "drag", Desc: "Reorder with the mouse"},
			{Key: "/", Desc: "Search"},
		},
	},
}
