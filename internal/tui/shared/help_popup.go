package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notedays/internal/tui/theme"
)

// HelpBind represents a single keybind entry
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection represents a group of related keybinds
type HelpSection struct {
	Title string
	Binds []HelpBind
}

var (
	helpSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpBoxStyle     = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(theme.BorderFocused).
				Padding(1, 2)
)

// RenderHelpPopup renders a centered help popup with the given sections
func RenderHelpPopup(title string, sections []HelpSection, width, height int) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(helpSectionStyle.Render(title) + "\n\n")
	}

	for i, section := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(helpSectionStyle.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			sb.WriteString("  " + helpKeyStyle.Width(14).Render(bind.Key) + helpDescStyle.Render(bind.Desc) + "\n")
		}
	}

	sb.WriteString("\n" + theme.HelpHint.Render("Press any key to close"))

	box := helpBoxStyle.Render(sb.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
