package shared

import "strings"

// PinBottom pads content to height lines with footer on the last lines.
// Content is kept top-aligned so screen rows map directly to its lines.
func PinBottom(content, footer string, height int) string {
	content = strings.TrimRight(content, "\n")
	footer = strings.TrimRight(footer, "\n")

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}
	var footerLines []string
	if footer != "" {
		footerLines = strings.Split(footer, "\n")
	}

	gap := height - len(contentLines) - len(footerLines)
	if gap < 1 {
		return strings.Join(append(contentLines, footerLines...), "\n")
	}

	lines := make([]string, 0, height)
	lines = append(lines, contentLines...)
	for i := 0; i < gap; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, footerLines...)
	return strings.Join(lines, "\n")
}
