package day

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notedays/internal/notes"
)

const (
	checkboxX    = 2 // "[ ]" occupies columns 2-4
	checkboxW    = 3
	textX        = 6
	handleGlyph  = "⇅"
	minTextWidth = 10
)

func (m ListModel) textWidth() int {
	return max(minTextWidth, m.width-textX-2)
}

func (m ListModel) renderRow(n notes.Note, selected bool) string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render(">") + " "
	}

	box := "[ ]"
	if n.Checked {
		box = "[x]"
	}

	textStyle := lipgloss.NewStyle()
	switch {
	case n.Important:
		textStyle = importantStyle
	case n.Checked:
		textStyle = doneStyle
	}
	if n.Checked {
		textStyle = textStyle.Strikethrough(true)
	}
	if selected {
		textStyle = textStyle.Inherit(selectedStyle)
	}

	var body string
	if m.mode == modeEdit && n.ID == m.editID {
		body = m.editor.View()
	} else {
		body = textStyle.Render(n.Text)
		if n.ID == m.flashID {
			body += flashStyle.Render(" ✓")
		}
	}
	body = lipgloss.NewStyle().Width(m.textWidth()).Render(body)

	handle := handleStyle.Render(handleGlyph)
	if (m.mode == modeDrag || m.mode == modeMove) && n.ID == m.dragID {
		handle = draggingStyle.Render(handleGlyph)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, marker, box, " ", body, " ", handle)
}

func (m ListModel) renderHeader() string {
	var sb strings.Builder

	done := 0
	for _, n := range m.rows {
		if n.Checked {
			done++
		}
	}
	sb.WriteString(titleStyle.Render(" Notes: " + m.date.Format("Monday, Jan 2 2006")))
	sb.WriteString(" " + dateKeyStyle.Render(m.DateKey()))
	sb.WriteString(countStyle.Render(fmt.Sprintf("  %d/%d done", done, len(m.rows))))
	sb.WriteString("\n")

	inputBox := inputBoxStyle
	if m.focus == focusInput && m.datePicker == nil {
		inputBox = inputBoxFocusedStyle
	}
	sb.WriteString(inputBox.Width(max(20, m.width-2)).Render(m.input.View()))
	sb.WriteString("\n")

	if m.searchActive {
		if m.searchFilterMode {
			sb.WriteString("  " + m.searchInput.View())
		} else {
			sb.WriteString("  " + searchLabel.Render("Filter: ") + m.searchQuery)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m ListModel) renderFooter() string {
	var status string
	switch {
	case m.err != nil:
		status = errorStyle.Render(" Error: " + m.err.Error())
	case m.message != "":
		status = messageStyle.Render(" " + m.message)
	}
	return status + "\n" + hintStyle.Render(" "+m.HintText())
}

// layoutRows renders the rows that fit on screen starting at the scroll
// offset, along with their screen positions.
func (m ListModel) layoutRows() ([]RowBox, []string) {
	header := m.renderHeader()
	top := lipgloss.Height(header)
	bottom := -1
	if m.height > 0 {
		bottom = m.height - lipgloss.Height(m.renderFooter())
	}

	var boxes []RowBox
	var rendered []string
	for vi := m.offset; vi < len(m.view); vi++ {
		idx := m.view[vi]
		row := m.renderRow(m.rows[idx], m.focus == focusList && vi == m.cursor)
		h := lipgloss.Height(row)
		if bottom >= 0 && top+h > bottom && vi > m.offset {
			break
		}
		boxes = append(boxes, RowBox{Index: idx, Top: top, Height: h})
		rendered = append(rendered, row)
		top += h
	}
	return boxes, rendered
}

// dragBoxes returns the geometry of every row in view, including rows
// scrolled above or below the screen. Rows above the offset get tops
// before the header line; rows past the footer continue downward.
func (m ListModel) dragBoxes() []RowBox {
	heights := make([]int, len(m.view))
	above := 0
	for vi, idx := range m.view {
		heights[vi] = lipgloss.Height(m.renderRow(m.rows[idx], m.focus == focusList && vi == m.cursor))
		if vi < m.offset {
			above += heights[vi]
		}
	}

	top := lipgloss.Height(m.renderHeader()) - above
	boxes := make([]RowBox, 0, len(m.view))
	for vi, idx := range m.view {
		boxes = append(boxes, RowBox{Index: idx, Top: top, Height: heights[vi]})
		top += heights[vi]
	}
	return boxes
}
