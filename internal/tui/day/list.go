package day

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"notedays/internal/logs"
	"notedays/internal/notes"
	"notedays/internal/notes/service"
	"notedays/internal/tui/shared"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

type listMode int

const (
	modeNormal listMode = iota
	modeEdit
	modeMove
	modeDrag
)

const flashDuration = 100 * time.Millisecond

// autosaveMsg fires after text edits go quiet.
type autosaveMsg struct {
	seq int
}

// flashDoneMsg clears the transient marker on a newly added row.
type flashDoneMsg struct {
	id string
}

// ListModel is the note list for a single date. The rendered rows are the
// source of truth; every mutation writes the whole list back through svc.
type ListModel struct {
	svc      service.DayService
	date     time.Time
	rows     []notes.Note
	view     []int // indices into rows, after search filtering
	cursor   int   // position in view
	offset   int   // first visible position in view
	focus    focusArea
	mode     listMode
	autosave time.Duration

	input textinput.Model

	// In-row editing
	editor    textinput.Model
	editID    string
	editSeq   int
	editDirty bool

	// Drag and keyboard move
	dragID    string
	dragMoved bool

	flashID string

	// Search state
	searchActive     bool
	searchFilterMode bool
	searchInput      textinput.Model
	searchQuery      string

	datePicker *shared.DatePickerModel

	width   int
	height  int
	err     error
	message string
}

// NewListModel creates the list view and loads the notes for date.
func NewListModel(svc service.DayService, date time.Time, autosave time.Duration) ListModel {
	in := textinput.New()
	in.Placeholder = "New note (prefix with ! for important)"
	in.CharLimit = 500
	in.Focus()

	ed := textinput.New()
	ed.Prompt = ""
	ed.CharLimit = 500

	si := textinput.New()
	si.Placeholder = "Search..."
	si.CharLimit = 100
	si.Width = 40

	m := ListModel{
		svc:         svc,
		date:        date,
		autosave:    autosave,
		input:       in,
		editor:      ed,
		searchInput: si,
		focus:       focusInput,
	}
	m.reload()
	return m
}

// DateKey returns the storage key of the displayed date.
func (m ListModel) DateKey() string {
	return notes.DateKey(m.date)
}

// Notes returns the rows currently shown, in order.
func (m ListModel) Notes() []notes.Note {
	return m.rows
}

// Err returns the last load or save error.
func (m ListModel) Err() error {
	return m.err
}

// IsTyping reports whether key presses are going to a text field, so
// global single-letter shortcuts must not fire.
func (m ListModel) IsTyping() bool {
	if m.datePicker != nil {
		return true
	}
	return m.focus == focusInput || m.mode == modeEdit || m.searchFilterMode
}

// HintText returns hint text for the current state
func (m ListModel) HintText() string {
	switch {
	case m.datePicker != nil:
		return ""
	case m.mode == modeEdit:
		return "enter/esc: done  backspace on empty: delete note"
	case m.mode == modeMove:
		return "j/k: move note  enter/esc/m: drop"
	case m.mode == modeDrag:
		return "release to drop"
	case m.searchActive && m.searchFilterMode:
		return "type to filter  enter:confirm  esc:exit"
	case m.focus == focusInput:
		return "enter:add  tab/esc:notes  pgup/pgdown:day"
	case m.searchActive:
		return "/:edit filter  j/k:navigate  space:toggle  e:edit  esc:clear filter"
	}
	return "space:toggle  e:edit  m:move  /:search  h/l:day  t:today  g:go to date  i:new note"
}

// SetSize updates the view dimensions
func (m *ListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(10, width-8)
	m.editor.Width = m.textWidth()
	if m.datePicker != nil {
		m.datePicker.SetSize(width, height)
	}
	m.ensureCursorVisible()
}

// SwitchDate flushes any pending edit and shows the list for date.
func (m *ListModel) SwitchDate(date time.Time) {
	m.Flush()
	m.date = date
	m.reload()
}

// Flush ends any in-progress edit or move and saves what it changed.
func (m *ListModel) Flush() {
	switch m.mode {
	case modeEdit:
		m.commitEdit()
	case modeMove, modeDrag:
		m.drop()
	}
}

func (m *ListModel) reload() {
	m.mode = modeNormal
	m.editID = ""
	m.dragID = ""
	m.flashID = ""
	m.cursor = 0
	m.offset = 0
	m.message = ""
	m.err = nil

	rows, err := m.svc.Load(m.DateKey())
	if err != nil {
		logs.Logger.Printf("Error loading %s: %v", m.DateKey(), err)
		m.err = err
		rows = []notes.Note{}
	}
	m.rows = rows
	m.applySearchFilter()
}

func (m *ListModel) persist() {
	if err := m.svc.Save(m.DateKey(), m.rows); err != nil {
		logs.Logger.Printf("Error saving %s: %v", m.DateKey(), err)
		m.err = err
		return
	}
	m.err = nil
}

func (m *ListModel) applySearchFilter() {
	m.view = make([]int, 0, len(m.rows))
	if m.searchQuery == "" {
		for i := range m.rows {
			m.view = append(m.view, i)
		}
	} else {
		texts := make([]string, len(m.rows))
		for i, n := range m.rows {
			texts[i] = n.Text
		}
		for _, match := range fuzzy.Find(m.searchQuery, texts) {
			m.view = append(m.view, match.Index)
		}
	}

	if m.cursor >= len(m.view) {
		m.cursor = max(0, len(m.view)-1)
	}
	m.ensureCursorVisible()
}

func (m *ListModel) ensureCursorVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.offset >= len(m.view) {
		m.offset = max(0, len(m.view)-1)
	}
	for m.offset < m.cursor {
		boxes, _ := m.layoutRows()
		if containsIndex(boxes, m.view[m.cursor]) {
			return
		}
		m.offset++
	}
}

// clampCursorToScreen pulls the cursor onto the rows left visible after
// a scroll, so keys never act on an off-screen row.
func (m *ListModel) clampCursorToScreen() {
	boxes, _ := m.layoutRows()
	if len(boxes) == 0 {
		return
	}
	last := m.offset + len(boxes) - 1
	switch {
	case m.cursor < m.offset:
		m.cursor = m.offset
	case m.cursor > last:
		m.cursor = last
	}
}

func containsIndex(boxes []RowBox, idx int) bool {
	for _, b := range boxes {
		if b.Index == idx {
			return true
		}
	}
	return false
}

// selected returns the index into rows under the cursor, or -1.
func (m ListModel) selected() int {
	if m.cursor < 0 || m.cursor >= len(m.view) {
		return -1
	}
	return m.view[m.cursor]
}

func (m *ListModel) selectIndex(idx int) {
	for vi, ri := range m.view {
		if ri == idx {
			m.cursor = vi
			m.ensureCursorVisible()
			return
		}
	}
}

// Init implements tea.Model
func (m ListModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles events for the list view
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case autosaveMsg:
		if m.mode == modeEdit && msg.seq == m.editSeq && m.editDirty {
			m.persist()
			m.editDirty = false
		}
		return m, nil

	case flashDoneMsg:
		if m.flashID == msg.id {
			m.flashID = ""
		}
		return m, nil

	case shared.DatePickedMsg:
		m.datePicker = nil
		m.SwitchDate(msg.Date)
		return m, nil

	case shared.DatePickerCancelledMsg:
		m.datePicker = nil
		return m, nil

	case tea.MouseMsg:
		if m.datePicker != nil {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.datePicker != nil {
			picker, cmd := m.datePicker.Update(msg)
			m.datePicker = &picker
			return m, cmd
		}
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeMove:
			return m.updateMove(msg)
		case modeDrag:
			if msg.String() == "esc" {
				m.drop()
			}
			return m, nil
		}
		if m.searchActive && m.searchFilterMode {
			return m.updateSearchInput(msg)
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	// Cursor blink and other ticks go to whichever field has focus.
	var cmd tea.Cmd
	switch {
	case m.mode == modeEdit:
		m.editor, cmd = m.editor.Update(msg)
	case m.searchFilterMode:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case m.focus == focusInput:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m ListModel) updateInput(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.addNote(m.input.Value())
	case "tab", "esc", "down":
		m.blurInput()
		return m, nil
	case "pgup":
		m.SwitchDate(m.date.AddDate(0, 0, -1))
		return m, nil
	case "pgdown":
		m.SwitchDate(m.date.AddDate(0, 0, 1))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ListModel) blurInput() {
	m.focus = focusList
	m.input.Blur()
}

func (m *ListModel) focusOnInput() tea.Cmd {
	m.focus = focusInput
	return m.input.Focus()
}

func (m ListModel) addNote(raw string) (ListModel, tea.Cmd) {
	if strings.TrimSpace(raw) == "" {
		return m, nil
	}

	note := notes.NewNote(raw)
	m.rows = append(m.rows, note)
	m.input.SetValue("")
	m.persist()
	m.applySearchFilter()
	m.selectIndex(len(m.rows) - 1)

	m.flashID = note.ID
	id := note.ID
	return m, tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{id: id}
	})
}

func (m ListModel) updateList(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	m.message = ""

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.view)-1 {
			m.cursor++
			m.ensureCursorVisible()
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}
	case "i", "a", "tab":
		return m, m.focusOnInput()
	case " ", "x":
		m.toggle(m.selected())
	case "e", "enter":
		return m.startEdit(m.selected())
	case "m":
		m.startMove()
	case "/":
		m.searchActive = true
		m.searchFilterMode = true
		m.searchInput.SetValue(m.searchQuery)
		return m, m.searchInput.Focus()
	case "esc":
		if m.searchActive {
			m.clearSearch()
		}
	case "h", "left", "pgup":
		m.SwitchDate(m.date.AddDate(0, 0, -1))
	case "l", "right", "pgdown":
		m.SwitchDate(m.date.AddDate(0, 0, 1))
	case "t":
		m.SwitchDate(time.Now())
	case "g":
		return m.openDatePicker()
	}
	return m, nil
}

func (m *ListModel) toggle(idx int) {
	if idx < 0 || idx >= len(m.rows) {
		return
	}
	m.rows[idx].Checked = !m.rows[idx].Checked
	m.persist()
}

func (m ListModel) startEdit(idx int) (ListModel, tea.Cmd) {
	if idx < 0 || idx >= len(m.rows) {
		return m, nil
	}
	m.mode = modeEdit
	m.editID = m.rows[idx].ID
	m.editDirty = false
	m.editor.Width = m.textWidth()
	m.editor.SetValue(m.rows[idx].Text)
	m.editor.CursorEnd()
	return m, m.editor.Focus()
}

func (m ListModel) updateEdit(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	idx := notes.IndexOf(m.rows, m.editID)
	if idx < 0 {
		m.mode = modeNormal
		return m, nil
	}

	switch msg.String() {
	case "enter", "esc":
		m.commitEdit()
		return m, nil
	case "backspace":
		if strings.TrimSpace(m.editor.Value()) == "" {
			m.rows = notes.Remove(m.rows, idx)
			m.mode = modeNormal
			m.editID = ""
			m.editDirty = false
			m.editor.Blur()
			m.persist()
			m.applySearchFilter()
			return m, nil
		}
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() == before {
		return m, cmd
	}

	m.rows[idx].Text = m.editor.Value()
	m.editDirty = true
	m.editSeq++
	seq := m.editSeq
	return m, tea.Batch(cmd, tea.Tick(m.autosave, func(time.Time) tea.Msg {
		return autosaveMsg{seq: seq}
	}))
}

func (m *ListModel) commitEdit() {
	if m.editDirty {
		m.persist()
	}
	m.mode = modeNormal
	m.editID = ""
	m.editDirty = false
	m.editor.Blur()
	m.applySearchFilter()
}

func (m *ListModel) startMove() {
	idx := m.selected()
	if idx < 0 || m.searchQuery != "" {
		return
	}
	m.mode = modeMove
	m.dragID = m.rows[idx].ID
	m.dragMoved = false
}

func (m ListModel) updateMove(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	idx := notes.IndexOf(m.rows, m.dragID)
	switch msg.String() {
	case "j", "down":
		if idx >= 0 && idx < len(m.rows)-1 {
			m.rows = notes.Move(m.rows, idx, idx+1)
			m.dragMoved = true
			m.applySearchFilter()
			m.selectIndex(idx + 1)
		}
	case "k", "up":
		if idx > 0 {
			m.rows = notes.Move(m.rows, idx, idx-1)
			m.dragMoved = true
			m.applySearchFilter()
			m.selectIndex(idx - 1)
		}
	case "enter", "esc", "m":
		m.drop()
	}
	return m, nil
}

// drop ends a drag or keyboard move, saving if the order changed.
func (m *ListModel) drop() {
	if m.dragMoved {
		m.persist()
		m.message = "Note moved"
	}
	m.mode = modeNormal
	m.dragID = ""
	m.dragMoved = false
}

func (m ListModel) handleMouse(msg tea.MouseMsg) (ListModel, tea.Cmd) {
	boxes, _ := m.layoutRows()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.offset > 0 {
				m.offset--
				m.clampCursorToScreen()
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if m.offset < len(m.view)-1 {
				m.offset++
				m.clampCursorToScreen()
			}
			return m, nil
		case tea.MouseButtonLeft:
		default:
			return m, nil
		}

		box, ok := hitTest(boxes, msg.Y)
		if !ok {
			return m, nil
		}
		m.Flush()
		m.blurInput()
		m.selectIndex(box.Index)

		if msg.X >= checkboxX && msg.X < checkboxX+checkboxW {
			m.toggle(box.Index)
			return m, nil
		}
		if m.searchQuery == "" {
			m.mode = modeDrag
			m.dragID = m.rows[box.Index].ID
			m.dragMoved = false
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.mode != modeDrag {
			return m, nil
		}
		from := notes.IndexOf(m.rows, m.dragID)
		if from < 0 {
			return m, nil
		}
		after := DragAfter(m.dragBoxes(), from, msg.Y)
		reordered := notes.MoveBefore(m.rows, from, after)
		if to := notes.IndexOf(reordered, m.dragID); to != from {
			m.rows = reordered
			m.dragMoved = true
			m.applySearchFilter()
			m.selectIndex(to)
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.mode == modeDrag {
			m.drop()
		}
		return m, nil
	}

	return m, nil
}

func (m ListModel) updateSearchInput(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchFilterMode = false
		m.searchInput.Blur()
		if m.searchQuery == "" {
			m.searchActive = false
		}
		return m, nil
	case "esc":
		m.clearSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchQuery = m.searchInput.Value()
	m.applySearchFilter()
	return m, cmd
}

func (m *ListModel) clearSearch() {
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.searchQuery = ""
	m.searchActive = false
	m.searchFilterMode = false
	m.applySearchFilter()
}

func (m ListModel) openDatePicker() (ListModel, tea.Cmd) {
	marked := map[string]bool{}
	dates, err := m.svc.Dates()
	if err != nil {
		logs.Logger.Printf("Error listing dates: %v", err)
	}
	for _, d := range dates {
		marked[d] = true
	}

	picker := shared.NewDatePickerModel(m.date, "Go to date", marked)
	picker.SetSize(m.width, m.height)
	m.datePicker = &picker
	return m, picker.Init()
}

// View renders the list view
func (m ListModel) View() string {
	if m.datePicker != nil {
		return m.datePicker.View()
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")

	_, rows := m.layoutRows()
	if len(rows) == 0 {
		if m.searchQuery != "" {
			sb.WriteString(emptyStyle.Render("  No matching notes."))
		} else {
			sb.WriteString(emptyStyle.Render("  No notes for this day."))
		}
	} else {
		sb.WriteString(strings.Join(rows, "\n"))
	}

	return shared.PinBottom(sb.String(), m.renderFooter(), m.height)
}
