package shared

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestParseDateInput(t *testing.T) {
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.Local)

	tests := []struct {
		input string
		want  string
	}{
		{"today", "2026-03-05"},
		{"Tomorrow", "2026-03-06"},
		{"yesterday", "2026-03-04"},
		{"+5", "2026-03-10"},
		{"-2", "2026-03-03"},
		{"2026-12-31", "2026-12-31"},
		{"04-01", "2026-04-01"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDateInput(tt.input, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("ParseDateInput(%q) = %s, want %s", tt.input, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestParseDateInput_Invalid(t *testing.T) {
	for _, input := range []string{"", "someday", "2026-13-40", "+x"} {
		if _, err := ParseDateInput(input, time.Now()); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestDatePicker_NavigateAndPick(t *testing.T) {
	start := time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local)
	m := NewDatePickerModel(start, "Go to date", map[string]bool{"2026-03-12": true})

	for _, key := range []string{"l", "j"} {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	}
	if got := m.CursorDate().Format("2006-01-02"); got != "2026-03-13" {
		t.Fatalf("expected cursor on 2026-03-13, got %s", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	picked, ok := cmd().(DatePickedMsg)
	if !ok || picked.Date.Format("2006-01-02") != "2026-03-13" {
		t.Errorf("unexpected pick %+v", picked)
	}
}

func TestDatePicker_Cancel(t *testing.T) {
	m := NewDatePickerModel(time.Now(), "Go to date", nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(DatePickerCancelledMsg); !ok {
		t.Error("expected DatePickerCancelledMsg")
	}
}

func TestDatePicker_TypedDate(t *testing.T) {
	m := NewDatePickerModel(time.Now(), "Go to date", nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	if !m.IsTyping() {
		t.Fatal("expected text input mode")
	}
	m.textInput.SetValue("2026-07-04")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	picked, ok := cmd().(DatePickedMsg)
	if !ok || picked.Date.Format("2006-01-02") != "2026-07-04" {
		t.Errorf("unexpected pick %+v", picked)
	}
}
