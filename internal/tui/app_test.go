package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"notedays/internal/config"
	"notedays/internal/notes/service"
	"notedays/internal/store"
)

func newTestApp(t *testing.T) (AppModel, service.DayService) {
	t.Helper()
	s, err := store.NewFileStore(afero.NewMemMapFs(), "/data")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	svc := service.NewDayService(s)
	cfg := &config.Config{DataDir: "/data", Backend: store.BackendFile, AutosaveMs: 500, Mouse: true}
	m := NewAppModel(cfg, svc, time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(AppModel), svc
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestQ_TypedIntoInputWhileFocused(t *testing.T) {
	m, _ := newTestApp(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if isQuit(cmd) {
		t.Error("q should not quit while typing a new note")
	}
}

func TestQ_QuitsFromList(t *testing.T) {
	m, _ := newTestApp(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !isQuit(cmd) {
		t.Error("expected q to quit from the list")
	}
}

func TestCtrlC_FlushesPendingEdit(t *testing.T) {
	m, svc := newTestApp(t)

	var model tea.Model = m
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("draft")},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")},
	} {
		model, _ = model.Update(msg)
	}

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatal("expected ctrl+c to quit")
	}

	stored, err := svc.Load("2026-03-05")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(stored) != 1 || stored[0].Text != "drafts" {
		t.Errorf("expected pending edit saved on quit, got %+v", stored)
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestApp(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !next.(AppModel).showHelp {
		t.Fatal("expected help overlay")
	}
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if next.(AppModel).showHelp || isQuit(cmd) {
		t.Error("any key should only dismiss help")
	}
}
