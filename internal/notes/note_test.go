package notes

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw       string
		display   string
		important bool
	}{
		{"buy milk", "buy milk", false},
		{"!buy milk", "buy milk", true},
		{"!!buy milk", "buy milk", true},
		{"buy! milk", "buy! milk", false},
		{" !buy milk", " !buy milk", false},
		{"!", "", true},
		{"", "", false},
	}

	for _, tt := range tests {
		display, important := Parse(tt.raw)
		if display != tt.display {
			t.Errorf("Parse(%q): display = %q, want %q", tt.raw, display, tt.display)
		}
		if important != tt.important {
			t.Errorf("Parse(%q): important = %v, want %v", tt.raw, important, tt.important)
		}
	}
}

func TestParse_Idempotent(t *testing.T) {
	for _, raw := range []string{"", "a", "!a", "!!a", "!!!", "a!b", "  !x"} {
		once, _ := Parse(raw)
		twice, _ := Parse(once)
		if once != twice {
			t.Errorf("Parse not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}

func TestNewNote(t *testing.T) {
	n := NewNote("!buy milk")
	if n.Text != "buy milk" || !n.Important || n.Checked {
		t.Errorf("unexpected note: %+v", n)
	}
	if n.ID == "" {
		t.Error("expected an ID")
	}
	if other := NewNote("buy milk"); other.ID == n.ID {
		t.Error("expected distinct IDs")
	}
}

func TestDateKey(t *testing.T) {
	d := time.Date(2026, time.March, 5, 23, 59, 0, 0, time.Local)
	if got := DateKey(d); got != "2026-03-05" {
		t.Errorf("DateKey = %q", got)
	}

	parsed, err := ParseDateKey("2026-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if DateKey(parsed) != "2026-03-05" {
		t.Errorf("round trip mismatch: %v", parsed)
	}

	for _, bad := range []string{"", "2026-3-5", "05-03-2026", "2026-02-30", "notes"} {
		if _, err := ParseDateKey(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDateKey(%q): expected ErrInvalidDate, got %v", bad, err)
		}
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	list := []Note{
		{ID: "a", Text: "one", Checked: true, Important: true},
		{ID: "b", Text: "two"},
	}
	back := FromRecords(ToRecords(list))
	if len(back) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(back))
	}
	if back[0].ID != "a" || back[0].Text != "one" || !back[0].Checked {
		t.Errorf("unexpected first note: %+v", back[0])
	}
	if back[0].Important {
		t.Error("importance must not survive persistence")
	}
}

func TestFromRecords_AssignsMissingIDs(t *testing.T) {
	list := FromRecords([]Record{{Text: "legacy"}, {Text: "legacy too"}})
	if list[0].ID == "" || list[1].ID == "" {
		t.Fatal("expected generated IDs")
	}
	if list[0].ID == list[1].ID {
		t.Error("expected distinct generated IDs")
	}
}
