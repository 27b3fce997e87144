package notes

import (
	"strings"
	"testing"
)

func makeList(ids ...string) []Note {
	list := make([]Note, len(ids))
	for i, id := range ids {
		list[i] = Note{ID: id, Text: id}
	}
	return list
}

func order(list []Note) string {
	ids := make([]string, len(list))
	for i, n := range list {
		ids[i] = n.ID
	}
	return strings.Join(ids, "")
}

func TestMoveBefore(t *testing.T) {
	tests := []struct {
		name   string
		from   int
		before int
		want   string
	}{
		{"first before last", 0, 2, "bac"},
		{"last before first", 2, 0, "cab"},
		{"to end", 0, -1, "bca"},
		{"already in place", 0, 1, "abc"},
		{"onto itself", 1, 1, "abc"},
		{"middle to end", 1, -1, "acb"},
		{"out of range from", 5, 0, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := makeList("a", "b", "c")
			got := order(MoveBefore(src, tt.from, tt.before))
			if got != tt.want {
				t.Errorf("MoveBefore(%d, %d) = %s, want %s", tt.from, tt.before, got, tt.want)
			}
			if order(src) != "abc" {
				t.Errorf("source list mutated: %s", order(src))
			}
		})
	}
}

func TestMove(t *testing.T) {
	if got := order(Move(makeList("a", "b", "c"), 0, 2)); got != "bca" {
		t.Errorf("Move(0,2) = %s", got)
	}
	if got := order(Move(makeList("a", "b", "c"), 2, 0)); got != "cab" {
		t.Errorf("Move(2,0) = %s", got)
	}
	if got := order(Move(makeList("a", "b", "c"), 1, 3)); got != "abc" {
		t.Errorf("Move out of range = %s", got)
	}
}

func TestRemoveAndIndexOf(t *testing.T) {
	list := makeList("a", "b", "c")
	if IndexOf(list, "b") != 1 || IndexOf(list, "z") != -1 {
		t.Error("IndexOf mismatch")
	}
	if got := order(Remove(list, 1)); got != "ac" {
		t.Errorf("Remove = %s", got)
	}
	if got := order(Remove(list, 9)); got != "abc" {
		t.Errorf("Remove out of range = %s", got)
	}
	if got := Remove(makeList("a"), 0); len(got) != 0 {
		t.Errorf("expected empty list, got %d", len(got))
	}
}
