package notes

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestExportMarkdown(t *testing.T) {
	list := []Note{{Text: "buy milk"}, {Text: "call mom", Checked: true}}
	got := ExportMarkdown("2026-03-05", list)
	want := "# 2026-03-05\n\n- [ ] buy milk\n- [x] call mom\n"
	if got != want {
		t.Errorf("ExportMarkdown:\n%s\nwant:\n%s", got, want)
	}
}

func TestImportMarkdown(t *testing.T) {
	src := `# 2026-03-05

- [ ] buy milk
- [x] call mom
- !pay rent

Some paragraph that is not a note.
`
	list := ImportMarkdown([]byte(src))
	if len(list) != 3 {
		t.Fatalf("expected 3 notes, got %d: %+v", len(list), list)
	}
	if list[0].Text != "buy milk" || list[0].Checked {
		t.Errorf("unexpected first note: %+v", list[0])
	}
	if list[1].Text != "call mom" || !list[1].Checked {
		t.Errorf("unexpected second note: %+v", list[1])
	}
	if list[2].Text != "pay rent" || !list[2].Important {
		t.Errorf("unexpected third note: %+v", list[2])
	}
}

func TestMarkdownRoundTrip(t *testing.T) {
	list := []Note{{Text: "one"}, {Text: "two", Checked: true}, {Text: "three"}}
	back := ImportMarkdown([]byte(ExportMarkdown("2026-01-01", list)))
	if len(back) != len(list) {
		t.Fatalf("expected %d notes, got %d", len(list), len(back))
	}
	for i := range list {
		if back[i].Text != list[i].Text || back[i].Checked != list[i].Checked {
			t.Errorf("note %d: got %+v, want %+v", i, back[i], list[i])
		}
	}
}

func TestExportYAML(t *testing.T) {
	out, err := ExportYAML("2026-03-05", []Note{{ID: "x", Text: "buy milk"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "date: \"2026-03-05\"") && !strings.Contains(string(out), "date: 2026-03-05") {
		t.Errorf("missing date in:\n%s", out)
	}

	var parsed yamlDay
	if err := yaml.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(parsed.Notes) != 1 || parsed.Notes[0].Text != "buy milk" || parsed.Notes[0].ID != "x" {
		t.Errorf("unexpected notes: %+v", parsed.Notes)
	}
}
