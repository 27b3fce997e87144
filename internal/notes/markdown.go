package notes

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// ExportMarkdown renders a day's list as a GFM task list under a date heading.
func ExportMarkdown(dateKey string, list []Note) string {
	var sb strings.Builder
	sb.WriteString("# " + dateKey + "\n\n")
	for _, n := range list {
		box := "[ ]"
		if n.Checked {
			box = "[x]"
		}
		sb.WriteString(fmt.Sprintf("- %s %s\n", box, n.Text))
	}
	return sb.String()
}

// ImportMarkdown reads list items from markdown. Task items keep their
// checkbox state; plain items come in unchecked.
func ImportMarkdown(src []byte) []Note {
	md := goldmark.New(goldmark.WithExtensions(extension.TaskList))
	doc := md.Parser().Parse(text.NewReader(src))

	var list []Note
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		item, ok := n.(*ast.ListItem)
		if !ok || item.FirstChild() == nil {
			return ast.WalkContinue, nil
		}

		raw, checked := listItemText(item.FirstChild(), src)
		if strings.TrimSpace(raw) == "" {
			return ast.WalkContinue, nil
		}
		note := NewNote(raw)
		note.Checked = checked
		list = append(list, note)
		return ast.WalkContinue, nil
	})
	return list
}

func listItemText(block ast.Node, src []byte) (string, bool) {
	var buf bytes.Buffer
	checked := false
	ast.Walk(block, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *extast.TaskCheckBox:
			checked = node.IsChecked
		case *ast.Text:
			buf.Write(node.Segment.Value(src))
			if node.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(node.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String()), checked
}

type yamlDay struct {
	Date  string   `yaml:"date"`
	Notes []Record `yaml:"notes"`
}

// ExportYAML renders a day's list as a YAML document.
func ExportYAML(dateKey string, list []Note) ([]byte, error) {
	out, err := yaml.Marshal(yamlDay{Date: dateKey, Notes: ToRecords(list)})
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return out, nil
}
