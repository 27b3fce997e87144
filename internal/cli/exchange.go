package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"notedays/internal/notes"
	"notedays/internal/notes/service"
)

const (
	formatJSON     = "json"
	formatYAML     = "yaml"
	formatMarkdown = "markdown"
)

func newExportCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a day's notes to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := app.day()
			if err != nil {
				return err
			}
			key := notes.DateKey(date)

			return app.withService(func(svc service.DayService) error {
				list, err := svc.Load(key)
				if err != nil {
					return err
				}

				var data []byte
				switch strings.ToLower(format) {
				case formatJSON:
					data, err = json.MarshalIndent(notes.ToRecords(list), "", "  ")
					data = append(data, '\n')
				case formatYAML:
					data, err = notes.ExportYAML(key, list)
				case formatMarkdown, "md":
					data = []byte(notes.ExportMarkdown(key, list))
				default:
					return fmt.Errorf("unknown format %q (want json, yaml or markdown)", format)
				}
				if err != nil {
					return fmt.Errorf("export %s: %w", key, err)
				}

				_, err = cmd.OutOrStdout().Write(data)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format (json|yaml|markdown)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.md>",
		Short: "Append markdown list items to a day",
		Long:  "Reads a markdown file and appends each list item as a note. Task items keep their [x] state.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			imported := notes.ImportMarkdown(src)
			if len(imported) == 0 {
				return fmt.Errorf("no list items found in %s", args[0])
			}

			date, err := app.day()
			if err != nil {
				return err
			}
			key := notes.DateKey(date)

			return app.withService(func(svc service.DayService) error {
				list, err := svc.Load(key)
				if err != nil {
					return err
				}
				if err := svc.Save(key, append(list, imported...)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d note(s) into %s\n", len(imported), key)
				return nil
			})
		},
	}
}

// renderMarkdown formats md for the terminal. A fixed style is used so
// rendering never queries the terminal background.
func renderMarkdown(md string, width int) string {
	style := "dark"
	if termenv.EnvNoColor() {
		style = "notty"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
