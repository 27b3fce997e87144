package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"notedays/internal/notes"
	"notedays/internal/notes/service"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Append a note to a day (prefix with ! for important)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.Join(args, " ")
			if strings.TrimSpace(raw) == "" {
				return fmt.Errorf("note text required")
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
				note := notes.NewNote(raw)
				if err := svc.Save(key, append(list, note)); err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if note.Important {
					fmt.Fprintf(out, "Added (important): %s\n", note.Text)
				} else {
					fmt.Fprintf(out, "Added: %s\n", note.Text)
				}
				fmt.Fprintf(out, "ID: %s\n", note.ID)
				return nil
			})
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show a day's notes in order",
		Args:    cobra.NoArgs,
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
				out := cmd.OutOrStdout()
				if len(list) == 0 {
					fmt.Fprintf(out, "No notes for %s.\n", key)
					return nil
				}
				if render {
					fmt.Fprintln(out, renderMarkdown(notes.ExportMarkdown(key, list), 80))
					return nil
				}
				printList(out, key, list)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "Render as formatted markdown")
	return cmd
}

func printList(out io.Writer, key string, list []notes.Note) {
	fmt.Fprintln(out, key)
	done := 0
	for i, n := range list {
		box := "[ ]"
		if n.Checked {
			box = "[x]"
			done++
		}
		fmt.Fprintf(out, "%3d. %s %s  (%s)\n", i+1, box, n.Text, shortID(n.ID))
	}
	fmt.Fprintf(out, "\n%d note(s), %d done\n", len(list), done)
}

func shortID(id string) string {
	if len(id) > 10 {
		return id[len(id)-10:]
	}
	return id
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <n|id>",
		Short: "Flip a note between done and not done",
		Args:  cobra.ExactArgs(1),
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
				i, err := resolveNote(list, args[0])
				if err != nil {
					return err
				}
				list[i].Checked = !list[i].Checked
				if err := svc.Save(key, list); err != nil {
					return err
				}

				if list[i].Checked {
					fmt.Fprintf(cmd.OutOrStdout(), "Checked: %s\n", list[i].Text)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Unchecked: %s\n", list[i].Text)
				}
				return nil
			})
		},
	}
}

func newMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Reorder a note by 1-based position",
		Args:  cobra.ExactArgs(2),
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
				from, err := resolveNote(list, args[0])
				if err != nil {
					return err
				}
				to, err := position(list, args[1])
				if err != nil {
					return err
				}
				if from == to {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to move.")
					return nil
				}

				moved := notes.Move(list, from, to)
				if err := svc.Save(key, moved); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Moved: %s (to position %d)\n", moved[to].Text, to+1)
				return nil
			})
		},
	}
}

func newDatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "List days that have stored notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withService(func(svc service.DayService) error {
				dates, err := svc.Dates()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(dates) == 0 {
					fmt.Fprintln(out, "No notes stored.")
					return nil
				}
				for _, key := range dates {
					list, err := svc.Load(key)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s  %d note(s)\n", key, len(list))
				}
				return nil
			})
		},
	}
}

// resolveNote accepts a 1-based position or a unique ID prefix or
// suffix. An all-digit argument outside the list's range is tried as an
// ID before giving up.
func resolveNote(list []notes.Note, arg string) (int, error) {
	if _, err := strconv.Atoi(arg); err == nil {
		i, posErr := position(list, arg)
		if posErr == nil {
			return i, nil
		}
		if i, err := matchID(list, arg); err == nil {
			return i, nil
		}
		return -1, posErr
	}
	return matchID(list, arg)
}

func matchID(list []notes.Note, arg string) (int, error) {
	needle := strings.ToUpper(strings.TrimSpace(arg))
	if needle == "" {
		return -1, fmt.Errorf("note position or ID required")
	}
	match := -1
	for i, n := range list {
		id := strings.ToUpper(n.ID)
		if strings.HasPrefix(id, needle) || strings.HasSuffix(id, needle) {
			if match >= 0 {
				return -1, fmt.Errorf("ambiguous note ID %q", arg)
			}
			match = i
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("no note found with ID %q", arg)
	}
	return match, nil
}

func position(list []notes.Note, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return -1, fmt.Errorf("invalid position %q", arg)
	}
	if n < 1 || n > len(list) {
		return -1, fmt.Errorf("position %d out of range (1-%d)", n, len(list))
	}
	return n - 1, nil
}
