package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"notedays/internal/config"
	"notedays/internal/logs"
	"notedays/internal/notes/service"
	"notedays/internal/store"
	"notedays/internal/tui"
	"notedays/internal/tui/shared"
	"notedays/internal/tui/theme"
)

// App carries the persistent flags shared by every command.
type App struct {
	Dir     string
	Backend string
	Date    string

	cfg *config.Config
}

// Run executes the CLI with the given arguments and returns the exit code.
func Run(args []string) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "notedays",
		Short:         "Date-scoped to-do notes for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI on today
  notedays

  # Open a specific day
  notedays --date 2026-03-15

  # Scriptable commands
  notedays add "!pay rent"
  notedays list --date yesterday
  notedays toggle 1
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			return runTUI(app)
		},
	}

	cmd.PersistentFlags().StringVarP(&app.Dir, "dir", "d", "", "Data directory (overrides NOTEDAYS_DIR and config file)")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", "", "Storage backend: file or sqlite (overrides NOTEDAYS_BACKEND)")
	cmd.PersistentFlags().StringVar(&app.Date, "date", "", "Day to work on: YYYY-MM-DD, MM-DD, today, tomorrow, yesterday, +N, -N")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newToggleCmd(app))
	cmd.AddCommand(newMoveCmd(app))
	cmd.AddCommand(newDatesCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))

	return cmd
}

// withService loads config, opens the configured store and runs fn
// against it. The store is closed when fn returns.
func (a *App) withService(fn func(svc service.DayService) error) error {
	cfg, err := config.Load(config.CLIFlags{DataDir: a.Dir, Backend: a.Backend})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := logs.Initialize(cfg.DataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	a.cfg = cfg

	st, err := store.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logs.Logger.Printf("Error closing store: %v", err)
		}
	}()

	return fn(service.NewDayService(st))
}

// day resolves the --date flag, defaulting to today.
func (a *App) day() (time.Time, error) {
	if strings.TrimSpace(a.Date) == "" {
		return time.Now(), nil
	}
	d, err := shared.ParseDateInput(a.Date, time.Now())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", a.Date, err)
	}
	return d, nil
}

func runTUI(app *App) error {
	date, err := app.day()
	if err != nil {
		return err
	}

	return app.withService(func(svc service.DayService) error {
		theme.ApplyColorProfile()

		opts := []tea.ProgramOption{tea.WithAltScreen()}
		if app.cfg.Mouse {
			opts = append(opts, tea.WithMouseCellMotion())
		}

		m := tui.NewAppModel(app.cfg, svc, date)
		if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
			return fmt.Errorf("run TUI: %w", err)
		}
		return nil
	})
}
