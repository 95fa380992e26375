package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbaranski/scrumline/internal/tui"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board PROJECT",
		Short: "Open the interactive Kanban board for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the board requires an interactive terminal")
			}

			p, err := resolveProject(context.Background(), app, args[0])
			if err != nil {
				return err
			}

			program := tea.NewProgram(tui.New(app.Items, p), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}
