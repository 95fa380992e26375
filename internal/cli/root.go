package cli

import (
	"github.com/mbaranski/scrumline/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Items    service.WorkItemService
	Import   service.ImportService

	// IsInteractive reports whether stdin is attached to a terminal; forms
	// and the board only run when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "scrumline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "scrumline",
		Short:         "Backlog tracker with estimate and hours rollup",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newItemCmd(app),
		newImportCmd(app),
		newBoardCmd(app),
	)

	return root
}
