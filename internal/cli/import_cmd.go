package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a backlog from a YAML file",
		Long: `Import creates a project and its full epic/feature/story/task tree from a
YAML backlog file in a single transaction, then seeds the rolled-up estimate
and actual-hours sums on every aggregate level.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportBacklog(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported project %s [%s] with %d work items\n",
				result.Project.Name, result.Project.Key, result.ItemCount)
			return nil
		},
	}
}
