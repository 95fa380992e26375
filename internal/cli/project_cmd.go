package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mbaranski/scrumline/internal/cli/formatter"
	"github.com/mbaranski/scrumline/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectArchiveCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var key, name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (key == "" || name == "") && app.interactive() {
				if err := projectForm(&key, &name).Run(); err != nil {
					return err
				}
			}

			p := &domain.Project{
				Key:  strings.ToUpper(key),
				Name: name,
			}
			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Name, p.Key)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Short project key, e.g. WEB")
	cmd.Flags().StringVar(&name, "name", "", "Project name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), all)
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived projects")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect PROJECT",
		Short: "Show a project and its backlog tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			roots, childMap, err := buildChildMap(ctx, app, p.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatProjectInspect(formatter.ProjectInspectData{
				Project:  p,
				Roots:    roots,
				ChildMap: childMap,
			}))
			return nil
		},
	}
}

func newProjectArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive PROJECT",
		Short: "Archive a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Archive(ctx, p.ID); err != nil {
				return err
			}
			fmt.Printf("Archived project %s\n", p.Key)
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove PROJECT",
		Short: "Delete a project and all of its work items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			if !force {
				return fmt.Errorf("refusing to delete %s without --force", p.Key)
			}
			if err := app.Projects.Delete(ctx, p.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted project %s\n", p.Key)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deletion")

	return cmd
}
