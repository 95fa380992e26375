package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mbaranski/scrumline/internal/cli/formatter"
	"github.com/mbaranski/scrumline/internal/domain"
	"github.com/mbaranski/scrumline/internal/service"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage work items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemInspectCmd(app),
		newItemTreeCmd(app),
		newItemEstimateCmd(app),
		newItemLogCmd(app),
		newItemStatusCmd(app),
		newItemDoneCmd(app),
		newItemReopenCmd(app),
		newItemMoveCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var projectRef, typeStr, title, description, parentRef, assignee string
	var estimate float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a work item",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if (projectRef == "" || typeStr == "" || title == "") && app.interactive() {
				if err := itemForm(ctx, app, &projectRef, &typeStr, &title, &parentRef).Run(); err != nil {
					return err
				}
			}

			proj, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}

			w := &domain.WorkItem{
				ProjectID:   proj.ID,
				Title:       title,
				Description: description,
				Type:        domain.ItemType(typeStr),
				AssigneeID:  assignee,
			}
			if parentRef != "" {
				parent, err := resolveItem(ctx, app, projectRef, parentRef)
				if err != nil {
					return err
				}
				w.ParentID = &parent.ID
			}
			if cmd.Flags().Changed("estimate") {
				if w.Type.IsAggregate() {
					return fmt.Errorf("only tasks and bugs carry estimates; %s values are rolled up", w.Type)
				}
				w.Estimate = &estimate
			}

			if err := app.Items.Create(ctx, w); err != nil {
				return err
			}

			fmt.Printf("Created %s %q (%s)\n", w.Type, w.Title, w.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project key or ID")
	cmd.Flags().StringVar(&typeStr, "type", "", "epic, feature, story, task or bug")
	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&description, "description", "", "Item description")
	cmd.Flags().StringVar(&parentRef, "parent", "", "Parent item ID or prefix")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee")
	cmd.Flags().Float64Var(&estimate, "estimate", 0, "Estimated hours (leaf items only)")

	return cmd
}

func newItemInspectCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "inspect ID",
		Short: "Show work item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			item, err := resolveItem(ctx, app, projectRef, args[0])
			if err != nil {
				return err
			}
			children, err := app.Items.ListChildren(ctx, item.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatItemInspect(item, children))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project to resolve ID prefixes in")

	return cmd
}

func newItemTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree PROJECT",
		Short: "Show a project's backlog as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			proj, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}
			roots, childMap, err := buildChildMap(ctx, app, proj.ID)
			if err != nil {
				return err
			}
			if len(roots) == 0 {
				fmt.Println("No work items yet.")
				return nil
			}
			fmt.Printf("%s\n", formatter.RenderTree(formatter.BuildTreeItems(roots, childMap)))
			return nil
		},
	}
}

func parseHoursArg(arg string) (float64, error) {
	hours, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hours %q: %w", arg, err)
	}
	return hours, nil
}

func newItemEstimateCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "estimate ID HOURS",
		Short: "Set the estimated hours on a task or bug",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			item, err := resolveItem(ctx, app, projectRef, args[0])
			if err != nil {
				return err
			}
			hours, err := parseHoursArg(args[1])
			if err != nil {
				return err
			}
			if err := app.Items.SetEstimate(ctx, item.ID, hours); err != nil {
				return err
			}
			fmt.Printf("Estimated %q at %sh\n", item.Title, args[1])
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project to resolve ID prefixes in")

	return cmd
}

func newItemLogCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "log ID HOURS",
		Short: "Record total actual hours spent on a task or bug",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			item, err := resolveItem(ctx, app, projectRef, args[0])
			if err != nil {
				return err
			}
			hours, err := parseHoursArg(args[1])
			if err != nil {
				return err
			}
			if err := app.Items.LogHours(ctx, item.ID, hours); err != nil {
				return err
			}
			fmt.Printf("Logged %sh on %q\n", args[1], item.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project to resolve ID prefixes in")

	return cmd
}

func newItemStatusCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Change a work item's status",
		Long:  "Valid statuses: todo, in_progress, on_hold, done.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(app, projectRef, args[0], domain.ItemStatus(args[1]))
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project to resolve ID prefixes in")

	return cmd
}

func newItemDoneCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Mark a work item done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(app, projectRef, args[0], domain.StatusDone)
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project to resolve ID prefixes in")

	return cmd
}

func setStatus(app *App, projectRef, ref string, status domain.ItemStatus) error {
	ctx := context.Background()
	item, err := resolveItem(ctx, app, projectRef, ref)
	if err != nil {
		return err
	}

	err = app.Items.SetStatus(ctx, item.ID, status)
	var blocked *service.CompletionBlockedError
	if errors.As(err, &blocked) {
		fmt.Printf("Cannot complete %q, %d child item(s) still open:\n", item.Title, len(blocked.Blocking))
		for _, child := range blocked.Blocking {
			fmt.Printf("  %s %s (%s)\n", formatter.StatusIndicator(child.Status), child.Title, child.ID[:8])
		}
		return fmt.Errorf("completion blocked")
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s is now %s\n", item.Title, status)
	return nil
}

func newItemReopenCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "reopen ID",
		Short: "Reopen a done work item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			item, err := resolveItem(ctx, app, projectRef, args[0])
			if err != nil {
				return err
			}
			if err := app.Items.Reopen(ctx, item.ID); err != nil {
				return err
			}
			fmt.Printf("Reopened %q\n", item.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project to resolve ID prefixes in")

	return cmd
}

func newItemMoveCmd(app *App) *cobra.Command {
	var projectRef, parentRef string
	var toRoot bool

	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Move a work item under a new parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			item, err := resolveItem(ctx, app, projectRef, args[0])
			if err != nil {
				return err
			}

			var newParentID *string
			switch {
			case toRoot:
				// stays nil
			case parentRef != "":
				parent, err := resolveItem(ctx, app, projectRef, parentRef)
				if err != nil {
					return err
				}
				newParentID = &parent.ID
			default:
				return fmt.Errorf("either --parent or --root is required")
			}

			if err := app.Items.Move(ctx, item.ID, newParentID); err != nil {
				return err
			}
			fmt.Printf("Moved %q\n", item.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project to resolve ID prefixes in")
	cmd.Flags().StringVar(&parentRef, "parent", "", "New parent item ID or prefix")
	cmd.Flags().BoolVar(&toRoot, "root", false, "Move to the top level")

	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a work item and its descendants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			item, err := resolveItem(ctx, app, projectRef, args[0])
			if err != nil {
				return err
			}
			if err := app.Items.Delete(ctx, item.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted %q\n", item.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectRef, "project", "p", "", "Project to resolve ID prefixes in")

	return cmd
}
