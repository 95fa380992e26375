package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mbaranski/scrumline/internal/cli/formatter"
	"github.com/mbaranski/scrumline/internal/domain"
)

// scrumlineHuhTheme returns a custom huh theme using the Gruvbox palette.
func scrumlineHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// projectForm collects the fields for a new project.
func projectForm(key, name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project key").
				Placeholder("WEB").
				Value(key).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("key is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Project name").
				Value(name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
		),
	).WithTheme(scrumlineHuhTheme()).WithShowHelp(false)
}

// itemForm collects the fields for a new work item, offering existing
// projects and the type ladder as selects.
func itemForm(ctx context.Context, app *App, projectRef, typeStr, title, parentRef *string) *huh.Form {
	var projectOptions []huh.Option[string]
	if projects, err := app.Projects.List(ctx, false); err == nil {
		for _, p := range projects {
			projectOptions = append(projectOptions,
				huh.NewOption(fmt.Sprintf("%s — %s", p.Key, p.Name), p.Key))
		}
	}

	typeOptions := make([]huh.Option[string], 0, len(domain.AllItemTypes))
	for _, typ := range domain.AllItemTypes {
		typeOptions = append(typeOptions, huh.NewOption(string(typ), string(typ)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project").
				Options(projectOptions...).
				Value(projectRef),
			huh.NewSelect[string]().
				Title("Type").
				Options(typeOptions...).
				Value(typeStr),
			huh.NewInput().
				Title("Title").
				Value(title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Parent ID (blank for top level)").
				Value(parentRef),
		),
	).WithTheme(scrumlineHuhTheme()).WithShowHelp(false)
}
