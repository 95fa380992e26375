package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mbaranski/scrumline/internal/cli"
	"github.com/mbaranski/scrumline/internal/db"
	"github.com/mbaranski/scrumline/internal/repository"
	"github.com/mbaranski/scrumline/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.scrumline/scrumline.db
	dbPath := os.Getenv("SCRUMLINE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".scrumline", "scrumline.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	workItemRepo := repository.NewSQLiteWorkItemRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	rollup := service.NewRollupEngine(workItemRepo)
	gate := service.NewCompletionGate(workItemRepo)

	var observers []service.UseCaseObserver
	if os.Getenv("SCRUMLINE_DEBUG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo),
		Items:    service.NewWorkItemService(workItemRepo, rollup, gate, observers...),
		Import:   service.NewImportService(workItemRepo, uow, observers...),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
