package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/outreach/internal/cli"
	"github.com/alexanderramin/outreach/internal/db"
	"github.com/alexanderramin/outreach/internal/latex"
	"github.com/alexanderramin/outreach/internal/llm"
	"github.com/alexanderramin/outreach/internal/repository"
	"github.com/alexanderramin/outreach/internal/server"
	"github.com/alexanderramin/outreach/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", service.UserMessage(err))
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	// Determine DB path: env var or default ~/.outreach/outreach.db
	dbPath := os.Getenv("OUTREACH_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".outreach", "outreach.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and the unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)
	templateRepo := repository.NewSQLiteTemplateRepo(database)

	llmCfg := llm.LoadConfig()
	var (
		llmObserver llm.Observer             = llm.NoopObserver{}
		useCases    service.UseCaseObserver = service.NoopUseCaseObserver{}
	)
	if llmCfg.LogCalls {
		llmObserver = llm.NewLogObserver(os.Stderr)
		useCases = service.NewLogUseCaseObserver(os.Stderr)
	}

	profiles := service.NewProfileService(profileRepo)
	history := service.NewHistoryService(historyRepo, uow)

	app := &cli.App{
		Profiles:  profiles,
		History:   history,
		Templates: service.NewTemplateService(templateRepo, uow, useCases),
		Server:    server.LoadConfig(),
	}

	// Detect interactive terminal for the TUI entrypoint and prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Generating commands fail with ErrMissingAPIKey when the client is nil.
	var client llm.LLMClient
	if c, err := llm.NewGeminiClient(llmCfg, llmObserver); err == nil {
		client = c
		app.Generation = service.NewGenerationService(client, profiles, history, service.WithObserver(useCases))
	} else if !errors.Is(err, llm.ErrMissingAPIKey) {
		return fmt.Errorf("configuring llm client: %w", err)
	}
	app.Resume = service.NewResumeService(client, latex.NewClient(latex.EndpointFromEnv(), nil), useCases)

	return cli.NewRootCmd(app).Execute()
}
