package cli

import (
	"github.com/alexanderramin/outreach/internal/llm"
	"github.com/alexanderramin/outreach/internal/server"
	"github.com/alexanderramin/outreach/internal/service"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	// Generation is nil when GEMINI_API_KEY is not set. Resume is always
	// set; only its Edit needs the key.
	Generation service.GenerationService
	Resume     service.ResumeService

	Profiles  service.ProfileService
	History   service.HistoryService
	Templates service.TemplateService

	Server server.Config

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Clipboard replaces the system clipboard writer.
	Clipboard func(string) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) copy(text string) error {
	if a.Clipboard != nil {
		return a.Clipboard(text)
	}
	return clipboard.WriteAll(text)
}

func (a *App) generation() (service.GenerationService, error) {
	if a.Generation == nil {
		return nil, llm.ErrMissingAPIKey
	}
	return a.Generation, nil
}

func (a *App) resume() (service.ResumeService, error) {
	if a.Resume == nil {
		return nil, llm.ErrMissingAPIKey
	}
	return a.Resume, nil
}

// NewRootCmd creates the top-level "outreach" command and registers all
// subcommands against the provided App. Run bare in a terminal it opens the
// interactive generator.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "outreach",
		Short:         "Referral email and cover letter generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(cmd, app)
		},
	}

	root.AddCommand(
		newGenerateCmd(app, generateReferral),
		newGenerateCmd(app, generateCoverLetter),
		newProfileCmd(app),
		newHistoryCmd(app),
		newTemplateCmd(app),
		newResumeCmd(app),
		newServeCmd(app),
	)

	return root
}
