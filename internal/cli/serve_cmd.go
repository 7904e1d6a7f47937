package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/outreach/internal/cli/formatter"
	"github.com/alexanderramin/outreach/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API for the web front-end",
		Long:  `Serve the JSON API for the web front-end.

The server starts even when GEMINI_API_KEY is not set. Profile, history,
template, export and resume compile routes keep working; the generation and
resume edit routes answer 503 until a key is configured.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Server
			if cmd.Flags().Changed("addr") || cfg.Addr == "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(cfg, server.Services{
				Generation: app.Generation,
				Profiles:   app.Profiles,
				History:    app.History,
				Templates:  app.Templates,
				Resume:     app.Resume,
			})
			fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Listening on "+cfg.Addr))
			if app.Generation == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warning("GEMINI_API_KEY is not set; generation and resume edit routes will answer 503"))
			}
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	return cmd
}
