package cli

import (
	"fmt"

	"github.com/alexanderramin/outreach/internal/cli/formatter"
	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/repository"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"h"},
		Short:   "Browse previously generated documents",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryExportCmd(app),
		newHistoryDeleteCmd(app),
		newHistoryClearCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var (
		query string
		kind  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List history, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := repository.HistoryFilter{Query: query, Kind: domain.DocumentKind(kind), Limit: limit}
			if f.Kind != "" && !f.Kind.Valid() {
				return &domain.ValidationError{
					Fields:  []string{"type"},
					Message: fmt.Sprintf("unknown document type %q (want %q or %q)", kind, domain.KindReferralEmail, domain.KindCoverLetter),
				}
			}
			entries, err := app.History.List(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistoryList(entries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search company, role and subject")
	cmd.Flags().StringVar(&kind, "type", "", "only show email or cover-letter")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most N entries")
	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a generated document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := resolveHistoryEntry(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistoryEntry(e))
			return writeDocument(cmd, app, e.Document(), out)
		},
	}
	bindOutputFlags(cmd, &out)
	return cmd
}

func newHistoryExportCmd(app *App) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export a generated document as PDF or .eml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !out.copy && out.pdf == "" && out.eml == "" {
				return fmt.Errorf("nothing to export; pass --pdf, --eml or --copy")
			}
			e, err := resolveHistoryEntry(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			return writeDocument(cmd, app, e.Document(), out)
		},
	}
	bindOutputFlags(cmd, &out)
	return cmd
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete one history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := resolveHistoryEntry(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.History.Delete(ctx, e.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Deleted "+formatter.TruncID(e.ID)))
			return nil
		},
	}
}

func newHistoryClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to clear history without --yes")
				}
				confirm := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().Title("Delete all history?").Value(&yes),
				)).WithTheme(outreachHuhTheme()).WithShowHelp(false)
				if err := confirm.Run(); err != nil {
					return err
				}
				if !yes {
					return nil
				}
			}
			n, err := app.History.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Deleted %d entries", n)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
