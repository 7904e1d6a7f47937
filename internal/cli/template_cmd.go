package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/outreach/internal/cli/formatter"
	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"tpl"},
		Short:   "Save and reuse job request templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
		newTemplateSaveCmd(app),
		newTemplateDeleteCmd(app),
		newTemplateExportCmd(app),
		newTemplateImportCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Templates.List(cmd.Context(), query)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTemplateList(templates))
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "search name, company and role")
	return cmd
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME|ID",
		Short: "Show template details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Templates.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTemplateShow(t))
			return nil
		},
	}
}

func newTemplateSaveCmd(app *App) *cobra.Command {
	var req domain.JobRequest

	cmd := &cobra.Command{
		Use:   "save [NAME]",
		Short: "Save a job request under a name",
		Long: `Save a job request under a name. Saving under an existing name
(case-insensitive) replaces that template.`,
		Example: `  outreach template save "Acme backend" --company Acme --role SDE --include-job-link
  outreach referral --template "Acme backend" --job-id R-1042`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			} else if app.interactive() {
				if err := templateNameForm(&name).Run(); err != nil {
					return err
				}
			}
			t, err := app.Templates.Save(cmd.Context(), name, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Saved template %q (%s)", t.Name, formatter.TruncID(t.ID))))
			return nil
		},
	}
	bindRequestFlags(cmd.Flags(), &req)
	return cmd
}

func newTemplateDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME|ID",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Templates.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Deleted template %q", args[0])))
			return nil
		},
	}
}

func newTemplateExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all templates as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOutput(cmd, out, func(w io.Writer) error {
				return app.Templates.Export(cmd.Context(), w)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output `FILE` (- for stdout)")
	return cmd
}

func newTemplateImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import templates from a YAML file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening %s: %w", args[0], err)
				}
				defer f.Close()
				r = f
			}
			n, err := app.Templates.Import(cmd.Context(), r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Imported %d template(s)", n)))
			return nil
		},
	}
}
