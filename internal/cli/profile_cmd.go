package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/outreach/internal/cli/formatter"
	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the candidate profile used in every prompt",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileEditCmd(app),
		newProfileSetCmd(app),
		newProfileImportCmd(app),
		newProfileExportCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the profile in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("profile edit needs a terminal; use `profile set` or `profile import`")
			}
			ctx := cmd.Context()
			p, err := app.Profiles.Get(ctx)
			if err != nil {
				return err
			}
			if err := profileForm(&p).Run(); err != nil {
				return err
			}
			if err := app.Profiles.Save(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Profile saved"))
			return nil
		},
	}
}

// profileFields maps flag names onto Profile fields for `profile set`.
var profileFields = []struct {
	name  string
	field func(*domain.Profile) *string
}{
	{"name", func(p *domain.Profile) *string { return &p.Name }},
	{"degree", func(p *domain.Profile) *string { return &p.Degree }},
	{"graduation-year", func(p *domain.Profile) *string { return &p.GraduationYear }},
	{"university", func(p *domain.Profile) *string { return &p.University }},
	{"cgpa", func(p *domain.Profile) *string { return &p.CGPA }},
	{"resume-link", func(p *domain.Profile) *string { return &p.ResumeLink }},
	{"email", func(p *domain.Profile) *string { return &p.Email }},
	{"contact", func(p *domain.Profile) *string { return &p.Contact }},
	{"website", func(p *domain.Profile) *string { return &p.Website }},
	{"skills", func(p *domain.Profile) *string { return &p.Skills }},
	{"experience", func(p *domain.Profile) *string { return &p.Experience }},
	{"projects", func(p *domain.Profile) *string { return &p.Projects }},
}

func newProfileSetCmd(app *App) *cobra.Command {
	var values domain.Profile

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update individual profile fields",
		Example: `  outreach profile set --name "Asha Rao" --email asha@example.com
  outreach profile set --skills "$(cat skills.md)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Profiles.Get(ctx)
			if err != nil {
				return err
			}
			changed := 0
			for _, f := range profileFields {
				if cmd.Flags().Changed(f.name) {
					*f.field(&p) = *f.field(&values)
					changed++
				}
			}
			if changed == 0 {
				return fmt.Errorf("no fields given; see `outreach profile set --help`")
			}
			if err := app.Profiles.Save(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Updated %d profile field(s)", changed)))
			return nil
		},
	}

	for _, f := range profileFields {
		cmd.Flags().StringVar(f.field(&values), f.name, "", "profile "+f.name)
	}
	return cmd
}

func newProfileImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the profile from a YAML file (- for stdin)",
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
			p, err := app.Profiles.Import(cmd.Context(), r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Imported profile for "+formatter.OrDash(p.Name)))
			return nil
		},
	}
}

func newProfileExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the profile as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOutput(cmd, out, func(w io.Writer) error {
				return app.Profiles.Export(cmd.Context(), w)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output `FILE` (- for stdout)")
	return cmd
}
