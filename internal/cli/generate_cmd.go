package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/outreach/internal/cli/formatter"
	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/export"
	"github.com/alexanderramin/outreach/internal/service"
	"github.com/emersion/go-message/mail"
	"github.com/spf13/cobra"
)

// generator describes one of the two document commands.
type generator struct {
	kind  domain.DocumentKind
	use   string
	short string
	run   func(service.GenerationService, context.Context, domain.JobRequest) (*service.GenerationResult, error)
}

var (
	generateReferral = generator{
		kind:  domain.KindReferralEmail,
		use:   "referral",
		short: "Generate a referral request email",
		run:   service.GenerationService.GenerateReferral,
	}
	generateCoverLetter = generator{
		kind:  domain.KindCoverLetter,
		use:   "cover-letter",
		short: "Generate a cover letter",
		run:   service.GenerationService.GenerateCoverLetter,
	}
)

func (g generator) spinnerText() string {
	if g.kind == domain.KindCoverLetter {
		return "Writing cover letter..."
	}
	return "Writing referral email..."
}

type outputFlags struct {
	copy bool
	pdf  string
	eml  string
	to   string
}

func bindOutputFlags(cmd *cobra.Command, o *outputFlags) {
	cmd.Flags().BoolVar(&o.copy, "copy", false, "copy the document to the clipboard")
	cmd.Flags().StringVar(&o.pdf, "pdf", "", "write the document as PDF to `FILE`")
	cmd.Flags().StringVar(&o.eml, "eml", "", "write the document as an .eml draft to `FILE`")
	cmd.Flags().StringVar(&o.to, "to", "", "recipient address for the .eml draft")
}

func newGenerateCmd(app *App, g generator) *cobra.Command {
	var (
		req      domain.JobRequest
		tmpl     string
		descFile string
		useForm  bool
		edit     bool
		out      outputFlags
	)

	cmd := &cobra.Command{
		Use:   g.use,
		Short: g.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.generation()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			final := req
			if tmpl != "" {
				base, err := app.Templates.Apply(ctx, tmpl)
				if err != nil {
					return err
				}
				final = base
				overlayChanged(cmd.Flags(), &final, req)
			}
			if descFile != "" {
				text, err := readInput(cmd, descFile)
				if err != nil {
					return err
				}
				final.JobDescription = text
			}
			if useForm && app.interactive() {
				kind := g.kind
				if err := newRequestForm(&kind, &final, false).Run(); err != nil {
					return err
				}
			}

			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), g.spinnerText())
			}
			res, err := g.run(svc, ctx, final)
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}
			if res.SaveErr != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warning("History not saved: "+service.UserMessage(res.SaveErr)))
			}

			doc := res.Document
			if edit && app.interactive() {
				if doc, err = runEditor(cmd, app, doc); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDocument(doc))
			return writeDocument(cmd, app, doc, out)
		},
	}

	bindRequestFlags(cmd.Flags(), &req)
	cmd.Flags().StringVarP(&tmpl, "template", "t", "", "start from a saved template (id or name)")
	cmd.Flags().StringVar(&descFile, "description-file", "", "read the job description from `FILE` (- for stdin)")
	cmd.Flags().BoolVar(&useForm, "form", false, "fill in the request interactively")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "open the result in the editor before output")
	bindOutputFlags(cmd, &out)
	return cmd
}

// writeDocument performs the clipboard and file exports requested by flags.
func writeDocument(cmd *cobra.Command, app *App, doc domain.GeneratedDocument, o outputFlags) error {
	w := cmd.ErrOrStderr()
	if o.copy {
		if err := app.copy(doc.Text()); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(w, formatter.Success("Copied to clipboard"))
	}
	if o.pdf != "" {
		if err := writeOutput(cmd, o.pdf, func(f io.Writer) error { return export.WritePDF(f, doc) }); err != nil {
			return err
		}
		fmt.Fprintln(w, formatter.Success("Wrote "+o.pdf))
	}
	if o.eml != "" {
		draft, err := draftFor(cmd.Context(), app, o.to)
		if err != nil {
			return err
		}
		if err := writeOutput(cmd, o.eml, func(f io.Writer) error { return export.WriteEML(f, doc, draft) }); err != nil {
			return err
		}
		fmt.Fprintln(w, formatter.Success("Wrote "+o.eml))
	}
	return nil
}

// draftFor addresses an .eml draft from the saved profile.
func draftFor(ctx context.Context, app *App, to string) (export.Draft, error) {
	p, err := app.Profiles.Get(ctx)
	if err != nil {
		return export.Draft{}, err
	}
	d := export.Draft{To: to}
	if p.Email != "" {
		d.From = (&mail.Address{Name: p.Name, Address: p.Email}).String()
	}
	return d, nil
}
