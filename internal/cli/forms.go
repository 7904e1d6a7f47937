package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/outreach/internal/cli/formatter"
	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// outreachHuhTheme returns a huh theme using the formatter palette.
func outreachHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// includeOptions are the multi-select choices for the closing block and
// profile sections, in display order.
var includeOptions = []struct {
	label string
	key   string
	field func(*domain.JobRequest) *bool
}{
	{"Resume link", "resume", func(r *domain.JobRequest) *bool { return &r.IncludeResumeLink }},
	{"Job ID", "job-id", func(r *domain.JobRequest) *bool { return &r.IncludeJobID }},
	{"Job link", "job-link", func(r *domain.JobRequest) *bool { return &r.IncludeJobLink }},
	{"Email", "email", func(r *domain.JobRequest) *bool { return &r.IncludeEmail }},
	{"Contact number", "contact", func(r *domain.JobRequest) *bool { return &r.IncludeContact }},
	{"Projects from profile", "projects", func(r *domain.JobRequest) *bool { return &r.IncludeProjects }},
	{"Experience from profile", "experience", func(r *domain.JobRequest) *bool { return &r.IncludeExperience }},
}

// requestForm is the job request form. Values are bound through pointers
// owned by the form, so it survives being copied inside a bubbletea model.
type requestForm struct {
	*huh.Form
	kind     *domain.DocumentKind
	req      *domain.JobRequest
	includes []string
}

// newRequestForm builds a form that edits req in place. When chooseKind is
// set the first field selects the document kind.
func newRequestForm(kind *domain.DocumentKind, req *domain.JobRequest, chooseKind bool) *requestForm {
	f := &requestForm{kind: kind, req: req}
	for _, o := range includeOptions {
		if *o.field(req) {
			f.includes = append(f.includes, o.key)
		}
	}

	required := func(label string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New(label + " is required")
			}
			return nil
		}
	}

	var first []huh.Field
	if chooseKind {
		first = append(first, huh.NewSelect[domain.DocumentKind]().
			Title("Document").
			Options(
				huh.NewOption("Referral email", domain.KindReferralEmail),
				huh.NewOption("Cover letter", domain.KindCoverLetter),
			).
			Value(kind))
	}
	first = append(first,
		huh.NewInput().Title("Company").Value(&req.CompanyName).Validate(required("company name")),
		huh.NewInput().Title("Role").Value(&req.Role).Validate(required("role")),
		huh.NewInput().Title("Job ID").Value(&req.JobID).Validate(func(s string) error {
			if *f.kind == domain.KindReferralEmail {
				return required("job id")(s)
			}
			return nil
		}),
		huh.NewInput().Title("Job link").Placeholder("optional").Value(&req.JobLink),
	)

	options := make([]huh.Option[string], 0, len(includeOptions))
	for _, o := range includeOptions {
		options = append(options, huh.NewOption(o.label, o.key))
	}

	f.Form = huh.NewForm(
		huh.NewGroup(first...),
		huh.NewGroup(
			huh.NewText().Title("Job description").Lines(6).Value(&req.JobDescription),
			huh.NewInput().Title("Additional instructions").Placeholder("optional").Value(&req.AdditionalInstructions),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Include").
				Description("Closing lines use your profile when the request leaves them empty").
				Options(options...).
				Value(&f.includes),
		),
	).WithTheme(outreachHuhTheme()).WithShowHelp(false)
	return f
}

// apply copies the multi-select choices back onto the request flags.
func (f *requestForm) apply() {
	for _, o := range includeOptions {
		*o.field(f.req) = false
	}
	for _, k := range f.includes {
		for _, o := range includeOptions {
			if o.key == k {
				*o.field(f.req) = true
			}
		}
	}
}

// Run runs the form standalone and applies the result.
func (f *requestForm) Run() error {
	if err := f.Form.Run(); err != nil {
		return err
	}
	f.apply()
	return nil
}

// profileForm edits every profile field in place.
func profileForm(p *domain.Profile) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&p.Name),
			huh.NewInput().Title("Degree").Placeholder("B.Tech Computer Science").Value(&p.Degree),
			huh.NewInput().Title("Graduation year").Value(&p.GraduationYear),
			huh.NewInput().Title("University").Value(&p.University),
			huh.NewInput().Title("CGPA").Value(&p.CGPA),
		),
		huh.NewGroup(
			huh.NewInput().Title("Resume link").Value(&p.ResumeLink),
			huh.NewInput().Title("Email").Value(&p.Email),
			huh.NewInput().Title("Contact number").Value(&p.Contact),
			huh.NewInput().Title("Website").Value(&p.Website),
		),
		huh.NewGroup(
			huh.NewText().Title("Skills").Lines(5).Value(&p.Skills),
			huh.NewText().Title("Experience").Lines(5).Value(&p.Experience),
			huh.NewText().Title("Projects").Lines(5).Value(&p.Projects),
		),
	).WithTheme(outreachHuhTheme()).WithShowHelp(false)
}

// templateNameForm asks for the name to save a template under.
func templateNameForm(name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Template name").
				Value(name).
				Validate(func(s string) error {
					t := domain.Template{Name: s}
					return t.Validate()
				}),
		),
	).WithTheme(outreachHuhTheme()).WithShowHelp(false)
}
