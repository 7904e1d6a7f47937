package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// requestFlag binds one JobRequest field to a command-line flag. Exactly one
// of str and on is set.
type requestFlag struct {
	name  string
	usage string
	str   func(*domain.JobRequest) *string
	on    func(*domain.JobRequest) *bool
}

var requestFlags = []requestFlag{
	{name: "company", usage: "company name", str: func(r *domain.JobRequest) *string { return &r.CompanyName }},
	{name: "role", usage: "role applied for", str: func(r *domain.JobRequest) *string { return &r.Role }},
	{name: "job-id", usage: "job or requisition id", str: func(r *domain.JobRequest) *string { return &r.JobID }},
	{name: "job-link", usage: "link to the job posting", str: func(r *domain.JobRequest) *string { return &r.JobLink }},
	{name: "description", usage: "job description text", str: func(r *domain.JobRequest) *string { return &r.JobDescription }},
	{name: "resume-link", usage: "resume link (defaults to the profile)", str: func(r *domain.JobRequest) *string { return &r.ResumeLink }},
	{name: "email", usage: "email address (defaults to the profile)", str: func(r *domain.JobRequest) *string { return &r.Email }},
	{name: "contact", usage: "phone number (defaults to the profile)", str: func(r *domain.JobRequest) *string { return &r.Contact }},
	{name: "instructions", usage: "additional instructions for the model", str: func(r *domain.JobRequest) *string { return &r.AdditionalInstructions }},

	{name: "include-resume", usage: "add the resume link to the closing block", on: func(r *domain.JobRequest) *bool { return &r.IncludeResumeLink }},
	{name: "include-job-id", usage: "add the job id to the closing block", on: func(r *domain.JobRequest) *bool { return &r.IncludeJobID }},
	{name: "include-job-link", usage: "add the job link to the closing block", on: func(r *domain.JobRequest) *bool { return &r.IncludeJobLink }},
	{name: "include-email", usage: "add the email to the closing block", on: func(r *domain.JobRequest) *bool { return &r.IncludeEmail }},
	{name: "include-contact", usage: "add the phone number to the closing block", on: func(r *domain.JobRequest) *bool { return &r.IncludeContact }},
	{name: "include-projects", usage: "mention profile projects", on: func(r *domain.JobRequest) *bool { return &r.IncludeProjects }},
	{name: "include-experience", usage: "mention profile experience", on: func(r *domain.JobRequest) *bool { return &r.IncludeExperience }},
}

// bindRequestFlags registers the JobRequest flags on fs, writing into r.
// Boolean defaults come from domain.DefaultJobRequest.
func bindRequestFlags(fs *pflag.FlagSet, r *domain.JobRequest) {
	defaults := domain.DefaultJobRequest()
	for _, f := range requestFlags {
		if f.str != nil {
			fs.StringVar(f.str(r), f.name, "", f.usage)
			continue
		}
		fs.BoolVar(f.on(r), f.name, *f.on(&defaults), f.usage)
	}
}

// overlayChanged copies into dst only the fields whose flags were set
// explicitly, so flags refine a template rather than reset it.
func overlayChanged(fs *pflag.FlagSet, dst *domain.JobRequest, src domain.JobRequest) {
	for _, f := range requestFlags {
		if !fs.Changed(f.name) {
			continue
		}
		if f.str != nil {
			*f.str(dst) = *f.str(&src)
		} else {
			*f.on(dst) = *f.on(&src)
		}
	}
}

// readInput reads a file argument; "-" means stdin.
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// writeOutput creates path and hands it to write. "-" writes to stdout.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
