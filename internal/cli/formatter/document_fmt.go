package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/outreach/internal/domain"
)

// FormatDocument renders a generated document for the terminal. The body is
// printed as-is so it can be copied straight out of the terminal.
func FormatDocument(doc domain.GeneratedDocument) string {
	var b strings.Builder
	b.WriteString(KindBadge(doc.Kind))
	b.WriteString("\n\n")
	if doc.Subject != "" {
		b.WriteString(StyleDim.Render("Subject: "))
		b.WriteString(Bold(doc.Subject))
		b.WriteString("\n\n")
	}
	b.WriteString(doc.Body)
	b.WriteString("\n")
	return b.String()
}

// FormatHistoryList renders history entries newest first.
func FormatHistoryList(entries []*domain.HistoryEntry) string {
	if len(entries) == 0 {
		return Dim("No history yet. Generate an email or cover letter first.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			TruncID(e.ID),
			KindBadge(e.Kind),
			OrDash(e.CompanyName),
			OrDash(e.Role),
			Truncate(e.Document().Title(), 48),
			Dim(HumanTimestamp(e.CreatedAt)),
		})
	}
	return RenderBox(fmt.Sprintf("History (%d)", len(entries)),
		RenderTable([]string{"ID", "TYPE", "COMPANY", "ROLE", "TITLE", "WHEN"}, rows))
}

// FormatHistoryEntry renders one entry with its full document.
func FormatHistoryEntry(e *domain.HistoryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(e.CompanyName+" · "+e.Role), Dim(e.ID))
	if e.JobID != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Job ID"), e.JobID)
	}
	fmt.Fprintf(&b, "%s\n\n", Dim(e.CreatedAt.Local().Format("Jan 2, 2006 15:04")))
	b.WriteString(FormatDocument(e.Document()))
	return b.String()
}

// FormatTemplateList renders saved templates.
func FormatTemplateList(templates []*domain.Template) string {
	if len(templates) == 0 {
		return Dim("No templates saved.") + "\n"
	}
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []string{
			Bold(t.Name),
			OrDash(t.Request.CompanyName),
			OrDash(t.Request.Role),
			OrDash(t.Request.JobID),
			TruncID(t.ID),
		})
	}
	return RenderBox("Templates", RenderTable([]string{"NAME", "COMPANY", "ROLE", "JOB ID", "ID"}, rows))
}

// FormatTemplateShow renders a template's request field by field.
func FormatTemplateShow(t *domain.Template) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", StyleBold.Render(t.Name), Dim(t.ID))
	b.WriteString(FormatRequest(t.Request))
	return RenderBox("", b.String())
}

// FormatRequest lists the populated fields of a job request and its
// closing-block flags.
func FormatRequest(r domain.JobRequest) string {
	var b strings.Builder
	field := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			fmt.Fprintf(&b, "  %-12s %s\n", StyleDim.Render(label), value)
		}
	}
	field("Company", r.CompanyName)
	field("Role", r.Role)
	field("Job ID", r.JobID)
	field("Job link", r.JobLink)
	field("Resume", r.ResumeLink)
	field("Email", r.Email)
	field("Contact", r.Contact)
	field("Notes", Truncate(r.AdditionalInstructions, 60))
	if r.JobDescription != "" {
		field("Description", Truncate(strings.Join(strings.Fields(r.JobDescription), " "), 60))
	}

	var flags []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{r.IncludeResumeLink, "resume"}, {r.IncludeJobID, "job id"}, {r.IncludeJobLink, "job link"},
		{r.IncludeEmail, "email"}, {r.IncludeContact, "contact"},
		{r.IncludeProjects, "projects"}, {r.IncludeExperience, "experience"},
	} {
		if f.on {
			flags = append(flags, f.name)
		}
	}
	field("Include", strings.Join(flags, ", "))
	return b.String()
}

// FormatProfile renders the stored profile.
func FormatProfile(p domain.Profile) string {
	if p.IsZero() {
		return Dim("No profile saved. Run `outreach profile edit` to create one.") + "\n"
	}
	rows := [][]string{
		{"Name", OrDash(p.Name)},
		{"Degree", OrDash(p.Degree)},
		{"Graduation", OrDash(p.GraduationYear)},
		{"University", OrDash(p.University)},
		{"CGPA", OrDash(p.CGPA)},
		{"Resume", OrDash(p.ResumeLink)},
		{"Email", OrDash(p.Email)},
		{"Contact", OrDash(p.Contact)},
		{"Website", OrDash(p.Website)},
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%-12s %s\n", StyleDim.Render(r[0]), r[1])
	}
	for _, block := range []struct{ title, text string }{
		{"Skills", p.Skills}, {"Experience", p.Experience}, {"Projects", p.Projects},
	} {
		if strings.TrimSpace(block.text) == "" {
			continue
		}
		b.WriteString("\n" + Header(block.title) + "\n" + strings.TrimSpace(block.text) + "\n")
	}
	return RenderBox("Profile", b.String())
}
