package prompt

import (
	"strings"
	"time"

	"github.com/alexanderramin/outreach/internal/domain"
)

// coverLetterDateLayout matches the US long date form, e.g. "March 3, 2026".
const coverLetterDateLayout = "January 2, 2006"

// BuildCoverLetter renders the cover-letter prompt dated date. Only company
// and role are required.
func BuildCoverLetter(req domain.JobRequest, profile domain.Profile, date time.Time) (string, error) {
	if err := req.ValidateForCoverLetter(); err != nil {
		return "", err
	}
	c := newCandidate(profile)

	var b strings.Builder
	w := func(lines ...string) {
		for _, l := range lines {
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}

	w("You are an expert career coach and professional writer. Write a compelling, professional cover letter.",
		"",
		"**Candidate Details:**",
		"- Name: "+c.name,
		"- Education: "+c.degree+" ("+c.year+"), "+c.university+" (CGPA: "+c.cgpa+")",
		"- Email: "+c.email,
		"- Phone: "+c.contact,
		"- Website: "+c.website,
		"",
		"**Candidate's Skills:**",
		c.skills)
	if c.projects != "" {
		w("", "**Projects:**", c.projects)
	}
	if c.experience != "" {
		w("", "**Experience:**", c.experience)
	}
	w("",
		"**Job Details:**",
		"- Company: "+req.CompanyName,
		"- Role: "+req.Role,
		"- Job ID: "+orDefault(req.JobID, "N/A"),
		"- Job Link: "+orDefault(req.JobLink, "N/A"),
		"- Description: "+orDefault(req.JobDescription, "Not provided"),
		"",
		"**Additional Instructions:**",
		orDefault(req.AdditionalInstructions, "None"),
		"",
		"**Requirements:**",
		"1. **Format:** Standard business letter format.",
		"   - Header: Candidate Name, Contact Info.",
		"   - Date: "+date.Format(coverLetterDateLayout)+".",
		"   - Recipient: Hiring Manager, "+req.CompanyName+".",
		"   - Address: [Company Address] (Keep this placeholder exactly as is).",
		`   - Salutation: "Dear Hiring Manager,"`,
		"2. **Tone:** Professional, confident, enthusiastic, and authentic.",
		"3. **Content:**",
		"   - **Opening:** State the role applied for and express strong interest. Mention the Job ID if available.",
		"   - **Body Paragraph 1 (Experience/Skills):** Connect the candidate's skills and experience to specific requirements in the job description.",
		"   - **Body Paragraph 2 (Why this company/role):** Show understanding of the company and role, aligning the candidate's passion with the job description.",
		"   - **Closing:** Reiterate enthusiasm and request an interview.",
		`   - **Sign-off:** "Sincerely," followed by the candidate name.`,
		"4. **Style:** Clear, concise paragraphs. Plain text only, no Markdown. No bullet points unless absolutely necessary.",
		"5. **Length:** ~300-400 words.",
		"",
		"**Output:**",
		"Provide ONLY the cover letter (including header, date, salutation and sign-off). Do not include any conversational filler before or after.")

	return strings.TrimRight(b.String(), "\n"), nil
}
