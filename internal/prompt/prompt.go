// Package prompt renders the natural-language instructions sent to the model.
// Every builder is pure: the same inputs always produce the same prompt.
package prompt

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/outreach/internal/domain"
)

// AskParagraph is reproduced verbatim in every referral email. The
// post-processor bolds this exact string.
const AskParagraph = "I'd be sincerely grateful if you could refer me for this opportunity. " +
	"I completely understand a referral doesn't ensure selection, but it would mean a lot to have my profile considered."

// ThankYouLine opens the closing section; the closing block is injected
// immediately before it.
const ThankYouLine = "Thank you for your time and consideration."

// SignOff starts the signature block.
const SignOff = "Warm regards,"

// DefaultSkills is used when the profile carries no skills summary.
const DefaultSkills = `- Languages: Java, Python, C/C++, JavaScript, TypeScript, Go
- Frontend: React.js, Next.js, Tailwind CSS, Bootstrap
- Backend: Node.js, Express.js, RESTful APIs, JWT/OAuth, WebSockets
- Databases: PostgreSQL, MySQL, MongoDB, Redis, DynamoDB
- CS Core: DSA, OOP, Operating Systems, DBMS, Software Architecture
- Tools: Git, GitHub, Postman, Figma, GitHub Actions
- Cloud/DevOps: AWS (EC2, S3), GCP, Docker, Vercel (CI/CD), Linux
- Methodologies: Agile (Scrum, Kanban), Waterfall, Git Flow`

// candidate holds the profile values as they appear in the prompt, with
// bracketed placeholders for anything the user has not filled in.
type candidate struct {
	name, degree, year, university, cgpa, website, email, contact string
	skills, projects, experience                                   string
}

func newCandidate(p domain.Profile) candidate {
	return candidate{
		name:       domain.CoalesceStr(strings.TrimSpace(p.Name), "[Your Name]"),
		degree:     domain.CoalesceStr(strings.TrimSpace(p.Degree), "[Degree]"),
		year:       domain.CoalesceStr(strings.TrimSpace(p.GraduationYear), "[Graduation Year]"),
		university: domain.CoalesceStr(strings.TrimSpace(p.University), "[University]"),
		cgpa:       domain.CoalesceStr(strings.TrimSpace(p.CGPA), "[CGPA]"),
		website:    strings.TrimSpace(p.Website),
		email:      strings.TrimSpace(p.Email),
		contact:    strings.TrimSpace(p.Contact),
		skills:     domain.CoalesceStr(strings.TrimSpace(p.Skills), DefaultSkills),
		projects:   strings.TrimSpace(p.Projects),
		experience: strings.TrimSpace(p.Experience),
	}
}

// introduction is the fixed opening sentence up to the passion statement.
func (c candidate) introduction() string {
	return fmt.Sprintf("I'm %s, a %s student (%s) from %s (CGPA: %s),", c.name, c.degree, c.year, c.university, c.cgpa)
}

// orDefault returns s, or fallback when s is blank.
func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
