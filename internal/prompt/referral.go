package prompt

import (
	"strings"

	"github.com/alexanderramin/outreach/internal/domain"
)

// passionExamples ties job-description keyword categories to an example
// passion statement the model may adapt.
var passionExamples = []struct {
	keywords  string
	statement string
}{
	{"backend development, system design, APIs, Java, scalability, distributed systems",
		"passionate about building scalable and reliable systems with strong fundamentals in Java, backend development, and system design."},
	{"full-stack development, web technologies, React, Node.js",
		"passionate about building full-stack applications and creating seamless user experiences."},
	{"software engineering, software development, coding, programming languages",
		"passionate about software engineering and building robust, efficient solutions."},
	{"cloud technologies, AWS, microservices, DevOps",
		"passionate about cloud-native development and building scalable distributed systems."},
	{"machine learning, AI, data science, Python",
		"passionate about leveraging data and machine learning to solve complex problems."},
	{"mobile development, iOS, Android, React Native",
		"passionate about mobile application development and creating intuitive user experiences."},
}

// BuildReferral renders the referral-email prompt. It returns a
// *domain.ValidationError, and no prompt, when company, role or job id is
// missing.
func BuildReferral(req domain.JobRequest, profile domain.Profile) (string, error) {
	if err := req.ValidateForReferral(); err != nil {
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

	w("You are an expert career assistant. Your task is to craft a concise, professional, and personalized referral request email.",
		"",
		"**Output Format Rules:**",
		"1. The entire output MUST be plain text. Do not use Markdown, bold, or italics.",
		`2. The output MUST start with a "Subject:" line.`,
		"3. After the subject line, there MUST be exactly one blank line.",
		"4. The rest of the output is the email body.",
		"",
		"**Candidate Information:**",
		"- Name: "+c.name,
		"- Education: "+c.degree+" ("+c.year+"), "+c.university+" (CGPA: "+c.cgpa+")",
		"")

	b.WriteString(contextBlock(c, req))

	w("",
		"**Job Details:**",
		"- Company: "+req.CompanyName,
		"- Role: "+req.Role,
		"- Job ID: "+req.JobID,
		"- Full Job Description:",
		orDefault(req.JobDescription, "No job description provided."),
		"",
		"**Additional Instructions:**",
		orDefault(req.AdditionalInstructions, "No additional instructions provided."),
		"",
		"**Email Structure (FOLLOW THIS EXACTLY):**",
		"",
		"**Subject Line:**",
		"CRITICAL: The subject line MUST include the complete job ID number.",
		"Write EXACTLY this format (do not use parentheses for the Job ID):",
		`"Referral Request for [ROLE_NAME] - Job ID: [JOB_ID_NUMBER]"`,
		"",
		"For this email:",
		"- ROLE_NAME = "+req.Role,
		"- JOB_ID_NUMBER = "+req.JobID,
		"",
		"**Email Body:**",
		"",
		"**Paragraph 1 (Introduction - FIXED FORMAT):**",
		`Start with "Hi Sir," followed by a new line.`,
		`Then write: "`+c.introduction()+`"`,
		"After the comma, continue in the SAME sentence with a one-sentence passion statement that aligns with the job description.",
		"Analyze the job description to determine what the role requires. Most roles are technical, so prioritize technical skills. Examples:")
	for _, ex := range passionExamples {
		w(`- If the JD mentions ` + ex.keywords + ` -> "` + ex.statement + `"`)
	}
	w(`- For non-technical roles (business analysis, product management, etc.) -> "passionate about [relevant non-technical focus from JD]"`,
		"",
		"**Paragraph 2 (Expressing Interest - DYNAMIC):**",
		"2-3 sentences derived strictly from the job description:",
		"- Express interest in the specific role at the company.",
		`- When mentioning the role, write: "`+req.Role+" role at "+req.CompanyName+" (Job ID: "+req.JobID+`)".`,
		"- Reference specific responsibilities or requirements from the job description.",
		"- Be concise and authentic.",
		"",
		"**Paragraph 3 (Highlighting Relevant Experience - DYNAMIC):**",
		"1-2 sentences based on the job description AND the candidate context above:",
		"- First identify the technologies, tools, and skills the job description requires.",
		"- From the candidate's skills, select ONLY 2-4 skills that also appear in the job description.",
		"- Do NOT mention skills that are not in the job description.",
		"- Mention projects or experience only if they are listed above AND use technologies from the job description.",
		"- For non-technical roles, focus on analytical, communication, or business skills from the job description.",
		"",
		"**Paragraph 4 (The Ask - FIXED TEXT):**",
		"Use this EXACT text (do not modify):",
		`"`+AskParagraph+`"`,
		"",
		"**Closing Section:**",
		"After the ask paragraph, go directly to:",
		ThankYouLine,
		"",
		SignOff,
		c.name,
		c.degree+", "+c.university)
	if c.website != "" {
		w(c.website)
	}
	w("",
		"**IMPORTANT - Closing Section:**",
		"- Do NOT include Resume link, Job ID, Job Link, Email, or Contact anywhere in the closing section.",
		"- These are added automatically based on user preferences.",
		`- End the ask paragraph and go directly to "`+ThankYouLine+`"`,
		`- After "`+SignOff+`" include only the name and education (degree, university), plus the website line if one is given above.`,
		"",
		"**GENERAL INSTRUCTIONS:**",
		"- The introduction and ask paragraph are fixed; only paragraphs 2 and 3 are customized from the job description.",
		"- Base everything on the job description provided; do not make assumptions.",
		"- Make the email unique and tailored to this role and company.")

	return strings.TrimRight(b.String(), "\n"), nil
}

// contextBlock renders the filtered skills/projects/experience context. Projects
// and experience appear only when their flag is set and the profile has them.
func contextBlock(c candidate, req domain.JobRequest) string {
	var b strings.Builder
	b.WriteString("**Candidate's Skills (Available for Reference):**\n")
	b.WriteString(c.skills)
	b.WriteByte('\n')
	if req.IncludeProjects && c.projects != "" {
		b.WriteString("\n**Projects (Only mention if relevant to the job description):**\n")
		b.WriteString(c.projects)
		b.WriteByte('\n')
	}
	if req.IncludeExperience && c.experience != "" {
		b.WriteString("\n**Experience (Only mention if relevant to the job description):**\n")
		b.WriteString(c.experience)
		b.WriteByte('\n')
	}
	return b.String()
}
