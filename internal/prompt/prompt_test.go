package prompt

import (
	"testing"
	"time"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() domain.Profile {
	return domain.Profile{
		Name:           "Asha Rao",
		Degree:         "B.Tech CSE",
		GraduationYear: "2026",
		University:     "State University",
		CGPA:           "9.1",
		Website:        "https://asha.dev",
		Projects:       "- Ledger: Go, PostgreSQL",
		Experience:     "- Acme internship: Python data pipelines",
	}
}

func testRequest() domain.JobRequest {
	return domain.JobRequest{
		CompanyName:    "Acme",
		Role:           "SDE",
		JobID:          "J1",
		JobDescription: "Build Go services on AWS.",
	}
}

func TestBuildReferral_MissingRoleIsValidationError(t *testing.T) {
	req := testRequest()
	req.Role = ""

	out, err := BuildReferral(req, testProfile())

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, out, "no partial prompt on failure")
}

func TestBuildReferral_Deterministic(t *testing.T) {
	a, err := BuildReferral(testRequest(), testProfile())
	require.NoError(t, err)
	b, err := BuildReferral(testRequest(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildReferral_EncodesContract(t *testing.T) {
	out, err := BuildReferral(testRequest(), testProfile())
	require.NoError(t, err)

	assert.Contains(t, out, `The output MUST start with a "Subject:" line.`)
	assert.Contains(t, out, "exactly one blank line")
	assert.Contains(t, out, "I'm Asha Rao, a B.Tech CSE student (2026) from State University (CGPA: 9.1),")
	assert.Contains(t, out, AskParagraph)
	assert.Contains(t, out, ThankYouLine)
	assert.Contains(t, out, "SDE role at Acme (Job ID: J1)")
	assert.Contains(t, out, "Do NOT include Resume link, Job ID, Job Link, Email, or Contact")
	assert.Contains(t, out, "ONLY 2-4 skills")
	assert.Contains(t, out, "https://asha.dev")
	for _, ex := range passionExamples {
		assert.Contains(t, out, ex.statement)
	}
}

func TestBuildReferral_ProjectsAndExperienceFollowFlags(t *testing.T) {
	off, err := BuildReferral(testRequest(), testProfile())
	require.NoError(t, err)
	assert.NotContains(t, off, "Ledger")
	assert.NotContains(t, off, "Acme internship")

	req := testRequest()
	req.IncludeProjects = true
	req.IncludeExperience = true
	on, err := BuildReferral(req, testProfile())
	require.NoError(t, err)
	assert.Contains(t, on, "- Ledger: Go, PostgreSQL")
	assert.Contains(t, on, "- Acme internship: Python data pipelines")
}

func TestBuildReferral_EmptyProfileUsesPlaceholders(t *testing.T) {
	out, err := BuildReferral(testRequest(), domain.Profile{})
	require.NoError(t, err)
	assert.Contains(t, out, "I'm [Your Name], a [Degree] student")
	assert.Contains(t, out, DefaultSkills)
	assert.Contains(t, out, "No additional instructions provided.")
}

func TestBuildCoverLetter_RequiresCompanyAndRoleOnly(t *testing.T) {
	date := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	req := domain.JobRequest{CompanyName: "Acme", Role: "SDE"}

	out, err := BuildCoverLetter(req, testProfile(), date)
	require.NoError(t, err)
	assert.Contains(t, out, "Date: March 3, 2026.")
	assert.Contains(t, out, "- Job ID: N/A")
	assert.Contains(t, out, "[Company Address]")
	assert.Contains(t, out, `"Dear Hiring Manager,"`)

	_, err = BuildCoverLetter(domain.JobRequest{CompanyName: "Acme"}, testProfile(), date)
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestBuildResumeEdit_Validation(t *testing.T) {
	_, err := BuildResumeEdit("  ", "add Go")
	assert.ErrorContains(t, err, "LaTeX resume code")

	_, err = BuildResumeEdit(`\documentclass{article}`, "")
	assert.ErrorContains(t, err, "what you'd like to change")

	out, err := BuildResumeEdit(`\documentclass{article}`, "Add skill: Go")
	require.NoError(t, err)
	assert.Contains(t, out, `"Add skill: Go"`)
	assert.Contains(t, out, ClarificationPrefix)
}
