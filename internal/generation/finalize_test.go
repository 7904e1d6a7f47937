package generation

import (
	"strings"
	"testing"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/prompt"
	"github.com/alexanderramin/outreach/internal/textstyle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawEmail = "Subject: Referral\n\nHi Sir,\n...\nThank you for your time and consideration.\n\nWarm regards,\nX"

func acmeRequest() domain.JobRequest {
	return domain.JobRequest{CompanyName: "Acme", Role: "SDE", JobID: "J1", IncludeJobID: true}
}

func allFlags() domain.JobRequest {
	return domain.JobRequest{
		CompanyName: "Acme", Role: "SDE", JobID: "J1",
		ResumeLink: "https://r.example/cv", JobLink: "https://jobs.example/1",
		Email: "x@example.com", Contact: "+1 555 0100",
		IncludeResumeLink: true, IncludeJobID: true, IncludeJobLink: true,
		IncludeEmail: true, IncludeContact: true,
	}
}

func TestFinalizeReferral_InsertsJobIDBeforeThankYou(t *testing.T) {
	doc := FinalizeReferral(rawEmail, acmeRequest())

	line := textstyle.Bold("Job ID") + ": J1"
	assert.Equal(t, "𝐉𝐨𝐛 𝐈𝐃: J1", line)
	assert.Contains(t, strings.Split(doc.Body, "\n"), line)
	assert.Less(t, strings.Index(doc.Body, line), strings.Index(doc.Body, prompt.ThankYouLine))
	assert.Equal(t, domain.KindReferralEmail, doc.Kind)
}

func TestFinalizeReferral_SplitsSubject(t *testing.T) {
	doc := FinalizeReferral(rawEmail, domain.JobRequest{CompanyName: "Acme", Role: "SDE"})

	assert.Equal(t, "Referral", doc.Subject)
	assert.True(t, strings.HasPrefix(doc.Body, "Hi Sir,"))
}

func TestFinalizeReferral_NoFlagsNoLabelLines(t *testing.T) {
	raw := "Subject: Referral Request for SDE - Job ID: J1\n\nHi Sir,\nBody text.\n\n" +
		"Resume: https://r.example/cv\nJob Link: https://jobs.example/1\n\n\n\nEmail: x@example.com\nContact: 123\n" +
		prompt.ThankYouLine + "\n\nWarm regards,\nX"
	req := allFlags()
	req.IncludeResumeLink, req.IncludeJobID, req.IncludeJobLink = false, false, false
	req.IncludeEmail, req.IncludeContact = false, false

	doc := FinalizeReferral(raw, req)

	for _, line := range strings.Split(doc.Body, "\n") {
		assert.False(t, IsLabelLine(line), "unexpected label line %q", line)
	}
	assert.NotContains(t, doc.Body, "\n\n\n")
	assert.Contains(t, doc.Body, "Body text.\n\n"+prompt.ThankYouLine)
}

func TestFinalizeReferral_ClosingOrder(t *testing.T) {
	doc := FinalizeReferral(rawEmail, allFlags())

	want := strings.Join([]string{
		textstyle.Bold("Resume") + ": https://r.example/cv",
		textstyle.Bold("Job ID") + ": J1",
		textstyle.Bold("Job Link") + ": https://jobs.example/1",
		textstyle.Bold("Email") + ": x@example.com",
		textstyle.Bold("Contact") + ": +1 555 0100",
	}, "\n\n")
	assert.Contains(t, doc.Body, "...\n\n"+want+"\n\n"+prompt.ThankYouLine)
}

func TestFinalizeReferral_EmptyValueSkipped(t *testing.T) {
	req := acmeRequest()
	req.IncludeResumeLink = true

	doc := FinalizeReferral(rawEmail, req)
	assert.NotContains(t, doc.Body, textstyle.Bold("Resume"))
}

func TestFinalizeReferral_Idempotent(t *testing.T) {
	raws := []string{
		rawEmail,
		"Subject: Hello\nHi Sir,\n" + prompt.AskParagraph + "\n\nJob ID: OLD\n\nthank you for your time and consideration.\nWarm regards,\nX",
		"Hi Sir,\nNo subject here.\n\nWarm regards,\nX",
		"Subject: Referral\n\nHi Sir,\nNo anchors at all.",
		"Subject: Referral\n\nHi Sir,\n\n" + prompt.AskParagraph + "\n\n" + prompt.AskParagraph + "\n\n" + prompt.ThankYouLine + "\n\nWarm regards,\nX",
		"Subject:\nSubject: Hi\n\nBody.",
		"",
	}
	for _, raw := range raws {
		for _, req := range []domain.JobRequest{acmeRequest(), allFlags(), {}} {
			once := FinalizeReferral(raw, req)
			twice := FinalizeReferral(once.Text(), req)
			assert.Equal(t, once, twice, "raw=%q", raw)
		}
	}
}

func TestFinalizeCoverLetter_Idempotent(t *testing.T) {
	raws := []string{
		"Dear Hiring Manager,\n\n" + prompt.AskParagraph + "\n\n" + prompt.AskParagraph + "\n\nSincerely,\nX",
		"Subject:\nSubject: Hi",
		"subject:   \n\nDear Hiring Manager,",
	}
	for _, raw := range raws {
		once := FinalizeCoverLetter(raw)
		assert.Equal(t, once, FinalizeCoverLetter(once.Text()), "raw=%q", raw)
	}
}

func TestInjectClosing_SignOffFallback(t *testing.T) {
	text := "Hi Sir,\nBody.\n\nWarm regards,\nX"
	items := []domain.ClosingItem{{Label: domain.LabelJobID, Value: "J1"}}

	got, anchor := InjectClosing(text, items)
	assert.Equal(t, AnchorSignOff, anchor)
	assert.Equal(t, "Hi Sir,\nBody.\n\nJob ID: J1\n\nWarm regards,\nX", got)
}

func TestInjectClosing_EndOfTextFallback(t *testing.T) {
	text := "Hi Sir,\nBody."
	items := []domain.ClosingItem{{Label: domain.LabelEmail, Value: "x@example.com"}}

	got, anchor := InjectClosing(text, items)
	assert.Equal(t, AnchorEnd, anchor)
	assert.Equal(t, "Hi Sir,\nBody.\n\nEmail: x@example.com", got)

	again, _ := InjectClosing(got, items)
	assert.Equal(t, got, again)
}

func TestInjectClosing_NoItemsKeepsSingleGap(t *testing.T) {
	got, anchor := InjectClosing("Body.\n"+prompt.ThankYouLine, nil)
	assert.Equal(t, AnchorThankYou, anchor)
	assert.Equal(t, "Body.\n\n"+prompt.ThankYouLine, got)
}

func TestRepairSubjectJobID(t *testing.T) {
	cases := []struct {
		name, in, id, want string
	}{
		{"appends", "Subject: Referral Request for SDE\n\nBody", "J1", "Subject: Referral Request for SDE - Job ID: J1\n\nBody"},
		{"already present", "Subject: Referral - Job ID: J1\n\nBody", "J1", "Subject: Referral - Job ID: J1\n\nBody"},
		{"bold present", "Subject: Referral - " + textstyle.Bold("Job ID") + ": J1", "J1", "Subject: Referral - " + textstyle.Bold("Job ID") + ": J1"},
		{"no subject", "Hi Sir,\nBody", "J1", "Hi Sir,\nBody"},
		{"no id", "Subject: Referral", "", "Subject: Referral"},
		{"subject only", "subject: Referral", "J1", "subject: Referral - Job ID: J1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RepairSubjectJobID(tc.in, tc.id))
		})
	}
}

func TestBoldMarkers(t *testing.T) {
	in := "See Resume: link and Job ID: 7.\n" + prompt.AskParagraph + "\n\n" + prompt.AskParagraph
	got := BoldMarkers(in)

	assert.Contains(t, got, textstyle.Bold("Resume")+": link")
	assert.Contains(t, got, textstyle.Bold("Job ID")+": 7.")
	assert.Equal(t, 2, strings.Count(got, textstyle.Bold(prompt.AskParagraph)))
	assert.NotContains(t, got, prompt.AskParagraph)
	assert.Equal(t, got, BoldMarkers(got))
}

func TestSplitSubject(t *testing.T) {
	s, b := SplitSubject("SUBJECT:   Hello\n\n\n  \nBody line\nmore")
	assert.Equal(t, "Hello", s)
	assert.Equal(t, "Body line\nmore", b)

	s, b = SplitSubject("Dear Hiring Manager,\nBody")
	assert.Empty(t, s)
	assert.Equal(t, "Dear Hiring Manager,\nBody", b)

	s, b = SplitSubject("Subject:\nSubject: Hi")
	assert.Empty(t, s)
	assert.Equal(t, "Subject:\nSubject: Hi", b)

	s, b = SplitSubject("Subject: only")
	assert.Equal(t, "only", s)
	assert.Empty(t, b)
}

func TestFinalizeCoverLetter(t *testing.T) {
	doc := FinalizeCoverLetter("\n\nAsha Rao\nMarch 3, 2026\n\nDear Hiring Manager,\nBody.\n\nSincerely,\nAsha Rao\n")

	require.Equal(t, domain.KindCoverLetter, doc.Kind)
	assert.Empty(t, doc.Subject)
	assert.True(t, strings.HasPrefix(doc.Body, "Asha Rao\n"))
	assert.True(t, strings.HasSuffix(doc.Body, "Sincerely,\nAsha Rao"))
	assert.Equal(t, doc, FinalizeCoverLetter(doc.Text()))
}
