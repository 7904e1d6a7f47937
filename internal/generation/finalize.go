// Package generation turns raw model output into a GeneratedDocument.
//
// Referral emails go through closing-block injection, label cleanup, bolding
// and the subject/body split. The pipeline is idempotent: finalizing the
// text of an already-finalized document with the same request returns the
// same document.
package generation

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/prompt"
	"github.com/alexanderramin/outreach/internal/textstyle"
)

var (
	thankYouPattern    = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(prompt.ThankYouLine))
	warmRegardsPattern = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(prompt.SignOff))
	labelLinePattern   = regexp.MustCompile(`(?i)^(resume|job id|job link|email|contact)\s*:`)
	excessNewlines     = regexp.MustCompile(`\n{3,}`)
	subjectPrefix      = regexp.MustCompile(`(?i)^subject:\s*`)
)

// Anchor identifies where the closing block was inserted.
type Anchor int

const (
	AnchorThankYou Anchor = iota
	AnchorSignOff
	AnchorEnd
)

func (a Anchor) String() string {
	switch a {
	case AnchorThankYou:
		return "thank-you"
	case AnchorSignOff:
		return "sign-off"
	default:
		return "end"
	}
}

// FinalizeReferral post-processes a referral email.
func FinalizeReferral(raw string, req domain.JobRequest) domain.GeneratedDocument {
	text, _ := InjectClosing(strings.TrimSpace(raw), domain.ClosingItems(req))
	text = RepairSubjectJobID(text, req.JobID)
	text = BoldMarkers(text)
	subject, body := SplitSubject(text)
	return domain.GeneratedDocument{Kind: domain.KindReferralEmail, Subject: subject, Body: body}
}

// FinalizeCoverLetter post-processes a cover letter. There is no closing
// block; the text is trimmed, bolded and split.
func FinalizeCoverLetter(raw string) domain.GeneratedDocument {
	text := BoldMarkers(strings.TrimSpace(raw))
	subject, body := SplitSubject(text)
	return domain.GeneratedDocument{Kind: domain.KindCoverLetter, Subject: subject, Body: body}
}

// InjectClosing splits text at the first anchor, removes label lines from the
// part before it and re-inserts items as a blank-line separated block. The
// anchors are tried in order: the thank-you line, the sign-off, the end of
// the text.
func InjectClosing(text string, items []domain.ClosingItem) (string, Anchor) {
	before, after, anchor := text, "", AnchorEnd
	if loc := thankYouPattern.FindStringIndex(text); loc != nil {
		before, after, anchor = text[:loc[0]], text[loc[0]:], AnchorThankYou
	} else if loc := warmRegardsPattern.FindStringIndex(text); loc != nil {
		before, after, anchor = text[:loc[0]], text[loc[0]:], AnchorSignOff
	}

	parts := make([]string, 0, len(items)+2)
	if cleaned := stripLabelLines(before); cleaned != "" {
		parts = append(parts, cleaned)
	}
	for _, item := range items {
		parts = append(parts, item.String())
	}
	if after != "" {
		parts = append(parts, after)
	}
	return strings.Join(parts, "\n\n"), anchor
}

// stripLabelLines drops every line that starts with a closing label, bold or
// plain, then collapses runs of blank lines.
func stripLabelLines(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if IsLabelLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	out := excessNewlines.ReplaceAllString(strings.Join(kept, "\n"), "\n\n")
	return strings.TrimSpace(out)
}

// IsLabelLine reports whether line is a closing-block line such as
// "Resume: ..." or its bolded form.
func IsLabelLine(line string) bool {
	return labelLinePattern.MatchString(strings.TrimSpace(textstyle.Plain(line)))
}

// RepairSubjectJobID appends " - Job ID: <id>" to the subject line when the
// text has one and it does not already mention jobID.
func RepairSubjectJobID(text, jobID string) string {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return text
	}
	first, rest, found := strings.Cut(text, "\n")
	if !subjectPrefix.MatchString(first) {
		return text
	}
	if strings.Contains(textstyle.Plain(first), jobID) {
		return text
	}
	first = strings.TrimRight(first, " \t\r") + " - Job ID: " + jobID
	if !found {
		return first
	}
	return first + "\n" + rest
}

// BoldMarkers bolds every "<Label>:" token (label only) and every verbatim
// occurrence of the ask paragraph.
func BoldMarkers(text string) string {
	for _, label := range domain.ClosingLabels {
		l := string(label)
		text = strings.ReplaceAll(text, l+":", textstyle.Bold(l)+":")
	}
	return strings.ReplaceAll(text, prompt.AskParagraph, textstyle.Bold(prompt.AskParagraph))
}

// SplitSubject separates a leading "Subject:" line from the body. Blank lines
// between the subject and the body are dropped. Without a subject line, or
// with a blank one, the whole text is the body.
func SplitSubject(text string) (subject, body string) {
	first, rest, _ := strings.Cut(text, "\n")
	if !subjectPrefix.MatchString(first) {
		return "", text
	}
	subject = strings.TrimSpace(subjectPrefix.ReplaceAllString(first, ""))
	if subject == "" {
		return "", text
	}

	lines := strings.Split(rest, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	return subject, strings.Join(lines, "\n")
}
