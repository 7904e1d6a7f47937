package domain

import "strings"

// DocumentKind distinguishes the generators.
type DocumentKind string

const (
	KindReferralEmail DocumentKind = "email"
	KindCoverLetter   DocumentKind = "cover-letter"
)

// Valid reports whether k is a known document kind.
func (k DocumentKind) Valid() bool {
	return k == KindReferralEmail || k == KindCoverLetter
}

// GeneratedDocument is the subject/body pair produced by one generation.
// Subject may be empty.
type GeneratedDocument struct {
	Kind    DocumentKind `json:"type"`
	Subject string       `json:"subject"`
	Body    string       `json:"body"`
}

// Text renders the document the way it is copied to the clipboard:
// "Subject: <s>\n\n<body>" when a subject exists, otherwise the raw body.
func (d GeneratedDocument) Text() string {
	if d.Subject == "" {
		return d.Body
	}
	return "Subject: " + d.Subject + "\n\n" + d.Body
}

// Title returns a short label for listings.
func (d GeneratedDocument) Title() string {
	if d.Subject != "" {
		return d.Subject
	}
	line, _, _ := strings.Cut(strings.TrimSpace(d.Body), "\n")
	return line
}

// ClosingLabel is one of the mechanically injected closing-block labels.
type ClosingLabel string

const (
	LabelResume  ClosingLabel = "Resume"
	LabelJobID   ClosingLabel = "Job ID"
	LabelJobLink ClosingLabel = "Job Link"
	LabelEmail   ClosingLabel = "Email"
	LabelContact ClosingLabel = "Contact"
)

// ClosingLabels lists the labels in closing-block order.
var ClosingLabels = []ClosingLabel{LabelResume, LabelJobID, LabelJobLink, LabelEmail, LabelContact}

// ClosingItem is one "<Label>: <value>" line of the closing block.
type ClosingItem struct {
	Label ClosingLabel
	Value string
}

func (c ClosingItem) String() string {
	return string(c.Label) + ": " + c.Value
}

// ClosingItems derives the closing block from the request flags. An item is
// included only when its flag is set and its value is non-empty.
func ClosingItems(r JobRequest) []ClosingItem {
	candidates := []struct {
		include bool
		item    ClosingItem
	}{
		{r.IncludeResumeLink, ClosingItem{LabelResume, r.ResumeLink}},
		{r.IncludeJobID, ClosingItem{LabelJobID, r.JobID}},
		{r.IncludeJobLink, ClosingItem{LabelJobLink, r.JobLink}},
		{r.IncludeEmail, ClosingItem{LabelEmail, r.Email}},
		{r.IncludeContact, ClosingItem{LabelContact, r.Contact}},
	}

	var items []ClosingItem
	for _, c := range candidates {
		v := strings.TrimSpace(c.item.Value)
		if c.include && v != "" {
			items = append(items, ClosingItem{Label: c.item.Label, Value: v})
		}
	}
	return items
}
