package prompt

import (
	"strings"

	"github.com/alexanderramin/outreach/internal/domain"
)

// ClarificationPrefix marks a model reply that asks a question instead of
// returning edited LaTeX.
const ClarificationPrefix = "CLARIFICATION NEEDED:"

// BuildResumeEdit renders the prompt asking the model to apply request to a
// LaTeX resume while keeping its formatting intact.
func BuildResumeEdit(latex, request string) (string, error) {
	if strings.TrimSpace(latex) == "" {
		return "", &domain.ValidationError{Fields: []string{"latex"}, Message: "Please provide your LaTeX resume code first."}
	}
	if strings.TrimSpace(request) == "" {
		return "", &domain.ValidationError{Fields: []string{"request"}, Message: "Please tell me what you'd like to change."}
	}

	return "You are a LaTeX resume editor assistant. The user has a resume in LaTeX format and wants to make changes.\n\n" +
		"**Current LaTeX Code:**\n```latex\n" + latex + "\n```\n\n" +
		`**User Request:** "` + request + `"` + "\n\n" +
		"**Instructions:**\n" +
		"1. Modify ONLY the content the user asked to change.\n" +
		"2. Keep the EXACT formatting, spacing, structure, and style.\n" +
		"3. Do NOT change the document class, packages, custom macros, layout, margins, or section formatting.\n\n" +
		"**Output Format:**\n" +
		"If the request is clear, return ONLY the complete modified LaTeX code, without explanations and without Markdown code fences.\n" +
		`If the request is unclear, start with "` + ClarificationPrefix + `" followed by your question and do not return any LaTeX.`, nil
}
