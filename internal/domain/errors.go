package domain

import "strings"

// ValidationError reports missing or malformed input. It is raised before any
// network activity and its Message is shown to the user verbatim.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}
