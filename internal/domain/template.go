package domain

import (
	"fmt"
	"strings"
	"time"
)

// Template is a named, saved JobRequest that can be re-applied to the form.
type Template struct {
	ID        string     `json:"id" yaml:"id,omitempty"`
	Name      string     `json:"name" yaml:"name"`
	Request   JobRequest `json:"data" yaml:"request"`
	CreatedAt time.Time  `json:"timestamp" yaml:"created_at,omitempty"`
}

// Validate checks the template can be stored.
func (t *Template) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return &ValidationError{Fields: []string{"name"}, Message: "template name is required"}
	}
	if len(t.Name) > 120 {
		return &ValidationError{Fields: []string{"name"}, Message: fmt.Sprintf("template name %q is too long", t.Name)}
	}
	return nil
}
