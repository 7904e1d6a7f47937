package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the generation endpoint could not be reached.
	ErrUnavailable = errors.New("llm endpoint unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrEmptyResponse indicates the model returned only whitespace.
	ErrEmptyResponse = errors.New("empty llm response")

	// ErrMalformedResponse indicates the response envelope held no text at
	// any known location.
	ErrMalformedResponse = errors.New("malformed llm response")

	// ErrMissingAPIKey indicates GEMINI_API_KEY is not set.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

	// ErrAPI indicates the endpoint answered with a non-2xx status.
	ErrAPI = errors.New("llm api error")
)

// EmptyResponseError is returned when the extracted text is blank.
type EmptyResponseError struct {
	Model string
}

func (e *EmptyResponseError) Error() string {
	if e.Model == "" {
		return "received empty response from the model"
	}
	return fmt.Sprintf("received empty response from %s", e.Model)
}

func (e *EmptyResponseError) Unwrap() error { return ErrEmptyResponse }

// MalformedResponseError carries the raw envelope for diagnostics. The
// payload is logged through the Observer and never shown to the user.
type MalformedResponseError struct {
	Reason  string
	Payload string
}

func (e *MalformedResponseError) Error() string {
	return "malformed llm response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error { return ErrMalformedResponse }

// APIError is a non-2xx answer from the endpoint.
type APIError struct {
	StatusCode int
	Status     string // provider status such as INVALID_ARGUMENT
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("llm api returned %d %s: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("llm api returned %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return ErrAPI }
