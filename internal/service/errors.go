package service

import (
	"errors"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/latex"
	"github.com/alexanderramin/outreach/internal/llm"
	"github.com/alexanderramin/outreach/internal/repository"
)

const (
	MsgGenerationFailed = "Generation failed. Please try again."
	MsgStorageFailed    = "Could not save your changes."
	MsgMissingAPIKey    = "GEMINI_API_KEY is not set. Add it to your environment or .env file."
)

// UserMessage turns an error into the single line shown to the user.
// Diagnostic detail stays in the logs.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var vErr *domain.ValidationError
	var cErr *latex.CompileError
	var sErr *repository.StorageError
	switch {
	case errors.As(err, &vErr):
		return vErr.Error()
	case errors.Is(err, llm.ErrMissingAPIKey):
		return MsgMissingAPIKey
	case errors.As(err, &cErr):
		if cErr.Detail != "" {
			return cErr.Detail
		}
		return cErr.Error()
	case errors.As(err, &sErr):
		return MsgStorageFailed
	case isGenerationError(err):
		return MsgGenerationFailed
	}
	return err.Error()
}

func isGenerationError(err error) bool {
	for _, target := range []error{
		llm.ErrEmptyResponse,
		llm.ErrMalformedResponse,
		llm.ErrAPI,
		llm.ErrTimeout,
		llm.ErrUnavailable,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
