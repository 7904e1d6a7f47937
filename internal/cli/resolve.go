package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/repository"
)

// resolveHistoryEntry finds a history entry by full id or by a unique id
// prefix, as printed in `history list`.
func resolveHistoryEntry(ctx context.Context, app *App, input string) (*domain.HistoryEntry, error) {
	input = strings.TrimSpace(input)
	entry, err := app.History.Get(ctx, input)
	if err == nil || !errors.Is(err, repository.ErrNotFound) || input == "" {
		return entry, err
	}

	all, lErr := app.History.List(ctx, repository.HistoryFilter{})
	if lErr != nil {
		return nil, lErr
	}
	var match *domain.HistoryEntry
	for _, e := range all {
		if !strings.HasPrefix(e.ID, input) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("id prefix %q matches more than one entry", input)
		}
		match = e
	}
	if match == nil {
		return nil, fmt.Errorf("history entry %q: %w", input, repository.ErrNotFound)
	}
	return match, nil
}
