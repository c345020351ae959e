package group

import (
	"context"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// SuggestMembersOutput represents member candidates from the user directory.
type SuggestMembersOutput struct {
	Suggestions []adapter.DirectoryUser
}

// SuggestMembersUseCase fetches member name suggestions from the external
// user directory.
type SuggestMembersUseCase struct {
	directory adapter.UserDirectory
	logger    *slog.Logger
}

// NewSuggestMembersUseCase creates a new SuggestMembersUseCase instance.
func NewSuggestMembersUseCase(directory adapter.UserDirectory, logger *slog.Logger) *SuggestMembersUseCase {
	return &SuggestMembersUseCase{directory: directory, logger: logger}
}

// Execute asks the directory for candidates. A directory failure is logged
// and surfaces as an empty list; manual entry always remains available.
func (uc *SuggestMembersUseCase) Execute(ctx context.Context) (*SuggestMembersOutput, error) {
	suggestions, err := uc.directory.Suggest(ctx)
	if err != nil {
		uc.logger.Warn("user directory unavailable, continuing without suggestions", "error", err)
		return &SuggestMembersOutput{Suggestions: nil}, nil
	}
	return &SuggestMembersOutput{Suggestions: suggestions}, nil
}
