//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/budgetanalyzer/orchestration/internal/domain/commands"
	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
)

// StubCloneCommand is a stub implementation of commands.Clone.
type StubCloneCommand struct {
	ExecuteCallCount int
	Report           *entities.CloneReport
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.CloneOptions
}

var _ commands.Clone = (*StubCloneCommand)(nil)

func (s *StubCloneCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.CloneOptions,
) (*entities.CloneReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
