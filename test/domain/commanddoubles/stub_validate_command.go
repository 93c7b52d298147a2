//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/budgetanalyzer/orchestration/internal/domain/commands"
	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
)

// StubValidateCommand is a stub implementation of commands.Validate.
type StubValidateCommand struct {
	ExecuteCallCount int
	Report           *entities.ValidationReport
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ValidateOptions
}

var _ commands.Validate = (*StubValidateCommand)(nil)

func (s *StubValidateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ValidateOptions,
) (*entities.ValidationReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
