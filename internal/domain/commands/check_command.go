package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
	"github.com/budgetanalyzer/orchestration/internal/workspace"
)

// Check is the interface for the check command (manifest consistency).
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckOptions) ([]entities.Finding, error)
}

// CheckOptions holds runtime options for a consistency check.
type CheckOptions struct {
	Strict bool // fail on warnings
}

// CheckCommand cross-checks the repository list against the port tables.
type CheckCommand struct{}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand() *CheckCommand {
	return &CheckCommand{}
}

// Execute reports inconsistencies. It only fails when Strict is set and a warning was found.
func (it *CheckCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts CheckOptions,
) ([]entities.Finding, error) {
	findings := workspace.CheckConsistency(settings)
	if findings == nil {
		findings = []entities.Finding{}
	}
	logFindings(findings)

	warnings := 0
	for _, f := range findings {
		if f.Severity == entities.SeverityWarning {
			warnings++
		}
	}
	logger.Infof("Check complete: %d findings, %d warnings", len(findings), warnings)

	if opts.Strict && warnings > 0 {
		return findings, fmt.Errorf("%w: %d warning(s)", entities.ErrInconsistentManifest, warnings)
	}
	return findings, nil
}
