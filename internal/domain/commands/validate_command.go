package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
	"github.com/budgetanalyzer/orchestration/internal/markdown"
	"github.com/budgetanalyzer/orchestration/internal/workspace"
)

// Validate is the interface for the validate command (markdown reference check).
type Validate interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ValidateOptions) (*entities.ValidationReport, error)
}

// ValidateOptions holds runtime options for a validation run.
type ValidateOptions struct {
	SelfDir      string
	MainDir      string
	Repositories []string // If set, only validate these repositories (CLI override)
	Verbose      bool
}

// ValidateCommand checks the markdown of every sibling repository present on disk.
type ValidateCommand struct{}

// NewValidateCommand creates a new ValidateCommand.
func NewValidateCommand() *ValidateCommand {
	return &ValidateCommand{}
}

// Execute validates each repository in manifest order and aggregates the totals.
// Missing repositories are warnings; a repository that cannot be scanned is an
// error finding and the remaining repositories are still validated. The returned error wraps ErrBrokenReferences
// if and only if at least one error finding was produced.
func (it *ValidateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ValidateOptions,
) (*entities.ValidationReport, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	resolver := workspace.NewResolver(
		workspace.ResolveRoot(firstNonEmpty(opts.MainDir, settings.MainDir), opts.SelfDir),
		settings.Services,
	)
	checker := markdown.NewChecker(markdown.NewOptions(settings))
	report := &entities.ValidationReport{Root: resolver.Root(), Repositories: []entities.RepositoryReport{}}

	for _, name := range settings.Repositories {
		if !selected(name, opts.Repositories) {
			continue
		}

		repoPath := resolver.RepoPath(name)
		if !isDir(repoPath) {
			logger.Warnf("Repository %s not found at %s, skipping", name, repoPath)
			report.Repositories = append(report.Repositories, entities.RepositoryReport{
				Name: name,
				Path: repoPath,
				Findings: []entities.Finding{{
					Repository: name,
					Severity:   entities.SeverityWarning,
					Kind:       entities.KindMissingRepository,
					Message:    fmt.Sprintf("repository not found at %s", repoPath),
				}},
			})
			continue
		}

		logger.Infof("Validating %s...", name)
		repoReport, err := checker.CheckRepository(ctx, name, repoPath)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, ctxErr
			}
			logger.Errorf("Failed to validate %s: %v", name, err)
			report.Repositories = append(report.Repositories, entities.RepositoryReport{
				Name:    name,
				Path:    repoPath,
				Present: true,
				Findings: []entities.Finding{{
					Repository: name,
					Severity:   entities.SeverityError,
					Kind:       entities.KindScanFailed,
					Message:    fmt.Sprintf("failed to validate: %v", err),
				}},
			})
			continue
		}
		logFindings(repoReport.Findings)
		logger.Debugf(
			"[%s] %d files, %d references, %d exempted",
			name, repoReport.FilesScanned, repoReport.References, repoReport.Exempted,
		)
		report.Repositories = append(report.Repositories, repoReport)
	}

	logger.Infof("Validation complete: %d errors, %d warnings", report.Errors(), report.Warnings())

	if errorCount := report.Errors(); errorCount > 0 {
		return report, fmt.Errorf("%w: %d error(s)", entities.ErrBrokenReferences, errorCount)
	}
	return report, nil
}

func selected(name string, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if f == name {
			return true
		}
	}
	return false
}

func logFindings(findings []entities.Finding) {
	for _, f := range findings {
		location := f.File
		if f.Line > 0 {
			location = fmt.Sprintf("%s:%d", f.File, f.Line)
		}
		switch f.Severity {
		case entities.SeverityError:
			logger.Errorf("[%s] %s: %s", f.Repository, location, f.Message)
		case entities.SeverityWarning:
			logger.Warnf("[%s] %s: %s", f.Repository, location, f.Message)
		default:
			logger.Infof("[%s] %s: %s", f.Repository, location, f.Message)
		}
	}
}
