package commands

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
	infraRepos "github.com/budgetanalyzer/orchestration/internal/infrastructure/repositories"
	"github.com/budgetanalyzer/orchestration/internal/workspace"
)

// Clone is the interface for the clone command (repository sync).
type Clone interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CloneOptions) (*entities.CloneReport, error)
}

// CloneOptions holds runtime options for a single sync.
type CloneOptions struct {
	SelfDir    string // orchestration repository checkout; its parent is the default root
	MainDir    string // If set, overrides the workspace root (CLI override)
	ClonerName string // If set, use this cloner instead of the default
	DryRun     bool
	Verbose    bool
}

// CloneCommand makes sure every manifest repository exists as a sibling checkout.
type CloneCommand struct {
	clonerRegistry *infraRepos.ClonerRegistry
}

// NewCloneCommand creates a new CloneCommand with the given cloner registry.
func NewCloneCommand(clonerRegistry *infraRepos.ClonerRegistry) *CloneCommand {
	return &CloneCommand{clonerRegistry: clonerRegistry}
}

// Execute clones missing repositories, skipping existing ones and the
// orchestration repository itself. A failed clone is logged and the loop moves
// on; the returned error wraps ErrCloneFailures when any clone failed.
func (it *CloneCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CloneOptions,
) (*entities.CloneReport, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cloner, err := it.clonerRegistry.Get(opts.ClonerName)
	if err != nil {
		return nil, err
	}
	if !cloner.Available() {
		logger.Warnf("Cloner %q is not available, falling back to %q", cloner.Name(), infraRepos.DefaultCloner)
		if cloner, err = it.clonerRegistry.Get(infraRepos.DefaultCloner); err != nil {
			return nil, err
		}
	}

	resolver := workspace.NewResolver(
		workspace.ResolveRoot(firstNonEmpty(opts.MainDir, settings.MainDir), opts.SelfDir),
		settings.Services,
	)
	report := &entities.CloneReport{Root: resolver.Root(), Results: []entities.CloneResult{}}
	logger.Infof("Syncing repositories into %s", resolver.Root())

	for _, name := range settings.Repositories {
		if name == settings.Self {
			logger.Debugf("Skipping %s (this repository)", name)
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr
		}

		result := entities.CloneResult{
			Name: name,
			URL:  settings.CloneURL(name),
			Path: resolver.RepoPath(name),
		}

		info, statErr := os.Lstat(result.Path)
		switch {
		case statErr == nil && info.IsDir():
			result.Status = entities.CloneStatusSkipped
			logger.Infof("%s already exists, skipping", name)
		case statErr == nil:
			result.Status = entities.CloneStatusFailed
			result.Error = fmt.Sprintf("%s exists and is not a directory", result.Path)
			logger.Errorf("Cannot clone %s: %s", name, result.Error)
		case opts.DryRun:
			result.Status = entities.CloneStatusPlanned
			logger.Infof("[DRY RUN] Would clone %s into %s", result.URL, result.Path)
		default:
			logger.Infof("Cloning %s...", name)
			if cloneErr := cloner.Clone(ctx, result.URL, result.Path); cloneErr != nil {
				result.Status = entities.CloneStatusFailed
				result.Error = cloneErr.Error()
				logger.Errorf("Failed to clone %s: %v", name, cloneErr)
			} else {
				result.Status = entities.CloneStatusCloned
				logger.Infof("Cloned %s", name)
			}
		}

		report.Results = append(report.Results, result)
	}

	logger.Infof(
		"Sync complete: %d cloned, %d skipped, %d failed",
		report.Count(entities.CloneStatusCloned),
		report.Count(entities.CloneStatusSkipped),
		report.Count(entities.CloneStatusFailed),
	)

	if report.Failed() {
		logger.Warn("Some repositories failed to clone. Check network connection and re-run.")
		return report, fmt.Errorf(
			"%w: %d of %d", entities.ErrCloneFailures, report.Count(entities.CloneStatusFailed), len(report.Results),
		)
	}
	return report, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
