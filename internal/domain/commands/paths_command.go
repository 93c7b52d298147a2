package commands

import (
	"context"
	"fmt"

	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
	"github.com/budgetanalyzer/orchestration/internal/workspace"
)

// Paths is the interface for the paths command (Tilt path and port resolution).
type Paths interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PathsOptions) (*entities.PathsReport, error)
}

// PathsOptions holds runtime options for path resolution.
type PathsOptions struct {
	SelfDir string
	MainDir string
	Names   []string // If set, only resolve these names
}

// PathsCommand resolves sibling paths and service ports without touching the filesystem.
type PathsCommand struct{}

// NewPathsCommand creates a new PathsCommand.
func NewPathsCommand() *PathsCommand {
	return &PathsCommand{}
}

// Execute returns every manifest repository, or only the requested names.
// A requested name that is neither a repository nor a service is an error.
func (it *PathsCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts PathsOptions,
) (*entities.PathsReport, error) {
	resolver := workspace.NewResolver(
		workspace.ResolveRoot(firstNonEmpty(opts.MainDir, settings.MainDir), opts.SelfDir),
		settings.Services,
	)
	report := &entities.PathsReport{Root: resolver.Root(), Repositories: []entities.RepositoryPaths{}}

	if len(opts.Names) == 0 {
		for _, name := range settings.Repositories {
			report.Repositories = append(report.Repositories, resolver.Describe(name))
		}
		return report, nil
	}

	for _, name := range opts.Names {
		if !settings.HasRepository(name) && !resolver.HasPorts(name) {
			return nil, fmt.Errorf("%w: %q is not in the manifest", entities.ErrUnknownService, name)
		}
		report.Repositories = append(report.Repositories, resolver.Describe(name))
	}
	return report, nil
}
