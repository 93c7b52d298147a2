package workspace

import (
	"fmt"

	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
)

// CheckConsistency compares the repository list with the port tables.
// A service with ports but no repository is a warning (it cannot be built from a
// sibling checkout); a repository with no ports is informational, since libraries
// and the orchestration repository itself legitimately have none.
func CheckConsistency(settings *entities.Settings) []entities.Finding {
	resolver := NewResolver("", settings.Services)

	var findings []entities.Finding
	for _, name := range resolver.ServiceNames() {
		if settings.HasRepository(name) {
			continue
		}
		findings = append(findings, entities.Finding{
			Repository: name,
			Severity:   entities.SeverityWarning,
			Kind:       entities.KindUnlistedService,
			Message:    fmt.Sprintf("service %q has ports but is not in repositories", name),
		})
	}

	for _, name := range settings.Repositories {
		if name == settings.Self || resolver.HasPorts(name) {
			continue
		}
		findings = append(findings, entities.Finding{
			Repository: name,
			Severity:   entities.SeverityInfo,
			Kind:       entities.KindRepositoryNoPorts,
			Message:    fmt.Sprintf("repository %q has no service or debug port", name),
		})
	}

	return findings
}
