package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/budgetanalyzer/orchestration/internal/domain/repositories"
)

// DefaultCloner is used when no cloner is requested.
const DefaultCloner = "go-git"

// ClonerRegistry manages all registered clone implementations.
type ClonerRegistry struct {
	cloners map[string]domainRepos.ClonerRepository
}

// NewClonerRegistry creates an empty cloner registry.
func NewClonerRegistry() *ClonerRegistry {
	return &ClonerRegistry{
		cloners: make(map[string]domainRepos.ClonerRepository),
	}
}

// Register adds a cloner under its name.
func (r *ClonerRegistry) Register(c domainRepos.ClonerRepository) {
	r.cloners[c.Name()] = c
}

// Get returns the cloner registered under name, or the default cloner when name is empty.
func (r *ClonerRegistry) Get(name string) (domainRepos.ClonerRepository, error) {
	if name == "" {
		name = DefaultCloner
	}
	cloner, ok := r.cloners[name]
	if !ok {
		return nil, fmt.Errorf("unknown cloner: %q (available: %v)", name, r.Names())
	}
	return cloner, nil
}

// Names returns the sorted list of registered cloner names.
func (r *ClonerRegistry) Names() []string {
	names := make([]string, 0, len(r.cloners))
	for name := range r.cloners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
