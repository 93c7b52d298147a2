// Package workspace resolves sibling-repository paths and the service port tables
// the Tilt dev loop is wired from. Every function here is pure: no filesystem access.
package workspace

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
)

// ResolveRoot returns the workspace root: the override when given, otherwise the
// parent of selfDir (the orchestration repository checkout).
func ResolveRoot(override, selfDir string) string {
	if override != "" {
		return absOrClean(override)
	}
	return filepath.Dir(absOrClean(selfDir))
}

func absOrClean(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// Resolver maps repository names to paths under a fixed root, and service names to ports.
type Resolver struct {
	root         string
	servicePorts map[string]int
	debugPorts   map[string]int
}

// NewResolver builds a Resolver for root from the manifest service entries.
// Services with a zero port are left out of the corresponding table.
func NewResolver(root string, services []entities.ServiceSettings) *Resolver {
	resolver := &Resolver{
		root:         root,
		servicePorts: make(map[string]int, len(services)),
		debugPorts:   make(map[string]int, len(services)),
	}
	for _, svc := range services {
		if svc.Port > 0 {
			resolver.servicePorts[svc.Name] = svc.Port
		}
		if svc.DebugPort > 0 {
			resolver.debugPorts[svc.Name] = svc.DebugPort
		}
	}
	return resolver
}

// Root returns the workspace root.
func (it *Resolver) Root() string {
	return it.root
}

// RepoPath joins the root and name. It neither checks that the directory
// exists nor that name is a declared repository.
func (it *Resolver) RepoPath(name string) string {
	return filepath.Join(it.root, name)
}

// ServicePort returns the HTTP port of a service.
func (it *Resolver) ServicePort(name string) (int, error) {
	port, ok := it.servicePorts[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q has no HTTP port", entities.ErrUnknownService, name)
	}
	return port, nil
}

// DebugPort returns the remote-debug port of a service.
func (it *Resolver) DebugPort(name string) (int, error) {
	port, ok := it.debugPorts[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q has no debug port", entities.ErrUnknownService, name)
	}
	return port, nil
}

// HasPorts reports whether name appears in either port table.
func (it *Resolver) HasPorts(name string) bool {
	_, http := it.servicePorts[name]
	_, debug := it.debugPorts[name]
	return http || debug
}

// ServiceNames lists every service present in either port table, sorted.
func (it *Resolver) ServiceNames() []string {
	seen := make(map[string]bool, len(it.servicePorts))
	names := make([]string, 0, len(it.servicePorts))
	for _, table := range []map[string]int{it.servicePorts, it.debugPorts} {
		for name := range table {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Describe returns the path and both ports of name; missing ports are zero.
func (it *Resolver) Describe(name string) entities.RepositoryPaths {
	return entities.RepositoryPaths{
		Name:      name,
		Path:      it.RepoPath(name),
		Port:      it.servicePorts[name],
		DebugPort: it.debugPorts[name],
	}
}
