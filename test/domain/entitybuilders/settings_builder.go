//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test manifests with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	self         string
	mainDir      string
	remote       string
	repositories []string
	services     []entities.ServiceSettings
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		self:         "orchestration",
		remote:       "https://example.com/org/{name}.git",
		repositories: []string{"orchestration", "service-common", "transaction-service"},
	}
}

// WithSelf sets the name of the orchestration repository.
func (b *SettingsBuilder) WithSelf(self string) *SettingsBuilder {
	b.self = self
	return b
}

// WithMainDir sets the workspace root override.
func (b *SettingsBuilder) WithMainDir(mainDir string) *SettingsBuilder {
	b.mainDir = mainDir
	return b
}

// WithRemote sets the clone URL pattern.
func (b *SettingsBuilder) WithRemote(remote string) *SettingsBuilder {
	b.remote = remote
	return b
}

// WithRepositories replaces the repository list.
func (b *SettingsBuilder) WithRepositories(repositories ...string) *SettingsBuilder {
	b.repositories = repositories
	return b
}

// WithService adds a service port entry.
func (b *SettingsBuilder) WithService(name string, port, debugPort int) *SettingsBuilder {
	b.services = append(b.services, entities.ServiceSettings{Name: name, Port: port, DebugPort: debugPort})
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type. Validation
// defaults come from the built-in manifest.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	defaults := entities.DefaultSettings()
	validation := *defaults.Validation
	return &entities.Settings{
		Version:      defaults.Version,
		Self:         b.self,
		MainDir:      b.mainDir,
		Remote:       b.remote,
		Repositories: append([]string(nil), b.repositories...),
		Services:     append([]entities.ServiceSettings(nil), b.services...),
		Validation:   &validation,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.self = "orchestration"
	b.mainDir = ""
	b.remote = "https://example.com/org/{name}.git"
	b.repositories = []string{"orchestration", "service-common", "transaction-service"}
	b.services = nil
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		self:         b.self,
		mainDir:      b.mainDir,
		remote:       b.remote,
		repositories: append([]string(nil), b.repositories...),
		services:     append([]entities.ServiceSettings(nil), b.services...),
	}
}
