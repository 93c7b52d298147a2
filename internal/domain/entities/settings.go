package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

const (
	// SupportedManifestMajor is the only manifest schema major version understood by this build.
	SupportedManifestMajor = "v1"

	// RemoteNamePlaceholder is substituted with the repository name to build its clone URL.
	RemoteNamePlaceholder = "{name}"

	defaultMaxContextLines = 200
	defaultIgnoreFile      = ".reference-ignore"
	defaultScanWorkers     = 8
)

// Settings is the workspace manifest: the single source of truth for the sibling
// repositories, their clone remote, and the service port tables.
type Settings struct {
	Version      string              `yaml:"version"      hcl:"version,optional"`
	Self         string              `yaml:"self"         hcl:"self,optional"`
	MainDir      string              `yaml:"main_dir"     hcl:"main_dir,optional"`
	Remote       string              `yaml:"remote"       hcl:"remote,optional"`
	Repositories []string            `yaml:"repositories" hcl:"repositories,optional"`
	Services     []ServiceSettings   `yaml:"services"     hcl:"service,block"`
	Validation   *ValidationSettings `yaml:"validation"   hcl:"validation,block"`
}

// ServiceSettings maps a service to its HTTP port and remote-debug (JDWP) port.
// A zero port means the service has no entry in that table.
type ServiceSettings struct {
	Name      string `yaml:"name"       hcl:"name,label"`
	Port      int    `yaml:"port"       hcl:"port,optional"`
	DebugPort int    `yaml:"debug_port" hcl:"debug_port,optional"`
}

// ValidationSettings tunes the markdown reference validator.
type ValidationSettings struct {
	Excludes        []string `yaml:"excludes"          hcl:"excludes,optional"`
	ExemptPaths     []string `yaml:"exempt_paths"      hcl:"exempt_paths,optional"`
	Placeholders    []string `yaml:"placeholders"      hcl:"placeholders,optional"`
	ContextFiles    []string `yaml:"context_files"     hcl:"context_files,optional"`
	MaxContextLines int      `yaml:"max_context_lines" hcl:"max_context_lines,optional"`
	IgnoreFile      string   `yaml:"ignore_file"       hcl:"ignore_file,optional"`
	Workers         int      `yaml:"workers"           hcl:"workers,optional"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a manifest file. Files ending in ".hcl" are decoded
// as HCL, anything else as YAML. Missing optional values are defaulted.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings *Settings
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		settings, err = decodeHCL(data, path)
	} else {
		settings, err = decodeYAML(data)
	}
	if err != nil {
		return nil, err
	}

	settings.MainDir = expandEnv(settings.MainDir)
	settings.applyDefaults()

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

func decodeYAML(data []byte) (*Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &settings, nil
}

// FindConfigFile searches for a manifest in standard locations.
// Returns the path to the first file found or ErrConfigNotFound.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".orchestrator.yaml",
		".orchestrator.yml",
		"orchestrator.yaml",
		"orchestrator.yml",
		"orchestrator.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrConfigNotFound
}

// DefaultSettings returns the built-in Budget Analyzer manifest, used when no file is found.
func DefaultSettings() *Settings {
	settings := &Settings{
		Version: SupportedManifestMajor,
		Self:    "orchestration",
		Remote:  "https://github.com/budgetanalyzer/{name}.git",
		Repositories: []string{
			"orchestration",
			"service-common",
			"transaction-service",
			"currency-service",
			"budget-analyzer-web",
			"session-gateway",
			"token-validation-service",
			"permission-service",
		},
		Services: []ServiceSettings{
			{Name: "transaction-service", Port: 8082, DebugPort: 5006},
			{Name: "currency-service", Port: 8084, DebugPort: 5007},
			{Name: "permission-service", Port: 8086, DebugPort: 5008},
			{Name: "session-gateway", Port: 8081, DebugPort: 5009},
			{Name: "token-validation-service", Port: 8088, DebugPort: 5010},
			{Name: "budget-analyzer-web", Port: 3000},
		},
	}
	settings.applyDefaults()
	return settings
}

// CloneURL substitutes the repository name into the remote pattern.
func (s *Settings) CloneURL(name string) string {
	return strings.ReplaceAll(s.Remote, RemoteNamePlaceholder, name)
}

// HasRepository reports whether name is declared in the manifest.
func (s *Settings) HasRepository(name string) bool {
	for _, repo := range s.Repositories {
		if repo == name {
			return true
		}
	}
	return false
}

func (s *Settings) applyDefaults() {
	if s.Version == "" {
		s.Version = SupportedManifestMajor
	}
	if s.Validation == nil {
		//nolint:exhaustruct // filled below
		s.Validation = &ValidationSettings{}
	}

	v := s.Validation
	if len(v.Excludes) == 0 {
		v.Excludes = []string{
			"**/.git/**",
			"**/node_modules/**",
			"**/target/**",
			"**/build/**",
			"**/dist/**",
			"**/vendor/**",
		}
	}
	if len(v.ExemptPaths) == 0 {
		v.ExemptPaths = []string{"docs/decisions/", "templates/"}
	}
	if len(v.Placeholders) == 0 {
		v.Placeholders = []string{"path/to/file"}
	}
	if len(v.ContextFiles) == 0 {
		v.ContextFiles = []string{"CLAUDE.md", "CLAUDE.local.md"}
	}
	if v.MaxContextLines <= 0 {
		v.MaxContextLines = defaultMaxContextLines
	}
	if v.IgnoreFile == "" {
		v.IgnoreFile = defaultIgnoreFile
	}
	if v.Workers <= 0 {
		v.Workers = defaultScanWorkers
	}
}

// validate checks for required manifest values.
func (s *Settings) validate() error {
	if !semver.IsValid(s.Version) {
		return fmt.Errorf("version %q is not a valid semantic version", s.Version)
	}
	if major := semver.Major(s.Version); major != SupportedManifestMajor {
		return fmt.Errorf(
			"manifest version %s is not supported (expected %s.x)", s.Version, SupportedManifestMajor,
		)
	}
	if s.Self == "" {
		return errors.New("self is required")
	}
	if !strings.Contains(s.Remote, RemoteNamePlaceholder) {
		return fmt.Errorf("remote must contain the %s placeholder", RemoteNamePlaceholder)
	}
	if len(s.Repositories) == 0 {
		return errors.New("at least one repository must be configured")
	}

	seen := make(map[string]bool, len(s.Repositories))
	for i, repo := range s.Repositories {
		if repo == "" {
			return fmt.Errorf("repositories[%d] is empty", i)
		}
		if strings.ContainsAny(repo, `/\`) {
			return fmt.Errorf("repositories[%d] %q must be a plain directory name", i, repo)
		}
		if seen[repo] {
			return fmt.Errorf("repositories[%d] %q is declared twice", i, repo)
		}
		seen[repo] = true
	}

	services := make(map[string]bool, len(s.Services))
	for i, svc := range s.Services {
		if svc.Name == "" {
			return fmt.Errorf("services[%d].name is required", i)
		}
		if services[svc.Name] {
			return fmt.Errorf("services[%d] %q is declared twice", i, svc.Name)
		}
		services[svc.Name] = true
		if svc.Port < 0 || svc.DebugPort < 0 {
			return fmt.Errorf("services[%d] %q has a negative port", i, svc.Name)
		}
	}

	return nil
}

// expandEnv expands ${ENV_VAR} references, warning about unset variables.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
