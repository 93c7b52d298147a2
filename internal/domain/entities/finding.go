package entities

// Severity classifies a finding. Only errors fail a run.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// FindingKind names the rule that produced a finding.
type FindingKind string

const (
	KindBrokenReference    FindingKind = "broken-reference"
	KindMissingGitHubURL   FindingKind = "missing-github-url"
	KindOversizedContext   FindingKind = "oversized-context-file"
	KindMissingRepository  FindingKind = "missing-repository"
	KindUnreadableFile     FindingKind = "unreadable-file"
	KindScanFailed         FindingKind = "scan-failed"
	KindInvalidFrontMatter FindingKind = "invalid-front-matter"
	KindUnlistedService    FindingKind = "unlisted-service"
	KindRepositoryNoPorts  FindingKind = "repository-without-ports"
)

// Finding is a single diagnostic produced by validation or a manifest check.
type Finding struct {
	Repository string      `json:"repository,omitempty"`
	File       string      `json:"file,omitempty"`
	Line       int         `json:"line,omitempty"`
	Reference  string      `json:"reference,omitempty"`
	Severity   Severity    `json:"severity"`
	Kind       FindingKind `json:"kind"`
	Message    string      `json:"message"`
}

// RepositoryReport holds the validation outcome for one sibling repository.
type RepositoryReport struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Present      bool      `json:"present"`
	FilesScanned int       `json:"files_scanned"`
	References   int       `json:"references"`
	Exempted     int       `json:"exempted"`
	Findings     []Finding `json:"findings"`
}

// Errors counts error findings.
func (r *RepositoryReport) Errors() int {
	return countSeverity(r.Findings, SeverityError)
}

// Warnings counts warning findings.
func (r *RepositoryReport) Warnings() int {
	return countSeverity(r.Findings, SeverityWarning)
}

// ValidationReport aggregates per-repository reports into global totals.
type ValidationReport struct {
	Root         string             `json:"root"`
	Repositories []RepositoryReport `json:"repositories"`
}

// Errors is the global error count across all repositories.
func (r *ValidationReport) Errors() int {
	total := 0
	for i := range r.Repositories {
		total += r.Repositories[i].Errors()
	}
	return total
}

// Warnings is the global warning count across all repositories.
func (r *ValidationReport) Warnings() int {
	total := 0
	for i := range r.Repositories {
		total += r.Repositories[i].Warnings()
	}
	return total
}

// Findings flattens every repository's findings in scan order.
func (r *ValidationReport) Findings() []Finding {
	var all []Finding
	for i := range r.Repositories {
		all = append(all, r.Repositories[i].Findings...)
	}
	return all
}

func countSeverity(findings []Finding, severity Severity) int {
	count := 0
	for _, f := range findings {
		if f.Severity == severity {
			count++
		}
	}
	return count
}
