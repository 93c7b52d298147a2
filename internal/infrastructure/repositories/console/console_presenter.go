package console

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
)

// Presenter renders run summaries for humans (lipgloss-styled) or machines (JSON).
type Presenter struct {
	out io.Writer

	title   lipgloss.Style
	box     lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// NewPresenter creates a Presenter writing to stdout.
func NewPresenter() *Presenter {
	return NewPresenterWithWriter(os.Stdout)
}

// NewPresenterWithWriter creates a Presenter writing to out. Colors are only
// emitted when out is a terminal.
func NewPresenterWithWriter(out io.Writer) *Presenter {
	renderer := lipgloss.NewRenderer(out)
	return &Presenter{
		out: out,
		title: renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")),
		box: renderer.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		success: renderer.NewStyle().Foreground(lipgloss.Color("#00FA9A")).Bold(true),
		warning: renderer.NewStyle().Foreground(lipgloss.Color("#FFB86C")).Bold(true),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("#FF4C4C")).Bold(true),
		muted:   renderer.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
	}
}

// JSON writes v as indented JSON.
func (it *Presenter) JSON(v any) error {
	encoder := json.NewEncoder(it.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// CloneSummary prints the cloned / skipped / failed tally.
func (it *Presenter) CloneSummary(report *entities.CloneReport) {
	lines := []string{
		it.title.Render("Repository sync"),
		fmt.Sprintf("Cloned:  %s", it.success.Render(fmt.Sprint(report.Count(entities.CloneStatusCloned)))),
		fmt.Sprintf("Skipped: %s", it.muted.Render(fmt.Sprint(report.Count(entities.CloneStatusSkipped)))),
		fmt.Sprintf("Failed:  %s", it.countStyle(report.Count(entities.CloneStatusFailed), it.failure).
			Render(fmt.Sprint(report.Count(entities.CloneStatusFailed)))),
	}
	if planned := report.Count(entities.CloneStatusPlanned); planned > 0 {
		lines = append(lines, fmt.Sprintf("Planned: %s", it.warning.Render(fmt.Sprint(planned))))
	}
	if report.Failed() {
		lines = append(lines, it.failure.Render("Some repositories failed to clone. Check network connection and re-run."))
	}
	it.print(lines)
}

// ValidationSummary prints per-repository counts and the global totals.
func (it *Presenter) ValidationSummary(report *entities.ValidationReport) {
	lines := []string{it.title.Render("Markdown validation")}
	for i := range report.Repositories {
		repo := &report.Repositories[i]
		if !repo.Present {
			lines = append(lines, fmt.Sprintf("%-28s %s", repo.Name, it.warning.Render("not found")))
			continue
		}
		lines = append(lines, fmt.Sprintf(
			"%-28s %s files, %s errors, %s warnings",
			repo.Name,
			it.muted.Render(fmt.Sprint(repo.FilesScanned)),
			it.countStyle(repo.Errors(), it.failure).Render(fmt.Sprint(repo.Errors())),
			it.countStyle(repo.Warnings(), it.warning).Render(fmt.Sprint(repo.Warnings())),
		))
	}

	errorCount, warningCount := report.Errors(), report.Warnings()
	lines = append(lines, fmt.Sprintf("Total: %d errors, %d warnings", errorCount, warningCount))
	switch {
	case errorCount > 0:
		lines = append(lines, it.failure.Render("Validation failed."))
	case warningCount > 0:
		lines = append(lines, it.warning.Render("Validation passed with warnings."))
	default:
		lines = append(lines, it.success.Render("All markdown references are valid."))
	}
	it.print(lines)
}

// Paths prints the workspace root and each repository's path and ports.
func (it *Presenter) Paths(report *entities.PathsReport) {
	lines := []string{it.title.Render("Workspace: " + report.Root)}
	for _, repo := range report.Repositories {
		ports := it.muted.Render("-")
		if repo.Port > 0 || repo.DebugPort > 0 {
			ports = fmt.Sprintf("http=%s debug=%s", portText(repo.Port), portText(repo.DebugPort))
		}
		lines = append(lines, fmt.Sprintf("%-28s %-24s %s", repo.Name, ports, repo.Path))
	}
	it.print(lines)
}

// Findings prints one line per finding followed by a count.
func (it *Presenter) Findings(findings []entities.Finding) {
	lines := []string{it.title.Render("Manifest check")}
	for _, f := range findings {
		lines = append(lines, fmt.Sprintf("%s %s", it.severityLabel(f.Severity), f.Message))
	}
	if len(findings) == 0 {
		lines = append(lines, it.success.Render("Manifest is consistent."))
	}
	it.print(lines)
}

func (it *Presenter) severityLabel(severity entities.Severity) string {
	label := "[" + strings.ToUpper(string(severity)) + "]"
	switch severity {
	case entities.SeverityError:
		return it.failure.Render(label)
	case entities.SeverityWarning:
		return it.warning.Render(label)
	default:
		return it.muted.Render(label)
	}
}

func (it *Presenter) countStyle(count int, nonZero lipgloss.Style) lipgloss.Style {
	if count > 0 {
		return nonZero
	}
	return it.muted
}

func (it *Presenter) print(lines []string) {
	_, _ = fmt.Fprintln(it.out, it.box.Render(strings.Join(lines, "\n")))
}

func portText(port int) string {
	if port == 0 {
		return "-"
	}
	return fmt.Sprint(port)
}
