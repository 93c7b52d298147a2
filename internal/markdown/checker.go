// Package markdown validates @path references in the markdown files of sibling repositories.
package markdown

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
)

// Options configures a Checker.
type Options struct {
	Excludes        []string
	ExemptPaths     []string
	Placeholders    []string
	ContextFiles    []string
	MaxContextLines int
	IgnoreFile      string
	Workers         int

	// KnownRepositories are the sibling repository names; a reference whose first
	// segment is one of them (other than the scanned repository) is cross-repo.
	KnownRepositories []string
}

// NewOptions builds checker options from the manifest.
func NewOptions(settings *entities.Settings) Options {
	v := settings.Validation
	return Options{
		Excludes:          v.Excludes,
		ExemptPaths:       v.ExemptPaths,
		Placeholders:      v.Placeholders,
		ContextFiles:      v.ContextFiles,
		MaxContextLines:   v.MaxContextLines,
		IgnoreFile:        v.IgnoreFile,
		Workers:           v.Workers,
		KnownRepositories: settings.Repositories,
	}
}

// Checker scans one repository at a time. It holds no mutable state and is safe
// for concurrent use.
type Checker struct {
	opts   Options
	known  map[string]bool
	exists func(string) bool
}

// NewChecker creates a Checker that resolves references against the real filesystem.
func NewChecker(opts Options) *Checker {
	known := make(map[string]bool, len(opts.KnownRepositories))
	for _, name := range opts.KnownRepositories {
		known[name] = true
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Checker{opts: opts, known: known, exists: pathExists}
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// fileResult is the outcome of checking a single markdown file.
type fileResult struct {
	references int
	exempted   int
	findings   []entities.Finding
}

// CheckRepository validates every markdown file of the repository at root.
// Files are checked concurrently; findings keep the sorted file order so the
// report is deterministic.
func (it *Checker) CheckRepository(
	ctx context.Context,
	name, root string,
) (entities.RepositoryReport, error) {
	report := entities.RepositoryReport{Name: name, Path: root, Present: true, Findings: []entities.Finding{}}

	ignore, err := LoadIgnoreList(filepath.Join(root, it.opts.IgnoreFile))
	if err != nil {
		return report, err
	}

	files, err := ListMarkdownFiles(root, it.opts.Excludes)
	if err != nil {
		return report, fmt.Errorf("failed to list markdown files in %s: %w", root, err)
	}

	results := make([]fileResult, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(it.opts.Workers)
	for i, rel := range files {
		group.Go(func() error {
			if ctxErr := groupCtx.Err(); ctxErr != nil {
				return ctxErr
			}
			results[i] = it.checkFile(name, root, rel, ignore)
			return nil
		})
	}
	if waitErr := group.Wait(); waitErr != nil {
		return report, waitErr
	}

	report.FilesScanned = len(files)
	for _, result := range results {
		report.References += result.references
		report.Exempted += result.exempted
		report.Findings = append(report.Findings, result.findings...)
	}
	return report, nil
}

// checkFile validates one markdown file given by its slash-separated path relative to root.
func (it *Checker) checkFile(repo, root, rel string, ignore *IgnoreList) fileResult {
	var result fileResult

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		result.findings = append(result.findings, entities.Finding{
			Repository: repo,
			File:       rel,
			Severity:   entities.SeverityWarning,
			Kind:       entities.KindUnreadableFile,
			Message:    fmt.Sprintf("cannot read file: %v", err),
		})
		return result
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	if finding, oversized := it.checkContextSize(repo, rel, content); oversized {
		result.findings = append(result.findings, finding)
	}

	if underExemptPath(rel, it.opts.ExemptPaths) || ignore.SkipsFile(rel) {
		return result
	}

	lines := strings.Split(content, "\n")
	meta, bodyStart, fmErr := SplitFrontMatter(lines)
	if fmErr != nil {
		result.findings = append(result.findings, entities.Finding{
			Repository: repo,
			File:       rel,
			Line:       1,
			Severity:   entities.SeverityWarning,
			Kind:       entities.KindInvalidFrontMatter,
			Message:    fmErr.Error(),
		})
	}
	if meta.References.Skip {
		return result
	}

	body := make([]string, len(lines))
	copy(body[bodyStart:], lines[bodyStart:])
	body = StripFencedBlocks(body)

	fileDir := filepath.Join(root, filepath.FromSlash(path.Dir(rel)))
	for _, ref := range Extract(body) {
		result.references++
		line := body[ref.Line-1]

		if it.isExempt(line, ref, meta, ignore) {
			result.exempted++
			continue
		}
		if finding, broken := it.checkReference(repo, root, rel, fileDir, line, ref); broken {
			result.findings = append(result.findings, finding)
		}
	}

	return result
}

// isExempt applies placeholder, heuristic, and declared exemptions.
func (it *Checker) isExempt(line string, ref Reference, meta FrontMatter, ignore *IgnoreList) bool {
	for _, placeholder := range it.opts.Placeholders {
		if ref.Path == placeholder {
			return true
		}
	}
	return inInlineCode(line, ref.Start) ||
		isIllustrative(line, ref.Start) ||
		meta.Ignores(ref.Token) ||
		ignore.SkipsToken(ref.Token)
}

// checkReference returns an error finding when ref is a cross-repo reference
// without a GitHub link, or when it resolves to no existing path.
func (it *Checker) checkReference(
	repo, root, rel, fileDir, line string,
	ref Reference,
) (entities.Finding, bool) {
	finding := entities.Finding{
		Repository: repo,
		File:       rel,
		Line:       ref.Line,
		Reference:  ref.Token,
		Severity:   entities.SeverityError,
	}

	if segment := ref.FirstSegment(); segment != repo && it.known[segment] &&
		!inGitHubLink(line, ref.Start, ref.End) {
		finding.Kind = entities.KindMissingGitHubURL
		finding.Message = fmt.Sprintf(
			"cross-repository reference %s is not linked to a %s URL", ref.Token, GitHubURLPrefix,
		)
		return finding, true
	}

	if _, ok := Resolve(ref.Path, fileDir, root, it.exists); ok {
		return entities.Finding{}, false
	}

	finding.Kind = entities.KindBrokenReference
	finding.Message = fmt.Sprintf("broken reference %s: no such file", ref.Token)
	return finding, true
}

// checkContextSize warns when an assistant context file grows past the line limit.
func (it *Checker) checkContextSize(repo, rel, content string) (entities.Finding, bool) {
	base := path.Base(rel)
	isContext := false
	for _, name := range it.opts.ContextFiles {
		if base == name {
			isContext = true
			break
		}
	}
	if !isContext {
		return entities.Finding{}, false
	}

	count := countLines(content)
	if count <= it.opts.MaxContextLines {
		return entities.Finding{}, false
	}

	return entities.Finding{
		Repository: repo,
		File:       rel,
		Severity:   entities.SeverityWarning,
		Kind:       entities.KindOversizedContext,
		Message: fmt.Sprintf(
			"%s has %d lines (limit %d); prefer patterns and discovery commands over exhaustive listings",
			base, count, it.opts.MaxContextLines,
		),
	}, true
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	count := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		count++
	}
	return count
}
