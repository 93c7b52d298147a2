//go:build unit

package markdown_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
	"github.com/budgetanalyzer/orchestration/internal/markdown"
)

// newWorkspace creates <tmp>/orchestration and <tmp>/service-common and returns
// the orchestration root.
func newWorkspace(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for _, name := range []string{"orchestration", "service-common"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o755))
	}
	return filepath.Join(root, "orchestration")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newChecker() *markdown.Checker {
	settings := entities.DefaultSettings()
	opts := markdown.NewOptions(settings)
	opts.KnownRepositories = []string{"orchestration", "service-common"}
	return markdown.NewChecker(opts)
}

func checkOrchestration(t *testing.T, repoRoot string) entities.RepositoryReport {
	t.Helper()

	report, err := newChecker().CheckRepository(context.Background(), "orchestration", repoRoot)
	require.NoError(t, err)
	return report
}

func TestCheckRepositoryBrokenReferences(t *testing.T) {
	t.Parallel()

	t.Run("should report a reference that resolves nowhere", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "README.md"), "See @docs/does-not-exist.md for details.\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		require.Len(t, report.Findings, 1)
		finding := report.Findings[0]
		assert.Equal(t, entities.SeverityError, finding.Severity)
		assert.Equal(t, entities.KindBrokenReference, finding.Kind)
		assert.Equal(t, "README.md", finding.File)
		assert.Equal(t, 1, finding.Line)
		assert.Equal(t, "@docs/does-not-exist.md", finding.Reference)
		assert.Equal(t, 1, report.Errors())
	})

	t.Run("should resolve relative to the referencing file's directory", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "docs", "guides", "setup.md"), "# Setup\n")
		writeFile(t, filepath.Join(repoRoot, "docs", "index.md"), "Start with @guides/setup.md\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		assert.Empty(t, report.Findings)
		assert.Equal(t, 1, report.References)
	})

	t.Run("should resolve relative to the repository root", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "docs", "architecture.md"), "# Architecture\n")
		writeFile(t, filepath.Join(repoRoot, "nested", "deep", "notes.md"), "See @docs/architecture.md\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		assert.Empty(t, report.Findings)
	})

	t.Run("should resolve a self-qualified reference through the parent directory", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "docs", "x.md"), "# X\n")
		writeFile(t, filepath.Join(repoRoot, "README.md"), "See @orchestration/docs/x.md\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		assert.Empty(t, report.Findings)
	})

	t.Run("should keep findings in sorted file order", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "b.md"), "@docs/missing-b.md\n")
		writeFile(t, filepath.Join(repoRoot, "a.md"), "@docs/missing-a.md\n")
		writeFile(t, filepath.Join(repoRoot, "c", "z.md"), "@docs/missing-z.md\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		require.Len(t, report.Findings, 3)
		assert.Equal(t, "a.md", report.Findings[0].File)
		assert.Equal(t, "b.md", report.Findings[1].File)
		assert.Equal(t, "c/z.md", report.Findings[2].File)
		assert.Equal(t, 3, report.FilesScanned)
	})
}

func TestCheckRepositoryExemptions(t *testing.T) {
	t.Parallel()

	t.Run("should never report references inside fenced code blocks", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "README.md"), "Intro\n\n```markdown\nSee @docs/nowhere.md\n```\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		assert.Empty(t, report.Findings)
		assert.Zero(t, report.References)
	})

	t.Run("should skip decision records entirely", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "docs", "decisions", "004-permissions.md"),
			"Will live in @docs/not-yet-written.md and @service-common/docs/future.md\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		assert.Empty(t, report.Findings)
		assert.Zero(t, report.Errors())
		assert.Zero(t, report.Warnings())
	})

	t.Run("should skip templates entirely", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "templates", "service", "CLAUDE.md"), "See @src/main/java/App.java\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		assert.Empty(t, report.Findings)
	})

	t.Run("should exempt inline code, illustrative prose and placeholders", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "GUIDE.md"), strings.Join([]string{
			"Reference files like `@docs/your-file.md`.",
			"Use @docs/your-own.md in your service.",
			"Example: @docs/sample.md",
			"Placeholder @path/to/file here.",
		}, "\n"))

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		assert.Empty(t, report.Findings)
		assert.Equal(t, 4, report.References)
		assert.Equal(t, 4, report.Exempted)
	})

	t.Run("should not descend into excluded directories", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "node_modules", "pkg", "README.md"), "@lib/missing.md\n")
		writeFile(t, filepath.Join(repoRoot, "target", "site", "index.md"), "@lib/missing.md\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		assert.Empty(t, report.Findings)
		assert.Zero(t, report.FilesScanned)
	})
}

func TestCheckRepositoryCrossRepoReferences(t *testing.T) {
	t.Parallel()

	t.Run("should require a GitHub URL even when the file exists locally", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(filepath.Dir(repoRoot), "service-common", "docs", "x.md"), "# X\n")
		writeFile(t, filepath.Join(repoRoot, "docs", "overview.md"), "Shared config lives in @service-common/docs/x.md\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		require.Len(t, report.Findings, 1)
		assert.Equal(t, entities.KindMissingGitHubURL, report.Findings[0].Kind)
		assert.Equal(t, entities.SeverityError, report.Findings[0].Severity)
		assert.Equal(t, "@service-common/docs/x.md", report.Findings[0].Reference)
	})

	t.Run("should accept a cross-repository reference linked to GitHub", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(filepath.Dir(repoRoot), "service-common", "docs", "x.md"), "# X\n")
		writeFile(t, filepath.Join(repoRoot, "docs", "overview.md"),
			"See [@service-common/docs/x.md](https://github.com/budgetanalyzer/service-common/blob/main/docs/x.md)\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		assert.Empty(t, report.Findings)
	})

	t.Run("should still require a linked cross-repository target to exist", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "docs", "overview.md"),
			"See [@service-common/docs/gone.md](https://github.com/budgetanalyzer/service-common/blob/main/docs/gone.md)\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		require.Len(t, report.Findings, 1)
		assert.Equal(t, entities.KindBrokenReference, report.Findings[0].Kind)
	})
}

func TestCheckRepositoryContextFiles(t *testing.T) {
	t.Parallel()

	t.Run("should warn once about an oversized CLAUDE.md without failing", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "CLAUDE.md"), strings.Repeat("guidance line\n", 250))

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		require.Len(t, report.Findings, 1)
		assert.Equal(t, entities.KindOversizedContext, report.Findings[0].Kind)
		assert.Equal(t, 1, report.Warnings())
		assert.Zero(t, report.Errors())
	})

	t.Run("should accept a CLAUDE.local.md at the limit", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "CLAUDE.local.md"), strings.Repeat("x\n", 200))

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		assert.Empty(t, report.Findings)
	})

	t.Run("should not size-check other markdown files", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "docs", "long.md"), strings.Repeat("x\n", 500))

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		assert.Empty(t, report.Findings)
	})
}

func TestCheckRepositoryDeclaredExemptions(t *testing.T) {
	t.Parallel()

	t.Run("should skip a file whose front matter says so", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "PLAN.md"),
			"---\nreferences:\n  skip: true\n---\nWill add @docs/planned.md\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		assert.Empty(t, report.Findings)
	})

	t.Run("should skip only the tokens listed in front matter", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "PLAN.md"), strings.Join([]string{
			"---",
			"references:",
			"  ignore:",
			`    - "@docs/planned.md"`,
			"---",
			"Will add @docs/planned.md and @docs/forgotten.md",
		}, "\n"))

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		require.Len(t, report.Findings, 1)
		assert.Equal(t, "@docs/forgotten.md", report.Findings[0].Reference)
		assert.Equal(t, 6, report.Findings[0].Line)
	})

	t.Run("should warn about front matter that does not parse", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "BAD.md"), "---\nreferences: [unclosed\n---\nBody\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		require.Len(t, report.Findings, 1)
		assert.Equal(t, entities.KindInvalidFrontMatter, report.Findings[0].Kind)
		assert.Equal(t, entities.SeverityWarning, report.Findings[0].Severity)
	})

	t.Run("should still check references between two thematic breaks", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "SETUP.md"), "---\nSee @docs/missing.md for setup\n---\n# Title\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		require.Len(t, report.Findings, 1)
		assert.Equal(t, entities.KindBrokenReference, report.Findings[0].Kind)
		assert.Equal(t, 2, report.Findings[0].Line)
		assert.Equal(t, 1, report.Errors())
		assert.Zero(t, report.Warnings())
	})

	t.Run("should honor tokens and globs from the ignore file", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, ".reference-ignore"),
			"# generated docs\n@docs/generated.md\nplans/**/*.md\n")
		writeFile(t, filepath.Join(repoRoot, "README.md"), "See @docs/generated.md\n")
		writeFile(t, filepath.Join(repoRoot, "plans", "q3", "roadmap.md"), "See @docs/roadmap-detail.md\n")

		// when
		report := checkOrchestration(t, repoRoot)

		// then
		assert.Empty(t, report.Findings)
	})
}

func TestCheckRepositoryCancellation(t *testing.T) {
	t.Parallel()

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		t.Parallel()

		// given
		repoRoot := newWorkspace(t)
		writeFile(t, filepath.Join(repoRoot, "README.md"), "# Readme\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		_, err := newChecker().CheckRepository(ctx, "orchestration", repoRoot)

		// then
		require.ErrorIs(t, err, context.Canceled)
	})
}
