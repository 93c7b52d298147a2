//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetanalyzer/orchestration/internal/domain/commands"
	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
	"github.com/budgetanalyzer/orchestration/test/domain/entitybuilders"
)

func writeMarkdown(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestValidateCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass a clean workspace", func(t *testing.T) {
		t.Parallel()

		// given
		selfDir := newSelfDir(t)
		root := filepath.Dir(selfDir)
		writeMarkdown(t, filepath.Join(selfDir, "docs", "setup.md"), "# Setup\n")
		writeMarkdown(t, filepath.Join(selfDir, "README.md"), "See @docs/setup.md\n")
		writeMarkdown(t, filepath.Join(root, "service-common", "README.md"), "# Common\n")
		settings := entitybuilders.NewSettingsBuilder().
			WithRepositories("orchestration", "service-common").
			BuildSettings()

		// when
		report, err := commands.NewValidateCommand().Execute(
			context.Background(), settings, commands.ValidateOptions{SelfDir: selfDir},
		)

		// then
		require.NoError(t, err)
		require.Len(t, report.Repositories, 2)
		assert.Zero(t, report.Errors())
		assert.Zero(t, report.Warnings())
		assert.Equal(t, 1, report.Repositories[0].References)
	})

	t.Run("should aggregate errors across repositories", func(t *testing.T) {
		t.Parallel()

		// given
		selfDir := newSelfDir(t)
		root := filepath.Dir(selfDir)
		writeMarkdown(t, filepath.Join(selfDir, "README.md"), "See @docs/missing.md\n")
		writeMarkdown(t, filepath.Join(root, "service-common", "README.md"), "See @docs/gone.md and @docs/lost.md\n")
		settings := entitybuilders.NewSettingsBuilder().
			WithRepositories("orchestration", "service-common").
			BuildSettings()

		// when
		report, err := commands.NewValidateCommand().Execute(
			context.Background(), settings, commands.ValidateOptions{SelfDir: selfDir},
		)

		// then
		require.ErrorIs(t, err, entities.ErrBrokenReferences)
		assert.Equal(t, 3, report.Errors())
		assert.Equal(t, 1, report.Repositories[0].Errors())
		assert.Equal(t, 2, report.Repositories[1].Errors())
		assert.Len(t, report.Findings(), 3)
	})

	t.Run("should warn about a missing repository without failing", func(t *testing.T) {
		t.Parallel()

		// given
		selfDir := newSelfDir(t)
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		report, err := commands.NewValidateCommand().Execute(
			context.Background(), settings, commands.ValidateOptions{SelfDir: selfDir},
		)

		// then
		require.NoError(t, err)
		require.Len(t, report.Repositories, 3)
		assert.True(t, report.Repositories[0].Present)
		assert.False(t, report.Repositories[1].Present)
		assert.Equal(t, entities.KindMissingRepository, report.Repositories[1].Findings[0].Kind)
		assert.Equal(t, 2, report.Warnings())
	})

	t.Run("should not fail on an oversized context file alone", func(t *testing.T) {
		t.Parallel()

		// given
		selfDir := newSelfDir(t)
		writeMarkdown(t, filepath.Join(selfDir, "CLAUDE.md"), strings.Repeat("line\n", 201))
		settings := entitybuilders.NewSettingsBuilder().WithRepositories("orchestration").BuildSettings()

		// when
		report, err := commands.NewValidateCommand().Execute(
			context.Background(), settings, commands.ValidateOptions{SelfDir: selfDir},
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, report.Warnings())
		assert.Equal(t, entities.KindOversizedContext, report.Findings()[0].Kind)
	})

	t.Run("should only validate the requested repositories", func(t *testing.T) {
		t.Parallel()

		// given
		selfDir := newSelfDir(t)
		root := filepath.Dir(selfDir)
		writeMarkdown(t, filepath.Join(selfDir, "README.md"), "See @docs/missing.md\n")
		writeMarkdown(t, filepath.Join(root, "service-common", "README.md"), "# Common\n")
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		report, err := commands.NewValidateCommand().Execute(
			context.Background(), settings,
			commands.ValidateOptions{SelfDir: selfDir, Repositories: []string{"service-common"}},
		)

		// then
		require.NoError(t, err)
		require.Len(t, report.Repositories, 1)
		assert.Equal(t, "service-common", report.Repositories[0].Name)
	})

	t.Run("should record a repository that cannot be scanned and validate the rest", func(t *testing.T) {
		t.Parallel()

		// given
		selfDir := newSelfDir(t)
		root := filepath.Dir(selfDir)
		writeMarkdown(t, filepath.Join(selfDir, ".reference-ignore"), "[bad\n")
		writeMarkdown(t, filepath.Join(selfDir, "README.md"), "# Orchestration\n")
		writeMarkdown(t, filepath.Join(root, "service-common", "README.md"), "See @docs/missing.md\n")
		settings := entitybuilders.NewSettingsBuilder().
			WithRepositories("orchestration", "service-common").
			BuildSettings()

		// when
		report, err := commands.NewValidateCommand().Execute(
			context.Background(), settings, commands.ValidateOptions{SelfDir: selfDir},
		)

		// then
		require.ErrorIs(t, err, entities.ErrBrokenReferences)
		require.Len(t, report.Repositories, 2)
		require.Len(t, report.Repositories[0].Findings, 1)
		assert.Equal(t, entities.KindScanFailed, report.Repositories[0].Findings[0].Kind)
		assert.Equal(t, entities.SeverityError, report.Repositories[0].Findings[0].Severity)
		assert.Equal(t, entities.KindBrokenReference, report.Repositories[1].Findings[0].Kind)
		assert.Equal(t, 2, report.Errors())
	})

	t.Run("should encode an empty findings list as an array", func(t *testing.T) {
		t.Parallel()

		// given
		selfDir := newSelfDir(t)
		writeMarkdown(t, filepath.Join(selfDir, "README.md"), "# Orchestration\n")
		settings := entitybuilders.NewSettingsBuilder().WithRepositories("orchestration").BuildSettings()

		// when
		report, err := commands.NewValidateCommand().Execute(
			context.Background(), settings, commands.ValidateOptions{SelfDir: selfDir},
		)

		// then
		require.NoError(t, err)
		encoded, marshalErr := json.Marshal(report)
		require.NoError(t, marshalErr)
		assert.Contains(t, string(encoded), `"findings":[]`)
		assert.NotContains(t, string(encoded), "null")
	})
}
