package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/budgetanalyzer/orchestration/internal/domain/commands"
	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
	"github.com/budgetanalyzer/orchestration/internal/infrastructure/repositories/console"
)

// CloneController handles the "clone" subcommand.
type CloneController struct {
	command   commands.Clone
	presenter *console.Presenter
}

// NewCloneController creates a new CloneController.
func NewCloneController(command commands.Clone, presenter *console.Presenter) *CloneController {
	return &CloneController{command: command, presenter: presenter}
}

// GetBind returns the Cobra command metadata for the clone controller.
func (it *CloneController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "clone",
		Short: "Clone every sibling repository that is not checked out yet",
		Long: `Clone each repository listed in the manifest into the workspace root
(the parent of this repository unless --main-dir is given).

Existing directories are skipped, so the command is safe to re-run. A failed
clone does not stop the others; the command exits non-zero if any failed.`,
	}
}

// Execute runs the repository sync.
func (it *CloneController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	settings, repoDir, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	mainDir, _ := cmd.Flags().GetString("main-dir")
	verbose, _ := cmd.Flags().GetBool("verbose")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	clonerName, _ := cmd.Flags().GetString("cloner")

	report, runErr := it.command.Execute(ctx, settings, commands.CloneOptions{
		SelfDir:    repoDir,
		MainDir:    mainDir,
		ClonerName: clonerName,
		DryRun:     dryRun,
		Verbose:    verbose,
	})
	if report != nil {
		it.presenter.CloneSummary(report)
	}
	return runErr
}

// AddFlags adds the clone-specific flags to the given Cobra command.
func (it *CloneController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Show what would be cloned without cloning")
	cmd.Flags().String("cloner", "", "Clone implementation to use (go-git, git)")
}
