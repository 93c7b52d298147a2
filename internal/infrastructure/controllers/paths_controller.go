package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/budgetanalyzer/orchestration/internal/domain/commands"
	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
	"github.com/budgetanalyzer/orchestration/internal/infrastructure/repositories/console"
)

// PathsController handles the "paths" subcommand.
type PathsController struct {
	command   commands.Paths
	presenter *console.Presenter
}

// NewPathsController creates a new PathsController.
func NewPathsController(command commands.Paths, presenter *console.Presenter) *PathsController {
	return &PathsController{command: command, presenter: presenter}
}

// GetBind returns the Cobra command metadata for the paths controller.
func (it *PathsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "paths [name...]",
		Short: "Print sibling repository paths and service ports",
		Long: `Resolve the workspace root and print each repository's path together with
its HTTP and debug ports. With --format json the output can be loaded by the
Tilt configuration (local + decode_json) instead of hardcoding the tables.`,
	}
}

// Execute resolves and prints paths and ports.
func (it *PathsController) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	settings, repoDir, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	mainDir, _ := cmd.Flags().GetString("main-dir")

	report, err := it.command.Execute(ctx, settings, commands.PathsOptions{
		SelfDir: repoDir,
		MainDir: mainDir,
		Names:   args,
	})
	if err != nil {
		return err
	}

	if format == formatJSON {
		return it.presenter.JSON(report)
	}
	it.presenter.Paths(report)
	return nil
}

// AddFlags adds the paths-specific flags to the given Cobra command.
func (it *PathsController) AddFlags(cmd *cobra.Command) {
	addFormatFlag(cmd)
}
