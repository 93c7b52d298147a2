package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/budgetanalyzer/orchestration/internal/domain/commands"
	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
	"github.com/budgetanalyzer/orchestration/internal/infrastructure/repositories/console"
)

// CheckController handles the "check" subcommand.
type CheckController struct {
	command   commands.Check
	presenter *console.Presenter
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check, presenter *console.Presenter) *CheckController {
	return &CheckController{command: command, presenter: presenter}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check",
		Short: "Cross-check the repository list against the port tables",
		Long: `Report services that have ports but are not listed as repositories, and
repositories that have no ports. Findings are informational unless --strict.`,
	}
}

// Execute runs the manifest consistency check.
func (it *CheckController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	settings, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	strict, _ := cmd.Flags().GetBool("strict")

	findings, runErr := it.command.Execute(ctx, settings, commands.CheckOptions{Strict: strict})
	if format == formatJSON {
		if jsonErr := it.presenter.JSON(findings); jsonErr != nil {
			return jsonErr
		}
		return runErr
	}
	it.presenter.Findings(findings)
	return runErr
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	addFormatFlag(cmd)
	cmd.Flags().Bool("strict", false, "Exit non-zero when warnings are found")
}
