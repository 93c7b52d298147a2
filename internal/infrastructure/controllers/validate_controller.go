package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/budgetanalyzer/orchestration/internal/domain/commands"
	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
	"github.com/budgetanalyzer/orchestration/internal/infrastructure/repositories/console"
)

// ValidateController handles the "validate" subcommand.
type ValidateController struct {
	command   commands.Validate
	presenter *console.Presenter
}

// NewValidateController creates a new ValidateController.
func NewValidateController(command commands.Validate, presenter *console.Presenter) *ValidateController {
	return &ValidateController{command: command, presenter: presenter}
}

// GetBind returns the Cobra command metadata for the validate controller.
func (it *ValidateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "validate [repository...]",
		Short: "Validate @path references in the markdown of every sibling repository",
		Long: `Scan every markdown file of the sibling repositories for @path/to/file
references and report the ones that resolve to no file.

References inside fenced code blocks, inline code, docs/decisions/ and
templates/ are ignored. References into another sibling repository must be
written as a link to its https://github.com/ URL. Oversized CLAUDE.md files
produce a warning. The command exits non-zero only when errors were found.`,
	}
}

// Execute runs the markdown validation.
func (it *ValidateController) Execute(cmd *cobra.Command, args []string) error {
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
	verbose, _ := cmd.Flags().GetBool("verbose")

	report, runErr := it.command.Execute(ctx, settings, commands.ValidateOptions{
		SelfDir:      repoDir,
		MainDir:      mainDir,
		Repositories: args,
		Verbose:      verbose,
	})
	if report == nil {
		return runErr
	}

	if format == formatJSON {
		if jsonErr := it.presenter.JSON(report); jsonErr != nil {
			return jsonErr
		}
		return runErr
	}
	it.presenter.ValidationSummary(report)
	return runErr
}

// AddFlags adds the validate-specific flags to the given Cobra command.
func (it *ValidateController) AddFlags(cmd *cobra.Command) {
	addFormatFlag(cmd)
}
