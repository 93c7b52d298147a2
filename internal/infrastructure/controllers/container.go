package controllers

import (
	"go.uber.org/dig"

	"github.com/budgetanalyzer/orchestration/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewCloneController); err != nil {
		return err
	}
	if err := container.Provide(NewValidateController); err != nil {
		return err
	}
	if err := container.Provide(NewPathsController); err != nil {
		return err
	}
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	cloneController *CloneController,
	validateController *ValidateController,
	pathsController *PathsController,
	checkController *CheckController,
) *[]entities.Controller {
	return &[]entities.Controller{
		cloneController,
		validateController,
		pathsController,
		checkController,
	}
}
