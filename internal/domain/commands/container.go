package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	for _, constructor := range []any{
		NewCloneCommand,
		NewValidateCommand,
		NewPathsCommand,
		NewCheckCommand,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	for _, binding := range []any{
		func(impl *CloneCommand) Clone { return impl },
		func(impl *ValidateCommand) Validate { return impl },
		func(impl *PathsCommand) Paths { return impl },
		func(impl *CheckCommand) Check { return impl },
	} {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
