package repositories

import (
	"go.uber.org/dig"

	"github.com/budgetanalyzer/orchestration/internal/infrastructure/repositories/console"
	"github.com/budgetanalyzer/orchestration/internal/infrastructure/repositories/gitcli"
	"github.com/budgetanalyzer/orchestration/internal/infrastructure/repositories/gogit"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register cloner registry with all clone implementations
	if err := container.Provide(func() *ClonerRegistry {
		reg := NewClonerRegistry()
		reg.Register(gogit.NewClonerRepository())
		reg.Register(gitcli.NewClonerRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(console.NewPresenter); err != nil {
		return err
	}

	return nil
}
