package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/autocommit/internal/domain/repositories"
	gitRepo "github.com/rios0rios0/autocommit/internal/infrastructure/repositories/git"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the git-backed factory
	if err := container.Provide(gitRepo.NewFactory); err != nil {
		return err
	}

	// Bind the domain interface to the implementation
	if err := container.Provide(func(impl *gitRepo.Factory) domainRepos.SourceControlFactory {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
