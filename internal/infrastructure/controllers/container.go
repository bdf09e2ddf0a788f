package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewCommitController); err != nil {
		return err
	}
	if err := container.Provide(NewStatusController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers for the AppInternal.
// The commit controller is also bound to the root command directly, so the
// pipeline runs with or without the explicit "commit" subcommand.
func NewControllers(
	commitController *CommitController,
	statusController *StatusController,
) *[]entities.Controller {
	return &[]entities.Controller{
		commitController,
		statusController,
	}
}
