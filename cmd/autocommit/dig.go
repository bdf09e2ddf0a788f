package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/autocommit/internal"
	"github.com/rios0rios0/autocommit/internal/infrastructure/controllers"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectCommitController() *controllers.CommitController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var commitController *controllers.CommitController
	if err := container.Invoke(func(cc *controllers.CommitController) {
		commitController = cc
	}); err != nil {
		panic(err)
	}

	return commitController
}
