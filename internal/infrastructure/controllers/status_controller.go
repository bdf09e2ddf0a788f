package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/autocommit/internal/domain/commands"
	"github.com/rios0rios0/autocommit/internal/domain/entities"
)

// StatusController handles the "status" subcommand (preview mode).
type StatusController struct {
	command commands.Status
}

// NewStatusController creates a new StatusController.
func NewStatusController(command commands.Status) *StatusController {
	return &StatusController{command: command}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "status [path]",
		Short: "Preview the changeset and the message that would be committed",
		Long: `List the detected file changes and print the commit message the
pipeline would use, without staging anything or touching the repository.`,
	}
}

// Execute runs the preview mode.
func (it *StatusController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	verbose, _ := cmd.Flags().GetBool("verbose")

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	return it.command.Execute(ctx, commands.StatusOptions{
		RepoDir: repoDir,
		Verbose: verbose,
	})
}
