package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/autocommit/internal/domain/commands"
	"github.com/rios0rios0/autocommit/internal/domain/entities"
)

// CommitController handles the root command (the default commit pipeline).
type CommitController struct {
	command commands.Commit
}

// NewCommitController creates a new CommitController.
func NewCommitController(command commands.Commit) *CommitController {
	return &CommitController{command: command}
}

// GetBind returns the Cobra command metadata for the commit controller.
func (it *CommitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "commit [path]",
		Short: "Detect changes and create a commit",
		Long: `Detect changed files in the working tree, synthesize a commit
message from the nature of the changes, stage the files, and create one commit.

With --split, every changed file is committed separately with its own message.`,
	}
}

// Execute runs the commit pipeline.
func (it *CommitController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	split, _ := cmd.Flags().GetBool("split")

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	return it.command.Execute(ctx, commands.CommitOptions{
		RepoDir: repoDir,
		DryRun:  dryRun,
		Verbose: verbose,
		Split:   split,
	})
}
