package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autocommit/internal"
	"github.com/rios0rios0/autocommit/internal/infrastructure/controllers"
)

func buildRootCommand(commitController *controllers.CommitController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "autocommit [path]",
		Short: "Commit working tree changes with a synthesized message",
		Long: `A CLI tool that inspects a Git repository's working tree, detects
changed files, synthesizes a commit message from the nature of the changes,
and creates the commit.

The run is a single linear pipeline: collect the changeset, synthesize the
message, stage the paths, commit. An empty changeset exits successfully
without committing anything.

Usage modes:
  autocommit            Commit changes in the current repository
  autocommit /path      Commit changes in a specific repository
  autocommit status     Preview the changeset and message without committing`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			return commitController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output (per-file change listing)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be committed without making changes")
	cmd.PersistentFlags().Bool("split", false,
		"Create one commit per changed file instead of a single commit")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	commitController := injectCommitController()
	cobraRoot := buildRootCommand(commitController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Errorf("Error executing 'autocommit': %s", err)
		os.Exit(1)
	}
}
