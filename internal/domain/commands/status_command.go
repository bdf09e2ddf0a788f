package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
	"github.com/rios0rios0/autocommit/internal/domain/repositories"
)

// Status is the interface for the status command (preview mode).
type Status interface {
	Execute(ctx context.Context, opts StatusOptions) error
}

// StatusOptions holds runtime options for the preview mode.
type StatusOptions struct {
	RepoDir string
	Verbose bool
}

// StatusCommand previews what the commit pipeline would do: it collects the
// changeset and prints the synthesized message without touching the index.
type StatusCommand struct {
	factory repositories.SourceControlFactory
}

// NewStatusCommand creates a new StatusCommand with the given factory.
func NewStatusCommand(factory repositories.SourceControlFactory) *StatusCommand {
	return &StatusCommand{factory: factory}
}

// Execute collects and reports the changeset. It never stages or commits.
func (it *StatusCommand) Execute(ctx context.Context, opts StatusOptions) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	repoDir, err := filepath.Abs(opts.RepoDir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	repo, openErr := it.factory.Open(ctx, repoDir)
	if openErr != nil {
		return openErr
	}

	changes, statusErr := repo.Status(ctx)
	if statusErr != nil {
		return fmt.Errorf("failed to collect changes: %w", statusErr)
	}

	if changes.Empty() {
		logger.Info("Nothing to commit, working tree clean.")
		return nil
	}

	for _, change := range changes {
		logger.Infof("  %-9s %s", change.Kind, change.Path)
	}
	logger.Infof("Would commit with message: %s", entities.Summarize(changes))
	return nil
}
