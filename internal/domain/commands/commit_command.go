package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
	"github.com/rios0rios0/autocommit/internal/domain/repositories"
)

// Commit is the interface for the commit command (the default pipeline).
type Commit interface {
	Execute(ctx context.Context, opts CommitOptions) error
}

// CommitOptions holds runtime options for a single run.
type CommitOptions struct {
	RepoDir string
	DryRun  bool
	Verbose bool
	Split   bool // one commit per changed file instead of one for the whole set
}

// CommitCommand runs the full pipeline: collect the changeset, synthesize a
// commit message, stage the paths, and create the commit.
type CommitCommand struct {
	factory repositories.SourceControlFactory
}

// NewCommitCommand creates a new CommitCommand with the given factory.
func NewCommitCommand(factory repositories.SourceControlFactory) *CommitCommand {
	return &CommitCommand{factory: factory}
}

// Execute runs the pipeline against the repository containing opts.RepoDir.
// An empty changeset is a terminal success state: nothing is staged and no
// commit is attempted.
func (it *CommitCommand) Execute(ctx context.Context, opts CommitOptions) error {
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
	logger.Debugf("Repository root: %s", repo.Root())

	changes, statusErr := repo.Status(ctx)
	if statusErr != nil {
		return fmt.Errorf("failed to collect changes: %w", statusErr)
	}

	if changes.Empty() {
		logger.Info("Nothing to commit, working tree clean.")
		return nil
	}

	logChangeset(changes)

	if opts.Split {
		return it.commitEachFile(ctx, repo, changes, opts.DryRun)
	}

	message := entities.Summarize(changes)
	logger.Debugf("Synthesized message: %s", message)

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would commit %d file(s) with message: %s",
			len(changes), message)
		return nil
	}

	if stageErr := repo.Stage(ctx, changes.Paths()); stageErr != nil {
		return fmt.Errorf("failed to stage changes: %w", stageErr)
	}
	if commitErr := repo.Commit(ctx, message); commitErr != nil {
		return fmt.Errorf("failed to create commit: %w", commitErr)
	}

	it.logCommitted(ctx, repo, message)
	return nil
}

// commitEachFile creates one commit per changed file, mirroring the behavior
// of committing incremental work file by file.
func (it *CommitCommand) commitEachFile(
	ctx context.Context,
	repo repositories.SourceControlRepository,
	changes entities.Changeset,
	dryRun bool,
) error {
	for _, change := range changes {
		message := entities.FileMessage(change)

		if dryRun {
			logger.Infof("[DRY RUN] Would commit %q with message: %s",
				change.Path, message)
			continue
		}

		if stageErr := repo.Stage(ctx, []string{change.Path}); stageErr != nil {
			return fmt.Errorf("failed to stage %q: %w", change.Path, stageErr)
		}
		if commitErr := repo.CommitFiles(ctx, message, []string{change.Path}); commitErr != nil {
			return fmt.Errorf("failed to commit %q: %w", change.Path, commitErr)
		}

		it.logCommitted(ctx, repo, message)
	}
	return nil
}

// logCommitted reports a created commit, including the branch when it can
// be resolved.
func (it *CommitCommand) logCommitted(
	ctx context.Context,
	repo repositories.SourceControlRepository,
	message string,
) {
	branch, err := repo.CurrentBranch(ctx)
	if err != nil {
		logger.Infof("Created commit: %s", message)
		return
	}
	logger.Infof("Created commit on %q: %s", branch, message)
}

// logChangeset emits the per-file kind listing on the diagnostic stream.
// The listing only shows up in verbose mode.
func logChangeset(changes entities.Changeset) {
	logger.Debugf("Detected %d changed file(s):", len(changes))
	for _, change := range changes {
		logger.Debugf("  %-9s %s", change.Kind, change.Path)
	}
}
