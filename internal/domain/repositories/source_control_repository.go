package repositories

import (
	"context"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
)

// SourceControlRepository abstracts the version control tool for a single
// opened repository. Status is the change collector; Stage and Commit form
// the commit executor. All mutation goes through the tool's own command
// interface, so hooks, author configuration, and index semantics are the
// user's own.
type SourceControlRepository interface {
	// Root returns the absolute path of the repository's top-level directory.
	Root() string

	// CurrentBranch returns the short name of the checked-out branch,
	// or the commit hash on a detached HEAD.
	CurrentBranch(ctx context.Context) (string, error)

	// Status collects the working tree differences into a changeset.
	// An empty changeset is a valid result, not an error.
	Status(ctx context.Context) (entities.Changeset, error)

	// Stage marks the given paths for inclusion in the next commit.
	Stage(ctx context.Context, paths []string) error

	// Commit records the staged paths as one new commit with the given message.
	Commit(ctx context.Context, message string) error

	// CommitFiles records only the given paths as one new commit, leaving
	// anything else already staged out of it.
	CommitFiles(ctx context.Context, message string, paths []string) error
}

// SourceControlFactory opens a repository for the given directory.
// Opening fails with entities.ErrToolMissing when the tool is unavailable
// and entities.ErrNotRepository when the directory is not a repository.
type SourceControlFactory interface {
	Open(ctx context.Context, dir string) (SourceControlRepository, error)
}
