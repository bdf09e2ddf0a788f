package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
	"github.com/rios0rios0/autocommit/internal/domain/repositories"
)

// Factory opens git repositories. Detection uses go-git so "not a
// repository" is distinguished from a failing git invocation before any
// subprocess runs; everything that touches the index goes through the git
// binary so hooks and author configuration behave exactly as the user's git.
type Factory struct {
	gitBin string
}

// NewFactory creates a factory backed by the `git` binary on PATH.
func NewFactory() *Factory {
	return &Factory{gitBin: "git"}
}

// Open validates the environment and returns a repository anchored at the
// top-level directory, so invocations from a subdirectory cover the whole
// working tree.
func (it *Factory) Open(
	ctx context.Context,
	dir string,
) (repositories.SourceControlRepository, error) {
	if _, err := exec.LookPath(it.gitBin); err != nil {
		return nil, fmt.Errorf("cannot run %q: %w", it.gitBin, entities.ErrToolMissing)
	}

	//nolint:exhaustruct // only DetectDotGit is relevant here
	_, openErr := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if openErr != nil {
		if errors.Is(openErr, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%q: %w", dir, entities.ErrNotRepository)
		}
		return nil, fmt.Errorf("failed to open repository at %q: %w", dir, openErr)
	}

	run := newExecRunner(it.gitBin)
	out, rootErr := run.run(ctx, dir, "rev-parse", "--show-toplevel")
	if rootErr != nil {
		return nil, rootErr
	}

	return &SourceControlRepository{
		root:   strings.TrimSpace(out),
		runner: run,
	}, nil
}

// SourceControlRepository implements the domain contract for one opened
// git repository.
type SourceControlRepository struct {
	root   string
	runner runner
}

var _ repositories.SourceControlRepository = (*SourceControlRepository)(nil)

// Root returns the repository's top-level directory.
func (it *SourceControlRepository) Root() string {
	return it.root
}

// CurrentBranch resolves HEAD through go-git: the short branch name, or the
// commit hash on a detached HEAD.
func (it *SourceControlRepository) CurrentBranch(_ context.Context) (string, error) {
	repo, err := gogit.PlainOpen(it.root)
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	head, headErr := repo.Head()
	if headErr != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", headErr)
	}

	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	return head.Hash().String(), nil
}

// Status collects the working tree differences via `git status --porcelain`.
func (it *SourceControlRepository) Status(ctx context.Context) (entities.Changeset, error) {
	out, err := it.runner.run(ctx, it.root, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parsePorcelain(out)
}

// Stage marks the given paths for the next commit. Explicit pathspecs make
// `git add` record deletions for tracked paths as well.
func (it *SourceControlRepository) Stage(ctx context.Context, paths []string) error {
	args := append([]string{"add", "--"}, paths...)
	_, err := it.runner.run(ctx, it.root, args...)
	return err
}

// Commit records the staged paths as one new commit.
func (it *SourceControlRepository) Commit(ctx context.Context, message string) error {
	_, err := it.runner.run(ctx, it.root, "commit", "-m", message)
	return err
}

// CommitFiles records only the given paths as one new commit. The pathspec
// keeps entries staged for other files out of the commit.
func (it *SourceControlRepository) CommitFiles(
	ctx context.Context, message string, paths []string,
) error {
	args := append([]string{"commit", "-m", message, "--"}, paths...)
	_, err := it.runner.run(ctx, it.root, args...)
	return err
}
