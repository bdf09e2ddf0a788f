//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autocommit/internal/domain/commands"
	"github.com/rios0rios0/autocommit/internal/domain/entities"
	doubles "github.com/rios0rios0/autocommit/test/infrastructure/repositorydoubles"
)

func TestCommitCommandExecute(t *testing.T) {
	t.Run("should stage every path and commit once with the synthesized message", func(t *testing.T) {
		// given
		spy := &doubles.SpySourceControlRepository{
			RootDir: "/repo",
			Branch:  "main",
			Changes: entities.Changeset{
				{Path: "a.py", Kind: entities.KindModified},
				{Path: "b.py", Kind: entities.KindAdded},
				{Path: "c.md", Kind: entities.KindDeleted},
			},
		}
		factory := &doubles.StubSourceControlFactory{Repo: spy}
		cmd := commands.NewCommitCommand(factory)

		// when
		err := cmd.Execute(context.Background(), commands.CommitOptions{RepoDir: "."})

		// then
		require.NoError(t, err)
		require.Len(t, spy.StagedPaths, 1)
		assert.Equal(t, []string{"a.py", "b.py", "c.md"}, spy.StagedPaths[0])
		require.Len(t, spy.Messages, 1)
		assert.Equal(t,
			"3 files changed: 1 added, 1 modified, 1 deleted (.md: 1, .py: 2)",
			spy.Messages[0],
		)
	})

	t.Run("should exit early without staging when the changeset is empty", func(t *testing.T) {
		// given
		spy := &doubles.SpySourceControlRepository{RootDir: "/repo"}
		factory := &doubles.StubSourceControlFactory{Repo: spy}
		cmd := commands.NewCommitCommand(factory)

		// when
		err := cmd.Execute(context.Background(), commands.CommitOptions{RepoDir: "."})

		// then
		require.NoError(t, err)
		assert.Empty(t, spy.StagedPaths)
		assert.Empty(t, spy.Messages)
	})

	t.Run("should not stage or commit in dry-run mode", func(t *testing.T) {
		// given
		spy := &doubles.SpySourceControlRepository{
			RootDir: "/repo",
			Changes: entities.Changeset{
				{Path: "a.go", Kind: entities.KindModified},
			},
		}
		factory := &doubles.StubSourceControlFactory{Repo: spy}
		cmd := commands.NewCommitCommand(factory)

		// when
		err := cmd.Execute(context.Background(), commands.CommitOptions{
			RepoDir: ".",
			DryRun:  true,
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, spy.StagedPaths)
		assert.Empty(t, spy.Messages)
	})

	t.Run("should create one commit per file in split mode", func(t *testing.T) {
		// given
		spy := &doubles.SpySourceControlRepository{
			RootDir: "/repo",
			Branch:  "main",
			Changes: entities.Changeset{
				{Path: "a.go", Kind: entities.KindModified},
				{Path: "b.md", Kind: entities.KindUntracked},
			},
		}
		factory := &doubles.StubSourceControlFactory{Repo: spy}
		cmd := commands.NewCommitCommand(factory)

		// when
		err := cmd.Execute(context.Background(), commands.CommitOptions{
			RepoDir: ".",
			Split:   true,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a.go"}, {"b.md"}}, spy.StagedPaths)
		assert.Empty(t, spy.Messages)
		assert.Equal(t, []doubles.FileCommit{
			{Message: "update a.go (modified)", Paths: []string{"a.go"}},
			{Message: "add b.md (untracked)", Paths: []string{"b.md"}},
		}, spy.FileCommits)
	})

	t.Run("should limit every split commit to its own file when several are already staged", func(t *testing.T) {
		// given
		spy := &doubles.SpySourceControlRepository{
			RootDir: "/repo",
			Branch:  "main",
			Changes: entities.Changeset{
				{Path: "a.go", Kind: entities.KindAdded},
				{Path: "b.go", Kind: entities.KindAdded},
			},
		}
		factory := &doubles.StubSourceControlFactory{Repo: spy}
		cmd := commands.NewCommitCommand(factory)

		// when
		err := cmd.Execute(context.Background(), commands.CommitOptions{
			RepoDir: ".",
			Split:   true,
		})

		// then
		require.NoError(t, err)
		require.Len(t, spy.FileCommits, 2)
		for _, commit := range spy.FileCommits {
			assert.Len(t, commit.Paths, 1)
		}
		assert.Equal(t, []string{"a.go"}, spy.FileCommits[0].Paths)
		assert.Equal(t, []string{"b.go"}, spy.FileCommits[1].Paths)
	})

	t.Run("should propagate an environment error before any changeset exists", func(t *testing.T) {
		// given
		factory := &doubles.StubSourceControlFactory{
			OpenErr: fmt.Errorf("/tmp/nowhere: %w", entities.ErrNotRepository),
		}
		cmd := commands.NewCommitCommand(factory)

		// when
		err := cmd.Execute(context.Background(), commands.CommitOptions{RepoDir: "/tmp/nowhere"})

		// then
		require.ErrorIs(t, err, entities.ErrNotRepository)
	})

	t.Run("should surface a staging failure without committing", func(t *testing.T) {
		// given
		spy := &doubles.SpySourceControlRepository{
			RootDir:  "/repo",
			StageErr: &entities.ExecutionError{Op: "git add", Output: "pathspec error"},
			Changes: entities.Changeset{
				{Path: "a.go", Kind: entities.KindModified},
			},
		}
		factory := &doubles.StubSourceControlFactory{Repo: spy}
		cmd := commands.NewCommitCommand(factory)

		// when
		err := cmd.Execute(context.Background(), commands.CommitOptions{RepoDir: "."})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pathspec error")
		assert.Empty(t, spy.Messages)
	})

	t.Run("should surface a commit failure verbatim", func(t *testing.T) {
		// given
		spy := &doubles.SpySourceControlRepository{
			RootDir:   "/repo",
			CommitErr: &entities.ExecutionError{Op: "git commit", Output: "hook declined"},
			Changes: entities.Changeset{
				{Path: "a.go", Kind: entities.KindModified},
			},
		}
		factory := &doubles.StubSourceControlFactory{Repo: spy}
		cmd := commands.NewCommitCommand(factory)

		// when
		err := cmd.Execute(context.Background(), commands.CommitOptions{RepoDir: "."})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hook declined")
	})

	t.Run("should produce the same commit message with and without verbose", func(t *testing.T) {
		// given
		changes := entities.Changeset{
			{Path: "a.py", Kind: entities.KindModified},
			{Path: "b.md", Kind: entities.KindAdded},
		}
		quiet := &doubles.SpySourceControlRepository{RootDir: "/repo", Changes: changes}
		loud := &doubles.SpySourceControlRepository{RootDir: "/repo", Changes: changes}

		// when
		err := commands.NewCommitCommand(&doubles.StubSourceControlFactory{Repo: quiet}).
			Execute(context.Background(), commands.CommitOptions{RepoDir: "."})
		require.NoError(t, err)
		err = commands.NewCommitCommand(&doubles.StubSourceControlFactory{Repo: loud}).
			Execute(context.Background(), commands.CommitOptions{RepoDir: ".", Verbose: true})

		// then
		require.NoError(t, err)
		assert.Equal(t, quiet.Messages, loud.Messages)
	})
}
