//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
	"github.com/rios0rios0/autocommit/internal/domain/repositories"
)

// SpySourceControlRepository implements repositories.SourceControlRepository
// as a configurable spy.
type SpySourceControlRepository struct {
	// --- identity ---
	RootDir string

	// --- CurrentBranch ---
	Branch    string
	BranchErr error

	// --- Status ---
	Changes   entities.Changeset
	StatusErr error

	// --- Stage ---
	StageErr    error
	StagedPaths [][]string

	// --- Commit ---
	CommitErr error
	Messages  []string

	// --- CommitFiles ---
	CommitFilesErr error
	FileCommits    []FileCommit
}

// FileCommit records one pathspec-limited commit made through the spy.
type FileCommit struct {
	Message string
	Paths   []string
}

var _ repositories.SourceControlRepository = (*SpySourceControlRepository)(nil)

func (s *SpySourceControlRepository) Root() string {
	return s.RootDir
}

func (s *SpySourceControlRepository) CurrentBranch(_ context.Context) (string, error) {
	return s.Branch, s.BranchErr
}

func (s *SpySourceControlRepository) Status(_ context.Context) (entities.Changeset, error) {
	return s.Changes, s.StatusErr
}

func (s *SpySourceControlRepository) Stage(_ context.Context, paths []string) error {
	if s.StageErr != nil {
		return s.StageErr
	}
	s.StagedPaths = append(s.StagedPaths, paths)
	return nil
}

func (s *SpySourceControlRepository) Commit(_ context.Context, message string) error {
	if s.CommitErr != nil {
		return s.CommitErr
	}
	s.Messages = append(s.Messages, message)
	return nil
}

func (s *SpySourceControlRepository) CommitFiles(
	_ context.Context, message string, paths []string,
) error {
	if s.CommitFilesErr != nil {
		return s.CommitFilesErr
	}
	s.FileCommits = append(s.FileCommits, FileCommit{Message: message, Paths: paths})
	return nil
}

// StubSourceControlFactory implements repositories.SourceControlFactory,
// returning a fixed repository or error.
type StubSourceControlFactory struct {
	Repo       repositories.SourceControlRepository
	OpenErr    error
	OpenedDirs []string
}

var _ repositories.SourceControlFactory = (*StubSourceControlFactory)(nil)

func (s *StubSourceControlFactory) Open(
	_ context.Context, dir string,
) (repositories.SourceControlRepository, error) {
	s.OpenedDirs = append(s.OpenedDirs, dir)
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}
	return s.Repo, nil
}
