package entities

// ChangeKind classifies the status of a single file in the working tree
// relative to the last commit.
type ChangeKind string

const (
	KindAdded     ChangeKind = "added"
	KindModified  ChangeKind = "modified"
	KindDeleted   ChangeKind = "deleted"
	KindRenamed   ChangeKind = "renamed"
	KindUntracked ChangeKind = "untracked"
)

// FileChange is a single file-level difference reported by the
// source control tool. For renames, Path holds the new path.
type FileChange struct {
	Path string
	Kind ChangeKind
}

// Changeset is the ordered collection of file changes detected in one run.
// It is built once per invocation and never mutated afterwards.
type Changeset []FileChange

// Empty reports whether there is nothing to commit.
func (cs Changeset) Empty() bool {
	return len(cs) == 0
}

// Paths returns every path in the changeset, preserving order.
func (cs Changeset) Paths() []string {
	paths := make([]string, 0, len(cs))
	for _, change := range cs {
		paths = append(paths, change.Path)
	}
	return paths
}
