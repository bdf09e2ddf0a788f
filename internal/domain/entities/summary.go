package entities

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// kindOrder fixes the order in which change kinds appear in a message,
// so the same changeset always renders the same sentence.
//
//nolint:gochecknoglobals // fixed rendering order, never mutated
var kindOrder = []ChangeKind{
	KindAdded,
	KindModified,
	KindDeleted,
	KindRenamed,
	KindUntracked,
}

// Summary holds the tallies extracted from a changeset: the total number of
// files, a count per change kind, and a count per file group (extension, or
// top-level directory for extensionless paths).
type Summary struct {
	Total  int
	Kinds  map[ChangeKind]int
	Groups map[string]int
}

// NewSummary tallies the given changeset. It is a pure function: no I/O,
// no clock, no randomness.
func NewSummary(cs Changeset) Summary {
	summary := Summary{
		Total:  len(cs),
		Kinds:  make(map[ChangeKind]int),
		Groups: make(map[string]int),
	}
	for _, change := range cs {
		summary.Kinds[change.Kind]++
		summary.Groups[groupKey(change.Path)]++
	}
	return summary
}

// Message renders the summary as a single-line commit message. The counts in
// the rendered sentence always match the tallies exactly, so the message can
// be parsed back into the summary that produced it.
func (s Summary) Message() string {
	noun := "files"
	if s.Total == 1 {
		noun = "file"
	}

	kinds := make([]string, 0, len(s.Kinds))
	for _, kind := range kindOrder {
		if count := s.Kinds[kind]; count > 0 {
			kinds = append(kinds, fmt.Sprintf("%d %s", count, kind))
		}
	}

	groups := make([]string, 0, len(s.Groups))
	for key := range s.Groups {
		groups = append(groups, key)
	}
	sort.Strings(groups)
	for i, key := range groups {
		groups[i] = fmt.Sprintf("%s: %d", key, s.Groups[key])
	}

	return fmt.Sprintf(
		"%d %s changed: %s (%s)",
		s.Total, noun, strings.Join(kinds, ", "), strings.Join(groups, ", "),
	)
}

// Summarize maps a non-empty changeset to its commit message.
// Deterministic: the same changeset always yields a byte-identical message.
func Summarize(cs Changeset) string {
	return NewSummary(cs).Message()
}

// FileMessage renders the per-file commit message used in split mode.
func FileMessage(change FileChange) string {
	var verb string
	switch change.Kind {
	case KindAdded, KindUntracked:
		verb = "add"
	case KindDeleted:
		verb = "remove"
	case KindRenamed:
		verb = "rename"
	default:
		verb = "update"
	}
	return fmt.Sprintf("%s %s (%s)", verb, change.Path, change.Kind)
}

// groupKey buckets a path by its extension. Paths without an extension are
// grouped under their top-level directory, or "no ext" at the repository root.
func groupKey(filePath string) string {
	if ext := path.Ext(filePath); ext != "" {
		return ext
	}
	if idx := strings.IndexByte(filePath, '/'); idx > 0 {
		return filePath[:idx] + "/"
	}
	return "no ext"
}
