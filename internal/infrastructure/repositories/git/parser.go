package git

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
)

// parsePorcelain converts `git status --porcelain` output into a changeset,
// preserving the order git reports.
func parsePorcelain(output string) (entities.Changeset, error) {
	var changes entities.Changeset

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		if change, ok := parsePorcelainLine(scanner.Text()); ok {
			changes = append(changes, change)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan status output: %w", err)
	}

	return changes, nil
}

// parsePorcelainLine parses one `XY path` status line. Rename lines
// (`R  old -> new`) keep the new path. Quoted paths are unquoted.
func parsePorcelainLine(line string) (entities.FileChange, bool) {
	if len(line) < 4 {
		return entities.FileChange{}, false
	}

	staging := line[0]
	worktree := line[1]

	rawPath := strings.TrimSpace(line[3:])
	if rawPath == "" {
		return entities.FileChange{}, false
	}
	if idx := strings.LastIndex(rawPath, " -> "); idx >= 0 {
		rawPath = rawPath[idx+len(" -> "):]
	}
	if strings.HasPrefix(rawPath, `"`) {
		if decoded, err := strconv.Unquote(rawPath); err == nil {
			rawPath = decoded
		}
	}

	return entities.FileChange{
		Path: rawPath,
		Kind: classify(staging, worktree),
	}, true
}

// classify maps the two porcelain status columns to a change kind. The
// staged column wins when both carry a code, matching how the commit will
// actually record the file.
func classify(staging, worktree byte) entities.ChangeKind {
	switch {
	case staging == '?' || worktree == '?':
		return entities.KindUntracked
	case staging == 'R' || worktree == 'R':
		return entities.KindRenamed
	case staging == 'A' || worktree == 'A':
		return entities.KindAdded
	case staging == 'D' || worktree == 'D':
		return entities.KindDeleted
	default:
		return entities.KindModified
	}
}
