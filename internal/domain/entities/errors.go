package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Environment errors: the tool cannot run at all in this directory.
var (
	// ErrNotRepository means the target directory is not inside a git repository.
	ErrNotRepository = errors.New("not a git repository")

	// ErrToolMissing means the git executable could not be found on PATH.
	ErrToolMissing = errors.New("git executable not found in PATH")
)

// ExecutionError wraps a failed invocation of the source control tool.
// Output carries the tool's diagnostic text verbatim so the user sees
// exactly what git said (hook rejections, missing author identity, ...).
type ExecutionError struct {
	Op     string // the git operation that failed, e.g. "git commit"
	Output string // stderr (or stdout when stderr is empty) of the failed call
	Err    error  // the underlying process error
}

func (e *ExecutionError) Error() string {
	msg := strings.TrimSpace(e.Output)
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
