package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
)

// runner abstracts executing git invocations so the repository can be
// exercised in tests without a git binary.
type runner interface {
	run(ctx context.Context, dir string, args ...string) (string, error)
}

// execRunner executes the configured git binary.
type execRunner struct {
	gitBin string
}

func newExecRunner(gitBin string) *execRunner {
	if strings.TrimSpace(gitBin) == "" {
		gitBin = "git"
	}
	return &execRunner{gitBin: gitBin}
}

// run executes one git invocation in the given directory. Failures are
// surfaced as *entities.ExecutionError carrying git's diagnostic output
// verbatim.
func (e *execRunner) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, e.gitBin, args...)
	if strings.TrimSpace(dir) != "" {
		cmd.Dir = dir
	}

	var out bytes.Buffer
	var errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		output := strings.TrimSpace(errOut.String())
		if output == "" {
			output = strings.TrimSpace(out.String())
		}
		op := e.gitBin
		if len(args) > 0 {
			op = e.gitBin + " " + args[0]
		}
		return "", &entities.ExecutionError{Op: op, Output: output, Err: err}
	}

	return out.String(), nil
}
