package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gitshift.dev/gitshift/internal/engine"
	"gitshift.dev/gitshift/internal/output"
)

// traceRunner records every mutating call so tests can assert which git
// operations an engine method performed. Queries answer from fixed state.
type traceRunner struct {
	calls []string

	branch  string
	tip     string
	parent  string
	current string
}

func (r *traceRunner) record(name string) {
	r.calls = append(r.calls, name)
}

func (r *traceRunner) SetWorkingDir(dir string) {}
func (r *traceRunner) GetWorkingDir() string    { return "" }

func (r *traceRunner) RunGitCommand(args ...string) (string, error) {
	r.record("RunGitCommand")
	return "", nil
}

func (r *traceRunner) RunGitCommandWithContext(ctx context.Context, args ...string) (string, error) {
	r.record("RunGitCommandWithContext")
	return "", nil
}

func (r *traceRunner) RunGitCommandWithEnv(ctx context.Context, env []string, args ...string) (string, error) {
	r.record("RunGitCommandWithEnv")
	return "", nil
}

func (r *traceRunner) GetCurrentBranch(ctx context.Context) (string, error) {
	return r.current, nil
}

func (r *traceRunner) BranchExists(ctx context.Context, branchName string) bool {
	return branchName == r.branch
}

func (r *traceRunner) CheckoutBranch(ctx context.Context, branchName string) error {
	r.record("CheckoutBranch")
	r.current = branchName
	return nil
}

func (r *traceRunner) GetRevision(ctx context.Context, rev string) (string, error) {
	if rev == r.branch || rev == r.tip {
		return r.tip, nil
	}
	return rev, nil
}

func (r *traceRunner) UpdateBranchRef(branchName, revision string) error {
	r.record("UpdateBranchRef")
	return nil
}

func (r *traceRunner) UpdateRef(name, revision string) error {
	r.record("UpdateRef")
	return nil
}

func (r *traceRunner) GetParentSHAs(ctx context.Context, commitSHA string) ([]string, error) {
	return []string{r.parent}, nil
}

func (r *traceRunner) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	return true, nil
}

func (r *traceRunner) HistoryContainsMerge(ctx context.Context, ref string) (bool, error) {
	return false, nil
}

func (r *traceRunner) GetCommitRangeSHAs(ctx context.Context, base, head string) ([]string, error) {
	return []string{r.tip}, nil
}

func (r *traceRunner) GetHistorySHAs(ctx context.Context, ref string) ([]string, error) {
	return []string{r.parent, r.tip}, nil
}

func (r *traceRunner) HasUnstagedChanges(ctx context.Context) (bool, error) { return false, nil }
func (r *traceRunner) HasStagedChanges(ctx context.Context) (bool, error)   { return false, nil }
func (r *traceRunner) OperationInProgress(ctx context.Context) (string, bool) {
	return "", false
}

func (r *traceRunner) HardReset(ctx context.Context, revision string) error {
	r.record("HardReset")
	return nil
}

func (r *traceRunner) CherryPick(ctx context.Context, commitSHA string) error {
	r.record("CherryPick")
	return nil
}

func (r *traceRunner) CherryPickSkip(ctx context.Context) error {
	r.record("CherryPickSkip")
	return nil
}

func (r *traceRunner) CherryPickAbort(ctx context.Context) error {
	r.record("CherryPickAbort")
	return nil
}

func (r *traceRunner) RebaseOnto(ctx context.Context, onto, upstream, branchName string) error {
	r.record("RebaseOnto")
	return nil
}

func (r *traceRunner) RebaseRoot(ctx context.Context, env []string) error {
	r.record("RebaseRoot")
	return nil
}

func (r *traceRunner) RebaseAbort(ctx context.Context) error {
	r.record("RebaseAbort")
	return nil
}

func TestRemoveTipCallTrace(t *testing.T) {
	t.Run("tip removal on the checked-out branch is a single reset", func(t *testing.T) {
		runner := &traceRunner{
			branch:  "main",
			tip:     "tttttttttttttttttttttttttttttttttttttttt",
			parent:  "pppppppppppppppppppppppppppppppppppppppp",
			current: "main",
		}
		eng := engine.NewEngineWithRunner(runner, output.NewSplog())

		err := eng.Remove(context.Background(), "main", runner.tip)
		require.NoError(t, err)

		// One backup reference, one reset; no replay of any kind
		require.Equal(t, []string{"UpdateRef", "HardReset"}, runner.calls)
	})

	t.Run("tip removal elsewhere moves the reference without touching the checkout", func(t *testing.T) {
		runner := &traceRunner{
			branch:  "main",
			tip:     "tttttttttttttttttttttttttttttttttttttttt",
			parent:  "pppppppppppppppppppppppppppppppppppppppp",
			current: "other",
		}
		eng := engine.NewEngineWithRunner(runner, output.NewSplog())

		err := eng.Remove(context.Background(), "main", runner.tip)
		require.NoError(t, err)

		require.Equal(t, []string{"UpdateRef", "UpdateBranchRef"}, runner.calls)
		require.Equal(t, "other", runner.current)
	})
}
