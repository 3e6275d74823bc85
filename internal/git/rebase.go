package git

import (
	"context"
	"fmt"
)

// RebaseOnto replays the commits in (upstream, branchName] onto the given
// base using git rebase --onto. Git checks out branchName as a side effect.
func RebaseOnto(ctx context.Context, onto, upstream, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "rebase", "--onto", onto, upstream, branchName)
	return err
}

// RebaseRoot starts an interactive rebase spanning the entire history of the
// current checkout. The caller supplies the environment that replaces the
// interactive sequence editor with a precomputed instruction list.
func RebaseRoot(ctx context.Context, env []string) error {
	_, err := RunGitCommandWithEnv(ctx, env, "rebase", "-i", "--root")
	return err
}

// RebaseAbort aborts an in-progress rebase
func RebaseAbort(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "rebase", "--abort")
	if err != nil {
		return fmt.Errorf("rebase abort failed: %w", err)
	}
	return nil
}
