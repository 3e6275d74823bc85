package git

import (
	"context"
	"fmt"

	gserrors "gitshift.dev/gitshift/internal/errors"
)

// GetCurrentBranch returns the name of the currently checked-out branch.
// Returns ErrNotOnBranch if HEAD is detached.
func GetCurrentBranch(ctx context.Context) (string, error) {
	name, err := RunGitCommandWithContext(ctx, "symbolic-ref", "--short", "-q", "HEAD")
	if err != nil {
		return "", gserrors.ErrNotOnBranch
	}
	return name, nil
}

// CheckoutBranch checks out an existing branch
func CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutDetached checks out a revision in detached HEAD state
func CheckoutDetached(ctx context.Context, rev string) error {
	_, err := RunGitCommandWithContext(ctx, "checkout", "--detach", rev)
	if err != nil {
		return fmt.Errorf("failed to checkout %s in detached state: %w", rev, err)
	}
	return nil
}

// BranchExists reports whether a local branch with the given name exists
func BranchExists(ctx context.Context, branchName string) bool {
	_, err := RunGitCommandWithContext(ctx, "rev-parse", "--verify", "--quiet", "refs/heads/"+branchName)
	return err == nil
}
