package engine

import "context"

// withCheckout runs fn with branchName checked out, then restores the
// original checkout on every exit path. A restore failure is logged, never
// escalated: it must not mask fn's error.
func (e *Engine) withCheckout(ctx context.Context, branchName string, fn func() error) error {
	var restoreBranch, restoreRev string

	current, err := e.runner.GetCurrentBranch(ctx)
	switch {
	case err != nil:
		// Detached HEAD; remember the exact revision so it can be re-attached
		restoreRev, _ = e.runner.GetRevision(ctx, "HEAD")
	case current == branchName:
		return fn()
	default:
		restoreBranch = current
	}

	if err := e.runner.CheckoutBranch(ctx, branchName); err != nil {
		return err
	}

	defer func() {
		var restoreErr error
		if restoreBranch != "" {
			restoreErr = e.runner.CheckoutBranch(ctx, restoreBranch)
		} else if restoreRev != "" {
			_, restoreErr = e.runner.RunGitCommandWithContext(ctx, "checkout", "--detach", restoreRev)
		}
		if restoreErr != nil {
			e.splog.Warn("failed to restore original checkout: %v", restoreErr)
		}
	}()

	return fn()
}
