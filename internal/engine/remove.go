package engine

import (
	"context"

	gserrors "gitshift.dev/gitshift/internal/errors"
)

// Remove deletes the given commit from the branch's history. Everything that
// was committed after it is replayed onto its parent, receiving new
// identities; the removed commit stays reachable from the backup reference.
func (e *Engine) Remove(ctx context.Context, branchName, commitRev string) error {
	sha, err := e.resolveTarget(ctx, branchName, commitRev)
	if err != nil {
		return err
	}
	if err := e.ensureMutationSafe(ctx); err != nil {
		return err
	}

	backup := e.createBackup(ctx, branchName)

	parents, err := e.runner.GetParentSHAs(ctx, sha)
	if err != nil {
		return err
	}

	switch {
	case len(parents) >= 2:
		return &gserrors.MergeCommitError{CommitSHA: sha}
	case len(parents) == 0:
		return e.removeRoot(ctx, branchName, sha, backup)
	default:
		return e.removeWithParent(ctx, branchName, sha, parents[0], backup)
	}
}

// removeWithParent deletes a commit that has a parent to fall back on.
// Deleting the tip is a reference move with no replay at all; a buried commit
// requires replaying everything after it onto the parent.
func (e *Engine) removeWithParent(ctx context.Context, branchName, sha, parent string, backup Backup) error {
	tip, err := e.runner.GetRevision(ctx, branchName)
	if err != nil {
		return err
	}

	if sha == tip {
		current, err := e.runner.GetCurrentBranch(ctx)
		if err == nil && current == branchName {
			// The checked-out branch must move together with the working files
			return e.runner.HardReset(ctx, parent)
		}
		return e.runner.UpdateBranchRef(branchName, parent)
	}

	return e.withCheckout(ctx, branchName, func() error {
		if err := e.runner.RebaseOnto(ctx, parent, sha, branchName); err != nil {
			_ = e.runner.RebaseAbort(ctx)
			e.restoreFromBackup(ctx, branchName, backup)
			return &gserrors.RewriteFailedError{BranchName: branchName, Err: err}
		}
		return nil
	})
}

// removeRoot deletes a commit with no parent: the whole history is rewritten
// from the root with the first pick dropped.
func (e *Engine) removeRoot(ctx context.Context, branchName, sha string, backup Backup) error {
	hasMerge, err := e.runner.HistoryContainsMerge(ctx, branchName)
	if err != nil {
		return err
	}
	if hasMerge {
		return gserrors.ErrCrossMergeDelete
	}

	return e.withCheckout(ctx, branchName, func() error {
		history, err := e.runner.GetHistorySHAs(ctx, branchName)
		if err != nil {
			return err
		}
		if len(history) <= 1 {
			// The caller should delete the branch instead
			return gserrors.ErrCannotDeleteOnlyCommit
		}

		return e.runRootRewrite(ctx, branchName, history[1:], backup)
	})
}
