package engine

import (
	"context"

	gserrors "gitshift.dev/gitshift/internal/errors"
	"gitshift.dev/gitshift/internal/git"
)

// Reposition makes the given commit the new tip of the branch. Every other
// commit between the target's original parent and the old tip keeps its
// relative order and ends up stacked beneath the target. All replayed commits
// receive new identities; the old ones stay reachable from the backup
// reference.
func (e *Engine) Reposition(ctx context.Context, branchName, commitRev string) error {
	sha, err := e.resolveTarget(ctx, branchName, commitRev)
	if err != nil {
		return err
	}
	if err := e.ensureMutationSafe(ctx); err != nil {
		return err
	}

	backup := e.createBackup(ctx, branchName)

	return e.withCheckout(ctx, branchName, func() error {
		parents, err := e.runner.GetParentSHAs(ctx, sha)
		if err != nil {
			return err
		}

		switch {
		case len(parents) >= 2:
			return &gserrors.MergeCommitError{CommitSHA: sha}
		case len(parents) == 0:
			return e.repositionRoot(ctx, branchName, sha, backup)
		default:
			return e.repositionOntoParent(ctx, branchName, sha, parents[0], backup)
		}
	})
}

// repositionOntoParent handles the common case: reset the branch to the
// target's parent and replay the remaining range with the target last.
func (e *Engine) repositionOntoParent(ctx context.Context, branchName, sha, parent string, backup Backup) error {
	rangeSHAs, err := e.runner.GetCommitRangeSHAs(ctx, parent, branchName)
	if err != nil {
		return err
	}

	order := append(without(rangeSHAs, sha), sha)

	if err := e.runner.HardReset(ctx, parent); err != nil {
		return err
	}

	for _, c := range order {
		if err := e.runner.CherryPick(ctx, c); err != nil {
			// A commit whose content is already present from an earlier
			// replay becomes empty under reordering; that is expected
			if git.IsEmptyCherryPick(err) {
				if skipErr := e.runner.CherryPickSkip(ctx); skipErr == nil {
					e.splog.Debug("skipped empty replay of %s", c)
					continue
				}
			}
			_ = e.runner.CherryPickAbort(ctx)
			e.restoreFromBackup(ctx, branchName, backup)
			return &gserrors.ReplayConflictError{CommitSHA: c, Err: err}
		}
	}

	return nil
}

// repositionRoot handles a target with no parent: there is nothing to reset
// onto, so the entire history is rewritten from the root with the target
// picked last.
func (e *Engine) repositionRoot(ctx context.Context, branchName, sha string, backup Backup) error {
	hasMerge, err := e.runner.HistoryContainsMerge(ctx, branchName)
	if err != nil {
		return err
	}
	if hasMerge {
		return gserrors.ErrCrossMergeReorder
	}

	history, err := e.runner.GetHistorySHAs(ctx, branchName)
	if err != nil {
		return err
	}
	if len(history) <= 1 {
		// A single commit has no order to change
		return nil
	}

	order := append(without(history, sha), sha)
	return e.runRootRewrite(ctx, branchName, order, backup)
}
