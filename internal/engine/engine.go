package engine

import (
	"context"
	"fmt"

	gserrors "gitshift.dev/gitshift/internal/errors"
	"gitshift.dev/gitshift/internal/git"
	"gitshift.dev/gitshift/internal/output"
)

// Engine performs history mutations against a single repository
type Engine struct {
	runner git.Runner
	splog  *output.Splog

	// sequenceEditor builds the command git runs in place of the interactive
	// sequence editor. Overridable for tests.
	sequenceEditor func(planPath string) (string, error)
}

// NewEngine creates an engine backed by the real git runner
func NewEngine(splog *output.Splog) *Engine {
	return NewEngineWithRunner(git.NewRealRunner(), splog)
}

// NewEngineWithRunner creates an engine with a custom runner implementation
func NewEngineWithRunner(runner git.Runner, splog *output.Splog) *Engine {
	return &Engine{
		runner:         runner,
		splog:          splog,
		sequenceEditor: replayEditorCommand,
	}
}

// resolveTarget resolves the operation inputs: the branch must name an
// existing local branch and the commit must be an ancestor of its tip.
func (e *Engine) resolveTarget(ctx context.Context, branchName, commitRev string) (string, error) {
	// A resolvable revision is not enough: a raw SHA or tag in place of the
	// branch would later create a bogus ref under refs/heads/
	if !e.runner.BranchExists(ctx, branchName) {
		return "", gserrors.NewBranchNotFoundError(branchName)
	}

	sha, err := e.runner.GetRevision(ctx, commitRev)
	if err != nil {
		// An unresolvable hash and a commit outside the branch are the same
		// condition from the caller's point of view
		return "", gserrors.NewNotReachableError(branchName, commitRev)
	}

	reachable, err := e.runner.IsAncestor(ctx, sha, branchName)
	if err != nil || !reachable {
		return "", gserrors.NewNotReachableError(branchName, sha)
	}

	return sha, nil
}

// ensureMutationSafe verifies the repository can be mutated: no uncommitted
// or staged changes, and no rebase, merge, cherry-pick or revert in flight.
// It must run before any side effect.
func (e *Engine) ensureMutationSafe(ctx context.Context) error {
	unstaged, err := e.runner.HasUnstagedChanges(ctx)
	if err != nil {
		return fmt.Errorf("failed to check working tree: %w", err)
	}
	if unstaged {
		return &gserrors.DirtyWorkingStateError{Staged: false}
	}

	staged, err := e.runner.HasStagedChanges(ctx)
	if err != nil {
		return fmt.Errorf("failed to check index: %w", err)
	}
	if staged {
		return &gserrors.DirtyWorkingStateError{Staged: true}
	}

	if op, inProgress := e.runner.OperationInProgress(ctx); inProgress {
		return &gserrors.OperationInProgressError{Operation: op}
	}

	return nil
}

// without returns shas with the given sha removed, preserving order
func without(shas []string, sha string) []string {
	result := make([]string, 0, len(shas))
	for _, s := range shas {
		if s != sha {
			result = append(result, s)
		}
	}
	return result
}
