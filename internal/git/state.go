package git

import (
	"context"
	"os"
	"path/filepath"
)

// HasUnstagedChanges checks if there are unstaged changes to tracked files
func HasUnstagedChanges(ctx context.Context) (bool, error) {
	// Use git diff to check for unstaged changes to tracked files
	output, err := RunGitCommandWithContext(ctx, "diff", "--name-only")
	if err != nil {
		return false, err
	}
	return output != "", nil
}

// HasStagedChanges checks if there are staged changes
func HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return false, err
	}
	return output != "", nil
}

// OperationInProgress reports whether a multi-step git operation has left
// transient state behind. Returns the operation name when one is found.
func OperationInProgress(ctx context.Context) (string, bool) {
	gitDir, err := RunGitCommandWithContext(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return "", false
	}

	if IsRebaseInProgress(ctx) {
		return "rebase", true
	}

	markers := []struct {
		file string
		op   string
	}{
		{"MERGE_HEAD", "merge"},
		{"CHERRY_PICK_HEAD", "cherry-pick"},
		{"REVERT_HEAD", "revert"},
	}
	for _, m := range markers {
		if _, err := os.Stat(filepath.Join(gitDir, m.file)); err == nil {
			return m.op, true
		}
	}
	return "", false
}

// IsRebaseInProgress checks if a rebase is currently in progress
func IsRebaseInProgress(ctx context.Context) bool {
	// Check for .git/rebase-merge or .git/rebase-apply directories.
	// This is more reliable than checking REBASE_HEAD which can persist after rebase
	gitDir, err := RunGitCommandWithContext(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return false
	}

	// Interactive rebase
	if _, err := os.Stat(filepath.Join(gitDir, "rebase-merge")); err == nil {
		return true
	}
	// Non-interactive rebase
	if _, err := os.Stat(filepath.Join(gitDir, "rebase-apply")); err == nil {
		return true
	}
	return false
}
