package cli

import (
	"context"
	"fmt"

	gserrors "gitshift.dev/gitshift/internal/errors"
	"gitshift.dev/gitshift/internal/git"
	"gitshift.dev/gitshift/internal/output"
)

// setupRepo initializes the repository context shared by all commands: opens
// the repo, points the git runner at its root, and builds the logger.
func setupRepo() (string, *output.Splog, error) {
	if err := git.InitDefaultRepo(); err != nil {
		return "", nil, fmt.Errorf("not a git repository: %w", err)
	}

	repo, err := git.GetDefaultRepo()
	if err != nil {
		return "", nil, err
	}
	repoRoot := repo.Root()
	git.SetWorkingDir(repoRoot)

	splog, err := output.NewSplogWithLogFile(output.GetLogFilePath())
	if err != nil {
		// Console-only logging is better than refusing to run
		splog = output.NewSplog()
	}

	return repoRoot, splog, nil
}

// resolveBranch returns the branch a command operates on: the --branch flag
// when given, otherwise the current checkout.
func resolveBranch(ctx context.Context, flag string) (string, error) {
	if flag != "" {
		if repo, err := git.GetDefaultRepo(); err == nil && !repo.HasBranch(flag) {
			return "", gserrors.NewBranchNotFoundError(flag)
		}
		return flag, nil
	}
	branch, err := git.GetCurrentBranch(ctx)
	if err != nil {
		return "", fmt.Errorf("not on a branch and --branch not specified")
	}
	return branch, nil
}
