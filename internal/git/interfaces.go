package git

import "context"

// Runner defines the interface for git operations used by the engine.
// This allows the engine to be used with both real git and mock implementations.
type Runner interface {
	// Runner state
	SetWorkingDir(dir string)
	GetWorkingDir() string

	// Low-level commands
	RunGitCommand(args ...string) (string, error)
	RunGitCommandWithContext(ctx context.Context, args ...string) (string, error)
	RunGitCommandWithEnv(ctx context.Context, env []string, args ...string) (string, error)

	// Branch and checkout state
	GetCurrentBranch(ctx context.Context) (string, error)
	BranchExists(ctx context.Context, branchName string) bool
	CheckoutBranch(ctx context.Context, branchName string) error
	GetRevision(ctx context.Context, rev string) (string, error)
	UpdateBranchRef(branchName, revision string) error
	UpdateRef(name, revision string) error

	// History queries
	GetParentSHAs(ctx context.Context, commitSHA string) ([]string, error)
	IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error)
	HistoryContainsMerge(ctx context.Context, ref string) (bool, error)
	GetCommitRangeSHAs(ctx context.Context, base, head string) ([]string, error)
	GetHistorySHAs(ctx context.Context, ref string) ([]string, error)

	// Repository state
	HasUnstagedChanges(ctx context.Context) (bool, error)
	HasStagedChanges(ctx context.Context) (bool, error)
	OperationInProgress(ctx context.Context) (string, bool)

	// Mutations
	HardReset(ctx context.Context, revision string) error
	CherryPick(ctx context.Context, commitSHA string) error
	CherryPickSkip(ctx context.Context) error
	CherryPickAbort(ctx context.Context) error
	RebaseOnto(ctx context.Context, onto, upstream, branchName string) error
	RebaseRoot(ctx context.Context, env []string) error
	RebaseAbort(ctx context.Context) error
}

// NewRealRunner returns a standard implementation of Runner that calls
// the package-level git functions.
func NewRealRunner() Runner {
	return &realRunner{}
}

// realRunner implements Runner by calling the actual git package functions
type realRunner struct{}

func (r *realRunner) SetWorkingDir(dir string) {
	SetWorkingDir(dir)
}

func (r *realRunner) GetWorkingDir() string {
	return GetWorkingDir()
}

func (r *realRunner) RunGitCommand(args ...string) (string, error) {
	return RunGitCommand(args...)
}

func (r *realRunner) RunGitCommandWithContext(ctx context.Context, args ...string) (string, error) {
	return RunGitCommandWithContext(ctx, args...)
}

func (r *realRunner) RunGitCommandWithEnv(ctx context.Context, env []string, args ...string) (string, error) {
	return RunGitCommandWithEnv(ctx, env, args...)
}

func (r *realRunner) GetCurrentBranch(ctx context.Context) (string, error) {
	return GetCurrentBranch(ctx)
}

func (r *realRunner) BranchExists(ctx context.Context, branchName string) bool {
	return BranchExists(ctx, branchName)
}

func (r *realRunner) CheckoutBranch(ctx context.Context, branchName string) error {
	return CheckoutBranch(ctx, branchName)
}

func (r *realRunner) GetRevision(ctx context.Context, rev string) (string, error) {
	return GetRevision(ctx, rev)
}

func (r *realRunner) UpdateBranchRef(branchName, revision string) error {
	return UpdateBranchRef(branchName, revision)
}

func (r *realRunner) UpdateRef(name, revision string) error {
	return UpdateRef(name, revision)
}

func (r *realRunner) GetParentSHAs(ctx context.Context, commitSHA string) ([]string, error) {
	return GetParentSHAs(ctx, commitSHA)
}

func (r *realRunner) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	return IsAncestor(ctx, ancestor, descendant)
}

func (r *realRunner) HistoryContainsMerge(ctx context.Context, ref string) (bool, error) {
	return HistoryContainsMerge(ctx, ref)
}

func (r *realRunner) GetCommitRangeSHAs(ctx context.Context, base, head string) ([]string, error) {
	return GetCommitRangeSHAs(ctx, base, head)
}

func (r *realRunner) GetHistorySHAs(ctx context.Context, ref string) ([]string, error) {
	return GetHistorySHAs(ctx, ref)
}

func (r *realRunner) HasUnstagedChanges(ctx context.Context) (bool, error) {
	return HasUnstagedChanges(ctx)
}

func (r *realRunner) HasStagedChanges(ctx context.Context) (bool, error) {
	return HasStagedChanges(ctx)
}

func (r *realRunner) OperationInProgress(ctx context.Context) (string, bool) {
	return OperationInProgress(ctx)
}

func (r *realRunner) HardReset(ctx context.Context, revision string) error {
	return HardReset(ctx, revision)
}

func (r *realRunner) CherryPick(ctx context.Context, commitSHA string) error {
	return CherryPick(ctx, commitSHA)
}

func (r *realRunner) CherryPickSkip(ctx context.Context) error {
	return CherryPickSkip(ctx)
}

func (r *realRunner) CherryPickAbort(ctx context.Context) error {
	return CherryPickAbort(ctx)
}

func (r *realRunner) RebaseOnto(ctx context.Context, onto, upstream, branchName string) error {
	return RebaseOnto(ctx, onto, upstream, branchName)
}

func (r *realRunner) RebaseRoot(ctx context.Context, env []string) error {
	return RebaseRoot(ctx, env)
}

func (r *realRunner) RebaseAbort(ctx context.Context) error {
	return RebaseAbort(ctx)
}
