// Package errors provides sentinel errors and custom error types for gitshift.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrNotReachable indicates that a commit is not part of a branch's history
	ErrNotReachable = errors.New("commit not reachable from branch")

	// ErrDirtyWorkingState indicates uncommitted or staged changes in the repository
	ErrDirtyWorkingState = errors.New("dirty working state")

	// ErrOperationInProgress indicates a rebase, merge, cherry-pick or revert is in progress
	ErrOperationInProgress = errors.New("operation in progress")

	// ErrMergeCommitUnsupported indicates the target commit is a merge commit
	ErrMergeCommitUnsupported = errors.New("merge commits are not supported")

	// ErrCrossMergeReorder indicates a root reposition over a history containing merges
	ErrCrossMergeReorder = errors.New("cannot reorder the root commit across merges")

	// ErrCrossMergeDelete indicates a root deletion over a history containing merges
	ErrCrossMergeDelete = errors.New("cannot delete the root commit across merges")

	// ErrCannotDeleteOnlyCommit indicates an attempt to delete a branch's only commit
	ErrCannotDeleteOnlyCommit = errors.New("cannot delete the only commit of a branch")

	// ErrReplayConflict indicates a cherry-pick replay step failed
	ErrReplayConflict = errors.New("replay conflict")

	// ErrRewriteFailed indicates a synthesized full-history rewrite failed
	ErrRewriteFailed = errors.New("history rewrite failed")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// NotReachableError reports a commit that is not an ancestor of a branch tip
type NotReachableError struct {
	BranchName string
	CommitSHA  string
}

func (e *NotReachableError) Error() string {
	return fmt.Sprintf("commit %s is not part of the history of %s", e.CommitSHA, e.BranchName)
}

// Is returns true if the target error is ErrNotReachable
func (e *NotReachableError) Is(target error) bool {
	return target == ErrNotReachable
}

// NewNotReachableError creates a new NotReachableError
func NewNotReachableError(branchName, commitSHA string) *NotReachableError {
	return &NotReachableError{BranchName: branchName, CommitSHA: commitSHA}
}

// DirtyWorkingStateError reports uncommitted or staged changes
type DirtyWorkingStateError struct {
	Staged bool
}

func (e *DirtyWorkingStateError) Error() string {
	if e.Staged {
		return "there are staged changes; commit or unstage them first"
	}
	return "there are uncommitted changes; commit or stash them first"
}

// Is returns true if the target error is ErrDirtyWorkingState
func (e *DirtyWorkingStateError) Is(target error) bool {
	return target == ErrDirtyWorkingState
}

// OperationInProgressError reports an in-flight multi-step git operation
type OperationInProgressError struct {
	Operation string // "rebase", "merge", "cherry-pick" or "revert"
}

func (e *OperationInProgressError) Error() string {
	return fmt.Sprintf("a %s is in progress; finish or abort it first", e.Operation)
}

// Is returns true if the target error is ErrOperationInProgress
func (e *OperationInProgressError) Is(target error) bool {
	return target == ErrOperationInProgress
}

// MergeCommitError reports an attempt to mutate a merge commit
type MergeCommitError struct {
	CommitSHA string
}

func (e *MergeCommitError) Error() string {
	return fmt.Sprintf("commit %s is a merge commit and cannot be moved or deleted", e.CommitSHA)
}

// Is returns true if the target error is ErrMergeCommitUnsupported
func (e *MergeCommitError) Is(target error) bool {
	return target == ErrMergeCommitUnsupported
}

// ReplayConflictError reports a cherry-pick that failed for a reason other
// than becoming empty
type ReplayConflictError struct {
	CommitSHA string
	Err       error
}

func (e *ReplayConflictError) Error() string {
	return fmt.Sprintf("replaying commit %s failed: %v", e.CommitSHA, e.Err)
}

func (e *ReplayConflictError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrReplayConflict
func (e *ReplayConflictError) Is(target error) bool {
	return target == ErrReplayConflict
}

// RewriteFailedError reports a failed root-path synthesized rewrite
type RewriteFailedError struct {
	BranchName string
	Err        error
}

func (e *RewriteFailedError) Error() string {
	return fmt.Sprintf("history rewrite of %s failed: %v", e.BranchName, e.Err)
}

func (e *RewriteFailedError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrRewriteFailed
func (e *RewriteFailedError) Is(target error) bool {
	return target == ErrRewriteFailed
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
