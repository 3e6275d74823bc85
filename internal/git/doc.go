// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Branch and checkout management
//   - Repo state queries (dirty state, in-progress operations, refs, log)
//   - History mutation primitives (reset, cherry-pick, rebase)
//
// Reads that only need the object database go through go-git; anything that
// mutates the repository shells out to the git binary. This package should be
// the only place where direct git commands are executed.
package git
