// Package engine implements the history mutation operations: repositioning a
// commit to become a branch's new tip and removing a commit from a branch's
// linear history.
//
// Every operation follows the same shape: validate preconditions, snapshot
// the branch tip under a backup reference, switch the checkout if needed, run
// the mutation, and unwind. A failed mutation aborts whatever git left in
// flight and restores the branch reference from the backup. The engine
// performs no internal locking; callers must not run two operations against
// the same repository concurrently.
package engine
