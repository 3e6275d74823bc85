package engine

import (
	"context"
	"strings"
	"time"
)

// BackupRefPrefix is the namespace under which branch tips are snapshotted
// before any mutation. References created here are purely additive and never
// pruned by gitshift.
const BackupRefPrefix = "refs/backup/gitshift"

// Backup records the snapshot taken of a branch tip before a mutation.
// Created is false when the snapshot could not be written; rollback then
// degrades to a warning instead of a restore.
type Backup struct {
	Ref     string
	SHA     string
	Created bool
}

// BackupRefName builds the backup reference name for a branch at a given
// instant. Colons and dots are not valid in reference names, so the ISO-8601
// timestamp carries dashes instead.
func BackupRefName(branchName string, now time.Time) string {
	ts := now.UTC().Format(time.RFC3339)
	ts = strings.ReplaceAll(ts, ":", "-")
	ts = strings.ReplaceAll(ts, ".", "-")
	return BackupRefPrefix + "/" + branchName + "-" + ts
}

// createBackup snapshots the branch tip under the backup namespace. Failure
// is not fatal: the operation proceeds, and a later rollback will warn
// instead of restoring.
func (e *Engine) createBackup(ctx context.Context, branchName string) Backup {
	sha, err := e.runner.GetRevision(ctx, branchName)
	if err != nil {
		e.splog.Warn("could not read tip of %s for backup: %v", branchName, err)
		return Backup{}
	}

	ref := BackupRefName(branchName, time.Now())
	if err := e.runner.UpdateRef(ref, sha); err != nil {
		e.splog.Warn("could not create backup reference %s: %v", ref, err)
		return Backup{}
	}

	e.splog.Debug("created backup reference %s -> %s", ref, sha)
	return Backup{Ref: ref, SHA: sha, Created: true}
}

// restoreFromBackup points the branch back at its pre-mutation tip. Safe to
// call more than once; does nothing but warn when no backup was written.
func (e *Engine) restoreFromBackup(ctx context.Context, branchName string, backup Backup) {
	if !backup.Created {
		e.splog.Warn("no backup reference exists for %s; the branch is left as git left it", branchName)
		return
	}

	current, err := e.runner.GetCurrentBranch(ctx)
	if err == nil && current == branchName {
		// Restoring the checked-out branch must also restore the working files
		if err := e.runner.HardReset(ctx, backup.SHA); err == nil {
			return
		}
	}
	if err := e.runner.UpdateBranchRef(branchName, backup.SHA); err != nil {
		e.splog.Warn("failed to restore %s from backup %s: %v", branchName, backup.Ref, err)
		return
	}
	e.splog.Info("restored %s from backup %s", branchName, backup.Ref)
}
