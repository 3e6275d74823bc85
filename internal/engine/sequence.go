package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kballard/go-shellquote"

	gserrors "gitshift.dev/gitshift/internal/errors"
)

// BuildInstructionList renders the rebase instruction list for a replay
// order, oldest first, one pick per line.
func BuildInstructionList(order []string) string {
	var b []byte
	for _, sha := range order {
		b = append(b, "pick "...)
		b = append(b, sha...)
		b = append(b, '\n')
	}
	return string(b)
}

// CopyInstructionFile overwrites the rebase todo file with the precomputed
// instruction list. This is what the hidden replay-editor subcommand runs in
// place of an interactive editor.
func CopyInstructionFile(planPath, todoPath string) error {
	plan, err := os.Open(planPath)
	if err != nil {
		return fmt.Errorf("failed to open instruction list: %w", err)
	}
	defer plan.Close()

	todo, err := os.OpenFile(todoPath, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("failed to open rebase todo file: %w", err)
	}
	defer todo.Close()

	if _, err := io.Copy(todo, plan); err != nil {
		return fmt.Errorf("failed to write rebase todo file: %w", err)
	}
	return nil
}

// replayEditorCommand builds the GIT_SEQUENCE_EDITOR value: this same binary
// re-invoked as `gitshift replay-editor <plan>`, to which git appends the
// todo path.
func replayEditorCommand(planPath string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate gitshift binary: %w", err)
	}
	return shellquote.Join(exe, "replay-editor", planPath), nil
}

// runRootRewrite drives a full-history interactive rebase of the current
// checkout with a synthesized instruction list. Touching the root commit has
// no parent to reset onto, so this is the only mechanism available. On any
// failure the rebase is aborted and the branch restored from its backup.
func (e *Engine) runRootRewrite(ctx context.Context, branchName string, order []string, backup Backup) error {
	tmpDir, err := os.MkdirTemp("", "gitshift-replay-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir) // cleanup failure is not worth surfacing

	planPath := filepath.Join(tmpDir, "sequence")
	if err := os.WriteFile(planPath, []byte(BuildInstructionList(order)), 0600); err != nil {
		return fmt.Errorf("failed to write instruction list: %w", err)
	}

	editor, err := e.sequenceEditor(planPath)
	if err != nil {
		return err
	}

	env := []string{
		"GIT_SEQUENCE_EDITOR=" + editor,
		// Picks never open a message editor, but make sure nothing blocks
		"GIT_EDITOR=true",
	}
	if err := e.runner.RebaseRoot(ctx, env); err != nil {
		_ = e.runner.RebaseAbort(ctx)
		e.restoreFromBackup(ctx, branchName, backup)
		return &gserrors.RewriteFailedError{BranchName: branchName, Err: err}
	}
	return nil
}
