package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gserrors "gitshift.dev/gitshift/internal/errors"
)

// CherryPick applies the content change of a commit on top of the current
// checkout, producing a new commit
func CherryPick(ctx context.Context, commitSHA string) error {
	_, err := RunGitCommandWithContext(ctx, "cherry-pick", commitSHA)
	return err
}

// CherryPickSkip skips the current cherry-pick step and continues
func CherryPickSkip(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "cherry-pick", "--skip")
	if err != nil {
		return fmt.Errorf("cherry-pick skip failed: %w", err)
	}
	return nil
}

// CherryPickAbort aborts an in-progress cherry-pick
func CherryPickAbort(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "cherry-pick", "--abort")
	if err != nil {
		return fmt.Errorf("cherry-pick abort failed: %w", err)
	}
	return nil
}

// IsEmptyCherryPick reports whether a cherry-pick failed only because the
// commit's content is already present, leaving nothing to apply. Git stops
// and asks the caller to choose between --skip and --allow-empty.
func IsEmptyCherryPick(err error) bool {
	if err == nil {
		return false
	}
	var cmdErr *gserrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	combined := cmdErr.Stderr + cmdErr.Stdout
	return strings.Contains(combined, "is now empty") ||
		strings.Contains(combined, "--allow-empty") ||
		strings.Contains(combined, "nothing to commit")
}
