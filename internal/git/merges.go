package git

import (
	"context"
	"fmt"
)

// HistoryContainsMerge reports whether any commit reachable from ref has
// more than one parent
func HistoryContainsMerge(ctx context.Context, ref string) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "rev-list", "--min-parents=2", "-n", "1", ref)
	if err != nil {
		return false, fmt.Errorf("failed to scan %s for merge commits: %w", ref, err)
	}
	return output != "", nil
}
