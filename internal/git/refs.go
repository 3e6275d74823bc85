package git

import (
	"context"
	"fmt"
	"strings"
)

// GetRevision resolves a revision (branch name, full or abbreviated hash) to
// a full commit SHA
func GetRevision(ctx context.Context, rev string) (string, error) {
	sha, err := RunGitCommandWithContext(ctx, "rev-parse", "--verify", rev+"^{commit}")
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", rev, err)
	}
	return sha, nil
}

// GetParentSHAs returns the parent SHAs of a commit, in recorded order.
// A root commit yields an empty slice, a merge commit two or more entries.
func GetParentSHAs(ctx context.Context, commitSHA string) ([]string, error) {
	output, err := RunGitCommandWithContext(ctx, "rev-list", "--parents", "-n", "1", commitSHA)
	if err != nil {
		return nil, fmt.Errorf("failed to read parents of %s: %w", commitSHA, err)
	}
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return nil, fmt.Errorf("unexpected rev-list output for %s", commitSHA)
	}
	return fields[1:], nil
}

// GetCommitRangeSHAs returns the SHAs in (base, head], oldest first
func GetCommitRangeSHAs(ctx context.Context, base, head string) ([]string, error) {
	lines, err := RunGitCommandLinesWithContext(ctx, "rev-list", "--reverse", base+".."+head)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits in %s..%s: %w", base, head, err)
	}
	return lines, nil
}

// GetHistorySHAs returns every SHA reachable from ref, oldest first
func GetHistorySHAs(ctx context.Context, ref string) ([]string, error) {
	lines, err := RunGitCommandLinesWithContext(ctx, "rev-list", "--reverse", ref)
	if err != nil {
		return nil, fmt.Errorf("failed to list history of %s: %w", ref, err)
	}
	return lines, nil
}

// UpdateBranchRef updates a branch reference to point to a new commit
func UpdateBranchRef(branchName, commitSHA string) error {
	return UpdateRef("refs/heads/"+branchName, commitSHA)
}

// UpdateRef updates an arbitrary reference to point to a new commit
func UpdateRef(name, commitSHA string) error {
	_, err := RunGitCommandWithContext(context.Background(), "update-ref", name, commitSHA)
	if err != nil {
		return fmt.Errorf("failed to update ref %s: %w", name, err)
	}
	return nil
}

// RefEntry is a single reference with its target SHA
type RefEntry struct {
	Name string
	SHA  string
}

// ListRefs returns all refs under the given prefix, sorted by refname
func ListRefs(ctx context.Context, prefix string) ([]RefEntry, error) {
	lines, err := RunGitCommandLinesWithContext(ctx,
		"for-each-ref", "--format=%(refname) %(objectname)", prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list refs under %s: %w", prefix, err)
	}

	entries := make([]RefEntry, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		entries = append(entries, RefEntry{Name: fields[0], SHA: fields[1]})
	}
	return entries, nil
}
