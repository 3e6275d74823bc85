package git

import "context"

// IsAncestor reports whether ancestor is reachable from descendant (or equal
// to it). A failing ancestor test and an unresolvable revision are treated
// identically: the commit is not part of that history.
func IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	_, err := RunGitCommandWithContext(ctx, "merge-base", "--is-ancestor", ancestor, descendant)
	return err == nil, nil
}
