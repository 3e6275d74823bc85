package git

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5/plumbing"

	gserrors "gitshift.dev/gitshift/internal/errors"
)

// BranchInfo describes a local branch for display
type BranchInfo struct {
	Name      string
	IsCurrent bool
}

// ListBranches returns every local branch with a marker for the current
// checkout, sorted by name
func ListBranches() ([]BranchInfo, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return nil, err
	}

	current, err := repo.CurrentBranch()
	if err != nil && !errors.Is(err, gserrors.ErrNotOnBranch) {
		return nil, err
	}

	iter, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var branches []BranchInfo
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if !ref.Name().IsBranch() {
			return nil
		}
		name := ref.Name().Short()
		branches = append(branches, BranchInfo{
			Name:      name,
			IsCurrent: name == current,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	sort.Slice(branches, func(i, j int) bool {
		return branches[i].Name < branches[j].Name
	})

	return branches, nil
}
