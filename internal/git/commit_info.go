package git

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
)

// CommitInfo describes a single commit for display
type CommitInfo struct {
	ShortHash string
	FullHash  string
	Subject   string
	Author    string
	Date      time.Time
}

// ListCommits returns the commits reachable from ref following first parents,
// newest first. When base is non-empty the walk stops before the merge base
// with it, so only the commits unique to ref are returned.
func ListCommits(ref, base string) ([]CommitInfo, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return nil, err
	}

	headHash, err := resolveRefHash(repo, ref)
	if err != nil {
		return nil, err
	}

	stop := plumbing.ZeroHash
	if base != "" {
		baseHash, err := resolveRefHash(repo, base)
		if err != nil {
			return nil, err
		}
		headCommit, err := repo.CommitObject(headHash)
		if err != nil {
			return nil, fmt.Errorf("failed to get commit: %w", err)
		}
		baseCommit, err := repo.CommitObject(baseHash)
		if err != nil {
			return nil, fmt.Errorf("failed to get commit: %w", err)
		}
		mergeBases, err := headCommit.MergeBase(baseCommit)
		if err == nil && len(mergeBases) > 0 {
			stop = mergeBases[0].Hash
		}
	}

	var commits []CommitInfo
	hash := headHash
	for hash != plumbing.ZeroHash && hash != stop {
		commit, err := repo.CommitObject(hash)
		if err != nil {
			return nil, fmt.Errorf("failed to get commit %s: %w", hash, err)
		}

		commits = append(commits, CommitInfo{
			ShortHash: commit.Hash.String()[:7],
			FullHash:  commit.Hash.String(),
			Subject:   strings.Split(strings.TrimSpace(commit.Message), "\n")[0],
			Author:    commit.Author.Name,
			Date:      commit.Author.When,
		})

		if commit.NumParents() == 0 {
			break
		}
		// Follow the first parent only; side branches of merges are not part
		// of the linear display
		hash = commit.ParentHashes[0]
	}

	return commits, nil
}
