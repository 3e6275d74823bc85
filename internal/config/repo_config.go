// Package config provides repository configuration management,
// including reading and writing the gitshift configuration file.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gitshift.dev/gitshift/internal/git"
)

const configFileName = ".gitshift_config"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	// CompareBase is the branch commit listings are bounded by
	CompareBase *string `json:"compareBase,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", configFileName)
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

func writeRepoConfig(repoRoot string, config *RepoConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize repo config: %w", err)
	}

	if err := os.WriteFile(configPath(repoRoot), data, 0600); err != nil {
		return fmt.Errorf("failed to write repo config: %w", err)
	}
	return nil
}

// GetCompareBase returns the comparison-base branch for commit listings.
// Uses the configured value if present, otherwise auto-detects main or
// master. Returns an empty string when neither exists; listings then span
// the full history.
func GetCompareBase(ctx context.Context, repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.CompareBase != nil && *config.CompareBase != "" {
		return *config.CompareBase, nil
	}

	for _, candidate := range []string{"main", "master"} {
		if git.BranchExists(ctx, candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

// SetCompareBase records the comparison-base branch in the repository config
func SetCompareBase(repoRoot, branchName string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}
	config.CompareBase = &branchName
	return writeRepoConfig(repoRoot, config)
}
