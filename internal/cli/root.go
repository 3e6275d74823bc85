// Package cli wires the cobra command tree for the gitshift binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitshift",
		Short: "Gitshift repositions or removes single commits in a branch's history",
		Long: `Gitshift rewrites a branch's linear history one commit at a time: move any
commit to the tip of its branch, or delete it outright. Before every rewrite
the branch tip is snapshotted under refs/backup/gitshift/ so a failed or
regretted operation can be recovered by hand.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newRepositionCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newBranchesCmd())
	rootCmd.AddCommand(newBackupsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newReplayEditorCmd())

	return rootCmd
}
