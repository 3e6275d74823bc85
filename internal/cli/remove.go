package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitshift.dev/gitshift/internal/engine"
)

// newRemoveCmd creates the remove command
func newRemoveCmd() *cobra.Command {
	var (
		branch string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "remove <commit>",
		Short: "Delete a commit from a branch's history",
		Long: `Delete a commit from a branch's history. Everything committed after it is
replayed onto its parent. The branch tip is snapshotted under
refs/backup/gitshift/ first, so the removed commit stays recoverable.

Merge commits cannot be removed, and a branch's only commit cannot be removed
(delete the branch instead).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, splog, err := setupRepo()
			if err != nil {
				return err
			}
			defer splog.Close()

			targetBranch, err := resolveBranch(cmd.Context(), branch)
			if err != nil {
				return err
			}

			ok, err := confirmMutation(
				fmt.Sprintf("Rewrite %s to delete %s?", targetBranch, args[0]), force)
			if err != nil {
				return err
			}
			if !ok {
				splog.Info("Canceled.")
				return nil
			}

			eng := engine.NewEngine(splog)
			if err := eng.Remove(cmd.Context(), targetBranch, args[0]); err != nil {
				return err
			}
			splog.Info("Removed %s from %s", args[0], targetBranch)
			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "Which branch to rewrite. Defaults to the current branch.")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt.")

	return cmd
}
