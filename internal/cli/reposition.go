package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitshift.dev/gitshift/internal/engine"
)

// newRepositionCmd creates the reposition command
func newRepositionCmd() *cobra.Command {
	var (
		branch string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "reposition <commit>",
		Short: "Make a commit the new tip of a branch",
		Long: `Make a commit the new tip of a branch. Every other commit between the
commit's original parent and the old tip keeps its relative order and ends up
beneath it. The branch tip is snapshotted under refs/backup/gitshift/ first.

Merge commits cannot be repositioned.`,
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
				fmt.Sprintf("Rewrite %s so %s becomes its tip?", targetBranch, args[0]), force)
			if err != nil {
				return err
			}
			if !ok {
				splog.Info("Canceled.")
				return nil
			}

			eng := engine.NewEngine(splog)
			if err := eng.Reposition(cmd.Context(), targetBranch, args[0]); err != nil {
				return err
			}
			splog.Info("Moved %s to the tip of %s", args[0], targetBranch)
			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "Which branch to rewrite. Defaults to the current branch.")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt.")

	return cmd
}
