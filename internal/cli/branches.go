package cli

import (
	"github.com/spf13/cobra"

	"gitshift.dev/gitshift/internal/git"
)

// newBranchesCmd creates the branches command
func newBranchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List local branches, marking the current checkout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, splog, err := setupRepo()
			if err != nil {
				return err
			}
			defer splog.Close()

			branches, err := git.ListBranches()
			if err != nil {
				return err
			}

			for _, b := range branches {
				marker := "  "
				if b.IsCurrent {
					marker = "* "
				}
				splog.Info("%s%s", marker, b.Name)
			}
			return nil
		},
	}
}
