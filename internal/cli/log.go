package cli

import (
	"github.com/spf13/cobra"

	"gitshift.dev/gitshift/internal/config"
	"gitshift.dev/gitshift/internal/git"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var (
		branch string
		base   string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "List the commits of a branch",
		Long: `List the commits of a branch, newest first. By default the listing stops at
the comparison base (the configured branch, or main/master when detected), so
only the commits unique to the branch are shown. Pass --base "" to list the
full history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, splog, err := setupRepo()
			if err != nil {
				return err
			}
			defer splog.Close()

			targetBranch, err := resolveBranch(cmd.Context(), branch)
			if err != nil {
				return err
			}

			compareBase := base
			if !cmd.Flags().Changed("base") {
				compareBase, err = config.GetCompareBase(cmd.Context(), repoRoot)
				if err != nil {
					return err
				}
			}
			if compareBase == targetBranch {
				// Listing a branch against itself would show nothing
				compareBase = ""
			}

			commits, err := git.ListCommits(targetBranch, compareBase)
			if err != nil {
				return err
			}

			for _, c := range commits {
				splog.Info("%s  %s  %s (%s)",
					c.ShortHash, c.Date.Format("2006-01-02"), c.Subject, c.Author)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "Which branch to list. Defaults to the current branch.")
	cmd.Flags().StringVar(&base, "base", "", "List only commits not reachable from this ref.")

	return cmd
}
