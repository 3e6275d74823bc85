package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"gitshift.dev/gitshift/internal/engine"
	"gitshift.dev/gitshift/internal/git"
)

// newBackupsCmd creates the backups command
func newBackupsCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "backups",
		Short: "List backup references created before history rewrites",
		Long: `List the references under refs/backup/gitshift/. Each one captures a branch
tip as it was immediately before a rewrite; gitshift never deletes them. To
recover a branch by hand:

  git update-ref refs/heads/<branch> <backup-sha>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, splog, err := setupRepo()
			if err != nil {
				return err
			}
			defer splog.Close()

			prefix := engine.BackupRefPrefix
			if branch != "" {
				prefix = prefix + "/" + branch
			}

			refs, err := git.ListRefs(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			if len(refs) == 0 {
				splog.Info("No backup references found.")
				return nil
			}

			for _, ref := range refs {
				splog.Info("%s  %s", ref.SHA[:7], strings.TrimPrefix(ref.Name, engine.BackupRefPrefix+"/"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "Only list backups of this branch.")

	return cmd
}
