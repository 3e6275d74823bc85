package cli

import (
	"github.com/spf13/cobra"

	"gitshift.dev/gitshift/internal/config"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	var compareBase string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the repository configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, splog, err := setupRepo()
			if err != nil {
				return err
			}
			defer splog.Close()

			if cmd.Flags().Changed("compare-base") {
				if err := config.SetCompareBase(repoRoot, compareBase); err != nil {
					return err
				}
				splog.Info("Comparison base set to %s", compareBase)
				return nil
			}

			base, err := config.GetCompareBase(cmd.Context(), repoRoot)
			if err != nil {
				return err
			}
			if base == "" {
				splog.Info("No comparison base configured or detected.")
			} else {
				splog.Info("Comparison base: %s", base)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&compareBase, "compare-base", "", "Branch that commit listings are bounded by.")

	return cmd
}
