package cli

import (
	"github.com/spf13/cobra"

	"gitshift.dev/gitshift/internal/engine"
)

// newReplayEditorCmd creates the hidden replay-editor command. Git invokes it
// through GIT_SEQUENCE_EDITOR during a synthesized rewrite, passing the todo
// path as the last argument; it copies the precomputed instruction list into
// place so no editor ever opens.
func newReplayEditorCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "replay-editor <plan> <todo>",
		Hidden: true,
		Args:   cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return engine.CopyInstructionFile(args[0], args[1])
		},
	}
}
