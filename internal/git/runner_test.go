package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	gserrors "gitshift.dev/gitshift/internal/errors"
	"gitshift.dev/gitshift/internal/git"
	"gitshift.dev/gitshift/testhelpers"
)

func TestRunGitCommand(t *testing.T) {
	t.Run("returns trimmed output", func(t *testing.T) {
		testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		output, err := git.RunGitCommand("rev-parse", "HEAD")
		require.NoError(t, err)
		require.Len(t, output, 40)
	})

	t.Run("wraps failures in a command error", func(t *testing.T) {
		testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := git.RunGitCommand("rev-parse", "--verify", "no-such-rev")
		require.Error(t, err)

		var cmdErr *gserrors.GitCommandError
		require.True(t, errors.As(err, &cmdErr))
		require.Equal(t, "git", cmdErr.Command)
		require.Contains(t, cmdErr.Args, "no-such-rev")
	})

	t.Run("runs in an explicit directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		output, err := git.RunGitCommandInDir(scene.Dir, "rev-parse", "--show-toplevel")
		require.NoError(t, err)
		require.NotEmpty(t, output)
	})

	t.Run("passes extra environment through", func(t *testing.T) {
		testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		output, err := git.RunGitCommandWithEnv(context.Background(),
			[]string{"GIT_AUTHOR_NAME=Someone Else"},
			"var", "GIT_AUTHOR_IDENT")
		require.NoError(t, err)
		require.Contains(t, output, "Someone Else")
	})
}
