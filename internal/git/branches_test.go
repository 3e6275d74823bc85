package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitshift.dev/gitshift/internal/git"
	"gitshift.dev/gitshift/testhelpers"
)

func TestListBranches(t *testing.T) {
	t.Run("lists branches sorted with the current one marked", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := scene.Repo.CreateBranch("zeta")
		require.NoError(t, err)
		err = scene.Repo.CreateAndCheckoutBranch("alpha")
		require.NoError(t, err)

		err = git.InitDefaultRepoInDir(scene.Dir)
		require.NoError(t, err)

		branches, err := git.ListBranches()
		require.NoError(t, err)
		require.Len(t, branches, 3)

		require.Equal(t, "alpha", branches[0].Name)
		require.True(t, branches[0].IsCurrent)
		require.Equal(t, "main", branches[1].Name)
		require.False(t, branches[1].IsCurrent)
		require.Equal(t, "zeta", branches[2].Name)
		require.False(t, branches[2].IsCurrent)
	})

	t.Run("no branch is current on detached HEAD", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := scene.Repo.CheckoutDetached("HEAD")
		require.NoError(t, err)

		err = git.InitDefaultRepoInDir(scene.Dir)
		require.NoError(t, err)

		branches, err := git.ListBranches()
		require.NoError(t, err)
		require.Len(t, branches, 1)
		require.False(t, branches[0].IsCurrent)
	})
}
