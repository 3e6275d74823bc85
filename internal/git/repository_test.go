package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitshift.dev/gitshift/internal/git"
	"gitshift.dev/gitshift/testhelpers"
)

func TestDefaultRepo(t *testing.T) {
	t.Run("init in dir replaces any previously opened repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := git.InitDefaultRepoInDir(scene.Dir)
		require.NoError(t, err)

		repo, err := git.GetDefaultRepo()
		require.NoError(t, err)
		require.Equal(t, scene.Dir, repo.Root())
	})

	t.Run("reset clears the default repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := git.InitDefaultRepoInDir(scene.Dir)
		require.NoError(t, err)

		git.ResetDefaultRepo()

		_, err = git.GetDefaultRepo()
		require.Error(t, err)
	})
}

func TestRepositoryHasBranch(t *testing.T) {
	t.Run("reports existing and missing branches", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := scene.Repo.CreateBranch("feature")
		require.NoError(t, err)

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		require.True(t, repo.HasBranch("main"))
		require.True(t, repo.HasBranch("feature"))
		require.False(t, repo.HasBranch("nope"))
	})
}
