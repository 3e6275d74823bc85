package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gitshift.dev/gitshift/internal/git"
	"gitshift.dev/gitshift/testhelpers"
)

func TestGetRevision(t *testing.T) {
	t.Run("resolves branches and abbreviated hashes", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		sha, err := git.GetRevision(context.Background(), "main")
		require.NoError(t, err)
		require.Len(t, sha, 40)

		short, err := git.GetRevision(context.Background(), sha[:7])
		require.NoError(t, err)
		require.Equal(t, sha, short)

		expected, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.Equal(t, expected, sha)
	})

	t.Run("errors on an unknown revision", func(t *testing.T) {
		testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := git.GetRevision(context.Background(), "does-not-exist")
		require.Error(t, err)
	})
}

func TestGetParentSHAs(t *testing.T) {
	t.Run("root commit has no parents", func(t *testing.T) {
		testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		sha, err := git.GetRevision(context.Background(), "HEAD")
		require.NoError(t, err)

		parents, err := git.GetParentSHAs(context.Background(), sha)
		require.NoError(t, err)
		require.Empty(t, parents)
	})

	t.Run("ordinary commit has one parent", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.LinearSceneSetup("a", "b"))

		parentSHA, err := scene.Repo.GetRevision("HEAD~1")
		require.NoError(t, err)

		parents, err := git.GetParentSHAs(context.Background(), "HEAD")
		require.NoError(t, err)
		require.Equal(t, []string{parentSHA}, parents)
	})

	t.Run("merge commit has two parents", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := scene.Repo.CreateAndCheckoutBranch("feature")
		require.NoError(t, err)
		err = scene.Repo.CreateChangeAndCommit("feature change", "feature")
		require.NoError(t, err)
		err = scene.Repo.MergeBranch("main", "feature")
		require.NoError(t, err)

		parents, err := git.GetParentSHAs(context.Background(), "HEAD")
		require.NoError(t, err)
		require.Len(t, parents, 2)
	})
}

func TestGetCommitRangeSHAs(t *testing.T) {
	t.Run("returns the range oldest first", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.LinearSceneSetup("a", "b", "c"))

		base, err := scene.Repo.GetRevision("HEAD~2")
		require.NoError(t, err)
		mid, err := scene.Repo.GetRevision("HEAD~1")
		require.NoError(t, err)
		tip, err := scene.Repo.GetRevision("HEAD")
		require.NoError(t, err)

		shas, err := git.GetCommitRangeSHAs(context.Background(), base, "main")
		require.NoError(t, err)
		require.Equal(t, []string{mid, tip}, shas)
	})
}

func TestGetHistorySHAs(t *testing.T) {
	t.Run("returns the full history oldest first", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.LinearSceneSetup("a", "b"))

		root, err := scene.Repo.GetRevision("HEAD~1")
		require.NoError(t, err)
		tip, err := scene.Repo.GetRevision("HEAD")
		require.NoError(t, err)

		shas, err := git.GetHistorySHAs(context.Background(), "main")
		require.NoError(t, err)
		require.Equal(t, []string{root, tip}, shas)
	})
}

func TestUpdateBranchRef(t *testing.T) {
	t.Run("moves a branch without touching the checkout", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.LinearSceneSetup("a", "b"))

		err := scene.Repo.CreateBranch("other")
		require.NoError(t, err)

		parentSHA, err := scene.Repo.GetRevision("HEAD~1")
		require.NoError(t, err)

		err = git.UpdateBranchRef("other", parentSHA)
		require.NoError(t, err)

		otherSHA, err := scene.Repo.GetBranchSHA("other")
		require.NoError(t, err)
		require.Equal(t, parentSHA, otherSHA)

		branch, err := scene.Repo.CurrentBranchName()
		require.NoError(t, err)
		require.Equal(t, "main", branch)
	})
}

func TestListRefs(t *testing.T) {
	t.Run("lists references under a prefix", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		sha, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)

		err = git.UpdateRef("refs/backup/gitshift/main-20240101T000000Z", sha)
		require.NoError(t, err)

		refs, err := git.ListRefs(context.Background(), "refs/backup/gitshift")
		require.NoError(t, err)
		require.Len(t, refs, 1)
		require.Equal(t, "refs/backup/gitshift/main-20240101T000000Z", refs[0].Name)
		require.Equal(t, sha, refs[0].SHA)
	})

	t.Run("returns nothing for an empty prefix", func(t *testing.T) {
		testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		refs, err := git.ListRefs(context.Background(), "refs/backup/gitshift")
		require.NoError(t, err)
		require.Empty(t, refs)
	})
}
