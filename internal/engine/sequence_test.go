package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitshift.dev/gitshift/internal/engine"
)

func TestBuildInstructionList(t *testing.T) {
	t.Run("renders one pick per line", func(t *testing.T) {
		list := engine.BuildInstructionList([]string{"aaa111", "bbb222"})
		require.Equal(t, "pick aaa111\npick bbb222\n", list)
	})

	t.Run("empty order renders nothing", func(t *testing.T) {
		require.Equal(t, "", engine.BuildInstructionList(nil))
	})
}

func TestCopyInstructionFile(t *testing.T) {
	t.Run("overwrites the todo file with the plan", func(t *testing.T) {
		dir := t.TempDir()
		planPath := filepath.Join(dir, "plan")
		todoPath := filepath.Join(dir, "todo")

		err := os.WriteFile(planPath, []byte("pick aaa111\n"), 0600)
		require.NoError(t, err)
		err = os.WriteFile(todoPath, []byte("pick zzz999\npick yyy888\n"), 0600)
		require.NoError(t, err)

		err = engine.CopyInstructionFile(planPath, todoPath)
		require.NoError(t, err)

		content, err := os.ReadFile(todoPath)
		require.NoError(t, err)
		require.Equal(t, "pick aaa111\n", string(content))
	})

	t.Run("errors when the plan is missing", func(t *testing.T) {
		dir := t.TempDir()
		err := engine.CopyInstructionFile(filepath.Join(dir, "missing"), filepath.Join(dir, "todo"))
		require.Error(t, err)
	})
}

func TestBackupRefName(t *testing.T) {
	t.Run("names are valid reference names under the backup prefix", func(t *testing.T) {
		name := engine.BackupRefName("feature", mustParseTime(t, "2024-03-05T12:34:56Z"))
		require.Equal(t, "refs/backup/gitshift/feature-2024-03-05T12-34-56Z", name)
		require.NotContains(t, name, ":")
	})
}
