package output_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitshift.dev/gitshift/internal/output"
)

func TestGetLogFilePath(t *testing.T) {
	t.Run("environment override wins", func(t *testing.T) {
		custom := filepath.Join(t.TempDir(), "custom.log")
		t.Setenv("GITSHIFT_LOG_FILE", custom)

		require.Equal(t, custom, output.GetLogFilePath())
	})

	t.Run("defaults under the home directory", func(t *testing.T) {
		t.Setenv("GITSHIFT_LOG_FILE", "")

		path := output.GetLogFilePath()
		require.Contains(t, path, "gitshift.log")
	})
}

func TestSplog(t *testing.T) {
	t.Run("file-backed logger creates the log directory", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "logs", "gitshift.log")

		splog, err := output.NewSplogWithLogFile(logPath)
		require.NoError(t, err)
		defer splog.Close()

		splog.Info("hello %s", "world")
		splog.Debug("not shown without DEBUG")
	})

	t.Run("console logger formats without error", func(t *testing.T) {
		splog := output.NewSplog()
		defer splog.Close()

		splog.Info("plain message")
		splog.Warn("warning %d", 42)
		splog.Newline()
	})
}
