package output

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If GITSHIFT_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.gitshift/logs/gitshift.log
func GetLogFilePath() string {
	if customPath := os.Getenv("GITSHIFT_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "gitshift.log"
	}

	return filepath.Join(homeDir, ".gitshift", "logs", "gitshift.log")
}
