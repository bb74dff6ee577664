package output

import (
	"os"
	"path/filepath"
)

// LogFilePath returns the log file to write, or "" to log to the console only.
// An explicit path wins over REFSPEC_LOG_FILE; the value "default" selects
// ~/.refspec/logs/refspec.log.
func LogFilePath(flagValue string) string {
	path := flagValue
	if path == "" {
		path = os.Getenv("REFSPEC_LOG_FILE")
	}
	if path != "default" {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "refspec.log"
	}
	return filepath.Join(homeDir, ".refspec", "logs", "refspec.log")
}
