package config

import (
	"os"
	"path/filepath"
)

// GetHome returns GHSCOUT_HOME or the ~/.ghscout default
func GetHome() string {
	home := os.Getenv("GHSCOUT_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".ghscout"
		}
		return filepath.Join(homeDir, ".ghscout")
	}
	return ExpandPath(home)
}

// GetDBPath returns $GHSCOUT_HOME/history.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "history.db")
}

// GetSettingsPath returns $GHSCOUT_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetSSHDir returns $GHSCOUT_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
