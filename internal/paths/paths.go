package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProjectConfigFile is the per-directory configuration file name.
const ProjectConfigFile = "journey.toml"

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return home, nil
}

// WorkingDir returns the current working directory.
func WorkingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}

// GlobalConfigPath returns the path of the user-wide configuration file.
func GlobalConfigPath() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "journey", "config.toml"), nil
}

// ProjectConfigPath returns the path of the configuration file in dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFile)
}
