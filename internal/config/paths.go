// ABOUTME: Standard filesystem paths for grocer configuration and data
// ABOUTME: Resolves ~/.grocer/ for global and .grocer/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".grocer"
	projectDirName = ".grocer"
)

// GlobalDir returns the user-global config directory (~/.grocer/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.grocer/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}

// KeybindingsFile returns the path to the TUI keybindings file.
func KeybindingsFile() string {
	return filepath.Join(GlobalDir(), "keybindings.json")
}

// LogFile returns where the full-screen UI writes diagnostics.
func LogFile() string {
	return filepath.Join(GlobalDir(), "grocer.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
