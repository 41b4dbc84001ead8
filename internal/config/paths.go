// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

// GlobalDirName is the name of the Studio dotdir in the user's home.
const GlobalDirName = ".t2s-studio"

// LogsDirName is the name of the saved-run-logs directory.
const LogsDirName = "logs"

// File names
const (
	SettingsFileName    = "settings.yaml"
	TelemetryIDFileName = "telemetry_id"
)

// GlobalDir returns the path to the Studio directory (~/.t2s-studio/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalLogsDir returns the path to the saved-run-logs directory.
func GlobalLogsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogsDirName), nil
}

// TelemetryIDFile returns the path to the persisted anonymous telemetry ID.
func TelemetryIDFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, TelemetryIDFileName), nil
}

// EnsureGlobalDir creates the Studio directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureGlobalLogsDir creates the saved-run-logs directory if it doesn't
// exist.
func EnsureGlobalLogsDir() error {
	dir, err := GlobalLogsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
