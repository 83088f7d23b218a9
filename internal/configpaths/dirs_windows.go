//go:build windows

package configpaths

import (
	"os"
	"path/filepath"
)

// SystemConfigDir is the machine-wide configuration directory.
func SystemConfigDir() string {
	if dir := os.Getenv("ProgramData"); dir != "" {
		return filepath.Join(dir, appName)
	}
	return ""
}

// ServiceDir returns the directory a running service keeps its state in.
func ServiceDir() (string, error) {
	return DefaultConfigDir()
}
