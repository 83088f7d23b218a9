//go:build !windows

package configpaths

import (
	"os"
	"path/filepath"
)

// SystemConfigDir is the machine-wide configuration directory.
func SystemConfigDir() string {
	return filepath.Join(string(os.PathSeparator), "etc", appName)
}

// ServiceDir returns the directory a running service keeps its state in.
// On Unix, root services use /etc/bindcore.
func ServiceDir() (string, error) {
	if os.Geteuid() == 0 {
		return SystemConfigDir(), nil
	}
	return DefaultConfigDir()
}
