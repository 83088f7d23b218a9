// Package configpaths locates configuration and bindings files.
package configpaths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arcadeio/bindcore/games"
)

const appName = "bindcore"

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

// ConfigCandidatePaths returns the configuration files to try, split by
// format, in priority order. An explicit user path is the only candidate
// for its own format.
func ConfigCandidatePaths(userCfg string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userCfg != "" {
		switch strings.ToLower(filepath.Ext(userCfg)) {
		case ".json":
			return []string{userCfg}, nil, nil
		case ".yaml", ".yml":
			return nil, []string{userCfg}, nil
		case ".toml":
			return nil, nil, []string{userCfg}
		}
		return nil, []string{userCfg}, nil
	}

	dirs := []string{"."}
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir := SystemConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	for _, dir := range dirs {
		jsonPaths = append(jsonPaths, filepath.Join(dir, appName+".json"))
		yamlPaths = append(yamlPaths, filepath.Join(dir, appName+".yaml"), filepath.Join(dir, appName+".yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, appName+".toml"))
	}
	return jsonPaths, yamlPaths, tomlPaths
}

// BindingsDir returns the directory holding per-game bindings files.
func BindingsDir() (string, error) {
	dir, err := ServiceDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bindings"), nil
}

// BindingsFile returns the bindings file of game inside dir, with the given
// extension.
func BindingsFile(dir, game, ext string) string {
	return filepath.Join(dir, games.Slug(game)+"."+strings.TrimPrefix(ext, "."))
}
