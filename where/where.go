// Package where implements a cross-platform resolver for application-specific and generated-artifact paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/codecharm-icons/codecharm/constant"
	"github.com/codecharm-icons/codecharm/filesystem"
	"github.com/codecharm-icons/codecharm/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "CODECHARM_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// Direct override: The path resolution can be explicitly specified via the CODECHARM_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Codecharm))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Root resolves the directory every generated artifact is placed under.
func Root() string {
	root := viper.GetString(key.OutputRoot)
	if root == "" {
		return "."
	}
	return root
}

// underRoot joins a configured output path onto Root unless it is already absolute.
func underRoot(k string) string {
	p := viper.GetString(k)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(Root(), p)
}

// Icons resolves the directory holding the per-variant SVG icon sets.
func Icons() string {
	return underRoot(key.OutputIcons)
}

// Themes resolves the directory holding the per-variant editor theme manifests.
func Themes() string {
	return underRoot(key.OutputThemes)
}

// Packages resolves the directory the platform packagers write into.
func Packages() string {
	return underRoot(key.OutputPackages)
}

// Descriptor resolves the top-level package descriptor file.
func Descriptor() string {
	return underRoot(key.OutputDescriptor)
}
