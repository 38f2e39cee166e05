// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultDirName is the per-user configuration directory name.
const DefaultDirName = ".idlerc"

// Resolver locates the per-user configuration directory. The zero value
// uses the real environment and the default logger.
type Resolver struct {
	// Home returns the user's home directory. Defaults to os.UserHomeDir.
	Home func() (string, error)
	// Getwd returns the working directory. Defaults to os.Getwd.
	Getwd func() (string, error)
	// Logger receives fallback warnings. Defaults to log.Default().
	Logger *log.Logger
}

// UserConfigDir returns $HOME/name, creating it if needed.
// See Resolver.UserConfigDir.
func UserConfigDir(name string) string {
	return Resolver{}.UserConfigDir(name)
}

// UserConfigDir returns the directory that holds user configuration files:
// name inside the home directory. When no home directory can be resolved,
// or the resolved one does not exist, the current working directory is used
// instead and a warning is logged. The directory is created if missing;
// failure to create it is logged, not returned, because reads from a
// missing directory simply yield empty configuration.
func (r Resolver) UserConfigDir(name string) string {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	home := r.Home
	if home == nil {
		home = os.UserHomeDir
	}
	getwd := r.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}

	base, err := home()
	if err == nil && base != "" {
		if _, statErr := os.Stat(base); statErr != nil {
			logger.Warn("home directory does not exist", "path", base)
			base = ""
		}
	} else {
		base = ""
	}
	if base == "" {
		wd, err := getwd()
		if err != nil {
			wd = "."
		}
		logger.Warn("no usable home directory, using working directory", "path", wd)
		base = wd
	}

	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("unable to create user config directory", "path", dir, "err", err)
	}
	return dir
}
