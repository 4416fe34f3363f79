package cli

import (
	"os"
	"path/filepath"
)

// Paths provides access to the per-app directory layout.
type Paths struct {
	// AppName is the application name
	AppName string

	// BaseDir is the parent of the app directory, os.UserConfigDir()
	// unless overridden.
	BaseDir string
}

// NewPaths creates a new Paths instance for the given app
func NewPaths(appName string) (*Paths, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return PathsAt(appName, base), nil
}

// PathsAt roots the app directory under base.
func PathsAt(appName, base string) *Paths {
	return &Paths{AppName: appName, BaseDir: base}
}

// AppDir returns the app directory (<base>/<app>)
func (p *Paths) AppDir() string {
	return filepath.Join(p.BaseDir, p.AppName)
}

// ConfigFile returns the config file path (<base>/<app>/config.yaml)
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.AppDir(), DefaultConfigFile)
}

// CompositionsDir returns the default user compositions directory
// (<base>/<app>/compositions)
func (p *Paths) CompositionsDir() string {
	return filepath.Join(p.AppDir(), "compositions")
}

// EnsureAppDir creates the app directory if it doesn't exist
func (p *Paths) EnsureAppDir() error {
	return os.MkdirAll(p.AppDir(), 0755)
}
