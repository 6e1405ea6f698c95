// Package appdir resolves per-user directories for an application by
// category (config, cache, data), creating them on first use.
package appdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyApp is returned when the app name is blank.
var ErrEmptyApp = errors.New("appdir: app name required")

// Config returns the per-user configuration directory for app,
// creating it if needed.
func Config(app string) (string, error) {
	return ensure(os.UserConfigDir, app)
}

// Cache returns the per-user cache directory for app, creating it if needed.
func Cache(app string) (string, error) {
	return ensure(os.UserCacheDir, app)
}

// Data returns the per-user data directory for app, creating it if needed.
// Honors XDG_DATA_HOME and falls back to ~/.local/share.
func Data(app string) (string, error) {
	if app == "" {
		return "", ErrEmptyApp
	}

	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return mkdir(filepath.Join(dir, app))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("appdir: %w", err)
	}
	return mkdir(filepath.Join(home, ".local", "share", app))
}

func ensure(base func() (string, error), app string) (string, error) {
	if app == "" {
		return "", ErrEmptyApp
	}

	dir, err := base()
	if err != nil {
		return "", fmt.Errorf("appdir: %w", err)
	}
	return mkdir(filepath.Join(dir, app))
}

func mkdir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("appdir: create %q: %w", dir, err)
	}
	return dir, nil
}
