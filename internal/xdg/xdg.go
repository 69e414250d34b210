// Package xdg resolves XDG Base Directory paths for boxoffice.
// Configuration lives under the config home, while durable session data
// (the file-backed key-value store) lives under the state home. Both fall
// back to the traditional locations when the XDG variables are unset.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under every XDG base directory.
const AppName = "boxoffice"

// ConfigDir returns the XDG config directory for boxoffice.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/boxoffice when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return resolve("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for boxoffice.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/boxoffice when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return resolve("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func resolve(env, homeRel string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, homeRel)
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
