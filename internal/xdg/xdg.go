// ABOUTME: XDG Base Directory support for locating jrpc config files
// ABOUTME: Respects XDG_CONFIG_HOME with a HOME fallback chain

package xdg

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigHome returns ~/.config/jrpc or respects XDG_CONFIG_HOME.
func ConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "jrpc")
	}
	return filepath.Join(getHome(), ".config", "jrpc")
}

// ExpandPath expands a leading ~ or $XDG_CONFIG_HOME in config paths.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(getHome(), path[2:])
	}
	if strings.HasPrefix(path, "$XDG_CONFIG_HOME") {
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig == "" {
			xdgConfig = filepath.Join(getHome(), ".config")
		}
		return strings.Replace(path, "$XDG_CONFIG_HOME", xdgConfig, 1)
	}
	return path
}

// getHome returns HOME with a working-directory fallback.
func getHome() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
