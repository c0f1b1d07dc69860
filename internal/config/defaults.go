package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultHTTPHost returns the default listen host.
func DefaultHTTPHost() string {
	return "127.0.0.1"
}

// DefaultHTTPPort returns the default HTTP port.
func DefaultHTTPPort() int {
	return 5000
}

// DefaultConfigPath returns the default path for the ttsd config directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "ttsd", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "ttsd")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "ttsd")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "ttsd")
		}
		return filepath.Join(home, ".config", "ttsd")
	}
}

// DefaultOutputPath returns the default path for the audio output directory.
func DefaultOutputPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "ttsd", "audio")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Local", "ttsd", "audio")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "ttsd", "audio")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "ttsd", "audio")
		}
		return filepath.Join(home, ".local", "share", "ttsd", "audio")
	}
}
