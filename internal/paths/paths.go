// Package paths resolves the configuration and fixtures directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir   = "CASETRACK_CONFIG_DIR"
	EnvFixturesDir = "CASETRACK_FIXTURES_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/casetrack (fallback ~/.config/casetrack)
// macOS:   ~/Library/Application Support/casetrack
// Windows: %APPDATA%/casetrack
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "casetrack"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "casetrack"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "casetrack"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > CASETRACK_CONFIG_DIR env > DefaultConfigDir().
//
// If flag is non-empty it wins. Otherwise the CASETRACK_CONFIG_DIR environment
// variable is checked. If neither is set, the platform default is returned.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveFixturesDir returns the seed fixtures directory following the
// precedence chain: flag > configYAMLValue > CASETRACK_FIXTURES_DIR env.
//
// An empty result is valid and means no directory override is active; the
// store then seeds from its embedded default fixtures.
func ResolveFixturesDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvFixturesDir); env != "" {
		return filepath.Abs(env)
	}
	return "", nil
}
