// Config loading for the casetrack CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyFixturesDir  = "fixtures_dir"
	cfgKeyLatencyScale = "latency_scale"
	cfgKeyUserID       = "user.id"
	cfgKeyUserName     = "user.name"
	cfgKeyUserRole     = "user.role"
	cfgKeyUserAvatar   = "user.avatar"
)

// defaultConfigYAML is the content written to config.yaml on first run. The
// default user matches the seed fixtures, so feedback threads work out of
// the box.
const defaultConfigYAML = `# Casetrack CLI configuration

# Seed fixtures directory (optional; overridable by --fixtures-dir flag).
# When unset, the embedded default fixtures are used.
# fixtures_dir:

# Simulated latency scale: 0 disables artificial delays, 1.0 applies the
# full per-operation delays.
latency_scale: 0

# Acting user, attributed to new feedback.
user:
  id: 1
  name: Dr. Sarah Johnson
  role: supervisor
  avatar: SJ
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLatencyScale, 0.0)
	v.SetDefault(cfgKeyUserID, 1)
	v.SetDefault(cfgKeyUserName, "Dr. Sarah Johnson")
	v.SetDefault(cfgKeyUserRole, "supervisor")
	v.SetDefault(cfgKeyUserAvatar, "SJ")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
