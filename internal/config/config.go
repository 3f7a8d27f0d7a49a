// SPDX-License-Identifier: MPL-2.0

// Package config loads the optional respi configuration file. The file holds
// UI preferences only; the item table is always supplied on the command line
// and no environment variables are consulted.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "respi"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

type (
	// UIConfig holds presentation preferences for the query session.
	UIConfig struct {
		// Verbose enables debug logging (same as --verbose).
		Verbose bool `mapstructure:"verbose"`
		// Separator is placed between consecutive path elements.
		Separator string `mapstructure:"separator"`
		// Suggestions is the maximum number of "did you mean" entries shown
		// for an unresolved item name. Zero disables suggestions.
		Suggestions int `mapstructure:"suggestions"`
	}

	// Config is the full respi configuration.
	Config struct {
		UI UIConfig `mapstructure:"ui"`
	}
)

var (
	// configDirOverride lets tests redirect the config directory.
	configDirOverride string
	// configFilePathOverride is set by the --config flag.
	configFilePathOverride string
)

// SetConfigDirOverride redirects ConfigDir. Tests only.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride pins the config file to an explicit path
// (the --config flag). The file must exist.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Verbose:     false,
			Separator:   " -> ",
			Suggestions: 3,
		},
	}
}

// ConfigDir returns the respi configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the config file, if any, on top of the defaults. A missing file
// is not an error; a present-but-unreadable file is.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.separator", defaults.UI.Separator)
	v.SetDefault("ui.suggestions", defaults.UI.Suggestions)

	if configFilePathOverride != "" {
		// Explicit --config path: the file has to be there.
		if _, err := os.Stat(configFilePathOverride); err != nil {
			return nil, fmt.Errorf("failed to load configuration: %s: %w", configFilePathOverride, err)
		}
		v.SetConfigFile(configFilePathOverride)
		v.SetConfigType(ConfigFileExt)
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read configuration: %w", err)
		}
		// No config file: defaults apply.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}
