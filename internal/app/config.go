// Package app provides application-level configuration.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nagbox/nagbox/pkg/utils"
)

// DefaultTerminal is the terminal emulator command line used when no config
// file overrides it. i3-sensible-terminal dispatches to whatever emulator
// the user actually has installed.
const DefaultTerminal = "i3-sensible-terminal -v -e"

// Config holds the application configuration.
type Config struct {
	// Terminal is the terminal emulator command line. The link path of a
	// terminal-strategy action is appended as the final argument.
	Terminal string `toml:"terminal"`
	// Notify configures failure notifications.
	Notify NotifyConfig `toml:"notify"`
}

// NotifyConfig controls desktop notifications.
type NotifyConfig struct {
	// Desktop enables a desktop notification when launching an action fails.
	Desktop bool `toml:"desktop"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Terminal: DefaultTerminal,
		Notify:   NotifyConfig{Desktop: true},
	}
}

// ConfigDir returns the nagbox configuration directory.
func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "nagbox"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, "config.toml")
}

// LoadConfig loads the configuration from disk. A missing file yields the
// defaults; a malformed file is an error.
func LoadConfig(configDir string) (*Config, error) {
	path := ConfigPath(configDir)

	config := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return config, nil
}

// TerminalArgv splits the configured terminal command line into an argv
// slice, honoring quotes.
func (c *Config) TerminalArgv() ([]string, error) {
	argv, err := utils.SplitCommandLine(c.Terminal)
	if err != nil {
		return nil, fmt.Errorf("invalid terminal setting %q: %w", c.Terminal, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("terminal setting is empty")
	}
	return argv, nil
}
