// Package config manages YAML-based configuration and CLI flags.
package config

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the shell
type Config struct {
	// Prompt is printed before each command when input is a terminal
	Prompt string `yaml:"prompt"`

	// Quiet suppresses the prompt even on a terminal
	Quiet bool `yaml:"quiet"`

	// Internal: path to config file for saving
	configPath string
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Prompt: "$ ",
	}
}

// GetConfigDir returns the config directory path
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/core-utils"
	}
	return filepath.Join(home, ".config", "core-utils")
}

// GetConfigPath returns the full path to the config file
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// Load loads configuration from file and command line flags
func Load() (*Config, error) {
	cfg := DefaultConfig()

	prompt := flag.String("prompt", "", "Prompt shown before each command")
	quiet := flag.Bool("q", false, "Never print a prompt")
	configFile := flag.String("config", "", "Configuration file path")

	flag.Parse()

	// Determine config file path
	var cfgPath string
	if *configFile != "" {
		cfgPath = *configFile
	} else {
		// Try ~/.config/core-utils/config.yaml first
		globalConfig := GetConfigPath()
		if _, err := os.Stat(globalConfig); err == nil {
			cfgPath = globalConfig
		} else {
			// Fall back to local core-utils.yaml
			if _, err := os.Stat("core-utils.yaml"); err == nil {
				cfgPath = "core-utils.yaml"
			}
		}
	}

	// Load from config file if found
	if cfgPath != "" {
		if err := cfg.loadFromFile(cfgPath); err != nil && *configFile != "" {
			// Only return error if user explicitly specified config file
			return nil, err
		}
		cfg.configPath = cfgPath
	} else {
		// Set default config path for saving
		cfg.configPath = GetConfigPath()
	}

	// Command line flags override config file (only if explicitly set)
	if *prompt != "" {
		cfg.Prompt = *prompt
	}
	if *quiet {
		cfg.Quiet = true
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Save saves the current configuration to the config file
func (c *Config) Save() error {
	// Ensure config directory exists
	configDir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	// Create a copy without internal fields for saving
	saveConfig := struct {
		Prompt string `yaml:"prompt"`
		Quiet  bool   `yaml:"quiet"`
	}{
		Prompt: c.Prompt,
		Quiet:  c.Quiet,
	}

	data, err := yaml.Marshal(saveConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(c.configPath, data, 0644)
}

// GetConfigFilePath returns the path to the config file
func (c *Config) GetConfigFilePath() string {
	return c.configPath
}
