// Package config provides Viper-based configuration loading for the inventory tools.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is where log lines go: "stderr", "stdout" or a file path.
	Output string `mapstructure:"output"`
}

// GridConfig holds the dimensions of one inventory grid.
type GridConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// InventoryConfig holds the sizes of the containers a character starts with.
type InventoryConfig struct {
	// Backpack is the character's carried grid.
	Backpack GridConfig `mapstructure:"backpack"`
	// Stash is the secondary container (chest, stash) used for cross-grid transfers.
	Stash GridConfig `mapstructure:"stash"`
}

// ContentConfig holds content directory locations.
type ContentConfig struct {
	// ItemsDir is the directory of item definition YAML files.
	ItemsDir string `mapstructure:"items_dir"`
	// StartingItems is an optional YAML file of items placed into the backpack at start.
	StartingItems string `mapstructure:"starting_items"`
}

// ScriptingConfig holds Lua scenario runner settings.
type ScriptingConfig struct {
	// InstructionLimit is the maximum number of Lua opcodes per script; 0 uses the default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Content   ContentConfig   `mapstructure:"content"`
	Scripting ScriptingConfig `mapstructure:"scripting"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGrid("inventory.backpack", c.Inventory.Backpack); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGrid("inventory.stash", c.Inventory.Stash); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Content.ItemsDir == "" {
		errs = append(errs, "content.items_dir must not be empty")
	}
	if c.Scripting.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("scripting.instruction_limit must be >= 0, got %d", c.Scripting.InstructionLimit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGrid(key string, g GridConfig) error {
	var errs []string
	if g.Width < 1 {
		errs = append(errs, fmt.Sprintf("%s.width must be >= 1, got %d", key, g.Width))
	}
	if g.Height < 1 {
		errs = append(errs, fmt.Sprintf("%s.height must be >= 1, got %d", key, g.Height))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return fmt.Errorf("logging.output must not be empty")
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with MEDIEVAL_ prefix
	v.SetEnvPrefix("MEDIEVAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance holding only the default settings.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("inventory.backpack.width", 10)
	v.SetDefault("inventory.backpack.height", 6)
	v.SetDefault("inventory.stash.width", 12)
	v.SetDefault("inventory.stash.height", 8)

	v.SetDefault("content.items_dir", "content/items")
	v.SetDefault("content.starting_items", "")

	v.SetDefault("scripting.instruction_limit", 100000)
}
