// Package config provides Viper-based configuration loading for gearforge.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is the log sink: "stderr", "stdout" or a file path.
	Output string `mapstructure:"output"`
}

// ContentConfig locates the YAML content tables.
type ContentConfig struct {
	ArchetypesDir    string `mapstructure:"archetypes_dir"`
	FamiliesDir      string `mapstructure:"families_dir"`
	RulesFile        string `mapstructure:"rules_file"`
	CorePrefixesFile string `mapstructure:"core_prefixes_file"`
	CoreSuffixesFile string `mapstructure:"core_suffixes_file"`
}

// GeneratorConfig holds item and core generation settings.
type GeneratorConfig struct {
	// Seed fixes the random sequence. Zero selects the crypto/rand source.
	Seed uint64 `mapstructure:"seed"`
	// IDPrefix is prepended to generated record identifiers.
	IDPrefix string `mapstructure:"id_prefix"`
	// DefaultRarity is the tier rolled by loot commands that name none.
	DefaultRarity string `mapstructure:"default_rarity"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Content   ContentConfig   `mapstructure:"content"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGenerator(c.Generator); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
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

func validateContent(c ContentConfig) error {
	var errs []string
	for key, val := range map[string]string{
		"content.archetypes_dir":     c.ArchetypesDir,
		"content.families_dir":       c.FamiliesDir,
		"content.rules_file":         c.RulesFile,
		"content.core_prefixes_file": c.CorePrefixesFile,
		"content.core_suffixes_file": c.CoreSuffixesFile,
	} {
		if val == "" {
			errs = append(errs, key+" must not be empty")
		}
	}
	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGenerator(g GeneratorConfig) error {
	validRarities := map[string]bool{"mundane": true, "artisan": true, "rare": true, "legendary": true}
	if !validRarities[g.DefaultRarity] {
		return fmt.Errorf("generator.default_rarity must be one of [mundane, artisan, rare, legendary], got %q", g.DefaultRarity)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path loads defaults and
// environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with GEARFORGE_ prefix
	v.SetEnvPrefix("GEARFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("content.archetypes_dir", "content/archetypes")
	v.SetDefault("content.families_dir", "content/families")
	v.SetDefault("content.rules_file", "content/rules/equipment.yaml")
	v.SetDefault("content.core_prefixes_file", "content/cores/prefixes.yaml")
	v.SetDefault("content.core_suffixes_file", "content/cores/suffixes.yaml")

	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.id_prefix", "")
	v.SetDefault("generator.default_rarity", "mundane")
}
