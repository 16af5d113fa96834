package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/omnicard/internal/logging"
	"github.com/iudanet/omnicard/internal/validation"
)

// Storage drivers
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

const (
	appName    = "omnicard"
	envPrefix  = "OMNICARD"
	configType = "yaml"
)

// Config is the effective application configuration
type Config struct {
	DB         string           `mapstructure:"db" yaml:"db"`
	Driver     string           `mapstructure:"driver" yaml:"driver"`
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Validation ValidationConfig `mapstructure:"validation" yaml:"validation"`
	Display    DisplayConfig    `mapstructure:"display" yaml:"display"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type ValidationConfig struct {
	NumberRule string `mapstructure:"number_rule" yaml:"number_rule"`
}

type DisplayConfig struct {
	MaskName bool `mapstructure:"mask_name" yaml:"mask_name"`
}

// Defaults returns the built-in values of every key
func Defaults() map[string]any {
	return map[string]any{
		"db":                     appName + ".db",
		"driver":                 DriverBolt,
		"log.level":              "warn",
		"log.format":             logging.FormatText,
		"validation.number_rule": string(validation.NumberRuleNonEmpty),
		"display.mask_name":      true,
	}
}

// flagKeys сопоставляет имена флагов cobra ключам конфигурации
var flagKeys = map[string]string{
	"db":          "db",
	"driver":      "driver",
	"log-level":   "log.level",
	"log-format":  "log.format",
	"number-rule": "validation.number_rule",
}

// DefaultPath returns the per-user config file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, appName, appName+".yaml"), nil
}

// Load merges defaults, the config file, OMNICARD_* env vars and the flags
// of cmd, in increasing order of precedence. An explicit configFile must exist.
func Load(cmd *cobra.Command, configFile string) (*Config, error) {
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType(configType)
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if path, err := DefaultPath(); err == nil {
			v.AddConfigPath(filepath.Dir(path))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if cmd != nil {
		flags := cmd.Flags()
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverBolt, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q (want %s or %s)", c.Driver, DriverBolt, DriverSQLite)
	}

	if _, err := validation.ParseNumberRule(c.Validation.NumberRule); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	if c.DB == "" {
		return errors.New("database path cannot be empty")
	}

	return nil
}

// NumberRule returns the parsed number rule. Call after Validate.
func (c *Config) NumberRule() validation.NumberRule {
	rule, _ := validation.ParseNumberRule(c.Validation.NumberRule)
	return rule
}

// Marshal renders c as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// WriteFile saves c to path, creating parent directories
func WriteFile(c *Config, path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
