package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fivetwenty-io/dwolla-client/internal/constants"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration persisted to
// ~/.dwolla/config.yml. Token and TokenExpiry cache the last minted
// access token so invocations within the hour reuse it.
type Config struct {
	Environment string     `json:"environment,omitempty"  yaml:"environment,omitempty"`
	BaseURL     string     `json:"base_url,omitempty"     yaml:"base_url,omitempty"`
	Key         string     `json:"key,omitempty"          yaml:"key,omitempty"`
	Secret      string     `json:"secret,omitempty"       yaml:"secret,omitempty"`
	Token       string     `json:"token,omitempty"        yaml:"token,omitempty"`
	TokenExpiry *time.Time `json:"token_expiry,omitempty" yaml:"token_expiry,omitempty"`
	Output      string     `json:"output,omitempty"       yaml:"output,omitempty"`
	NoColor     bool       `json:"no_color,omitempty"     yaml:"no_color,omitempty"`
}

// loadConfig builds the configuration from viper's merged view of the
// config file, environment variables, and flags.
func loadConfig() *Config {
	config := &Config{
		Environment: viper.GetString("environment"),
		BaseURL:     viper.GetString("base_url"),
		Key:         viper.GetString("key"),
		Secret:      viper.GetString("secret"),
		Token:       viper.GetString("token"),
		Output:      viper.GetString("output"),
		NoColor:     viper.GetBool("no-color"),
	}

	if expiry := viper.GetTime("token_expiry"); !expiry.IsZero() {
		config.TokenExpiry = &expiry
	}

	return config
}

// saveConfigStruct writes the configuration to the active config file,
// defaulting to ~/.dwolla/config.yml. The file is created with
// owner-only permissions because it carries credentials.
func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".dwolla")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
