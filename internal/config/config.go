// Package config loads app configuration from ~/.handla/config.yaml
// with HANDLA_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "handla"

	keyUser        = "user"
	keyDatabase    = "database"
	keySuggestions = "suggestions"
	keyLogFile     = "log_file"
)

// defaultConfigYAML is written on first run so the keys are
// discoverable.
const defaultConfigYAML = `# handla configuration
# Every key can be overridden with a HANDLA_* environment variable,
# e.g. HANDLA_USER.

# Email identifying you; created on first use.
user: ""

# Paths default to this directory when left empty.
# database:
# suggestions:
# log_file:
`

// Config is the resolved configuration.
type Config struct {
	// Dir is the config/data directory, ~/.handla by default.
	Dir string
	// User is the email identifying the local user.
	User string
	// Database is the SQLite file path.
	Database string
	// Suggestions is the suggestion corpus path.
	Suggestions string
	// LogFile receives structured logs (the terminal belongs to the
	// TUI).
	LogFile string
}

// Dir resolves the config directory: $HANDLA_DIR or ~/.handla.
func Dir() (string, error) {
	if env := strings.TrimSpace(os.Getenv("HANDLA_DIR")); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".handla"), nil
}

// Load reads config.yaml from dir, creating the directory and a
// default file on first run. A missing config file is not an error.
func Load(dir string) (*Config, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o600); err != nil {
			return nil, fmt.Errorf("write default config: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault(keyUser, "")
	v.SetDefault(keyDatabase, filepath.Join(dir, "handla.db"))
	v.SetDefault(keySuggestions, filepath.Join(dir, "suggestions.txt"))
	v.SetDefault(keyLogFile, filepath.Join(dir, "handla.log"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		Dir:         dir,
		User:        strings.TrimSpace(v.GetString(keyUser)),
		Database:    v.GetString(keyDatabase),
		Suggestions: v.GetString(keySuggestions),
		LogFile:     v.GetString(keyLogFile),
	}, nil
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c.User == "" {
		return fmt.Errorf("no user configured: set `user` in %s or HANDLA_USER",
			filepath.Join(c.Dir, "config.yaml"))
	}
	if !strings.Contains(c.User, "@") {
		return fmt.Errorf("user %q does not look like an email", c.User)
	}
	return nil
}
