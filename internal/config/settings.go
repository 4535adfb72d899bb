package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// PersonsSettings configuration for the person record store and name search.
type PersonsSettings struct {
	DataFile    string        `mapstructure:"data_file"`
	LockTimeout time.Duration `mapstructure:"lock_timeout"`
	MaxResults  int           `mapstructure:"max_results"`
}

// Settings application settings
type Settings struct {
	Transport string          `mapstructure:"transport"`
	Host      string          `mapstructure:"host"`
	Port      int             `mapstructure:"port"`
	Persons   PersonsSettings `mapstructure:"persons"`
}

// LoadSettings loads settings from environment variables and optional .env file
func LoadSettings() (*Settings, error) {
	return LoadSettingsWithFlags(nil)
}

// LoadSettingsWithFlags loads settings with optional CLI flag overrides.
// Priority: CLI flags > environment variables > .env file > defaults.
// If flags is nil, only env vars and defaults are used.
func LoadSettingsWithFlags(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	// Default values
	v.SetDefault("transport", "stdio")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)

	// Person store defaults
	v.SetDefault("persons.data_file", defaultDataFile())
	v.SetDefault("persons.lock_timeout", 5*time.Second)
	v.SetDefault("persons.max_results", 20)

	// Environment variables
	v.SetEnvPrefix("PERSONA_MCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific env vars for nested config
	_ = v.BindEnv("persons.data_file", "PERSONA_MCP_PERSONS_DATA_FILE")
	_ = v.BindEnv("persons.lock_timeout", "PERSONA_MCP_PERSONS_LOCK_TIMEOUT")
	_ = v.BindEnv("persons.max_results", "PERSONA_MCP_PERSONS_MAX_RESULTS")

	// Bind CLI flags if provided (highest priority)
	if flags != nil {
		_ = v.BindPFlag("transport", flags.Lookup("transport"))
		_ = v.BindPFlag("host", flags.Lookup("host"))
		_ = v.BindPFlag("port", flags.Lookup("port"))
		_ = v.BindPFlag("persons.data_file", flags.Lookup("data-file"))
		_ = v.BindPFlag("persons.lock_timeout", flags.Lookup("lock-timeout"))
		_ = v.BindPFlag("persons.max_results", flags.Lookup("max-results"))
	}

	// Helper to look for .env file
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if .env doesn't exist

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	// Expand home directory in the data file path
	settings.Persons.DataFile = expandHomeDir(settings.Persons.DataFile)

	return &settings, nil
}

// defaultDataFile returns the default path for the person data file
func defaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".persona-mcp", "persons.json")
	}
	return filepath.Join(home, ".persona-mcp", "persons.json")
}

// expandHomeDir expands ~ to the user's home directory
func expandHomeDir(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}

// ValidateSettings checks for invalid or conflicting configurations.
func ValidateSettings(s *Settings) error {
	// Validate transport type
	switch s.Transport {
	case "stdio", "sse":
		// valid
	default:
		return errors.New("transport must be 'stdio' or 'sse', got: " + s.Transport)
	}

	return validatePersonsSettings(&s.Persons)
}

// validatePersonsSettings validates the person store configuration
func validatePersonsSettings(p *PersonsSettings) error {
	if p.DataFile == "" {
		return errors.New("data-file cannot be empty")
	}

	if p.LockTimeout <= 0 {
		return errors.New("lock-timeout must be positive")
	}

	if p.MaxResults <= 0 {
		return errors.New("max-results must be positive")
	}

	return nil
}
