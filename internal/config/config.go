// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	Review   ReviewConfig   `mapstructure:"review"`
	Exports  ExportsConfig  `mapstructure:"exports"`
	Database DatabaseConfig `mapstructure:"database"`
	Fetch    FetchConfig    `mapstructure:"fetch"`
}

type StorageConfig struct {
	// Directory the deck store keeps its JSON files in.
	DataDirectory string `mapstructure:"data_directory" validate:"required"`
}

type ReviewConfig struct {
	// Maximum cards per review session; 0 means no limit.
	SessionLimit int `mapstructure:"session_limit" validate:"gte=0"`
}

type ExportsConfig struct {
	// Directory PDF exports are written to when no explicit output
	// path is given.
	Directory string `mapstructure:"directory" validate:"required"`
}

// DatabaseConfig configures the optional MySQL review-history backend.
// The feature is off while Host is empty.
type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"gte=0,lte=65535"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	Database        string            `mapstructure:"database"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

// Enabled reports whether review history should be recorded.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

type FetchConfig struct {
	// Timeout in seconds for downloading remote documents.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=0"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/cornell")
	}

	v.SetDefault("storage.data_directory", filepath.Join("data", "decks"))
	v.SetDefault("exports.directory", filepath.Join("data", "exports"))
	v.SetDefault("review.session_limit", 0)
	v.SetDefault("database.port", 3306)
	v.SetDefault("fetch.timeout_seconds", 30)

	// The database password never lives in the config file.
	if err := v.BindEnv("database.password", "CORNELL_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind CORNELL_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
