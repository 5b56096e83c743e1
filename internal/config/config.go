package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		// Path to the sqlite file holding scan history.
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	// Scan holds the default scan options; flags override per invocation.
	Scan struct {
		AnalyzeContent bool `mapstructure:"analyze_content"`
		ExcludeHidden  bool `mapstructure:"exclude_hidden"`
	} `mapstructure:"scan"`
}

// LoadConfig reads filescope.yaml from the working directory or
// ~/.config/filescope, layered under environment variables. A missing
// config file is fine; defaults cover everything.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("filescope")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "filescope"))
	}

	viper.SetDefault("database.path", "filescope.db")
	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("scan.analyze_content", false)
	viper.SetDefault("scan.exclude_hidden", true)

	viper.AutomaticEnv()
	// Allow overriding the history location without a config file.
	viper.BindEnv("database.path", "FILESCOPE_DB_PATH")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed on defaults and env vars.
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := Validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
