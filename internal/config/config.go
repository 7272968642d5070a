// Package config loads mathscope's runtime configuration. Priority, highest
// first: CLI flags (bound to viper by the command layer), environment
// variables, a local .env file, defaults.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"mathscope/internal/logger"
)

// Config carries the resolved settings the application starts with.
type Config struct {
	LogLevel  string
	LogFile   string
	RulesPath string
	TestMode  bool
}

// Load resolves the configuration. A .env file in the working directory is
// loaded when present; a missing file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.Debug("Skipping .env file", "error", err)
		}
	}

	viper.SetEnvPrefix("MATHSCOPE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("log-level", "info")
	viper.SetDefault("log-file", "")
	viper.SetDefault("rules", "")
	viper.SetDefault("test-mode", false)

	return &Config{
		LogLevel:  viper.GetString("log-level"),
		LogFile:   viper.GetString("log-file"),
		RulesPath: viper.GetString("rules"),
		TestMode:  viper.GetBool("test-mode"),
	}, nil
}
