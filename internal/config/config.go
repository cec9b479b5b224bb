package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvLogLevel  = "CSV2TXF_LOG_LEVEL"
	EnvLogFormat = "CSV2TXF_LOG_FORMAT"
	EnvBroker    = "CSV2TXF_BROKER"
)

// Config holds settings that apply to every subcommand. Flags override them.
type Config struct {
	LogLevel  string
	LogFormat string // console or json
	Broker    string // default broker name, empty to auto-detect
}

// Load reads an optional .env file and the process environment.
// A missing .env file is not an error.
func Load(envFiles ...string) *Config {
	// godotenv never overrides variables already set in the environment
	_ = godotenv.Load(envFiles...)

	return &Config{
		LogLevel:  getEnv(EnvLogLevel, "info"),
		LogFormat: getEnv(EnvLogFormat, "console"),
		Broker:    getEnv(EnvBroker, ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
