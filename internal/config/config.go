package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const apiKeyEnv = "ALPHAVANTAGE_API_KEY"

var ErrMissingAPIKey = errors.New(apiKeyEnv + " is not set")

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port            string
	ShutdownTimeout time.Duration
	// Alpha Vantage
	AlphaVantageBaseURL string
	AlphaVantageAPIKey  string
	RequestTimeout      time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return def
	}
	return i
}

func durMS(key string, defMS int) time.Duration {
	return time.Duration(atoiDef(getEnv(key, strconv.Itoa(defMS)), defMS)) * time.Millisecond
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:                 getEnv("ENV", "local"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		Port:                getEnv("PORT", DefaultHTTPPort),
		ShutdownTimeout:     durMS("SHUTDOWN_TIMEOUT_MS", int(DefaultShutdownTimeout/time.Millisecond)),
		AlphaVantageBaseURL: getEnv("ALPHAVANTAGE_BASE_URL", DefaultAlphaVantageBaseURL),
		AlphaVantageAPIKey:  os.Getenv(apiKeyEnv),
		RequestTimeout:      durMS("REQUEST_TIMEOUT_MS", int(DefaultRequestTimeout/time.Millisecond)),
	}
}

// Validate checks the preconditions that must hold before any request is made.
func (c Config) Validate() error {
	if c.AlphaVantageAPIKey == "" {
		return fmt.Errorf("%w: get a free key at https://www.alphavantage.co/support/#api-key and set it in the environment or .env", ErrMissingAPIKey)
	}
	if c.AlphaVantageBaseURL == "" {
		return errors.New("ALPHAVANTAGE_BASE_URL is empty")
	}
	return nil
}
