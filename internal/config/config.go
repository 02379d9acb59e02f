// Package config loads client settings from the environment, with
// optional .env file support.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultTimeout = 30 * time.Second

type Config struct {
	APIKey    string
	SecretKey string
	BaseURL   string
	Timeout   time.Duration
	LogLevel  logrus.Level
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:    os.Getenv("BEEM_API_KEY"),
		SecretKey: os.Getenv("BEEM_SECRET_KEY"),
		BaseURL:   os.Getenv("BEEM_BASE_URL"),
		Timeout:   defaultTimeout,
		LogLevel:  logrus.InfoLevel,
	}

	if v := os.Getenv("BEEM_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return nil, errors.Errorf("invalid BEEM_TIMEOUT_SECONDS: %q", v)
		}
		cfg.Timeout = time.Duration(seconds) * time.Second
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid LOG_LEVEL %q", v)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}
