// Package config resolves prodcat settings from Viper-backed
// configuration: flags, environment variables, and the optional
// ~/.prodcat.yaml config file.
package config

import (
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/shopfolk/prodcat/pkg/catalog"
	"github.com/shopfolk/prodcat/pkg/errors"
)

// Configuration keys.
const (
	KeyBaseURL  = "base_url"
	KeyPageSize = "page_size"
	KeyTimeout  = "timeout"
)

// Defaults.
const (
	DefaultBaseURL = "http://localhost:3000"
	DefaultTimeout = 30 * time.Second
)

// Settings holds the resolved configuration.
type Settings struct {
	BaseURL  string
	PageSize int
	Timeout  time.Duration
}

// SetDefaults registers default values with Viper. Call once before
// reading configuration.
func SetDefaults() {
	viper.SetDefault(KeyBaseURL, DefaultBaseURL)
	viper.SetDefault(KeyPageSize, catalog.DefaultPageSize)
	viper.SetDefault(KeyTimeout, DefaultTimeout)
}

// Load resolves settings from Viper and validates them.
func Load() (Settings, error) {
	s := Settings{
		BaseURL:  viper.GetString(KeyBaseURL),
		PageSize: viper.GetInt(KeyPageSize),
		Timeout:  viper.GetDuration(KeyTimeout),
	}

	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if s.PageSize < 1 {
		return Settings{}, errors.NewValidationError(KeyPageSize, s.PageSize, "must be a positive integer")
	}
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeout
	}
	return s, nil
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}
