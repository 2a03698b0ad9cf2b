// Package config provides Viper-backed configuration helpers for the
// fleetsync CLI. Values come from flags, the config file, and the
// environment, in that order of precedence.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// Keys used across the CLI.
const (
	KeyCatalogDir = "catalog_dir"
	KeyAPIBaseURL = "api_base_url"
	KeyAPIKey     = "FLEETSYNC_API_KEY"
)

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

// CatalogDir returns the directory holding persisted catalog documents.
func CatalogDir() string {
	if dir := GetString(KeyCatalogDir); dir != "" {
		return dir
	}
	return "catalogs"
}

// APIKey returns the fleet API key, empty when unconfigured.
func APIKey() string {
	return GetString(KeyAPIKey)
}
