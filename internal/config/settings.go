package config

import (
	"os"
	"time"

	"github.com/text2song/studio/internal/api"
	"github.com/text2song/studio/internal/models"
)

// EnvAPIURL overrides the configured backend URL when set.
const EnvAPIURL = "T2S_API_URL"

// LoadSettings loads the global settings from ~/.t2s-studio/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.t2s-studio/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// APIConfig resolves the backend client config from settings. The
// T2S_API_URL environment variable wins over the file; resolution happens
// here once so the rest of the program receives an explicit config.
func APIConfig(settings *models.Settings) api.Config {
	cfg := api.DefaultConfig()
	if settings.Backend.APIURL != "" {
		cfg.BaseURL = settings.Backend.APIURL
	}
	if settings.Backend.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(settings.Backend.TimeoutSeconds) * time.Second
	}
	if env := os.Getenv(EnvAPIURL); env != "" {
		cfg.BaseURL = env
	}
	return cfg
}
