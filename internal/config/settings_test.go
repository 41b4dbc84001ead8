package config

import (
	"testing"
	"time"

	"github.com/text2song/studio/internal/models"
)

func TestAPIConfigDefaults(t *testing.T) {
	t.Setenv(EnvAPIURL, "")

	cfg := APIConfig(models.NewSettings())
	if cfg.BaseURL != "http://localhost:8000" {
		t.Errorf("base URL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
}

func TestAPIConfigEnvOverride(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://gpu-box:9000")

	settings := models.NewSettings()
	settings.Backend.APIURL = "http://from-file:8000"
	cfg := APIConfig(settings)
	if cfg.BaseURL != "http://gpu-box:9000" {
		t.Errorf("env override lost, base URL = %q", cfg.BaseURL)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings := models.NewSettings()
	settings.Backend.APIURL = "http://example:8000"
	settings.Telemetry.Enabled = true
	if err := SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	loaded, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if loaded.Backend.APIURL != "http://example:8000" {
		t.Errorf("api url = %q", loaded.Backend.APIURL)
	}
	if !loaded.Telemetry.Enabled {
		t.Error("telemetry flag lost")
	}
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.Backend.APIURL != "http://localhost:8000" {
		t.Errorf("default api url = %q", settings.Backend.APIURL)
	}
}
