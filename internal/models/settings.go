// Package models holds the locally persisted data types.
package models

import "time"

// BackendConfig holds how the client reaches the Text2Song backend.
type BackendConfig struct {
	APIURL         string `yaml:"api_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// GenerationDefaults holds default parameters for new generation jobs.
type GenerationDefaults struct {
	NumSamples  int     `yaml:"num_samples"`
	Temperature float64 `yaml:"temperature"`
	TopK        int     `yaml:"top_k"`
	Duration    int     `yaml:"duration"`
}

// UpdatesConfig holds settings for update checking.
type UpdatesConfig struct {
	CheckOnStartup bool       `yaml:"check_on_startup"`
	CheckFrequency string     `yaml:"check_frequency"` // "every_launch" | "daily" | "weekly"
	LastChecked    *time.Time `yaml:"last_checked,omitempty"`
}

// TelemetryConfig holds the opt-in usage analytics settings.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Settings represents global application settings.
// This corresponds to ~/.t2s-studio/settings.yaml.
type Settings struct {
	Version    int                `yaml:"version"`
	Backend    BackendConfig      `yaml:"backend"`
	Generation GenerationDefaults `yaml:"generation"`
	Updates    UpdatesConfig      `yaml:"updates"`
	Telemetry  TelemetryConfig    `yaml:"telemetry"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Backend: BackendConfig{
			APIURL:         "http://localhost:8000",
			TimeoutSeconds: 30,
		},
		Generation: GenerationDefaults{
			NumSamples:  1,
			Temperature: 1.0,
			TopK:        250,
			Duration:    10,
		},
		Updates: UpdatesConfig{
			CheckOnStartup: true,
			CheckFrequency: "every_launch",
			LastChecked:    nil,
		},
		Telemetry: TelemetryConfig{
			Enabled: false,
		},
	}
}
