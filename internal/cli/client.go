package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/text2song/studio/internal/api"
	"github.com/text2song/studio/internal/config"
	"github.com/text2song/studio/internal/models"
)

// newAPIClient builds an API client from the saved settings.
func newAPIClient() (*api.Client, *models.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return api.NewClient(config.APIConfig(settings)), settings, nil
}

// validateID rejects malformed IDs before they hit the network.
func validateID(kind, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid %s ID: %s", kind, id)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func floatOrDash(f *float64, format string) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf(format, *f)
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// printField renders one "Label: value" line with aligned labels.
func printField(label, value string) {
	fmt.Printf("  %s %s\n", styleLabel.Render(fmt.Sprintf("%-14s", label+":")), styleValue.Render(value))
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
