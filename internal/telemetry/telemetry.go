// Package telemetry sends opt-in anonymous usage events. Disabled unless
// the user turns it on in settings; every call is a no-op when off.
package telemetry

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/posthog/posthog-go"

	"github.com/text2song/studio/internal/buildinfo"
	"github.com/text2song/studio/internal/config"
)

const apiKey = "phc_t2s_studio_public"

// Client wraps the analytics backend. A nil Client is safe to use.
type Client struct {
	ph         posthog.Client
	distinctID string
}

// New creates a telemetry client when enabled, nil otherwise.
func New(enabled bool) *Client {
	if !enabled {
		return nil
	}
	ph, err := posthog.NewWithConfig(apiKey, posthog.Config{
		Endpoint: "https://us.i.posthog.com",
	})
	if err != nil {
		return nil
	}
	return &Client{ph: ph, distinctID: distinctID()}
}

// distinctID loads or mints the persisted anonymous ID.
func distinctID() string {
	path, err := config.TelemetryIDFile()
	if err != nil {
		return uuid.NewString()
	}
	if data, err := os.ReadFile(path); err == nil {
		id := strings.TrimSpace(string(data))
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	id := uuid.NewString()
	if err := config.EnsureGlobalDir(); err == nil {
		_ = os.WriteFile(path, []byte(id+"\n"), 0600)
	}
	return id
}

// Capture records one event with optional properties.
func (c *Client) Capture(event string, props map[string]any) {
	if c == nil {
		return
	}
	properties := posthog.NewProperties().Set("version", buildinfo.Version)
	for k, v := range props {
		properties.Set(k, v)
	}
	_ = c.ph.Enqueue(posthog.Capture{
		DistinctId: c.distinctID,
		Event:      event,
		Properties: properties,
	})
}

// Close flushes pending events.
func (c *Client) Close() {
	if c == nil {
		return
	}
	_ = c.ph.Close()
}
