package api

import (
	"context"
	"time"
)

// AudioSample is a generated audio clip.
type AudioSample struct {
	ID               string         `json:"id"`
	PromptID         string         `json:"prompt_id"`
	AdapterID        *string        `json:"adapter_id"`
	DurationSeconds  float64        `json:"duration_seconds"`
	SampleRate       int            `json:"sample_rate"`
	GenerationParams map[string]any `json:"generation_params"`
	CreatedAt        time.Time      `json:"created_at"`
}

// GetAudio fetches audio sample metadata by ID.
func (c *Client) GetAudio(ctx context.Context, id string) (*AudioSample, error) {
	var sample AudioSample
	if err := c.get(ctx, "/audio/"+id, nil, &sample); err != nil {
		return nil, err
	}
	return &sample, nil
}

// AudioStreamURL returns the playback URL for a sample. The stream endpoint
// serves raw audio, so callers hand this to a player rather than the JSON
// client.
func (c *Client) AudioStreamURL(id string) string {
	return c.baseURL + "/audio/" + id + "/stream"
}

// CompareAudio fetches metadata for 2-10 samples side by side.
func (c *Client) CompareAudio(ctx context.Context, audioIDs []string) ([]AudioSample, error) {
	req := struct {
		AudioIDs []string `json:"audio_ids"`
	}{AudioIDs: audioIDs}
	var resp struct {
		Samples []AudioSample `json:"samples"`
	}
	if err := c.post(ctx, "/audio/compare", req, &resp); err != nil {
		return nil, err
	}
	return resp.Samples, nil
}
