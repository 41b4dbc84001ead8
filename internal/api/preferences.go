package api

import (
	"context"
	"net/url"
	"time"
)

// PreferencePair records that one audio was preferred over another for the
// same prompt. Chosen and rejected must differ.
type PreferencePair struct {
	ID              string    `json:"id"`
	PromptID        string    `json:"prompt_id"`
	ChosenAudioID   string    `json:"chosen_audio_id"`
	RejectedAudioID string    `json:"rejected_audio_id"`
	UserID          *string   `json:"user_id"`
	Margin          *float64  `json:"margin"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

// PreferencePairDetail adds display context to a pair.
type PreferencePairDetail struct {
	PreferencePair
	PromptText        *string `json:"prompt_text"`
	ChosenAudioPath   *string `json:"chosen_audio_path"`
	RejectedAudioPath *string `json:"rejected_audio_path"`
}

// PreferencePairCreate is the body for submitting a preference. Margin is
// 1 (slightly better) to 5 (much better).
type PreferencePairCreate struct {
	PromptID        string   `json:"prompt_id"`
	ChosenAudioID   string   `json:"chosen_audio_id"`
	RejectedAudioID string   `json:"rejected_audio_id"`
	Margin          *float64 `json:"margin,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// PreferencePairList is a page of preference pairs.
type PreferencePairList struct {
	Items []PreferencePair `json:"items"`
	Total int              `json:"total"`
}

// PreferencePairStats aggregates preference data.
type PreferencePairStats struct {
	TotalPairs    int                `json:"total_pairs"`
	UniquePrompts int                `json:"unique_prompts"`
	UniqueAudios  int                `json:"unique_audios"`
	AverageMargin *float64           `json:"average_margin"`
	AudioWinRates map[string]float64 `json:"audio_win_rates"`
}

// PreferenceListOptions filter the preference listing.
type PreferenceListOptions struct {
	PromptID string
	AudioID  string
	Page     int
	Limit    int
}

// CreatePreference submits a preference pair.
func (c *Client) CreatePreference(ctx context.Context, req PreferencePairCreate) (*PreferencePair, error) {
	var pair PreferencePair
	if err := c.post(ctx, "/preferences", req, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// ListPreferences returns a filtered page of preference pairs.
func (c *Client) ListPreferences(ctx context.Context, opts PreferenceListOptions) (*PreferencePairList, error) {
	q := url.Values{}
	setString(q, "prompt_id", opts.PromptID)
	setString(q, "audio_id", opts.AudioID)
	setInt(q, "page", opts.Page)
	setInt(q, "limit", opts.Limit)
	var list PreferencePairList
	if err := c.get(ctx, "/preferences", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetPreferenceStats fetches preference statistics.
func (c *Client) GetPreferenceStats(ctx context.Context) (*PreferencePairStats, error) {
	var stats PreferencePairStats
	if err := c.get(ctx, "/preferences/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetPreference fetches one pair with display details.
func (c *Client) GetPreference(ctx context.Context, id string) (*PreferencePairDetail, error) {
	var pair PreferencePairDetail
	if err := c.get(ctx, "/preferences/"+id, nil, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// DeletePreference removes a pair.
func (c *Client) DeletePreference(ctx context.Context, id string) error {
	return c.delete(ctx, "/preferences/"+id)
}
