package api

import (
	"context"
	"errors"
	"net/url"
	"time"
)

// Feedback is the combined feedback record: exactly one of rating,
// preference, or tags is set per record.
type Feedback struct {
	ID              string    `json:"id"`
	AudioID         string    `json:"audio_id"`
	UserID          *string   `json:"user_id"`
	Rating          *float64  `json:"rating"`
	RatingCriterion *string   `json:"rating_criterion"`
	PreferredOver   *string   `json:"preferred_over"`
	Tags            []string  `json:"tags"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

// FeedbackList is a page of feedback records.
type FeedbackList struct {
	Items []Feedback `json:"items"`
	Total int        `json:"total"`
}

// FeedbackStats aggregates feedback for a sample or adapter.
type FeedbackStats struct {
	AudioID          *string          `json:"audio_id"`
	AdapterID        *string          `json:"adapter_id"`
	AverageRating    *float64         `json:"average_rating"`
	RatingCount      int              `json:"rating_count"`
	PreferenceWins   int              `json:"preference_wins"`
	PreferenceLosses int              `json:"preference_losses"`
	WinRate          *float64         `json:"win_rate"`
	CommonTags       []map[string]any `json:"common_tags"`
}

// FeedbackSummary is the dashboard-level feedback overview.
type FeedbackSummary struct {
	TotalFeedback      int            `json:"total_feedback"`
	TotalRatings       int            `json:"total_ratings"`
	TotalPreferences   int            `json:"total_preferences"`
	RatingDistribution map[string]int `json:"rating_distribution"`
	HighRatedSamples   int            `json:"high_rated_samples"`
}

// FeedbackInput is the tagged union behind the combined feedback endpoint.
// Exactly one variant (Rating, Preference, Tags) must be non-nil.
type FeedbackInput struct {
	AudioID    string
	Notes      string
	Rating     *RatingFeedback
	Preference *PreferenceFeedback
	Tags       []string
}

// RatingFeedback is the rating variant: 1-5 on a named criterion.
type RatingFeedback struct {
	Value     float64
	Criterion string
}

// PreferenceFeedback is the pairwise variant: this sample beat PreferredOver.
type PreferenceFeedback struct {
	PreferredOver string
}

// ErrFeedbackVariant is returned when the input does not carry exactly one
// feedback variant.
var ErrFeedbackVariant = errors.New("feedback must carry exactly one of rating, preference, or tags")

// body flattens the union into the wire shape the backend validates.
func (in FeedbackInput) body() (map[string]any, error) {
	variants := 0
	body := map[string]any{"audio_id": in.AudioID}
	if in.Notes != "" {
		body["notes"] = in.Notes
	}
	if in.Rating != nil {
		variants++
		body["rating"] = in.Rating.Value
		criterion := in.Rating.Criterion
		if criterion == "" {
			criterion = "overall"
		}
		body["rating_criterion"] = criterion
	}
	if in.Preference != nil {
		variants++
		body["preferred_over"] = in.Preference.PreferredOver
	}
	if len(in.Tags) > 0 {
		variants++
		body["tags"] = in.Tags
	}
	if variants != 1 {
		return nil, ErrFeedbackVariant
	}
	return body, nil
}

// CreateFeedback submits one feedback record shaped by the input variant.
func (c *Client) CreateFeedback(ctx context.Context, in FeedbackInput) (*Feedback, error) {
	body, err := in.body()
	if err != nil {
		return nil, err
	}
	var fb Feedback
	if err := c.post(ctx, "/feedback", body, &fb); err != nil {
		return nil, err
	}
	return &fb, nil
}

// ListFeedback returns a page of feedback, optionally scoped to one sample.
func (c *Client) ListFeedback(ctx context.Context, audioID string, page, limit int) (*FeedbackList, error) {
	q := url.Values{}
	setString(q, "audio_id", audioID)
	setInt(q, "page", page)
	setInt(q, "limit", limit)
	var list FeedbackList
	if err := c.get(ctx, "/feedback", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetFeedbackStats fetches feedback statistics for a sample or adapter.
func (c *Client) GetFeedbackStats(ctx context.Context, audioID, adapterID string) (*FeedbackStats, error) {
	q := url.Values{}
	setString(q, "audio_id", audioID)
	setString(q, "adapter_id", adapterID)
	var stats FeedbackStats
	if err := c.get(ctx, "/feedback/stats", q, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetFeedbackSummary fetches the dashboard feedback overview.
func (c *Client) GetFeedbackSummary(ctx context.Context) (*FeedbackSummary, error) {
	var summary FeedbackSummary
	if err := c.get(ctx, "/feedback/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
