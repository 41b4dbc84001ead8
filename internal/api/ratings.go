package api

import (
	"context"
	"net/url"
	"time"
)

// QualityRating scores one audio sample 1-5 on a criterion (overall, melody,
// rhythm, harmony, coherence, creativity).
type QualityRating struct {
	ID        string    `json:"id"`
	AudioID   string    `json:"audio_id"`
	UserID    *string   `json:"user_id"`
	Rating    float64   `json:"rating"`
	Criterion string    `json:"criterion"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// QualityRatingCreate is the body for submitting a rating.
type QualityRatingCreate struct {
	AudioID   string  `json:"audio_id"`
	Rating    float64 `json:"rating"`
	Criterion string  `json:"criterion,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// QualityRatingList is a page of ratings.
type QualityRatingList struct {
	Items []QualityRating `json:"items"`
	Total int             `json:"total"`
}

// QualityRatingStats aggregates ratings, optionally scoped to one sample.
type QualityRatingStats struct {
	AudioID            *string            `json:"audio_id"`
	TotalRatings       int                `json:"total_ratings"`
	AverageRating      *float64           `json:"average_rating"`
	RatingByCriterion  map[string]float64 `json:"rating_by_criterion"`
	RatingDistribution map[string]int     `json:"rating_distribution"`
}

// RatingListOptions filter the ratings listing.
type RatingListOptions struct {
	AudioID   string
	Criterion string
	MinRating *float64
	Page      int
	Limit     int
}

// CreateRating submits a quality rating.
func (c *Client) CreateRating(ctx context.Context, req QualityRatingCreate) (*QualityRating, error) {
	var rating QualityRating
	if err := c.post(ctx, "/ratings", req, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListRatings returns a filtered page of ratings.
func (c *Client) ListRatings(ctx context.Context, opts RatingListOptions) (*QualityRatingList, error) {
	q := url.Values{}
	setString(q, "audio_id", opts.AudioID)
	setString(q, "criterion", opts.Criterion)
	setFloatPtr(q, "min_rating", opts.MinRating)
	setInt(q, "page", opts.Page)
	setInt(q, "limit", opts.Limit)
	var list QualityRatingList
	if err := c.get(ctx, "/ratings", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetRatingStats fetches rating statistics, scoped to one sample when
// audioID is non-empty.
func (c *Client) GetRatingStats(ctx context.Context, audioID string) (*QualityRatingStats, error) {
	q := url.Values{}
	setString(q, "audio_id", audioID)
	var stats QualityRatingStats
	if err := c.get(ctx, "/ratings/stats", q, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// DeleteRating removes a rating.
func (c *Client) DeleteRating(ctx context.Context, id string) error {
	return c.delete(ctx, "/ratings/"+id)
}
