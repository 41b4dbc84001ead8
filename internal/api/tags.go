package api

import (
	"context"
	"net/url"
	"time"
)

// AudioTag labels a sample with a positive or negative attribute
// (good_melody, noisy, and so on).
type AudioTag struct {
	ID         string    `json:"id"`
	AudioID    string    `json:"audio_id"`
	UserID     *string   `json:"user_id"`
	Tag        string    `json:"tag"`
	IsPositive bool      `json:"is_positive"`
	CreatedAt  time.Time `json:"created_at"`
}

// AudioTagCreate is the body for tagging a sample.
type AudioTagCreate struct {
	AudioID    string `json:"audio_id"`
	Tag        string `json:"tag"`
	IsPositive bool   `json:"is_positive"`
}

// AudioTagList is a page of tags.
type AudioTagList struct {
	Items []AudioTag `json:"items"`
	Total int        `json:"total"`
}

// AvailableTags are the suggested tag vocabularies.
type AvailableTags struct {
	PositiveTags []string `json:"positive_tags"`
	NegativeTags []string `json:"negative_tags"`
}

// AudioTagStats aggregates tag usage.
type AudioTagStats struct {
	TotalTags     int            `json:"total_tags"`
	PositiveCount int            `json:"positive_count"`
	NegativeCount int            `json:"negative_count"`
	TagFrequency  map[string]int `json:"tag_frequency"`
	TopPositive   [][]any        `json:"top_positive_tags"`
	TopNegative   [][]any        `json:"top_negative_tags"`
}

// GetAvailableTags fetches the suggested tag vocabularies.
func (c *Client) GetAvailableTags(ctx context.Context) (*AvailableTags, error) {
	var tags AvailableTags
	if err := c.get(ctx, "/tags/available", nil, &tags); err != nil {
		return nil, err
	}
	return &tags, nil
}

// CreateTag tags a sample.
func (c *Client) CreateTag(ctx context.Context, req AudioTagCreate) (*AudioTag, error) {
	var tag AudioTag
	if err := c.post(ctx, "/tags", req, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// BulkCreateTags tags a sample with several positive and negative tags at
// once.
func (c *Client) BulkCreateTags(ctx context.Context, audioID string, positive, negative []string) ([]AudioTag, error) {
	req := struct {
		AudioID      string   `json:"audio_id"`
		PositiveTags []string `json:"positive_tags"`
		NegativeTags []string `json:"negative_tags"`
	}{AudioID: audioID, PositiveTags: positive, NegativeTags: negative}
	var tags []AudioTag
	if err := c.post(ctx, "/tags/bulk", req, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// ListTags returns a page of tags, optionally filtered to one sample or
// polarity.
func (c *Client) ListTags(ctx context.Context, audioID string, isPositive *bool, page, limit int) (*AudioTagList, error) {
	q := url.Values{}
	setString(q, "audio_id", audioID)
	setBoolPtr(q, "is_positive", isPositive)
	setInt(q, "page", page)
	setInt(q, "limit", limit)
	var list AudioTagList
	if err := c.get(ctx, "/tags", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetTagStats fetches tag usage statistics.
func (c *Client) GetTagStats(ctx context.Context) (*AudioTagStats, error) {
	var stats AudioTagStats
	if err := c.get(ctx, "/tags/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetTagsForAudio lists all tags on one sample.
func (c *Client) GetTagsForAudio(ctx context.Context, audioID string) (*AudioTagList, error) {
	var list AudioTagList
	if err := c.get(ctx, "/tags/audio/"+audioID, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ReplaceTagsForAudio replaces all tags on one sample.
func (c *Client) ReplaceTagsForAudio(ctx context.Context, audioID string, positive, negative []string) ([]AudioTag, error) {
	req := struct {
		PositiveTags []string `json:"positive_tags"`
		NegativeTags []string `json:"negative_tags"`
	}{PositiveTags: positive, NegativeTags: negative}
	var tags []AudioTag
	if err := c.put(ctx, "/tags/audio/"+audioID, req, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// DeleteTag removes a tag.
func (c *Client) DeleteTag(ctx context.Context, id string) error {
	return c.delete(ctx, "/tags/"+id)
}
