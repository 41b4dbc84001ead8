package api

import (
	"context"
	"net/url"
	"time"
)

// PromptAttributes are the optional musical attributes attached to a prompt.
// Tempo is 40-200 BPM, instruments come from the backend whitelist.
type PromptAttributes struct {
	Style                string   `json:"style,omitempty"`
	Tempo                *int     `json:"tempo,omitempty"`
	PrimaryInstruments   []string `json:"primary_instruments,omitempty"`
	SecondaryInstruments []string `json:"secondary_instruments,omitempty"`
	Mood                 string   `json:"mood,omitempty"`
	Duration             *int     `json:"duration,omitempty"`
}

// Prompt is a stored text prompt with its generated sample IDs.
type Prompt struct {
	ID             string            `json:"id"`
	Text           string            `json:"text"`
	Attributes     *PromptAttributes `json:"attributes"`
	CreatedAt      time.Time         `json:"created_at"`
	AudioSampleIDs []string          `json:"audio_sample_ids"`
}

// PromptList is a page of prompts.
type PromptList struct {
	Items []Prompt `json:"items"`
	Total int      `json:"total"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
}

// PromptSearchResult is a page of prompts matching a search.
type PromptSearchResult struct {
	Items []Prompt `json:"items"`
	Total int      `json:"total"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
	Query string   `json:"query,omitempty"`
}

// PromptCreate is the body for creating a prompt. Text must be non-empty.
type PromptCreate struct {
	Text       string            `json:"text"`
	Attributes *PromptAttributes `json:"attributes,omitempty"`
}

// PromptSearchOptions filter a prompt search. Zero values are omitted.
type PromptSearchOptions struct {
	Query    string
	Style    string
	Mood     string
	TempoMin *int
	TempoMax *int
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Limit    int
}

// CreatePrompt stores a new prompt.
func (c *Client) CreatePrompt(ctx context.Context, req PromptCreate) (*Prompt, error) {
	var prompt Prompt
	if err := c.post(ctx, "/prompts", req, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// GetPrompt fetches a prompt by ID.
func (c *Client) GetPrompt(ctx context.Context, id string) (*Prompt, error) {
	var prompt Prompt
	if err := c.get(ctx, "/prompts/"+id, nil, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// ListPrompts returns a page of prompts, newest first.
func (c *Client) ListPrompts(ctx context.Context, page, limit int) (*PromptList, error) {
	q := url.Values{}
	setInt(q, "page", page)
	setInt(q, "limit", limit)
	var list PromptList
	if err := c.get(ctx, "/prompts", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// SearchPrompts runs a full-text and attribute-filtered search.
func (c *Client) SearchPrompts(ctx context.Context, opts PromptSearchOptions) (*PromptSearchResult, error) {
	q := url.Values{}
	setString(q, "q", opts.Query)
	setString(q, "style", opts.Style)
	setString(q, "mood", opts.Mood)
	setIntPtr(q, "tempo_min", opts.TempoMin)
	setIntPtr(q, "tempo_max", opts.TempoMax)
	if opts.DateFrom != nil {
		q.Set("date_from", opts.DateFrom.Format(time.RFC3339))
	}
	if opts.DateTo != nil {
		q.Set("date_to", opts.DateTo.Format(time.RFC3339))
	}
	setInt(q, "page", opts.Page)
	setInt(q, "limit", opts.Limit)
	var result PromptSearchResult
	if err := c.get(ctx, "/prompts/search", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
