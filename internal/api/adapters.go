package api

import (
	"context"
	"net/url"
	"time"
)

// Adapter is a fine-tuned LoRA adapter over a base model.
type Adapter struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    *string        `json:"description"`
	BaseModel      string         `json:"base_model"`
	Status         string         `json:"status"`
	CurrentVersion *string        `json:"current_version"`
	Config         map[string]any `json:"config"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      *time.Time     `json:"updated_at"`
}

// AdapterVersion is one trained snapshot of an adapter.
type AdapterVersion struct {
	ID          string    `json:"id"`
	AdapterID   string    `json:"adapter_id"`
	Version     string    `json:"version"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdapterDetail is an adapter with its version history.
type AdapterDetail struct {
	Adapter
	Versions       []AdapterVersion `json:"versions"`
	TrainingConfig map[string]any   `json:"training_config"`
}

// AdapterList is a page of adapters.
type AdapterList struct {
	Items []Adapter `json:"items"`
	Total int       `json:"total"`
}

// AdapterCreate is the body for registering an adapter.
type AdapterCreate struct {
	Name              string         `json:"name"`
	Description       string         `json:"description,omitempty"`
	BaseModel         string         `json:"base_model,omitempty"`
	StoragePath       string         `json:"storage_path,omitempty"`
	TrainingDatasetID *string        `json:"training_dataset_id,omitempty"`
	TrainingConfig    map[string]any `json:"training_config,omitempty"`
	Config            map[string]any `json:"config,omitempty"`
}

// AdapterUpdate patches adapter fields. Nil fields are left unchanged.
type AdapterUpdate struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
	Status      *string        `json:"status,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
}

// AdapterStats summarizes the adapter registry.
type AdapterStats struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	Archived      int `json:"archived"`
	TotalVersions int `json:"total_versions"`
}

// AdapterTimelineEvent is one entry of an adapter's history.
type AdapterTimelineEvent struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Timestamp   time.Time      `json:"timestamp"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}

// AdapterTimeline is the creation/version/training history of an adapter.
type AdapterTimeline struct {
	AdapterID         string                 `json:"adapter_id"`
	AdapterName       string                 `json:"adapter_name"`
	Events            []AdapterTimelineEvent `json:"events"`
	TotalVersions     int                    `json:"total_versions"`
	TotalTrainingRuns int                    `json:"total_training_runs"`
}

// AdapterListOptions filter the adapter listing.
type AdapterListOptions struct {
	ActiveOnly bool
	Skip       int
	Limit      int
}

// ListAdapters returns a page of adapters.
func (c *Client) ListAdapters(ctx context.Context, opts AdapterListOptions) (*AdapterList, error) {
	q := url.Values{}
	if opts.ActiveOnly {
		q.Set("active_only", "true")
	}
	setInt(q, "skip", opts.Skip)
	setInt(q, "limit", opts.Limit)
	var list AdapterList
	if err := c.get(ctx, "/adapters", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetAdapterStats fetches registry statistics.
func (c *Client) GetAdapterStats(ctx context.Context) (*AdapterStats, error) {
	var stats AdapterStats
	if err := c.get(ctx, "/adapters/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetAdapter fetches an adapter with its versions.
func (c *Client) GetAdapter(ctx context.Context, id string) (*AdapterDetail, error) {
	var adapter AdapterDetail
	if err := c.get(ctx, "/adapters/"+id, nil, &adapter); err != nil {
		return nil, err
	}
	return &adapter, nil
}

// GetAdapterTimeline fetches an adapter's event history.
func (c *Client) GetAdapterTimeline(ctx context.Context, id string) (*AdapterTimeline, error) {
	var timeline AdapterTimeline
	if err := c.get(ctx, "/adapters/"+id+"/timeline", nil, &timeline); err != nil {
		return nil, err
	}
	return &timeline, nil
}

// CreateAdapter registers a new adapter.
func (c *Client) CreateAdapter(ctx context.Context, req AdapterCreate) (*Adapter, error) {
	var adapter Adapter
	if err := c.post(ctx, "/adapters", req, &adapter); err != nil {
		return nil, err
	}
	return &adapter, nil
}

// UpdateAdapter patches an adapter.
func (c *Client) UpdateAdapter(ctx context.Context, id string, req AdapterUpdate) (*Adapter, error) {
	var adapter Adapter
	if err := c.patch(ctx, "/adapters/"+id, req, &adapter); err != nil {
		return nil, err
	}
	return &adapter, nil
}

// DeleteAdapter removes an adapter.
func (c *Client) DeleteAdapter(ctx context.Context, id string) error {
	return c.delete(ctx, "/adapters/"+id)
}

// CreateAdapterVersion records a new trained version.
func (c *Client) CreateAdapterVersion(ctx context.Context, adapterID, version, description string) (*AdapterVersion, error) {
	req := struct {
		Version     string `json:"version"`
		Description string `json:"description,omitempty"`
	}{Version: version, Description: description}
	var v AdapterVersion
	if err := c.post(ctx, "/adapters/"+adapterID+"/versions", req, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ActivateAdapterVersion makes one version the active one.
func (c *Client) ActivateAdapterVersion(ctx context.Context, adapterID, versionID string) error {
	return c.patch(ctx, "/adapters/"+adapterID+"/versions/"+versionID+"/activate", nil, nil)
}
