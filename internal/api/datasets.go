package api

import (
	"context"
	"net/url"
	"time"
)

// DatasetFilter selects which feedback ends up in a dataset.
type DatasetFilter struct {
	MinRating    *float64   `json:"min_rating,omitempty"`
	MaxRating    *float64   `json:"max_rating,omitempty"`
	RequiredTags []string   `json:"required_tags,omitempty"`
	ExcludedTags []string   `json:"excluded_tags,omitempty"`
	AdapterID    *string    `json:"adapter_id,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

// Dataset is a materialized training dataset.
type Dataset struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Type        DatasetType    `json:"type"`
	FilterQuery map[string]any `json:"filter_query"`
	SampleCount int            `json:"sample_count"`
	ExportPath  *string        `json:"export_path"`
	CreatedAt   time.Time      `json:"created_at"`
}

// DatasetList is a page of datasets.
type DatasetList struct {
	Items []Dataset `json:"items"`
	Total int       `json:"total"`
}

// DatasetCreate is the body for building a dataset from filtered feedback.
type DatasetCreate struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Type        DatasetType    `json:"type"`
	FilterQuery *DatasetFilter `json:"filter_query,omitempty"`
}

// DatasetExport is the result of exporting a dataset to disk.
type DatasetExport struct {
	DatasetID   string `json:"dataset_id"`
	ExportPath  string `json:"export_path"`
	SampleCount int    `json:"sample_count"`
	Format      string `json:"format"`
}

// DatasetStats describes dataset quality and composition.
type DatasetStats struct {
	DatasetID             string         `json:"dataset_id"`
	SampleCount           int            `json:"sample_count"`
	RatingDistribution    map[string]int `json:"rating_distribution"`
	UniquePrompts         int            `json:"unique_prompts"`
	UniqueAdapters        int            `json:"unique_adapters"`
	TagFrequency          map[string]int `json:"tag_frequency"`
	InterRaterAgreement   *float64       `json:"inter_rater_agreement"`
	PreferenceConsistency *float64       `json:"preference_consistency"`
}

// ListDatasets returns a page of datasets.
func (c *Client) ListDatasets(ctx context.Context, page, limit int) (*DatasetList, error) {
	q := url.Values{}
	setInt(q, "page", page)
	setInt(q, "limit", limit)
	var list DatasetList
	if err := c.get(ctx, "/datasets", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// PreviewDataset counts the samples a filter would select, without building
// anything.
func (c *Client) PreviewDataset(ctx context.Context, typ DatasetType, filter *DatasetFilter) (int, error) {
	req := struct {
		Type        DatasetType    `json:"type"`
		FilterQuery *DatasetFilter `json:"filter_query,omitempty"`
	}{Type: typ, FilterQuery: filter}
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.post(ctx, "/datasets/preview", req, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// CreateDataset materializes a dataset from filtered feedback.
func (c *Client) CreateDataset(ctx context.Context, req DatasetCreate) (*Dataset, error) {
	var ds Dataset
	if err := c.post(ctx, "/datasets", req, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// GetDataset fetches a dataset by ID.
func (c *Client) GetDataset(ctx context.Context, id string) (*Dataset, error) {
	var ds Dataset
	if err := c.get(ctx, "/datasets/"+id, nil, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// ExportDataset writes a dataset to disk in the given format (huggingface,
// json, or csv).
func (c *Client) ExportDataset(ctx context.Context, id, format string) (*DatasetExport, error) {
	req := struct {
		Format string `json:"format,omitempty"`
	}{Format: format}
	var export DatasetExport
	if err := c.post(ctx, "/datasets/"+id+"/export", req, &export); err != nil {
		return nil, err
	}
	return &export, nil
}

// GetDatasetStats fetches quality statistics for a dataset.
func (c *Client) GetDatasetStats(ctx context.Context, id string) (*DatasetStats, error) {
	var stats DatasetStats
	if err := c.get(ctx, "/datasets/"+id+"/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// DeleteDataset soft-deletes a dataset.
func (c *Client) DeleteDataset(ctx context.Context, id string) error {
	return c.delete(ctx, "/datasets/"+id)
}
