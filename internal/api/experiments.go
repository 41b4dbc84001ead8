package api

import (
	"context"
	"net/url"
	"time"
)

// Experiment groups training runs sharing a dataset and base config.
type Experiment struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	DatasetID   *string          `json:"dataset_id"`
	Status      ExperimentStatus `json:"status"`
	Config      map[string]any   `json:"config"`
	BestRunID   *string          `json:"best_run_id"`
	BestLoss    *float64         `json:"best_loss"`
	RunCount    int              `json:"run_count"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ExperimentRun is one training run inside an experiment.
type ExperimentRun struct {
	ID           string         `json:"id"`
	ExperimentID string         `json:"experiment_id"`
	AdapterID    *string        `json:"adapter_id"`
	Name         *string        `json:"name"`
	Status       RunStatus      `json:"status"`
	Config       map[string]any `json:"config"`
	Metrics      map[string]any `json:"metrics"`
	FinalLoss    *float64       `json:"final_loss"`
	Error        *string        `json:"error"`
	StartedAt    *time.Time     `json:"started_at"`
	CompletedAt  *time.Time     `json:"completed_at"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ExperimentDetail is an experiment with its runs.
type ExperimentDetail struct {
	Experiment
	Runs []ExperimentRun `json:"runs"`
}

// ExperimentList is a page of experiments.
type ExperimentList struct {
	Items  []Experiment `json:"items"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// ExperimentCreate is the body for creating an experiment.
type ExperimentCreate struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	DatasetID   *string        `json:"dataset_id,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
}

// ExperimentUpdate replaces experiment fields. Nil fields are left
// unchanged.
type ExperimentUpdate struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	DatasetID   *string        `json:"dataset_id,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
}

// ExperimentListOptions filter the experiment listing.
type ExperimentListOptions struct {
	Status          string
	IncludeArchived bool
	Limit           int
	Offset          int
}

// ExperimentMetrics aggregates completed-run metrics for one experiment.
type ExperimentMetrics struct {
	ExperimentID string             `json:"experiment_id"`
	RunCount     int                `json:"run_count"`
	Runs         []RunMetricSummary `json:"runs"`
	BestLoss     *float64           `json:"best_loss"`
	BestRunID    *string            `json:"best_run_id"`
}

// RunMetricSummary is one completed run's headline metrics.
type RunMetricSummary struct {
	ID        string         `json:"id"`
	Name      *string        `json:"name"`
	FinalLoss *float64       `json:"final_loss"`
	Metrics   map[string]any `json:"metrics"`
	AdapterID *string        `json:"adapter_id"`
}

// ListExperiments returns a filtered page of experiments.
func (c *Client) ListExperiments(ctx context.Context, opts ExperimentListOptions) (*ExperimentList, error) {
	q := url.Values{}
	setString(q, "status", opts.Status)
	if opts.IncludeArchived {
		q.Set("include_archived", "true")
	}
	setInt(q, "limit", opts.Limit)
	setInt(q, "offset", opts.Offset)
	var list ExperimentList
	if err := c.get(ctx, "/experiments", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateExperiment creates an experiment in DRAFT status.
func (c *Client) CreateExperiment(ctx context.Context, req ExperimentCreate) (*Experiment, error) {
	var exp Experiment
	if err := c.post(ctx, "/experiments", req, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// GetExperiment fetches an experiment with its runs.
func (c *Client) GetExperiment(ctx context.Context, id string) (*ExperimentDetail, error) {
	var exp ExperimentDetail
	if err := c.get(ctx, "/experiments/"+id, nil, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// UpdateExperiment updates an experiment.
func (c *Client) UpdateExperiment(ctx context.Context, id string, req ExperimentUpdate) (*Experiment, error) {
	var exp Experiment
	if err := c.put(ctx, "/experiments/"+id, req, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// ArchiveExperiment moves an experiment to ARCHIVED.
func (c *Client) ArchiveExperiment(ctx context.Context, id string) (*Experiment, error) {
	var exp Experiment
	if err := c.post(ctx, "/experiments/"+id+"/archive", nil, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// UnarchiveExperiment restores an archived experiment.
func (c *Client) UnarchiveExperiment(ctx context.Context, id string) (*Experiment, error) {
	var exp Experiment
	if err := c.post(ctx, "/experiments/"+id+"/unarchive", nil, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// DeleteExperiment removes an experiment and its runs.
func (c *Client) DeleteExperiment(ctx context.Context, id string) error {
	return c.delete(ctx, "/experiments/"+id)
}

// ListRuns lists an experiment's runs, newest first.
func (c *Client) ListRuns(ctx context.Context, experimentID string) ([]ExperimentRun, error) {
	var runs []ExperimentRun
	if err := c.get(ctx, "/experiments/"+experimentID+"/runs", nil, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// CreateRun starts a new training run. Config overrides the experiment
// config when non-nil.
func (c *Client) CreateRun(ctx context.Context, experimentID, name string, config map[string]any) (*ExperimentRun, error) {
	req := struct {
		Name   string         `json:"name,omitempty"`
		Config map[string]any `json:"config,omitempty"`
	}{Name: name, Config: config}
	var run ExperimentRun
	if err := c.post(ctx, "/experiments/"+experimentID+"/runs", req, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// GetExperimentMetrics fetches aggregated metrics across completed runs.
func (c *Client) GetExperimentMetrics(ctx context.Context, id string) (*ExperimentMetrics, error) {
	var metrics ExperimentMetrics
	if err := c.get(ctx, "/experiments/"+id+"/metrics", nil, &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}
