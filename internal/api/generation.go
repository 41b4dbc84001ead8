package api

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// GenerationRequest submits a prompt for audio generation.
type GenerationRequest struct {
	PromptID    string   `json:"prompt_id"`
	NumSamples  int      `json:"num_samples,omitempty"`
	AdapterID   *string  `json:"adapter_id,omitempty"`
	Seed        *int     `json:"seed,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	TopK        *int     `json:"top_k,omitempty"`
	TopP        *float64 `json:"top_p,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
}

// GenerationJob is the server-side state of a generation request.
type GenerationJob struct {
	ID        string    `json:"id"`
	Status    JobStatus `json:"status"`
	Progress  *float64  `json:"progress"`
	AudioIDs  []string  `json:"audio_ids"`
	Error     *string   `json:"error"`
	CreatedAt time.Time `json:"created_at"`
}

// JobListItem is one row of the jobs listing, enriched with prompt and
// adapter context.
type JobListItem struct {
	ID              string    `json:"id"`
	PromptID        *string   `json:"prompt_id"`
	PromptPreview   *string   `json:"prompt_preview"`
	AdapterID       *string   `json:"adapter_id"`
	AdapterName     *string   `json:"adapter_name"`
	Status          JobStatus `json:"status"`
	Progress        *float64  `json:"progress"`
	NumSamples      int       `json:"num_samples"`
	AudioIDs        []string  `json:"audio_ids"`
	Error           *string   `json:"error"`
	DurationSeconds *float64  `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

// JobList is a page of generation jobs.
type JobList struct {
	Items  []JobListItem `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// JobListOptions filter the jobs listing.
type JobListOptions struct {
	Status    string
	AdapterID string
	Limit     int
	Offset    int
}

// JobStats summarizes the generation queue.
type JobStats struct {
	StatusCounts          map[string]int `json:"status_counts"`
	ActiveJobs            int            `json:"active_jobs"`
	AvgProcessingTimeSecs *float64       `json:"avg_processing_time_seconds"`
	JobsToday             int            `json:"jobs_today"`
	TotalJobs             int            `json:"total_jobs"`
}

// SampleFeedbackItem is one feedback record attached to a sample.
type SampleFeedbackItem struct {
	ID              string    `json:"id"`
	Rating          *float64  `json:"rating"`
	RatingCriterion *string   `json:"rating_criterion"`
	PreferredOver   *string   `json:"preferred_over"`
	Tags            []string  `json:"tags"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

// SampleFeedbackGroup is feedback grouped by audio sample, labeled A, B, C...
type SampleFeedbackGroup struct {
	AudioID       string               `json:"audio_id"`
	Label         string               `json:"label"`
	Feedback      []SampleFeedbackItem `json:"feedback"`
	AverageRating *float64             `json:"average_rating"`
	FeedbackCount int                  `json:"feedback_count"`
	Tags          []string             `json:"tags"`
}

// JobFeedback is the per-sample feedback summary for one generation job.
type JobFeedback struct {
	JobID         string                `json:"job_id"`
	PromptID      string                `json:"prompt_id"`
	TotalSamples  int                   `json:"total_samples"`
	TotalFeedback int                   `json:"total_feedback"`
	AverageRating *float64              `json:"average_rating"`
	Samples       []SampleFeedbackGroup `json:"samples"`
}

// Generate submits a generation job.
func (c *Client) Generate(ctx context.Context, req GenerationRequest) (*GenerationJob, error) {
	var job GenerationJob
	if err := c.post(ctx, "/generate", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetJob fetches the current state of a generation job.
func (c *Client) GetJob(ctx context.Context, id string) (*GenerationJob, error) {
	var job GenerationJob
	if err := c.get(ctx, "/generate/"+id, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CancelJob cancels a queued or processing job.
func (c *Client) CancelJob(ctx context.Context, id string) error {
	return c.delete(ctx, "/generate/"+id)
}

// GetJobFeedback fetches the labeled per-sample feedback for a job.
func (c *Client) GetJobFeedback(ctx context.Context, id string) (*JobFeedback, error) {
	var fb JobFeedback
	if err := c.get(ctx, "/generate/"+id+"/feedback", nil, &fb); err != nil {
		return nil, err
	}
	return &fb, nil
}

// ListJobs returns a filtered page of generation jobs.
func (c *Client) ListJobs(ctx context.Context, opts JobListOptions) (*JobList, error) {
	q := url.Values{}
	setString(q, "status", opts.Status)
	setString(q, "adapter_id", opts.AdapterID)
	setInt(q, "limit", opts.Limit)
	setInt(q, "offset", opts.Offset)
	var list JobList
	if err := c.get(ctx, "/jobs", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetJobStats fetches queue statistics.
func (c *Client) GetJobStats(ctx context.Context) (*JobStats, error) {
	var stats JobStats
	if err := c.get(ctx, "/jobs/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

const (
	jobPollInterval = time.Second
	jobPollLimit    = 120
)

// WaitForJob polls a job until it reaches a terminal status, calling onPoll
// after each fetch when non-nil. It gives up after two minutes of polling.
func (c *Client) WaitForJob(ctx context.Context, id string, onPoll func(*GenerationJob)) (*GenerationJob, error) {
	for attempt := 0; attempt < jobPollLimit; attempt++ {
		job, err := c.GetJob(ctx, id)
		if err != nil {
			return nil, err
		}
		if onPoll != nil {
			onPoll(job)
		}
		if job.Status.Terminal() {
			return job, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(jobPollInterval):
		}
	}
	return nil, fmt.Errorf("job %s did not finish after %d polls", id, jobPollLimit)
}
