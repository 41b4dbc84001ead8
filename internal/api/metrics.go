package api

import "context"

// StageMetrics counts one pipeline stage's work.
type StageMetrics struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	Active       int `json:"active"`
	RatedSamples int `json:"rated_samples"`
	Pending      int `json:"pending"`
	Exported     int `json:"exported"`
	Running      int `json:"running"`
}

// PipelineMetrics is the four-stage pipeline view of the dashboard.
type PipelineMetrics struct {
	Generation StageMetrics `json:"generation"`
	Feedback   StageMetrics `json:"feedback"`
	Dataset    StageMetrics `json:"dataset"`
	Training   StageMetrics `json:"training"`
}

// QuickStats are the headline numbers of the dashboard.
type QuickStats struct {
	TotalGenerations int      `json:"total_generations"`
	TotalSamples     int      `json:"total_samples"`
	AvgRating        *float64 `json:"avg_rating"`
	ActiveAdapters   int      `json:"active_adapters"`
	TotalAdapters    int      `json:"total_adapters"`
	PendingFeedback  int      `json:"pending_feedback"`
}

// OverviewMetrics is the dashboard overview.
type OverviewMetrics struct {
	Pipeline   PipelineMetrics `json:"pipeline"`
	QuickStats QuickStats      `json:"quick_stats"`
}

// AdapterFeedback is feedback volume and quality attributed to one adapter.
type AdapterFeedback struct {
	AdapterID   *string  `json:"adapter_id"`
	AdapterName string   `json:"adapter_name"`
	Count       int      `json:"count"`
	AvgRating   *float64 `json:"avg_rating"`
}

// FeedbackMetrics is the feedback distribution view.
type FeedbackMetrics struct {
	RatingDistribution    map[string]int    `json:"rating_distribution"`
	ByAdapter             []AdapterFeedback `json:"by_adapter"`
	PreferenceComparisons int               `json:"preference_comparisons"`
	TaggedAudio           int               `json:"tagged_audio"`
}

// GetOverviewMetrics fetches the dashboard overview.
func (c *Client) GetOverviewMetrics(ctx context.Context) (*OverviewMetrics, error) {
	var metrics OverviewMetrics
	if err := c.get(ctx, "/metrics/overview", nil, &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

// GetFeedbackMetrics fetches feedback distribution metrics.
func (c *Client) GetFeedbackMetrics(ctx context.Context) (*FeedbackMetrics, error) {
	var metrics FeedbackMetrics
	if err := c.get(ctx, "/metrics/feedback", nil, &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}
