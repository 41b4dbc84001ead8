package api

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"
)

// RunLogs is the full log history of a training run.
type RunLogs struct {
	RunID     string    `json:"run_id"`
	Data      string    `json:"data"`
	Size      int       `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Bytes decodes the base64 log payload.
func (l *RunLogs) Bytes() ([]byte, error) {
	if l.Data == "" {
		return nil, nil
	}
	raw, err := base64.StdEncoding.DecodeString(l.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode log data: %w", err)
	}
	return raw, nil
}

// GetRunLogs fetches the full log history for a run. Runs without output
// return an empty payload rather than an error.
func (c *Client) GetRunLogs(ctx context.Context, runID string) (*RunLogs, error) {
	var logs RunLogs
	if err := c.get(ctx, "/runs/"+runID+"/logs", nil, &logs); err != nil {
		return nil, err
	}
	return &logs, nil
}
