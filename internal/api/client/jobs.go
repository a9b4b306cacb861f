package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	domain "github.com/harborview/mls-comps/pkg/types"
)

// ListJobs returns scheduler job run history, optionally filtered by job
// name.
func (c *Client) ListJobs(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	q := url.Values{}
	if jobName != "" {
		q.Set("job_name", jobName)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/jobs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// Quota is the feed API quota status.
type Quota struct {
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

// GetQuota returns the current feed API quota status.
func (c *Client) GetQuota(ctx context.Context) (*Quota, error) {
	var q Quota
	if err := c.get(ctx, "/api/v1/quota", &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// GetSystemState returns aggregate system counts.
func (c *Client) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	var state domain.SystemState
	if err := c.get(ctx, "/api/v1/system/state", &state); err != nil {
		return nil, err
	}
	return &state, nil
}
