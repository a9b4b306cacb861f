package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/harborview/mls-comps/pkg/types"
)

// JobsProvider defines the store methods required by the jobs handler.
type JobsProvider interface {
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// JobsHandler handles scheduler job history requests.
type JobsHandler struct {
	store JobsProvider
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(s JobsProvider) *JobsHandler {
	return &JobsHandler{store: s}
}

const defaultJobHistoryLimit = 20

// ListJobsInput is the input for listing job runs.
type ListJobsInput struct {
	JobName string `query:"job_name" doc:"Filter by job name" enum:"feed_sync,snapshot_refresh,"`
	Limit   int    `query:"limit"    doc:"Number of results (default 20)" minimum:"1" maximum:"200"`
}

// ListJobsOutput is the response body for listing job runs.
type ListJobsOutput struct {
	Body []domain.JobRun
}

// ListJobs returns scheduler job run history, newest first.
func (h *JobsHandler) ListJobs(
	ctx context.Context,
	input *ListJobsInput,
) (*ListJobsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultJobHistoryLimit
	}

	runs, err := h.store.ListJobRuns(ctx, input.JobName, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching job history failed: " + err.Error())
	}

	if runs == nil {
		runs = []domain.JobRun{}
	}

	return &ListJobsOutput{Body: runs}, nil
}

// RegisterJobRoutes registers scheduler job endpoints with the Huma API.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "List scheduler job runs",
		Description: "Returns job run history, newest first, optionally filtered by job name.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobs)
}
