package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// FeedSyncer defines the interface for triggering a feed sync.
type FeedSyncer interface {
	RunFeedSync(ctx context.Context) (int, error)
}

// SnapshotRefresher defines the interface for triggering a market snapshot refresh.
type SnapshotRefresher interface {
	RunSnapshotRefresh(ctx context.Context) (int, error)
}

// FeedSyncHandler handles manual feed sync trigger requests.
type FeedSyncHandler struct {
	syncer FeedSyncer
}

// NewFeedSyncHandler creates a new FeedSyncHandler.
func NewFeedSyncHandler(s FeedSyncer) *FeedSyncHandler {
	return &FeedSyncHandler{syncer: s}
}

// FeedSyncOutput is the response body for the feed sync endpoint.
type FeedSyncOutput struct {
	Body struct {
		Status     string `json:"status"     example:"sync completed" doc:"Sync status"`
		Properties int    `json:"properties" example:"412"            doc:"Properties upserted during the run"`
	}
}

// Sync triggers a full feed sync run.
func (h *FeedSyncHandler) Sync(ctx context.Context, _ *struct{}) (*FeedSyncOutput, error) {
	n, err := h.syncer.RunFeedSync(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("feed sync failed: " + err.Error())
	}

	resp := &FeedSyncOutput{}
	resp.Body.Status = "sync completed"
	resp.Body.Properties = n
	return resp, nil
}

// SnapshotRefreshHandler handles manual market snapshot refresh requests.
type SnapshotRefreshHandler struct {
	refresher SnapshotRefresher
}

// NewSnapshotRefreshHandler creates a new SnapshotRefreshHandler.
func NewSnapshotRefreshHandler(r SnapshotRefresher) *SnapshotRefreshHandler {
	return &SnapshotRefreshHandler{refresher: r}
}

// RefreshOutput is the response body for the snapshot refresh endpoint.
type RefreshOutput struct {
	Body struct {
		Status    string `json:"status"    example:"snapshot refresh completed" doc:"Refresh status"`
		Snapshots int    `json:"snapshots" example:"14"                         doc:"Snapshots written during the run"`
	}
}

// Refresh triggers market snapshot recomputation for all tracked cities.
func (h *SnapshotRefreshHandler) Refresh(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	n, err := h.refresher.RunSnapshotRefresh(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("snapshot refresh failed: " + err.Error())
	}

	resp := &RefreshOutput{}
	resp.Body.Status = "snapshot refresh completed"
	resp.Body.Snapshots = n
	return resp, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, syncH *FeedSyncHandler, snapH *SnapshotRefreshHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-feed-sync",
		Method:      http.MethodPost,
		Path:        "/api/v1/sync",
		Summary:     "Trigger manual feed sync",
		Description: "Runs a full feed sync: pull modified listings from the MLS feed " +
			"and upsert them into the local store.",
		Tags:   []string{"feed"},
		Errors: []int{http.StatusInternalServerError},
	}, syncH.Sync)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-snapshots",
		Method:      http.MethodPost,
		Path:        "/api/v1/market/refresh",
		Summary:     "Refresh market snapshots",
		Description: "Recomputes the market heat snapshot for every tracked city.",
		Tags:        []string{"market"},
		Errors:      []int{http.StatusInternalServerError},
	}, snapH.Refresh)
}
