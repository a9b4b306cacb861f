package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborview/mls-comps/internal/api/handlers"
	"github.com/harborview/mls-comps/internal/feed"
)

func TestQuotaHandler_GetQuota(t *testing.T) {
	t.Parallel()

	rl := feed.NewRateLimiter(10, 10, 5000)
	for range 3 {
		require.NoError(t, rl.Wait(context.Background()))
	}

	h := handlers.NewQuotaHandler(rl)

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, h)

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"daily_limit":5000`)
	assert.Contains(t, resp.Body.String(), `"daily_used":3`)
	assert.Contains(t, resp.Body.String(), `"remaining":4997`)
}

func TestQuotaHandler_NilLimiter(t *testing.T) {
	t.Parallel()

	h := handlers.NewQuotaHandler(nil)

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, h)

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"daily_limit":0`)
}
