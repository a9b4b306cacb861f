package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/harborview/mls-comps/pkg/types"
)

// GetMarketHeat returns the latest heat snapshot for a city.
func (c *Client) GetMarketHeat(ctx context.Context, city string) (*domain.MarketSnapshot, error) {
	var snap domain.MarketSnapshot
	if err := c.get(ctx, "/api/v1/market/"+url.PathEscape(city)+"/heat", &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ListMarketSnapshots returns the snapshot time series for a city.
func (c *Client) ListMarketSnapshots(
	ctx context.Context,
	city string,
	limit int,
) ([]domain.MarketSnapshot, error) {
	path := "/api/v1/market/" + url.PathEscape(city) + "/snapshots"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var resp struct {
		Snapshots []domain.MarketSnapshot `json:"snapshots"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Snapshots, nil
}

// ListCities returns the cities with stored inventory.
func (c *Client) ListCities(ctx context.Context) ([]string, error) {
	var resp struct {
		Cities []string `json:"cities"`
	}
	if err := c.get(ctx, "/api/v1/market/cities", &resp); err != nil {
		return nil, err
	}
	return resp.Cities, nil
}

// RefreshSnapshots triggers a market snapshot refresh for all cities and
// returns the number of snapshots written.
func (c *Client) RefreshSnapshots(ctx context.Context) (int, error) {
	var resp struct {
		Snapshots int `json:"snapshots"`
	}
	if err := c.post(ctx, "/api/v1/market/refresh", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Snapshots, nil
}

// TriggerFeedSync triggers an immediate feed sync and returns the number
// of properties upserted.
func (c *Client) TriggerFeedSync(ctx context.Context) (int, error) {
	var resp struct {
		Properties int `json:"properties"`
	}
	if err := c.post(ctx, "/api/v1/sync", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Properties, nil
}
