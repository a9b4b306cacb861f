package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/harborview/mls-comps/internal/metrics"
)

const defaultResource = "Property"

// RESOClient implements Client against a RESO Web API endpoint.
type RESOClient struct {
	tokens      TokenProvider
	baseURL     string
	origin      string // OriginatingSystemName filter, empty to skip
	client      *http.Client
	rateLimiter *RateLimiter
}

// RESOOption configures the RESOClient.
type RESOOption func(*RESOClient)

// WithOriginatingSystem restricts queries to one originating MLS.
func WithOriginatingSystem(name string) RESOOption {
	return func(c *RESOClient) {
		c.origin = name
	}
}

// WithRESOHTTPClient overrides the default HTTP client.
func WithRESOHTTPClient(hc *http.Client) RESOOption {
	return func(c *RESOClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and
// daily request limits. When set, every fetch goes through Wait() first.
func WithRateLimiter(r *RateLimiter) RESOOption {
	return func(c *RESOClient) {
		c.rateLimiter = r
	}
}

// NewRESOClient creates a feed client for the given Web API base URL.
func NewRESOClient(tokens TokenProvider, baseURL string, opts ...RESOOption) *RESOClient {
	c := &RESOClient{
		tokens:  tokens,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type odataResponse struct {
	Context  string           `json:"@odata.context"`
	Count    int              `json:"@odata.count"`
	NextLink string           `json:"@odata.nextLink"`
	Value    []PropertyRecord `json:"value"`
}

// Fetch implements Client.Fetch by building an OData query URL.
func (c *RESOClient) Fetch(ctx context.Context, q Query) (*Page, error) {
	return c.get(ctx, c.buildQueryURL(q))
}

// FetchNext implements Client.FetchNext by following a server-issued
// @odata.nextLink verbatim.
func (c *RESOClient) FetchNext(ctx context.Context, nextLink string) (*Page, error) {
	if nextLink == "" {
		return nil, errors.New("empty next link")
	}
	return c.get(ctx, nextLink)
}

func (c *RESOClient) get(ctx context.Context, u string) (*Page, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.FeedDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.FeedAPICallsTotal.Inc()
		metrics.FeedDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing feed request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"feed API error (status %d): %s",
			resp.StatusCode,
			string(body),
		)
	}

	var apiResp odataResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing feed response: %w", err)
	}

	return &Page{
		Records:  apiResp.Value,
		NextLink: apiResp.NextLink,
		Count:    apiResp.Count,
	}, nil
}

func (c *RESOClient) buildQueryURL(q Query) string {
	resource := q.Resource
	if resource == "" {
		resource = defaultResource
	}

	var filters []string
	if q.Filter != "" {
		filters = append(filters, q.Filter)
	}
	if q.ModifiedSince != "" {
		filters = append(filters, "ModificationTimestamp gt "+q.ModifiedSince)
	}
	if c.origin != "" {
		filters = append(filters, fmt.Sprintf("OriginatingSystemName eq '%s'", c.origin))
	}

	params := url.Values{}
	if len(filters) > 0 {
		params.Set("$filter", strings.Join(filters, " and "))
	}

	top := q.Top
	if top <= 0 {
		top = 200
	}
	params.Set("$top", strconv.Itoa(top))

	if q.Skip > 0 {
		params.Set("$skip", strconv.Itoa(q.Skip))
	}

	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = "ModificationTimestamp asc"
	}
	params.Set("$orderby", orderBy)

	return c.baseURL + "/" + resource + "?" + params.Encode()
}
