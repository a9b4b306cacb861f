package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborview/mls-comps/internal/feed"
)

type staticTokens struct{ token string }

func (s staticTokens) Token(context.Context) (string, error) { return s.token, nil }

const samplePage = `{
	"@odata.context": "https://feed.test/odata/$metadata#Property",
	"@odata.count": 2,
	"@odata.nextLink": "https://feed.test/odata/Property?$skiptoken=abc",
	"value": [
		{
			"ListingKey": "key-1",
			"ListingId": "F10500001",
			"UnparsedAddress": "500 Riverside Dr",
			"City": "Fort Lauderdale",
			"StateOrProvince": "FL",
			"PostalCode": "33301",
			"ListPrice": 725000,
			"BedroomsTotal": 4,
			"BathroomsTotalDecimal": 2.5,
			"LivingArea": 2400,
			"Latitude": 26.12,
			"Longitude": -80.14,
			"StandardStatus": "Active",
			"PropertySubType": "Single Family Residence"
		},
		{
			"ListingKey": "key-2",
			"ListingId": "F10500002",
			"City": "Fort Lauderdale",
			"ListPrice": 310000,
			"BedroomsTotal": 2,
			"BathroomsTotalInteger": 2,
			"LivingArea": 1100,
			"StandardStatus": "Pending",
			"PropertySubType": "Condominium"
		}
	]
}`

func TestRESOClient_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("parses page and next link", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
				assert.Equal(t, "/Property", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(samplePage))
			}),
		)
		defer srv.Close()

		client := feed.NewRESOClient(staticTokens{"test-token"}, srv.URL)

		page, err := client.Fetch(context.Background(), feed.Query{})
		require.NoError(t, err)
		assert.Len(t, page.Records, 2)
		assert.Equal(t, 2, page.Count)
		assert.Equal(t, "https://feed.test/odata/Property?$skiptoken=abc", page.NextLink)
		assert.Equal(t, "F10500001", page.Records[0].ListingID)
		assert.InDelta(t, 2.5, page.Records[0].BathroomsTotalDecimal, 0.001)
	})

	t.Run("builds OData query parameters", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				assert.Equal(t, "250", q.Get("$top"))
				assert.Equal(t, "100", q.Get("$skip"))
				assert.Equal(t, "ModificationTimestamp asc", q.Get("$orderby"))
				filter := q.Get("$filter")
				assert.Contains(t, filter, "StandardStatus eq 'Active'")
				assert.Contains(t, filter, "ModificationTimestamp gt 2026-08-01T00:00:00Z")
				assert.Contains(t, filter, "OriginatingSystemName eq 'TESTMLS'")
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"value":[]}`))
			}),
		)
		defer srv.Close()

		client := feed.NewRESOClient(
			staticTokens{"t"},
			srv.URL,
			feed.WithOriginatingSystem("TESTMLS"),
		)

		_, err := client.Fetch(context.Background(), feed.Query{
			Filter:        "StandardStatus eq 'Active'",
			ModifiedSince: "2026-08-01T00:00:00Z",
			Top:           250,
			Skip:          100,
		})
		require.NoError(t, err)
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"replication quota exceeded"}`))
			}),
		)
		defer srv.Close()

		client := feed.NewRESOClient(staticTokens{"t"}, srv.URL)

		_, err := client.Fetch(context.Background(), feed.Query{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("invalid JSON is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			}),
		)
		defer srv.Close()

		client := feed.NewRESOClient(staticTokens{"t"}, srv.URL)

		_, err := client.Fetch(context.Background(), feed.Query{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing feed response")
	})
}

func TestRESOClient_FetchNext(t *testing.T) {
	t.Parallel()

	t.Run("follows next link verbatim", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "abc", r.URL.Query().Get("$skiptoken"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"value":[]}`))
			}),
		)
		defer srv.Close()

		client := feed.NewRESOClient(staticTokens{"t"}, srv.URL)

		page, err := client.FetchNext(
			context.Background(),
			srv.URL+"/Property?$skiptoken=abc",
		)
		require.NoError(t, err)
		assert.Empty(t, page.Records)
	})

	t.Run("empty next link is an error", func(t *testing.T) {
		t.Parallel()

		client := feed.NewRESOClient(staticTokens{"t"}, "https://feed.test")
		_, err := client.FetchNext(context.Background(), "")
		require.Error(t, err)
	})
}

func TestRESOClient_DailyLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"value":[]}`))
		}),
	)
	defer srv.Close()

	client := feed.NewRESOClient(
		staticTokens{"t"},
		srv.URL,
		feed.WithRateLimiter(feed.NewRateLimiter(100, 10, 1)),
	)

	_, err := client.Fetch(context.Background(), feed.Query{})
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), feed.Query{})
	require.Error(t, err)
	assert.ErrorIs(t, err, feed.ErrDailyLimitReached)
}
