package feed_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborview/mls-comps/internal/feed"
)

// fakeClient serves a scripted sequence of pages.
type fakeClient struct {
	pages   []*feed.Page
	fetches int
	err     error
}

func (f *fakeClient) Fetch(_ context.Context, _ feed.Query) (*feed.Page, error) {
	return f.next()
}

func (f *fakeClient) FetchNext(_ context.Context, _ string) (*feed.Page, error) {
	return f.next()
}

func (f *fakeClient) next() (*feed.Page, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.fetches >= len(f.pages) {
		return &feed.Page{}, nil
	}
	page := f.pages[f.fetches]
	f.fetches++
	return page, nil
}

func makeRecords(n int, prefix string) []feed.PropertyRecord {
	records := make([]feed.PropertyRecord, n)
	for i := range records {
		records[i] = feed.PropertyRecord{
			ListingID:      fmt.Sprintf("%s-%d", prefix, i),
			StandardStatus: "Active",
		}
	}
	return records
}

func TestPaginator_Paginate(t *testing.T) {
	t.Parallel()

	t.Run("stops when server stops issuing next links", func(t *testing.T) {
		t.Parallel()

		client := &fakeClient{pages: []*feed.Page{
			{Records: makeRecords(3, "a"), NextLink: "next-1"},
			{Records: makeRecords(2, "b")},
		}}

		p := feed.NewPaginator(client)
		result, err := p.Paginate(context.Background(), feed.Query{})
		require.NoError(t, err)

		assert.Equal(t, "no_more_results", result.StoppedAt)
		assert.Equal(t, 2, result.PagesUsed)
		assert.Equal(t, 5, result.TotalSeen)
		assert.Len(t, result.Properties, 5)
	})

	t.Run("stops at max pages", func(t *testing.T) {
		t.Parallel()

		client := &fakeClient{pages: []*feed.Page{
			{Records: makeRecords(2, "a"), NextLink: "next-1"},
			{Records: makeRecords(2, "b"), NextLink: "next-2"},
			{Records: makeRecords(2, "c"), NextLink: "next-3"},
		}}

		p := feed.NewPaginator(client, feed.WithMaxPages(2))
		result, err := p.Paginate(context.Background(), feed.Query{})
		require.NoError(t, err)

		assert.Equal(t, "max_pages", result.StoppedAt)
		assert.Equal(t, 2, result.PagesUsed)
		assert.Len(t, result.Properties, 4)
	})

	t.Run("empty first page", func(t *testing.T) {
		t.Parallel()

		client := &fakeClient{pages: []*feed.Page{{}}}

		p := feed.NewPaginator(client)
		result, err := p.Paginate(context.Background(), feed.Query{})
		require.NoError(t, err)

		assert.Equal(t, "no_more_results", result.StoppedAt)
		assert.Equal(t, 1, result.PagesUsed)
		assert.Empty(t, result.Properties)
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		client := &fakeClient{err: errors.New("boom")}

		p := feed.NewPaginator(client)
		_, err := p.Paginate(context.Background(), feed.Query{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetching page 0")
	})
}
