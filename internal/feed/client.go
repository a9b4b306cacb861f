// Package feed provides a RESO Web API client for pulling MLS property
// records, abstracted behind interfaces for testability.
package feed

import (
	"context"
)

// Query defines the parameters for one feed page request.
type Query struct {
	Resource      string // resource name, usually "Property"
	Filter        string // OData $filter expression
	OrderBy       string // OData $orderby expression
	Top           int    // page size
	Skip          int
	ModifiedSince string // RFC3339 watermark folded into $filter
}

// Page holds one page of feed results.
type Page struct {
	Records  []PropertyRecord
	NextLink string
	Count    int
}

// Client defines the interface for fetching feed pages.
type Client interface {
	// Fetch runs a fresh query against the feed.
	Fetch(ctx context.Context, q Query) (*Page, error)
	// FetchNext follows an @odata.nextLink returned by a prior page.
	FetchNext(ctx context.Context, nextLink string) (*Page, error)
}

// TokenProvider defines the interface for obtaining OAuth2 tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
