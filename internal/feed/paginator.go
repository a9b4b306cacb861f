package feed

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	domain "github.com/harborview/mls-comps/pkg/types"
)

const (
	defaultPageSize = 200
	defaultMaxPages = 25
)

// Paginator walks feed result pages via @odata.nextLink.
type Paginator struct {
	client   Client
	logger   *log.Logger
	pageSize int
	maxPages int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithPageSize overrides the default page size.
func WithPageSize(size int) PaginatorOption {
	return func(p *Paginator) {
		p.pageSize = size
	}
}

// WithMaxPages overrides the default max pages per sync.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		p.maxPages = n
	}
}

// WithPaginatorLogger sets the logger.
func WithPaginatorLogger(l *log.Logger) PaginatorOption {
	return func(p *Paginator) {
		p.logger = l
	}
}

// NewPaginator creates a new Paginator.
func NewPaginator(client Client, opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		client:   client,
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PaginateResult holds the result of a paginated feed pull.
type PaginateResult struct {
	Properties []domain.Property
	TotalSeen  int
	PagesUsed  int
	StoppedAt  string // "max_pages", "no_more_results"
}

// Paginate pulls property records for a query, following next links
// until the server stops issuing them or the page cap is hit. The page
// cap bounds each sync cycle; the modification-timestamp watermark
// means the next cycle resumes where this one left off.
func (p *Paginator) Paginate(ctx context.Context, q Query) (*PaginateResult, error) {
	q.Top = p.pageSize

	result := &PaginateResult{}
	nextLink := ""

	for page := range p.maxPages {
		var (
			resp *Page
			err  error
		)
		if page == 0 {
			resp, err = p.client.Fetch(ctx, q)
		} else {
			resp, err = p.client.FetchNext(ctx, nextLink)
		}
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		result.PagesUsed++
		result.TotalSeen += len(resp.Records)

		if len(resp.Records) == 0 {
			result.StoppedAt = "no_more_results"
			return result, nil
		}

		result.Properties = append(result.Properties, ToProperties(resp.Records)...)

		if p.logger != nil {
			p.logger.Debug(
				"fetched feed page",
				"page", page,
				"records", len(resp.Records),
				"has_next", resp.NextLink != "",
			)
		}

		if resp.NextLink == "" {
			result.StoppedAt = "no_more_results"
			return result, nil
		}
		nextLink = resp.NextLink
	}

	result.StoppedAt = "max_pages"
	return result, nil
}
