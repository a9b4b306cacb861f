// Package store defines the datastore abstraction for mls-comps.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running
// database.
package store

import (
	"context"
	"encoding/json"
	"errors"

	domain "github.com/harborview/mls-comps/pkg/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// PropertyQuery defines optional filters for property listing queries.
type PropertyQuery struct {
	City           *string
	PostalCode     *string
	SubType        *string
	Statuses       []string
	PriceMin       *float64
	PriceMax       *float64
	BedsMin        *int
	BathsMin       *float64
	LivingAreaMin  *float64
	LivingAreaMax  *float64
	YearBuiltMin   *int
	WaterfrontOnly bool
	Limit          int // default 50
	Offset         int
	OrderBy        string // "list_price", "list_date", "living_area", "days_on_market"
}

// CandidateQuery bounds the comparable candidate fetch: a geographic
// box around the subject plus a price band and status set.
type CandidateQuery struct {
	MinLat    float64
	MaxLat    float64
	MinLon    float64
	MaxLon    float64
	PriceMin  float64
	PriceMax  float64
	Statuses  []string
	SubType   *string
	ExcludeID string
	Limit     int
}

// MarketAggregates holds the raw per-city aggregates the heat index is
// derived from. Derived rates (months of supply, absorption) are
// computed by the engine from these counts.
type MarketAggregates struct {
	City        string
	WindowDays  int
	ActiveCount int
	ClosedCount int
	AvgDOM      float64
	SPLPRatio   float64 // percent, 0 when no closes in window
}

// Store defines all data access operations for mls-comps.
type Store interface {
	// Properties
	UpsertProperty(ctx context.Context, p *domain.Property) error
	GetProperty(ctx context.Context, mlsNumber string) (*domain.Property, error)
	GetPropertyByID(ctx context.Context, id string) (*domain.Property, error)
	ListProperties(ctx context.Context, opts *PropertyQuery) ([]domain.Property, int, error)
	ListCandidates(ctx context.Context, q *CandidateQuery) ([]domain.Property, error)
	ListCities(ctx context.Context) ([]string, error)
	MarketAggregates(ctx context.Context, city string, windowDays int) (*MarketAggregates, error)

	// CMA sessions
	CreateCMASession(ctx context.Context, s *domain.CMASession, comparables []domain.CMAComparable) error
	GetCMASession(ctx context.Context, id string) (*domain.CMASession, []domain.CMAComparable, error)
	ListCMASessions(ctx context.Context, limit int) ([]domain.CMASession, error)
	UpdateCMAComparable(ctx context.Context, c *domain.CMAComparable) error
	UpdateCMASessionSnapshot(ctx context.Context, id, status string, snapshot json.RawMessage) error
	DeleteCMASession(ctx context.Context, id string) error

	// Agents
	CreateAgent(ctx context.Context, a *domain.Agent) error
	GetAgent(ctx context.Context, id string) (*domain.Agent, error)
	ListAgents(ctx context.Context, activeOnly bool) ([]domain.Agent, error)
	SetAgentActive(ctx context.Context, id string, active bool) error
	LeastLoadedAgent(ctx context.Context) (*domain.Agent, error)

	// Leads
	CreateLead(ctx context.Context, l *domain.Lead) error
	ListLeads(ctx context.Context, agentID *string, limit int) ([]domain.Lead, error)
	AssignLead(ctx context.Context, leadID, agentID string) error

	// Saved searches
	CreateSavedSearch(ctx context.Context, s *domain.SavedSearch) error
	GetSavedSearch(ctx context.Context, id string) (*domain.SavedSearch, error)
	ListSavedSearches(ctx context.Context, contactEmail string) ([]domain.SavedSearch, error)
	DeleteSavedSearch(ctx context.Context, id string) error

	// Market snapshots
	InsertMarketSnapshot(ctx context.Context, s *domain.MarketSnapshot) error
	LatestMarketSnapshot(ctx context.Context, city string) (*domain.MarketSnapshot, error)
	ListMarketSnapshots(ctx context.Context, city string, limit int) ([]domain.MarketSnapshot, error)

	// System
	GetSystemState(ctx context.Context) (*domain.SystemState, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id, status, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
