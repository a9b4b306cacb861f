package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/harborview/mls-comps/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertProperty inserts or updates a property by mls_number.
func (s *PostgresStore) UpsertProperty(ctx context.Context, p *domain.Property) error {
	args := pgx.NamedArgs{
		"mls_number":        p.MLSNumber,
		"item_url":          p.ItemURL,
		"photo_url":         p.PhotoURL,
		"address_full":      p.AddressFull,
		"city":              p.City,
		"state":             p.State,
		"postal_code":       p.PostalCode,
		"list_price":        p.ListPrice,
		"close_price":       p.ClosePrice,
		"beds":              p.Beds,
		"baths":             p.Baths,
		"living_area":       p.LivingArea,
		"lot_size":          p.LotSize,
		"year_built":        p.YearBuilt,
		"latitude":          p.Latitude,
		"longitude":         p.Longitude,
		"waterfront":        p.Waterfront,
		"entry_level":       p.EntryLevel,
		"property_sub_type": p.PropertySubType,
		"standard_status":   string(p.StandardStatus),
		"days_on_market":    p.DaysOnMarket,
		"list_date":         p.ListDate,
		"close_date":        p.CloseDate,
	}

	return s.pool.QueryRow(ctx, queryUpsertProperty, args).Scan(
		&p.ID, &p.FirstSeenAt, &p.UpdatedAt,
	)
}

// GetProperty retrieves a property by its MLS number.
func (s *PostgresStore) GetProperty(ctx context.Context, mlsNumber string) (*domain.Property, error) {
	p := &domain.Property{}
	if err := scanProperty(s.pool.QueryRow(ctx, queryGetPropertyByMLS, mlsNumber), p); err != nil {
		return nil, notFoundOr(err, "getting property %s", mlsNumber)
	}
	return p, nil
}

// GetPropertyByID retrieves a property by its internal UUID.
func (s *PostgresStore) GetPropertyByID(ctx context.Context, id string) (*domain.Property, error) {
	p := &domain.Property{}
	if err := scanProperty(s.pool.QueryRow(ctx, queryGetPropertyByID, id), p); err != nil {
		return nil, notFoundOr(err, "getting property by id %s", id)
	}
	return p, nil
}

// ListProperties queries properties with optional filters, returning
// results and total count.
func (s *PostgresStore) ListProperties(
	ctx context.Context,
	opts *PropertyQuery,
) ([]domain.Property, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting properties: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying properties: %w", err)
	}
	defer rows.Close()

	properties, err := collectProperties(rows)
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// ListCandidates returns comparable candidates inside a bounding box
// and price band.
func (s *PostgresStore) ListCandidates(
	ctx context.Context,
	q *CandidateQuery,
) ([]domain.Property, error) {
	sql, args := q.ToSQL()

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying candidates: %w", err)
	}
	defer rows.Close()

	return collectProperties(rows)
}

// ListCities returns all distinct non-empty city names.
func (s *PostgresStore) ListCities(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListCities)
	if err != nil {
		return nil, fmt.Errorf("querying cities: %w", err)
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("scanning city: %w", err)
		}
		cities = append(cities, city)
	}

	return cities, rows.Err()
}

// MarketAggregates computes per-city market activity aggregates over a
// closed-sale window.
func (s *PostgresStore) MarketAggregates(
	ctx context.Context,
	city string,
	windowDays int,
) (*MarketAggregates, error) {
	agg := &MarketAggregates{City: city, WindowDays: windowDays}

	err := s.pool.QueryRow(ctx, queryMarketAggregates, city, windowDays).Scan(
		&agg.ActiveCount, &agg.ClosedCount, &agg.AvgDOM, &agg.SPLPRatio,
	)
	if err != nil {
		return nil, fmt.Errorf("computing market aggregates for %s: %w", city, err)
	}

	return agg, nil
}

// CreateCMASession inserts a session and its comparable rows in one
// transaction.
func (s *PostgresStore) CreateCMASession(
	ctx context.Context,
	sess *domain.CMASession,
	comparables []domain.CMAComparable,
) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.Status == "" {
		sess.Status = "draft"
	}

	err = tx.QueryRow(ctx, queryCreateCMASession,
		sess.ID, sess.Name, sess.SubjectID, sess.ContactName, sess.Notes, sess.Status,
	).Scan(&sess.CreatedAt, &sess.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting cma session: %w", err)
	}

	for i := range comparables {
		c := &comparables[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		c.SessionID = sess.ID
		c.Position = i

		_, err = tx.Exec(ctx, queryInsertCMAComparable,
			c.ID, c.SessionID, c.PropertyID, c.Price, string(c.Grade),
			c.UseCustomWeight, c.CustomWeight, c.Position,
		)
		if err != nil {
			return fmt.Errorf("inserting cma comparable %d: %w", i, err)
		}
	}

	return tx.Commit(ctx)
}

// GetCMASession retrieves a session and its comparables.
func (s *PostgresStore) GetCMASession(
	ctx context.Context,
	id string,
) (*domain.CMASession, []domain.CMAComparable, error) {
	sess := &domain.CMASession{}
	err := s.pool.QueryRow(ctx, queryGetCMASession, id).Scan(
		&sess.ID, &sess.Name, &sess.SubjectID, &sess.ContactName,
		&sess.Notes, &sess.Status, &sess.Snapshot, &sess.CreatedAt, &sess.UpdatedAt,
	)
	if err != nil {
		return nil, nil, notFoundOr(err, "getting cma session %s", id)
	}

	rows, err := s.pool.Query(ctx, queryListCMAComparables, id)
	if err != nil {
		return nil, nil, fmt.Errorf("querying cma comparables: %w", err)
	}
	defer rows.Close()

	var comparables []domain.CMAComparable
	for rows.Next() {
		var c domain.CMAComparable
		if err := rows.Scan(
			&c.ID, &c.SessionID, &c.PropertyID, &c.Price, &c.Grade,
			&c.UseCustomWeight, &c.CustomWeight, &c.Position,
		); err != nil {
			return nil, nil, fmt.Errorf("scanning cma comparable: %w", err)
		}
		comparables = append(comparables, c)
	}

	return sess, comparables, rows.Err()
}

// ListCMASessions returns the most recently updated sessions.
func (s *PostgresStore) ListCMASessions(ctx context.Context, limit int) ([]domain.CMASession, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, queryListCMASessions, limit)
	if err != nil {
		return nil, fmt.Errorf("querying cma sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.CMASession
	for rows.Next() {
		var sess domain.CMASession
		if err := rows.Scan(
			&sess.ID, &sess.Name, &sess.SubjectID, &sess.ContactName,
			&sess.Notes, &sess.Status, &sess.Snapshot, &sess.CreatedAt, &sess.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning cma session: %w", err)
		}
		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}

// UpdateCMAComparable updates a comparable's grade and weight override.
func (s *PostgresStore) UpdateCMAComparable(ctx context.Context, c *domain.CMAComparable) error {
	tag, err := s.pool.Exec(ctx, queryUpdateCMAComparable,
		c.ID, string(c.Grade), c.UseCustomWeight, c.CustomWeight,
	)
	if err != nil {
		return fmt.Errorf("updating cma comparable: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateCMASessionSnapshot stores the rendered valuation snapshot and
// session status.
func (s *PostgresStore) UpdateCMASessionSnapshot(
	ctx context.Context,
	id, status string,
	snapshot json.RawMessage,
) error {
	tag, err := s.pool.Exec(ctx, queryUpdateCMASessionSnapshot, id, status, snapshot)
	if err != nil {
		return fmt.Errorf("updating cma session snapshot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCMASession removes a session; comparables cascade.
func (s *PostgresStore) DeleteCMASession(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, queryDeleteCMASession, id)
	if err != nil {
		return fmt.Errorf("deleting cma session: %w", err)
	}
	return nil
}

// CreateAgent inserts a new agent.
func (s *PostgresStore) CreateAgent(ctx context.Context, a *domain.Agent) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	err := s.pool.QueryRow(ctx, queryCreateAgent,
		a.ID, a.Name, a.Email, a.Phone, a.LicenseNumber, a.Active,
	).Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting agent: %w", err)
	}
	return nil
}

// GetAgent retrieves an agent by ID.
func (s *PostgresStore) GetAgent(ctx context.Context, id string) (*domain.Agent, error) {
	a := &domain.Agent{}
	err := s.pool.QueryRow(ctx, queryGetAgent, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.LicenseNumber, &a.Active, &a.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "getting agent %s", id)
	}
	return a, nil
}

// ListAgents returns all agents ordered by name.
func (s *PostgresStore) ListAgents(ctx context.Context, activeOnly bool) ([]domain.Agent, error) {
	rows, err := s.pool.Query(ctx, queryListAgents, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("querying agents: %w", err)
	}
	defer rows.Close()

	var agents []domain.Agent
	for rows.Next() {
		var a domain.Agent
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Email, &a.Phone, &a.LicenseNumber, &a.Active, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning agent: %w", err)
		}
		agents = append(agents, a)
	}

	return agents, rows.Err()
}

// SetAgentActive activates or deactivates an agent.
func (s *PostgresStore) SetAgentActive(ctx context.Context, id string, active bool) error {
	tag, err := s.pool.Exec(ctx, querySetAgentActive, id, active)
	if err != nil {
		return fmt.Errorf("setting agent active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// LeastLoadedAgent returns the active agent with the fewest assigned
// leads, used for round-robin lead assignment.
func (s *PostgresStore) LeastLoadedAgent(ctx context.Context) (*domain.Agent, error) {
	a := &domain.Agent{}
	err := s.pool.QueryRow(ctx, queryLeastLoadedAgent).Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.LicenseNumber, &a.Active, &a.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "selecting least loaded agent")
	}
	return a, nil
}

// CreateLead inserts a captured lead.
func (s *PostgresStore) CreateLead(ctx context.Context, l *domain.Lead) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}

	err := s.pool.QueryRow(ctx, queryCreateLead,
		l.ID, l.AgentID, l.PropertyID, l.Name, l.Email, l.Phone, l.Message, l.Source,
	).Scan(&l.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting lead: %w", err)
	}
	return nil
}

// ListLeads returns leads, optionally scoped to one agent.
func (s *PostgresStore) ListLeads(
	ctx context.Context,
	agentID *string,
	limit int,
) ([]domain.Lead, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, queryListLeads, agentID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying leads: %w", err)
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		var l domain.Lead
		if err := rows.Scan(
			&l.ID, &l.AgentID, &l.PropertyID, &l.Name, &l.Email,
			&l.Phone, &l.Message, &l.Source, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}
		leads = append(leads, l)
	}

	return leads, rows.Err()
}

// AssignLead sets the lead's agent.
func (s *PostgresStore) AssignLead(ctx context.Context, leadID, agentID string) error {
	tag, err := s.pool.Exec(ctx, queryAssignLead, leadID, agentID)
	if err != nil {
		return fmt.Errorf("assigning lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateSavedSearch inserts a saved search with its normalized filters.
func (s *PostgresStore) CreateSavedSearch(ctx context.Context, ss *domain.SavedSearch) error {
	if ss.ID == "" {
		ss.ID = uuid.NewString()
	}

	filtersJSON, err := json.Marshal(ss.Filters)
	if err != nil {
		return fmt.Errorf("marshaling filters: %w", err)
	}

	err = s.pool.QueryRow(ctx, queryCreateSavedSearch,
		ss.ID, ss.Name, ss.ContactEmail, filtersJSON,
	).Scan(&ss.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting saved search: %w", err)
	}
	return nil
}

// GetSavedSearch retrieves a saved search by ID.
func (s *PostgresStore) GetSavedSearch(ctx context.Context, id string) (*domain.SavedSearch, error) {
	ss := &domain.SavedSearch{}
	var filtersJSON []byte

	err := s.pool.QueryRow(ctx, queryGetSavedSearch, id).Scan(
		&ss.ID, &ss.Name, &ss.ContactEmail, &filtersJSON, &ss.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "getting saved search %s", id)
	}

	if err := json.Unmarshal(filtersJSON, &ss.Filters); err != nil {
		return nil, fmt.Errorf("unmarshaling saved search filters: %w", err)
	}

	return ss, nil
}

// ListSavedSearches returns saved searches, optionally for one contact.
func (s *PostgresStore) ListSavedSearches(
	ctx context.Context,
	contactEmail string,
) ([]domain.SavedSearch, error) {
	rows, err := s.pool.Query(ctx, queryListSavedSearches, contactEmail)
	if err != nil {
		return nil, fmt.Errorf("querying saved searches: %w", err)
	}
	defer rows.Close()

	var searches []domain.SavedSearch
	for rows.Next() {
		var ss domain.SavedSearch
		var filtersJSON []byte

		if err := rows.Scan(&ss.ID, &ss.Name, &ss.ContactEmail, &filtersJSON, &ss.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning saved search: %w", err)
		}
		if err := json.Unmarshal(filtersJSON, &ss.Filters); err != nil {
			return nil, fmt.Errorf("unmarshaling saved search filters: %w", err)
		}

		searches = append(searches, ss)
	}

	return searches, rows.Err()
}

// DeleteSavedSearch removes a saved search by ID.
func (s *PostgresStore) DeleteSavedSearch(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, queryDeleteSavedSearch, id)
	if err != nil {
		return fmt.Errorf("deleting saved search: %w", err)
	}
	return nil
}

// InsertMarketSnapshot stores one computed market snapshot.
func (s *PostgresStore) InsertMarketSnapshot(ctx context.Context, snap *domain.MarketSnapshot) error {
	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}

	err := s.pool.QueryRow(ctx, queryInsertMarketSnapshot,
		snap.ID, snap.City, snap.AvgDOM, snap.SPLPRatio, snap.MonthsSupply,
		snap.AbsorptionRate, snap.HeatScore, snap.HeatLabel,
		snap.ActiveCount, snap.ClosedCount,
	).Scan(&snap.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting market snapshot: %w", err)
	}
	return nil
}

// LatestMarketSnapshot returns the most recent snapshot for a city.
func (s *PostgresStore) LatestMarketSnapshot(
	ctx context.Context,
	city string,
) (*domain.MarketSnapshot, error) {
	snap := &domain.MarketSnapshot{}
	err := scanSnapshot(s.pool.QueryRow(ctx, queryLatestMarketSnapshot, city), snap)
	if err != nil {
		return nil, notFoundOr(err, "getting latest snapshot for %s", city)
	}
	return snap, nil
}

// ListMarketSnapshots returns the snapshot time series for a city,
// newest first.
func (s *PostgresStore) ListMarketSnapshots(
	ctx context.Context,
	city string,
	limit int,
) ([]domain.MarketSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}

	rows, err := s.pool.Query(ctx, queryListMarketSnapshots, city, limit)
	if err != nil {
		return nil, fmt.Errorf("querying market snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []domain.MarketSnapshot
	for rows.Next() {
		var snap domain.MarketSnapshot
		if err := scanSnapshot(rows, &snap); err != nil {
			return nil, fmt.Errorf("scanning market snapshot: %w", err)
		}
		snapshots = append(snapshots, snap)
	}

	return snapshots, rows.Err()
}

// GetSystemState returns aggregate system counts in one round trip.
func (s *PostgresStore) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	st := &domain.SystemState{}
	err := s.pool.QueryRow(ctx, querySystemState).Scan(
		&st.PropertiesTotal, &st.PropertiesActive, &st.CMASessionsTotal,
		&st.LeadsTotal, &st.LeadsUnassigned, &st.AgentsActive,
		&st.SavedSearchesTotal, &st.SnapshotsTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("querying system state: %w", err)
	}
	return st, nil
}

// InsertJobRun records the start of a scheduled job.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun records a job's completion status.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id, status, errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns recent job runs, optionally filtered by job name.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// scanProperty scans a single property row in propertyColumns order.
func scanProperty(row pgx.Row, p *domain.Property) error {
	return row.Scan(
		&p.ID, &p.MLSNumber, &p.ItemURL, &p.PhotoURL,
		&p.AddressFull, &p.City, &p.State, &p.PostalCode,
		&p.ListPrice, &p.ClosePrice,
		&p.Beds, &p.Baths, &p.LivingArea, &p.LotSize, &p.YearBuilt,
		&p.Latitude, &p.Longitude, &p.Waterfront, &p.EntryLevel, &p.PropertySubType,
		&p.StandardStatus, &p.DaysOnMarket,
		&p.ListDate, &p.CloseDate, &p.FirstSeenAt, &p.UpdatedAt,
	)
}

func collectProperties(rows pgx.Rows) ([]domain.Property, error) {
	var properties []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := scanProperty(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func scanSnapshot(row pgx.Row, snap *domain.MarketSnapshot) error {
	return row.Scan(
		&snap.ID, &snap.City, &snap.AvgDOM, &snap.SPLPRatio, &snap.MonthsSupply,
		&snap.AbsorptionRate, &snap.HeatScore, &snap.HeatLabel,
		&snap.ActiveCount, &snap.ClosedCount, &snap.CreatedAt,
	)
}

// notFoundOr maps pgx.ErrNoRows onto ErrNotFound and wraps everything
// else with context.
func notFoundOr(err error, format string, args ...any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
