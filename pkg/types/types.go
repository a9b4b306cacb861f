// Package domain defines the core business types for mls-comps.
package domain

import (
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// StandardStatus represents the normalized MLS listing status.
type StandardStatus string

// Standard status constants.
const (
	StatusActive              StandardStatus = "active"
	StatusActiveUnderContract StandardStatus = "active_under_contract"
	StatusPending             StandardStatus = "pending"
	StatusClosed              StandardStatus = "closed"
	StatusCanceled            StandardStatus = "canceled"
	StatusExpired             StandardStatus = "expired"
	StatusWithdrawn           StandardStatus = "withdrawn"
)

// Grade represents the letter grade assigned to a comparable.
// Grades are assigned by the agent reviewing a CMA, not computed.
type Grade string

// Grade constants.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Valid reports whether g is one of the five letter grades.
func (g Grade) Valid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD, GradeF:
		return true
	}
	return false
}

// Property represents an MLS listing record with the attributes the
// scoring engine and search endpoints work with.
type Property struct {
	ID        string `json:"id"                  db:"id"`
	MLSNumber string `json:"mls_number"          db:"mls_number"`
	ItemURL   string `json:"item_url,omitempty"  db:"item_url"`
	PhotoURL  string `json:"photo_url,omitempty" db:"photo_url"`

	// Address
	AddressFull string `json:"address_full" db:"address_full"`
	City        string `json:"city"         db:"city"`
	State       string `json:"state"        db:"state"`
	PostalCode  string `json:"postal_code"  db:"postal_code"`

	// Pricing
	ListPrice  float64  `json:"list_price"            db:"list_price"`
	ClosePrice *float64 `json:"close_price,omitempty" db:"close_price"`

	// Physical attributes
	Beds            int      `json:"beds"               db:"beds"`
	Baths           float64  `json:"baths"              db:"baths"`
	LivingArea      float64  `json:"living_area"        db:"living_area"`
	LotSize         *float64 `json:"lot_size,omitempty" db:"lot_size"`
	YearBuilt       int      `json:"year_built"         db:"year_built"`
	Latitude        float64  `json:"latitude"           db:"latitude"`
	Longitude       float64  `json:"longitude"          db:"longitude"`
	Waterfront      bool     `json:"waterfront"         db:"waterfront"`
	EntryLevel      int      `json:"entry_level"        db:"entry_level"`
	PropertySubType string   `json:"property_sub_type"  db:"property_sub_type"`

	// Market state
	StandardStatus StandardStatus `json:"standard_status" db:"standard_status"`
	DaysOnMarket   int            `json:"days_on_market"  db:"days_on_market"`

	// Timestamps
	ListDate    *time.Time `json:"list_date,omitempty"  db:"list_date"`
	CloseDate   *time.Time `json:"close_date,omitempty" db:"close_date"`
	FirstSeenAt time.Time  `json:"first_seen_at"        db:"first_seen_at"`
	UpdatedAt   time.Time  `json:"updated_at"           db:"updated_at"`
}

// EffectivePrice returns the close price for closed listings and the
// list price otherwise.
func (p *Property) EffectivePrice() float64 {
	if p.StandardStatus == StatusClosed && p.ClosePrice != nil {
		return *p.ClosePrice
	}
	return p.ListPrice
}

// PricePerSqft returns the effective price per square foot, or 0 when
// the living area is unknown.
func (p *Property) PricePerSqft() float64 {
	if p.LivingArea <= 0 {
		return 0
	}
	return p.EffectivePrice() / p.LivingArea
}

// IsCondo reports whether the listing subtype names a condominium.
func (p *Property) IsCondo() bool {
	return strings.Contains(strings.ToLower(p.PropertySubType), "condo")
}

// CMASession represents a saved comparative-market-analysis session.
type CMASession struct {
	ID          string          `json:"id"                     db:"id"`
	Name        string          `json:"name"                   db:"name"`
	SubjectID   string          `json:"subject_id"             db:"subject_id"`
	ContactName string          `json:"contact_name,omitempty" db:"contact_name"`
	Notes       string          `json:"notes,omitempty"        db:"notes"`
	Status      string          `json:"status"                 db:"status"` // draft, final
	Snapshot    json.RawMessage `json:"snapshot,omitempty"     db:"snapshot"`
	CreatedAt   time.Time       `json:"created_at"             db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"             db:"updated_at"`
}

// CMAComparable is one comparable row inside a CMA session. The grade
// drives the valuation weight unless a manual override is set.
type CMAComparable struct {
	ID              string  `json:"id"                db:"id"`
	SessionID       string  `json:"session_id"        db:"session_id"`
	PropertyID      string  `json:"property_id"       db:"property_id"`
	Price           float64 `json:"price"             db:"price"`
	Grade           Grade   `json:"grade"             db:"grade"`
	UseCustomWeight bool    `json:"use_custom_weight" db:"use_custom_weight"`
	CustomWeight    float64 `json:"custom_weight"     db:"custom_weight"`
	Position        int     `json:"position"          db:"position"`
}

// Agent represents a listing or referral agent.
type Agent struct {
	ID            string    `json:"id"                       db:"id"`
	Name          string    `json:"name"                     db:"name"`
	Email         string    `json:"email"                    db:"email"`
	Phone         string    `json:"phone,omitempty"          db:"phone"`
	LicenseNumber string    `json:"license_number,omitempty" db:"license_number"`
	Active        bool      `json:"active"                   db:"active"`
	CreatedAt     time.Time `json:"created_at"               db:"created_at"`
}

// Lead represents a captured buyer or seller inquiry.
type Lead struct {
	ID         string    `json:"id"                    db:"id"`
	AgentID    *string   `json:"agent_id,omitempty"    db:"agent_id"`
	PropertyID *string   `json:"property_id,omitempty" db:"property_id"`
	Name       string    `json:"name"                  db:"name"`
	Email      string    `json:"email"                 db:"email"`
	Phone      string    `json:"phone,omitempty"       db:"phone"`
	Message    string    `json:"message,omitempty"     db:"message"`
	Source     string    `json:"source,omitempty"      db:"source"`
	CreatedAt  time.Time `json:"created_at"            db:"created_at"`
}

// SavedSearch persists a normalized filter map for a contact.
type SavedSearch struct {
	ID           string         `json:"id"            db:"id"`
	Name         string         `json:"name"          db:"name"`
	ContactEmail string         `json:"contact_email" db:"contact_email"`
	Filters      map[string]any `json:"filters"       db:"filters"`
	CreatedAt    time.Time      `json:"created_at"    db:"created_at"`
}

// MarketSnapshot is one per-city aggregation of market activity plus the
// derived heat index.
type MarketSnapshot struct {
	ID             string    `json:"id"              db:"id"`
	City           string    `json:"city"            db:"city"`
	AvgDOM         float64   `json:"avg_dom"         db:"avg_dom"`
	SPLPRatio      float64   `json:"sp_lp_ratio"     db:"sp_lp_ratio"`
	MonthsSupply   float64   `json:"months_supply"   db:"months_supply"`
	AbsorptionRate float64   `json:"absorption_rate" db:"absorption_rate"`
	HeatScore      int       `json:"heat_score"      db:"heat_score"`
	HeatLabel      string    `json:"heat_label"      db:"heat_label"`
	ActiveCount    int       `json:"active_count"    db:"active_count"`
	ClosedCount    int       `json:"closed_count"    db:"closed_count"`
	CreatedAt      time.Time `json:"created_at"      db:"created_at"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// SystemState holds a precomputed snapshot of aggregate counts.
type SystemState struct {
	PropertiesTotal    int `json:"properties_total"     db:"properties_total"`
	PropertiesActive   int `json:"properties_active"    db:"properties_active"`
	CMASessionsTotal   int `json:"cma_sessions_total"   db:"cma_sessions_total"`
	LeadsTotal         int `json:"leads_total"          db:"leads_total"`
	LeadsUnassigned    int `json:"leads_unassigned"     db:"leads_unassigned"`
	AgentsActive       int `json:"agents_active"        db:"agents_active"`
	SavedSearchesTotal int `json:"saved_searches_total" db:"saved_searches_total"`
	SnapshotsTotal     int `json:"snapshots_total"      db:"snapshots_total"`
}

// SearchFilters defines structured listing search criteria. Pointer
// fields are unset when nil; zero is a meaningful value.
type SearchFilters struct {
	PriceMin       *float64         `json:"price_min,omitempty"`
	PriceMax       *float64         `json:"price_max,omitempty"`
	BedsMin        *int             `json:"beds_min,omitempty"`
	BathsMin       *float64         `json:"baths_min,omitempty"`
	LivingAreaMin  *float64         `json:"living_area_min,omitempty"`
	LivingAreaMax  *float64         `json:"living_area_max,omitempty"`
	YearBuiltMin   *int             `json:"year_built_min,omitempty"`
	Cities         []string         `json:"cities,omitempty"`
	SubTypes       []string         `json:"sub_types,omitempty"`
	Statuses       []StandardStatus `json:"statuses,omitempty"`
	WaterfrontOnly bool             `json:"waterfront_only,omitempty"`
}

// Match checks if a property satisfies these filters.
func (f *SearchFilters) Match(p *Property) bool {
	if !f.matchPrice(p) {
		return false
	}
	if !f.matchSize(p) {
		return false
	}
	if !f.matchLocation(p) {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, p.StandardStatus) {
		return false
	}
	if f.WaterfrontOnly && !p.Waterfront {
		return false
	}
	return true
}

func (f *SearchFilters) matchPrice(p *Property) bool {
	price := p.EffectivePrice()
	if f.PriceMin != nil && price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && price > *f.PriceMax {
		return false
	}
	return true
}

func (f *SearchFilters) matchSize(p *Property) bool {
	if f.BedsMin != nil && p.Beds < *f.BedsMin {
		return false
	}
	if f.BathsMin != nil && p.Baths < *f.BathsMin {
		return false
	}
	if f.LivingAreaMin != nil && p.LivingArea < *f.LivingAreaMin {
		return false
	}
	if f.LivingAreaMax != nil && p.LivingArea > *f.LivingAreaMax {
		return false
	}
	if f.YearBuiltMin != nil && p.YearBuilt < *f.YearBuiltMin {
		return false
	}
	return true
}

func (f *SearchFilters) matchLocation(p *Property) bool {
	if len(f.Cities) > 0 && !containsFold(f.Cities, p.City) {
		return false
	}
	if len(f.SubTypes) > 0 && !containsFold(f.SubTypes, p.PropertySubType) {
		return false
	}
	return true
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
