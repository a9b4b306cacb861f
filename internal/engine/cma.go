package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/harborview/mls-comps/internal/metrics"
	"github.com/harborview/mls-comps/pkg/comps"
	domain "github.com/harborview/mls-comps/pkg/types"
)

// ErrNoValuation is returned when a session's comparables cannot
// produce a valuation (no rows, or every weight is zero).
var ErrNoValuation = errors.New("insufficient data for valuation")

// defaultGrade is assigned to auto-selected comparables until an agent
// regrades them.
const defaultGrade = "C"

// SessionComparableInput is one agent-chosen comparable for a new
// session.
type SessionComparableInput struct {
	PropertyID      string  `json:"property_id"`
	Grade           string  `json:"grade"`
	UseCustomWeight bool    `json:"use_custom_weight"`
	CustomWeight    float64 `json:"custom_weight"`
}

// SessionInput holds the fields for a new CMA session. When
// Comparables is empty the engine auto-selects the top-ranked
// comparables around the subject.
type SessionInput struct {
	Name        string
	SubjectID   string
	ContactName string
	Notes       string
	Comparables []SessionComparableInput
}

// CreateSession persists a new CMA session. Comparable prices are
// resolved from the stored properties at creation time so later listing
// updates don't silently shift a valuation.
func (eng *Engine) CreateSession(ctx context.Context, in *SessionInput) (*domain.CMASession, error) {
	subject, err := eng.store.GetPropertyByID(ctx, in.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("loading subject: %w", err)
	}

	rows, err := eng.resolveComparables(ctx, subject, in.Comparables)
	if err != nil {
		return nil, err
	}

	session := &domain.CMASession{
		ID:          uuid.NewString(),
		Name:        in.Name,
		SubjectID:   subject.ID,
		ContactName: in.ContactName,
		Notes:       in.Notes,
		Status:      "draft",
	}
	for i := range rows {
		rows[i].SessionID = session.ID
	}

	if err := eng.store.CreateCMASession(ctx, session, rows); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	metrics.CMASessionsCreatedTotal.Inc()
	eng.log.Info("cma session created",
		"session_id", session.ID,
		"subject_id", subject.ID,
		"comparables", len(rows),
	)
	return session, nil
}

func (eng *Engine) resolveComparables(
	ctx context.Context,
	subject *domain.Property,
	inputs []SessionComparableInput,
) ([]domain.CMAComparable, error) {
	if len(inputs) == 0 {
		found, err := eng.FindComparables(ctx, subject.ID)
		if err != nil {
			return nil, fmt.Errorf("auto-selecting comparables: %w", err)
		}
		rows := make([]domain.CMAComparable, 0, len(found.Comparables))
		for _, c := range found.Comparables {
			rows = append(rows, domain.CMAComparable{
				PropertyID: c.Property.ID,
				Price:      c.Property.EffectivePrice(),
				Grade:      defaultGrade,
			})
		}
		return rows, nil
	}

	rows := make([]domain.CMAComparable, 0, len(inputs))
	for _, in := range inputs {
		p, err := eng.store.GetPropertyByID(ctx, in.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("loading comparable %s: %w", in.PropertyID, err)
		}
		grade := in.Grade
		if grade == "" {
			grade = defaultGrade
		}
		rows = append(rows, domain.CMAComparable{
			PropertyID:      p.ID,
			Price:           p.EffectivePrice(),
			Grade:           domain.Grade(grade),
			UseCustomWeight: in.UseCustomWeight,
			CustomWeight:    in.CustomWeight,
		})
	}
	return rows, nil
}

// ComputeValuation runs the grade-weighted aggregator over a session's
// comparables and persists the result as the session snapshot.
func (eng *Engine) ComputeValuation(ctx context.Context, sessionID string) (*comps.Valuation, error) {
	session, comparables, err := eng.store.GetCMASession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	inputs := make([]comps.CompInput, 0, len(comparables))
	for _, c := range comparables {
		inputs = append(inputs, comps.CompInput{
			ID:              c.PropertyID,
			Price:           c.Price,
			Grade:           string(c.Grade),
			UseCustomWeight: c.UseCustomWeight,
			CustomWeight:    c.CustomWeight,
		})
	}

	valuation := comps.Valuate(inputs, eng.gradeWeights)
	if valuation == nil {
		return nil, ErrNoValuation
	}

	snapshot, err := json.Marshal(valuation)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := eng.store.UpdateCMASessionSnapshot(ctx, session.ID, session.Status, snapshot); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	metrics.CMAValuationsTotal.Inc()
	return valuation, nil
}

// FinalizeSession computes the valuation one last time and marks the
// session final.
func (eng *Engine) FinalizeSession(ctx context.Context, sessionID string) (*comps.Valuation, error) {
	valuation, err := eng.ComputeValuation(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	snapshot, err := json.Marshal(valuation)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := eng.store.UpdateCMASessionSnapshot(ctx, sessionID, "final", snapshot); err != nil {
		return nil, fmt.Errorf("finalizing session: %w", err)
	}
	return valuation, nil
}

// RegradeComparable updates one comparable's grade or manual weight and
// recomputes the session snapshot.
func (eng *Engine) RegradeComparable(ctx context.Context, c *domain.CMAComparable) (*comps.Valuation, error) {
	if err := eng.store.UpdateCMAComparable(ctx, c); err != nil {
		return nil, fmt.Errorf("updating comparable: %w", err)
	}
	return eng.ComputeValuation(ctx, c.SessionID)
}
