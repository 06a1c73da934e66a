// Package portfolio derives the "current weight" of each category from its
// mastery and activity, and reports the portfolio-style aggregates: NAV
// (target-weighted rating sum) and tracking error (distance between the
// current and target weight vectors). The finance vocabulary is thematic;
// none of this is real risk math.
package portfolio

import (
	"context"
	"math"

	"github.com/nmercier/quantfolio/internal/store"
)

// Composite score coefficients: mastery contributes a 0.5 spread on top of
// a 0.5 base, engagement a 0.7 spread on top of a 0.3 base, so engagement
// moves the score more than mastery does.
const (
	ratingBase   = 0.5
	ratingSpread = 0.5
	actBase      = 0.3
	actSpread    = 0.7
)

// Weight is one category's reconciliation row.
type Weight struct {
	store.CategoryState
	Comp          float64 // unnormalized composite score
	CurrentWeight float64 // Comp / sum(Comp), 0 when the sum degenerates
}

// Weights computes the composite score and normalized current weight for
// every category. A zero score sum falls back to a denominator of 1 so an
// empty or fully idle catalog yields all-zero weights instead of NaN.
func Weights(states []store.CategoryState) []Weight {
	weights := make([]Weight, len(states))
	total := 0.0
	for i, st := range states {
		comp := (ratingBase + ratingSpread*(st.Rating/100)) * (actBase + actSpread*st.EmaActivity)
		weights[i] = Weight{CategoryState: st, Comp: comp}
		total += comp
	}
	if total == 0 {
		total = 1
	}
	for i := range weights {
		weights[i].CurrentWeight = weights[i].Comp / total
	}
	return weights
}

// NAV is the target-weighted rating sum over the given categories. Target
// weights are used as stored; normalization happens only in the settings
// workflow, so NAV is an unnormalized score.
func NAV(states []store.CategoryState) float64 {
	nav := 0.0
	for _, st := range states {
		nav += st.TargetWeight * st.Rating
	}
	return nav
}

// TrackingError is the Euclidean norm of current minus target weights.
// Zero exactly when every category sits on its target.
func TrackingError(weights []Weight) float64 {
	sumsq := 0.0
	for _, w := range weights {
		diff := w.CurrentWeight - w.TargetWeight
		sumsq += diff * diff
	}
	return math.Sqrt(sumsq)
}

// Service recomputes reconciliation state from the store on every call;
// there is no caching layer to invalidate.
type Service struct {
	catalog store.CatalogRepo
}

// NewService creates a reconciler over the given catalog.
func NewService(catalog store.CatalogRepo) *Service {
	return &Service{catalog: catalog}
}

// CurrentWeights returns the reconciliation rows for all active categories.
func (s *Service) CurrentWeights(ctx context.Context) ([]Weight, error) {
	states, err := s.catalog.ActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	return Weights(states), nil
}

// Snapshot returns NAV, tracking error and the weight rows in one read.
func (s *Service) Snapshot(ctx context.Context) (nav, te float64, weights []Weight, err error) {
	states, err := s.catalog.ActiveCategories(ctx)
	if err != nil {
		return 0, 0, nil, err
	}
	weights = Weights(states)
	return NAV(states), TrackingError(weights), weights, nil
}
