// Package batch builds the question pool for a session: categories are
// ranked by a priority score and questions are drawn stratified, with a
// deeper draw from the top categories and a shallow one from the tail.
package batch

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/nmercier/quantfolio/internal/portfolio"
	"github.com/nmercier/quantfolio/internal/store"
)

const (
	// TopCategoryCount categories by priority contribute a deep draw.
	TopCategoryCount = 3
	// TopCategoryDraw is the per-category pool size for top categories.
	TopCategoryDraw = 50
	// TailCategoryDraw is the per-category pool size for the long tail.
	TailCategoryDraw = 10
)

// Priority coefficients: allocation gap dominates, uncertainty second,
// staleness third.
const (
	gapWeight   = 0.6
	varWeight   = 0.3
	staleWeight = 0.1
)

// PriorityScore ranks a category for selection. Being off target in either
// direction, carrying high rating uncertainty, or having gone stale all
// raise the score.
func PriorityScore(gap, ratingVar, emaActivity float64) float64 {
	return gapWeight*math.Abs(gap) + varWeight*(ratingVar/100) + staleWeight*(1-emaActivity)
}

// Selector draws stratified question batches. It only reads: selection
// never mutates mastery or catalog state.
type Selector struct {
	catalog store.CatalogRepo
	rng     *rand.Rand
}

// NewSelector creates a Selector. A nil rng falls back to a time-seeded
// source; tests pass a fixed seed.
func NewSelector(catalog store.CatalogRepo, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{catalog: catalog, rng: rng}
}

// Select returns up to n question ids for the next session. Fewer ids are
// returned when the catalog is sparse. Within one call no id repeats: each
// category is sampled once with distinct draws, and a question belongs to
// exactly one category.
func (s *Selector) Select(ctx context.Context, n int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	states, err := s.catalog.ActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	ranked := rankCategories(portfolio.Weights(states))

	var pool []int
	for i, rc := range ranked {
		limit := TailCategoryDraw
		if i < TopCategoryCount {
			limit = TopCategoryDraw
		}
		ids, err := s.catalog.SampleQuestionIDs(ctx, rc.id, limit, nil)
		if err != nil {
			return nil, err
		}
		pool = append(pool, ids...)
	}

	Shuffle(s.rng, pool)
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool, nil
}

type rankedCategory struct {
	id       int
	priority float64
}

// rankCategories orders categories by priority descending, breaking ties
// by category id ascending so the ordering is reproducible.
func rankCategories(weights []portfolio.Weight) []rankedCategory {
	ranked := make([]rankedCategory, len(weights))
	for i, w := range weights {
		gap := w.TargetWeight - w.CurrentWeight
		ranked[i] = rankedCategory{
			id:       w.ID,
			priority: PriorityScore(gap, w.RatingVar, w.EmaActivity),
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].priority != ranked[j].priority {
			return ranked[i].priority > ranked[j].priority
		}
		return ranked[i].id < ranked[j].id
	})
	return ranked
}
