package batch

import (
	"context"
	"math/rand"
	"testing"

	"github.com/nmercier/quantfolio/internal/portfolio"
	"github.com/nmercier/quantfolio/internal/store"
)

// fakeCatalog implements store.CatalogRepo for selector tests. Question ids
// are synthesized as categoryID*1000+i so their origin is recoverable.
type fakeCatalog struct {
	states    []store.CategoryState
	questions map[int]int // category id -> question count
}

func (f *fakeCatalog) ActiveCategories(_ context.Context) ([]store.CategoryState, error) {
	return f.states, nil
}

func (f *fakeCatalog) SampleQuestionIDs(_ context.Context, categoryID, limit int, _ *store.DifficultyRange) ([]int, error) {
	count := f.questions[categoryID]
	if count > limit {
		count = limit
	}
	ids := make([]int, count)
	for i := range ids {
		ids[i] = categoryID*1000 + i
	}
	return ids, nil
}

func (f *fakeCatalog) State(_ context.Context, _ int) (*store.CategoryState, error) {
	return nil, store.ErrNotFound
}
func (f *fakeCatalog) EnsureState(_ context.Context, _ int) error { return nil }
func (f *fakeCatalog) QuestionByID(_ context.Context, _ int) (*store.QuestionRow, error) {
	return nil, store.ErrNotFound
}
func (f *fakeCatalog) SampleSubtreeQuestions(_ context.Context, _, _ int) ([]store.QuestionRow, error) {
	return nil, nil
}
func (f *fakeCatalog) ListSummaries(_ context.Context) ([]store.CategorySummary, error) {
	return nil, nil
}
func (f *fakeCatalog) UpdateCategory(_ context.Context, _ int, _ store.CategoryPatch) (int, error) {
	return 0, nil
}
func (f *fakeCatalog) EnsureCategoryPath(_ context.Context, _ []string) (int, error) {
	return 0, nil
}
func (f *fakeCatalog) InsertQuestions(_ context.Context, _ []store.QuestionInput) (int, error) {
	return 0, nil
}

func fakeState(id int, target, ratingVar, activity float64) store.CategoryState {
	return store.CategoryState{
		ID:           id,
		Name:         "cat",
		TargetWeight: target,
		Active:       true,
		Rating:       50,
		RatingVar:    ratingVar,
		EmaActivity:  activity,
		EmaPerf:      0.5,
	}
}

func newTestSelector(f *fakeCatalog) *Selector {
	return NewSelector(f, rand.New(rand.NewSource(1)))
}

func TestSelect_ReturnsAtMostN(t *testing.T) {
	f := &fakeCatalog{
		states: []store.CategoryState{
			fakeState(1, 0.5, 50, 0),
			fakeState(2, 0.5, 50, 0),
		},
		questions: map[int]int{1: 40, 2: 40},
	}
	batch, err := newTestSelector(f).Select(context.Background(), 12)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(batch) != 12 {
		t.Errorf("batch size = %d, want 12", len(batch))
	}
}

func TestSelect_SparseCatalogReturnsFewer(t *testing.T) {
	f := &fakeCatalog{
		states:    []store.CategoryState{fakeState(1, 1.0, 50, 0)},
		questions: map[int]int{1: 3},
	}
	batch, err := newTestSelector(f).Select(context.Background(), 12)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(batch) != 3 {
		t.Errorf("batch size = %d, want 3", len(batch))
	}
}

func TestSelect_NoDuplicateIDs(t *testing.T) {
	f := &fakeCatalog{
		states: []store.CategoryState{
			fakeState(1, 0.6, 80, 0),
			fakeState(2, 0.3, 50, 0.2),
			fakeState(3, 0.1, 20, 0.8),
			fakeState(4, 0.0, 10, 0.9),
		},
		questions: map[int]int{1: 60, 2: 60, 3: 60, 4: 60},
	}
	batch, err := newTestSelector(f).Select(context.Background(), 1000)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	seen := make(map[int]bool, len(batch))
	for _, id := range batch {
		if seen[id] {
			t.Fatalf("duplicate question id %d in batch", id)
		}
		seen[id] = true
	}
}

func TestSelect_StratifiedDrawDepth(t *testing.T) {
	// Four categories, each with 60 questions: the top three by priority
	// contribute up to 50 ids, the tail category only 10.
	f := &fakeCatalog{
		states: []store.CategoryState{
			fakeState(1, 0.9, 90, 0),
			fakeState(2, 0.8, 80, 0),
			fakeState(3, 0.7, 70, 0),
			fakeState(4, 0.0, 5, 1.0),
		},
		questions: map[int]int{1: 60, 2: 60, 3: 60, 4: 60},
	}
	batch, err := newTestSelector(f).Select(context.Background(), 1000)
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	perCat := make(map[int]int)
	for _, id := range batch {
		perCat[id/1000]++
	}
	for _, cat := range []int{1, 2, 3} {
		if perCat[cat] != TopCategoryDraw {
			t.Errorf("category %d contributed %d ids, want %d", cat, perCat[cat], TopCategoryDraw)
		}
	}
	if perCat[4] != TailCategoryDraw {
		t.Errorf("tail category contributed %d ids, want %d", perCat[4], TailCategoryDraw)
	}
}

func TestSelect_ZeroOrNegativeN(t *testing.T) {
	f := &fakeCatalog{
		states:    []store.CategoryState{fakeState(1, 1.0, 50, 0)},
		questions: map[int]int{1: 10},
	}
	for _, n := range []int{0, -5} {
		batch, err := newTestSelector(f).Select(context.Background(), n)
		if err != nil {
			t.Fatalf("select(%d): %v", n, err)
		}
		if len(batch) != 0 {
			t.Errorf("select(%d) returned %d ids, want 0", n, len(batch))
		}
	}
}

func TestRankCategories_PriorityOrder(t *testing.T) {
	// Large gap + high variance + stale must outrank on-target, confident,
	// recently active.
	weights := portfolio.Weights([]store.CategoryState{
		fakeState(1, 0.0, 5, 1.0),
		fakeState(2, 0.9, 90, 0),
	})
	ranked := rankCategories(weights)
	if ranked[0].id != 2 {
		t.Errorf("top ranked category = %d, want 2", ranked[0].id)
	}
}

func TestRankCategories_TieBreakByIDAscending(t *testing.T) {
	weights := portfolio.Weights([]store.CategoryState{
		fakeState(7, 0.5, 50, 0),
		fakeState(3, 0.5, 50, 0),
		fakeState(5, 0.5, 50, 0),
	})
	ranked := rankCategories(weights)
	for i, want := range []int{3, 5, 7} {
		if ranked[i].id != want {
			t.Errorf("rank %d: category %d, want %d", i, ranked[i].id, want)
		}
	}
}

func TestPriorityScore_GapDirectionIrrelevant(t *testing.T) {
	over := PriorityScore(-0.2, 50, 0.5)
	under := PriorityScore(0.2, 50, 0.5)
	if over != under {
		t.Errorf("priority for -0.2 gap = %f, for +0.2 gap = %f; want equal", over, under)
	}
}

func TestShuffle_PreservesElements(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(rand.New(rand.NewSource(42)), items)

	seen := make(map[int]bool, len(items))
	for _, v := range items {
		seen[v] = true
	}
	for want := 1; want <= 8; want++ {
		if !seen[want] {
			t.Errorf("element %d lost in shuffle", want)
		}
	}
}

func TestShuffle_DeterministicWithFixedSeed(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7, 8}
	b := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(rand.New(rand.NewSource(42)), a)
	Shuffle(rand.New(rand.NewSource(42)), b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %d != %d with identical seeds", i, a[i], b[i])
		}
	}
}
