package session

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmercier/quantfolio/internal/portfolio"
	"github.com/nmercier/quantfolio/internal/store"
)

// fakeCatalog implements store.CatalogRepo over in-memory maps.
type fakeCatalog struct {
	states    map[int]*store.CategoryState
	questions map[int]store.QuestionRow
	ensured   map[int]bool
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		states:    make(map[int]*store.CategoryState),
		questions: make(map[int]store.QuestionRow),
		ensured:   make(map[int]bool),
	}
}

func (f *fakeCatalog) addCategory(id int, target, rating, ratingVar, activity float64) {
	f.states[id] = &store.CategoryState{
		ID:           id,
		Name:         fmt.Sprintf("cat-%d", id),
		TargetWeight: target,
		Active:       true,
		Rating:       rating,
		RatingVar:    ratingVar,
		EmaActivity:  activity,
		EmaPerf:      0.5,
	}
}

func (f *fakeCatalog) addQuestion(id, categoryID int, difficulty float64) {
	f.questions[id] = store.QuestionRow{
		ID:           id,
		CategoryID:   categoryID,
		CategoryName: fmt.Sprintf("cat-%d", categoryID),
		Type:         "MCQ",
		Prompt:       fmt.Sprintf("question %d", id),
		Choices:      []string{"a", "b"},
		Answer:       "0",
		Difficulty:   difficulty,
	}
}

func (f *fakeCatalog) ActiveCategories(_ context.Context) ([]store.CategoryState, error) {
	ids := make([]int, 0, len(f.states))
	for id := range f.states {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]store.CategoryState, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.states[id])
	}
	return out, nil
}

func (f *fakeCatalog) State(_ context.Context, categoryID int) (*store.CategoryState, error) {
	st, ok := f.states[categoryID]
	if !ok {
		return nil, fmt.Errorf("category %d: %w", categoryID, store.ErrNotFound)
	}
	cp := *st
	return &cp, nil
}

func (f *fakeCatalog) EnsureState(_ context.Context, categoryID int) error {
	if _, ok := f.states[categoryID]; !ok {
		return fmt.Errorf("category %d: %w", categoryID, store.ErrNotFound)
	}
	f.ensured[categoryID] = true
	return nil
}

func (f *fakeCatalog) QuestionByID(_ context.Context, id int) (*store.QuestionRow, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, fmt.Errorf("question %d: %w", id, store.ErrNotFound)
	}
	return &q, nil
}

func (f *fakeCatalog) SampleQuestionIDs(_ context.Context, _, _ int, _ *store.DifficultyRange) ([]int, error) {
	return nil, nil
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

// fakeSessions implements store.SessionRepo; CommitAnswer applies the
// mastery/rollup writes back onto the fake catalog so intervening answers
// move NAV like the real store would.
type fakeSessions struct {
	catalog *fakeCatalog
	rows    map[string]*store.SessionRow
	answers []store.AnswerWrite
	nextID  int
}

func newFakeSessions(catalog *fakeCatalog) *fakeSessions {
	return &fakeSessions{catalog: catalog, rows: make(map[string]*store.SessionRow)}
}

func (f *fakeSessions) Open(_ context.Context, uid string, navBefore, teBefore float64) (*store.SessionRow, error) {
	f.nextID++
	row := &store.SessionRow{
		ID:        f.nextID,
		UID:       uid,
		Status:    store.StatusOpen,
		StartedAt: time.Now(),
		NavBefore: navBefore,
		TeBefore:  teBefore,
	}
	f.rows[uid] = row
	cp := *row
	return &cp, nil
}

func (f *fakeSessions) ByUID(_ context.Context, uid string) (*store.SessionRow, error) {
	row, ok := f.rows[uid]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", uid, store.ErrNotFound)
	}
	cp := *row
	return &cp, nil
}

func (f *fakeSessions) Close(_ context.Context, id int, navAfter, teAfter, pnl float64, endedAt time.Time) error {
	for _, row := range f.rows {
		if row.ID == id {
			row.Status = store.StatusClosed
			row.NavAfter = navAfter
			row.TeAfter = teAfter
			row.Pnl = pnl
			row.EndedAt = &endedAt
			return nil
		}
	}
	return fmt.Errorf("session %d: %w", id, store.ErrNotFound)
}

func (f *fakeSessions) CommitAnswer(_ context.Context, w store.AnswerWrite) error {
	st, ok := f.catalog.states[w.CategoryID]
	if !ok {
		return fmt.Errorf("category %d: %w", w.CategoryID, store.ErrNotFound)
	}
	st.Rating = w.NewRating
	st.RatingVar = w.NewRatingVar
	st.EmaActivity = w.NewEmaActivity
	st.EmaPerf = w.NewEmaPerf
	f.answers = append(f.answers, w)
	return nil
}

type fakeSelector struct {
	ids []int
}

func (f *fakeSelector) Select(_ context.Context, n int) ([]int, error) {
	if len(f.ids) > n {
		return f.ids[:n], nil
	}
	return f.ids, nil
}

func newTestService(catalog *fakeCatalog, sessions *fakeSessions, ids ...int) *Service {
	return NewService(catalog, sessions, portfolio.NewService(catalog), &fakeSelector{ids: ids})
}

func TestOpen_SnapshotsNavAndTrackingError(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addCategory(1, 1.0, 50, 50, 0)
	sessions := newFakeSessions(catalog)
	svc := newTestService(catalog, sessions)

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, opened.SessionID)
	assert.InDelta(t, 50.0, opened.NavBefore, 0.0001)
}

func TestAnswer_UpdatesMasteryAndAppendsAudit(t *testing.T) {
	catalog := newFakeCatalog()
	// Difficulty 0.75 against rating 50 gives p = 0.5 exactly; a fast
	// correct answer with var 50 gives K = 9.5 and delta = 4.75.
	catalog.addCategory(1, 1.0, 50, 50, 0)
	catalog.addQuestion(10, 1, 0.75)
	sessions := newFakeSessions(catalog)
	svc := newTestService(catalog, sessions)

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)

	res, err := svc.Answer(context.Background(), opened.SessionID, 10, true, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.P, 0.0001)
	assert.InDelta(t, 4.75, res.Delta, 0.0001)

	assert.True(t, catalog.ensured[1], "learner state must be ensured before the update")
	assert.InDelta(t, 54.75, catalog.states[1].Rating, 0.0001)
	assert.InDelta(t, 48.5, catalog.states[1].RatingVar, 0.0001)
	assert.InDelta(t, 0.2, catalog.states[1].EmaActivity, 0.0001)
	assert.InDelta(t, 0.6, catalog.states[1].EmaPerf, 0.0001)

	require.Len(t, sessions.answers, 1)
	audit := sessions.answers[0]
	assert.Equal(t, 10, audit.QuestionID)
	assert.Equal(t, 1, audit.CategoryID)
	assert.True(t, audit.Correct)
	assert.Equal(t, 10, audit.TimeSec)
	assert.InDelta(t, 4.75, audit.RatingDelta, 0.0001)
}

func TestAnswer_UnknownQuestionLeavesNoTrace(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addCategory(1, 1.0, 50, 50, 0)
	sessions := newFakeSessions(catalog)
	svc := newTestService(catalog, sessions)

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)

	_, err = svc.Answer(context.Background(), opened.SessionID, 999, true, 10)
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, sessions.answers)
	assert.InDelta(t, 50.0, catalog.states[1].Rating, 0.0001)
}

func TestAnswer_AfterCloseFails(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addCategory(1, 1.0, 50, 50, 0)
	catalog.addQuestion(10, 1, 0.5)
	sessions := newFakeSessions(catalog)
	svc := newTestService(catalog, sessions)

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)
	_, err = svc.Close(context.Background(), opened.SessionID)
	require.NoError(t, err)

	_, err = svc.Answer(context.Background(), opened.SessionID, 10, true, 10)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestClose_ComputesPnlFromOpenSnapshot(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addCategory(1, 1.0, 50, 50, 0)
	catalog.addQuestion(10, 1, 0.75)
	sessions := newFakeSessions(catalog)
	svc := newTestService(catalog, sessions)

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)
	navBefore := opened.NavBefore

	// Intervening answers move the rating, hence NAV.
	_, err = svc.Answer(context.Background(), opened.SessionID, 10, true, 10)
	require.NoError(t, err)

	closed, err := svc.Close(context.Background(), opened.SessionID)
	require.NoError(t, err)

	assert.InDelta(t, navBefore, closed.NavBefore, 0.0001,
		"open-time snapshot must survive intervening answers")
	assert.InDelta(t, closed.NavAfter-closed.NavBefore, closed.Pnl, 0.0001)
	assert.InDelta(t, 54.75, closed.NavAfter, 0.0001)
}

func TestClose_TwiceFails(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addCategory(1, 1.0, 50, 50, 0)
	sessions := newFakeSessions(catalog)
	svc := newTestService(catalog, sessions)

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)

	_, err = svc.Close(context.Background(), opened.SessionID)
	require.NoError(t, err)
	_, err = svc.Close(context.Background(), opened.SessionID)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestClose_UnknownSession(t *testing.T) {
	catalog := newFakeCatalog()
	sessions := newFakeSessions(catalog)
	svc := newTestService(catalog, sessions)

	_, err := svc.Close(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNextBatch_OpensSessionAndHydrates(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addCategory(1, 1.0, 50, 50, 0)
	catalog.addQuestion(10, 1, 0.5)
	catalog.addQuestion(11, 1, 0.7)
	sessions := newFakeSessions(catalog)
	svc := newTestService(catalog, sessions, 10, 11)

	batch, err := svc.NextBatch(context.Background(), 12)
	require.NoError(t, err)
	assert.NotEmpty(t, batch.SessionID)
	require.Len(t, batch.Questions, 2)
	assert.Equal(t, "question 10", batch.Questions[0].Prompt)
	assert.Equal(t, "cat-1", batch.Questions[0].CategoryName)

	row, err := sessions.ByUID(context.Background(), batch.SessionID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusOpen, row.Status)
}
