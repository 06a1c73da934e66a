package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nmercier/quantfolio/internal/portfolio"
	"github.com/nmercier/quantfolio/internal/session"
	"github.com/nmercier/quantfolio/internal/store"
)

// fakeCatalog implements store.CatalogRepo over in-memory maps, just enough
// for the routes under test.
type fakeCatalog struct {
	states    map[int]*store.CategoryState
	questions map[int]store.QuestionRow
	patches   []store.CategoryPatch
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		states:    make(map[int]*store.CategoryState),
		questions: make(map[int]store.QuestionRow),
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
	return nil
}

func (f *fakeCatalog) QuestionByID(_ context.Context, id int) (*store.QuestionRow, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, fmt.Errorf("question %d: %w", id, store.ErrNotFound)
	}
	return &q, nil
}

func (f *fakeCatalog) SampleQuestionIDs(_ context.Context, categoryID, limit int, _ *store.DifficultyRange) ([]int, error) {
	var ids []int
	for id, q := range f.questions {
		if q.CategoryID == categoryID {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (f *fakeCatalog) SampleSubtreeQuestions(_ context.Context, categoryID, limit int) ([]store.QuestionRow, error) {
	ids, _ := f.SampleQuestionIDs(context.Background(), categoryID, limit, nil)
	rows := make([]store.QuestionRow, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, f.questions[id])
	}
	return rows, nil
}

func (f *fakeCatalog) ListSummaries(_ context.Context) ([]store.CategorySummary, error) {
	states, _ := f.ActiveCategories(context.Background())
	out := make([]store.CategorySummary, len(states))
	for i, st := range states {
		count := 0
		for _, q := range f.questions {
			if q.CategoryID == st.ID {
				count++
			}
		}
		out[i] = store.CategorySummary{CategoryState: st, QuestionCount: count}
	}
	return out, nil
}

func (f *fakeCatalog) UpdateCategory(_ context.Context, id int, patch store.CategoryPatch) (int, error) {
	if _, ok := f.states[id]; !ok {
		return 0, nil
	}
	f.patches = append(f.patches, patch)
	if patch.Name != nil {
		f.states[id].Name = *patch.Name
	}
	if patch.TargetWeight != nil {
		f.states[id].TargetWeight = *patch.TargetWeight
	}
	if patch.Active != nil {
		f.states[id].Active = *patch.Active
	}
	return 1, nil
}

func (f *fakeCatalog) EnsureCategoryPath(_ context.Context, _ []string) (int, error) {
	return 0, nil
}

func (f *fakeCatalog) InsertQuestions(_ context.Context, _ []store.QuestionInput) (int, error) {
	return 0, nil
}

// fakeSessions implements store.SessionRepo in memory.
type fakeSessions struct {
	rows   map[string]*store.SessionRow
	nextID int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{rows: make(map[string]*store.SessionRow)}
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

func (f *fakeSessions) CommitAnswer(_ context.Context, _ store.AnswerWrite) error {
	return nil
}

type staticSelector struct {
	ids []int
}

func (s *staticSelector) Select(_ context.Context, n int) ([]int, error) {
	if len(s.ids) > n {
		return s.ids[:n], nil
	}
	return s.ids, nil
}

func newTestRouter(catalog *fakeCatalog, sessions *fakeSessions, ids ...int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	reconciler := portfolio.NewService(catalog)
	svc := session.NewService(catalog, sessions, reconciler, &staticSelector{ids: ids})
	h := NewHandler(svc, reconciler, catalog, nil, zap.NewNop())
	return NewRouter(h)
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetStats(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addCategory(1, 0.6, 50, 50, 0)
	catalog.addCategory(2, 0.4, 80, 20, 0.5)
	r := newTestRouter(catalog, newFakeSessions())

	w := doRequest(t, r, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 0.6*50+0.4*80, resp.Nav, 0.0001)
	require.Len(t, resp.Weights, 2)

	sum := resp.Weights[0].CurrentWeight + resp.Weights[1].CurrentWeight
	assert.InDelta(t, 1.0, sum, 0.0001)
}

func TestSessionRoutes(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addCategory(1, 1.0, 50, 50, 0)
	catalog.addQuestion(10, 1, 0.75)
	sessions := newFakeSessions()
	r := newTestRouter(catalog, sessions, 10)

	w := doRequest(t, r, http.MethodGet, "/api/session/next?n=5", "")
	require.Equal(t, http.StatusOK, w.Code)

	var next NextSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &next))
	require.NotEmpty(t, next.SessionID)
	require.Len(t, next.Questions, 1)
	assert.Equal(t, "question 10", next.Questions[0].Prompt)

	body := fmt.Sprintf(`{"sessionId":%q,"questionId":10,"correct":true,"timeSec":10}`, next.SessionID)
	w = doRequest(t, r, http.MethodPost, "/api/session/answer", body)
	require.Equal(t, http.StatusOK, w.Code)

	var ans AnswerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.InDelta(t, 0.5, ans.P, 0.0001)
	assert.InDelta(t, 4.75, ans.Delta, 0.0001)

	w = doRequest(t, r, http.MethodPost, "/api/session/close", fmt.Sprintf(`{"sessionId":%q}`, next.SessionID))
	require.Equal(t, http.StatusOK, w.Code)

	// The session is closed now: answering again conflicts.
	w = doRequest(t, r, http.MethodPost, "/api/session/answer", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Closing again conflicts as well.
	w = doRequest(t, r, http.MethodPost, "/api/session/close", fmt.Sprintf(`{"sessionId":%q}`, next.SessionID))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAnswerValidation(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addCategory(1, 1.0, 50, 50, 0)
	r := newTestRouter(catalog, newFakeSessions())

	// Missing sessionId fails binding.
	w := doRequest(t, r, http.MethodPost, "/api/session/answer", `{"questionId":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown session maps to 404.
	w = doRequest(t, r, http.MethodPost, "/api/session/answer", `{"sessionId":"nope","questionId":10}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Negative n rejected before the engine runs.
	w = doRequest(t, r, http.MethodGet, "/api/session/next?n=-3", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryRoutes(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addCategory(1, 0.5, 50, 50, 0)
	catalog.addQuestion(10, 1, 0.5)
	r := newTestRouter(catalog, newFakeSessions())

	w := doRequest(t, r, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var rows []CategoryRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].QuestionCount)

	w = doRequest(t, r, http.MethodPatch, "/api/categories/1", `{"target_weight":0.8,"parent_id":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 0.8, catalog.states[1].TargetWeight, 0.0001)
	require.Len(t, catalog.patches, 1)
	assert.True(t, catalog.patches[0].ClearParent, "explicit null parent_id must clear the parent")

	w = doRequest(t, r, http.MethodPatch, "/api/categories/abc", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetQuestions(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.addCategory(1, 1.0, 50, 50, 0)
	catalog.addQuestion(10, 1, 0.5)
	catalog.addQuestion(11, 1, 0.5)
	r := newTestRouter(catalog, newFakeSessions())

	w := doRequest(t, r, http.MethodGet, "/api/questions?category_id=1&n=10", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Questions []QuestionDTO `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Questions, 2)

	w = doRequest(t, r, http.MethodGet, "/api/questions", "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "category_id is required")
}
