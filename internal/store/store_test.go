package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestEnsureCategoryPath(t *testing.T) {
	s := openTestStore(t)
	catalog := s.Catalog()
	ctx := context.Background()

	leaf, err := catalog.EnsureCategoryPath(ctx, []string{"Rates", "Curves", "Bootstrapping"})
	if err != nil {
		t.Fatalf("ensure path: %v", err)
	}

	// Re-walking the same path must not create duplicates.
	again, err := catalog.EnsureCategoryPath(ctx, []string{"Rates", "Curves", "Bootstrapping"})
	if err != nil {
		t.Fatalf("ensure path again: %v", err)
	}
	if again != leaf {
		t.Errorf("second walk returned %d, want %d", again, leaf)
	}

	// A sibling under an existing prefix reuses the prefix nodes.
	sibling, err := catalog.EnsureCategoryPath(ctx, []string{"Rates", "Curves", "Interpolation"})
	if err != nil {
		t.Fatalf("ensure sibling path: %v", err)
	}
	if sibling == leaf {
		t.Error("sibling leaf shares id with existing leaf")
	}

	states, err := catalog.ActiveCategories(ctx)
	if err != nil {
		t.Fatalf("active categories: %v", err)
	}
	if len(states) != 4 {
		t.Errorf("got %d categories, want 4 (Rates, Curves, 2 leaves)", len(states))
	}
}

func TestStateDefaults(t *testing.T) {
	s := openTestStore(t)
	catalog := s.Catalog()
	ctx := context.Background()

	id, err := catalog.EnsureCategoryPath(ctx, []string{"FX"})
	if err != nil {
		t.Fatalf("ensure path: %v", err)
	}

	st, err := catalog.State(ctx, id)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if st.Rating != 50 || st.RatingVar != 50 {
		t.Errorf("rating/var = %v/%v, want 50/50", st.Rating, st.RatingVar)
	}
	if st.EmaActivity != 0 || st.EmaPerf != 0.5 {
		t.Errorf("ema activity/perf = %v/%v, want 0/0.5", st.EmaActivity, st.EmaPerf)
	}

	// EnsureState is idempotent on existing rows.
	if err := catalog.EnsureState(ctx, id); err != nil {
		t.Fatalf("ensure state: %v", err)
	}
	if err := catalog.EnsureState(ctx, id); err != nil {
		t.Fatalf("ensure state (repeat): %v", err)
	}

	if err := catalog.EnsureState(ctx, 99999); err == nil {
		t.Error("expected error for missing category")
	}
}

func TestInsertQuestionsDedup(t *testing.T) {
	s := openTestStore(t)
	catalog := s.Catalog()
	ctx := context.Background()

	id, err := catalog.EnsureCategoryPath(ctx, []string{"Vol"})
	if err != nil {
		t.Fatalf("ensure path: %v", err)
	}

	items := []QuestionInput{
		{CategoryID: id, Type: "MCQ", Prompt: "Pick the smile", Choices: []string{"a", "b"}, Answer: "1", Difficulty: 0.4},
		{CategoryID: id, Type: "short", Prompt: "Define vega", Answer: "dV/dsigma", Difficulty: 0.6},
	}
	created, err := catalog.InsertQuestions(ctx, items)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created != 2 {
		t.Fatalf("created = %d, want 2", created)
	}

	// Same (category, prompt) pairs are skipped on re-import.
	created, err = catalog.InsertQuestions(ctx, items)
	if err != nil {
		t.Fatalf("re-insert: %v", err)
	}
	if created != 0 {
		t.Errorf("re-insert created = %d, want 0", created)
	}

	ids, err := catalog.SampleQuestionIDs(ctx, id, 10, nil)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("sampled %d ids, want 2", len(ids))
	}

	q, err := catalog.QuestionByID(ctx, ids[0])
	if err != nil {
		t.Fatalf("question by id: %v", err)
	}
	if q.CategoryName != "Vol" {
		t.Errorf("category name = %q, want Vol", q.CategoryName)
	}

	// Difficulty range filters the sample.
	hard, err := catalog.SampleQuestionIDs(ctx, id, 10, &DifficultyRange{Min: 0.5, Max: 1})
	if err != nil {
		t.Fatalf("sample with range: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("sampled %d hard ids, want 1", len(hard))
	}
}

func TestSampleSubtreeQuestions(t *testing.T) {
	s := openTestStore(t)
	catalog := s.Catalog()
	ctx := context.Background()

	rootID, err := catalog.EnsureCategoryPath(ctx, []string{"Rates"})
	if err != nil {
		t.Fatalf("ensure root: %v", err)
	}
	leafID, err := catalog.EnsureCategoryPath(ctx, []string{"Rates", "Swaps"})
	if err != nil {
		t.Fatalf("ensure leaf: %v", err)
	}

	_, err = catalog.InsertQuestions(ctx, []QuestionInput{
		{CategoryID: rootID, Type: "short", Prompt: "root q", Answer: "a", Difficulty: 0.5},
		{CategoryID: leafID, Type: "short", Prompt: "leaf q", Answer: "b", Difficulty: 0.5},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := catalog.SampleSubtreeQuestions(ctx, rootID, 10)
	if err != nil {
		t.Fatalf("sample subtree: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("subtree sample = %d rows, want 2 (root + descendant)", len(rows))
	}

	rows, err = catalog.SampleSubtreeQuestions(ctx, leafID, 10)
	if err != nil {
		t.Fatalf("sample leaf subtree: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("leaf subtree sample = %d rows, want 1", len(rows))
	}
}

func TestUpdateCategory(t *testing.T) {
	s := openTestStore(t)
	catalog := s.Catalog()
	ctx := context.Background()

	parentID, err := catalog.EnsureCategoryPath(ctx, []string{"Credit"})
	if err != nil {
		t.Fatalf("ensure parent: %v", err)
	}
	childID, err := catalog.EnsureCategoryPath(ctx, []string{"Credit", "CDS"})
	if err != nil {
		t.Fatalf("ensure child: %v", err)
	}

	name := "CDS Pricing"
	weight := 0.25
	n, err := catalog.UpdateCategory(ctx, childID, CategoryPatch{Name: &name, TargetWeight: &weight})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if n != 1 {
		t.Fatalf("updated %d rows, want 1", n)
	}

	st, err := catalog.State(ctx, childID)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if st.Name != name || st.TargetWeight != weight {
		t.Errorf("state = %q/%v, want %q/%v", st.Name, st.TargetWeight, name, weight)
	}
	if st.ParentID == nil || *st.ParentID != parentID {
		t.Errorf("parent = %v, want %d", st.ParentID, parentID)
	}

	// Detaching from the parent promotes the child to top level.
	n, err = catalog.UpdateCategory(ctx, childID, CategoryPatch{ClearParent: true})
	if err != nil {
		t.Fatalf("clear parent: %v", err)
	}
	if n != 1 {
		t.Fatalf("clear parent updated %d rows, want 1", n)
	}
	st, err = catalog.State(ctx, childID)
	if err != nil {
		t.Fatalf("state after clear: %v", err)
	}
	if st.ParentID != nil {
		t.Errorf("parent = %v after clear, want nil", st.ParentID)
	}

	// Deactivated categories drop out of the active listing.
	inactive := false
	if _, err := catalog.UpdateCategory(ctx, childID, CategoryPatch{Active: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	states, err := catalog.ActiveCategories(ctx)
	if err != nil {
		t.Fatalf("active categories: %v", err)
	}
	for _, st := range states {
		if st.ID == childID {
			t.Error("deactivated category still listed as active")
		}
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	catalog := s.Catalog()
	sessions := s.Sessions()
	ctx := context.Background()

	catID, err := catalog.EnsureCategoryPath(ctx, []string{"Rates"})
	if err != nil {
		t.Fatalf("ensure category: %v", err)
	}
	created, err := catalog.InsertQuestions(ctx, []QuestionInput{
		{CategoryID: catID, Type: "short", Prompt: "q", Answer: "a", Difficulty: 0.5},
	})
	if err != nil || created != 1 {
		t.Fatalf("insert question: created=%d err=%v", created, err)
	}
	qIDs, err := catalog.SampleQuestionIDs(ctx, catID, 1, nil)
	if err != nil || len(qIDs) != 1 {
		t.Fatalf("sample question: ids=%v err=%v", qIDs, err)
	}

	row, err := sessions.Open(ctx, "sess-uid-1", 12.5, 0.3)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if row.Status != StatusOpen {
		t.Fatalf("status = %q, want %q", row.Status, StatusOpen)
	}
	if row.NavBefore != 12.5 || row.TeBefore != 0.3 {
		t.Errorf("snapshot = %v/%v, want 12.5/0.3", row.NavBefore, row.TeBefore)
	}

	got, err := sessions.ByUID(ctx, "sess-uid-1")
	if err != nil {
		t.Fatalf("by uid: %v", err)
	}
	if got.ID != row.ID {
		t.Errorf("by uid id = %d, want %d", got.ID, row.ID)
	}
	if _, err := sessions.ByUID(ctx, "no-such-uid"); err == nil {
		t.Error("expected error for unknown uid")
	}

	now := time.Now()
	err = sessions.CommitAnswer(ctx, AnswerWrite{
		SessionID:      row.ID,
		QuestionID:     qIDs[0],
		CategoryID:     catID,
		Correct:        true,
		TimeSec:        12,
		RatingDelta:    4.75,
		NewRating:      54.75,
		NewRatingVar:   48.5,
		ReviewedAt:     now,
		NewEmaActivity: 0.2,
		NewEmaPerf:     0.6,
	})
	if err != nil {
		t.Fatalf("commit answer: %v", err)
	}

	st, err := catalog.State(ctx, catID)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if st.Rating != 54.75 || st.RatingVar != 48.5 {
		t.Errorf("rating/var = %v/%v, want 54.75/48.5", st.Rating, st.RatingVar)
	}
	if st.EmaActivity != 0.2 || st.EmaPerf != 0.6 {
		t.Errorf("ema = %v/%v, want 0.2/0.6", st.EmaActivity, st.EmaPerf)
	}

	if err := sessions.Close(ctx, row.ID, 13.0, 0.25, 0.5, now); err != nil {
		t.Fatalf("close: %v", err)
	}
	got, err = sessions.ByUID(ctx, "sess-uid-1")
	if err != nil {
		t.Fatalf("by uid after close: %v", err)
	}
	if got.Status != StatusClosed {
		t.Errorf("status = %q, want %q", got.Status, StatusClosed)
	}
	if got.NavAfter != 13.0 || got.Pnl != 0.5 {
		t.Errorf("close snapshot = %v/%v, want 13.0/0.5", got.NavAfter, got.Pnl)
	}
	if got.EndedAt == nil {
		t.Error("ended_at not stamped")
	}
}

func TestCommitAnswerMissingState(t *testing.T) {
	s := openTestStore(t)
	catalog := s.Catalog()
	sessions := s.Sessions()
	ctx := context.Background()

	catID, err := catalog.EnsureCategoryPath(ctx, []string{"FX"})
	if err != nil {
		t.Fatalf("ensure category: %v", err)
	}
	if _, err := catalog.InsertQuestions(ctx, []QuestionInput{
		{CategoryID: catID, Type: "short", Prompt: "q", Answer: "a", Difficulty: 0.5},
	}); err != nil {
		t.Fatalf("insert question: %v", err)
	}
	qIDs, err := catalog.SampleQuestionIDs(ctx, catID, 1, nil)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	row, err := sessions.Open(ctx, "sess-uid-2", 0, 0)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	// Pointing the write at a category with no mastery row must fail
	// without leaving a partial audit trail.
	err = sessions.CommitAnswer(ctx, AnswerWrite{
		SessionID:    row.ID,
		QuestionID:   qIDs[0],
		CategoryID:   99999,
		Correct:      true,
		TimeSec:      10,
		NewRating:    55,
		NewRatingVar: 48,
		ReviewedAt:   time.Now(),
	})
	if err == nil {
		t.Fatal("expected error for missing mastery row")
	}

	n, err := s.Client().Answer.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count answers: %v", err)
	}
	if n != 0 {
		t.Errorf("answer rows = %d after failed commit, want 0", n)
	}
}

func TestResetProgress(t *testing.T) {
	s := openTestStore(t)
	catalog := s.Catalog()
	sessions := s.Sessions()
	ctx := context.Background()

	catID, err := catalog.EnsureCategoryPath(ctx, []string{"Rates"})
	if err != nil {
		t.Fatalf("ensure category: %v", err)
	}
	if _, err := sessions.Open(ctx, "sess-uid-3", 0, 0); err != nil {
		t.Fatalf("open session: %v", err)
	}

	if err := s.ResetProgress(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, err := sessions.ByUID(ctx, "sess-uid-3"); err == nil {
		t.Error("session survived reset")
	}

	// The catalog keeps its categories; state falls back to defaults.
	st, err := catalog.State(ctx, catID)
	if err != nil {
		t.Fatalf("state after reset: %v", err)
	}
	if st.Rating != 50 || st.RatingVar != 50 {
		t.Errorf("rating/var after reset = %v/%v, want defaults 50/50", st.Rating, st.RatingVar)
	}
}
